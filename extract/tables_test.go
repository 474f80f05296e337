// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickbr/transitlines/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFeedZip writes a feed archive into dir and returns its path.
func writeFeedZip(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for fname, content := range files {
		w, err := zw.Create(fname)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return p
}

func openFeedZip(t *testing.T, files map[string]string) *feed.Archive {
	t.Helper()
	p := writeFeedZip(t, t.TempDir(), "feed.zip", files)
	a, err := feed.Open(p)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestFilterRoutes(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"routes.txt": "route_id,route_short_name,route_long_name,route_color,route_type\n" +
			"r1,1,First,EE352E,1\n" +
			"r1,1,First again,EE352E,2\n" +
			"rX,X,Bad type,,abc\n" +
			"rB,B,Bus,,3\n" +
			"r2,,Light rail,,0\n",
	})

	routes := filterRoutes(a)
	require.Len(t, routes, 2)
	assert.Equal(t, 2, routes["r1"].Type) // last row wins
	assert.Equal(t, "First again", routes["r1"].LongName)
	assert.Equal(t, 0, routes["r2"].Type)
	assert.NotContains(t, routes, "rX")
	assert.NotContains(t, routes, "rB")
}

func TestAggregateTrips(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"trips.txt": "route_id,service_id,trip_id,direction_id,shape_id\n" +
			"r1,wk,t1,0,sA\n" +
			"r1,wk,t2,1,sB\n" +
			"r1,wk,t3,,sA\n" +
			"r9,wk,t4,0,sC\n",
	})
	routes := map[string]Route{"r1": {ID: "r1"}}

	agg := aggregateTrips(a, routes)

	assert.True(t, agg.hasShapes)
	// r9 is not in the registry, blank direction reads as "0"
	require.Equal(t, []dirKey{{"r1", "0"}, {"r1", "1"}}, agg.order)
	assert.Equal(t, []string{"t1", "t3"}, agg.tripIDs[dirKey{"r1", "0"}])
	assert.Equal(t, map[string]struct{}{"sA": {}}, agg.shapeIDs[dirKey{"r1", "0"}])
	assert.Equal(t, map[string]struct{}{"sB": {}}, agg.shapeIDs[dirKey{"r1", "1"}])
}

func TestAggregateTripsNoShapes(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"trips.txt": "route_id,service_id,trip_id,direction_id,shape_id\n" +
			"r1,wk,t1,0,\n" +
			"r1,wk,t2,0,\n",
	})
	routes := map[string]Route{"r1": {ID: "r1"}}

	agg := aggregateTrips(a, routes)

	assert.False(t, agg.hasShapes)
	assert.Equal(t, []string{"t1", "t2"}, agg.tripIDs[dirKey{"r1", "0"}])
}

func TestReadShapes(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
			"sA,40.702,-74.002,3\n" +
			"sA,40.700,-74.000,1\n" +
			"sA,40.701,-74.001,2\n" +
			"sA,bad,-74.003,4\n" +
			"sA,40.703,-74.003,notanumber\n" +
			",40.7,-74.0,1\n",
	})

	shapes := readShapes(a)
	require.Len(t, shapes, 1)
	pts := shapes["sA"]
	require.Len(t, pts, 3)
	assert.Equal(t, 40.700, pts[0].lat)
	assert.Equal(t, 40.701, pts[1].lat)
	assert.Equal(t, 40.702, pts[2].lat)
}

func TestReadShapesStableTies(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
			"sA,1.0,1.0,1\n" +
			"sA,2.0,2.0,1\n" +
			"sA,0.5,0.5,0\n",
	})

	pts := readShapes(a)["sA"]
	require.Len(t, pts, 3)
	// ties keep file order
	assert.Equal(t, 0.5, pts[0].lat)
	assert.Equal(t, 1.0, pts[1].lat)
	assert.Equal(t, 2.0, pts[2].lat)
}

func TestSynthesizeTripPaths(t *testing.T) {
	a := openFeedZip(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"s1,First,40.700,-74.000\n" +
			"s2,Second,40.710,-74.010\n" +
			"s3,Third,bad,-74.020\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"t1,08:01:00,08:01:00,s2,2\n" +
			"t1,08:00:00,08:00:00,s1,1\n" +
			"t1,08:02:00,08:02:00,s3,3\n" +
			"t1,08:03:00,08:03:00,s9,4\n" +
			"t2,09:00:00,09:00:00,s1,bad\n",
	})

	paths := synthesizeTripPaths(a)
	require.Len(t, paths, 1)
	pts := paths["t1"]
	// s3 has an unparseable coordinate, s9 is unknown
	require.Len(t, pts, 2)
	assert.Equal(t, 40.700, pts[0].lat)
	assert.Equal(t, -74.010, pts[1].lng)
}

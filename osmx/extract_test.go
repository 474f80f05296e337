// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package osmx

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func road(nodes ...osm.NodeID) *osm.Way {
	w := &osm.Way{Tags: osm.Tags{{Key: "highway", Value: "residential"}}}
	for _, id := range nodes {
		w.Nodes = append(w.Nodes, osm.WayNode{ID: id})
	}
	return w
}

func TestExtractorIntersections(t *testing.T) {
	e := NewExtractor(NYCBounds)

	e.Node(&osm.Node{ID: 1, Lat: 40.7, Lon: -74.0})
	e.Node(&osm.Node{ID: 2, Lat: 40.71, Lon: -73.99})
	e.Node(&osm.Node{ID: 3, Lat: 40.72, Lon: -73.98})

	// node 1 is used by three roads, node 2 by two, node 3 by one
	e.Way(road(1, 2))
	e.Way(road(1, 3))
	e.Way(road(1, 2))

	xs := e.Intersections()
	require.Len(t, xs, 1)
	assert.Equal(t, int64(1), xs[0].NodeID)
	assert.Equal(t, 40.7, xs[0].Lat)
	assert.Equal(t, -74.0, xs[0].Lng)
}

func TestExtractorSkipsNonRoads(t *testing.T) {
	e := NewExtractor(NYCBounds)
	e.Node(&osm.Node{ID: 1, Lat: 40.7, Lon: -74.0})

	foot := &osm.Way{
		Tags:  osm.Tags{{Key: "highway", Value: "footway"}},
		Nodes: osm.WayNodes{{ID: 1}},
	}
	park := &osm.Way{
		Tags:  osm.Tags{{Key: "leisure", Value: "park"}},
		Nodes: osm.WayNodes{{ID: 1}},
	}
	for i := 0; i < 5; i++ {
		e.Way(foot)
		e.Way(park)
	}

	assert.Empty(t, e.Intersections())
}

func TestExtractorBounds(t *testing.T) {
	e := NewExtractor(NYCBounds)

	// Philadelphia, outside the NYC bound
	e.Node(&osm.Node{ID: 7, Lat: 39.9526, Lon: -75.1652})
	e.Way(road(7))
	e.Way(road(7))
	e.Way(road(7))

	assert.Empty(t, e.Intersections())

	e = NewExtractor(TristateBounds)
	e.Node(&osm.Node{ID: 7, Lat: 39.9526, Lon: -75.1652})
	e.Way(road(7))
	e.Way(road(7))
	e.Way(road(7))

	assert.Len(t, e.Intersections(), 1)
}

func TestRegion(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     string
	}{
		{41.05, -73.54, "Connecticut"},
		{40.0, -75.16, "Pennsylvania"},
		{40.73, -74.17, "New Jersey"},
		{40.45, -74.25, "New Jersey"},
		{41.03, -73.87, "New York"},
		{40.85, -73.88, "Bronx"},
		{40.73, -73.80, "Queens"},
		{40.63, -73.95, "Brooklyn"},
		{40.70, -74.02, "Manhattan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Region(tt.lat, tt.lng), "(%v, %v)", tt.lat, tt.lng)
	}
}

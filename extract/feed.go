// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"fmt"
	"os"

	"github.com/patrickbr/transitlines/feed"
	geojson "github.com/paulmach/go.geojson"
)

// FeedSpec is one fixed roster entry.
type FeedSpec struct {
	Stem   string
	Agency string
	Type   string

	// LongDistance selects the coarse simplification tolerance.
	LongDistance bool
}

// Feeds is the fixed roster, processed in order.
var Feeds = []FeedSpec{
	{Stem: "mta-subway", Agency: "MTA", Type: "subway"},
	{Stem: "path", Agency: "PATH", Type: "subway"},
	{Stem: "lirr", Agency: "LIRR", Type: "rail"},
	{Stem: "metro-north", Agency: "Metro-North", Type: "rail"},
	{Stem: "nj-transit-rail", Agency: "NJ Transit", Type: "rail"},
	{Stem: "amtrak", Agency: "Amtrak", Type: "rail", LongDistance: true},
	{Stem: "septa-rail", Agency: "SEPTA", Type: "rail"},
	{Stem: "ct-transit", Agency: "CT Transit", Type: "rail"},
}

// Run processes every roster feed in order and collects the produced
// features into one collection. A failed or absent feed never aborts the
// remaining ones.
func Run(feedsDir string, feeds []FeedSpec) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, spec := range feeds {
		for _, f := range ProcessFeed(feedsDir, spec) {
			fc.AddFeature(f)
		}
	}
	return fc
}

// ProcessFeed runs the pipeline for a single roster entry: filter rail
// routes, aggregate trips per (route, direction), pick one representative
// geometry per key and emit it as a feature. Missing archives and feeds
// without qualifying routes are skipped with a notice.
func ProcessFeed(feedsDir string, spec FeedSpec) []*geojson.Feature {
	path := feed.Find(feedsDir, spec.Stem)
	if path == "" {
		fmt.Fprintf(os.Stdout, "  [SKIP] %s: feed not found\n", spec.Stem)
		return nil
	}

	a, err := feed.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "  [SKIP] %s: %s\n", spec.Stem, err.Error())
		return nil
	}
	defer a.Close()

	routes := filterRoutes(a)
	if len(routes) == 0 {
		fmt.Fprintf(os.Stdout, "  [SKIP] %s: no rail/subway routes found\n", spec.Stem)
		return nil
	}

	agg := aggregateTrips(a, routes)

	epsilon := Epsilon
	if spec.LongDistance {
		epsilon = EpsilonLongDistance
	}

	features := make([]*geojson.Feature, 0)
	if agg.hasShapes {
		shapes := readShapes(a)
		for _, k := range agg.order {
			pts := selectShape(agg.shapeIDs[k], shapes)
			if pts == nil {
				continue
			}
			coords := simplify(lngLatCoords(pts), epsilon)
			if len(coords) < 2 {
				continue
			}
			features = append(features, buildFeature(coords, routes[k.routeID], spec.Agency, spec.Type))
		}
	} else {
		// no shapes anywhere in the feed, fall back to stop sequences
		paths := synthesizeTripPaths(a)
		for _, k := range agg.order {
			pts := bestPath(agg.tripIDs[k], paths)
			if pts == nil {
				continue
			}
			features = append(features, buildFeature(lngLatCoords(pts), routes[k.routeID], spec.Agency, spec.Type))
		}
	}

	fmt.Fprintf(os.Stdout, "  [OK] %s: %d line(s)\n", spec.Stem, len(features))
	return features
}

// lngLatCoords flips the latitude-first table order into GeoJSON axis order.
func lngLatCoords(pts []shapePoint) [][]float64 {
	coords := make([][]float64, len(pts))
	for i, p := range pts {
		coords[i] = []float64{p.lng, p.lat}
	}
	return coords
}

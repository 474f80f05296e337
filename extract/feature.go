// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"math"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// defaultColor is the neutral gray used when a route declares no color.
const defaultColor = "888888"

// displayName returns the first non-empty of short name, long name, route id.
func displayName(r Route) string {
	if r.ShortName != "" {
		return r.ShortName
	}
	if r.LongName != "" {
		return r.LongName
	}
	return r.ID
}

// round4 rounds to 4 decimal places (~11 m), half away from zero.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// buildFeature assembles the output record for one route direction. The
// coordinate order is (lng, lat), the reverse of the source tables.
func buildFeature(coords [][]float64, r Route, agency, typeLabel string) *geojson.Feature {
	rounded := make([][]float64, len(coords))
	for i, c := range coords {
		rounded[i] = []float64{round4(c[0]), round4(c[1])}
	}

	color := strings.TrimLeft(r.Color, "#")
	if color == "" {
		color = defaultColor
	}

	f := geojson.NewLineStringFeature(rounded)
	f.SetProperty("route_id", r.ID)
	f.SetProperty("route_short_name", displayName(r))
	f.SetProperty("route_color", "#"+color)
	f.SetProperty("agency", agency)
	f.SetProperty("type", typeLabel)
	return f
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"strconv"

	"github.com/patrickbr/transitlines/feed"
	"golang.org/x/exp/slices"
)

// readStops builds the stop id to coordinate lookup used by the synthesis
// path, dropping rows with unparseable coordinates.
func readStops(a *feed.Archive) map[string][2]float64 {
	stops := make(map[string][2]float64)
	for _, r := range a.Table("stops.txt") {
		lat, err := strconv.ParseFloat(r.Get("stop_lat"), 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Get("stop_lon"), 64)
		if err != nil {
			continue
		}
		stops[r.Get("stop_id")] = [2]float64{lat, lng}
	}
	return stops
}

// synthesizeTripPaths joins the stop_times table against the stop lookup,
// giving each trip its stop coordinates in stop_sequence order. This is the
// fallback geometry source for feeds without any shapes (e.g. PATH).
func synthesizeTripPaths(a *feed.Archive) map[string][]shapePoint {
	stops := readStops(a)
	paths := make(map[string][]shapePoint)
	for _, r := range a.Table("stop_times.txt") {
		coord, ok := stops[r.Get("stop_id")]
		if !ok {
			continue
		}
		seq, err := strconv.Atoi(r.Get("stop_sequence"))
		if err != nil {
			continue
		}
		tid := r.Get("trip_id")
		paths[tid] = append(paths[tid], shapePoint{seq, coord[0], coord[1]})
	}
	for tid := range paths {
		slices.SortStableFunc(paths[tid], bySeq)
	}
	return paths
}

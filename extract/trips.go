// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"strings"

	"github.com/patrickbr/transitlines/feed"
)

// dirKey identifies one direction of travel along one route.
type dirKey struct {
	routeID   string
	direction string
}

// tripAgg collects the candidate shape ids and the raw trip ids per
// (route, direction). Keys are recorded in first-seen order so the output
// order stays stable across runs.
type tripAgg struct {
	order     []dirKey
	shapeIDs  map[dirKey]map[string]struct{}
	tripIDs   map[dirKey][]string
	hasShapes bool
}

// aggregateTrips groups the trips table by (route, direction). Trips of
// routes outside the registry are ignored, a blank direction reads as "0".
// hasShapes is set iff at least one trip in the whole feed carries a shape
// id, so a feed is either fully shape-driven or fully synthesized.
func aggregateTrips(a *feed.Archive, routes map[string]Route) *tripAgg {
	agg := &tripAgg{
		shapeIDs: make(map[dirKey]map[string]struct{}),
		tripIDs:  make(map[dirKey][]string),
	}
	for _, t := range a.Table("trips.txt") {
		rid := t.Get("route_id")
		if _, ok := routes[rid]; !ok {
			continue
		}
		did := t.Get("direction_id")
		if did == "" {
			did = "0"
		}
		k := dirKey{rid, did}
		if _, ok := agg.tripIDs[k]; !ok {
			agg.order = append(agg.order, k)
		}
		if sid := strings.TrimSpace(t.Get("shape_id")); sid != "" {
			if agg.shapeIDs[k] == nil {
				agg.shapeIDs[k] = make(map[string]struct{})
			}
			agg.shapeIDs[k][sid] = struct{}{}
			agg.hasShapes = true
		}
		agg.tripIDs[k] = append(agg.tripIDs[k], t.Get("trip_id"))
	}
	return agg
}

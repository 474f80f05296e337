// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"strconv"
	"strings"

	"github.com/patrickbr/transitlines/feed"
)

// GTFS route types drawn on the map: 0 = tram/light rail, 1 = subway, 2 = rail.
var railTypes = map[int]bool{0: true, 1: true, 2: true}

// Route is the subset of a routes.txt row the pipeline keeps.
type Route struct {
	ID        string
	ShortName string
	LongName  string
	Color     string
	Type      int
}

// filterRoutes builds the registry of rail-like routes. Rows whose route_type
// does not parse or is not a rail type are excluded, the last row for a
// given id wins.
func filterRoutes(a *feed.Archive) map[string]Route {
	routes := make(map[string]Route)
	for _, r := range a.Table("routes.txt") {
		rt, err := strconv.Atoi(r.Get("route_type"))
		if err != nil || !railTypes[rt] {
			continue
		}
		routes[r.Get("route_id")] = Route{
			ID:        r.Get("route_id"),
			ShortName: strings.TrimSpace(r.Get("route_short_name")),
			LongName:  strings.TrimSpace(r.Get("route_long_name")),
			Color:     strings.TrimSpace(r.Get("route_color")),
			Type:      rt,
		}
	}
	return routes
}

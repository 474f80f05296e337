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
	"golang.org/x/exp/slices"
)

// shapePoint is one vertex of a shape or of a synthesized stop path.
type shapePoint struct {
	seq int
	lat float64
	lng float64
}

func bySeq(a, b shapePoint) int {
	return a.seq - b.seq
}

// readShapes groups the shapes table by shape id. A row is kept only if its
// sequence number and both coordinates parse. Each point list is
// stable-sorted by sequence, ties keep file order.
func readShapes(a *feed.Archive) map[string][]shapePoint {
	shapes := make(map[string][]shapePoint)
	for _, r := range a.Table("shapes.txt") {
		sid := strings.TrimSpace(r.Get("shape_id"))
		if sid == "" {
			continue
		}
		seq, err := strconv.Atoi(r.Get("shape_pt_sequence"))
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(r.Get("shape_pt_lat"), 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Get("shape_pt_lon"), 64)
		if err != nil {
			continue
		}
		shapes[sid] = append(shapes[sid], shapePoint{seq, lat, lng})
	}
	for sid := range shapes {
		slices.SortStableFunc(shapes[sid], bySeq)
	}
	return shapes
}

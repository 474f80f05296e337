// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"golang.org/x/exp/slices"
)

// bestPath picks the candidate with the most recorded points. Candidates are
// scanned in lexicographic id order and only a strictly longer path replaces
// the current winner, so ties go to the smallest id. Returns nil when the
// winner has fewer than 2 points.
func bestPath(ids []string, paths map[string][]shapePoint) []shapePoint {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	var best []shapePoint
	for _, id := range sorted {
		if pts := paths[id]; len(pts) > len(best) {
			best = pts
		}
	}
	if len(best) < 2 {
		return nil
	}
	return best
}

// selectShape chooses the representative geometry among a key's candidate
// shape ids.
func selectShape(cands map[string]struct{}, shapes map[string][]shapePoint) []shapePoint {
	ids := make([]string, 0, len(cands))
	for id := range cands {
		ids = append(ids, id)
	}
	return bestPath(ids, shapes)
}

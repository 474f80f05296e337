// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package extract

import (
	"math"
)

// Simplification tolerances, in planar coordinate degrees.
const (
	// Epsilon is ~8 m at mid-latitudes, for ordinary subway and rail routes.
	Epsilon = 0.0001
	// EpsilonLongDistance is ~80 m. Long-haul intercity polylines need far
	// more aggressive reduction to stay compact at normal map zoom.
	EpsilonLongDistance = 0.001
)

// simplify reduces a polyline using the Douglas-Peucker algorithm, treating
// coordinates as planar. Sequences of 2 or fewer points are returned as is.
// The survivors are always a subsequence of the input with both endpoints
// kept.
func simplify(coords [][]float64, epsilon float64) [][]float64 {
	if len(coords) <= 2 {
		return coords
	}

	keep := make([]bool, len(coords))
	keep[0] = true
	keep[len(coords)-1] = true

	// explicit stack over index ranges of the original sequence, instead of
	// recursing on copied subsequences
	stack := [][2]int{{0, len(coords) - 1}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		first, last := seg[0], seg[1]
		if last-first < 2 {
			continue
		}

		var maxD float64
		maxI := first
		for i := first + 1; i < last; i++ {
			d := perpendicularDist(coords[i][0], coords[i][1],
				coords[first][0], coords[first][1],
				coords[last][0], coords[last][1])
			if d > maxD {
				maxI = i
				maxD = d
			}
		}

		if maxD > epsilon {
			keep[maxI] = true
			stack = append(stack, [2]int{first, maxI}, [2]int{maxI, last})
		}
	}

	out := make([][]float64, 0, len(coords))
	for i, k := range keep {
		if k {
			out = append(out, coords[i])
		}
	}
	return out
}

// Calculate the perpendicular distance from point p to line segment [a, b],
// with the projection clamped to the segment
func perpendicularDist(px, py, lax, lay, lbx, lby float64) float64 {
	d := dist(lax, lay, lbx, lby) * dist(lax, lay, lbx, lby)

	if d == 0 {
		return dist(px, py, lax, lay)
	}
	t := ((px-lax)*(lbx-lax) + (py-lay)*(lby-lay)) / d
	if t < 0 {
		return dist(px, py, lax, lay)
	} else if t > 1 {
		return dist(px, py, lbx, lby)
	}

	return dist(px, py, lax+t*(lbx-lax), lay+t*(lby-lay))
}

// Calculate the distance between two points (x1, y1) and (x2, y2)
func dist(x1 float64, y1 float64, x2 float64, y2 float64) float64 {
	return math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
}

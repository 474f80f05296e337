// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package osmx

import (
	"context"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slices"
)

// Bounding boxes for the supported import regions.
var (
	// NYCBounds covers the five boroughs.
	NYCBounds = orb.Bound{Min: orb.Point{-74.2591, 40.4774}, Max: orb.Point{-73.7004, 40.9176}}

	// TristateBounds covers NY, NJ, CT and eastern PA.
	TristateBounds = orb.Bound{Min: orb.Point{-75.5, 39.8}, Max: orb.Point{-73.2, 41.5}}
)

// Road classes that do not form street intersections.
var skipHighways = map[string]bool{
	"footway":    true,
	"cycleway":   true,
	"path":       true,
	"steps":      true,
	"pedestrian": true,
	"service":    true,
	"track":      true,
}

// minWays is the number of qualifying roads that have to meet at a node for
// it to count as an intersection.
const minWays = 3

// Intersection is a node where minWays or more qualifying roads meet.
type Intersection struct {
	NodeID int64
	Lat    float64
	Lng    float64
}

// Extractor accumulates node coordinates and per-node way references over a
// single scan of an OSM extract.
type Extractor struct {
	bounds   orb.Bound
	wayCount map[osm.NodeID]int
	coords   map[osm.NodeID]orb.Point
}

// NewExtractor returns an extractor restricted to the given bound.
func NewExtractor(bounds orb.Bound) *Extractor {
	return &Extractor{
		bounds:   bounds,
		wayCount: make(map[osm.NodeID]int),
		coords:   make(map[osm.NodeID]orb.Point),
	}
}

// Node records the coordinate of an in-bounds node.
func (e *Extractor) Node(n *osm.Node) {
	p := orb.Point{n.Lon, n.Lat}
	if !e.bounds.Contains(p) {
		return
	}
	e.coords[n.ID] = p
}

// Way counts node references of qualifying road ways.
func (e *Extractor) Way(w *osm.Way) {
	hw := w.Tags.Find("highway")
	if hw == "" || skipHighways[hw] {
		return
	}
	for _, wn := range w.Nodes {
		e.wayCount[wn.ID]++
	}
}

// Intersections returns every node referenced by at least minWays qualifying
// ways with a known in-bounds coordinate, sorted by node id.
func (e *Extractor) Intersections() []Intersection {
	out := make([]Intersection, 0)
	for id, count := range e.wayCount {
		if count < minWays {
			continue
		}
		p, ok := e.coords[id]
		if !ok {
			continue
		}
		out = append(out, Intersection{NodeID: int64(id), Lat: p.Lat(), Lng: p.Lon()})
	}
	slices.SortFunc(out, func(a, b Intersection) int {
		switch {
		case a.NodeID < b.NodeID:
			return -1
		case a.NodeID > b.NodeID:
			return 1
		}
		return 0
	})
	return out
}

// ScanPBF feeds an OSM PBF extract through the extractor.
func ScanPBF(ctx context.Context, path string, e *Extractor) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			e.Node(o)
		case *osm.Way:
			e.Way(o)
		}
	}
	return scanner.Err()
}

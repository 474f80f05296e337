// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Intersection is one road intersection row bound for the intersections
// table.
type Intersection struct {
	NodeID  int64
	Lat     float64
	Lng     float64
	Borough string
}

const upsertIntersectionSQL = `
INSERT INTO intersections (osm_node_id, name, lat, lng, geom, borough)
VALUES ($1, NULL, $2, $3, $4, $5)
ON CONFLICT (osm_node_id) DO UPDATE SET
    lat = EXCLUDED.lat,
    lng = EXCLUDED.lng,
    geom = EXCLUDED.geom,
    borough = EXCLUDED.borough`

// UpsertIntersections writes intersections in batches.
func UpsertIntersections(ctx context.Context, pool *pgxpool.Pool, xs []Intersection) (int, error) {
	for start := 0; start < len(xs); start += batchSize {
		end := min(start+batchSize, len(xs))
		b := &pgx.Batch{}
		for _, x := range xs[start:end] {
			b.Queue(upsertIntersectionSQL, x.NodeID, x.Lat, x.Lng, ewkt(x.Lat, x.Lng), x.Borough)
		}
		if err := pool.SendBatch(ctx, b).Close(); err != nil {
			return start, err
		}
	}
	return len(xs), nil
}

// CountIntersections returns the number of rows in intersections.
func CountIntersections(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	var n int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM intersections").Scan(&n)
	return n, err
}

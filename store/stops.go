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

// Stop is one transit stop row bound for the transit_stops table. ID is the
// feed-unique key, {agency}_{gtfs stop id}.
type Stop struct {
	ID     string
	Name   string
	Lat    float64
	Lng    float64
	Type   string
	Agency string
}

const upsertStopSQL = `
INSERT INTO transit_stops (gtfs_stop_id, stop_name, lat, lng, geom, stop_type, agency)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (gtfs_stop_id) DO UPDATE SET
    stop_name = EXCLUDED.stop_name,
    lat = EXCLUDED.lat,
    lng = EXCLUDED.lng,
    geom = EXCLUDED.geom,
    stop_type = EXCLUDED.stop_type,
    agency = EXCLUDED.agency`

// UpsertStops writes stops in batches. Returns the number of rows sent; on
// error, the count of rows from fully committed batches.
func UpsertStops(ctx context.Context, pool *pgxpool.Pool, stops []Stop) (int, error) {
	for start := 0; start < len(stops); start += batchSize {
		end := min(start+batchSize, len(stops))
		b := &pgx.Batch{}
		for _, s := range stops[start:end] {
			b.Queue(upsertStopSQL, s.ID, s.Name, s.Lat, s.Lng, ewkt(s.Lat, s.Lng), s.Type, s.Agency)
		}
		if err := pool.SendBatch(ctx, b).Close(); err != nil {
			return start, err
		}
	}
	return len(stops), nil
}

// CountStops returns the number of rows in transit_stops.
func CountStops(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	var n int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM transit_stops").Scan(&n)
	return n, err
}

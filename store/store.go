// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// rows per batched insert
const batchSize = 1000

// Config holds the database connection settings.
type Config struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     string
}

// FromEnv reads the DB_* environment variables, falling back to the
// deployment defaults.
func FromEnv() Config {
	return Config{
		Name:     env("DB_NAME", "howfar"),
		User:     env("DB_USER", "howfar"),
		Password: env("DB_PASSWORD", "howfar"),
		Host:     env("DB_HOST", "localhost"),
		Port:     env("DB_PORT", "5432"),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DSN renders the config as a postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.Name)
}

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, c Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, c.DSN())
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// ewkt renders a point as extended WKT for the geometry column.
func ewkt(lat, lng float64) string {
	return fmt.Sprintf("SRID=4326;POINT(%v %v)", lng, lat)
}

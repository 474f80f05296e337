// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")

	c := FromEnv()
	assert.Equal(t, "howfar", c.Name)
	assert.Equal(t, "howfar", c.User)
	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, "5432", c.Port)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "transit")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	c := FromEnv()
	assert.Equal(t, "transit", c.Name)
	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, "5433", c.Port)
}

func TestDSN(t *testing.T) {
	c := Config{Name: "howfar", User: "u", Password: "p", Host: "localhost", Port: "5432"}
	assert.Equal(t, "postgres://u:p@localhost:5432/howfar", c.DSN())
}

func TestEWKT(t *testing.T) {
	assert.Equal(t, "SRID=4326;POINT(-74 40.7)", ewkt(40.7, -74.0))
	assert.Equal(t, "SRID=4326;POINT(-73.9877 40.7126)", ewkt(40.7126, -73.9877))
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/patrickbr/gtfsparser"
	"github.com/patrickbr/transitlines/store"
	flag "github.com/spf13/pflag"
)

// envFile is loaded if present; variables already set in the process
// environment win.
const envFile = "/opt/howfar/config/howfar.env"

type agencyInfo struct {
	name     string
	stopType string
}

// agencies maps feed base names to their agency label and stop type.
var agencies = map[string]agencyInfo{
	"mta-subway":            {"MTA", "subway"},
	"mta-bus-bronx":         {"MTA", "bus"},
	"mta-bus-brooklyn":      {"MTA", "bus"},
	"mta-bus-manhattan":     {"MTA", "bus"},
	"mta-bus-queens":        {"MTA", "bus"},
	"mta-bus-staten-island": {"MTA", "bus"},
	"mta-bus-company":       {"MTA", "bus"},
	"lirr":                  {"LIRR", "rail"},
	"metro-north":           {"Metro-North", "rail"},
	"nj-transit":            {"NJ Transit", "rail"},
	"nj-transit-rail":       {"NJ Transit", "rail"},
	"nj-transit-bus":        {"NJ Transit", "bus"},
	"path":                  {"PATH", "subway"},
	"nyc-ferry":             {"NYC Ferry", "ferry"},
	"amtrak":                {"Amtrak", "rail"},
	"ct-transit":            {"CT Transit", "bus"},
	"septa-bus":             {"SEPTA", "bus"},
	"septa-rail":            {"SEPTA", "rail"},
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "importstops - import transit stops from GTFS feeds into PostgreSQL\n\nUsage:\n\n  %s <feeds directory>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	help := flag.BoolP("help", "?", false, "this message")
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if len(flag.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "No feeds directory specified, see --help")
		os.Exit(1)
	}

	gtfsDir := flag.Args()[0]
	fi, err := os.Stat(gtfsDir)
	if err != nil || !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", gtfsDir)
		os.Exit(1)
	}

	godotenv.Load(envFile)

	ctx := context.Background()
	pool, err := store.Connect(ctx, store.FromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	entries, err := os.ReadDir(gtfsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	total := 0
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".zip") {
			continue
		}
		base := strings.TrimSuffix(strings.TrimSuffix(name, ".zip"), ".gtfs")
		info, ok := agencies[base]
		if !ok {
			info = agencyInfo{"Unknown", "other"}
		}

		fmt.Fprintf(os.Stdout, "Processing %s (%s, %s)...\n", name, info.name, info.stopType)

		stops := readStops(filepath.Join(gtfsDir, name), info)
		if len(stops) == 0 {
			fmt.Fprintln(os.Stdout, "  No stops found")
			continue
		}

		n, err := store.UpsertStops(ctx, pool, stops)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Error importing %s: %s\n", name, err.Error())
			continue
		}
		fmt.Fprintf(os.Stdout, "  Imported %d stops\n", n)
		total += n
	}

	dbCount, err := store.CountStops(ctx, pool)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "\nImport complete!\n")
	fmt.Fprintf(os.Stdout, "Total stops imported this run: %d\n", total)
	fmt.Fprintf(os.Stdout, "Total stops in database: %d\n", dbCount)
}

// readStops parses a feed archive leniently and shapes its stops for the
// transit_stops table. Stops at the null island coordinate are dropped.
func readStops(path string, info agencyInfo) []store.Stop {
	gfeed := gtfsparser.NewFeed()
	opts := gtfsparser.ParseOptions{UseDefValueOnError: true, DropErroneous: true, ZipFix: true}
	gfeed.SetParseOpts(opts)

	if err := gfeed.Parse(path); err != nil {
		fmt.Fprintf(os.Stderr, "  Error reading %s: %s\n", path, err.Error())
		return nil
	}

	stops := make([]store.Stop, 0, len(gfeed.Stops))
	for id, s := range gfeed.Stops {
		lat := float64(s.Lat)
		lng := float64(s.Lon)
		if lat == 0 || lng == 0 {
			continue
		}
		stops = append(stops, store.Stop{
			ID:     info.name + "_" + id,
			Name:   s.Name,
			Lat:    lat,
			Lng:    lng,
			Type:   info.stopType,
			Agency: info.name,
		})
	}
	return stops
}

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

	"github.com/patrickbr/transitlines/osmx"
	"github.com/patrickbr/transitlines/store"
	flag "github.com/spf13/pflag"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "importosm - import road intersections from an OSM extract into PostgreSQL\n\nUsage:\n\n  %s [--tristate] <osm pbf file>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	tristate := flag.BoolP("tristate", "t", false, "use the wider NY/NJ/CT/PA bounding box")
	help := flag.BoolP("help", "?", false, "this message")
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if len(flag.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "No OSM extract specified, see --help")
		fmt.Fprintln(os.Stderr, "\nDownload a NYC extract from:")
		fmt.Fprintln(os.Stderr, "  https://download.geofabrik.de/north-america/us/new-york.html")
		os.Exit(1)
	}

	pbfPath := flag.Args()[0]

	bounds := osmx.NYCBounds
	if *tristate {
		bounds = osmx.TristateBounds
	}

	fmt.Fprintf(os.Stdout, "Processing %s...\n", pbfPath)

	ctx := context.Background()
	ex := osmx.NewExtractor(bounds)
	if err := osmx.ScanPBF(ctx, pbfPath, ex); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading OSM extract:", err.Error())
		os.Exit(1)
	}

	intersections := ex.Intersections()
	fmt.Fprintf(os.Stdout, "Found %d intersections\n", len(intersections))

	if len(intersections) == 0 {
		fmt.Fprintln(os.Stdout, "No intersections found. Check the OSM file and bounds.")
		return
	}

	pool, err := store.Connect(ctx, store.FromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	rows := make([]store.Intersection, len(intersections))
	for i, x := range intersections {
		rows[i] = store.Intersection{
			NodeID:  x.NodeID,
			Lat:     x.Lat,
			Lng:     x.Lng,
			Borough: osmx.Region(x.Lat, x.Lng),
		}
	}

	fmt.Fprintf(os.Stdout, "Importing %d intersections to database...\n", len(rows))
	if _, err := store.UpsertIntersections(ctx, pool, rows); err != nil {
		fmt.Fprintln(os.Stderr, "Error importing intersections:", err.Error())
		os.Exit(1)
	}

	n, err := store.CountIntersections(ctx, pool)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "Database now has %d intersections\n", n)
	fmt.Fprintln(os.Stdout, "Import complete!")
}

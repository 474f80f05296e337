// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickbr/transitlines/extract"
	flag "github.com/spf13/pflag"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "transitlines - extract subway & rail route geometries from GTFS feeds\n\nUsage:\n\n  %s [-o <outputfile>] <feeds directory>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	outputPath := flag.StringP("output", "o", "public/data/transit-lines.geojson", "GeoJSON output file")
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

	feedsDir := flag.Args()[0]
	fi, err := os.Stat(feedsDir)
	if err != nil || !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", feedsDir)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Processing feeds from %s...\n", feedsDir)

	fc := extract.Run(feedsDir, extract.Feeds)

	out, err := json.Marshal(fc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	if dir := filepath.Dir(*outputPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err.Error())
			os.Exit(1)
		}
	}
	if err := os.WriteFile(*outputPath, out, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "\nWrote %d features to %s (%.0f KB)\n", len(fc.Features), *outputPath, float64(len(out))/1024.0)
}

// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package feed

import (
	"archive/zip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Row is a single table record, keyed by header column name.
type Row map[string]string

// Get returns the value for column key, or "" if the column is absent.
func (r Row) Get(key string) string {
	return r[key]
}

// Find locates the archive for a feed base name inside dir, trying the
// {stem}.gtfs.zip and {stem}.zip naming conventions. Returns "" if
// neither exists.
func Find(dir, stem string) string {
	for _, suffix := range []string{".gtfs.zip", ".zip"} {
		p := filepath.Join(dir, stem+suffix)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Archive is an opened feed zip.
type Archive struct {
	zr *zip.ReadCloser
}

// Open opens the feed archive at path.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &Archive{zr: zr}, nil
}

// Close releases the underlying archive handle.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Table reads the named table into header-keyed rows. A missing table reads
// as an empty one. Records that fail CSV parsing are skipped, records
// shorter than the header read as empty strings for their missing columns.
func (a *Archive) Table(name string) []Row {
	var f *zip.File
	for _, zf := range a.zr.File {
		if strings.EqualFold(zf.Name, name) {
			f = zf
			break
		}
	}
	if f == nil {
		return nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

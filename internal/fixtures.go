// Package internal holds helpers shared by the package tests.
package internal

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"io"
	"iter"
	"os"
	"testing"
)

// CoverCase is a recorded coverage: a GeoJSON document, the zoom it was covered at
// and the expected tiles as [x, y, z] triples.
type CoverCase struct {
	Zoom    uint32          `json:"zoom"`
	GeoJSON json.RawMessage `json:"geojson"`
	Tiles   [][3]uint32     `json:"tiles"`
}

// CoverCases iterates over the cases stored as JSON files in a .tar.gz archive, keyed by file name.
func CoverCases(t *testing.T, archivePath string) iter.Seq2[string, CoverCase] {
	return func(yield func(string, CoverCase) bool) {
		t.Helper()

		file, err := os.Open(archivePath)
		if err != nil {
			t.Fatal(err)
		}
		defer file.Close()

		gzReader, err := gzip.NewReader(file)
		if err != nil {
			t.Fatal(err)
		}
		defer gzReader.Close()

		tarReader := tar.NewReader(gzReader)
		for {
			hdr, err := tarReader.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if hdr.Typeflag != tar.TypeReg {
				continue
			}

			var c CoverCase
			if err := json.NewDecoder(tarReader).Decode(&c); err != nil {
				t.Fatalf("%s: %v", hdr.Name, err)
			}
			if !yield(hdr.Name, c) {
				return
			}
		}
	}
}

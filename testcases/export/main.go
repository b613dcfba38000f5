// seehuhn.de/go/selection - selection masks for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the test case definitions to JSON, for use by
// external reference generators.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/selection/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	verbose := flag.Bool("v", false, "log every test case")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "export").
		Logger()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			log.Debug().Str("case", jtc.Name).Str("op", jtc.Op.Type).Msg("exporting")
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := writeJSON(*outFile, out); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
	log.Info().Int("cases", len(out.TestCases)).Str("file", *outFile).Msg("test cases written")
}

func writeJSON(fname string, v any) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

type jsonTestCase struct {
	Name   string    `json:"name"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Shape  jsonShape `json:"shape"`
	Op     jsonOp    `json:"op"`
	CTM    []float64 `json:"ctm,omitempty"`
}

type jsonShape struct {
	Type   string      `json:"type"`
	Rect   []float64   `json:"rect,omitempty"` // x, y, width, height
	Oval   []float64   `json:"oval,omitempty"` // cx, cy, rx, ry
	Points [][]float64 `json:"points,omitempty"`
}

type jsonOp struct {
	Type      string  `json:"type"`
	Radius    float64 `json:"radius,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	LineJoin  string  `json:"line_join,omitempty"`
	Antialias bool    `json:"antialias,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	switch s := tc.Shape.(type) {
	case testcases.Rect:
		jtc.Shape = jsonShape{Type: "rect", Rect: []float64{s.X, s.Y, s.Width, s.Height}}
	case testcases.Oval:
		jtc.Shape = jsonShape{Type: "oval", Oval: []float64{s.CX, s.CY, s.RX, s.RY}}
	case testcases.Polygon:
		jtc.Shape = jsonShape{Type: "polygon", Points: make([][]float64, len(s.Points))}
		for i, p := range s.Points {
			jtc.Shape.Points[i] = []float64{p.X, p.Y}
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = jsonOp{Type: "fill", Antialias: op.Antialias}
	case testcases.Outline:
		jtc.Op = jsonOp{Type: "outline", LineWidth: op.Width, LineJoin: op.Join.String()}
	case testcases.Invert:
		jtc.Op = jsonOp{Type: "invert"}
	case testcases.Expand:
		jtc.Op = jsonOp{Type: "expand", Radius: op.R}
	case testcases.Contract:
		jtc.Op = jsonOp{Type: "contract", Radius: op.R}
	case testcases.Border:
		jtc.Op = jsonOp{Type: "border", Radius: op.R}
	case testcases.Feather:
		jtc.Op = jsonOp{Type: "feather", Radius: op.R}
	case testcases.Smooth:
		jtc.Op = jsonOp{Type: "smooth", Radius: float64(op.R)}
	}
	return jtc
}

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

// Command genpdf generates reference images for the selection tests.
// Fill and outline cases are drawn into PDF files, which are then
// rendered to PNG using Ghostscript.  Mask operations have no PDF
// equivalent and are skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/selection"
	"seehuhn.de/go/selection/testcases"
)

var errNoReference = errors.New("no PDF equivalent")

func main() {
	refDir := flag.String("dir", "testdata/reference", "output directory")
	gs := flag.String("gs", "gs", "Ghostscript executable")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("component", "genpdf").
		Logger()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("cannot create output directory")
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			err := generatePDF(tc, pdfPath)
			if errors.Is(err, errNoReference) {
				log.Debug().Str("case", name).Msg("skipped")
				continue
			} else if err != nil {
				log.Fatal().Err(fmt.Errorf("%s: %w", name, err)).Msg("PDF generation failed")
			}

			if err := renderPNG(*gs, pdfPath, pngPath); err != nil {
				log.Fatal().Err(fmt.Errorf("%s: %w", name, err)).Msg("Ghostscript failed")
			}
			count++
		}
	}
	log.Info().Int("images", count).Str("dir", *refDir).Msg("reference images written")
}

// toSelection converts the geometry of a test case.
func toSelection(s testcases.Shape) selection.Selection {
	switch s := s.(type) {
	case testcases.Rect:
		return selection.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	case testcases.Oval:
		return selection.Oval{CX: s.CX, CY: s.CY, RX: s.RX, RY: s.RY}
	case testcases.Polygon:
		return selection.NewPolygon(s.Points)
	default:
		panic(fmt.Sprintf("unexpected shape %T", s))
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	outline, isOutline := tc.Op.(testcases.Outline)
	if _, isFill := tc.Op.(testcases.Fill); !isFill && !isOutline {
		return errNoReference
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0 = not selected, 255 = selected
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; masks use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	if isOutline {
		page.SetLineWidth(outline.Width)
		page.SetLineJoin(outline.Join)
		page.SetMiterLimit(10)
	}

	p := selection.Path(toSelection(tc.Shape))
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdCubeTo:
			c := p.Coords[k : k+3]
			page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}

	if isOutline {
		page.Stroke()
	} else {
		page.Fill()
	}
	return page.Close()
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

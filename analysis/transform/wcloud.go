// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of TMINE.
//
//  TMINE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  TMINE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with TMINE.  If not, see <https://www.gnu.org/licenses/>.

package transform

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"tmine/analysis"
	"tmine/results"

	"github.com/psykhi/wordclouds"
)

// cloudPalette is cycled through by the renderer when coloring
// the words
var cloudPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

func cloudWeights(words results.CloudWordList) map[string]int {
	ans := make(map[string]int, len(words))
	for _, w := range words {
		ans[w.Word] = w.Count
	}
	return ans
}

// CloudToPNG renders word weights into a PNG image on a white
// background. Word placement is deterministic so repeated requests
// over the same text produce the same image. The caller must make
// sure fontPath points to an existing TTF file with glyphs for the
// words' script.
func CloudToPNG(data *results.WordCloud, setup *analysis.CloudSetup, fontPath string) ([]byte, error) {
	wc := wordclouds.NewWordcloud(
		cloudWeights(data.Words),
		wordclouds.FontFile(fontPath),
		wordclouds.FontMinSize(setup.FontMinSize),
		wordclouds.FontMaxSize(setup.FontMaxSize),
		wordclouds.Width(setup.Width),
		wordclouds.Height(setup.Height),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(cloudPalette),
		wordclouds.RandomPlacement(false),
	)
	var buf bytes.Buffer
	if err := png.Encode(&buf, wc.Draw()); err != nil {
		return nil, fmt.Errorf("failed to encode word cloud image: %w", err)
	}
	return buf.Bytes(), nil
}

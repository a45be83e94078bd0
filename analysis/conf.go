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

package analysis

import (
	"fmt"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	DfltCloudWidth       = 800
	DfltCloudHeight      = 400
	DfltCloudMaxWords    = 200
	DfltCloudFontMinSize = 10
	DfltCloudFontMaxSize = 128

	DfltNodeMinFreqLimit = 20
	DfltEdgeMinFreqLimit = 10

	DfltKWICMaxWindow = 15
)

// CloudSetup configures the rendered word cloud geometry.
type CloudSetup struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// MaxWords limits the number of words drawn into the cloud.
	// The word frequency list itself is not affected.
	MaxWords int `json:"maxWords"`

	FontMinSize int `json:"fontMinSize"`
	FontMaxSize int `json:"fontMaxSize"`
}

func (cs *CloudSetup) ValidateAndDefaults(confContext string) error {
	if cs.Width == 0 {
		cs.Width = DfltCloudWidth
		log.Warn().
			Int("value", DfltCloudWidth).
			Msgf("`%s.width` not set, using default", confContext)
	}
	if cs.Height == 0 {
		cs.Height = DfltCloudHeight
		log.Warn().
			Int("value", DfltCloudHeight).
			Msgf("`%s.height` not set, using default", confContext)
	}
	if cs.MaxWords == 0 {
		cs.MaxWords = DfltCloudMaxWords
		log.Warn().
			Int("value", DfltCloudMaxWords).
			Msgf("`%s.maxWords` not set, using default", confContext)
	}
	if cs.FontMinSize == 0 {
		cs.FontMinSize = DfltCloudFontMinSize
	}
	if cs.FontMaxSize == 0 {
		cs.FontMaxSize = DfltCloudFontMaxSize
	}
	if cs.FontMinSize >= cs.FontMaxSize {
		return fmt.Errorf("`%s.fontMinSize` must be smaller than `%s.fontMaxSize`", confContext, confContext)
	}
	return nil
}

// NetworkSetup configures upper limits for the co-occurrence
// network frequency thresholds clients may ask for.
type NetworkSetup struct {
	NodeMinFreqLimit int `json:"nodeMinFreqLimit"`
	EdgeMinFreqLimit int `json:"edgeMinFreqLimit"`
}

func (ns *NetworkSetup) ValidateAndDefaults(confContext string) error {
	if ns.NodeMinFreqLimit == 0 {
		ns.NodeMinFreqLimit = DfltNodeMinFreqLimit
		log.Warn().
			Int("value", DfltNodeMinFreqLimit).
			Msgf("`%s.nodeMinFreqLimit` not set, using default", confContext)
	}
	if ns.EdgeMinFreqLimit == 0 {
		ns.EdgeMinFreqLimit = DfltEdgeMinFreqLimit
		log.Warn().
			Int("value", DfltEdgeMinFreqLimit).
			Msgf("`%s.edgeMinFreqLimit` not set, using default", confContext)
	}
	if ns.NodeMinFreqLimit < 1 || ns.EdgeMinFreqLimit < 1 {
		return fmt.Errorf("`%s` frequency limits must be positive", confContext)
	}
	return nil
}

// KWICSetup configures limits for keyword-in-context searches.
type KWICSetup struct {
	MaxWindow int `json:"maxWindow"`
}

func (ks *KWICSetup) ValidateAndDefaults(confContext string) error {
	if ks.MaxWindow == 0 {
		ks.MaxWindow = DfltKWICMaxWindow
		log.Warn().
			Int("value", DfltKWICMaxWindow).
			Msgf("`%s.maxWindow` not set, using default", confContext)
	}
	if ks.MaxWindow < 1 {
		return fmt.Errorf("`%s.maxWindow` must be positive", confContext)
	}
	return nil
}

// AnalysisSetup defines a root configuration of the text analysis
// functions. Everything here is optional - with an empty setup,
// the service runs with the embedded dictionary, the built-in stop
// word list and the default analyzer limits. Only the rendered
// word cloud requires fontPath to be set.
type AnalysisSetup struct {

	// FontPath is a path to a TTF font with Japanese glyphs.
	// Without it, the word cloud is available as raw data only.
	FontPath string `json:"fontPath"`

	// StopWordsFile replaces the built-in default stop word list.
	// The file is watched for changes so it can be edited without
	// restarting the service.
	StopWordsFile string `json:"stopWordsFile"`

	// UserDictPath is an optional user dictionary for the embedded
	// morphological tagger.
	UserDictPath string `json:"userDictPath"`

	// RemoteTaggerURL, if set, makes workers use an external
	// tagging service instead of the embedded tagger.
	RemoteTaggerURL string `json:"remoteTaggerUrl"`

	WordCloud *CloudSetup `json:"wordCloud"`

	Network *NetworkSetup `json:"network"`

	KWIC *KWICSetup `json:"kwic"`
}

// HasFont tests whether a font for the rendered word cloud
// is configured.
func (as *AnalysisSetup) HasFont() bool {
	return as.FontPath != ""
}

func (as *AnalysisSetup) ValidateAndDefaults(confContext string) error {
	if as == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if as.FontPath != "" {
		isFile, err := fs.IsFile(as.FontPath)
		if err != nil {
			return fmt.Errorf("failed to test `%s.fontPath`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.fontPath` does not point to a file", confContext)
		}
	}
	if as.StopWordsFile != "" {
		isFile, err := fs.IsFile(as.StopWordsFile)
		if err != nil {
			return fmt.Errorf("failed to test `%s.stopWordsFile`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.stopWordsFile` does not point to a file", confContext)
		}
	}
	if as.UserDictPath != "" {
		isFile, err := fs.IsFile(as.UserDictPath)
		if err != nil {
			return fmt.Errorf("failed to test `%s.userDictPath`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.userDictPath` does not point to a file", confContext)
		}
	}
	if as.WordCloud == nil {
		as.WordCloud = &CloudSetup{}
	}
	if err := as.WordCloud.ValidateAndDefaults(confContext + ".wordCloud"); err != nil {
		return err
	}
	if as.Network == nil {
		as.Network = &NetworkSetup{}
	}
	if err := as.Network.ValidateAndDefaults(confContext + ".network"); err != nil {
		return err
	}
	if as.KWIC == nil {
		as.KWIC = &KWICSetup{}
	}
	return as.KWIC.ValidateAndDefaults(confContext + ".kwic")
}

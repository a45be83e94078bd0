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

package handlers

import (
	"testing"
	"tmine/analysis"
	"tmine/merror"

	"github.com/stretchr/testify/assert"
)

func TestCheckRangeArgAppliesDefault(t *testing.T) {
	value, err := checkRangeArg("nodeMinFreq", 0, 2, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestCheckRangeArgKeepsProvidedValue(t *testing.T) {
	value, err := checkRangeArg("nodeMinFreq", 7, 2, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestCheckRangeArgRejectsValueAboveLimit(t *testing.T) {
	_, err := checkRangeArg("nodeMinFreq", 21, 2, 1, 20)
	var inpErr merror.InputError
	assert.ErrorAs(t, err, &inpErr)
}

func TestCheckRangeArgRejectsNegativeValue(t *testing.T) {
	_, err := checkRangeArg("window", -3, 5, 1, 15)
	assert.Error(t, err)
}

func TestCheckPOSSelectionAppliesDefault(t *testing.T) {
	ans, err := checkPOSSelection(nil, analysis.ReportPOSOptions)
	assert.NoError(t, err)
	assert.Equal(t, analysis.DfltPOSSelection, ans)
}

func TestCheckPOSSelectionKeepsValidSelection(t *testing.T) {
	ans, err := checkPOSSelection([]string{"名詞", "連体詞"}, analysis.ReportPOSOptions)
	assert.NoError(t, err)
	assert.Equal(t, []string{"名詞", "連体詞"}, ans)
}

func TestCheckPOSSelectionRejectsUnknownCategory(t *testing.T) {
	_, err := checkPOSSelection([]string{"名詞", "接続詞"}, analysis.NetworkPOSOptions)
	assert.Error(t, err)
}

func TestResolveStopWordsPrefersClientList(t *testing.T) {
	provider, err := analysis.NewStopWordsProvider(&analysis.AnalysisSetup{})
	assert.NoError(t, err)
	a := &Actions{stopWords: provider}
	custom := "犬,猫"
	assert.Equal(t, "犬,猫", a.resolveStopWords(&custom))
}

func TestResolveStopWordsEmptyListDisablesStopWords(t *testing.T) {
	provider, err := analysis.NewStopWordsProvider(&analysis.AnalysisSetup{})
	assert.NoError(t, err)
	a := &Actions{stopWords: provider}
	empty := ""
	assert.Equal(t, "", a.resolveStopWords(&empty))
}

func TestResolveStopWordsFallsBackToDefault(t *testing.T) {
	provider, err := analysis.NewStopWordsProvider(&analysis.AnalysisSetup{})
	assert.NoError(t, err)
	a := &Actions{stopWords: provider}
	assert.Equal(t, analysis.DefaultStopWordsRaw(), a.resolveStopWords(nil))
}

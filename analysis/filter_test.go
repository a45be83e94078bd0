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
	"testing"
	"tmine/morph"

	"github.com/stretchr/testify/assert"
)

var allPOS = []string{"名詞", "動詞", "形容詞"}

func TestFiltersRejectNonTargetPOS(t *testing.T) {
	m := morph.Morpheme{Surface: "が", POS: "助詞", POSDetail1: "格助詞", BaseForm: "が"}
	assert.False(t, ReportFilter(m, allPOS, nil))
	assert.False(t, CloudFilter(m, allPOS, nil))
	assert.False(t, NetworkFilter(m, allPOS, nil))
}

func TestFiltersRejectStopWords(t *testing.T) {
	m := morph.Morpheme{Surface: "猫", POS: "名詞", POSDetail1: "一般", BaseForm: "猫"}
	stop := BuildStopWordSet("猫")
	assert.False(t, ReportFilter(m, allPOS, stop))
	assert.False(t, CloudFilter(m, allPOS, stop))
	assert.False(t, NetworkFilter(m, allPOS, stop))
}

func TestStopWordTestUsesRawBaseForm(t *testing.T) {
	// the stop word set is case-folded but base forms are tested
	// as-is, so a capitalized base form passes through
	m := morph.Morpheme{Surface: "Go", POS: "名詞", POSDetail1: "固有名詞", BaseForm: "Go"}
	stop := BuildStopWordSet("Go")
	assert.True(t, stop.Contains("go"))
	assert.True(t, ReportFilter(m, allPOS, stop))
	assert.True(t, CloudFilter(m, allPOS, stop))
	assert.True(t, NetworkFilter(m, allPOS, stop))
}

func TestVerbalNounExclusionAsymmetry(t *testing.T) {
	m := morph.Morpheme{Surface: "勉強", POS: "名詞", POSDetail1: "サ変接続", BaseForm: "勉強"}
	assert.False(t, ReportFilter(m, allPOS, nil))
	assert.True(t, CloudFilter(m, allPOS, nil))
	assert.False(t, NetworkFilter(m, allPOS, nil))
}

func TestAdverbialNounExclusionAsymmetry(t *testing.T) {
	m := morph.Morpheme{Surface: "今日", POS: "名詞", POSDetail1: "副詞可能", BaseForm: "今日"}
	assert.False(t, ReportFilter(m, allPOS, nil))
	assert.True(t, CloudFilter(m, allPOS, nil))
	assert.False(t, NetworkFilter(m, allPOS, nil))
}

func TestFiltersExcludeNumerals(t *testing.T) {
	m := morph.Morpheme{Surface: "三", POS: "名詞", POSDetail1: "数", BaseForm: "三"}
	assert.False(t, ReportFilter(m, allPOS, nil))
	assert.False(t, CloudFilter(m, allPOS, nil))
	assert.False(t, NetworkFilter(m, allPOS, nil))
}

func TestNetworkFilterDropsShortNonNouns(t *testing.T) {
	m := morph.Morpheme{Surface: "し", POS: "動詞", POSDetail1: "自立", BaseForm: "為"}
	assert.True(t, ReportFilter(m, allPOS, nil))
	assert.True(t, CloudFilter(m, allPOS, nil))
	assert.False(t, NetworkFilter(m, allPOS, nil))
}

func TestNetworkFilterKeepsShortNouns(t *testing.T) {
	m := morph.Morpheme{Surface: "猫", POS: "名詞", POSDetail1: "一般", BaseForm: "猫"}
	assert.True(t, NetworkFilter(m, allPOS, nil))
}

func TestNetworkFilterKeepsTwoRuneVerbs(t *testing.T) {
	m := morph.Morpheme{Surface: "走っ", POS: "動詞", POSDetail1: "自立", BaseForm: "走る"}
	assert.True(t, NetworkFilter(m, allPOS, nil))
}

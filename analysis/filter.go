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
	"tmine/morph"
	"unicode/utf8"

	"github.com/czcorpus/cnc-gokit/collections"
)

// Noun sub-classifications excluded by the individual analyzers.
// The sets are tuned per visualization and must stay separate.
var (
	reportExcludedNounDetails  = []string{"非自立", "数", "代名詞", "接尾", "サ変接続", "副詞可能"}
	cloudExcludedNounDetails   = []string{"数", "非自立", "代名詞", "接尾"}
	networkExcludedNounDetails = []string{"非自立", "数", "代名詞", "接尾", "サ変接続", "副詞可能"}
)

// ReportFilter tests whether a morpheme counts into the word
// frequency report.
func ReportFilter(m morph.Morpheme, targetPOS []string, stopWords StopWordSet) bool {
	if !collections.SliceContains(targetPOS, m.POS) || stopWords.Contains(m.BaseForm) {
		return false
	}
	if m.IsNoun() && collections.SliceContains(reportExcludedNounDetails, m.POSDetail1) {
		return false
	}
	return true
}

// CloudFilter tests whether a morpheme counts into the word cloud.
func CloudFilter(m morph.Morpheme, targetPOS []string, stopWords StopWordSet) bool {
	if !collections.SliceContains(targetPOS, m.POS) || stopWords.Contains(m.BaseForm) {
		return false
	}
	if m.IsNoun() && collections.SliceContains(cloudExcludedNounDetails, m.POSDetail1) {
		return false
	}
	return true
}

// NetworkFilter tests whether a morpheme may become a node of the
// co-occurrence network. Besides its own noun sub-classification
// set, it also drops single-character base forms unless they are
// nouns.
func NetworkFilter(m morph.Morpheme, targetPOS []string, stopWords StopWordSet) bool {
	if !collections.SliceContains(targetPOS, m.POS) || stopWords.Contains(m.BaseForm) {
		return false
	}
	if m.IsNoun() {
		return !collections.SliceContains(networkExcludedNounDetails, m.POSDetail1)
	}
	return utf8.RuneCountInString(m.BaseForm) >= 2
}

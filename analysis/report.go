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
	"sort"
	"tmine/morph"
	"tmine/rdb"
	"tmine/results"
)

// GenerateWordReport builds a ranked frequency list of base forms.
// The relative frequency of each row relates its count to the size
// of the whole morpheme sequence, not just its filtered part, so
// the percentages do not sum up to 100.
func GenerateWordReport(
	seq morph.Sequence,
	targetPOS []string,
	stopWords StopWordSet,
) *results.WordReport {
	ans := &results.WordReport{TotalMorphemes: len(seq)}
	if len(seq) == 0 {
		ans.EmptyReason = ReasonNoMorphemes
		return ans
	}
	counts := make(map[string]int)
	// base forms in the order of their first occurrence; this
	// makes the ranking of equally frequent words deterministic
	order := make([]string, 0, len(seq)/2)
	reprPOS := make(map[string]string)
	numTarget := 0
	for _, m := range seq {
		if !ReportFilter(m, targetPOS, stopWords) {
			continue
		}
		numTarget++
		if _, ok := counts[m.BaseForm]; !ok {
			order = append(order, m.BaseForm)
			reprPOS[m.BaseForm] = m.POS
		}
		counts[m.BaseForm]++
	}
	ans.TargetMorphemes = numTarget
	if numTarget == 0 {
		ans.EmptyReason = ReasonAllFiltered
		return ans
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	rows := make(results.WordReportRowList, len(order))
	for i, word := range order {
		count := counts[word]
		rows[i] = results.WordReportRow{
			Rank:     i + 1,
			BaseForm: word,
			POS:      reprPOS[word],
			Count:    count,
			RelFreq:  rdb.NormRound(float64(count) / float64(len(seq)) * 100),
		}
	}
	ans.Rows = rows
	return ans
}

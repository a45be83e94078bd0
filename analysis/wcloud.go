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
	"tmine/results"
)

// GenerateWordCloud produces word weights for cloud rendering.
// Words are sorted by their count in descending order with ties
// resolved by the first occurrence in the text. At most maxWords
// items are returned (no limit when maxWords <= 0).
func GenerateWordCloud(
	seq morph.Sequence,
	targetPOS []string,
	stopWords StopWordSet,
	maxWords int,
) *results.WordCloud {
	ans := &results.WordCloud{}
	if len(seq) == 0 {
		ans.EmptyReason = ReasonNoMorphemes
		return ans
	}
	counts := make(map[string]int)
	order := make([]string, 0, len(seq)/2)
	corpusSize := 0
	for _, m := range seq {
		if !CloudFilter(m, targetPOS, stopWords) {
			continue
		}
		corpusSize++
		if _, ok := counts[m.BaseForm]; !ok {
			order = append(order, m.BaseForm)
		}
		counts[m.BaseForm]++
	}
	ans.CorpusSize = corpusSize
	if corpusSize == 0 {
		ans.EmptyReason = ReasonAllFiltered
		return ans
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if maxWords > 0 && len(order) > maxWords {
		order = order[:maxWords]
	}
	words := make(results.CloudWordList, len(order))
	for i, word := range order {
		words[i] = results.CloudWord{Word: word, Count: counts[word]}
	}
	ans.Words = words
	return ans
}

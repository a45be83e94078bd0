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
	"regexp"
	"strings"
)

// DefaultStopWords is the built-in stop word list applied when
// neither the service configuration nor the request provides
// a custom one. The entries are base forms.
var DefaultStopWords = []string{
	// frequent verbs, auxiliaries and formal nouns
	"する", "ある", "いる", "なる", "いう", "できる", "思う", "やる", "ない", "よい", "良い",
	"いく", "来る", "おる", "ます", "です", "だ", "れる", "られる", "せる", "させる", "いただく",
	"こと", "もの", "とき", "ところ", "ため", "よう", "うち", "ほう", "的", "的だ",
	"私", "あなた", "彼", "彼女", "これ", "それ", "あれ", "ここ", "そこ", "あそこ", "方", "為", "訳", "筈",
	// adjectives and adverbs too generic to be of interest
	"大きい", "小さい", "高い", "低い", "嬉しい", "楽しい", "悲しい", "同じ", "様々", "色々",
	"非常", "大変", "少し", "かなり", "いつも", "よく", "本当に", "ちょっと", "たくさん", "多く",
	// symbols which often end up as their own base forms
	"/", ":", "\"", ".", ",", "、", "。", " ", "　",
	"(", ")", "[", "]", "（", "）", "「", "」", "【", "】",
	"&", "-", "_", "=", "+", "*", "%", "#", "@", "!", "?",
}

// DefaultStopWordsRaw returns the built-in list in the raw textual
// format accepted by BuildStopWordSet, one entry per line.
func DefaultStopWordsRaw() string {
	return strings.Join(DefaultStopWords, "\n")
}

// StopWordSet is a set of base forms excluded from analyses.
type StopWordSet map[string]struct{}

// Contains tests a base form for membership. The value is tested
// as-is, i.e. without any case normalization.
func (ss StopWordSet) Contains(baseForm string) bool {
	_, ok := ss[baseForm]
	return ok
}

func (ss StopWordSet) Size() int {
	return len(ss)
}

var stopWordSplitRx = regexp.MustCompile(`[,\n]`)

// BuildStopWordSet parses a raw stop word list where entries are
// separated by commas or newlines. Each entry is trimmed and
// lowercased and empty entries are dropped.
func BuildStopWordSet(raw string) StopWordSet {
	ans := make(StopWordSet)
	for _, item := range stopWordSplitRx.Split(raw, -1) {
		word := strings.ToLower(strings.TrimSpace(item))
		if word != "" {
			ans[word] = struct{}{}
		}
	}
	return ans
}

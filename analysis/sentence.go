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

// A run of sentence-terminal characters. Newlines act as sentence
// boundaries too so that loosely punctuated input (lists, chat
// transcripts) still splits in a useful way.
var sentenceSplitRx = regexp.MustCompile("[。\n！？]+")

// SplitSentences splits a raw text into sentences. Empty and
// whitespace-only segments are dropped, the rest is trimmed.
func SplitSentences(text string) []string {
	parts := sentenceSplitRx.Split(text, -1)
	ans := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			ans = append(ans, s)
		}
	}
	return ans
}

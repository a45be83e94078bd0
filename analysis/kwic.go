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
	"strings"
	"tmine/morph"
	"tmine/results"
)

// MatchField selects the morpheme attribute a KWIC search
// matches the keyword against.
type MatchField string

const (
	MatchFieldBase    MatchField = "base"
	MatchFieldSurface MatchField = "surface"
)

func (mf MatchField) Validate() error {
	if mf != MatchFieldBase && mf != MatchFieldSurface {
		return fmt.Errorf("unsupported match field `%s` (supported values are: base, surface)", mf)
	}
	return nil
}

func (mf MatchField) extract(m morph.Morpheme) string {
	if mf == MatchFieldSurface {
		return m.Surface
	}
	return m.BaseForm
}

// SearchKWIC scans the morpheme sequence for keyword occurrences
// and extracts up to window surface forms of context on both sides
// of each match. With matchCase disabled (the default behavior),
// both the keyword and the tested attribute are lowercased first.
// The contexts are concatenated without delimiters which is the
// natural way to recompose Japanese text.
func SearchKWIC(
	seq morph.Sequence,
	keyword string,
	field MatchField,
	window int,
	matchCase bool,
) *results.KWIC {
	keyword = strings.TrimSpace(keyword)
	ans := &results.KWIC{Keyword: keyword}
	if keyword == "" {
		ans.EmptyReason = ReasonNoKeyword
		return ans
	}
	if len(seq) == 0 {
		ans.EmptyReason = ReasonNoMorphemes
		return ans
	}
	cmp := keyword
	if !matchCase {
		cmp = strings.ToLower(cmp)
	}
	rows := make([]results.KWICRow, 0)
	for i, m := range seq {
		value := field.extract(m)
		if !matchCase {
			value = strings.ToLower(value)
		}
		if value != cmp {
			continue
		}
		var left, right strings.Builder
		for j := max(0, i-window); j < i; j++ {
			left.WriteString(seq[j].Surface)
		}
		for j := i + 1; j < min(len(seq), i+1+window); j++ {
			right.WriteString(seq[j].Surface)
		}
		rows = append(rows, results.KWICRow{
			Left:  left.String(),
			Match: m.Surface,
			Right: right.String(),
		})
	}
	ans.Total = len(rows)
	if len(rows) == 0 {
		ans.EmptyReason = ReasonNoMatch
		return ans
	}
	ans.Rows = rows
	return ans
}

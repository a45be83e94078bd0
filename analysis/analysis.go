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

// Package analysis implements the individual text analysis functions
// (word frequency report, word cloud data, co-occurrence network,
// KWIC search) on top of a tokenized morpheme sequence. All the
// functions treat the sequence as read-only and are safe to run
// against a shared instance.
package analysis

// Reasons why an analysis produces an empty result. These describe
// regular outcomes, not errors - a client gets a valid (empty)
// result along with one of these.
const (
	ReasonNoMorphemes = "the text contains no morphemes"
	ReasonAllFiltered = "no words left after filtering"
	ReasonTooFewNodes = "less than two words reach the node frequency threshold"
	ReasonNoPairs     = "no co-occurring word pairs found"
	ReasonNoEdges     = "no word pair reaches the edge frequency threshold"
	ReasonNoMatch     = "the keyword does not occur in the text"
	ReasonNoKeyword   = "empty keyword"
)

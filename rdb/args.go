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

package rdb

// names of job functions the workers understand
const (
	FuncMorphemes   = "morphemes"
	FuncWordReport  = "wordReport"
	FuncWordCloud   = "wordCloud"
	FuncCoocNetwork = "coocNetwork"
	FuncKWIC        = "kwic"
)

// MorphemesArgs are arguments for the plain tokenization job.
type MorphemesArgs struct {
	Text string `json:"text"`
}

// WordReportArgs are arguments for the word frequency report job.
// StopWords is a raw comma or newline delimited list. The API side
// is expected to resolve configured defaults before publishing.
type WordReportArgs struct {
	Text      string   `json:"text"`
	POS       []string `json:"pos"`
	StopWords string   `json:"stopWords"`
}

type WordCloudArgs struct {
	Text      string   `json:"text"`
	POS       []string `json:"pos"`
	StopWords string   `json:"stopWords"`
	MaxWords  int      `json:"maxWords"`
}

type CoocNetworkArgs struct {
	Text        string   `json:"text"`
	POS         []string `json:"pos"`
	StopWords   string   `json:"stopWords"`
	NodeMinFreq int      `json:"nodeMinFreq"`
	EdgeMinFreq int      `json:"edgeMinFreq"`
}

type KWICArgs struct {
	Text       string `json:"text"`
	Keyword    string `json:"keyword"`
	MatchField string `json:"matchField"`
	Window     int    `json:"window"`
	MatchCase  bool   `json:"matchCase"`
}

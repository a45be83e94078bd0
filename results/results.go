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

// Package results defines typed results of all the worker job
// functions along with their JSON serialization. On the API side,
// the Deserialize* functions restore a typed value out of a raw
// worker result envelope.
package results

import (
	"errors"
	"fmt"
	"tmine/morph"
	"tmine/rdb"

	"github.com/bytedance/sonic"
)

func errToStr(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

func strToErr(s string) error {
	if s != "" {
		return errors.New(s)
	}
	return nil
}

// envelopeError tests whether the envelope carries a general
// error result and if so, extracts the error.
func envelopeError(w *rdb.WorkerResult) (error, bool) {
	if w.ResultType != rdb.ResultTypeError {
		return nil, false
	}
	var resErr rdb.ErrorResult
	if err := sonic.Unmarshal(w.Value, &resErr); err != nil {
		return err, true
	}
	return resErr.Err(), true
}

// ---- morphemes

// Morphemes is a result of the plain tokenization job.
type Morphemes struct {

	// Tokens are all the morphemes in the original text order,
	// including punctuation and other symbol tokens.
	Tokens morph.Sequence

	// Total is the number of morphemes in the text
	Total int

	Error error
}

type MorphemesResponse struct {
	Tokens     morph.Sequence `json:"tokens"`
	Total      int            `json:"total"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name Morphemes

func (res Morphemes) Err() error {
	return res.Error
}

func (res Morphemes) Type() rdb.ResultType {
	return rdb.ResultTypeMorphemes
}

func (res Morphemes) MarshalJSON() ([]byte, error) {
	tokens := res.Tokens
	if tokens == nil {
		tokens = morph.Sequence{}
	}
	return sonic.Marshal(MorphemesResponse{
		Tokens:     tokens,
		Total:      res.Total,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

func DeserializeMorphemesResult(w *rdb.WorkerResult) (Morphemes, error) {
	var ans Morphemes
	if err, ok := envelopeError(w); ok {
		ans.Error = err
		return ans, nil
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf("cannot deserialize %s as morphemes", w.ResultType)
	}
	var resp MorphemesResponse
	if err := sonic.Unmarshal(w.Value, &resp); err != nil {
		return ans, err
	}
	ans.Tokens = resp.Tokens
	ans.Total = resp.Total
	ans.Error = strToErr(resp.Error)
	return ans, nil
}

// ---- word report

type WordReportRow struct {
	Rank     int     `json:"rank"`
	BaseForm string  `json:"baseForm"`
	POS      string  `json:"pos"`
	Count    int     `json:"count"`
	RelFreq  float64 `json:"relFreq"`
}

type WordReportRowList []WordReportRow

// AlwaysAsList returns an empty list in case the original
// value is nil.
func (rlist WordReportRowList) AlwaysAsList() WordReportRowList {
	if rlist != nil {
		return rlist
	}
	return WordReportRowList{}
}

// WordReport is a ranked word frequency table.
type WordReport struct {
	Rows WordReportRowList

	// TotalMorphemes is the number of all the morphemes in the
	// text. It is also the denominator of the RelFreq values.
	TotalMorphemes int

	// TargetMorphemes is the number of occurrences covered by
	// the report, i.e. the sum of the Count column.
	TargetMorphemes int

	EmptyReason string

	Error error
}

type WordReportResponse struct {
	Rows            WordReportRowList `json:"rows"`
	TotalMorphemes  int               `json:"totalMorphemes"`
	TargetMorphemes int               `json:"targetMorphemes"`
	ResultType      rdb.ResultType    `json:"resultType"`
	EmptyReason     string            `json:"emptyReason,omitempty"`
	Error           string            `json:"error,omitempty"`
} // @name WordReport

func (res WordReport) Err() error {
	return res.Error
}

func (res WordReport) Type() rdb.ResultType {
	return rdb.ResultTypeWordReport
}

func (res WordReport) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(WordReportResponse{
		Rows:            res.Rows.AlwaysAsList(),
		TotalMorphemes:  res.TotalMorphemes,
		TargetMorphemes: res.TargetMorphemes,
		ResultType:      res.Type(),
		EmptyReason:     res.EmptyReason,
		Error:           errToStr(res.Error),
	})
}

func DeserializeWordReportResult(w *rdb.WorkerResult) (WordReport, error) {
	var ans WordReport
	if err, ok := envelopeError(w); ok {
		ans.Error = err
		return ans, nil
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf("cannot deserialize %s as a word report", w.ResultType)
	}
	var resp WordReportResponse
	if err := sonic.Unmarshal(w.Value, &resp); err != nil {
		return ans, err
	}
	ans.Rows = resp.Rows
	ans.TotalMorphemes = resp.TotalMorphemes
	ans.TargetMorphemes = resp.TargetMorphemes
	ans.EmptyReason = resp.EmptyReason
	ans.Error = strToErr(resp.Error)
	return ans, nil
}

// ---- word cloud

type CloudWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type CloudWordList []CloudWord

func (clist CloudWordList) AlwaysAsList() CloudWordList {
	if clist != nil {
		return clist
	}
	return CloudWordList{}
}

// WordCloud provides weighted words for cloud rendering.
type WordCloud struct {

	// Words are the most frequent words, sorted by count
	// in descending order.
	Words CloudWordList

	// CorpusSize is the number of tokens the cloud was
	// calculated from (stop words and non-matching tokens
	// already excluded).
	CorpusSize int

	EmptyReason string

	Error error
}

type WordCloudResponse struct {
	Words       CloudWordList  `json:"words"`
	CorpusSize  int            `json:"corpusSize"`
	ResultType  rdb.ResultType `json:"resultType"`
	EmptyReason string         `json:"emptyReason,omitempty"`
	Error       string         `json:"error,omitempty"`
} // @name WordCloud

func (res WordCloud) Err() error {
	return res.Error
}

func (res WordCloud) Type() rdb.ResultType {
	return rdb.ResultTypeWordCloud
}

func (res WordCloud) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(WordCloudResponse{
		Words:       res.Words.AlwaysAsList(),
		CorpusSize:  res.CorpusSize,
		ResultType:  res.Type(),
		EmptyReason: res.EmptyReason,
		Error:       errToStr(res.Error),
	})
}

func DeserializeWordCloudResult(w *rdb.WorkerResult) (WordCloud, error) {
	var ans WordCloud
	if err, ok := envelopeError(w); ok {
		ans.Error = err
		return ans, nil
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf("cannot deserialize %s as a word cloud", w.ResultType)
	}
	var resp WordCloudResponse
	if err := sonic.Unmarshal(w.Value, &resp); err != nil {
		return ans, err
	}
	ans.Words = resp.Words
	ans.CorpusSize = resp.CorpusSize
	ans.EmptyReason = resp.EmptyReason
	ans.Error = strToErr(resp.Error)
	return ans, nil
}

// ---- co-occurrence network

type NetworkNode struct {
	ID    string `json:"id"`
	Count int    `json:"count"`

	// Size is a rendering hint derived from Count
	Size int `json:"size"`
}

type NetworkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int    `json:"count"`

	// Weight is a rendering hint derived from Count
	Weight float64 `json:"weight"`
}

// CoocNetwork is a word co-occurrence graph based on
// sentence-level co-occurrence of dictionary forms.
type CoocNetwork struct {
	Nodes []NetworkNode

	Edges []NetworkEdge

	// Sentences is the number of sentences the text was split into
	Sentences int

	EmptyReason string

	Error error
}

type CoocNetworkResponse struct {
	Nodes       []NetworkNode  `json:"nodes"`
	Edges       []NetworkEdge  `json:"edges"`
	Sentences   int            `json:"sentences"`
	ResultType  rdb.ResultType `json:"resultType"`
	EmptyReason string         `json:"emptyReason,omitempty"`
	Error       string         `json:"error,omitempty"`
} // @name CoocNetwork

func (res CoocNetwork) Err() error {
	return res.Error
}

func (res CoocNetwork) Type() rdb.ResultType {
	return rdb.ResultTypeCoocNetwork
}

func (res CoocNetwork) MarshalJSON() ([]byte, error) {
	nodes := res.Nodes
	if nodes == nil {
		nodes = []NetworkNode{}
	}
	edges := res.Edges
	if edges == nil {
		edges = []NetworkEdge{}
	}
	return sonic.Marshal(CoocNetworkResponse{
		Nodes:       nodes,
		Edges:       edges,
		Sentences:   res.Sentences,
		ResultType:  res.Type(),
		EmptyReason: res.EmptyReason,
		Error:       errToStr(res.Error),
	})
}

func DeserializeCoocNetworkResult(w *rdb.WorkerResult) (CoocNetwork, error) {
	var ans CoocNetwork
	if err, ok := envelopeError(w); ok {
		ans.Error = err
		return ans, nil
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf("cannot deserialize %s as a co-occurrence network", w.ResultType)
	}
	var resp CoocNetworkResponse
	if err := sonic.Unmarshal(w.Value, &resp); err != nil {
		return ans, err
	}
	ans.Nodes = resp.Nodes
	ans.Edges = resp.Edges
	ans.Sentences = resp.Sentences
	ans.EmptyReason = resp.EmptyReason
	ans.Error = strToErr(resp.Error)
	return ans, nil
}

// ---- KWIC

type KWICRow struct {
	Left  string `json:"left"`
	Match string `json:"match"`
	Right string `json:"right"`
}

// KWIC is a keyword-in-context concordance of a text.
type KWIC struct {
	Rows []KWICRow

	// Keyword is the normalized (trimmed) searched expression
	Keyword string

	// Total is the number of matching positions
	Total int

	EmptyReason string

	Error error
}

type KWICResponse struct {
	Rows        []KWICRow      `json:"rows"`
	Keyword     string         `json:"keyword"`
	Total       int            `json:"total"`
	ResultType  rdb.ResultType `json:"resultType"`
	EmptyReason string         `json:"emptyReason,omitempty"`
	Error       string         `json:"error,omitempty"`
} // @name KWIC

func (res KWIC) Err() error {
	return res.Error
}

func (res KWIC) Type() rdb.ResultType {
	return rdb.ResultTypeKWIC
}

func (res KWIC) MarshalJSON() ([]byte, error) {
	rows := res.Rows
	if rows == nil {
		rows = []KWICRow{}
	}
	return sonic.Marshal(KWICResponse{
		Rows:        rows,
		Keyword:     res.Keyword,
		Total:       res.Total,
		ResultType:  res.Type(),
		EmptyReason: res.EmptyReason,
		Error:       errToStr(res.Error),
	})
}

func DeserializeKWICResult(w *rdb.WorkerResult) (KWIC, error) {
	var ans KWIC
	if err, ok := envelopeError(w); ok {
		ans.Error = err
		return ans, nil
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf("cannot deserialize %s as a KWIC result", w.ResultType)
	}
	var resp KWICResponse
	if err := sonic.Unmarshal(w.Value, &resp); err != nil {
		return ans, err
	}
	ans.Rows = resp.Rows
	ans.Keyword = resp.Keyword
	ans.Total = resp.Total
	ans.EmptyReason = resp.EmptyReason
	ans.Error = strToErr(resp.Error)
	return ans, nil
}

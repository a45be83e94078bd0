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

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"tmine/analysis"
	"tmine/analysis/transform"
	"tmine/rdb"
	"tmine/results"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	formatJSON resultFormat = "json"
	formatPNG  resultFormat = "png"
	formatHTML resultFormat = "html"
)

// resultFormat selects between the JSON data variant of an analysis
// result and a rendered artifact (PNG image, HTML page).
type resultFormat string

// MorphemesRequest specifies a text to tokenize.
type MorphemesRequest struct {
	Text string `json:"text"`
} // @name MorphemesRequest

// WordReportRequest is a client request for the word frequency
// report. With a nil StopWords, the server default list applies;
// an empty string disables stop words entirely.
type WordReportRequest struct {
	Text      string   `json:"text"`
	POS       []string `json:"pos"`
	StopWords *string  `json:"stopWords"`
} // @name WordReportRequest

// WordCloudRequest is a client request for the word cloud data.
// The stop words semantics is the same as in WordReportRequest.
type WordCloudRequest struct {
	Text      string   `json:"text"`
	POS       []string `json:"pos"`
	StopWords *string  `json:"stopWords"`
} // @name WordCloudRequest

// CoocNetworkRequest is a client request for the co-occurrence
// network. Zero frequency thresholds mean the server defaults.
type CoocNetworkRequest struct {
	Text        string   `json:"text"`
	POS         []string `json:"pos"`
	StopWords   *string  `json:"stopWords"`
	NodeMinFreq int      `json:"nodeMinFreq"`
	EdgeMinFreq int      `json:"edgeMinFreq"`
} // @name CoocNetworkRequest

// KWICRequest is a client request for a keyword-in-context search.
type KWICRequest struct {
	Text       string `json:"text"`
	Keyword    string `json:"keyword"`
	MatchField string `json:"matchField"`
	Window     int    `json:"window"`
	MatchCase  bool   `json:"matchCase"`
} // @name KWICRequest

type RangeOptions struct {
	Dflt int `json:"dflt"`
	Min  int `json:"min"`
	Max  int `json:"max"`
}

// AnalysisOptionsResponse provides everything a client UI needs
// to build its analyzer controls.
type AnalysisOptionsResponse struct {
	ReportPOS   []string `json:"reportPos"`
	CloudPOS    []string `json:"cloudPos"`
	NetworkPOS  []string `json:"networkPos"`
	DfltPOS     []string `json:"dfltPos"`
	MatchFields []string `json:"matchFields"`

	NodeMinFreq RangeOptions `json:"nodeMinFreq"`
	EdgeMinFreq RangeOptions `json:"edgeMinFreq"`
	KWICWindow  RangeOptions `json:"kwicWindow"`

	DfltStopWords string `json:"dfltStopWords"`

	// CloudImage signals whether the PNG variant of the word
	// cloud is available (i.e. whether a font is configured).
	CloudImage bool `json:"cloudImage"`
} // @name AnalysisOptions

// Actions wraps all the text analysis HTTP handlers. The analyses
// themselves run in the workers - each handler just validates its
// request, publishes a job and waits for the result.
type Actions struct {
	conf      *analysis.AnalysisSetup
	radapter  *rdb.Adapter
	stopWords *analysis.StopWordsProvider
}

// resolveStopWords returns either a client-provided raw stop word
// list or the current server default.
func (a *Actions) resolveStopWords(reqValue *string) string {
	if reqValue != nil {
		return *reqValue
	}
	return a.stopWords.Raw()
}

// Morphemes godoc
// @Summary      Morphemes
// @Description  Tokenize a Japanese text into morphemes along with their morphological analyses.
// @Accept       json
// @Produce      json
// @Param        request body handlers.MorphemesRequest true "analyzed text"
// @Success      200 {object} results.MorphemesResponse
// @Router       /morphemes [post]
func (a *Actions) Morphemes(ctx *gin.Context) {
	var req MorphemesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	args, err := json.Marshal(rdb.MorphemesArgs{Text: req.Text})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: rdb.FuncMorphemes,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, err := results.DeserializeMorphemesResult(rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&result,
	)
}

// WordReport godoc
// @Summary      WordReport
// @Description  Generate a ranked word frequency table of the provided text. Occurrences are counted per dictionary (base) form within the selected part of speech categories, stop words excluded.
// @Accept       json
// @Produce      json
// @Param        request body handlers.WordReportRequest true "analysis request"
// @Success      200 {object} results.WordReportResponse
// @Router       /word-report [post]
func (a *Actions) WordReport(ctx *gin.Context) {
	var req WordReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	targetPOS, err := checkPOSSelection(req.POS, analysis.ReportPOSOptions)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	args, err := json.Marshal(rdb.WordReportArgs{
		Text:      req.Text,
		POS:       targetPOS,
		StopWords: a.resolveStopWords(req.StopWords),
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: rdb.FuncWordReport,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, err := results.DeserializeWordReportResult(rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&result,
	)
}

// WordCloud godoc
// @Summary      WordCloud
// @Description  Calculate weighted words of the provided text for cloud rendering. With format=png, the response is a rendered PNG image (requires a configured font).
// @Accept       json
// @Produce      json
// @Produce      png
// @Param        request body handlers.WordCloudRequest true "analysis request"
// @Param        format query string false "response format" enums(json, png) default(json)
// @Success      200 {object} results.WordCloudResponse
// @Router       /word-cloud [post]
func (a *Actions) WordCloud(ctx *gin.Context) {
	format := resultFormat(ctx.DefaultQuery("format", string(formatJSON)))
	if format != formatJSON && format != formatPNG {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("unsupported format `%s` (supported values are: json, png)", format),
			http.StatusUnprocessableEntity,
		)
		return
	}
	if format == formatPNG && !a.conf.HasFont() {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("rendered word cloud not available (no font configured)"),
			http.StatusBadRequest,
		)
		return
	}
	var req WordCloudRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	targetPOS, err := checkPOSSelection(req.POS, analysis.CloudPOSOptions)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	args, err := json.Marshal(rdb.WordCloudArgs{
		Text:      req.Text,
		POS:       targetPOS,
		StopWords: a.resolveStopWords(req.StopWords),
		MaxWords:  a.conf.WordCloud.MaxWords,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: rdb.FuncWordCloud,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, err := results.DeserializeWordCloudResult(rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if format == formatPNG {
		img, err := transform.CloudToPNG(&result, a.conf.WordCloud, a.conf.FontPath)
		if err != nil {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusInternalServerError,
			)
			return
		}
		ctx.Writer.Header().Set("Content-Type", "image/png")
		ctx.Writer.Header().Set("Content-Length", strconv.Itoa(len(img)))
		ctx.Writer.Write(img)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&result,
	)
}

// CoocNetwork godoc
// @Summary      CoocNetwork
// @Description  Build a word co-occurrence network of the provided text based on sentence-level co-occurrence of dictionary forms. With format=html, the response is a standalone page with an interactive visualization.
// @Accept       json
// @Produce      json
// @Produce      html
// @Param        request body handlers.CoocNetworkRequest true "analysis request"
// @Param        format query string false "response format" enums(json, html) default(json)
// @Success      200 {object} results.CoocNetworkResponse
// @Router       /cooc-network [post]
func (a *Actions) CoocNetwork(ctx *gin.Context) {
	format := resultFormat(ctx.DefaultQuery("format", string(formatJSON)))
	if format != formatJSON && format != formatHTML {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("unsupported format `%s` (supported values are: json, html)", format),
			http.StatusUnprocessableEntity,
		)
		return
	}
	var req CoocNetworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	targetPOS, err := checkPOSSelection(req.POS, analysis.NetworkPOSOptions)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	nodeMinFreq, err := checkRangeArg(
		"nodeMinFreq", req.NodeMinFreq,
		analysis.DfltNodeMinFreq, analysis.NodeMinFreqFloor, a.conf.Network.NodeMinFreqLimit,
	)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	edgeMinFreq, err := checkRangeArg(
		"edgeMinFreq", req.EdgeMinFreq,
		analysis.DfltEdgeMinFreq, analysis.EdgeMinFreqFloor, a.conf.Network.EdgeMinFreqLimit,
	)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	args, err := json.Marshal(rdb.CoocNetworkArgs{
		Text:        req.Text,
		POS:         targetPOS,
		StopWords:   a.resolveStopWords(req.StopWords),
		NodeMinFreq: nodeMinFreq,
		EdgeMinFreq: edgeMinFreq,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: rdb.FuncCoocNetwork,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, err := results.DeserializeCoocNetworkResult(rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if format == formatHTML {
		page, err := transform.NetworkToHTML(&result)
		if err != nil {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusInternalServerError,
			)
			return
		}
		ctx.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		ctx.Writer.WriteString(page)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&result,
	)
}

// KWIC godoc
// @Summary      KWIC
// @Description  Search the provided text for keyword occurrences and extract their surrounding contexts. An empty keyword yields an empty result.
// @Accept       json
// @Produce      json
// @Param        request body handlers.KWICRequest true "search request"
// @Success      200 {object} results.KWICResponse
// @Router       /kwic [post]
func (a *Actions) KWIC(ctx *gin.Context) {
	var req KWICRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	field := analysis.MatchField(req.MatchField)
	if field == "" {
		field = analysis.MatchFieldBase
	}
	if err := field.Validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	window, err := checkRangeArg(
		"window", req.Window,
		analysis.DfltKWICWindow, analysis.KWICWindowFloor, a.conf.KWIC.MaxWindow,
	)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	args, err := json.Marshal(rdb.KWICArgs{
		Text:       req.Text,
		Keyword:    req.Keyword,
		MatchField: string(field),
		Window:     window,
		MatchCase:  req.MatchCase,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, rdb.Query{
		Func: rdb.FuncKWIC,
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, err := results.DeserializeKWICResult(rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		&result,
	)
}

// AnalysisOptions godoc
// @Summary      AnalysisOptions
// @Description  Provides configured analyzer options a client needs to build its controls (per-analyzer part of speech categories, numeric argument ranges, the default stop word list).
// @Produce      json
// @Success      200 {object} handlers.AnalysisOptionsResponse
// @Router       /analysis-options [get]
func (a *Actions) AnalysisOptions(ctx *gin.Context) {
	ans := AnalysisOptionsResponse{
		ReportPOS:  analysis.ReportPOSOptions,
		CloudPOS:   analysis.CloudPOSOptions,
		NetworkPOS: analysis.NetworkPOSOptions,
		DfltPOS:    analysis.DfltPOSSelection,
		MatchFields: []string{
			string(analysis.MatchFieldBase), string(analysis.MatchFieldSurface)},
		NodeMinFreq: RangeOptions{
			Dflt: analysis.DfltNodeMinFreq,
			Min:  analysis.NodeMinFreqFloor,
			Max:  a.conf.Network.NodeMinFreqLimit,
		},
		EdgeMinFreq: RangeOptions{
			Dflt: analysis.DfltEdgeMinFreq,
			Min:  analysis.EdgeMinFreqFloor,
			Max:  a.conf.Network.EdgeMinFreqLimit,
		},
		KWICWindow: RangeOptions{
			Dflt: analysis.DfltKWICWindow,
			Min:  analysis.KWICWindowFloor,
			Max:  a.conf.KWIC.MaxWindow,
		},
		DfltStopWords: a.stopWords.Raw(),
		CloudImage:    a.conf.HasFont(),
	}
	uniresp.WriteJSONResponse(ctx.Writer, &ans)
}

func NewActions(
	conf *analysis.AnalysisSetup,
	radapter *rdb.Adapter,
	stopWords *analysis.StopWordsProvider,
) *Actions {
	return &Actions{
		conf:      conf,
		radapter:  radapter,
		stopWords: stopWords,
	}
}

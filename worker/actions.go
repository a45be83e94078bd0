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

package worker

import (
	"context"
	"tmine/analysis"
	"tmine/morph"
	"tmine/rdb"
	"tmine/results"

	"github.com/rs/zerolog/log"
)

// tokenize runs the tagger on the text, reusing a recently
// tokenized sequence where possible. The analyzers are typically
// called one after another against the same text so even a small
// cache skips most of the tagger runs.
func (w *Worker) tokenize(ctx context.Context, text string) (morph.Sequence, error) {
	if seq, ok := w.seqCache.Get(text); ok {
		log.Debug().
			Int("textLen", len(text)).
			Msg("tokenized text cache hit")
		return seq, nil
	}
	seq, err := w.tagger.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	w.seqCache.Set(text, seq)
	return seq, nil
}

func (w *Worker) morphemes(ctx context.Context, args rdb.MorphemesArgs) *results.Morphemes {
	seq, err := w.tokenize(ctx, args.Text)
	if err != nil {
		return &results.Morphemes{Error: err}
	}
	return &results.Morphemes{
		Tokens: seq,
		Total:  len(seq),
	}
}

func (w *Worker) wordReport(ctx context.Context, args rdb.WordReportArgs) *results.WordReport {
	seq, err := w.tokenize(ctx, args.Text)
	if err != nil {
		return &results.WordReport{Error: err}
	}
	return analysis.GenerateWordReport(
		seq, args.POS, analysis.BuildStopWordSet(args.StopWords))
}

func (w *Worker) wordCloud(ctx context.Context, args rdb.WordCloudArgs) *results.WordCloud {
	seq, err := w.tokenize(ctx, args.Text)
	if err != nil {
		return &results.WordCloud{Error: err}
	}
	return analysis.GenerateWordCloud(
		seq, args.POS, analysis.BuildStopWordSet(args.StopWords), args.MaxWords)
}

func (w *Worker) coocNetwork(ctx context.Context, args rdb.CoocNetworkArgs) *results.CoocNetwork {
	seq, err := w.tokenize(ctx, args.Text)
	if err != nil {
		return &results.CoocNetwork{Error: err}
	}
	ans, err := analysis.GenerateCoocNetwork(
		ctx,
		w.tagger,
		args.Text,
		seq,
		args.POS,
		analysis.BuildStopWordSet(args.StopWords),
		args.NodeMinFreq,
		args.EdgeMinFreq,
	)
	if err != nil {
		return &results.CoocNetwork{Error: err}
	}
	return ans
}

func (w *Worker) kwic(ctx context.Context, args rdb.KWICArgs) *results.KWIC {
	seq, err := w.tokenize(ctx, args.Text)
	if err != nil {
		return &results.KWIC{Error: err}
	}
	return analysis.SearchKWIC(
		seq, args.Keyword, analysis.MatchField(args.MatchField), args.Window, args.MatchCase)
}

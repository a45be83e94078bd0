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
	"errors"
	"strings"
	"testing"
	"tmine/morph"
	"tmine/rdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTagger struct {
	numCalls int
}

func (ct *countingTagger) Tokenize(ctx context.Context, text string) (morph.Sequence, error) {
	ct.numCalls++
	var ans morph.Sequence
	for _, surface := range strings.Fields(text) {
		ans = append(ans, morph.Morpheme{
			Surface:    surface,
			BaseForm:   surface,
			POS:        "名詞",
			POSDetail1: "一般",
		})
	}
	return ans, nil
}

type brokenTagger struct{}

func (bt *brokenTagger) Tokenize(ctx context.Context, text string) (morph.Sequence, error) {
	return nil, errors.New("tagger not available")
}

func testWorker(tagger morph.Tagger) *Worker {
	return &Worker{
		ID:       "1001",
		tagger:   tagger,
		seqCache: NewSeqCache(),
	}
}

func TestTokenizeReusesCachedSequence(t *testing.T) {
	tagger := &countingTagger{}
	w := testWorker(tagger)

	seq1, err := w.tokenize(context.Background(), "犬 猫")
	require.NoError(t, err)
	seq2, err := w.tokenize(context.Background(), "犬 猫")
	require.NoError(t, err)
	assert.Equal(t, 1, tagger.numCalls)
	assert.Equal(t, seq1, seq2)

	_, err = w.tokenize(context.Background(), "鳥")
	require.NoError(t, err)
	assert.Equal(t, 2, tagger.numCalls)
}

func TestMorphemesAction(t *testing.T) {
	w := testWorker(&countingTagger{})
	ans := w.morphemes(context.Background(), rdb.MorphemesArgs{Text: "犬 猫 犬"})
	require.NoError(t, ans.Err())
	assert.Equal(t, 3, ans.Total)
	assert.Equal(t, "犬", ans.Tokens[0].Surface)
}

func TestMorphemesActionTaggerFailure(t *testing.T) {
	w := testWorker(&brokenTagger{})
	ans := w.morphemes(context.Background(), rdb.MorphemesArgs{Text: "犬"})
	assert.EqualError(t, ans.Err(), "tagger not available")
}

func TestWordReportAction(t *testing.T) {
	w := testWorker(&countingTagger{})
	ans := w.wordReport(context.Background(), rdb.WordReportArgs{
		Text: "犬 猫 犬",
		POS:  []string{"名詞"},
	})
	require.NoError(t, ans.Err())
	require.Len(t, ans.Rows, 2)
	assert.Equal(t, "犬", ans.Rows[0].BaseForm)
	assert.Equal(t, 2, ans.Rows[0].Count)
	assert.Equal(t, 3, ans.TotalMorphemes)
}

func TestWordReportActionAppliesStopWords(t *testing.T) {
	w := testWorker(&countingTagger{})
	ans := w.wordReport(context.Background(), rdb.WordReportArgs{
		Text:      "犬 猫 犬",
		POS:       []string{"名詞"},
		StopWords: "犬",
	})
	require.NoError(t, ans.Err())
	require.Len(t, ans.Rows, 1)
	assert.Equal(t, "猫", ans.Rows[0].BaseForm)
}

func TestWordCloudAction(t *testing.T) {
	w := testWorker(&countingTagger{})
	ans := w.wordCloud(context.Background(), rdb.WordCloudArgs{
		Text:     "犬 猫 犬 鳥",
		POS:      []string{"名詞"},
		MaxWords: 2,
	})
	require.NoError(t, ans.Err())
	require.Len(t, ans.Words, 2)
	assert.Equal(t, "犬", ans.Words[0].Word)
	assert.Equal(t, 4, ans.CorpusSize)
}

func TestKWICAction(t *testing.T) {
	w := testWorker(&countingTagger{})
	ans := w.kwic(context.Background(), rdb.KWICArgs{
		Text:       "犬 猫 鳥",
		Keyword:    "猫",
		MatchField: "base",
		Window:     5,
	})
	require.NoError(t, ans.Err())
	require.Equal(t, 1, ans.Total)
	assert.Equal(t, "犬", ans.Rows[0].Left)
	assert.Equal(t, "猫", ans.Rows[0].Match)
	assert.Equal(t, "鳥", ans.Rows[0].Right)
}

func TestSeqCacheEvictsOldestEntry(t *testing.T) {
	cache := NewSeqCache()
	cache.Set("first", morph.Sequence{{Surface: "a"}})
	for i := 0; i < seqCacheMaxEntries; i++ {
		cache.Set(strings.Repeat("x", i+1), morph.Sequence{})
	}
	_, ok := cache.Get("first")
	assert.False(t, ok)
	_, ok = cache.Get(strings.Repeat("x", seqCacheMaxEntries))
	assert.True(t, ok)
}

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
	"testing"
	"tmine/morph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCloudSequence() morph.Sequence {
	return morph.Sequence{
		{Surface: "海", POS: "名詞", POSDetail1: "一般", BaseForm: "海"},
		{Surface: "泳ぐ", POS: "動詞", POSDetail1: "自立", BaseForm: "泳ぐ"},
		{Surface: "海", POS: "名詞", POSDetail1: "一般", BaseForm: "海"},
		{Surface: "は", POS: "助詞", POSDetail1: "係助詞", BaseForm: "は"},
		{Surface: "広い", POS: "形容詞", POSDetail1: "自立", BaseForm: "広い"},
		{Surface: "海", POS: "名詞", POSDetail1: "一般", BaseForm: "海"},
		{Surface: "泳い", POS: "動詞", POSDetail1: "自立", BaseForm: "泳ぐ"},
	}
}

func TestGenerateWordCloud(t *testing.T) {
	res := GenerateWordCloud(testCloudSequence(), allPOS, nil, 0)
	assert.Empty(t, res.EmptyReason)
	assert.Equal(t, 6, res.CorpusSize)
	require.Len(t, res.Words, 3)
	assert.Equal(t, "海", res.Words[0].Word)
	assert.Equal(t, 3, res.Words[0].Count)
	assert.Equal(t, "泳ぐ", res.Words[1].Word)
	assert.Equal(t, 2, res.Words[1].Count)
	assert.Equal(t, "広い", res.Words[2].Word)
	assert.Equal(t, 1, res.Words[2].Count)
}

func TestGenerateWordCloudRespectsMaxWords(t *testing.T) {
	res := GenerateWordCloud(testCloudSequence(), allPOS, nil, 2)
	require.Len(t, res.Words, 2)
	assert.Equal(t, "海", res.Words[0].Word)
	assert.Equal(t, "泳ぐ", res.Words[1].Word)
	// the corpus size reflects all the counted occurrences, not
	// just the words which made it into the cloud
	assert.Equal(t, 6, res.CorpusSize)
}

func TestGenerateWordCloudKeepsVerbalNouns(t *testing.T) {
	seq := morph.Sequence{
		{Surface: "勉強", POS: "名詞", POSDetail1: "サ変接続", BaseForm: "勉強"},
	}
	res := GenerateWordCloud(seq, allPOS, nil, 0)
	require.Len(t, res.Words, 1)
	assert.Equal(t, "勉強", res.Words[0].Word)
}

func TestGenerateWordCloudEmptyInput(t *testing.T) {
	res := GenerateWordCloud(morph.Sequence{}, allPOS, nil, 0)
	assert.Equal(t, ReasonNoMorphemes, res.EmptyReason)
	assert.Empty(t, res.Words)
}

func TestGenerateWordCloudAllFilteredOut(t *testing.T) {
	seq := morph.Sequence{
		{Surface: "は", POS: "助詞", POSDetail1: "係助詞", BaseForm: "は"},
	}
	res := GenerateWordCloud(seq, allPOS, nil, 0)
	assert.Equal(t, ReasonAllFiltered, res.EmptyReason)
	assert.Equal(t, 0, res.CorpusSize)
	assert.Empty(t, res.Words)
}

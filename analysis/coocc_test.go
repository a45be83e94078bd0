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
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"tmine/morph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spaceTagger splits text on spaces and makes a common noun
// out of each token
type spaceTagger struct{}

func (st spaceTagger) Tokenize(ctx context.Context, text string) (morph.Sequence, error) {
	ans := make(morph.Sequence, 0, 5)
	for _, w := range strings.Fields(text) {
		ans = append(ans, morph.Morpheme{
			Surface: w, POS: "名詞", POSDetail1: "一般", BaseForm: w,
		})
	}
	return ans, nil
}

type failingTagger struct{}

func (ft failingTagger) Tokenize(ctx context.Context, text string) (morph.Sequence, error) {
	return nil, fmt.Errorf("tagger is down")
}

func coocSequence(text string) morph.Sequence {
	seq, _ := spaceTagger{}.Tokenize(context.Background(), text)
	return seq
}

func TestGenerateCoocNetwork(t *testing.T) {
	text := "りんご ばなな みかん。りんご ばなな"
	seq := coocSequence(strings.NewReplacer("。", " ").Replace(text))
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, res.EmptyReason)
	assert.Equal(t, 2, res.Sentences)
	require.Len(t, res.Nodes, 3)
	require.Len(t, res.Edges, 1)

	edge := res.Edges[0]
	assert.Equal(t, "ばなな", edge.Source)
	assert.Equal(t, "りんご", edge.Target)
	assert.Equal(t, 2, edge.Count)
	assert.InDelta(t, math.Log1p(2)*1.5+0.5, edge.Weight, 1e-9)
}

func TestGenerateCoocNetworkNodeProperties(t *testing.T) {
	text := "りんご ばなな みかん。りんご ばなな"
	seq := coocSequence(strings.NewReplacer("。", " ").Replace(text))
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 1, 1)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 3)
	// nodes keep the first occurrence order of the original text
	assert.Equal(t, "りんご", res.Nodes[0].ID)
	assert.Equal(t, 2, res.Nodes[0].Count)
	assert.Equal(t, int(math.Sqrt(2)*10+10), res.Nodes[0].Size)
	assert.Equal(t, "みかん", res.Nodes[2].ID)
	assert.Equal(t, 1, res.Nodes[2].Count)
	assert.Equal(t, 20, res.Nodes[2].Size)
	assert.Len(t, res.Edges, 3)
}

func TestGenerateCoocNetworkCanonicalPairOrder(t *testing.T) {
	// the second word precedes the first one lexicographically
	// so the emitted pair must be flipped
	text := "ばなな あんず"
	seq := coocSequence(text)
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 1, 1)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "あんず", res.Edges[0].Source)
	assert.Equal(t, "ばなな", res.Edges[0].Target)
}

func TestGenerateCoocNetworkCountsPairOncePerSentence(t *testing.T) {
	// both words occur twice within the single sentence but the
	// pair must still count just once
	text := "りんご ばなな りんご ばなな"
	seq := coocSequence(text)
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 1, 1)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, 1, res.Edges[0].Count)
}

func TestGenerateCoocNetworkTooFewNodes(t *testing.T) {
	text := "りんご ばなな みかん。りんご ばなな"
	seq := coocSequence(strings.NewReplacer("。", " ").Replace(text))
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, ReasonTooFewNodes, res.EmptyReason)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Edges)
}

func TestGenerateCoocNetworkNoQualifyingEdges(t *testing.T) {
	text := "りんご ばなな みかん。りんご ばなな"
	seq := coocSequence(strings.NewReplacer("。", " ").Replace(text))
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, text, seq, allPOS, nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoEdges, res.EmptyReason)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Edges)
}

func TestGenerateCoocNetworkEmptyInput(t *testing.T) {
	res, err := GenerateCoocNetwork(
		context.Background(), spaceTagger{}, "", morph.Sequence{}, allPOS, nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoMorphemes, res.EmptyReason)
}

func TestGenerateCoocNetworkPropagatesTaggerFailure(t *testing.T) {
	text := "りんご ばなな"
	seq := coocSequence(text)
	res, err := GenerateCoocNetwork(
		context.Background(), failingTagger{}, text, seq, allPOS, nil, 1, 1)
	assert.Error(t, err)
	assert.Nil(t, res)
}

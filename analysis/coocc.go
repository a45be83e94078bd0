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
	"math"
	"sort"
	"tmine/morph"
	"tmine/results"
)

// wordPair is a canonical (A < B) unordered pair of base forms
type wordPair struct {
	A string
	B string
}

// NodeSize derives a node rendering size from an occurrence count.
func NodeSize(count int) int {
	return int(math.Sqrt(float64(count))*10 + 10)
}

// EdgeWeight derives an edge rendering weight from a co-occurrence
// count.
func EdgeWeight(count int) float64 {
	return math.Log1p(float64(count))*1.5 + 0.5
}

// GenerateCoocNetwork builds a co-occurrence graph of base forms.
// Nodes are frequent enough base forms from the filtered morpheme
// sequence, edges connect words appearing within the same sentence.
// To find the sentence-level co-occurrences, the original raw text
// is split into sentences and each sentence is tokenized again via
// the provided tagger.
//
// The early exits (not enough nodes, no pairs, no frequent enough
// pair) produce an empty graph with a filled-in EmptyReason which
// is a regular outcome.
func GenerateCoocNetwork(
	ctx context.Context,
	tagger morph.Tagger,
	text string,
	seq morph.Sequence,
	targetPOS []string,
	stopWords StopWordSet,
	nodeMinFreq int,
	edgeMinFreq int,
) (*results.CoocNetwork, error) {
	ans := &results.CoocNetwork{}
	if len(seq) == 0 {
		ans.EmptyReason = ReasonNoMorphemes
		return ans, nil
	}
	counts := make(map[string]int)
	order := make([]string, 0, len(seq)/2)
	for _, m := range seq {
		if !NetworkFilter(m, targetPOS, stopWords) {
			continue
		}
		if _, ok := counts[m.BaseForm]; !ok {
			order = append(order, m.BaseForm)
		}
		counts[m.BaseForm]++
	}
	candidates := make(map[string]int)
	candOrder := make([]string, 0, len(order))
	for _, word := range order {
		if counts[word] >= nodeMinFreq {
			candidates[word] = counts[word]
			candOrder = append(candOrder, word)
		}
	}
	if len(candidates) < 2 {
		ans.EmptyReason = ReasonTooFewNodes
		return ans, nil
	}

	sentences := SplitSentences(text)
	ans.Sentences = len(sentences)
	pairCounts := make(map[wordPair]int)
	pairOrder := make([]wordPair, 0)
	for _, sentence := range sentences {
		tokens, err := tagger.Tokenize(ctx, sentence)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		words := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if t.Surface == "" {
				continue
			}
			if _, ok := candidates[t.BaseForm]; ok && !seen[t.BaseForm] {
				seen[t.BaseForm] = true
				words = append(words, t.BaseForm)
			}
		}
		// sorting gives each unordered pair a canonical identity
		sort.Strings(words)
		for i := 0; i < len(words); i++ {
			for j := i + 1; j < len(words); j++ {
				pair := wordPair{A: words[i], B: words[j]}
				if _, ok := pairCounts[pair]; !ok {
					pairOrder = append(pairOrder, pair)
				}
				pairCounts[pair]++
			}
		}
	}
	if len(pairCounts) == 0 {
		ans.EmptyReason = ReasonNoPairs
		return ans, nil
	}

	edges := make([]results.NetworkEdge, 0, len(pairOrder))
	for _, pair := range pairOrder {
		count := pairCounts[pair]
		if count < edgeMinFreq {
			continue
		}
		edges = append(edges, results.NetworkEdge{
			Source: pair.A,
			Target: pair.B,
			Count:  count,
			Weight: EdgeWeight(count),
		})
	}
	if len(edges) == 0 {
		ans.EmptyReason = ReasonNoEdges
		return ans, nil
	}
	nodes := make([]results.NetworkNode, len(candOrder))
	for i, word := range candOrder {
		nodes[i] = results.NetworkNode{
			ID:    word,
			Count: candidates[word],
			Size:  NodeSize(candidates[word]),
		}
	}
	ans.Nodes = nodes
	ans.Edges = edges
	return ans, nil
}

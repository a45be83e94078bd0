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

package transform

import (
	"testing"
	"tmine/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNetwork() *results.CoocNetwork {
	return &results.CoocNetwork{
		Nodes: []results.NetworkNode{
			{ID: "猫", Count: 4, Size: 30},
			{ID: "犬", Count: 2, Size: 24},
		},
		Edges: []results.NetworkEdge{
			{Source: "犬", Target: "猫", Count: 2, Weight: 2.148},
		},
		Sentences: 3,
	}
}

func TestNetworkToHTML(t *testing.T) {
	html, err := NetworkToHTML(testNetwork())
	require.NoError(t, err)
	assert.Contains(t, html, "vis-network")
	assert.Contains(t, html, "猫")
	assert.Contains(t, html, `"id":"犬"`)
	assert.Contains(t, html, `"from":"犬"`)
	assert.Contains(t, html, `"to":"猫"`)
	assert.Contains(t, html, "出現数: 4")
	assert.Contains(t, html, "共起: 2回")
}

func TestNetworkToHTMLKeepsLayoutConstants(t *testing.T) {
	html, err := NetworkToHTML(testNetwork())
	require.NoError(t, err)
	assert.Contains(t, html, `"gravitationalConstant": -30000`)
	assert.Contains(t, html, `"springLength": 150`)
	assert.Contains(t, html, `"springConstant": 0.03`)
	assert.Contains(t, html, `"damping": 0.09`)
	assert.Contains(t, html, `"avoidOverlap": 0.5`)
	assert.Contains(t, html, `"iterations": 500`)
	assert.Contains(t, html, "height: 750px")
	assert.Contains(t, html, "background-color: #F5F5F5")
	assert.Contains(t, html, `"background":"#D2E5FF"`)
	assert.Contains(t, html, `"color":"#cccccc"`)
}

func TestNetworkToHTMLEscapesScriptContent(t *testing.T) {
	data := &results.CoocNetwork{
		Nodes: []results.NetworkNode{
			{ID: "</script><script>alert(1)</script>", Count: 2, Size: 24},
			{ID: "猫", Count: 2, Size: 24},
		},
		Edges: []results.NetworkEdge{
			{Source: "猫", Target: "</script><script>alert(1)</script>", Count: 2, Weight: 1.0},
		},
	}
	html, err := NetworkToHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "</script><script>alert")
}

func TestNetworkToHTMLEmptyGraph(t *testing.T) {
	html, err := NetworkToHTML(&results.CoocNetwork{})
	require.NoError(t, err)
	assert.Contains(t, html, "new vis.Network")
}

func TestCloudWeights(t *testing.T) {
	weights := cloudWeights(results.CloudWordList{
		{Word: "海", Count: 3},
		{Word: "山", Count: 1},
	})
	assert.Equal(t, map[string]int{"海": 3, "山": 1}, weights)
}

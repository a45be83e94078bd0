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

// Package transform converts analysis results into presentation
// formats (a standalone interactive HTML page for the co-occurrence
// network, a PNG image for the word cloud).
package transform

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"tmine/results"

	"github.com/bytedance/sonic"
)

//go:embed templates/*.html
var templatesFS embed.FS

var networkTpl = template.Must(
	template.New("network.html").ParseFS(templatesFS, "templates/network.html"))

const (
	nodeBorderWidth = 1
	nodeBorderColor = "#666666"
	nodeBackground  = "#D2E5FF"
	nodeFontSize    = 14
	nodeFontColor   = "#333333"
	edgeColor       = "#cccccc"
	edgeHighlight   = "#848484"
	edgeOpacity     = 0.6
)

type visFont struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type visNodeColor struct {
	Border     string `json:"border"`
	Background string `json:"background"`
}

type visNode struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Title       string       `json:"title"`
	Size        int          `json:"size"`
	BorderWidth int          `json:"borderWidth"`
	Font        visFont      `json:"font"`
	Color       visNodeColor `json:"color"`
}

type visEdgeColor struct {
	Color     string  `json:"color"`
	Highlight string  `json:"highlight"`
	Opacity   float64 `json:"opacity"`
}

type visEdge struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Value float64      `json:"value"`
	Title string       `json:"title"`
	Color visEdgeColor `json:"color"`
}

type networkTplData struct {
	Nodes template.JS
	Edges template.JS
}

// NetworkToHTML renders a co-occurrence graph into a standalone
// HTML page based on the vis-network library. Graph data is
// embedded into the page so it requires no further server access
// (except for the vis-network script itself).
func NetworkToHTML(data *results.CoocNetwork) (string, error) {
	nodes := make([]visNode, len(data.Nodes))
	for i, n := range data.Nodes {
		nodes[i] = visNode{
			ID:          n.ID,
			Label:       n.ID,
			Title:       fmt.Sprintf("%s (出現数: %d)", n.ID, n.Count),
			Size:        n.Size,
			BorderWidth: nodeBorderWidth,
			Font:        visFont{Size: nodeFontSize, Color: nodeFontColor},
			Color:       visNodeColor{Border: nodeBorderColor, Background: nodeBackground},
		}
	}
	edges := make([]visEdge, len(data.Edges))
	for i, e := range data.Edges {
		edges[i] = visEdge{
			From:  e.Source,
			To:    e.Target,
			Value: e.Weight,
			Title: fmt.Sprintf("共起: %d回", e.Count),
			Color: visEdgeColor{Color: edgeColor, Highlight: edgeHighlight, Opacity: edgeOpacity},
		}
	}
	// ConfigStd escapes HTML-sensitive characters inside JSON
	// strings which keeps the values safe within a script element
	rawNodes, err := sonic.ConfigStd.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("failed to marshal network nodes: %w", err)
	}
	rawEdges, err := sonic.ConfigStd.Marshal(edges)
	if err != nil {
		return "", fmt.Errorf("failed to marshal network edges: %w", err)
	}
	var buf strings.Builder
	err = networkTpl.Execute(&buf, networkTplData{
		Nodes: template.JS(rawNodes),
		Edges: template.JS(rawEdges),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render network page: %w", err)
	}
	return buf.String(), nil
}

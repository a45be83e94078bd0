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
	"fmt"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// default values applied to analysis requests where the client
// does not provide its own
const (
	DfltNodeMinFreq = 2
	DfltEdgeMinFreq = 2
	DfltKWICWindow  = 5

	NodeMinFreqFloor = 1
	EdgeMinFreqFloor = 1
	KWICWindowFloor  = 1
)

// Part of speech categories each analyzer accepts as its target.
// The three analyzers intentionally differ - e.g. adnominals make
// sense in a frequency report but produce noise in a co-occurrence
// network.
var (
	ReportPOSOptions  = []string{"名詞", "動詞", "形容詞", "副詞", "感動詞", "連体詞"}
	CloudPOSOptions   = []string{"名詞", "動詞", "形容詞", "副詞", "感動詞"}
	NetworkPOSOptions = []string{"名詞", "動詞", "形容詞"}

	// DfltPOSSelection is used when a client does not select
	// any target categories itself.
	DfltPOSSelection = []string{"名詞", "動詞", "形容詞"}
)

// ValidatePOSSelection tests that each of the selected part of
// speech categories is available for the respective analyzer.
func ValidatePOSSelection(selected, available []string) error {
	for _, pos := range selected {
		if !collections.SliceContains(available, pos) {
			return fmt.Errorf(
				"unsupported part of speech category `%s` (supported values are: %s)",
				pos, strings.Join(available, ", "),
			)
		}
	}
	return nil
}

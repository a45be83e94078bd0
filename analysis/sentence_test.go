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

	"github.com/stretchr/testify/assert"
)

func TestSplitSentencesOnTerminals(t *testing.T) {
	sentences := SplitSentences("今日は晴れ。明日は雨！？また晴れ\nそして曇り")
	assert.Equal(
		t,
		[]string{"今日は晴れ", "明日は雨", "また晴れ", "そして曇り"},
		sentences,
	)
}

func TestSplitSentencesMergesTerminalRuns(t *testing.T) {
	sentences := SplitSentences("遠い！！！すごい。。\n\nはい")
	assert.Equal(t, []string{"遠い", "すごい", "はい"}, sentences)
}

func TestSplitSentencesTrimsSegments(t *testing.T) {
	sentences := SplitSentences("  こんにちは 。 さようなら ")
	assert.Equal(t, []string{"こんにちは", "さようなら"}, sentences)
}

func TestSplitSentencesDropsEmptySegments(t *testing.T) {
	assert.Empty(t, SplitSentences("。。。！？\n"))
	assert.Empty(t, SplitSentences(""))
}

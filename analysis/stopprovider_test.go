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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopWordsProviderServesBuiltInList(t *testing.T) {
	p, err := NewStopWordsProvider(&AnalysisSetup{})
	require.NoError(t, err)
	assert.Equal(t, DefaultStopWordsRaw(), p.Raw())
	assert.NoError(t, p.Stop(context.Background()))
}

func TestStopWordsProviderReadsConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("猫,犬"), 0644))
	p, err := NewStopWordsProvider(&AnalysisSetup{StopWordsFile: path})
	require.NoError(t, err)
	defer p.Stop(context.Background())
	assert.Equal(t, "猫,犬", p.Raw())
}

func TestStopWordsProviderReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("猫"), 0644))
	p, err := NewStopWordsProvider(&AnalysisSetup{StopWordsFile: path})
	require.NoError(t, err)
	defer p.Stop(context.Background())

	require.NoError(t, os.WriteFile(path, []byte("猫,犬"), 0644))
	require.NoError(t, p.reload())
	assert.Equal(t, "猫,犬", p.Raw())
}

func TestStopWordsProviderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-file.txt")
	_, err := NewStopWordsProvider(&AnalysisSetup{StopWordsFile: path})
	assert.Error(t, err)
}

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

package morph

import (
	"context"
	"errors"
	"testing"
	"tmine/merror"

	"github.com/stretchr/testify/assert"
)

type fakeTagger struct {
	numCalls int
}

func (ft *fakeTagger) Tokenize(ctx context.Context, text string) (Sequence, error) {
	ft.numCalls++
	return Sequence{{Surface: text, BaseForm: text, POS: "名詞"}}, nil
}

func TestLazyTaggerInitializesOnce(t *testing.T) {
	var numInit int
	ft := &fakeTagger{}
	lt := NewLazyTagger(func() (Tagger, error) {
		numInit++
		return ft, nil
	})
	ans, err := lt.Tokenize(context.Background(), "猫")
	assert.NoError(t, err)
	assert.Len(t, ans, 1)
	_, err = lt.Tokenize(context.Background(), "犬")
	assert.NoError(t, err)
	assert.Equal(t, 1, numInit)
	assert.Equal(t, 2, ft.numCalls)
}

func TestLazyTaggerFailureIsPermanent(t *testing.T) {
	var numInit int
	lt := NewLazyTagger(func() (Tagger, error) {
		numInit++
		return nil, errors.New("dictionary not found")
	})
	_, err := lt.Tokenize(context.Background(), "猫")
	assert.Error(t, err)
	var intErr merror.InternalError
	assert.True(t, errors.As(err, &intErr))

	_, err2 := lt.Tokenize(context.Background(), "犬")
	assert.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
	assert.Equal(t, 1, numInit)
}

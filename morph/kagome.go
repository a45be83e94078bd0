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
	"fmt"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeTagger is a tagger implementation based on the Kagome
// tokenizer with the embedded IPA dictionary. The tokenizer itself
// is safe for concurrent use.
type KagomeTagger struct {
	tok *tokenizer.Tokenizer
}

func (kt *KagomeTagger) Tokenize(ctx context.Context, text string) (Sequence, error) {
	tokens := kt.tok.Tokenize(text)
	ans := make(Sequence, 0, len(tokens))
	for _, t := range tokens {
		ans = append(ans, FromFeatures(t.Surface, t.Features()))
	}
	return ans, nil
}

// NewKagomeTagger creates a tagger with the IPA dictionary and
// an optional user dictionary (userDictPath may be empty).
func NewKagomeTagger(userDictPath string) (*KagomeTagger, error) {
	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if userDictPath != "" {
		udict, err := dict.NewUserDict(userDictPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load user dictionary: %w", err)
		}
		opts = append(opts, tokenizer.UserDict(udict))
	}
	tok, err := tokenizer.New(ipa.Dict(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &KagomeTagger{tok: tok}, nil
}

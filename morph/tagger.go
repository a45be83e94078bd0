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
	"sync"
	"time"
	"tmine/merror"

	"github.com/rs/zerolog/log"
)

// Tagger produces a morpheme sequence out of a raw text.
type Tagger interface {
	Tokenize(ctx context.Context, text string) (Sequence, error)
}

// Factory creates a concrete tagger. It is expected to be
// an expensive operation (dictionary loading).
type Factory func() (Tagger, error)

// LazyTagger defers tagger initialization to the first Tokenize
// call so a worker process starts instantly and pays the dictionary
// loading cost only when actually used. The initialization runs
// at most once; once it fails, all subsequent calls report the
// tagger as unavailable without retrying.
type LazyTagger struct {
	factory Factory
	once    sync.Once
	tagger  Tagger
	initErr error
}

func (lt *LazyTagger) init() {
	t0 := time.Now()
	lt.tagger, lt.initErr = lt.factory()
	if lt.initErr != nil {
		log.Error().Err(lt.initErr).Msg("failed to initialize morphological tagger")
		return
	}
	log.Info().
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Msg("morphological tagger initialized")
}

func (lt *LazyTagger) Tokenize(ctx context.Context, text string) (Sequence, error) {
	lt.once.Do(lt.init)
	if lt.initErr != nil {
		return nil, merror.InternalError{
			Msg: fmt.Sprintf("morphological tagger is not available: %s", lt.initErr),
		}
	}
	return lt.tagger.Tokenize(ctx, text)
}

func NewLazyTagger(factory Factory) *LazyTagger {
	return &LazyTagger{factory: factory}
}

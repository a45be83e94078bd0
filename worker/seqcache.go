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

package worker

import (
	"crypto/sha1"
	"encoding/hex"
	"tmine/morph"
)

const seqCacheMaxEntries = 16

// SeqCache keeps tokenized sequences of the most recently
// processed texts, keyed by text hash. It is accessed from the
// worker's single processing goroutine only and thus needs
// no locking.
type SeqCache struct {
	data  map[string]morph.Sequence
	order []string
}

func (sc *SeqCache) mkKey(text string) string {
	h := sha1.Sum([]byte(text))
	return hex.EncodeToString(h[:])
}

func (sc *SeqCache) Get(text string) (morph.Sequence, bool) {
	v, ok := sc.data[sc.mkKey(text)]
	return v, ok
}

func (sc *SeqCache) Set(text string, seq morph.Sequence) {
	key := sc.mkKey(text)
	if _, ok := sc.data[key]; !ok {
		sc.order = append(sc.order, key)
		if len(sc.order) > seqCacheMaxEntries {
			delete(sc.data, sc.order[0])
			sc.order = sc.order[1:]
		}
	}
	sc.data[key] = seq
}

func NewSeqCache() *SeqCache {
	return &SeqCache{
		data: make(map[string]morph.Sequence),
	}
}

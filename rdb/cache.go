// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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

package rdb

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// CacheResult wraps a query-publishing function with a file cache.
// With no cache path configured, it is a pass-through. A cached
// entry stores the whole result envelope so repeated identical
// requests skip the worker queue entirely. Error results are
// never cached.
func (a *Adapter) CacheResult(fn func(Query) (<-chan *WorkerResult, error), query Query) (<-chan *WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	hashKey := sha1.Sum(append([]byte(query.Func), query.Args...))
	path := filepath.Join(a.cachePath, query.Func+hex.EncodeToString(hashKey[:]))

	pe := fs.PathExists(path)
	isf, _ := fs.IsFile(path)
	ans := make(chan *WorkerResult)
	if pe && isf {
		go func() {
			result := new(WorkerResult)
			content, err := os.ReadFile(path)
			if err != nil {
				log.Err(err).Msgf("Error while reading cache file %s", path)
				attachErrorResult(result, query.Func, err)

			} else if err := sonic.Unmarshal(content, result); err != nil {
				log.Err(err).Msgf("Error while decoding cache file %s", path)
				attachErrorResult(result, query.Func, err)
			}
			ans <- result
			close(ans)
		}()
		return ans, nil
	}

	wr, err := fn(query)
	if err != nil {
		return wr, err
	}
	go func(wr <-chan *WorkerResult) {
		rawResult := <-wr
		if rawResult.ResultType != ResultTypeError {
			data, err := sonic.Marshal(rawResult)
			if err != nil {
				log.Err(err).Msgf("Error while serializing result for cache file %s", path)

			} else if err := os.WriteFile(path, data, 0644); err != nil {
				log.Err(err).Msgf("Error while writing cache file %s", path)
			}
		}
		ans <- rawResult
		close(ans)
	}(wr)
	return ans, nil
}

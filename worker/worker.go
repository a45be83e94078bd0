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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"
	"tmine/merror"
	"tmine/morph"
	"tmine/rdb"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec rdb.JobLog)
}

// Worker picks analysis jobs from the Redis queue, runs them
// against the tagger and publishes results back to the respective
// result channels. All the jobs are processed sequentially by
// a single goroutine so the tagger never runs concurrently.
type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	tagger     morph.Tagger
	seqCache   *SeqCache
	ticker     *time.Ticker
	jobLogger  jobLogger
	currJobLog *rdb.JobLog
}

func (w *Worker) publishResult(res rdb.FuncResult, channel string) error {
	var procBegin time.Time
	if w.currJobLog != nil {
		procBegin = w.currJobLog.Begin
	}
	ans, err := rdb.CreateWorkerResult(w.ID, procBegin, res)
	if err != nil {
		return err
	}

	if w.currJobLog != nil {
		w.currJobLog.End = time.Now()
		w.currJobLog.Err = res.Err()
		w.jobLogger.Log(*w.currJobLog)
		w.currJobLog = nil
	}
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	if err := w.publishResult(&rdb.ErrorResult{Func: query.Func, Error: err.Error()}, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(ctx context.Context, query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
			return
		}
	}()
	switch query.Func {
	case rdb.FuncMorphemes:
		var args rdb.MorphemesArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.morphemes(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case rdb.FuncWordReport:
		var args rdb.WordReportArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.wordReport(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case rdb.FuncWordCloud:
		var args rdb.WordCloudArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.wordCloud(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case rdb.FuncCoocNetwork:
		var args rdb.CoocNetworkArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.coocNetwork(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case rdb.FuncKWIC:
		var args rdb.KWICArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.kwic(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	default:
		ans := &rdb.ErrorResult{Error: fmt.Sprintf("unknown query function: %s", query.Func)}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery(ctx context.Context) error {

	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Any("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Any("args", query.Args).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &rdb.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(ctx, query)
	var rcvErr merror.RecoveredError
	if errors.As(err, &rcvErr) {
		ans := &rdb.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Msg),
			Func:  query.Func,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("worker exiting")
				return
			case <-w.ticker.C:
				w.tryNextQuery(ctx)
			case msg := <-w.messages:
				if msg.Payload == rdb.MsgNewQuery {
					w.tryNextQuery(ctx)
				}
			}
		}
	}()
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping worker")
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	tagger morph.Tagger,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		messages:  messages,
		tagger:    tagger,
		seqCache:  NewSeqCache(),
		ticker:    time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
	}
}

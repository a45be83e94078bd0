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

package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	MsgNewQuery                = "newQuery"
	MsgNewResult               = "newResult"
	DefaultQueueKey            = "tmineQueue"
	DefaultResultChannelPrefix = "tmineResults"
	DefaultQueryChannel        = "tmineQueries"
	DefaultResultExpiration    = 10 * time.Minute

	workersLoadHashKey = "tmineWorkersLoad"
	recentJobsHashKey  = "tmineRecentJobs"
)

var (
	ErrorEmptyQueue = errors.New("no queued query")
)

// Query describes a single job for a worker. Args hold a JSON
// serialized argument structure matching the Func (see args.go).
type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// Adapter provides access to the Redis-backed job queue
// and to the respective result channels.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	cachePath           string
}

// TestConnection pings the server in one second intervals
// until it either succeeds or the timeout is up.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	if err := a.c.Ping(ctx).Err(); err == nil {
		return nil
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to the Redis server within %v", timeout)
		case <-ticker.C:
			err := a.c.Ping(ctx).Err()
			if err == nil {
				return nil
			}
			log.Warn().Err(err).Msg("waiting for Redis server...")
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

func attachErrorResult(wr *WorkerResult, fn string, err error) {
	if aErr := wr.AttachValue(ErrorResult{Func: fn, Error: err.Error()}); aErr != nil {
		log.Error().Err(aErr).Msg("failed to attach error result")
	}
}

// PublishQuery puts a new query to the queue, announces it to the
// workers and returns a channel the caller can wait on for the result.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan *WorkerResult)

	// now we wait for response and send result via `ans`
	go func() {
		result := new(WorkerResult)

		item := <-sub.Channel()
		cmd := a.c.Get(a.ctx, item.Payload)
		if cmd.Err() != nil {
			attachErrorResult(result, query.Func, cmd.Err())

		} else {
			if err := sonic.Unmarshal([]byte(cmd.Val()), result); err != nil {
				attachErrorResult(result, query.Func, err)
			}
		}
		ans <- result
		sub.Close()
		close(ans)
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if cmd.Err() == redis.Nil {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	a.c.Set(a.ctx, channelName, string(data), DefaultResultExpiration)
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

// StoreWorkerLoad mirrors a worker's load snapshot so API server
// instances can serve monitoring data without sharing memory
// with the workers.
func (a *Adapter) StoreWorkerLoad(workerID string, data []byte) error {
	return a.c.HSet(a.ctx, workersLoadHashKey, workerID, string(data)).Err()
}

func (a *Adapter) GetWorkersLoad() (map[string]string, error) {
	cmd := a.c.HGetAll(a.ctx, workersLoadHashKey)
	if cmd.Err() != nil {
		return nil, fmt.Errorf("failed to fetch workers load: %w", cmd.Err())
	}
	return cmd.Val(), nil
}

func (a *Adapter) StoreRecentJobs(workerID string, data []byte) error {
	return a.c.HSet(a.ctx, recentJobsHashKey, workerID, string(data)).Err()
}

func (a *Adapter) GetRecentJobs() (map[string]string, error) {
	cmd := a.c.HGetAll(a.ctx, recentJobsHashKey)
	if cmd.Err() != nil {
		return nil, fmt.Errorf("failed to fetch recent jobs: %w", cmd.Err())
	}
	return cmd.Val(), nil
}

// DropWorkerStatus removes mirrored monitoring data of a worker,
// typically on its graceful shutdown.
func (a *Adapter) DropWorkerStatus(workerID string) error {
	if err := a.c.HDel(a.ctx, workersLoadHashKey, workerID).Err(); err != nil {
		return err
	}
	return a.c.HDel(a.ctx, recentJobsHashKey, workerID).Err()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	chRes := conf.ChannelResultPrefix
	chQuery := conf.ChannelQuery
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}

	ans := &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		cachePath:           conf.CachePath,
	}
	return ans
}

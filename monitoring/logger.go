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

package monitoring

import (
	"context"
	"errors"
	"sync"
	"time"
	"tmine/rdb"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	StaleWorkerLoadTTL       = time.Hour * 24
	tickerIntervalSecs int64 = 10
	RecentLogSize            = 100
)

var (
	ErrWorkerNotFound = errors.New("worker not found")
)

// WorkerJobLogger collects job records of a worker process. Besides
// answering in-process load queries, it regularly mirrors the
// collected stats to a shared storage so the API server can report
// on workers it does not share a process with.
type WorkerJobLogger struct {
	loadData     WorkersLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[rdb.JobLog]
	tz           *time.Location
	numTicks     int64
	statusWriter StatusWriter
	mirror       LoadMirror
}

func (w *WorkerJobLogger) Log(rec rdb.JobLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	entry, ok := w.loadData[rec.WorkerID]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumJobs++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.End.Sub(rec.Begin).Seconds()
	w.loadData[rec.WorkerID] = entry
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *WorkerJobLogger) TotalLoad() WorkerLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.loadData.SumLoad(w.tz)
}

func (w *WorkerJobLogger) RecentLoad() WorkerLoad {
	var ans WorkerLoad
	workers := collections.NewSet[string]()
	w.recentLog.ForEach(func(i int, item rdb.JobLog) bool {
		workers.Add(item.WorkerID)
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.End.Sub(item.Begin).Seconds()
		return true
	})
	ans.NumWorkers = workers.Size()
	return ans
}

func (w *WorkerJobLogger) RecentRecords() []rdb.JobLog {
	ans := make([]rdb.JobLog, w.recentLog.Len())
	w.recentLog.ForEach(func(i int, item rdb.JobLog) bool {
		ans[i] = item
		return true
	})
	return ans
}

func (w *WorkerJobLogger) TotalWorkerLoad(workerID string) (WorkerLoad, error) {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans, ok := w.loadData[workerID]
	if !ok {
		return ans, ErrWorkerNotFound
	}
	return ans, nil
}

func (w *WorkerJobLogger) RecentWorkerLoad(workerID string) (WorkerLoad, error) {
	var ans WorkerLoad
	var found bool
	w.recentLog.ForEach(func(i int, item rdb.JobLog) bool {
		if item.WorkerID != workerID {
			return true
		}
		if !found {
			ans.FirstUpdate = item.Begin
			found = true
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.End.Sub(item.Begin).Seconds()
		return true
	})
	if found {
		ans.NumWorkers = 1
		return ans, nil
	}
	return ans, ErrWorkerNotFound
}

// mirrorStatus publishes the current per-worker stats and the
// recent job log to the shared storage.
func (w *WorkerJobLogger) mirrorStatus() {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	for workerID, load := range w.loadData {
		data, err := sonic.Marshal(load)
		if err != nil {
			log.Error().Err(err).Msg("failed to serialize worker load")
			continue
		}
		if err := w.mirror.StoreWorkerLoad(workerID, data); err != nil {
			log.Error().Err(err).Str("workerId", workerID).Msg("failed to mirror worker load")
		}
	}
	byWorker := make(map[string][]rdb.JobLog)
	w.recentLog.ForEach(func(i int, item rdb.JobLog) bool {
		byWorker[item.WorkerID] = append(byWorker[item.WorkerID], item)
		return true
	})
	for workerID, jobs := range byWorker {
		data, err := sonic.Marshal(jobs)
		if err != nil {
			log.Error().Err(err).Msg("failed to serialize recent jobs")
			continue
		}
		if err := w.mirror.StoreRecentJobs(workerID, data); err != nil {
			log.Error().Err(err).Str("workerId", workerID).Msg("failed to mirror recent jobs")
		}
	}
}

func (w *WorkerJobLogger) Start(ctx context.Context) {
	ticksPerCleanup := int64(StaleWorkerLoadTTL.Seconds()) / tickerIntervalSecs
	w.loadData = make(WorkersLoad)
	w.recentLog = collections.NewCircularList[rdb.JobLog](RecentLogSize)
	log.Info().Msg("starting worker job logger")
	go func() {
		ticker := time.NewTicker(time.Duration(tickerIntervalSecs) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				if ctx.Err() != nil { // should be always true here
					log.Info().Msg("requesting worker job logger stop")
				}
				return
			case <-ticker.C:
				if w.mirror != nil {
					w.mirrorStatus()
				}
				w.numTicks++
				if w.numTicks >= ticksPerCleanup {
					w.dataLock.Lock()
					w.loadData.cleanOldRecords()
					w.dataLock.Unlock()
					w.numTicks = 0
				}
			}
		}
	}()
}

// Stop deregisters the mirrored workers so stale entries do not
// survive a graceful shutdown.
func (w *WorkerJobLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down worker job logger")
	if w.mirror == nil {
		return nil
	}
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	for workerID := range w.loadData {
		if err := w.mirror.DropWorkerStatus(workerID); err != nil {
			log.Error().Err(err).Str("workerId", workerID).Msg("failed to deregister worker")
		}
	}
	return nil
}

func NewWorkerJobLogger(
	statusWriter StatusWriter,
	mirror LoadMirror,
	tz *time.Location,
) *WorkerJobLogger {
	return &WorkerJobLogger{
		statusWriter: statusWriter,
		mirror:       mirror,
		tz:           tz,
	}
}

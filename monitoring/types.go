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
	"sort"
	"time"
	"tmine/rdb"

	"github.com/bytedance/sonic"
)

// ---

type WorkerLoad struct {
	NumJobs       int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
	NumWorkers    int
}

// TotalSpan returns time span covered by the load info
func (wl WorkerLoad) TotalSpan() time.Duration {
	return wl.LastUpdate.Sub(wl.FirstUpdate)
}

// AvgLoad returns the fraction of the covered time span the involved
// workers spent processing jobs. Per-worker records (both fresh ones
// and the ones restored from their mirrored form) carry no worker
// count so a zero NumWorkers counts as a single worker.
func (wl WorkerLoad) AvgLoad() float64 {
	span := wl.TotalSpan().Seconds()
	if wl.TotalTimeSecs == 0 || span == 0 {
		return 0
	}
	numWorkers := wl.NumWorkers
	if numWorkers == 0 {
		numWorkers = 1
	}
	return wl.TotalTimeSecs / span / float64(numWorkers)
}

type workerLoadJSON struct {
	NumJobs       int        `json:"numJobs"`
	TotalTimeSecs float64    `json:"totalTimeSecs"`
	NumErrors     int        `json:"numErrors"`
	FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
	LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
	AvgLoad       float64    `json:"avgLoad"`
}

func (wl WorkerLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !wl.FirstUpdate.IsZero() {
		t0 = &wl.FirstUpdate
	}
	if !wl.LastUpdate.IsZero() {
		t1 = &wl.LastUpdate
	}
	return sonic.Marshal(
		workerLoadJSON{
			NumJobs:       wl.NumJobs,
			TotalTimeSecs: wl.TotalTimeSecs,
			NumErrors:     wl.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
			AvgLoad:       wl.AvgLoad(),
		},
	)
}

func (wl *WorkerLoad) UnmarshalJSON(data []byte) error {
	var tmp workerLoadJSON
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	wl.NumJobs = tmp.NumJobs
	wl.TotalTimeSecs = tmp.TotalTimeSecs
	wl.NumErrors = tmp.NumErrors
	if tmp.FirstUpdate != nil {
		wl.FirstUpdate = *tmp.FirstUpdate
	}
	if tmp.LastUpdate != nil {
		wl.LastUpdate = *tmp.LastUpdate
	}
	return nil
}

// ---

// WorkersLoad maps worker IDs to their cumulative load stats.
type WorkersLoad map[string]WorkerLoad

// SumLoad merges all the per-worker stats into a single load
// value with times normalized into the provided location.
func (wl WorkersLoad) SumLoad(tz *time.Location) WorkerLoad {
	var ans WorkerLoad
	for _, v := range wl {
		ans.NumJobs += v.NumJobs
		ans.TotalTimeSecs += v.TotalTimeSecs
		ans.NumErrors += v.NumErrors
		if ans.FirstUpdate.IsZero() || v.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = v.FirstUpdate
		}
		if v.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = v.LastUpdate
		}
		ans.NumWorkers++
	}
	if !ans.FirstUpdate.IsZero() {
		ans.FirstUpdate = ans.FirstUpdate.In(tz)
	}
	if !ans.LastUpdate.IsZero() {
		ans.LastUpdate = ans.LastUpdate.In(tz)
	}
	return ans
}

func (wl WorkersLoad) cleanOldRecords() {
	for k, v := range wl {
		if time.Since(v.LastUpdate) > StaleWorkerLoadTTL {
			delete(wl, k)
		}
	}
}

// DecodeWorkersLoad restores per-worker load stats out of their
// serialized form as mirrored to Redis by the individual workers.
func DecodeWorkersLoad(raw map[string]string) (WorkersLoad, error) {
	ans := make(WorkersLoad, len(raw))
	for workerID, data := range raw {
		var load WorkerLoad
		if err := sonic.Unmarshal([]byte(data), &load); err != nil {
			return nil, err
		}
		ans[workerID] = load
	}
	return ans, nil
}

// DecodeRecentJobs merges the per-worker recent job mirrors into
// a single chronological list capped to the most recent maxItems
// records (no limit when maxItems <= 0).
func DecodeRecentJobs(raw map[string]string, maxItems int) ([]rdb.JobLog, error) {
	ans := make([]rdb.JobLog, 0, len(raw)*10)
	for _, data := range raw {
		var jobs []rdb.JobLog
		if err := sonic.Unmarshal([]byte(data), &jobs); err != nil {
			return nil, err
		}
		ans = append(ans, jobs...)
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return ans[i].Begin.Before(ans[j].Begin)
	})
	if maxItems > 0 && len(ans) > maxItems {
		ans = ans[len(ans)-maxItems:]
	}
	return ans, nil
}

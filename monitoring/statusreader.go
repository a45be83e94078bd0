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
	"time"
	"tmine/rdb"

	"github.com/czcorpus/cnc-gokit/collections"
)

// LoadSource provides access to worker status data previously
// published via a LoadMirror.
type LoadSource interface {
	GetWorkersLoad() (map[string]string, error)
	GetRecentJobs() (map[string]string, error)
}

// StatusReader answers worker load queries using the mirrored
// status data. It is the API server counterpart of WorkerJobLogger
// which collects the data inside the worker processes.
type StatusReader struct {
	source LoadSource
	tz     *time.Location
}

func (r *StatusReader) TotalLoad() (WorkerLoad, error) {
	raw, err := r.source.GetWorkersLoad()
	if err != nil {
		return WorkerLoad{}, err
	}
	load, err := DecodeWorkersLoad(raw)
	if err != nil {
		return WorkerLoad{}, err
	}
	return load.SumLoad(r.tz), nil
}

func (r *StatusReader) RecentLoad() (WorkerLoad, error) {
	jobs, err := r.recentJobs()
	if err != nil {
		return WorkerLoad{}, err
	}
	return sumJobsLoad(jobs, r.tz), nil
}

func (r *StatusReader) TotalWorkerLoad(workerID string) (WorkerLoad, error) {
	raw, err := r.source.GetWorkersLoad()
	if err != nil {
		return WorkerLoad{}, err
	}
	load, err := DecodeWorkersLoad(raw)
	if err != nil {
		return WorkerLoad{}, err
	}
	ans, ok := load[workerID]
	if !ok {
		return ans, ErrWorkerNotFound
	}
	return ans, nil
}

func (r *StatusReader) RecentWorkerLoad(workerID string) (WorkerLoad, error) {
	jobs, err := r.recentJobs()
	if err != nil {
		return WorkerLoad{}, err
	}
	var own []rdb.JobLog
	for _, job := range jobs {
		if job.WorkerID == workerID {
			own = append(own, job)
		}
	}
	if len(own) == 0 {
		return WorkerLoad{}, ErrWorkerNotFound
	}
	return sumJobsLoad(own, r.tz), nil
}

func (r *StatusReader) RecentRecords() ([]rdb.JobLog, error) {
	return r.recentJobs()
}

func (r *StatusReader) recentJobs() ([]rdb.JobLog, error) {
	raw, err := r.source.GetRecentJobs()
	if err != nil {
		return nil, err
	}
	return DecodeRecentJobs(raw, RecentLogSize)
}

func sumJobsLoad(jobs []rdb.JobLog, tz *time.Location) WorkerLoad {
	var ans WorkerLoad
	workers := collections.NewSet[string]()
	for i, item := range jobs {
		workers.Add(item.WorkerID)
		if i == 0 {
			ans.FirstUpdate = item.Begin.In(tz)
		}
		ans.LastUpdate = item.End.In(tz)
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.End.Sub(item.Begin).Seconds()
	}
	ans.NumWorkers = workers.Size()
	return ans
}

func NewStatusReader(source LoadSource, tz *time.Location) *StatusReader {
	return &StatusReader{
		source: source,
		tz:     tz,
	}
}

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
	"testing"
	"time"
	"tmine/rdb"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoadSource struct {
	workersLoad map[string]string
	recentJobs  map[string]string
}

func (s *fakeLoadSource) GetWorkersLoad() (map[string]string, error) {
	return s.workersLoad, nil
}

func (s *fakeLoadSource) GetRecentJobs() (map[string]string, error) {
	return s.recentJobs, nil
}

func mirroredLoadSource(t *testing.T) *fakeLoadSource {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	load1, err := sonic.Marshal(WorkerLoad{
		NumJobs: 4, TotalTimeSecs: 10, NumErrors: 1,
		FirstUpdate: t0, LastUpdate: t0.Add(time.Hour),
	})
	require.NoError(t, err)
	load2, err := sonic.Marshal(WorkerLoad{
		NumJobs: 2, TotalTimeSecs: 5,
		FirstUpdate: t0.Add(time.Minute), LastUpdate: t0.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	jobs1, err := sonic.Marshal([]rdb.JobLog{
		{WorkerID: "1001", Func: "wordReport", Begin: t0, End: t0.Add(2 * time.Second)},
	})
	require.NoError(t, err)
	jobs2, err := sonic.Marshal([]rdb.JobLog{
		{WorkerID: "1002", Func: "coocNetwork", Begin: t0.Add(time.Minute), End: t0.Add(time.Minute + 5*time.Second)},
	})
	require.NoError(t, err)
	return &fakeLoadSource{
		workersLoad: map[string]string{"1001": string(load1), "1002": string(load2)},
		recentJobs:  map[string]string{"1001": string(jobs1), "1002": string(jobs2)},
	}
}

func TestStatusReaderTotalLoad(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	load, err := reader.TotalLoad()
	require.NoError(t, err)
	assert.Equal(t, 6, load.NumJobs)
	assert.Equal(t, 15.0, load.TotalTimeSecs)
	assert.Equal(t, 1, load.NumErrors)
	assert.Equal(t, 2, load.NumWorkers)
}

func TestStatusReaderRecentLoad(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	load, err := reader.RecentLoad()
	require.NoError(t, err)
	assert.Equal(t, 2, load.NumJobs)
	assert.Equal(t, 7.0, load.TotalTimeSecs)
	assert.Equal(t, 2, load.NumWorkers)
}

func TestStatusReaderTotalWorkerLoad(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	load, err := reader.TotalWorkerLoad("1002")
	require.NoError(t, err)
	assert.Equal(t, 2, load.NumJobs)
	assert.Equal(t, 5.0, load.TotalTimeSecs)
}

func TestStatusReaderTotalWorkerLoadNotFound(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	_, err := reader.TotalWorkerLoad("1003")
	assert.Equal(t, ErrWorkerNotFound, err)
}

func TestStatusReaderRecentWorkerLoad(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	load, err := reader.RecentWorkerLoad("1002")
	require.NoError(t, err)
	assert.Equal(t, 1, load.NumJobs)
	assert.Equal(t, 1, load.NumWorkers)
	assert.Equal(t, 5.0, load.TotalTimeSecs)
}

func TestStatusReaderRecentRecords(t *testing.T) {
	reader := NewStatusReader(mirroredLoadSource(t), time.UTC)
	records, err := reader.RecentRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "wordReport", records[0].Func)
	assert.Equal(t, "coocNetwork", records[1].Func)
}

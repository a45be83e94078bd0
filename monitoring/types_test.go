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
	"errors"
	"testing"
	"time"
	"tmine/rdb"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerLoadJSONRoundTrip(t *testing.T) {
	load := WorkerLoad{
		NumJobs:       10,
		TotalTimeSecs: 20.5,
		NumErrors:     2,
		FirstUpdate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		LastUpdate:    time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		NumWorkers:    3,
	}
	data, err := sonic.Marshal(load)
	require.NoError(t, err)
	assert.Contains(t, string(data), "avgLoad")

	var restored WorkerLoad
	err = sonic.Unmarshal(data, &restored)
	require.NoError(t, err)
	assert.Equal(t, load.NumJobs, restored.NumJobs)
	assert.Equal(t, load.TotalTimeSecs, restored.TotalTimeSecs)
	assert.Equal(t, load.NumErrors, restored.NumErrors)
	assert.True(t, load.FirstUpdate.Equal(restored.FirstUpdate))
	assert.True(t, load.LastUpdate.Equal(restored.LastUpdate))
	assert.Equal(t, 0, restored.NumWorkers)
}

func TestWorkerLoadMarshalOmitsZeroTimes(t *testing.T) {
	data, err := sonic.Marshal(WorkerLoad{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "firstUpdate")
	assert.NotContains(t, string(data), "lastUpdate")
}

func TestWorkersLoadSumLoad(t *testing.T) {
	wload := WorkersLoad{
		"1001": {
			NumJobs:       4,
			TotalTimeSecs: 12.5,
			NumErrors:     1,
			FirstUpdate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			LastUpdate:    time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		"1002": {
			NumJobs:       2,
			TotalTimeSecs: 3.5,
			FirstUpdate:   time.Date(2024, 5, 1, 9, 50, 0, 0, time.UTC),
			LastUpdate:    time.Date(2024, 5, 1, 10, 10, 0, 0, time.UTC),
		},
	}
	sum := wload.SumLoad(time.UTC)
	assert.Equal(t, 6, sum.NumJobs)
	assert.Equal(t, 16.0, sum.TotalTimeSecs)
	assert.Equal(t, 1, sum.NumErrors)
	assert.Equal(t, 2, sum.NumWorkers)
	assert.True(t, sum.FirstUpdate.Equal(time.Date(2024, 5, 1, 9, 50, 0, 0, time.UTC)))
	assert.True(t, sum.LastUpdate.Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))
}

func TestWorkersLoadSumLoadEmpty(t *testing.T) {
	sum := WorkersLoad{}.SumLoad(time.UTC)
	assert.Equal(t, 0, sum.NumJobs)
	assert.Equal(t, 0, sum.NumWorkers)
	assert.True(t, sum.FirstUpdate.IsZero())
}

func TestDecodeWorkersLoad(t *testing.T) {
	data, err := sonic.Marshal(WorkerLoad{NumJobs: 3, TotalTimeSecs: 1.5})
	require.NoError(t, err)
	raw := map[string]string{"1001": string(data)}

	wload, err := DecodeWorkersLoad(raw)
	require.NoError(t, err)
	assert.Len(t, wload, 1)
	assert.Equal(t, 3, wload["1001"].NumJobs)
	assert.Equal(t, 1.5, wload["1001"].TotalTimeSecs)
}

func TestDecodeWorkersLoadInvalidData(t *testing.T) {
	_, err := DecodeWorkersLoad(map[string]string{"1001": "{"})
	assert.Error(t, err)
}

func TestDecodeRecentJobsMergesChronologically(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	jobs1, err := sonic.Marshal([]rdb.JobLog{
		{WorkerID: "1001", Func: "wordReport", Begin: t0, End: t0.Add(2 * time.Second)},
		{WorkerID: "1001", Func: "kwic", Begin: t0.Add(2 * time.Minute), End: t0.Add(2*time.Minute + time.Second)},
	})
	require.NoError(t, err)
	jobs2, err := sonic.Marshal([]rdb.JobLog{
		{WorkerID: "1002", Func: "wordCloud", Begin: t0.Add(time.Minute), End: t0.Add(time.Minute + 3*time.Second), Err: errors.New("failed")},
	})
	require.NoError(t, err)
	raw := map[string]string{"1001": string(jobs1), "1002": string(jobs2)}

	merged, err := DecodeRecentJobs(raw, 0)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, "wordReport", merged[0].Func)
	assert.Equal(t, "wordCloud", merged[1].Func)
	assert.Equal(t, "kwic", merged[2].Func)
	assert.EqualError(t, merged[1].Err, "failed")
}

func TestDecodeRecentJobsAppliesLimit(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	jobs, err := sonic.Marshal([]rdb.JobLog{
		{WorkerID: "1001", Func: "wordReport", Begin: t0, End: t0.Add(time.Second)},
		{WorkerID: "1001", Func: "wordCloud", Begin: t0.Add(time.Minute), End: t0.Add(time.Minute + time.Second)},
		{WorkerID: "1001", Func: "kwic", Begin: t0.Add(2 * time.Minute), End: t0.Add(2*time.Minute + time.Second)},
	})
	require.NoError(t, err)

	merged, err := DecodeRecentJobs(map[string]string{"1001": string(jobs)}, 2)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "wordCloud", merged[0].Func)
	assert.Equal(t, "kwic", merged[1].Func)
}

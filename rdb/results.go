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
	"encoding/json"
	"errors"
	"math"
	"time"
	"tmine/merror"

	"github.com/bytedance/sonic"
)

const (
	ResultTypeMorphemes   ResultType = "morphemes"
	ResultTypeWordReport  ResultType = "wordReport"
	ResultTypeWordCloud   ResultType = "wordCloud"
	ResultTypeCoocNetwork ResultType = "coocNetwork"
	ResultTypeKWIC        ResultType = "kwic"
	ResultTypeError       ResultType = "error"
)

type ResultType string // @name ResultType

func (rt ResultType) String() string {
	return string(rt)
}

// ----------------

// FuncResult is a result of any job function a worker can run.
type FuncResult interface {
	Err() error
	Type() ResultType
}

// WorkerResult is a JSON envelope a worker publishes to the
// respective result channel. Value holds a serialized FuncResult
// matching the ResultType.
type WorkerResult struct {
	ID           string          `json:"id"`
	ResultType   ResultType      `json:"resultType"`
	Value        json.RawMessage `json:"value"`
	HasUserError bool            `json:"hasUserError"`
	ProcBegin    time.Time       `json:"procBegin"`
	ProcEnd      time.Time       `json:"procEnd"`
}

// AttachValue serializes a function result into the envelope
// and sets the user error flag based on the error type.
func (wr *WorkerResult) AttachValue(value FuncResult) error {
	rawValue, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	wr.ResultType = value.Type()
	wr.Value = rawValue
	wr.HasUserError = isUserError(value.Err())
	return nil
}

func isUserError(err error) bool {
	if err == nil {
		return false
	}
	var inpErr merror.InputError
	return errors.As(err, &inpErr)
}

// CreateWorkerResult wraps a function result into a publishable
// envelope. ProcEnd is set to the current time.
func CreateWorkerResult(workerID string, procBegin time.Time, value FuncResult) (*WorkerResult, error) {
	ans := &WorkerResult{
		ID:        workerID,
		ProcBegin: procBegin,
		ProcEnd:   time.Now(),
	}
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}

// ----------------

// ErrorResult describes a job which failed before it could
// produce its typed result (unknown function, serialization
// problem, worker panic).
type ErrorResult struct {
	Func  string `json:"func"`
	Error string `json:"error"`
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

// ----------------

// JobLog describes a single job as processed by a worker.
type JobLog struct {
	WorkerID string
	Func     string
	Begin    time.Time
	End      time.Time
	Err      error
}

func (jl JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

type jobLogJSON struct {
	WorkerID string    `json:"workerId"`
	Func     string    `json:"func"`
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Error    string    `json:"error,omitempty"`
}

func (jl JobLog) MarshalJSON() ([]byte, error) {
	var errStr string
	if jl.Err != nil {
		errStr = jl.Err.Error()
	}
	return sonic.Marshal(jobLogJSON{
		WorkerID: jl.WorkerID,
		Func:     jl.Func,
		Begin:    jl.Begin,
		End:      jl.End,
		Error:    errStr,
	})
}

func (jl *JobLog) UnmarshalJSON(data []byte) error {
	var tmp jobLogJSON
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	jl.WorkerID = tmp.WorkerID
	jl.Func = tmp.Func
	jl.Begin = tmp.Begin
	jl.End = tmp.End
	if tmp.Error != "" {
		jl.Err = errors.New(tmp.Error)
	}
	return nil
}

// ----------------

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}

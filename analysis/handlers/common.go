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

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"tmine/analysis"
	"tmine/merror"
	"tmine/rdb"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// resultErrProbe matches the error attribute all the serialized
// result types share.
type resultErrProbe struct {
	Error string `json:"error"`
}

// HandleWorkerError inspects a raw worker result envelope for
// a processing error and if there is one, it responds with
// a respective HTTP error. Errors caused by the client (as flagged
// by the worker) map to HTTP 400, anything else is an internal error.
func HandleWorkerError(ctx *gin.Context, result *rdb.WorkerResult) bool {
	var probe resultErrProbe
	if err := sonic.Unmarshal(result.Value, &probe); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return false
	}
	if probe.Error != "" {
		status := http.StatusInternalServerError
		if result.HasUserError {
			status = http.StatusBadRequest
		}
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(errors.New(probe.Error)),
			status,
		)
		return false
	}
	return true
}

// checkRangeArg applies a default in place of a missing (zero)
// numeric argument and tests provided values against the range
// allowed for the respective analyzer.
func checkRangeArg(name string, value, dflt, floor, limit int) (int, error) {
	if value == 0 {
		return dflt, nil
	}
	if value < floor || value > limit {
		return 0, merror.InputError{
			Msg: fmt.Sprintf("`%s` must be between %d and %d", name, floor, limit),
		}
	}
	return value, nil
}

// checkPOSSelection applies the default part of speech selection
// in place of an empty one and tests provided values against the
// categories the respective analyzer accepts.
func checkPOSSelection(selected, available []string) ([]string, error) {
	if len(selected) == 0 {
		return analysis.DfltPOSSelection, nil
	}
	if err := analysis.ValidatePOSSelection(selected, available); err != nil {
		return nil, err
	}
	return selected, nil
}

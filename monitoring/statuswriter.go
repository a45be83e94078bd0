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
	"tmine/rdb"
)

// StatusWriter accepts finished job records for durable reporting
// (e.g. into TimescaleDB). Implementations must not block as the
// Write call sits on the job logging path.
type StatusWriter interface {
	Write(item rdb.JobLog)
}

// LoadMirror publishes worker load snapshots to a shared storage
// so they can be read by other processes (typically the API server
// answering monitoring requests).
type LoadMirror interface {
	StoreWorkerLoad(workerID string, data []byte) error
	StoreRecentJobs(workerID string, data []byte) error
	DropWorkerStatus(workerID string) error
}

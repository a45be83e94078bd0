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

package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const reloadDebounce = 250 * time.Millisecond

// StopWordsProvider serves the current default stop word list.
// Without a configured file, the list is the built-in one and
// never changes. With a file, its contents are reloaded whenever
// the file changes so the list can be curated while the service
// is running.
type StopWordsProvider struct {
	path        string
	current     string
	lock        sync.RWMutex
	watcher     *fsnotify.Watcher
	reloadTimer *time.Timer
}

// Raw returns the current stop word list in the raw textual
// format accepted by BuildStopWordSet.
func (p *StopWordsProvider) Raw() string {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.current
}

func (p *StopWordsProvider) reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("failed to load stop words from %s: %w", p.path, err)
	}
	p.lock.Lock()
	p.current = string(data)
	p.lock.Unlock()
	return nil
}

func (p *StopWordsProvider) scheduleReload() {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.reloadTimer != nil {
		p.reloadTimer.Stop()
	}
	// editors typically produce several events per save so the
	// actual reload runs only once things settle down
	p.reloadTimer = time.AfterFunc(reloadDebounce, func() {
		if err := p.reload(); err != nil {
			log.Error().Err(err).Msg("failed to reload stop words")
			return
		}
		log.Info().
			Str("file", p.path).
			Int("numEntries", BuildStopWordSet(p.Raw()).Size()).
			Msg("reloaded stop words")
	})
}

// Start watches the configured stop words file (if any) for changes.
func (p *StopWordsProvider) Start(ctx context.Context) {
	if p.watcher == nil {
		return
	}
	go func() {
		for {
			select {
			case event, ok := <-p.watcher.Events:
				if !ok {
					return
				}
				if event.Name == p.path && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					p.scheduleReload()
				}
			case err, ok := <-p.watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("stop words watcher failed")
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (p *StopWordsProvider) Stop(ctx context.Context) error {
	p.lock.Lock()
	if p.reloadTimer != nil {
		p.reloadTimer.Stop()
	}
	p.lock.Unlock()
	if p.watcher != nil {
		return p.watcher.Close()
	}
	return nil
}

// NewStopWordsProvider creates a provider based on the analysis
// setup. With an empty stopWordsFile, the built-in list is used.
func NewStopWordsProvider(conf *AnalysisSetup) (*StopWordsProvider, error) {
	p := &StopWordsProvider{path: conf.StopWordsFile}
	if p.path == "" {
		p.current = DefaultStopWordsRaw()
		return p, nil
	}
	if err := p.reload(); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create stop words watcher: %w", err)
	}
	// the parent directory is watched as editors tend to replace
	// the file on save which would invalidate a direct watch
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch stop words file: %w", err)
	}
	p.watcher = watcher
	return p, nil
}

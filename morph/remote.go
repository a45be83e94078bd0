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

package morph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/httpclient"
)

const (
	remoteIdleConnTimeoutSecs = 60
	remoteRequestTimeoutSecs  = 30
)

// RemoteTagger delegates tokenization to an external HTTP service.
// The service is expected to accept a plain text POST body and
// answer with a JSON array of morphemes.
type RemoteTagger struct {
	serviceURL string
	client     *http.Client
}

func (rt *RemoteTagger) Tokenize(ctx context.Context, text string) (Sequence, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, rt.serviceURL, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to create remote tagger request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp, err := rt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call remote tagger: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote tagger responded with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote tagger response: %w", err)
	}
	var ans Sequence
	if err := json.Unmarshal(body, &ans); err != nil {
		return nil, fmt.Errorf("failed to decode remote tagger response: %w", err)
	}
	return ans, nil
}

func NewRemoteTagger(serviceURL string) *RemoteTagger {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = remoteIdleConnTimeoutSecs * time.Second
	return &RemoteTagger{
		serviceURL: serviceURL,
		client: &http.Client{
			Timeout:   remoteRequestTimeoutSecs * time.Second,
			Transport: transport,
		},
	}
}

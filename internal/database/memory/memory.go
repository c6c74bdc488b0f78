// Copyright © 2021 The riplx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"context"
	"sync"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/rptypes"
)

const (
	// MemoryConfMaxSubmissions bounds the number of submission records retained, oldest dropped first
	MemoryConfMaxSubmissions = "maxSubmissions"
)

// Memory is a process-local record store, guarded by a single RW mutex.
// Records are copied on the way in and on the way out, so callers never share state with the store.
type Memory struct {
	mux            sync.RWMutex
	maxSubmissions int
	submissions    []*rptypes.SubmissionRecord
	credentials    map[string]*rptypes.CredentialRecord
	payloads       map[string]*rptypes.PayloadRecord
	trustlines     map[string]*rptypes.TrustlineMarker
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) InitConfigPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(MemoryConfMaxSubmissions, 1000)
}

func (m *Memory) Init(ctx context.Context, prefix config.Prefix) error {
	m.maxSubmissions = prefix.GetInt(MemoryConfMaxSubmissions)
	m.submissions = []*rptypes.SubmissionRecord{}
	m.credentials = make(map[string]*rptypes.CredentialRecord)
	m.payloads = make(map[string]*rptypes.PayloadRecord)
	m.trustlines = make(map[string]*rptypes.TrustlineMarker)
	log.L(ctx).Infof("In-memory record store initialized (maxSubmissions=%d). Records are lost on restart", m.maxSubmissions)
	return nil
}

// RunAsGroup has no rollback in memory. Each write is atomic on its own.
func (m *Memory) RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *Memory) InsertSubmission(ctx context.Context, submission *rptypes.SubmissionRecord) error {
	if submission.ID == nil {
		submission.ID = rptypes.NewUUID()
	}
	if submission.Created == nil {
		submission.Created = rptypes.Now()
	}
	copied := *submission

	m.mux.Lock()
	defer m.mux.Unlock()
	m.submissions = append(m.submissions, &copied)
	if m.maxSubmissions > 0 && len(m.submissions) > m.maxSubmissions {
		dropped := len(m.submissions) - m.maxSubmissions
		m.submissions = append([]*rptypes.SubmissionRecord{}, m.submissions[dropped:]...)
		log.L(ctx).Debugf("Dropped %d oldest submission records", dropped)
	}
	return nil
}

func (m *Memory) GetSubmissions(ctx context.Context, filter *database.SubmissionFilter) ([]*rptypes.SubmissionRecord, error) {
	if filter == nil {
		filter = &database.SubmissionFilter{}
	}
	m.mux.RLock()
	defer m.mux.RUnlock()

	results := []*rptypes.SubmissionRecord{}
	for i := len(m.submissions) - 1; i >= 0; i-- {
		s := m.submissions[i]
		if filter.Account != "" && s.Account != filter.Account && s.Destination != filter.Account {
			continue
		}
		if filter.Kind != "" && s.Kind != filter.Kind {
			continue
		}
		copied := *s
		results = append(results, &copied)
		if filter.Limit > 0 && uint64(len(results)) >= filter.Limit {
			break
		}
	}
	return results, nil
}

func (m *Memory) UpsertCredential(ctx context.Context, credential *rptypes.CredentialRecord) error {
	now := rptypes.Now()
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.credentials[credential.Subject]; ok {
		credential.Created = existing.Created
	} else if credential.Created == nil {
		credential.Created = now
	}
	credential.Updated = now
	copied := *credential
	m.credentials[credential.Subject] = &copied
	return nil
}

func (m *Memory) GetCredential(ctx context.Context, subject string) (*rptypes.CredentialRecord, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	c, ok := m.credentials[subject]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *Memory) UpsertPayload(ctx context.Context, payload *rptypes.PayloadRecord) error {
	now := rptypes.Now()
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.payloads[payload.UUID]; ok {
		payload.Created = existing.Created
	} else if payload.Created == nil {
		payload.Created = now
	}
	payload.Updated = now
	copied := *payload
	m.payloads[payload.UUID] = &copied
	return nil
}

func (m *Memory) GetPayload(ctx context.Context, uuid string) (*rptypes.PayloadRecord, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	p, ok := m.payloads[uuid]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func trustlineKey(account, currency string) string {
	return account + "/" + currency
}

func (m *Memory) UpsertTrustlineMarker(ctx context.Context, marker *rptypes.TrustlineMarker) error {
	key := trustlineKey(marker.Account, marker.Currency)
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.trustlines[key]; ok {
		marker.Created = existing.Created
	} else if marker.Created == nil {
		marker.Created = rptypes.Now()
	}
	copied := *marker
	m.trustlines[key] = &copied
	return nil
}

func (m *Memory) GetTrustlineMarker(ctx context.Context, account, currency string) (*rptypes.TrustlineMarker, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	t, ok := m.trustlines[trustlineKey(account, currency)]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

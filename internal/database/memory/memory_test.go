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
	"fmt"
	"sync"
	"testing"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
)

const testAccount = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"

func newTestMemory(t *testing.T, max int) *Memory {
	config.Reset()
	m := &Memory{}
	prefix := config.NewPluginConfig("unittest.memory")
	m.InitConfigPrefix(prefix)
	prefix.Set(MemoryConfMaxSubmissions, max)
	err := m.Init(context.Background(), prefix)
	assert.NoError(t, err)
	assert.Equal(t, "memory", m.Name())
	return m
}

func TestSubmissionsNewestFirstWithFilter(t *testing.T) {
	m := newTestMemory(t, 10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := m.InsertSubmission(ctx, &rptypes.SubmissionRecord{
			Kind:    rptypes.SubmissionKindBlob,
			TxHash:  fmt.Sprintf("HASH%d", i),
			Account: testAccount,
		})
		assert.NoError(t, err)
	}
	err := m.InsertSubmission(ctx, &rptypes.SubmissionRecord{
		Kind:        rptypes.SubmissionKindRWAMint,
		TxHash:      "MINT",
		Account:     "rOther",
		Destination: testAccount,
	})
	assert.NoError(t, err)
	err = m.InsertSubmission(ctx, &rptypes.SubmissionRecord{Kind: rptypes.SubmissionKindBlob, Account: "rSomeoneElse"})
	assert.NoError(t, err)

	all, err := m.GetSubmissions(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 5)
	assert.NotNil(t, all[0].ID)
	assert.NotNil(t, all[0].Created)

	forAccount, err := m.GetSubmissions(ctx, &database.SubmissionFilter{Account: testAccount, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, forAccount, 2)
	assert.Equal(t, "MINT", forAccount[0].TxHash)
	assert.Equal(t, "HASH2", forAccount[1].TxHash)

	mints, err := m.GetSubmissions(ctx, &database.SubmissionFilter{Kind: rptypes.SubmissionKindRWAMint})
	assert.NoError(t, err)
	assert.Len(t, mints, 1)
}

func TestSubmissionsBounded(t *testing.T) {
	m := newTestMemory(t, 2)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_ = m.InsertSubmission(ctx, &rptypes.SubmissionRecord{TxHash: fmt.Sprintf("HASH%d", i)})
	}
	all, err := m.GetSubmissions(ctx, &database.SubmissionFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "HASH4", all[0].TxHash)
	assert.Equal(t, "HASH3", all[1].TxHash)
}

func TestSubmissionsReturnCopies(t *testing.T) {
	m := newTestMemory(t, 10)
	ctx := context.Background()
	s := &rptypes.SubmissionRecord{TxHash: "ORIGINAL"}
	_ = m.InsertSubmission(ctx, s)
	s.TxHash = "CHANGED"
	all, _ := m.GetSubmissions(ctx, nil)
	assert.Equal(t, "ORIGINAL", all[0].TxHash)
	all[0].TxHash = "CHANGED AGAIN"
	all, _ = m.GetSubmissions(ctx, nil)
	assert.Equal(t, "ORIGINAL", all[0].TxHash)
}

func TestCredentialUpsertKeepsCreated(t *testing.T) {
	m := newTestMemory(t, 10)
	ctx := context.Background()

	c, err := m.GetCredential(ctx, testAccount)
	assert.NoError(t, err)
	assert.Nil(t, c)

	err = m.UpsertCredential(ctx, &rptypes.CredentialRecord{Subject: testAccount, TxHash: "H1"})
	assert.NoError(t, err)
	first, _ := m.GetCredential(ctx, testAccount)
	assert.Equal(t, "H1", first.TxHash)

	err = m.UpsertCredential(ctx, &rptypes.CredentialRecord{Subject: testAccount, TxHash: "H2", Submitted: true})
	assert.NoError(t, err)
	second, _ := m.GetCredential(ctx, testAccount)
	assert.Equal(t, "H2", second.TxHash)
	assert.True(t, second.Submitted)
	assert.Equal(t, first.Created.UnixNano(), second.Created.UnixNano())
	assert.NotNil(t, second.Updated)
}

func TestPayloadUpsert(t *testing.T) {
	m := newTestMemory(t, 10)
	ctx := context.Background()

	p, err := m.GetPayload(ctx, "uuid1")
	assert.NoError(t, err)
	assert.Nil(t, p)

	err = m.UpsertPayload(ctx, &rptypes.PayloadRecord{UUID: "uuid1", Kind: rptypes.PayloadKindTrustline})
	assert.NoError(t, err)
	err = m.UpsertPayload(ctx, &rptypes.PayloadRecord{UUID: "uuid1", Kind: rptypes.PayloadKindTrustline, Signed: true, Account: testAccount})
	assert.NoError(t, err)

	p, err = m.GetPayload(ctx, "uuid1")
	assert.NoError(t, err)
	assert.True(t, p.Signed)
	assert.Equal(t, testAccount, p.Account)
	assert.NotNil(t, p.Created)
}

func TestTrustlineMarkers(t *testing.T) {
	m := newTestMemory(t, 10)
	ctx := context.Background()

	tm, err := m.GetTrustlineMarker(ctx, testAccount, "USD")
	assert.NoError(t, err)
	assert.Nil(t, tm)

	err = m.UpsertTrustlineMarker(ctx, &rptypes.TrustlineMarker{Account: testAccount, Currency: "USD", PayloadUUID: "u1"})
	assert.NoError(t, err)
	err = m.UpsertTrustlineMarker(ctx, &rptypes.TrustlineMarker{Account: testAccount, Currency: "USD", PayloadUUID: "u2"})
	assert.NoError(t, err)

	tm, err = m.GetTrustlineMarker(ctx, testAccount, "USD")
	assert.NoError(t, err)
	assert.Equal(t, "u2", tm.PayloadUUID)

	tm, err = m.GetTrustlineMarker(ctx, testAccount, "EUR")
	assert.NoError(t, err)
	assert.Nil(t, tm)
}

func TestConcurrentWriters(t *testing.T) {
	m := newTestMemory(t, 0)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.InsertSubmission(ctx, &rptypes.SubmissionRecord{TxHash: fmt.Sprintf("H%d", i)})
			_ = m.UpsertPayload(ctx, &rptypes.PayloadRecord{UUID: fmt.Sprintf("u%d", i%5)})
			_, _ = m.GetSubmissions(ctx, nil)
		}(i)
	}
	wg.Wait()
	all, _ := m.GetSubmissions(ctx, nil)
	assert.Len(t, all, 20)
}

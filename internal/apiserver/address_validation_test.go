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

package apiserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riplx/riplx/internal/accounts"
	"github.com/riplx/riplx/internal/credentials"
	"github.com/riplx/riplx/internal/payloads"
	"github.com/riplx/riplx/internal/rwa"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/mocks/databasemocks"
	"github.com/riplx/riplx/mocks/ledgermocks"
	"github.com/riplx/riplx/mocks/metricsmocks"
	"github.com/riplx/riplx/mocks/signingmocks"
	"github.com/stretchr/testify/assert"
)

// A malformed address must be rejected before any ledger, signing or database traffic.
func TestMalformedAddressRejected(t *testing.T) {
	o, r := newTestAPIServer()
	ctx := context.Background()
	mli := &ledgermocks.Plugin{}
	msi := &signingmocks.Plugin{}
	mdi := &databasemocks.Plugin{}
	mmm := &metricsmocks.Manager{}

	tp, err := txprep.NewTransactionPreparer(ctx)
	assert.NoError(t, err)
	sm, err := submission.NewSubmissionManager(ctx, mli, mdi, mmm)
	assert.NoError(t, err)
	cm, err := credentials.NewCredentialManager(ctx, mli, mdi, sm, mmm)
	assert.NoError(t, err)
	am, err := accounts.NewAccountManager(ctx, mli, mdi, tp)
	assert.NoError(t, err)
	pm, err := payloads.NewPayloadManager(ctx, msi, mdi, tp, mmm)
	assert.NoError(t, err)
	rm, err := rwa.NewRWAManager(ctx, tp, cm, sm, pm)
	assert.NoError(t, err)
	o.On("Accounts").Return(am)
	o.On("Credentials").Return(cm)
	o.On("Payloads").Return(pm)
	o.On("RWA").Return(rm)

	const bad = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi"
	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/balance/" + bad, ""},
		{http.MethodGet, "/api/history/" + bad, ""},
		{http.MethodPost, "/api/transactions/validate-recipient", `{"destination":"` + bad + `","currency":"USD"}`},
		{http.MethodGet, "/api/credentials/verify?address=" + bad, ""},
		{http.MethodGet, "/api/credentials/status?address=" + bad, ""},
		{http.MethodGet, "/api/credentials/records/" + bad, ""},
		{http.MethodPost, "/api/rwa/mint", `{"address":"` + bad + `","tier":"accredited","amount":"10"}`},
		{http.MethodPost, "/api/transactions/xumm/prepare", `{"destination":"` + bad + `","amount":"10"}`},
	}
	for _, tc := range requests {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		res := httptest.NewRecorder()
		r.ServeHTTP(res, req)
		assert.Equal(t, 400, res.Result().StatusCode, tc.path)
		assert.Regexp(t, "RPX10130", decodeError(t, res), tc.path)
	}

	assert.Empty(t, mli.Calls)
	assert.Empty(t, msi.Calls)
	assert.Empty(t, mdi.Calls)
	assert.Empty(t, mmm.Calls)
}

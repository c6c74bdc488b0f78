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
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/riplx/riplx/internal/accounts"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/mocks/accountsmocks"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"

func TestGetBalance(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/balance/"+testAddress, nil)
	res := httptest.NewRecorder()

	mam.On("Balance", mock.Anything, testAddress).
		Return(&accounts.Balance{Address: testAddress, XRPBalance: "10.5", RLUSDBalance: "0"}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var balance accounts.Balance
	json.NewDecoder(res.Body).Decode(&balance)
	assert.Equal(t, "10.5", balance.XRPBalance)
}

func TestGetHistory(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/history/"+testAddress+"?limit=5", nil)
	res := httptest.NewRecorder()

	mam.On("History", mock.Anything, testAddress, 5).
		Return(&accounts.History{Address: testAddress, Transactions: []*accounts.HistoryItem{}}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestGetHistoryDefaultLimit(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/history/"+testAddress, nil)
	res := httptest.NewRecorder()

	mam.On("History", mock.Anything, testAddress, 0).
		Return(&accounts.History{Address: testAddress}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestGetHistoryBadLimit(t *testing.T) {
	_, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/api/history/"+testAddress+"?limit=lots", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, 400, res.Result().StatusCode)
	assert.Regexp(t, "RPX10144", decodeError(t, res))
}

func TestGetFees(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/fees", nil)
	res := httptest.NewRecorder()

	mam.On("Fees", mock.Anything).
		Return(&accounts.FeeEstimate{FeeInfo: ledger.FeeInfo{BaseFee: "10"}, BaseFeeXRP: "0.00001"}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var fees map[string]interface{}
	json.NewDecoder(res.Body).Decode(&fees)
	assert.Equal(t, "0.00001", fees["base_fee_xrp"])
}

func TestGetTransaction(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/transactions/ABCD", nil)
	res := httptest.NewRecorder()

	mam.On("Transaction", mock.Anything, "ABCD").
		Return(rptypes.JSONObject{"hash": "ABCD", "validated": true}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestGetTransactionNotFound(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/transactions/ABCD", nil)
	res := httptest.NewRecorder()

	mam.On("Transaction", mock.Anything, "ABCD").
		Return(nil, i18n.NewError(context.Background(), i18n.MsgTransactionNotFound, "ABCD"))
	r.ServeHTTP(res, req)

	assert.Equal(t, 404, res.Result().StatusCode)
}

func TestGetSubmissions(t *testing.T) {
	o, r := newTestAPIServer()
	mam := &accountsmocks.Manager{}
	o.On("Accounts").Return(mam)
	req := httptest.NewRequest("GET", "/api/submissions?account="+testAddress+"&limit=10", nil)
	res := httptest.NewRecorder()

	mam.On("Submissions", mock.Anything, testAddress, 10).
		Return([]*rptypes.SubmissionRecord{}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	assert.JSONEq(t, "[]", res.Body.String())
}

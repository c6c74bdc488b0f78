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

	"github.com/riplx/riplx/internal/credentials"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/mocks/credentialsmocks"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCredentialVerify(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("GET", "/api/credentials/verify?address="+testAddress, nil)
	res := httptest.NewRecorder()

	mcm.On("Verify", mock.Anything, testAddress).
		Return(&credentials.Verification{Allowed: true, Accepted: true, Level: 1, Reason: "Credential accepted"}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var out credentials.Verification
	json.NewDecoder(res.Body).Decode(&out)
	assert.True(t, out.Allowed)
	assert.Equal(t, 1, out.Level)
}

func TestGetCredentialVerifyMissingAddress(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("GET", "/api/credentials/verify", nil)
	res := httptest.NewRecorder()

	mcm.On("Verify", mock.Anything, "").
		Return(nil, i18n.NewError(context.Background(), i18n.MsgMissingAddress))
	r.ServeHTTP(res, req)

	assert.Equal(t, 400, res.Result().StatusCode)
	assert.Regexp(t, "RPX10135", decodeError(t, res))
}

func TestGetCredentialStatus(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("GET", "/api/credentials/status?address="+testAddress, nil)
	res := httptest.NewRecorder()

	mcm.On("Status", mock.Anything, testAddress).
		Return(&credentials.Status{Subject: testAddress, Accepted: false, Message: "Credential not found"}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var out map[string]interface{}
	json.NewDecoder(res.Body).Decode(&out)
	assert.Equal(t, "Credential not found", out["message"])
	assert.Nil(t, out["raw_flags"])
}

func TestGetCredentialRecord(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("GET", "/api/credentials/records/"+testAddress, nil)
	res := httptest.NewRecorder()

	mcm.On("GetRecord", mock.Anything, testAddress).
		Return(&rptypes.CredentialRecord{Subject: testAddress, TxHash: "ABCD", Submitted: true}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
}

func TestGetCredentialRecordNotFound(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("GET", "/api/credentials/records/"+testAddress, nil)
	res := httptest.NewRecorder()

	mcm.On("GetRecord", mock.Anything, testAddress).Return(nil, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 404, res.Result().StatusCode)
	assert.Regexp(t, "RPX10108", decodeError(t, res))
}

func TestPostCredentialCreate(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("POST", "/api/credentials/create", jsonBody(map[string]string{
		"subject": testAddress,
		"uri":     "https://example.com/kyc/1",
	}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Credential-Token", "s3cret")
	res := httptest.NewRecorder()

	mcm.On("Create", mock.Anything, "s3cret", testAddress, "https://example.com/kyc/1").
		Return(&submission.Result{Submitted: true, TxID: "ABCD", EngineResult: "tesSUCCESS", Message: "Credential submitted"}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	mcm.AssertExpectations(t)
}

func TestPostCredentialCreateBadToken(t *testing.T) {
	o, r := newTestAPIServer()
	mcm := &credentialsmocks.Manager{}
	o.On("Credentials").Return(mcm)
	req := httptest.NewRequest("POST", "/api/credentials/create", jsonBody(map[string]string{
		"subject": testAddress,
	}))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	mcm.On("Create", mock.Anything, "", testAddress, "").
		Return(nil, i18n.NewError(context.Background(), i18n.MsgInvalidCredentialToken))
	r.ServeHTTP(res, req)

	assert.Equal(t, 401, res.Result().StatusCode)
	assert.Regexp(t, "RPX10160", decodeError(t, res))
}

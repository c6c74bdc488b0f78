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
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/riplx/riplx/internal/orchestrator"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetHealth(t *testing.T) {
	_, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/health", nil)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}

func TestGetStatus(t *testing.T) {
	o, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/", nil)
	res := httptest.NewRecorder()

	o.On("GetStatus", mock.Anything).Return(&orchestrator.Status{
		Service:        "riplx-backend",
		Network:        "testnet",
		Database:       "memory",
		SigningEnabled: false,
		Ledger:         &ledger.ServerInfo{},
	})
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var out map[string]interface{}
	json.NewDecoder(res.Body).Decode(&out)
	assert.Equal(t, "riplx-backend", out["service"])
	assert.Equal(t, false, out["signing_enabled"])
}

func TestGetNetworkConfig(t *testing.T) {
	o, r := newTestAPIServer()
	req := httptest.NewRequest("GET", "/config/xrpl", nil)
	res := httptest.NewRecorder()

	o.On("GetNetworkConfig", mock.Anything).Return(&orchestrator.NetworkConfig{
		Network:  "testnet",
		RPCURL:   "https://s.altnet.rippletest.net:51234",
		Explorer: "https://testnet.xrpl.org/",
	})
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	assert.JSONEq(t, `{"network":"testnet","rpc_url":"https://s.altnet.rippletest.net:51234","explorer":"https://testnet.xrpl.org/"}`, res.Body.String())
}

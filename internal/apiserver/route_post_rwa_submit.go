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
	"net/http"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/pkg/xrpl"
)

const issuerTokenHeader = "X-Issuer-Token"

type rwaSubmitInput struct {
	TxJSON json.RawMessage `json:"tx_json"`
}

var postRwaSubmit = &oapispec.Route{
	Name:   "postRwaSubmit",
	Path:   "api/rwa/submit",
	Tag:    tagRWA,
	Method: http.MethodPost,
	HeaderParams: []*oapispec.HeaderParam{
		{Name: issuerTokenHeader, Description: i18n.APIParamsIssuerToken},
	},
	Description:     i18n.APIEndpointsRwaSubmit,
	JSONInputValue:  func() interface{} { return &rwaSubmitInput{} },
	JSONOutputValue: func() interface{} { return &submission.Result{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		input := r.Input.(*rwaSubmitInput)
		var tx xrpl.Transaction
		if len(input.TxJSON) > 0 && string(input.TxJSON) != "null" {
			if tx, err = xrpl.ParseTransaction(r.Ctx, input.TxJSON); err != nil {
				return nil, err
			}
		}
		return r.Or.RWA().Submit(r.Ctx, r.Req.Header.Get(issuerTokenHeader), tx)
	},
}

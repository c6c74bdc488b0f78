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
	"net/http"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
	"github.com/riplx/riplx/pkg/rptypes"
)

var getTransaction = &oapispec.Route{
	Name:   "getTransaction",
	Path:   "api/transactions/{hash}",
	Tag:    tagTransactions,
	Method: http.MethodGet,
	PathParams: []*oapispec.PathParam{
		{Name: "hash", Description: i18n.APIParamsTxHash},
	},
	Description:     i18n.APIEndpointsGetTx,
	JSONOutputValue: func() interface{} { return rptypes.JSONObject{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Or.Accounts().Transaction(r.Ctx, r.PP["hash"])
	},
}

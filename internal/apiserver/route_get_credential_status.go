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

	"github.com/riplx/riplx/internal/credentials"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
)

var getCredentialStatus = &oapispec.Route{
	Name:   "getCredentialStatus",
	Path:   "api/credentials/status",
	Tag:    tagCredentials,
	Method: http.MethodGet,
	QueryParams: []*oapispec.QueryParam{
		{Name: "address", Description: i18n.APIParamsAddress},
	},
	Description:     i18n.APIEndpointsCredStatus,
	JSONOutputValue: func() interface{} { return &credentials.Status{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Or.Credentials().Status(r.Ctx, r.QP["address"])
	},
}

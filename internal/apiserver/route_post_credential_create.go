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
	"github.com/riplx/riplx/internal/submission"
)

const credentialTokenHeader = "X-Credential-Token"

type credentialCreateInput struct {
	Subject string `json:"subject"`
	URI     string `json:"uri,omitempty"`
}

var postCredentialCreate = &oapispec.Route{
	Name:   "postCredentialCreate",
	Path:   "api/credentials/create",
	Tag:    tagCredentials,
	Method: http.MethodPost,
	HeaderParams: []*oapispec.HeaderParam{
		{Name: credentialTokenHeader, Description: i18n.APIParamsCredentialToken},
	},
	Description:     i18n.APIEndpointsCredCreate,
	JSONInputValue:  func() interface{} { return &credentialCreateInput{} },
	JSONOutputValue: func() interface{} { return &submission.Result{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		input := r.Input.(*credentialCreateInput)
		return r.Or.Credentials().Create(r.Ctx, r.Req.Header.Get(credentialTokenHeader), input.Subject, input.URI)
	},
}

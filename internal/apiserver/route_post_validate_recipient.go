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

	"github.com/riplx/riplx/internal/accounts"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
)

type validateRecipientInput struct {
	Destination string `json:"destination"`
	Currency    string `json:"currency,omitempty"`
}

var postValidateRecipient = &oapispec.Route{
	Name:            "postValidateRecipient",
	Path:            "api/transactions/validate-recipient",
	Tag:             tagTransactions,
	Method:          http.MethodPost,
	Description:     i18n.APIEndpointsValidateRecip,
	JSONInputValue:  func() interface{} { return &validateRecipientInput{} },
	JSONOutputValue: func() interface{} { return &accounts.RecipientCheck{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		input := r.Input.(*validateRecipientInput)
		return r.Or.Accounts().ValidateRecipient(r.Ctx, input.Destination, input.Currency)
	},
}

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
	"github.com/riplx/riplx/internal/rwa"
)

type rwaMintInput struct {
	Address string `json:"address"`
	Tier    string `json:"tier"`
	Amount  string `json:"amount"`
}

var postRwaMint = &oapispec.Route{
	Name:            "postRwaMint",
	Path:            "api/rwa/mint",
	Tag:             tagRWA,
	Method:          http.MethodPost,
	Description:     i18n.APIEndpointsRwaMint,
	JSONInputValue:  func() interface{} { return &rwaMintInput{} },
	JSONOutputValue: func() interface{} { return &rwa.MintResult{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		input := r.Input.(*rwaMintInput)
		return r.Or.RWA().Mint(r.Ctx, input.Address, input.Tier, input.Amount)
	},
}

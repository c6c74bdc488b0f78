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

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
	"github.com/riplx/riplx/pkg/rptypes"
)

var getSubmissions = &oapispec.Route{
	Name:   "getSubmissions",
	Path:   "api/submissions",
	Tag:    tagTransactions,
	Method: http.MethodGet,
	QueryParams: []*oapispec.QueryParam{
		{Name: "account", Description: i18n.APIParamsSubmissionAcct},
		{Name: "limit", Description: i18n.APIParamsSubmissionLimit, DescriptionArgs: func() []interface{} {
			return []interface{}{config.GetInt(config.APIMaxHistoryLimit)}
		}},
	},
	Description:     i18n.APIEndpointsSubmissions,
	JSONOutputValue: func() interface{} { return []*rptypes.SubmissionRecord{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		limit, err := parseLimit(r, r.QP["limit"])
		if err != nil {
			return nil, err
		}
		return r.Or.Accounts().Submissions(r.Ctx, r.QP["account"], limit)
	},
}

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
	"strconv"

	"github.com/riplx/riplx/internal/accounts"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
)

var getHistory = &oapispec.Route{
	Name:   "getHistory",
	Path:   "api/history/{address}",
	Tag:    tagAccounts,
	Method: http.MethodGet,
	PathParams: []*oapispec.PathParam{
		{Name: "address", ExampleFromConf: config.RLUSDIssuer, Description: i18n.APIParamsAddress},
	},
	QueryParams: []*oapispec.QueryParam{
		{Name: "limit", Description: i18n.APIParamsHistoryLimit, DescriptionArgs: historyLimits},
	},
	Description:     i18n.APIEndpointsGetHistory,
	JSONOutputValue: func() interface{} { return &accounts.History{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		limit, err := parseLimit(r, r.QP["limit"])
		if err != nil {
			return nil, err
		}
		return r.Or.Accounts().History(r.Ctx, r.PP["address"], limit)
	},
}

func historyLimits() []interface{} {
	return []interface{}{config.GetInt(config.APIDefaultHistoryLimit), config.GetInt(config.APIMaxHistoryLimit)}
}

// parseLimit leaves range clamping to the managers, and only rejects values that are not integers
func parseLimit(r *oapispec.APIRequest, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(s)
	if err != nil {
		return 0, i18n.NewError(r.Ctx, i18n.MsgInvalidLimit, s)
	}
	return limit, nil
}

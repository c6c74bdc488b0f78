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
	"github.com/riplx/riplx/internal/orchestrator"
)

type healthStatus struct {
	Status string `json:"status"`
}

var getHealth = &oapispec.Route{
	Name:            "getHealth",
	Path:            "health",
	Tag:             tagService,
	Method:          http.MethodGet,
	Description:     i18n.APIEndpointsHealth,
	JSONOutputValue: func() interface{} { return &healthStatus{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return &healthStatus{Status: "ok"}, nil
	},
}

var getStatus = &oapispec.Route{
	Name:            "getStatus",
	Path:            "",
	Tag:             tagService,
	Method:          http.MethodGet,
	Description:     i18n.APIEndpointsStatus,
	JSONOutputValue: func() interface{} { return &orchestrator.Status{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Or.GetStatus(r.Ctx), nil
	},
}

var getNetworkConfig = &oapispec.Route{
	Name:            "getNetworkConfig",
	Path:            "config/xrpl",
	Tag:             tagService,
	Method:          http.MethodGet,
	Description:     i18n.APIEndpointsNetworkConfig,
	JSONOutputValue: func() interface{} { return &orchestrator.NetworkConfig{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Or.GetNetworkConfig(r.Ctx), nil
	},
}

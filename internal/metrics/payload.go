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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var PayloadCreatedCounter *prometheus.CounterVec
var PayloadSignedCounter *prometheus.CounterVec

// PayloadCreatedCounterName is the prometheus metric for tracking the total number of signing payloads created
var PayloadCreatedCounterName = "riplx_payload_created_total"

// PayloadSignedCounterName is the prometheus metric for tracking the total number of signing payloads first observed as signed
var PayloadSignedCounterName = "riplx_payload_signed_total"

func InitPayloadMetrics() {
	PayloadCreatedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: PayloadCreatedCounterName,
		Help: "Number of signing payloads created",
	}, []string{kindLabelName})
	PayloadSignedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: PayloadSignedCounterName,
		Help: "Number of signing payloads observed as signed",
	}, []string{kindLabelName})
}

func RegisterPayloadMetrics() {
	registry.MustRegister(PayloadCreatedCounter)
	registry.MustRegister(PayloadSignedCounter)
}

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

var GateDecisionCounter *prometheus.CounterVec

// GateDecisionCounterName is the prometheus metric for tracking credential gate decisions, by the rule that decided
var GateDecisionCounterName = "riplx_gate_decision_total"

var ruleLabelName = "rule"
var allowedLabelName = "allowed"

func InitGateMetrics() {
	GateDecisionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: GateDecisionCounterName,
		Help: "Number of credential gate decisions",
	}, []string{ruleLabelName, allowedLabelName})
}

func RegisterGateMetrics() {
	registry.MustRegister(GateDecisionCounter)
}

// Copyright © 2021 Kaleido, Inc.
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
	"context"
	"strconv"
	"time"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/pkg/rptypes"
)

type SubmissionOutcome string

const (
	SubmissionOutcomeSubmitted SubmissionOutcome = "submitted"
	SubmissionOutcomeRejected  SubmissionOutcome = "rejected"
	SubmissionOutcomeFailed    SubmissionOutcome = "failed"
)

type Manager interface {
	SubmissionCompleted(kind rptypes.SubmissionKind, outcome SubmissionOutcome, elapsed time.Duration)
	PayloadCreated(kind rptypes.PayloadKind)
	PayloadSigned(kind rptypes.PayloadKind)
	GateDecision(rule string, allowed bool)
	IsMetricsEnabled() bool
	Start() error
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Manager {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(config.MetricsEnabled),
	}
	if mm.metricsEnabled {
		Registry()
	}
	return mm
}

func (mm *metricsManager) Start() error {
	return nil
}

func (mm *metricsManager) SubmissionCompleted(kind rptypes.SubmissionKind, outcome SubmissionOutcome, elapsed time.Duration) {
	if !mm.metricsEnabled {
		return
	}
	switch outcome {
	case SubmissionOutcomeSubmitted:
		SubmissionSubmittedCounter.WithLabelValues(string(kind)).Inc()
	case SubmissionOutcomeRejected:
		SubmissionRejectedCounter.WithLabelValues(string(kind)).Inc()
	default:
		SubmissionFailedCounter.WithLabelValues(string(kind)).Inc()
	}
	SubmissionHistogram.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

func (mm *metricsManager) PayloadCreated(kind rptypes.PayloadKind) {
	if mm.metricsEnabled {
		PayloadCreatedCounter.WithLabelValues(string(kind)).Inc()
	}
}

func (mm *metricsManager) PayloadSigned(kind rptypes.PayloadKind) {
	if mm.metricsEnabled {
		PayloadSignedCounter.WithLabelValues(string(kind)).Inc()
	}
}

func (mm *metricsManager) GateDecision(rule string, allowed bool) {
	if mm.metricsEnabled {
		GateDecisionCounter.WithLabelValues(rule, strconv.FormatBool(allowed)).Inc()
	}
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

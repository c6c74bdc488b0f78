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

var SubmissionSubmittedCounter *prometheus.CounterVec
var SubmissionRejectedCounter *prometheus.CounterVec
var SubmissionFailedCounter *prometheus.CounterVec
var SubmissionHistogram *prometheus.HistogramVec

// SubmissionSubmittedCounterName is the prometheus metric for tracking the total number of submissions the ledger accepted or queued
var SubmissionSubmittedCounterName = "riplx_submission_submitted_total"

// SubmissionRejectedCounterName is the prometheus metric for tracking the total number of submissions with any other engine result
var SubmissionRejectedCounterName = "riplx_submission_rejected_total"

// SubmissionFailedCounterName is the prometheus metric for tracking the total number of submissions that never got an engine result
var SubmissionFailedCounterName = "riplx_submission_failed_total"

// SubmissionHistogramName is the prometheus metric for tracking submission round trip time to the ledger
var SubmissionHistogramName = "riplx_submission_seconds"

var kindLabelName = "kind"

func InitSubmissionMetrics() {
	SubmissionSubmittedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: SubmissionSubmittedCounterName,
		Help: "Number of submissions accepted or queued by the ledger",
	}, []string{kindLabelName})
	SubmissionRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: SubmissionRejectedCounterName,
		Help: "Number of submissions rejected by the ledger",
	}, []string{kindLabelName})
	SubmissionFailedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: SubmissionFailedCounterName,
		Help: "Number of submissions that failed before an engine result was returned",
	}, []string{kindLabelName})
	SubmissionHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: SubmissionHistogramName,
		Help: "Histogram of submissions, bucketed by time to engine result",
	}, []string{kindLabelName})
}

func RegisterSubmissionMetrics() {
	registry.MustRegister(SubmissionSubmittedCounter)
	registry.MustRegister(SubmissionRejectedCounter)
	registry.MustRegister(SubmissionFailedCounter)
	registry.MustRegister(SubmissionHistogram)
}

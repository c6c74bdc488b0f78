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

package database

import (
	"context"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/pkg/rptypes"
)

// Plugin is the interface implemented by each local record store
type Plugin interface {
	PersistenceInterface

	Name() string

	// InitConfigPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitConfigPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error
}

// PersistenceInterface holds the local records kept alongside the ledger.
// These records are informational. The ledger remains the system of record, and
// callers must not fail a ledger operation that has already happened because a
// local write failed.
//
// All operations are safe for concurrent use.
type PersistenceInterface interface {

	// RunAsGroup runs fn with every write it makes committed together, or not at all
	RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error

	// InsertSubmission records the outcome of a submission
	InsertSubmission(ctx context.Context, submission *rptypes.SubmissionRecord) error

	// GetSubmissions returns the most recent submissions first, optionally filtered by account
	GetSubmissions(ctx context.Context, filter *SubmissionFilter) ([]*rptypes.SubmissionRecord, error)

	// UpsertCredential stores the latest credential issued to a subject
	UpsertCredential(ctx context.Context, credential *rptypes.CredentialRecord) error

	// GetCredential returns the credential record for a subject, or nil
	GetCredential(ctx context.Context, subject string) (*rptypes.CredentialRecord, error)

	// UpsertPayload stores a signing payload by UUID
	UpsertPayload(ctx context.Context, payload *rptypes.PayloadRecord) error

	// GetPayload returns a payload record by UUID, or nil
	GetPayload(ctx context.Context, uuid string) (*rptypes.PayloadRecord, error)

	// UpsertTrustlineMarker stores a marker keyed by account and currency
	UpsertTrustlineMarker(ctx context.Context, marker *rptypes.TrustlineMarker) error

	// GetTrustlineMarker returns the marker for an account and currency, or nil
	GetTrustlineMarker(ctx context.Context, account, currency string) (*rptypes.TrustlineMarker, error)
}

// SubmissionFilter selects submission records
type SubmissionFilter struct {
	Account string
	Kind    rptypes.SubmissionKind
	Limit   uint64
}

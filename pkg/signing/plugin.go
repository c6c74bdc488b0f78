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

package signing

import (
	"context"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/pkg/xrpl"
)

// Plugin is the interface implemented by an external wallet signing service.
//
// The service owns the signing handshake with the user's wallet. This server only
// creates payloads, and polls their status using the returned UUID as a correlation handle.
type Plugin interface {
	Name() string

	// InitConfigPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitConfigPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// CreatePayload asks the service to present a transaction to a wallet for signing,
	// optionally submitting it to the ledger once signed
	CreatePayload(ctx context.Context, tx xrpl.Transaction, submit bool) (*Payload, error)

	// PayloadStatus returns the current state of a payload
	PayloadStatus(ctx context.Context, uuid string) (*PayloadStatus, error)
}

type Payload struct {
	UUID      string `json:"uuid"`
	NextURL   string `json:"next_url"`
	QRURL     string `json:"qr_url,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Pushed    *bool  `json:"pushed,omitempty"`
}

type PayloadStatus struct {
	UUID      string `json:"uuid"`
	Signed    bool   `json:"signed"`
	Resolved  bool   `json:"resolved"`
	Account   string `json:"account,omitempty"`
	TxID      string `json:"txid,omitempty"`
	Hex       string `json:"hex,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

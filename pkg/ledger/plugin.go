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

package ledger

import (
	"context"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/xrpl"
)

// Plugin is the interface implemented by each ledger gateway plugin.
//
// Every query returns nil with no error when the ledger reports the object does not
// exist, so callers can distinguish a negative answer from a failure to get an answer.
type Plugin interface {
	Name() string

	// InitConfigPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitConfigPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Start is called once the server is ready to receive requests, and optionally waits for the ledger to be reachable
	Start() error

	// AccountInfo returns the root state of an account
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)

	// AccountLines returns the trust lines of an account, optionally filtered to a single peer (issuer)
	AccountLines(ctx context.Context, address, peer string) ([]*TrustLine, error)

	// AccountTransactions returns the most recent transactions affecting an account
	AccountTransactions(ctx context.Context, address string, limit int, forward bool) ([]*TransactionRecord, error)

	// LedgerEntry looks up a single ledger object using the supplied selection criteria
	LedgerEntry(ctx context.Context, criteria rptypes.JSONObject) (rptypes.JSONObject, error)

	// Transaction looks up a transaction by hash
	Transaction(ctx context.Context, hash string) (rptypes.JSONObject, error)

	// Fee returns the current transaction cost
	Fee(ctx context.Context) (*FeeInfo, error)

	// ServerInfo returns the status of the ledger server
	ServerInfo(ctx context.Context) (*ServerInfo, error)

	// SubmitBlob submits a transaction already signed by the client
	SubmitBlob(ctx context.Context, txBlob string) (*SubmitResult, error)

	// SubmitSigned asks the ledger server to sign the transaction with the supplied secret, and submit it
	SubmitSigned(ctx context.Context, tx xrpl.Transaction, secret string) (*SubmitResult, error)
}

type AccountInfo struct {
	Account      string             `json:"account"`
	BalanceDrops string             `json:"balance"`
	Sequence     int64              `json:"sequence"`
	OwnerCount   int64              `json:"owner_count"`
	Flags        int64              `json:"flags"`
	LedgerIndex  int64              `json:"ledger_index,omitempty"`
	Validated    bool               `json:"validated"`
	Raw          rptypes.JSONObject `json:"-"`
}

type TrustLine struct {
	Peer      string `json:"account"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Limit     string `json:"limit"`
	LimitPeer string `json:"limit_peer"`
	NoRipple  bool   `json:"no_ripple"`
}

type TransactionRecord struct {
	Hash        string             `json:"hash,omitempty"`
	LedgerIndex int64              `json:"ledger_index,omitempty"`
	Validated   bool               `json:"validated"`
	Tx          rptypes.JSONObject `json:"tx"`
	Meta        rptypes.JSONObject `json:"meta,omitempty"`
}

type FeeInfo struct {
	BaseFee            string `json:"base_fee"`
	MedianFee          string `json:"median_fee"`
	MinimumFee         string `json:"minimum_fee"`
	OpenLedgerFee      string `json:"open_ledger_fee"`
	CurrentQueueSize   int64  `json:"current_queue_size"`
	LedgerCurrentIndex int64  `json:"ledger_current_index"`
}

type ServerInfo struct {
	BuildVersion    string `json:"build_version"`
	CompleteLedgers string `json:"complete_ledgers"`
	ServerState     string `json:"server_state"`
	NetworkID       int64  `json:"network_id,omitempty"`
}

// SubmitResult is the preliminary outcome of a submission, before consensus
type SubmitResult struct {
	EngineResult        string             `json:"engine_result"`
	EngineResultCode    int64              `json:"engine_result_code"`
	EngineResultMessage string             `json:"engine_result_message,omitempty"`
	TxHash              string             `json:"tx_hash,omitempty"`
	TxJSON              rptypes.JSONObject `json:"tx_json,omitempty"`
}

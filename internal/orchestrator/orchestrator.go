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

package orchestrator

import (
	"context"

	"github.com/riplx/riplx/internal/accounts"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/credentials"
	"github.com/riplx/riplx/internal/database/difactory"
	"github.com/riplx/riplx/internal/ledger/rippled"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/metrics"
	"github.com/riplx/riplx/internal/payloads"
	"github.com/riplx/riplx/internal/restclient"
	"github.com/riplx/riplx/internal/rwa"
	"github.com/riplx/riplx/internal/signing/xumm"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/signing"
)

const serviceName = "riplx-backend"

var (
	ledgerConfig   = config.NewPluginConfig("ledger")
	signingConfig  = config.NewPluginConfig("xumm")
	databaseConfig = config.NewPluginConfig("database")
)

// Orchestrator is the main interface behind the API, owning every plugin and manager
type Orchestrator interface {
	Init(ctx context.Context) error
	Start() error
	Close()

	Accounts() accounts.Manager
	Credentials() credentials.Manager
	Payloads() payloads.Manager
	RWA() rwa.Manager
	Submission() submission.Manager
	TxPrep() txprep.Manager
	Metrics() metrics.Manager

	// Status reports the service, and the reachability of the ledger
	GetStatus(ctx context.Context) *Status

	// GetNetworkConfig returns the ledger network the frontend should connect its wallet to
	GetNetworkConfig(ctx context.Context) *NetworkConfig
}

type Status struct {
	Service        string             `json:"service"`
	Network        string             `json:"network"`
	Database       string             `json:"database"`
	SigningEnabled bool               `json:"signing_enabled"`
	Ledger         *ledger.ServerInfo `json:"ledger,omitempty"`
	LedgerError    string             `json:"ledger_error,omitempty"`
}

type NetworkConfig struct {
	Network  string `json:"network"`
	RPCURL   string `json:"rpc_url"`
	Explorer string `json:"explorer,omitempty"`
}

type orchestrator struct {
	ctx         context.Context
	ledger      ledger.Plugin
	signing     signing.Plugin
	database    database.Plugin
	metrics     metrics.Manager
	txprep      txprep.Manager
	submission  submission.Manager
	credentials credentials.Manager
	accounts    accounts.Manager
	payloads    payloads.Manager
	rwa         rwa.Manager
}

func NewOrchestrator() Orchestrator {
	or := &orchestrator{}

	// Initialize the config on all the plugins
	(&rippled.Rippled{}).InitConfigPrefix(ledgerConfig)
	(&xumm.Xumm{}).InitConfigPrefix(signingConfig)
	difactory.InitPrefix(databaseConfig)

	return or
}

func (or *orchestrator) Init(ctx context.Context) (err error) {
	or.ctx = ctx
	err = or.initPlugins(ctx)
	if err == nil {
		err = or.initComponents(ctx)
	}
	return err
}

func (or *orchestrator) Start() error {
	err := or.ledger.Start()
	if err == nil {
		err = or.metrics.Start()
	}
	return err
}

func (or *orchestrator) Close() {
	if closer, ok := or.database.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (or *orchestrator) Accounts() accounts.Manager {
	return or.accounts
}

func (or *orchestrator) Credentials() credentials.Manager {
	return or.credentials
}

func (or *orchestrator) Payloads() payloads.Manager {
	return or.payloads
}

func (or *orchestrator) RWA() rwa.Manager {
	return or.rwa
}

func (or *orchestrator) Submission() submission.Manager {
	return or.submission
}

func (or *orchestrator) TxPrep() txprep.Manager {
	return or.txprep
}

func (or *orchestrator) Metrics() metrics.Manager {
	return or.metrics
}

func (or *orchestrator) initPlugins(ctx context.Context) (err error) {

	if or.database == nil {
		if or.database, err = or.initDatabasePlugin(ctx); err != nil {
			return err
		}
	}

	if or.ledger == nil {
		or.ledger = &rippled.Rippled{}
		if err = or.ledger.Init(ctx, ledgerConfig); err != nil {
			return err
		}
	}

	if or.signing == nil {
		or.signing = &xumm.Xumm{}
		if err = or.signing.Init(ctx, signingConfig); err != nil {
			return err
		}
	}

	return nil
}

func (or *orchestrator) initComponents(ctx context.Context) (err error) {

	if or.metrics == nil {
		or.metrics = metrics.NewMetricsManager(ctx)
	}

	if or.txprep == nil {
		if or.txprep, err = txprep.NewTransactionPreparer(ctx); err != nil {
			return err
		}
	}

	if or.submission == nil {
		if or.submission, err = submission.NewSubmissionManager(ctx, or.ledger, or.database, or.metrics); err != nil {
			return err
		}
	}

	if or.credentials == nil {
		if or.credentials, err = credentials.NewCredentialManager(ctx, or.ledger, or.database, or.submission, or.metrics); err != nil {
			return err
		}
	}

	if or.accounts == nil {
		if or.accounts, err = accounts.NewAccountManager(ctx, or.ledger, or.database, or.txprep); err != nil {
			return err
		}
	}

	if or.payloads == nil {
		if or.payloads, err = payloads.NewPayloadManager(ctx, or.signing, or.database, or.txprep, or.metrics); err != nil {
			return err
		}
	}

	if or.rwa == nil {
		if or.rwa, err = rwa.NewRWAManager(ctx, or.txprep, or.credentials, or.submission, or.payloads); err != nil {
			return err
		}
	}

	return nil
}

func (or *orchestrator) initDatabasePlugin(ctx context.Context) (database.Plugin, error) {
	pluginType := config.GetString(config.DatabaseType)
	plugin, err := difactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, databaseConfig.SubPrefix(pluginType))
	return plugin, err
}

func (or *orchestrator) GetStatus(ctx context.Context) *Status {
	status := &Status{
		Service:        serviceName,
		Network:        config.GetString(config.LedgerNetwork),
		Database:       or.database.Name(),
		SigningEnabled: signingConfig.GetString(xumm.XummConfigAPIKey) != "" && signingConfig.GetString(xumm.XummConfigAPISecret) != "",
	}
	info, err := or.ledger.ServerInfo(ctx)
	if err != nil {
		log.L(ctx).Warnf("Ledger status unavailable: %s", err)
		status.LedgerError = err.Error()
	} else {
		status.Ledger = info
	}
	return status
}

func (or *orchestrator) GetNetworkConfig(ctx context.Context) *NetworkConfig {
	return &NetworkConfig{
		Network:  config.GetString(config.LedgerNetwork),
		RPCURL:   ledgerConfig.GetString(restclient.HTTPConfigURL),
		Explorer: config.GetString(config.LedgerExplorer),
	}
}

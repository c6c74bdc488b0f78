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

package rippled

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/karlseguin/ccache"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/restclient"
	"github.com/riplx/riplx/internal/retry"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/xrpl"
)

// Error codes the ledger uses to report that the requested object does not exist
var notFoundErrors = map[string]bool{
	"entryNotFound":  true,
	"actNotFound":    true,
	"txnNotFound":    true,
	"objectNotFound": true,
}

type Rippled struct {
	ctx               context.Context
	client            *resty.Client
	slots             chan struct{}
	callTimeout       time.Duration
	txCache           *ccache.Cache
	cacheTTL          time.Duration
	waitForReady      bool
	startupRetry      *retry.Retry
	accountLinesPages int
}

type rpcRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcResponse struct {
	Result rptypes.JSONObject `json:"result"`
}

func (r *Rippled) Name() string {
	return "rippled"
}

func (r *Rippled) Init(ctx context.Context, prefix config.Prefix) error {
	r.ctx = log.WithLogField(ctx, "ledger", "rippled")
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "ledger")
	}
	r.client = restclient.New(r.ctx, prefix)

	maxConcurrent := prefix.GetInt(RippledConfigMaxConcurrentRequests)
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentRequests
	}
	r.slots = make(chan struct{}, maxConcurrent)
	r.callTimeout = prefix.GetDuration(restclient.HTTPConfigRequestTimeout)
	r.txCache = ccache.New(ccache.Configure().MaxSize(prefix.GetInt64(RippledConfigCacheSize)))
	r.cacheTTL = prefix.GetDuration(RippledConfigCacheTTL)
	r.waitForReady = prefix.GetBool(RippledConfigWaitForReady)
	r.startupRetry = &retry.Retry{
		InitialDelay: prefix.GetDuration(RippledConfigStartupInitialDelay),
		MaximumDelay: prefix.GetDuration(RippledConfigStartupMaxDelay),
		MaxAttempts:  prefix.GetInt(RippledConfigStartupMaxAttempts),
	}
	r.accountLinesPages = prefix.GetInt(RippledConfigAccountLinesMaxPages)
	return nil
}

func (r *Rippled) Start() error {
	if !r.waitForReady {
		return nil
	}
	return r.startupRetry.Do(r.ctx, "ledger server_info", func(attempt int) (bool, error) {
		info, err := r.ServerInfo(r.ctx)
		if err != nil {
			return true, err
		}
		log.L(r.ctx).Infof("Connected to rippled %s state=%s ledgers=%s", info.BuildVersion, info.ServerState, info.CompleteLedgers)
		return false, nil
	})
}

func (r *Rippled) acquireSlot(ctx context.Context) error {
	select {
	case r.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return i18n.NewError(ctx, i18n.MsgLedgerSlotWait)
	}
}

func (r *Rippled) releaseSlot() {
	<-r.slots
}

// call performs a JSON-RPC request, returning nil with no error if the ledger
// reports the requested object does not exist
func (r *Rippled) call(ctx context.Context, method string, params interface{}) (rptypes.JSONObject, error) {
	if r.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.callTimeout)
		defer cancel()
	}
	if err := r.acquireSlot(ctx); err != nil {
		return nil, err
	}
	defer r.releaseSlot()

	var rpcRes rpcResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetBody(&rpcRequest{Method: method, Params: []interface{}{params}}).
		SetResult(&rpcRes).
		Post("/")
	if err != nil {
		if restclient.IsTimeout(ctx, err) {
			return nil, i18n.WrapError(ctx, err, i18n.MsgLedgerTimeout, method)
		}
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerUnreachable)
	}
	if !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, nil, i18n.MsgLedgerUnreachable)
	}
	result := rpcRes.Result
	if result == nil {
		return nil, i18n.NewError(ctx, i18n.MsgLedgerBadResponse, method)
	}
	if result.GetString("status") == "error" {
		code := result.GetString("error")
		if notFoundErrors[code] {
			log.L(ctx).Debugf("%s: %s", method, code)
			return nil, nil
		}
		message := result.GetString("error_message")
		if message == "" {
			message = result.GetString("error_exception")
		}
		return nil, i18n.NewError(ctx, i18n.MsgLedgerRPCError, code, message)
	}
	return result, nil
}

func (r *Rippled) AccountInfo(ctx context.Context, address string) (*ledger.AccountInfo, error) {
	result, err := r.call(ctx, "account_info", map[string]interface{}{
		"account": address,
	})
	if err != nil || result == nil {
		return nil, err
	}
	accountData := result.GetObject("account_data")
	ledgerIndex, ok := result.GetInt64Ok("ledger_current_index")
	if !ok {
		ledgerIndex = result.GetInt64("ledger_index")
	}
	return &ledger.AccountInfo{
		Account:      accountData.GetString("Account"),
		BalanceDrops: accountData.GetString("Balance"),
		Sequence:     accountData.GetInt64("Sequence"),
		OwnerCount:   accountData.GetInt64("OwnerCount"),
		Flags:        accountData.GetInt64("Flags"),
		LedgerIndex:  ledgerIndex,
		Validated:    result.GetBool("validated"),
		Raw:          result,
	}, nil
}

func (r *Rippled) AccountLines(ctx context.Context, address, peer string) ([]*ledger.TrustLine, error) {
	lines := make([]*ledger.TrustLine, 0)
	var marker interface{}
	for page := 0; page < r.accountLinesPages || page == 0; page++ {
		params := map[string]interface{}{
			"account": address,
		}
		if peer != "" {
			params["peer"] = peer
		}
		if marker != nil {
			params["marker"] = marker
		}
		result, err := r.call(ctx, "account_lines", params)
		if err != nil || result == nil {
			return nil, err
		}
		for _, line := range result.GetObjectArray("lines") {
			lines = append(lines, &ledger.TrustLine{
				Peer:      line.GetString("account"),
				Currency:  line.GetString("currency"),
				Balance:   line.GetString("balance"),
				Limit:     line.GetString("limit"),
				LimitPeer: line.GetString("limit_peer"),
				NoRipple:  line.GetBool("no_ripple"),
			})
		}
		if marker = result["marker"]; marker == nil {
			break
		}
	}
	return lines, nil
}

func (r *Rippled) AccountTransactions(ctx context.Context, address string, limit int, forward bool) ([]*ledger.TransactionRecord, error) {
	result, err := r.call(ctx, "account_tx", map[string]interface{}{
		"account":          address,
		"limit":            limit,
		"binary":           false,
		"ledger_index_min": -1,
		"ledger_index_max": -1,
		"forward":          forward,
	})
	if err != nil || result == nil {
		return nil, err
	}
	entries := result.GetObjectArray("transactions")
	records := make([]*ledger.TransactionRecord, 0, len(entries))
	for _, entry := range entries {
		// API v2 moves the transaction under tx_json, and the hash up to the entry
		tx, ok := entry.GetObjectOk("tx")
		if !ok {
			tx = entry.GetObject("tx_json")
		}
		hash := tx.GetString("hash")
		if hash == "" {
			hash = entry.GetString("hash")
		}
		ledgerIndex, ok := tx.GetInt64Ok("ledger_index")
		if !ok {
			ledgerIndex = entry.GetInt64("ledger_index")
		}
		records = append(records, &ledger.TransactionRecord{
			Hash:        hash,
			LedgerIndex: ledgerIndex,
			Validated:   entry.GetBool("validated"),
			Tx:          tx,
			Meta:        entry.GetObject("meta"),
		})
	}
	return records, nil
}

func (r *Rippled) LedgerEntry(ctx context.Context, criteria rptypes.JSONObject) (rptypes.JSONObject, error) {
	params := rptypes.JSONObject{"ledger_index": "validated"}
	for k, v := range criteria {
		params[k] = v
	}
	result, err := r.call(ctx, "ledger_entry", params)
	if err != nil || result == nil {
		return nil, err
	}
	return result.GetObject("node"), nil
}

func (r *Rippled) Transaction(ctx context.Context, hash string) (rptypes.JSONObject, error) {
	if cached := r.txCache.Get(hash); cached != nil && !cached.Expired() {
		cached.Extend(r.cacheTTL)
		return cached.Value().(rptypes.JSONObject), nil
	}
	result, err := r.call(ctx, "tx", map[string]interface{}{
		"transaction": hash,
		"binary":      false,
	})
	if err != nil || result == nil {
		return nil, err
	}
	delete(result, "status")
	if result.GetBool("validated") {
		r.txCache.Set(hash, result, r.cacheTTL)
	}
	return result, nil
}

func (r *Rippled) Fee(ctx context.Context) (*ledger.FeeInfo, error) {
	result, err := r.call(ctx, "fee", map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, i18n.NewError(ctx, i18n.MsgLedgerBadResponse, "fee")
	}
	drops := result.GetObject("drops")
	return &ledger.FeeInfo{
		BaseFee:            drops.GetString("base_fee"),
		MedianFee:          drops.GetString("median_fee"),
		MinimumFee:         drops.GetString("minimum_fee"),
		OpenLedgerFee:      drops.GetString("open_ledger_fee"),
		CurrentQueueSize:   result.GetInt64("current_queue_size"),
		LedgerCurrentIndex: result.GetInt64("ledger_current_index"),
	}, nil
}

func (r *Rippled) ServerInfo(ctx context.Context) (*ledger.ServerInfo, error) {
	result, err := r.call(ctx, "server_info", map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, i18n.NewError(ctx, i18n.MsgLedgerBadResponse, "server_info")
	}
	info := result.GetObject("info")
	return &ledger.ServerInfo{
		BuildVersion:    info.GetString("build_version"),
		CompleteLedgers: info.GetString("complete_ledgers"),
		ServerState:     info.GetString("server_state"),
		NetworkID:       info.GetInt64("network_id"),
	}, nil
}

func (r *Rippled) SubmitBlob(ctx context.Context, txBlob string) (*ledger.SubmitResult, error) {
	return r.submit(ctx, map[string]interface{}{
		"tx_blob": txBlob,
	})
}

func (r *Rippled) SubmitSigned(ctx context.Context, tx xrpl.Transaction, secret string) (*ledger.SubmitResult, error) {
	return r.submit(ctx, map[string]interface{}{
		"tx_json": tx,
		"secret":  secret,
	})
}

func (r *Rippled) submit(ctx context.Context, params map[string]interface{}) (*ledger.SubmitResult, error) {
	result, err := r.call(ctx, "submit", params)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, i18n.NewError(ctx, i18n.MsgLedgerBadResponse, "submit")
	}
	txJSON := result.GetObject("tx_json")
	hash := txJSON.GetString("hash")
	if hash == "" {
		hash = result.GetString("tx_hash")
	}
	if hash == "" {
		hash = result.GetString("hash")
	}
	sr := &ledger.SubmitResult{
		EngineResult:        result.GetString("engine_result"),
		EngineResultCode:    result.GetInt64("engine_result_code"),
		EngineResultMessage: result.GetString("engine_result_message"),
		TxHash:              hash,
		TxJSON:              txJSON,
	}
	log.L(ctx).Infof("Submitted transaction %s: %s", sr.TxHash, sr.EngineResult)
	return sr, nil
}

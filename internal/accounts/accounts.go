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

package accounts

import (
	"context"
	"regexp"
	"strings"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/xrpl"
)

const (
	StatusValidated = "validated"
	StatusPending   = "pending"
)

type Balance struct {
	Address       string `json:"address"`
	XRPBalance    string `json:"xrp_balance"`
	RLUSDBalance  string `json:"rlusd_balance"`
	RLUSDCurrency string `json:"rlusd_currency"`
}

type HistoryItem struct {
	Hash            string `json:"hash,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Destination     string `json:"destination,omitempty"`
	Issuer          string `json:"issuer,omitempty"`
	Status          string `json:"status"`
	LedgerIndex     int64  `json:"ledger_index,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
}

type History struct {
	Address      string         `json:"address"`
	Transactions []*HistoryItem `json:"transactions"`
}

type RecipientCheck struct {
	HasTrustline bool   `json:"has_trustline"`
	Reason       string `json:"reason,omitempty"`
}

type FeeEstimate struct {
	ledger.FeeInfo
	BaseFeeXRP       string `json:"base_fee_xrp"`
	MinimumFeeXRP    string `json:"minimum_fee_xrp"`
	OpenLedgerFeeXRP string `json:"open_ledger_fee_xrp"`
}

type Manager interface {
	Balance(ctx context.Context, address string) (*Balance, error)
	History(ctx context.Context, address string, limit int) (*History, error)
	ValidateRecipient(ctx context.Context, destination, currency string) (*RecipientCheck, error)
	Transaction(ctx context.Context, hash string) (rptypes.JSONObject, error)
	Fees(ctx context.Context) (*FeeEstimate, error)
	Submissions(ctx context.Context, account string, limit int) ([]*rptypes.SubmissionRecord, error)
}

type accountManager struct {
	ledger        ledger.Plugin
	database      database.Plugin
	preparer      txprep.Manager
	rlusdIssuer   string
	rlusdCurrency string
	defaultLimit  int
	maxLimit      int
}

func NewAccountManager(ctx context.Context, li ledger.Plugin, di database.Plugin, tp txprep.Manager) (Manager, error) {
	if li == nil || di == nil || tp == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError, "AccountManager")
	}
	rlusdCurrency, err := xrpl.EncodeCurrency(ctx, config.GetString(config.RLUSDCurrency))
	if err != nil {
		return nil, err
	}
	return &accountManager{
		ledger:        li,
		database:      di,
		preparer:      tp,
		rlusdIssuer:   config.GetString(config.RLUSDIssuer),
		rlusdCurrency: rlusdCurrency,
		defaultLimit:  config.GetInt(config.APIDefaultHistoryLimit),
		maxLimit:      config.GetInt(config.APIMaxHistoryLimit),
	}, nil
}

func (am *accountManager) Balance(ctx context.Context, address string) (*Balance, error) {
	if !xrpl.IsValidAddress(address) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, address)
	}
	info, err := am.ledger.AccountInfo(ctx, address)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, i18n.NewError(ctx, i18n.MsgAccountNotFound, address)
	}
	balance := &Balance{
		Address:       address,
		XRPBalance:    info.BalanceDrops,
		RLUSDBalance:  "0",
		RLUSDCurrency: txprep.SymbolUSD,
	}
	if balance.XRPBalance == "" {
		balance.XRPBalance = "0"
	}

	lines, err := am.ledger.AccountLines(ctx, address, am.rlusdIssuer)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if strings.EqualFold(line.Currency, am.rlusdCurrency) {
			balance.RLUSDBalance = line.Balance
			break
		}
	}
	return balance, nil
}

func (am *accountManager) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return am.defaultLimit
	case limit > am.maxLimit:
		return am.maxLimit
	default:
		return limit
	}
}

func (am *accountManager) History(ctx context.Context, address string, limit int) (*History, error) {
	if !xrpl.IsValidAddress(address) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, address)
	}
	records, err := am.ledger.AccountTransactions(ctx, address, am.clampLimit(limit), false)
	if err != nil {
		return nil, err
	}
	history := &History{
		Address:      address,
		Transactions: make([]*HistoryItem, 0, len(records)),
	}
	for _, r := range records {
		if item := am.historyItem(ctx, r); item != nil {
			history.Transactions = append(history.Transactions, item)
		}
	}
	return history, nil
}

// historyItem flattens a payment for display. Other transaction types are skipped.
func (am *accountManager) historyItem(ctx context.Context, r *ledger.TransactionRecord) *HistoryItem {
	tx := r.Tx
	if tx.GetString("TransactionType") != string(xrpl.TransactionTypePayment) {
		return nil
	}
	item := &HistoryItem{
		Hash:            tx.GetString("hash"),
		TransactionType: tx.GetString("TransactionType"),
		Destination:     tx.GetString("Destination"),
		Currency:        xrpl.NativeCurrency,
		Status:          StatusPending,
		LedgerIndex:     tx.GetInt64("ledger_index"),
	}
	if item.Hash == "" {
		item.Hash = r.Hash
	}
	if item.LedgerIndex == 0 {
		item.LedgerIndex = r.LedgerIndex
	}
	if r.Validated {
		item.Status = StatusValidated
	}
	if date, ok := tx.GetInt64Ok("date"); ok {
		item.Timestamp = xrpl.DecodeEpoch(date)
	}

	if amount, ok := tx.GetObjectOk("Amount"); ok {
		item.Amount = amount.GetString("value")
		item.Currency = amount.GetString("currency")
		item.Issuer = amount.GetString("issuer")
		return item
	}
	drops := tx.GetString("Amount")
	xrp, err := xrpl.DropsToXRP(ctx, drops)
	if err != nil {
		log.L(ctx).Debugf("Unparseable drops amount '%s' in %s", drops, item.Hash)
		xrp = drops
	}
	item.Amount = xrp
	return item
}

func (am *accountManager) ValidateRecipient(ctx context.Context, destination, currency string) (*RecipientCheck, error) {
	if !xrpl.IsValidAddress(destination) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, destination)
	}
	if currency == "" {
		currency = txprep.SymbolUSD
	}
	if xrpl.IsNativeCurrency(currency) {
		return &RecipientCheck{HasTrustline: true}, nil
	}
	asset, err := am.preparer.ResolveAsset(ctx, currency)
	if err != nil {
		return nil, err
	}
	// USD payments settle in RLUSD, so either line satisfies the check
	accepted := map[string]bool{strings.ToUpper(asset.Currency): true}
	if asset.Symbol == txprep.SymbolUSD {
		accepted[am.rlusdCurrency] = true
	}

	lines, err := am.ledger.AccountLines(ctx, destination, asset.Issuer)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if accepted[strings.ToUpper(line.Currency)] {
			return &RecipientCheck{HasTrustline: true}, nil
		}
	}
	return &RecipientCheck{
		Reason: "Recipient is missing the " + asset.Symbol + " trustline to the issuer",
	}, nil
}

var txHashRegex = regexp.MustCompile(`^[0-9A-Fa-f]{64}$`)

func (am *accountManager) Transaction(ctx context.Context, hash string) (rptypes.JSONObject, error) {
	if !txHashRegex.MatchString(hash) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidTxHash, hash)
	}
	tx, err := am.ledger.Transaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, i18n.NewError(ctx, i18n.MsgTransactionNotFound, hash)
	}
	return tx, nil
}

func (am *accountManager) Fees(ctx context.Context) (*FeeEstimate, error) {
	fee, err := am.ledger.Fee(ctx)
	if err != nil {
		return nil, err
	}
	estimate := &FeeEstimate{FeeInfo: *fee}
	for _, f := range []struct {
		drops string
		xrp   *string
	}{
		{fee.BaseFee, &estimate.BaseFeeXRP},
		{fee.MinimumFee, &estimate.MinimumFeeXRP},
		{fee.OpenLedgerFee, &estimate.OpenLedgerFeeXRP},
	} {
		if f.drops == "" {
			continue
		}
		if *f.xrp, err = xrpl.DropsToXRP(ctx, f.drops); err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgLedgerBadResponse, "fee")
		}
	}
	return estimate, nil
}

func (am *accountManager) Submissions(ctx context.Context, account string, limit int) ([]*rptypes.SubmissionRecord, error) {
	if account != "" && !xrpl.IsValidAddress(account) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, account)
	}
	return am.database.GetSubmissions(ctx, &database.SubmissionFilter{
		Account: account,
		Limit:   uint64(am.clampLimit(limit)),
	})
}

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
	"fmt"
	"strings"
	"testing"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/mocks/databasemocks"
	"github.com/riplx/riplx/mocks/ledgermocks"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testIssuer  = "rQhWct2fv4Vc4KRjRgMrxa8xPN9Zx9iLKV"
	rlusdHex    = "524C555344000000000000000000000000000000"
)

func newTestAccounts(t *testing.T) (*accountManager, *ledgermocks.Plugin, *databasemocks.Plugin) {
	config.Reset()
	ctx := context.Background()
	tp, err := txprep.NewTransactionPreparer(ctx)
	assert.NoError(t, err)
	mli := &ledgermocks.Plugin{}
	mdi := &databasemocks.Plugin{}
	am, err := NewAccountManager(ctx, mli, mdi, tp)
	assert.NoError(t, err)
	return am.(*accountManager), mli, mdi
}

func TestNewAccountManagerMissingDeps(t *testing.T) {
	_, err := NewAccountManager(context.Background(), nil, nil, nil)
	assert.Regexp(t, "RPX10117", err)
}

func TestNewAccountManagerBadCurrency(t *testing.T) {
	config.Reset()
	tp, err := txprep.NewTransactionPreparer(context.Background())
	assert.NoError(t, err)
	config.Set(config.RLUSDCurrency, "")
	_, err = NewAccountManager(context.Background(), &ledgermocks.Plugin{}, &databasemocks.Plugin{}, tp)
	assert.Regexp(t, "RPX10133", err)
}

func TestBalance(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	mli.On("AccountInfo", mock.Anything, testAddress).Return(&ledger.AccountInfo{BalanceDrops: "25000000"}, nil)
	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return([]*ledger.TrustLine{
		{Peer: testIssuer, Currency: "USD", Balance: "3"},
		{Peer: testIssuer, Currency: rlusdHex, Balance: "12.5"},
	}, nil)

	b, err := am.Balance(context.Background(), testAddress)
	assert.NoError(t, err)
	assert.Equal(t, &Balance{
		Address:       testAddress,
		XRPBalance:    "25000000",
		RLUSDBalance:  "12.5",
		RLUSDCurrency: "USD",
	}, b)
}

func TestBalanceNoLines(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	mli.On("AccountInfo", mock.Anything, testAddress).Return(&ledger.AccountInfo{}, nil)
	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return([]*ledger.TrustLine{}, nil)

	b, err := am.Balance(context.Background(), testAddress)
	assert.NoError(t, err)
	assert.Equal(t, "0", b.XRPBalance)
	assert.Equal(t, "0", b.RLUSDBalance)
}

func TestBalanceErrors(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	_, err := am.Balance(context.Background(), "rBad")
	assert.Regexp(t, "RPX10130", err)
	mli.AssertNotCalled(t, "AccountInfo", mock.Anything, mock.Anything)

	mli.On("AccountInfo", mock.Anything, testAddress).Return(nil, nil).Once()
	_, err = am.Balance(context.Background(), testAddress)
	assert.Regexp(t, "RPX10126", err)

	mli.On("AccountInfo", mock.Anything, testAddress).Return(nil, fmt.Errorf("pop")).Once()
	_, err = am.Balance(context.Background(), testAddress)
	assert.Regexp(t, "pop", err)

	mli.On("AccountInfo", mock.Anything, testAddress).Return(&ledger.AccountInfo{BalanceDrops: "1"}, nil).Once()
	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return(nil, fmt.Errorf("lines")).Once()
	_, err = am.Balance(context.Background(), testAddress)
	assert.Regexp(t, "lines", err)
}

func TestHistory(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	mli.On("AccountTransactions", mock.Anything, testAddress, 20, false).Return([]*ledger.TransactionRecord{
		{
			Hash:        "H1",
			LedgerIndex: 100,
			Validated:   true,
			Tx: rptypes.JSONObject{
				"TransactionType": "Payment",
				"Amount":          "1500000",
				"Destination":     testIssuer,
				"date":            float64(0),
			},
		},
		{
			Tx: rptypes.JSONObject{
				"TransactionType": "TrustSet",
				"hash":            "H2",
			},
		},
		{
			Tx: rptypes.JSONObject{
				"TransactionType": "Payment",
				"hash":            "H3",
				"ledger_index":    float64(7),
				"Amount": map[string]interface{}{
					"currency": rlusdHex,
					"issuer":   testIssuer,
					"value":    "4.2",
				},
			},
		},
		{
			Tx: rptypes.JSONObject{
				"TransactionType": "Payment",
				"hash":            "H4",
				"Amount":          "lots",
			},
		},
	}, nil)

	h, err := am.History(context.Background(), testAddress, 0)
	assert.NoError(t, err)
	assert.Equal(t, testAddress, h.Address)
	assert.Len(t, h.Transactions, 3)

	assert.Equal(t, &HistoryItem{
		Hash:            "H1",
		TransactionType: "Payment",
		Amount:          "1.500000",
		Currency:        "XRP",
		Destination:     testIssuer,
		Status:          "validated",
		LedgerIndex:     100,
		Timestamp:       "2000-01-01T00:00:00Z",
	}, h.Transactions[0])

	assert.Equal(t, "4.2", h.Transactions[1].Amount)
	assert.Equal(t, rlusdHex, h.Transactions[1].Currency)
	assert.Equal(t, testIssuer, h.Transactions[1].Issuer)
	assert.Equal(t, "pending", h.Transactions[1].Status)
	assert.Equal(t, int64(7), h.Transactions[1].LedgerIndex)
	assert.Empty(t, h.Transactions[1].Timestamp)

	assert.Equal(t, "lots", h.Transactions[2].Amount)
}

func TestHistoryLimits(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	mli.On("AccountTransactions", mock.Anything, testAddress, 200, false).Return(nil, nil).Once()
	mli.On("AccountTransactions", mock.Anything, testAddress, 5, false).Return(nil, fmt.Errorf("pop")).Once()

	h, err := am.History(context.Background(), testAddress, 1000)
	assert.NoError(t, err)
	assert.Empty(t, h.Transactions)

	_, err = am.History(context.Background(), testAddress, 5)
	assert.Regexp(t, "pop", err)

	_, err = am.History(context.Background(), "bad", 5)
	assert.Regexp(t, "RPX10130", err)
	mli.AssertExpectations(t)
}

func TestValidateRecipient(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	ctx := context.Background()

	rc, err := am.ValidateRecipient(ctx, testAddress, "xrp")
	assert.NoError(t, err)
	assert.True(t, rc.HasTrustline)

	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return([]*ledger.TrustLine{
		{Currency: rlusdHex},
	}, nil).Twice()
	rc, err = am.ValidateRecipient(ctx, testAddress, "")
	assert.NoError(t, err)
	assert.True(t, rc.HasTrustline)
	rc, err = am.ValidateRecipient(ctx, testAddress, "RLUSD")
	assert.NoError(t, err)
	assert.True(t, rc.HasTrustline)

	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return([]*ledger.TrustLine{}, nil).Once()
	rc, err = am.ValidateRecipient(ctx, testAddress, "RWAACC")
	assert.NoError(t, err)
	assert.False(t, rc.HasTrustline)
	assert.Equal(t, "Recipient is missing the RWAACC trustline to the issuer", rc.Reason)

	mli.On("AccountLines", mock.Anything, testAddress, testIssuer).Return(nil, fmt.Errorf("pop")).Once()
	_, err = am.ValidateRecipient(ctx, testAddress, "USD")
	assert.Regexp(t, "pop", err)

	_, err = am.ValidateRecipient(ctx, testAddress, "EUR")
	assert.Regexp(t, "RPX10132", err)
	_, err = am.ValidateRecipient(ctx, "bad", "XRP")
	assert.Regexp(t, "RPX10130", err)
	mli.AssertExpectations(t)
}

func TestTransaction(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	found, missing, failing := strings.Repeat("A", 64), strings.Repeat("b", 64), strings.Repeat("C", 64)
	mli.On("Transaction", mock.Anything, found).Return(rptypes.JSONObject{"hash": found}, nil)
	mli.On("Transaction", mock.Anything, missing).Return(nil, nil)
	mli.On("Transaction", mock.Anything, failing).Return(nil, fmt.Errorf("pop"))

	tx, err := am.Transaction(context.Background(), found)
	assert.NoError(t, err)
	assert.Equal(t, found, tx.GetString("hash"))
	_, err = am.Transaction(context.Background(), missing)
	assert.Regexp(t, "RPX10127", err)
	_, err = am.Transaction(context.Background(), failing)
	assert.Regexp(t, "pop", err)
}

func TestTransactionBadHash(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	for _, hash := range []string{"", "AAA", strings.Repeat("G", 64), strings.Repeat("A", 65), "../ledger"} {
		_, err := am.Transaction(context.Background(), hash)
		assert.Regexp(t, "RPX10149", err)
	}
	mli.AssertNotCalled(t, "Transaction", mock.Anything, mock.Anything)
}

func TestFees(t *testing.T) {
	am, mli, _ := newTestAccounts(t)
	mli.On("Fee", mock.Anything).Return(&ledger.FeeInfo{
		BaseFee:       "10",
		MedianFee:     "5000",
		MinimumFee:    "10",
		OpenLedgerFee: "12",
	}, nil).Once()
	mli.On("Fee", mock.Anything).Return(&ledger.FeeInfo{BaseFee: "x"}, nil).Once()
	mli.On("Fee", mock.Anything).Return(nil, fmt.Errorf("pop")).Once()

	f, err := am.Fees(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "0.000010", f.BaseFeeXRP)
	assert.Equal(t, "0.000012", f.OpenLedgerFeeXRP)
	assert.Equal(t, "5000", f.MedianFee)

	_, err = am.Fees(context.Background())
	assert.Regexp(t, "RPX10123", err)
	_, err = am.Fees(context.Background())
	assert.Regexp(t, "pop", err)
}

func TestSubmissions(t *testing.T) {
	am, _, mdi := newTestAccounts(t)
	mdi.On("GetSubmissions", mock.Anything, &database.SubmissionFilter{Account: testAddress, Limit: 20}).Return([]*rptypes.SubmissionRecord{{TxHash: "A"}}, nil)
	mdi.On("GetSubmissions", mock.Anything, &database.SubmissionFilter{Limit: 3}).Return([]*rptypes.SubmissionRecord{}, nil)

	s, err := am.Submissions(context.Background(), testAddress, 0)
	assert.NoError(t, err)
	assert.Len(t, s, 1)
	s, err = am.Submissions(context.Background(), "", 3)
	assert.NoError(t, err)
	assert.Empty(t, s)
	_, err = am.Submissions(context.Background(), "bad", 3)
	assert.Regexp(t, "RPX10130", err)
}

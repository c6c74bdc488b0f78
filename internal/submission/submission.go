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

package submission

import (
	"context"
	"strings"
	"time"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/metrics"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/xrpl"
)

const (
	EngineResultSuccess = "tesSUCCESS"
	EngineResultQueued  = "terQUEUED"
)

// Submitted is true only for the engine results that mean the transaction was applied or queued
func Submitted(engineResult string) bool {
	return engineResult == EngineResultSuccess || engineResult == EngineResultQueued
}

// Result is the normalized outcome of a submission to the ledger
type Result struct {
	Submitted    bool   `json:"submitted"`
	TxID         string `json:"txid,omitempty"`
	EngineResult string `json:"engine_result,omitempty"`
	Message      string `json:"message"`
	Error        string `json:"error,omitempty"`
	LocalError   string `json:"local_error,omitempty"`
}

// BlobResult adds the echo of the signed transaction, for the wallet-signed path
type BlobResult struct {
	Result
	TxJSON rptypes.JSONObject `json:"tx_json"`
	TxHash string             `json:"tx_hash"`
}

// Policy constrains what the server will sign with a key it holds
type Policy struct {
	// Signer is the only account the server will sign for. An empty Account is filled with it
	Signer string
	// AllowedCurrencies are the symbols an issued Payment may carry, matched raw or encoded
	AllowedCurrencies []string
}

type Manager interface {
	// SubmitBlob forwards a transaction signed by an external wallet
	SubmitBlob(ctx context.Context, signedTx rptypes.JSONObject) (*BlobResult, error)

	// SubmitWithServerKey validates the transaction against the policy, then has the ledger sign and submit it with the secret
	SubmitWithServerKey(ctx context.Context, kind rptypes.SubmissionKind, tx xrpl.Transaction, secret string, policy *Policy) (*Result, error)
}

type submissionManager struct {
	ledger   ledger.Plugin
	database database.Plugin
	metrics  metrics.Manager
}

func NewSubmissionManager(ctx context.Context, li ledger.Plugin, di database.Plugin, mm metrics.Manager) (Manager, error) {
	if li == nil || di == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError, "SubmissionManager")
	}
	return &submissionManager{
		ledger:   li,
		database: di,
		metrics:  mm,
	}, nil
}

func successMessage(kind rptypes.SubmissionKind) string {
	switch kind {
	case rptypes.SubmissionKindCredentialCreate:
		return "Submitted credential create"
	case rptypes.SubmissionKindRWAMint:
		return "Submitted to XRPL"
	default:
		return "Transaction submitted to XRPL"
	}
}

func (sm *submissionManager) SubmitBlob(ctx context.Context, signedTx rptypes.JSONObject) (*BlobResult, error) {
	if signedTx == nil {
		return nil, i18n.NewError(ctx, i18n.MsgMissingSignedTx)
	}
	blob := signedTx.GetString("tx_blob")
	if blob == "" {
		blob = signedTx.GetString("txBlob")
	}
	if blob == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingTxBlob)
	}

	record := &rptypes.SubmissionRecord{
		Kind:        rptypes.SubmissionKindBlob,
		Account:     signedTx.GetString("Account"),
		Destination: signedTx.GetString("Destination"),
	}
	result, err := sm.submit(ctx, record, func() (*ledger.SubmitResult, error) {
		return sm.ledger.SubmitBlob(ctx, blob)
	})
	if err != nil {
		return nil, err
	}

	br := &BlobResult{
		Result: *result,
		TxJSON: signedTx,
		TxHash: result.TxID,
	}
	if br.TxHash == "" {
		br.TxHash = "pending"
	}
	return br, nil
}

func (sm *submissionManager) SubmitWithServerKey(ctx context.Context, kind rptypes.SubmissionKind, tx xrpl.Transaction, secret string, policy *Policy) (*Result, error) {
	if secret == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingIssuerSecret)
	}
	signable, err := sm.enforcePolicy(ctx, tx, policy)
	if err != nil {
		return nil, err
	}

	record := &rptypes.SubmissionRecord{
		Kind:    kind,
		Account: signable.Common().Account,
	}
	switch t := signable.(type) {
	case *xrpl.Payment:
		record.Destination = t.Destination
	case *xrpl.CredentialCreate:
		record.Destination = t.Subject
	}
	return sm.submit(ctx, record, func() (*ledger.SubmitResult, error) {
		return sm.ledger.SubmitSigned(ctx, signable, secret)
	})
}

// enforcePolicy validates a caller supplied transaction, and returns a fresh copy holding only
// the validated fields. Fee, sequence, flags and signatures are left for the ledger to autofill.
func (sm *submissionManager) enforcePolicy(ctx context.Context, tx xrpl.Transaction, policy *Policy) (xrpl.Transaction, error) {
	account := tx.Common().Account
	if account != "" && account != policy.Signer {
		return nil, i18n.NewError(ctx, i18n.MsgTxAccountNotIssuer)
	}

	switch t := tx.(type) {
	case *xrpl.Payment:
		return sm.enforcePaymentPolicy(ctx, t, policy)
	case *xrpl.CredentialCreate:
		if !xrpl.IsValidAddress(t.Subject) {
			return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, t.Subject)
		}
		return xrpl.NewCredentialCreate(policy.Signer, t.Subject, t.CredentialType, t.URI), nil
	default:
		return nil, i18n.NewError(ctx, i18n.MsgUnsupportedTxType, tx.Type())
	}
}

func (sm *submissionManager) enforcePaymentPolicy(ctx context.Context, payment *xrpl.Payment, policy *Policy) (*xrpl.Payment, error) {
	if payment.Amount == nil || payment.Amount.IsNative() {
		return nil, i18n.NewError(ctx, i18n.MsgTxAmountNotIssued)
	}
	issued := payment.Amount.Issued
	if issued.Issuer != policy.Signer {
		return nil, i18n.NewError(ctx, i18n.MsgTxIssuerMismatch)
	}
	allowed := false
	for _, symbol := range policy.AllowedCurrencies {
		encoded, err := xrpl.EncodeCurrency(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if issued.Currency == symbol || strings.EqualFold(issued.Currency, encoded) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, i18n.NewError(ctx, i18n.MsgTxCurrencyNotAllowed, strings.Join(policy.AllowedCurrencies, " or "))
	}
	if !xrpl.IsValidAddress(payment.Destination) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, payment.Destination)
	}
	if _, err := xrpl.ParseAmount(ctx, issued.Value); err != nil {
		return nil, err
	}
	encoded, err := xrpl.EncodeCurrency(ctx, issued.Currency)
	if err != nil {
		return nil, err
	}
	return xrpl.NewPayment(policy.Signer, payment.Destination, xrpl.NewIssuedAmount(encoded, policy.Signer, issued.Value)), nil
}

func (sm *submissionManager) submit(ctx context.Context, record *rptypes.SubmissionRecord, fn func() (*ledger.SubmitResult, error)) (*Result, error) {
	start := time.Now()
	sr, err := fn()
	if err != nil {
		sm.metrics.SubmissionCompleted(record.Kind, metrics.SubmissionOutcomeFailed, time.Since(start))
		return nil, err
	}

	result := &Result{
		Submitted:    Submitted(sr.EngineResult),
		TxID:         sr.TxHash,
		EngineResult: sr.EngineResult,
	}
	if result.Submitted {
		result.Message = successMessage(record.Kind)
		sm.metrics.SubmissionCompleted(record.Kind, metrics.SubmissionOutcomeSubmitted, time.Since(start))
	} else {
		engineResult := sr.EngineResult
		if engineResult == "" {
			engineResult = "unknown"
		}
		result.Message = "Submission returned " + engineResult
		result.Error = sr.EngineResultMessage
		sm.metrics.SubmissionCompleted(record.Kind, metrics.SubmissionOutcomeRejected, time.Since(start))
	}
	log.L(ctx).Infof("Submission kind=%s engine_result=%s submitted=%t txid=%s", record.Kind, sr.EngineResult, result.Submitted, sr.TxHash)

	// The ledger is the source of truth from here, so a local failure is reported and not compensated
	record.TxHash = sr.TxHash
	record.EngineResult = sr.EngineResult
	record.Submitted = result.Submitted
	record.Message = result.Message
	if err := sm.database.InsertSubmission(ctx, record); err != nil {
		log.L(ctx).Errorf("Failed to record submission %s: %s", sr.TxHash, err)
		result.LocalError = i18n.NewError(ctx, i18n.MsgLocalRecordFailed, err).Error()
	}
	return result, nil
}

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

package rwa

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/credentials"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/payloads"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/signing"
	"github.com/riplx/riplx/pkg/xrpl"
)

const mintAcceptedMessage = "Mint request accepted (demo). Issuer must sign and submit the tx_json."

type MintResult struct {
	Accepted  bool                      `json:"accepted"`
	TokenCode string                    `json:"token_code"`
	Tier      string                    `json:"tier"`
	Message   string                    `json:"message"`
	TxJSON    *xrpl.Payment             `json:"tx_json"`
	Gate      *credentials.Verification `json:"gate,omitempty"`
}

type Manager interface {
	// Mint prepares an unsigned issuer payment of the tier's token, once the recipient passes the credential gate
	Mint(ctx context.Context, address, tier, amount string) (*MintResult, error)

	// Submit has the issuer sign and submit a prepared mint, with the issuer secret held by this server
	Submit(ctx context.Context, issuerToken string, tx xrpl.Transaction) (*submission.Result, error)

	// Trustline creates a signing payload for the holder's trust set to the RWA issuer
	Trustline(ctx context.Context, code, limit string) (*signing.Payload, error)
}

type rwaManager struct {
	preparer    txprep.Manager
	credentials credentials.Manager
	submission  submission.Manager
	payloads    payloads.Manager

	requireGate    bool
	issuerSecret   string
	signToken      string
	trustlineLimit string
}

func NewRWAManager(ctx context.Context, tp txprep.Manager, cm credentials.Manager, sm submission.Manager, pm payloads.Manager) (Manager, error) {
	if tp == nil || cm == nil || sm == nil || pm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError, "RWAManager")
	}
	rm := &rwaManager{
		preparer:       tp,
		credentials:    cm,
		submission:     sm,
		payloads:       pm,
		requireGate:    config.GetBool(config.RWARequireGate),
		issuerSecret:   config.GetString(config.IssuerSecret),
		signToken:      config.GetString(config.IssuerSignToken),
		trustlineLimit: config.GetString(config.RWATrustlineLimit),
	}
	if !rm.requireGate {
		log.L(ctx).Warnf("RWA mint is not gated by credentials (rwa.requireGate=false)")
	}
	return rm, nil
}

func (rm *rwaManager) Mint(ctx context.Context, address, tier, amount string) (*MintResult, error) {
	mint, err := rm.preparer.PrepareRwaMint(ctx, address, tier, amount)
	if err != nil {
		return nil, err
	}
	result := &MintResult{
		Accepted:  true,
		TokenCode: mint.TokenCode,
		Tier:      mint.Tier,
		Message:   mintAcceptedMessage,
		TxJSON:    mint.TxJSON,
	}
	if rm.requireGate {
		v, err := rm.credentials.Verify(ctx, address)
		if err != nil {
			return nil, err
		}
		if !v.Allowed {
			return nil, i18n.NewError(ctx, i18n.MsgGateDenied, address, v.Reason)
		}
		result.Gate = v
	}
	return result, nil
}

func (rm *rwaManager) Submit(ctx context.Context, issuerToken string, tx xrpl.Transaction) (*submission.Result, error) {
	if rm.signToken != "" && subtle.ConstantTimeCompare([]byte(issuerToken), []byte(rm.signToken)) != 1 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIssuerToken)
	}
	if tx == nil || tx.Type() != xrpl.TransactionTypePayment {
		return nil, i18n.NewError(ctx, i18n.MsgTxNotPayment)
	}
	return rm.submission.SubmitWithServerKey(ctx, rptypes.SubmissionKindRWAMint, tx, rm.issuerSecret, &submission.Policy{
		Signer:            rm.preparer.RWAIssuer(),
		AllowedCurrencies: rm.preparer.RWACodes(),
	})
}

func (rm *rwaManager) Trustline(ctx context.Context, code, limit string) (*signing.Payload, error) {
	codes := rm.preparer.RWACodes()
	if code == "" {
		code = codes[0]
	}
	if limit == "" {
		limit = rm.trustlineLimit
	}
	allowed := false
	for _, c := range codes {
		if strings.EqualFold(code, c) {
			code, allowed = c, true
			break
		}
	}
	if !allowed {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidRWACode, strings.Join(codes, " or "))
	}
	asset, err := rm.preparer.ResolveAsset(ctx, code)
	if err != nil {
		return nil, err
	}
	trustSet, err := rm.preparer.PrepareTrustSet(ctx, asset.Currency, asset.Issuer, limit, 0)
	if err != nil {
		return nil, err
	}
	return rm.payloads.Create(ctx, rptypes.PayloadKindRWATrustline, trustSet, true)
}

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

package payloads

import (
	"context"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/metrics"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/signing"
	"github.com/riplx/riplx/pkg/xrpl"
)

// TrustlineLimitRLUSD is the limit requested on an RLUSD trust line
const TrustlineLimitRLUSD = "1000000000"

// Manager creates signing payloads for wallets, and keeps the local record of each in step with
// the signing service as the status is polled
type Manager interface {
	Create(ctx context.Context, kind rptypes.PayloadKind, tx xrpl.Transaction, submit bool) (*signing.Payload, error)
	PaymentPayload(ctx context.Context, destination, amount string) (*signing.Payload, error)
	TrustlinePayload(ctx context.Context) (*signing.Payload, error)
	SignInPayload(ctx context.Context) (*signing.Payload, error)
	Status(ctx context.Context, uuid string) (*signing.PayloadStatus, error)
}

type payloadManager struct {
	signing  signing.Plugin
	database database.Plugin
	preparer txprep.Manager
	metrics  metrics.Manager
}

func NewPayloadManager(ctx context.Context, si signing.Plugin, di database.Plugin, tp txprep.Manager, mm metrics.Manager) (Manager, error) {
	if si == nil || di == nil || tp == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError, "PayloadManager")
	}
	return &payloadManager{
		signing:  si,
		database: di,
		preparer: tp,
		metrics:  mm,
	}, nil
}

func (pm *payloadManager) Create(ctx context.Context, kind rptypes.PayloadKind, tx xrpl.Transaction, submit bool) (*signing.Payload, error) {
	payload, err := pm.signing.CreatePayload(ctx, tx, submit)
	if err != nil {
		return nil, err
	}
	pm.metrics.PayloadCreated(kind)

	record := &rptypes.PayloadRecord{
		UUID: payload.UUID,
		Kind: kind,
	}
	var amount *xrpl.Amount
	switch t := tx.(type) {
	case *xrpl.Payment:
		amount = t.Amount
	case *xrpl.TrustSet:
		amount = t.LimitAmount
	}
	if amount != nil && !amount.IsNative() {
		record.Currency = amount.Issued.Currency
		record.Issuer = amount.Issued.Issuer
	}
	if err := pm.database.UpsertPayload(ctx, record); err != nil {
		// The payload exists with the signing service regardless, so the caller still gets it
		log.L(ctx).Errorf("Failed to record payload %s: %s", payload.UUID, err)
	}
	log.L(ctx).Infof("Created %s payload %s", kind, payload.UUID)
	return payload, nil
}

func (pm *payloadManager) PaymentPayload(ctx context.Context, destination, amount string) (*signing.Payload, error) {
	payment, err := pm.preparer.PreparePayment(ctx, destination, amount, txprep.SymbolRLUSD)
	if err != nil {
		return nil, err
	}
	return pm.Create(ctx, rptypes.PayloadKindPayment, payment, true)
}

func (pm *payloadManager) TrustlinePayload(ctx context.Context) (*signing.Payload, error) {
	asset, err := pm.preparer.ResolveAsset(ctx, txprep.SymbolRLUSD)
	if err != nil {
		return nil, err
	}
	trustSet, err := pm.preparer.PrepareTrustSet(ctx, asset.Currency, asset.Issuer, TrustlineLimitRLUSD, xrpl.TrustSetFlagSetNoRipple)
	if err != nil {
		return nil, err
	}
	return pm.Create(ctx, rptypes.PayloadKindTrustline, trustSet, true)
}

func (pm *payloadManager) SignInPayload(ctx context.Context) (*signing.Payload, error) {
	return pm.Create(ctx, rptypes.PayloadKindSignIn, xrpl.NewSignIn(), false)
}

func (pm *payloadManager) Status(ctx context.Context, uuid string) (*signing.PayloadStatus, error) {
	status, err := pm.signing.PayloadStatus(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if status.Signed {
		if err := pm.recordSigned(ctx, status); err != nil {
			log.L(ctx).Errorf("Failed to record signed payload %s: %s", uuid, err)
		}
	}
	return status, nil
}

// recordSigned updates the local record the first time a payload is seen as signed.
// Payloads created elsewhere have no record, and are ignored.
func (pm *payloadManager) recordSigned(ctx context.Context, status *signing.PayloadStatus) error {
	var kind rptypes.PayloadKind
	err := pm.database.RunAsGroup(ctx, func(ctx context.Context) error {
		record, err := pm.database.GetPayload(ctx, status.UUID)
		if err != nil || record == nil || record.Signed {
			return err
		}
		kind = record.Kind
		record.Signed = true
		record.Account = status.Account
		record.TxID = status.TxID
		if err := pm.database.UpsertPayload(ctx, record); err != nil {
			return err
		}
		if !record.Kind.IsTrustline() || status.Account == "" {
			return nil
		}
		return pm.database.UpsertTrustlineMarker(ctx, &rptypes.TrustlineMarker{
			Account:     status.Account,
			Currency:    record.Currency,
			Issuer:      record.Issuer,
			PayloadUUID: record.UUID,
		})
	})
	if err == nil && kind != "" {
		pm.metrics.PayloadSigned(kind)
	}
	return err
}

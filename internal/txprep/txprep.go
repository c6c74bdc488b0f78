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

package txprep

import (
	"context"
	"strings"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/pkg/xrpl"
)

const (
	TierAccredited = "accredited"
	TierLocal      = "local"
)

// RwaMint is an unsigned mint of a tier's RWA token, to be signed by the issuer
type RwaMint struct {
	TokenCode string        `json:"token_code"`
	Tier      string        `json:"tier"`
	TxJSON    *xrpl.Payment `json:"tx_json"`
}

// Manager builds unsigned transactions. It has no side effects, and makes no network calls.
type Manager interface {
	PreparePayment(ctx context.Context, destination, amount, currency string) (*xrpl.Payment, error)
	PrepareTrustSet(ctx context.Context, currency, issuer, limit string, flags uint32) (*xrpl.TrustSet, error)
	PrepareRwaMint(ctx context.Context, address, tier, amount string) (*RwaMint, error)
	ResolveAsset(ctx context.Context, code string) (*Asset, error)
	RWACodes() []string
	RWAIssuer() string
}

type txPreparer struct {
	assets         *AssetRegistry
	rwaIssuer      string
	accreditedCode string
	localCode      string
}

func NewTransactionPreparer(ctx context.Context) (Manager, error) {
	assets, err := NewAssetRegistry(ctx)
	if err != nil {
		return nil, err
	}
	tp := &txPreparer{
		assets:         assets,
		rwaIssuer:      RWAIssuer(),
		accreditedCode: strings.ToUpper(config.GetString(config.RWAAccreditedCode)),
		localCode:      strings.ToUpper(config.GetString(config.RWALocalCode)),
	}
	log.L(ctx).Debugf("Transaction preparer assets=%d rwaIssuer=%s", len(assets.assets), tp.rwaIssuer)
	return tp, nil
}

func (tp *txPreparer) RWACodes() []string {
	return []string{tp.accreditedCode, tp.localCode}
}

func (tp *txPreparer) RWAIssuer() string {
	return tp.rwaIssuer
}

// ResolveAsset returns the asset for a symbol or encoded currency, failing if its configured issuer is unusable
func (tp *txPreparer) ResolveAsset(ctx context.Context, code string) (*Asset, error) {
	asset, ok := tp.assets.Lookup(code)
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgUnsupportedCurrency, code)
	}
	if !xrpl.IsValidAddress(asset.Issuer) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidConfiguredIssuer, asset.Issuer, asset.Symbol)
	}
	return asset, nil
}

func (tp *txPreparer) PreparePayment(ctx context.Context, destination, amount, currency string) (*xrpl.Payment, error) {
	if !xrpl.IsValidAddress(destination) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, destination)
	}
	if currency == "" || xrpl.IsNativeCurrency(currency) {
		drops, err := xrpl.XRPToDrops(ctx, amount)
		if err != nil {
			return nil, err
		}
		return xrpl.NewPayment("", destination, xrpl.NewDropsAmount(drops)), nil
	}
	value, err := xrpl.ParseAmount(ctx, amount)
	if err != nil {
		return nil, err
	}
	asset, err := tp.ResolveAsset(ctx, currency)
	if err != nil {
		return nil, err
	}
	return xrpl.NewPayment("", destination, xrpl.NewIssuedAmount(asset.Currency, asset.Issuer, value.String())), nil
}

func (tp *txPreparer) PrepareTrustSet(ctx context.Context, currency, issuer, limit string, flags uint32) (*xrpl.TrustSet, error) {
	if !xrpl.IsValidAddress(issuer) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidConfiguredIssuer, issuer, currency)
	}
	if _, err := xrpl.ParseAmount(ctx, limit); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidLimit, limit)
	}
	encoded, err := xrpl.EncodeCurrency(ctx, currency)
	if err != nil {
		return nil, err
	}
	return xrpl.NewTrustSet(xrpl.NewIssuedAmount(encoded, issuer, limit), flags), nil
}

func (tp *txPreparer) PrepareRwaMint(ctx context.Context, address, tier, amount string) (*RwaMint, error) {
	tier = strings.ToLower(strings.TrimSpace(tier))
	var code string
	switch tier {
	case TierAccredited:
		code = tp.accreditedCode
	case TierLocal:
		code = tp.localCode
	default:
		return nil, i18n.NewError(ctx, i18n.MsgInvalidTier)
	}
	if !xrpl.IsValidAddress(address) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, address)
	}
	value, err := xrpl.ParseAmount(ctx, amount)
	if err != nil {
		return nil, err
	}
	if !xrpl.IsValidAddress(tp.rwaIssuer) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidConfiguredIssuer, tp.rwaIssuer, code)
	}
	return &RwaMint{
		TokenCode: code,
		Tier:      tier,
		TxJSON:    xrpl.NewPayment(tp.rwaIssuer, address, xrpl.NewIssuedAmount(code, tp.rwaIssuer, value.String())),
	}, nil
}

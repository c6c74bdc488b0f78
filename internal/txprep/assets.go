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
	"github.com/riplx/riplx/pkg/xrpl"
)

const (
	SymbolUSD   = "USD"
	SymbolRLUSD = "RLUSD"
)

// Asset binds a symbol to the currency code and issuer used on the ledger
type Asset struct {
	Symbol   string `json:"symbol"`
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
}

// AssetRegistry is immutable once built
type AssetRegistry struct {
	assets []*Asset
}

// NewAssetRegistry builds the registry from configuration. Issuer addresses are validated on use,
// so that a bad issuer for one asset does not stop the others being served.
func NewAssetRegistry(ctx context.Context) (*AssetRegistry, error) {
	rlusdIssuer := config.GetString(config.RLUSDIssuer)
	rlusdCurrency, err := xrpl.EncodeCurrency(ctx, config.GetString(config.RLUSDCurrency))
	if err != nil {
		return nil, err
	}
	ar := &AssetRegistry{
		assets: []*Asset{
			{Symbol: SymbolUSD, Currency: SymbolUSD, Issuer: rlusdIssuer},
			{Symbol: SymbolRLUSD, Currency: rlusdCurrency, Issuer: rlusdIssuer},
		},
	}
	rwaIssuer := RWAIssuer()
	for _, key := range []config.RootKey{config.RWAAccreditedCode, config.RWALocalCode} {
		symbol := strings.ToUpper(config.GetString(key))
		currency, err := xrpl.EncodeCurrency(ctx, symbol)
		if err != nil {
			return nil, err
		}
		ar.assets = append(ar.assets, &Asset{Symbol: symbol, Currency: currency, Issuer: rwaIssuer})
	}
	return ar, nil
}

// RWAIssuer is the account that issues the gated RWA tokens. Without a dedicated
// issuer configured, the RLUSD issuer is used.
func RWAIssuer() string {
	if issuer := config.GetString(config.IssuerAddress); issuer != "" {
		return issuer
	}
	return config.GetString(config.RLUSDIssuer)
}

// Lookup is case-insensitive on the symbol, and also matches the encoded currency
func (ar *AssetRegistry) Lookup(code string) (*Asset, bool) {
	for _, a := range ar.assets {
		if strings.EqualFold(a.Symbol, code) || strings.EqualFold(a.Currency, code) {
			copied := *a
			return &copied, true
		}
	}
	return nil, false
}

func (ar *AssetRegistry) Assets() []*Asset {
	assets := make([]*Asset, len(ar.assets))
	for i, a := range ar.assets {
		copied := *a
		assets[i] = &copied
	}
	return assets
}

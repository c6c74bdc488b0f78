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

package xrpl

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/shopspring/decimal"
)

const dropsPerXRP = 1000000

var dropsPerXRPDecimal = decimal.NewFromInt(dropsPerXRP)

// ParseAmount parses a non-negative decimal amount
func ParseAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return decimal.Zero, i18n.NewError(ctx, i18n.MsgInvalidAmount, amount)
	}
	return d, nil
}

// XRPToDrops converts a decimal XRP amount to a whole number of drops, truncating any
// precision below one drop
func XRPToDrops(ctx context.Context, xrp string) (string, error) {
	d, err := ParseAmount(ctx, xrp)
	if err != nil {
		return "", err
	}
	return d.Mul(dropsPerXRPDecimal).Truncate(0).String(), nil
}

// DropsToXRP renders a drops amount as XRP with six decimal places
func DropsToXRP(ctx context.Context, drops string) (string, error) {
	d, err := ParseAmount(ctx, drops)
	if err != nil {
		return "", err
	}
	return d.Div(dropsPerXRPDecimal).StringFixed(6), nil
}

// IssuedAmount is an amount of a token, held on a trust line to the issuer
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// Amount is either a native amount in drops, or an issued currency amount.
// On the wire a native amount is a bare string, and an issued amount is an object.
type Amount struct {
	Drops  string
	Issued *IssuedAmount
}

func NewDropsAmount(drops string) *Amount {
	return &Amount{Drops: drops}
}

func NewIssuedAmount(currency, issuer, value string) *Amount {
	return &Amount{Issued: &IssuedAmount{Currency: currency, Issuer: issuer, Value: value}}
}

func (a *Amount) IsNative() bool {
	return a.Issued == nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Issued != nil {
		return json.Marshal(a.Issued)
	}
	return json.Marshal(a.Drops)
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		a.Issued = nil
		return json.Unmarshal(b, &a.Drops)
	}
	var issued struct {
		Currency string      `json:"currency"`
		Issuer   string      `json:"issuer"`
		Value    json.Number `json:"value"`
	}
	if len(b) == 0 || b[0] != '{' {
		return i18n.NewError(context.Background(), i18n.MsgInvalidAmountField, string(b))
	}
	if err := json.Unmarshal(b, &issued); err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgInvalidAmountField, string(b))
	}
	a.Drops = ""
	a.Issued = &IssuedAmount{
		Currency: issued.Currency,
		Issuer:   issued.Issuer,
		Value:    issued.Value.String(),
	}
	return nil
}

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
	"encoding/hex"
	"strings"

	"github.com/riplx/riplx/internal/i18n"
)

const (
	// NativeCurrency is the symbol of the ledger's native asset
	NativeCurrency = "XRP"

	standardCurrencyLength = 3
	currencyCodeBytes      = 20
	encodedCurrencyLength  = 2 * currencyCodeBytes
)

// IsEncodedCurrency returns true for a 160 bit hex currency code
func IsEncodedCurrency(code string) bool {
	if len(code) != encodedCurrencyLength {
		return false
	}
	_, err := hex.DecodeString(code)
	return err == nil
}

// EncodeCurrency returns the representation of a currency code as used in trust line currency
// fields. Three character codes are used as-is, anything else is right padded with zero bytes
// into a 40 character upper case hex string.
func EncodeCurrency(ctx context.Context, code string) (string, error) {
	switch {
	case code == "":
		return "", i18n.NewError(ctx, i18n.MsgInvalidCurrencyCode, code)
	case len(code) == standardCurrencyLength:
		return code, nil
	case IsEncodedCurrency(code):
		return strings.ToUpper(code), nil
	case len(code) > currencyCodeBytes:
		return "", i18n.NewError(ctx, i18n.MsgInvalidCurrencyCode, code)
	}
	padded := make([]byte, currencyCodeBytes)
	copy(padded, code)
	return strings.ToUpper(hex.EncodeToString(padded)), nil
}

// DecodeCurrency returns the symbol for an encoded currency. Codes that are not
// 40 character hex are returned unchanged.
func DecodeCurrency(code string) string {
	if !IsEncodedCurrency(code) {
		return code
	}
	b, _ := hex.DecodeString(code)
	return string(bytes.TrimRight(b, "\x00"))
}

// IsNativeCurrency is a case insensitive check for the native asset
func IsNativeCurrency(code string) bool {
	return strings.EqualFold(code, NativeCurrency)
}

// EncodeHexUpper hex encodes free text fields such as credential URIs
func EncodeHexUpper(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

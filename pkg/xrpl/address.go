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
	"crypto/sha256"
	"strings"

	"github.com/akamensky/base58"
)

const (
	rippleAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	accountIDVersion  = 0x00
	accountIDLength   = 20
	checksumLength    = 4
	minAddressLength  = 25
	maxAddressLength  = 35
	decodedAddressLen = 1 + accountIDLength + checksumLength
)

var rippleToBitcoin = strings.NewReplacer(func() []string {
	pairs := make([]string, 0, 2*len(rippleAlphabet))
	for i := range rippleAlphabet {
		pairs = append(pairs, rippleAlphabet[i:i+1], bitcoinAlphabet[i:i+1])
	}
	return pairs
}()...)

// IsValidAddress checks a classic address is well formed, and that its checksum matches.
// No network access is involved.
func IsValidAddress(address string) bool {
	_, ok := DecodeAccountID(address)
	return ok
}

// DecodeAccountID returns the 20 byte account ID of a valid classic address
func DecodeAccountID(address string) ([]byte, bool) {
	if len(address) < minAddressLength || len(address) > maxAddressLength || address[0] != 'r' {
		return nil, false
	}
	for i := 0; i < len(address); i++ {
		if strings.IndexByte(rippleAlphabet, address[i]) < 0 {
			return nil, false
		}
	}
	decoded, err := base58.Decode(rippleToBitcoin.Replace(address))
	if err != nil {
		return nil, false
	}

	// Each leading zero character encodes exactly one leading zero byte
	leadingZeros := len(address) - len(strings.TrimLeft(address, "r"))
	payload := append(make([]byte, leadingZeros), bytes.TrimLeft(decoded, "\x00")...)
	if len(payload) != decodedAddressLen || payload[0] != accountIDVersion {
		return nil, false
	}

	body := payload[:1+accountIDLength]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:checksumLength], payload[1+accountIDLength:]) {
		return nil, false
	}
	return body[1:], true
}

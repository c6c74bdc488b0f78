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
	"context"
	"encoding/json"

	"github.com/riplx/riplx/internal/i18n"
)

type TransactionType string

const (
	TransactionTypePayment          TransactionType = "Payment"
	TransactionTypeTrustSet         TransactionType = "TrustSet"
	TransactionTypeCredentialCreate TransactionType = "CredentialCreate"
	// TransactionTypeSignIn is a pseudo transaction understood by XUMM, never submitted to a ledger
	TransactionTypeSignIn TransactionType = "SignIn"
)

const (
	// TrustSetFlagClearNoRipple clears the no-ripple flag on the trust line
	TrustSetFlagClearNoRipple uint32 = 0x00040000
	// TrustSetFlagSetNoRipple blocks rippling through the trust line
	TrustSetFlagSetNoRipple uint32 = 0x00020000
)

// Transaction is implemented by each of the transaction kinds this service builds
type Transaction interface {
	Type() TransactionType
	Common() *CommonFields
}

// CommonFields are shared by every transaction kind
type CommonFields struct {
	TransactionType TransactionType `json:"TransactionType"`
	Account         string          `json:"Account,omitempty"`
	Flags           uint32          `json:"Flags,omitempty"`
	Fee             string          `json:"Fee,omitempty"`
	Sequence        uint32          `json:"Sequence,omitempty"`
	SigningPubKey   string          `json:"SigningPubKey,omitempty"`
	TxnSignature    string          `json:"TxnSignature,omitempty"`
	Hash            string          `json:"hash,omitempty"`
}

func (c *CommonFields) Type() TransactionType {
	return c.TransactionType
}

func (c *CommonFields) Common() *CommonFields {
	return c
}

type Payment struct {
	CommonFields
	Destination    string  `json:"Destination"`
	Amount         *Amount `json:"Amount"`
	DestinationTag *uint32 `json:"DestinationTag,omitempty"`
	InvoiceID      string  `json:"InvoiceID,omitempty"`
}

type TrustSet struct {
	CommonFields
	LimitAmount *Amount `json:"LimitAmount"`
}

type CredentialCreate struct {
	CommonFields
	Subject        string `json:"Subject"`
	CredentialType string `json:"CredentialType"`
	URI            string `json:"URI,omitempty"`
}

type SignIn struct {
	CommonFields
}

func NewPayment(account, destination string, amount *Amount) *Payment {
	return &Payment{
		CommonFields: CommonFields{TransactionType: TransactionTypePayment, Account: account},
		Destination:  destination,
		Amount:       amount,
	}
}

func NewTrustSet(limit *Amount, flags uint32) *TrustSet {
	return &TrustSet{
		CommonFields: CommonFields{TransactionType: TransactionTypeTrustSet, Flags: flags},
		LimitAmount:  limit,
	}
}

func NewCredentialCreate(issuer, subject, credentialType, uri string) *CredentialCreate {
	return &CredentialCreate{
		CommonFields:   CommonFields{TransactionType: TransactionTypeCredentialCreate, Account: issuer},
		Subject:        subject,
		CredentialType: credentialType,
		URI:            uri,
	}
}

func NewSignIn() *SignIn {
	return &SignIn{CommonFields: CommonFields{TransactionType: TransactionTypeSignIn}}
}

// ParseTransaction decodes JSON supplied by a client into the matching transaction kind
func ParseTransaction(ctx context.Context, b []byte) (Transaction, error) {
	var head struct {
		TransactionType TransactionType `json:"TransactionType"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidTxJSON, err)
	}
	var tx Transaction
	switch head.TransactionType {
	case TransactionTypePayment:
		tx = &Payment{}
	case TransactionTypeTrustSet:
		tx = &TrustSet{}
	case TransactionTypeCredentialCreate:
		tx = &CredentialCreate{}
	case TransactionTypeSignIn:
		tx = &SignIn{}
	default:
		return nil, i18n.NewError(ctx, i18n.MsgUnsupportedTxType, head.TransactionType)
	}
	if err := json.Unmarshal(b, tx); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidTxJSON, err)
	}
	return tx, nil
}

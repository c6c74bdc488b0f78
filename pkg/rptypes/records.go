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

package rptypes

import "github.com/google/uuid"

// SubmissionKind identifies the workflow that submitted a transaction
type SubmissionKind string

const (
	// SubmissionKindBlob is a transaction signed by the client, and forwarded as a blob
	SubmissionKindBlob SubmissionKind = "blob"
	// SubmissionKindCredentialCreate is a credential issued with the server's credential issuer key
	SubmissionKindCredentialCreate SubmissionKind = "credential_create"
	// SubmissionKindRWAMint is an RWA token payment signed with the server's issuer key
	SubmissionKindRWAMint SubmissionKind = "rwa_mint"
)

// SubmissionRecord is the local record of a transaction this server submitted to the ledger
type SubmissionRecord struct {
	ID           *uuid.UUID     `json:"id"`
	Kind         SubmissionKind `json:"kind"`
	TxHash       string         `json:"tx_hash,omitempty"`
	Account      string         `json:"account,omitempty"`
	Destination  string         `json:"destination,omitempty"`
	EngineResult string         `json:"engine_result,omitempty"`
	Submitted    bool           `json:"submitted"`
	Message      string         `json:"message,omitempty"`
	Created      *RPTime        `json:"created"`
}

// CredentialRecord is the latest credential this server issued for a subject
type CredentialRecord struct {
	Subject        string  `json:"subject"`
	Issuer         string  `json:"issuer"`
	CredentialType string  `json:"credential_type"`
	TxHash         string  `json:"tx_hash,omitempty"`
	EngineResult   string  `json:"engine_result,omitempty"`
	Submitted      bool    `json:"submitted"`
	Created        *RPTime `json:"created"`
	Updated        *RPTime `json:"updated"`
}

// PayloadKind identifies the transaction presented to a wallet in a signing payload
type PayloadKind string

const (
	PayloadKindPayment      PayloadKind = "payment"
	PayloadKindTrustline    PayloadKind = "trustline"
	PayloadKindRWATrustline PayloadKind = "rwa_trustline"
	PayloadKindSignIn       PayloadKind = "signin"
)

// IsTrustline is true for payloads that establish a trust line once signed
func (pk PayloadKind) IsTrustline() bool {
	return pk == PayloadKindTrustline || pk == PayloadKindRWATrustline
}

// PayloadRecord is the local record of a signing payload created with the signing service
type PayloadRecord struct {
	UUID     string      `json:"uuid"`
	Kind     PayloadKind `json:"kind"`
	Currency string      `json:"currency,omitempty"`
	Issuer   string      `json:"issuer,omitempty"`
	Signed   bool        `json:"signed"`
	Account  string      `json:"account,omitempty"`
	TxID     string      `json:"txid,omitempty"`
	Created  *RPTime     `json:"created"`
	Updated  *RPTime     `json:"updated"`
}

// TrustlineMarker records that an account signed a trust set for a currency through this server
type TrustlineMarker struct {
	Account     string  `json:"account"`
	Currency    string  `json:"currency"`
	Issuer      string  `json:"issuer"`
	PayloadUUID string  `json:"payload_uuid"`
	Created     *RPTime `json:"created"`
}

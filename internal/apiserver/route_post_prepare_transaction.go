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

package apiserver

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/oapispec"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/pkg/xrpl"
)

var invoiceIDRegex = regexp.MustCompile(`^[0-9A-Fa-f]{64}$`)

type prepareTransactionInput struct {
	Destination string `json:"destination"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	InvoiceID   string `json:"invoice_id,omitempty"`
}

type preparedTransaction struct {
	TxJSON        *xrpl.Payment `json:"tx_json"`
	SigningPubKey string        `json:"signing_pub_key"`
	Message       string        `json:"message"`
}

var postPrepareTransaction = &oapispec.Route{
	Name:            "postPrepareTransaction",
	Path:            "api/transactions/prepare",
	Tag:             tagTransactions,
	Method:          http.MethodPost,
	Description:     i18n.APIEndpointsPrepareTx,
	JSONInputValue:  func() interface{} { return &prepareTransactionInput{} },
	JSONOutputValue: func() interface{} { return &preparedTransaction{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		input := r.Input.(*prepareTransactionInput)
		currency := input.Currency
		if currency == "" {
			currency = txprep.SymbolUSD
		}
		tx, err := r.Or.TxPrep().PreparePayment(r.Ctx, input.Destination, input.Amount, currency)
		if err != nil {
			return nil, err
		}
		if input.InvoiceID != "" {
			if !invoiceIDRegex.MatchString(input.InvoiceID) {
				return nil, i18n.NewError(r.Ctx, i18n.MsgInvalidInvoiceID)
			}
			tx.InvoiceID = strings.ToUpper(input.InvoiceID)
		}
		return &preparedTransaction{
			TxJSON:  tx,
			Message: "Transaction ready for Crossmark signing",
		}, nil
	},
}

// Copyright © 2021 Kaleido, Inc.
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

import "github.com/riplx/riplx/internal/oapispec"

const (
	tagAccounts     = "Accounts"
	tagTransactions = "Transactions"
	tagSigning      = "Signing"
	tagCredentials  = "Credentials"
	tagRWA          = "RWA"
	tagService      = "Service"
)

var routes = []*oapispec.Route{
	getBalance,
	getCredentialRecord,
	getCredentialStatus,
	getCredentialVerify,
	getFees,
	getHealth,
	getHistory,
	getNetworkConfig,
	getStatus,
	getSubmissions,
	getTransaction,
	getXummStatus,
	postCredentialCreate,
	postPrepareTransaction,
	postRwaMint,
	postRwaSubmit,
	postRwaTrustline,
	postSubmitTransaction,
	postValidateRecipient,
	postXummPrepare,
	postXummSignIn,
	postXummTrustline,
}

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

package i18n

var (
	APISuccessResponse        = ffm("api.success", "Success")
	APIRequestTimeoutDesc     = ffm("api.requestTimeout", "Server-side request timeout (milliseconds, or set a custom suffix like 10s)")
	APIParamsAddress          = ffm("api.params.address", "XRPL classic address")
	APIParamsTxHash           = ffm("api.params.txHash", "Transaction hash")
	APIParamsPayloadUUID      = ffm("api.params.payloadUUID", "XUMM payload UUID")
	APIParamsHistoryLimit     = ffm("api.params.historyLimit", "Maximum number of transactions to return (default %d, maximum %d)")
	APIParamsSubmissionAcct   = ffm("api.params.submissionAccount", "Only return submissions sent from or to this account")
	APIParamsSubmissionLimit  = ffm("api.params.submissionLimit", "Maximum number of records to return (maximum %d)")
	APIParamsCredentialToken  = ffm("api.params.credentialToken", "Admin token required to issue credentials")
	APIParamsIssuerToken      = ffm("api.params.issuerToken", "Token required for the server to sign with the issuer key")
	APIEndpointsGetBalance    = ffm("api.endpoints.getBalance", "Gets the XRP and RLUSD balance of an account")
	APIEndpointsPrepareTx     = ffm("api.endpoints.postPrepareTransaction", "Prepares an unsigned Payment for wallet signing")
	APIEndpointsValidateRecip = ffm("api.endpoints.postValidateRecipient", "Checks that the recipient holds the trust line needed to receive the currency")
	APIEndpointsSubmitTx      = ffm("api.endpoints.postSubmitTransaction", "Submits a wallet-signed transaction blob to the ledger")
	APIEndpointsGetTx         = ffm("api.endpoints.getTransaction", "Looks up a transaction by hash")
	APIEndpointsXummPrepare   = ffm("api.endpoints.postXummPrepare", "Creates a XUMM payload for an RLUSD payment")
	APIEndpointsXummTrustline = ffm("api.endpoints.postXummTrustline", "Creates a XUMM payload that opens the RLUSD trust line")
	APIEndpointsXummStatus    = ffm("api.endpoints.getXummStatus", "Gets the signing status of a XUMM payload")
	APIEndpointsXummSignIn    = ffm("api.endpoints.postXummSignIn", "Creates a XUMM sign-in payload")
	APIEndpointsGetHistory    = ffm("api.endpoints.getHistory", "Lists recent Payment transactions of an account")
	APIEndpointsGetFees       = ffm("api.endpoints.getFees", "Gets the current transaction fee estimate")
	APIEndpointsCredVerify    = ffm("api.endpoints.getCredentialVerify", "Decides whether an address may access gated features")
	APIEndpointsCredStatus    = ffm("api.endpoints.getCredentialStatus", "Reports the on-ledger credential held by an address")
	APIEndpointsCredCreate    = ffm("api.endpoints.postCredentialCreate", "Issues a credential to a subject, signed by the credential issuer")
	APIEndpointsCredRecord    = ffm("api.endpoints.getCredentialRecord", "Gets the locally recorded credential issued to a subject")
	APIEndpointsRwaMint       = ffm("api.endpoints.postRwaMint", "Prepares a gated RWA token mint for the issuer to sign")
	APIEndpointsRwaSubmit     = ffm("api.endpoints.postRwaSubmit", "Signs an RWA mint with the issuer key and submits it")
	APIEndpointsRwaTrustline  = ffm("api.endpoints.postRwaTrustline", "Creates a XUMM payload that opens an RWA token trust line")
	APIEndpointsSubmissions   = ffm("api.endpoints.getSubmissions", "Lists locally recorded submissions, most recent first")
	APIEndpointsHealth        = ffm("api.endpoints.getHealth", "Liveness check")
	APIEndpointsStatus        = ffm("api.endpoints.getStatus", "Gets the service status and the state of the ledger connection")
	APIEndpointsNetworkConfig = ffm("api.endpoints.getNetworkConfig", "Gets the ledger network the wallet should connect to")
)

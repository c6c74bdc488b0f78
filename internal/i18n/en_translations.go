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

package i18n

import "net/http"

var (
	MsgConfigFailed              = ffm("RPX10101", "Failed to read config")
	MsgJSONDecodeFailed          = ffm("RPX10102", "Failed to decode input JSON", http.StatusBadRequest)
	MsgAPIServerStartFailed      = ffm("RPX10103", "Unable to start listener on %s: %s")
	MsgTLSConfigFailed           = ffm("RPX10104", "Failed to initialize TLS configuration")
	MsgInvalidCAFile             = ffm("RPX10105", "Invalid CA certificates file")
	MsgResponseMarshalError      = ffm("RPX10106", "Failed to serialize response data", http.StatusBadRequest)
	Msg404NotFound               = ffm("RPX10107", "Not found", http.StatusNotFound)
	Msg404NoResult               = ffm("RPX10108", "No result found", http.StatusNotFound)
	MsgInvalidContentType        = ffm("RPX10109", "Invalid content type", http.StatusUnsupportedMediaType)
	MsgRequestTimeout            = ffm("RPX10110", "The request with id '%s' timed out after %.2fms", http.StatusRequestTimeout)
	MsgRateLimitExceeded         = ffm("RPX10111", "Rate limit exceeded (%s)", http.StatusTooManyRequests)
	MsgUnknownDatabasePlugin     = ffm("RPX10112", "Unknown database plugin '%s'")
	MsgMissingPluginConfig       = ffm("RPX10113", "Missing configuration '%s' for %s")
	MsgInvalidRequestTimeout     = ffm("RPX10114", "Invalid Request-Timeout header '%s'", http.StatusBadRequest)
	MsgContextCanceled           = ffm("RPX10115", "Context cancelled")
	MsgRetryExhausted            = ffm("RPX10116", "Gave up after %d attempts")
	MsgInitializationNilDepError = ffm("RPX10117", "Initialization failed in %s due to missing dependencies")
	MsgInvalidOutputOption       = ffm("RPX10118", "Invalid output option '%s'")
	MsgLedgerUnreachable         = ffm("RPX10120", "Ledger gateway unreachable: %s", http.StatusBadGateway)
	MsgLedgerRPCError            = ffm("RPX10121", "Ledger RPC error '%s': %s", http.StatusBadGateway)
	MsgLedgerTimeout             = ffm("RPX10122", "Ledger request '%s' timed out", http.StatusGatewayTimeout)
	MsgLedgerBadResponse         = ffm("RPX10123", "Invalid response from ledger for '%s'", http.StatusBadGateway)
	MsgLedgerNotReady            = ffm("RPX10124", "Ledger gateway is not ready")
	MsgLedgerSlotWait            = ffm("RPX10125", "Timed out waiting for a ledger request slot", http.StatusGatewayTimeout)
	MsgAccountNotFound           = ffm("RPX10126", "Account '%s' not found on ledger", http.StatusNotFound)
	MsgTransactionNotFound       = ffm("RPX10127", "Transaction '%s' not found", http.StatusNotFound)
	MsgInvalidAddress            = ffm("RPX10130", "Invalid XRPL classic address '%s'", http.StatusBadRequest)
	MsgInvalidAmount             = ffm("RPX10131", "Invalid amount '%s': must be a non-negative decimal", http.StatusBadRequest)
	MsgUnsupportedCurrency       = ffm("RPX10132", "Unsupported currency '%s'", http.StatusBadRequest)
	MsgInvalidCurrencyCode       = ffm("RPX10133", "Invalid currency code '%s'", http.StatusBadRequest)
	MsgInvalidTier               = ffm("RPX10134", "tier must be 'accredited' or 'local'", http.StatusBadRequest)
	MsgMissingAddress            = ffm("RPX10135", "Missing address", http.StatusBadRequest)
	MsgMissingTxBlob             = ffm("RPX10136", "Missing tx_blob in signed transaction", http.StatusBadRequest)
	MsgInvalidTxJSON             = ffm("RPX10137", "Invalid tx_json: %s", http.StatusBadRequest)
	MsgUnsupportedTxType         = ffm("RPX10138", "Unsupported transaction type '%s'", http.StatusBadRequest)
	MsgTxNotPayment              = ffm("RPX10139", "tx_json must be a Payment transaction", http.StatusBadRequest)
	MsgTxAccountNotIssuer        = ffm("RPX10140", "Account must be the configured issuer", http.StatusBadRequest)
	MsgTxAmountNotIssued         = ffm("RPX10141", "Amount must be an issued-currency object", http.StatusBadRequest)
	MsgTxIssuerMismatch          = ffm("RPX10142", "Amount issuer must match configured issuer", http.StatusBadRequest)
	MsgTxCurrencyNotAllowed      = ffm("RPX10143", "currency must be one of %s", http.StatusBadRequest)
	MsgInvalidLimit              = ffm("RPX10144", "Invalid limit '%s'", http.StatusBadRequest)
	MsgInvalidAmountField        = ffm("RPX10145", "Invalid amount field: %s", http.StatusBadRequest)
	MsgInvalidRWACode            = ffm("RPX10146", "code must be one of %s", http.StatusBadRequest)
	MsgMissingSignedTx           = ffm("RPX10147", "Missing signed_tx", http.StatusBadRequest)
	MsgInvalidInvoiceID          = ffm("RPX10148", "invoice_id must be 64 hex characters", http.StatusBadRequest)
	MsgInvalidTxHash             = ffm("RPX10149", "Invalid transaction hash '%s': must be 64 hex characters", http.StatusBadRequest)
	MsgMissingSigningCreds       = ffm("RPX10150", "Missing XUMM API key or secret. Set xumm.apiKey and xumm.apiSecret to enable signing payloads", http.StatusInternalServerError)
	MsgMissingIssuerSecret       = ffm("RPX10151", "Issuer secret not configured on server", http.StatusInternalServerError)
	MsgMissingCredentialIssuer   = ffm("RPX10152", "Credential issuer secret/address not configured", http.StatusInternalServerError)
	MsgInvalidConfiguredIssuer   = ffm("RPX10153", "Configured issuer '%s' for %s is not a valid XRPL classic address", http.StatusInternalServerError)
	MsgInvalidCredentialToken    = ffm("RPX10160", "Invalid credential admin token", http.StatusUnauthorized)
	MsgInvalidIssuerToken        = ffm("RPX10161", "Invalid issuer signing token", http.StatusUnauthorized)
	MsgGateDenied                = ffm("RPX10162", "Address '%s' is not permitted: %s", http.StatusForbidden)
	MsgSigningServiceError       = ffm("RPX10170", "Error from signing service: %s")
	MsgSigningServiceUnreachable = ffm("RPX10171", "Signing service unreachable: %s", http.StatusBadGateway)
	MsgSigningServiceTimeout     = ffm("RPX10172", "Signing service request timed out", http.StatusGatewayTimeout)
	MsgSigningServiceBadResponse = ffm("RPX10173", "Invalid response from signing service: %s", http.StatusBadGateway)
	MsgDBInitFailed              = ffm("RPX10180", "Database initialization failed")
	MsgDBQueryBuildFailed        = ffm("RPX10181", "Database query builder failed")
	MsgDBBeginFailed             = ffm("RPX10182", "Database begin transaction failed")
	MsgDBQueryFailed             = ffm("RPX10183", "Database query failed")
	MsgDBInsertFailed            = ffm("RPX10184", "Database insert failed")
	MsgDBUpdateFailed            = ffm("RPX10185", "Database update failed")
	MsgDBReadErr                 = ffm("RPX10186", "Database resultset read error from table '%s'")
	MsgDBCommitFailed            = ffm("RPX10187", "Database commit failed")
	MsgDBMigrationFailed         = ffm("RPX10188", "Database migration failed")
	MsgScanFailed                = ffm("RPX10189", "Failed to restore type '%T' into '%T'")
	MsgLocalRecordFailed         = ffm("RPX10190", "Submitted on ledger but failed to record locally: %s")
)

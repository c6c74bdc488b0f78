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

package credentials

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/metrics"
	"github.com/riplx/riplx/internal/submission"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/ledger"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/xrpl"
)

// FlagAccepted is set on a credential ledger entry once the subject has accepted it
const FlagAccepted = 0x00010000

const (
	ReasonCredentialAccepted = "Credential accepted on-ledger"
	ReasonOpenGate           = "Allowlist empty - gate open (temporary)"
	ReasonAllowlisted        = "Allowlisted address"
	ReasonDenied             = "Address not credential-accepted or allowlisted (demo gate)"
)

// Gate rules, as reported in metrics
const (
	RuleCredential = "credential"
	RuleOpenGate   = "open_gate"
	RuleAllowlist  = "allowlist"
	RuleDeny       = "deny"
)

type Verification struct {
	Allowed          bool   `json:"allowed"`
	Accepted         bool   `json:"accepted"`
	Level            int    `json:"level"`
	Reason           string `json:"reason"`
	AllowlistHit     bool   `json:"allowlist_hit"`
	OpenGate         bool   `json:"open_gate"`
	IssuerConfigured bool   `json:"issuer_configured"`
}

type Status struct {
	Subject        string `json:"subject"`
	Issuer         string `json:"issuer"`
	CredentialType string `json:"credential_type"`
	Accepted       bool   `json:"accepted"`
	RawFlags       *int64 `json:"raw_flags"`
	Message        string `json:"message"`
}

type Manager interface {
	// CheckAccepted is fail-closed: any lookup failure is logged, and reported as not accepted
	CheckAccepted(ctx context.Context, address, issuer, credentialType string) bool

	Verify(ctx context.Context, address string) (*Verification, error)
	Status(ctx context.Context, address string) (*Status, error)
	Create(ctx context.Context, adminToken, subject, uri string) (*submission.Result, error)
	GetRecord(ctx context.Context, subject string) (*rptypes.CredentialRecord, error)
}

type credentialManager struct {
	ledger     ledger.Plugin
	database   database.Plugin
	submission submission.Manager
	metrics    metrics.Manager

	issuerAddress  string
	issuerSecret   string
	credentialType string
	adminToken     string
	allowlist      map[string]bool
	openWhenEmpty  bool
}

func NewCredentialManager(ctx context.Context, li ledger.Plugin, di database.Plugin, sm submission.Manager, mm metrics.Manager) (Manager, error) {
	if li == nil || di == nil || sm == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError, "CredentialManager")
	}
	cm := &credentialManager{
		ledger:         li,
		database:       di,
		submission:     sm,
		metrics:        mm,
		issuerAddress:  config.GetString(config.CredentialsIssuerAddress),
		issuerSecret:   config.GetString(config.CredentialsIssuerSecret),
		credentialType: strings.ToUpper(config.GetString(config.CredentialsType)),
		adminToken:     config.GetString(config.CredentialsAdminToken),
		allowlist:      make(map[string]bool),
		openWhenEmpty:  config.GetBool(config.CredentialsOpenWhenAllowlistEmpty),
	}
	for _, address := range config.GetStringSlice(config.CredentialsAllowlist) {
		if address = strings.TrimSpace(address); address != "" {
			cm.allowlist[address] = true
		}
	}
	if cm.issuerAddress != "" && !xrpl.IsValidAddress(cm.issuerAddress) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidConfiguredIssuer, cm.issuerAddress, "credentials")
	}
	if len(cm.allowlist) == 0 && cm.openWhenEmpty {
		log.L(ctx).Warnf("Credential allowlist is empty and credentials.openWhenAllowlistEmpty is set: the gate is OPEN to every address")
	}
	return cm, nil
}

func (cm *credentialManager) lookup(ctx context.Context, address, issuer, credentialType string) (rptypes.JSONObject, error) {
	return cm.ledger.LedgerEntry(ctx, rptypes.JSONObject{
		"credential": map[string]interface{}{
			"subject":         address,
			"issuer":          issuer,
			"credential_type": credentialType,
		},
	})
}

func (cm *credentialManager) CheckAccepted(ctx context.Context, address, issuer, credentialType string) bool {
	entry, err := cm.lookup(ctx, address, issuer, credentialType)
	if err != nil {
		log.L(ctx).Warnf("Credential lookup failed for %s (treated as not accepted): %s", address, err)
		return false
	}
	if entry == nil {
		return false
	}
	return entry.GetInt64("Flags")&FlagAccepted != 0
}

func (cm *credentialManager) Verify(ctx context.Context, address string) (*Verification, error) {
	if address == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingAddress)
	}
	if !xrpl.IsValidAddress(address) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, address)
	}

	var v *Verification
	var rule string
	accepted := false
	if cm.issuerAddress != "" {
		accepted = cm.CheckAccepted(ctx, address, cm.issuerAddress, cm.credentialType)
	} else {
		log.L(ctx).Warnf("No credential issuer configured, skipping on-ledger credential check for %s", address)
	}
	switch {
	case accepted:
		rule = RuleCredential
		v = &Verification{Allowed: true, Accepted: true, Level: 1, Reason: ReasonCredentialAccepted}
	case len(cm.allowlist) == 0 && cm.openWhenEmpty:
		rule = RuleOpenGate
		log.L(ctx).Warnf("Gate open for %s: allowlist is empty", address)
		v = &Verification{Allowed: true, Level: 1, Reason: ReasonOpenGate, OpenGate: true}
	case cm.allowlist[address]:
		rule = RuleAllowlist
		v = &Verification{Allowed: true, Level: 1, Reason: ReasonAllowlisted, AllowlistHit: true}
	default:
		rule = RuleDeny
		v = &Verification{Allowed: false, Level: 0, Reason: ReasonDenied}
	}
	v.IssuerConfigured = cm.issuerAddress != ""
	cm.metrics.GateDecision(rule, v.Allowed)
	log.L(ctx).Debugf("Gate decision for %s: rule=%s allowed=%t", address, rule, v.Allowed)
	return v, nil
}

func (cm *credentialManager) Status(ctx context.Context, address string) (*Status, error) {
	if !xrpl.IsValidAddress(address) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, address)
	}
	if cm.issuerAddress == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingCredentialIssuer)
	}
	status := &Status{
		Subject:        address,
		Issuer:         cm.issuerAddress,
		CredentialType: cm.credentialType,
	}
	entry, err := cm.lookup(ctx, address, cm.issuerAddress, cm.credentialType)
	switch {
	case err != nil:
		status.Message = err.Error()
	case entry == nil:
		status.Message = "Credential not found"
	default:
		flags := entry.GetInt64("Flags")
		status.RawFlags = &flags
		status.Accepted = flags&FlagAccepted != 0
		status.Message = "Credential found"
	}
	return status, nil
}

func (cm *credentialManager) Create(ctx context.Context, adminToken, subject, uri string) (*submission.Result, error) {
	if cm.issuerAddress == "" || cm.issuerSecret == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingCredentialIssuer)
	}
	if cm.adminToken != "" && subtle.ConstantTimeCompare([]byte(adminToken), []byte(cm.adminToken)) != 1 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidCredentialToken)
	}
	if !xrpl.IsValidAddress(subject) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, subject)
	}

	var hexURI string
	if uri != "" {
		hexURI = xrpl.EncodeHexUpper(uri)
	}
	tx := xrpl.NewCredentialCreate(cm.issuerAddress, subject, cm.credentialType, hexURI)
	result, err := cm.submission.SubmitWithServerKey(ctx, rptypes.SubmissionKindCredentialCreate, tx, cm.issuerSecret, &submission.Policy{
		Signer: cm.issuerAddress,
	})
	if err != nil {
		return nil, err
	}

	record := &rptypes.CredentialRecord{
		Subject:        subject,
		Issuer:         cm.issuerAddress,
		CredentialType: cm.credentialType,
		TxHash:         result.TxID,
		EngineResult:   result.EngineResult,
		Submitted:      result.Submitted,
	}
	if err := cm.database.UpsertCredential(ctx, record); err != nil {
		log.L(ctx).Errorf("Failed to record credential for %s: %s", subject, err)
		result.LocalError = i18n.NewError(ctx, i18n.MsgLocalRecordFailed, err).Error()
	}
	return result, nil
}

func (cm *credentialManager) GetRecord(ctx context.Context, subject string) (*rptypes.CredentialRecord, error) {
	if !xrpl.IsValidAddress(subject) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAddress, subject)
	}
	return cm.database.GetCredential(ctx, subject)
}

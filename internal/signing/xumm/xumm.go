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

package xumm

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/internal/log"
	"github.com/riplx/riplx/internal/restclient"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/signing"
	"github.com/riplx/riplx/pkg/xrpl"
)

type Xumm struct {
	ctx       context.Context
	client    *resty.Client
	apiKey    string
	apiSecret string
}

type payloadOptions struct {
	Submit bool `json:"submit"`
}

type payloadRequest struct {
	TxJSON  xrpl.Transaction `json:"txjson"`
	Options payloadOptions   `json:"options"`
}

func (x *Xumm) Name() string {
	return "xumm"
}

func (x *Xumm) Init(ctx context.Context, prefix config.Prefix) error {
	x.ctx = log.WithLogField(ctx, "signing", "xumm")
	x.apiKey = prefix.GetString(XummConfigAPIKey)
	x.apiSecret = prefix.GetString(XummConfigAPISecret)
	if x.apiKey == "" || x.apiSecret == "" {
		log.L(x.ctx).Warnf("XUMM API key or secret not configured. Signing payloads are disabled")
	}
	x.client = restclient.New(x.ctx, prefix)
	return nil
}

func (x *Xumm) request(ctx context.Context) (*resty.Request, error) {
	if x.apiKey == "" || x.apiSecret == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingSigningCreds)
	}
	return x.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", x.apiKey).
		SetHeader("X-API-Secret", x.apiSecret), nil
}

func (x *Xumm) wrapError(ctx context.Context, res *resty.Response, err error) error {
	if err != nil {
		if restclient.IsTimeout(ctx, err) {
			return i18n.WrapError(ctx, err, i18n.MsgSigningServiceTimeout)
		}
		return restclient.WrapRestErr(ctx, res, err, i18n.MsgSigningServiceUnreachable)
	}
	// Upstream failures are passed back with their own status, and the body preserved
	return i18n.NewStatusError(ctx, res.StatusCode(), i18n.MsgSigningServiceError, res.String())
}

// renderExpiry accepts the ledger epoch seconds used by payload creation, or a timestamp string
func renderExpiry(v interface{}) string {
	switch vt := v.(type) {
	case float64:
		return xrpl.DecodeEpoch(int64(vt))
	case json.Number:
		i, err := vt.Int64()
		if err != nil {
			return vt.String()
		}
		return xrpl.DecodeEpoch(i)
	case string:
		return vt
	default:
		return ""
	}
}

func (x *Xumm) CreatePayload(ctx context.Context, tx xrpl.Transaction, submit bool) (*signing.Payload, error) {
	req, err := x.request(ctx)
	if err != nil {
		return nil, err
	}
	var data rptypes.JSONObject
	res, err := req.
		SetBody(&payloadRequest{
			TxJSON:  tx,
			Options: payloadOptions{Submit: submit},
		}).
		SetResult(&data).
		Post("/payload")
	if err != nil || !res.IsSuccess() {
		return nil, x.wrapError(ctx, res, err)
	}
	uuid := data.GetString("uuid")
	if uuid == "" {
		return nil, i18n.NewError(ctx, i18n.MsgSigningServiceBadResponse, res.String())
	}
	next := data.GetObject("next")
	nextURL := next.GetString("always")
	if nextURL == "" {
		nextURL = next.GetString("no_redirect")
	}
	payload := &signing.Payload{
		UUID:      uuid,
		NextURL:   nextURL,
		QRURL:     data.GetObject("refs").GetString("qr_png"),
		ExpiresAt: renderExpiry(data["expires_at"]),
	}
	if pushed, ok := data["pushed"].(bool); ok {
		payload.Pushed = &pushed
	}
	log.L(ctx).Infof("Created %s signing payload %s (submit=%t)", tx.Type(), uuid, submit)
	return payload, nil
}

func (x *Xumm) PayloadStatus(ctx context.Context, uuid string) (*signing.PayloadStatus, error) {
	req, err := x.request(ctx)
	if err != nil {
		return nil, err
	}
	var data rptypes.JSONObject
	res, err := req.
		SetPathParam("uuid", uuid).
		SetResult(&data).
		Get("/payload/{uuid}")
	if err != nil || !res.IsSuccess() {
		return nil, x.wrapError(ctx, res, err)
	}
	meta := data.GetObject("meta")
	response := data.GetObject("response")
	return &signing.PayloadStatus{
		UUID:      uuid,
		Signed:    meta.GetBool("signed"),
		Resolved:  meta.GetBool("resolved"),
		Account:   response.GetString("account"),
		TxID:      response.GetString("txid"),
		Hex:       response.GetString("hex"),
		ExpiresAt: renderExpiry(meta["expires_at"]),
	}, nil
}

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

package payloads

import (
	"context"
	"fmt"
	"testing"

	"github.com/riplx/riplx/internal/config"
	"github.com/riplx/riplx/internal/txprep"
	"github.com/riplx/riplx/mocks/databasemocks"
	"github.com/riplx/riplx/mocks/metricsmocks"
	"github.com/riplx/riplx/mocks/signingmocks"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/riplx/riplx/pkg/signing"
	"github.com/riplx/riplx/pkg/xrpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testDest   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testIssuer = "rQhWct2fv4Vc4KRjRgMrxa8xPN9Zx9iLKV"
	rlusdHex   = "524C555344000000000000000000000000000000"
)

func newTestPayloads(t *testing.T) (*payloadManager, *signingmocks.Plugin, *databasemocks.Plugin, *metricsmocks.Manager) {
	config.Reset()
	ctx := context.Background()
	tp, err := txprep.NewTransactionPreparer(ctx)
	assert.NoError(t, err)
	msi := &signingmocks.Plugin{}
	mdi := &databasemocks.Plugin{}
	mmi := &metricsmocks.Manager{}
	rag := mdi.On("RunAsGroup", mock.Anything, mock.Anything).Maybe()
	rag.RunFn = func(a mock.Arguments) {
		rag.ReturnArguments = mock.Arguments{
			a[1].(func(context.Context) error)(a[0].(context.Context)),
		}
	}
	pm, err := NewPayloadManager(ctx, msi, mdi, tp, mmi)
	assert.NoError(t, err)
	return pm.(*payloadManager), msi, mdi, mmi
}

func TestNewPayloadManagerMissingDeps(t *testing.T) {
	_, err := NewPayloadManager(context.Background(), nil, nil, nil, nil)
	assert.Regexp(t, "RPX10117", err)
}

func TestPaymentPayload(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("CreatePayload", mock.Anything, mock.MatchedBy(func(tx xrpl.Transaction) bool {
		p := tx.(*xrpl.Payment)
		return p.Destination == testDest && p.Amount.Issued.Currency == rlusdHex && p.Amount.Issued.Issuer == testIssuer && p.Amount.Issued.Value == "5"
	}), true).Return(&signing.Payload{UUID: "u1", NextURL: "https://xumm.app/sign/u1"}, nil)
	mmi.On("PayloadCreated", rptypes.PayloadKindPayment).Return()
	mdi.On("UpsertPayload", mock.Anything, &rptypes.PayloadRecord{
		UUID:     "u1",
		Kind:     rptypes.PayloadKindPayment,
		Currency: rlusdHex,
		Issuer:   testIssuer,
	}).Return(nil)

	p, err := pm.PaymentPayload(context.Background(), testDest, "5")
	assert.NoError(t, err)
	assert.Equal(t, "u1", p.UUID)
	msi.AssertExpectations(t)
	mdi.AssertExpectations(t)
	mmi.AssertExpectations(t)
}

func TestPaymentPayloadBadDestination(t *testing.T) {
	pm, msi, _, _ := newTestPayloads(t)
	_, err := pm.PaymentPayload(context.Background(), "bad", "5")
	assert.Regexp(t, "RPX10130", err)
	msi.AssertNotCalled(t, "CreatePayload", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrustlinePayload(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("CreatePayload", mock.Anything, mock.MatchedBy(func(tx xrpl.Transaction) bool {
		ts := tx.(*xrpl.TrustSet)
		return ts.Flags == 131072 && ts.LimitAmount.Issued.Value == "1000000000" && ts.LimitAmount.Issued.Currency == rlusdHex
	}), true).Return(&signing.Payload{UUID: "u2"}, nil)
	mmi.On("PayloadCreated", rptypes.PayloadKindTrustline).Return()
	mdi.On("UpsertPayload", mock.Anything, mock.Anything).Return(fmt.Errorf("not fatal"))

	p, err := pm.TrustlinePayload(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "u2", p.UUID)
}

func TestTrustlinePayloadBadIssuer(t *testing.T) {
	pm, _, _, _ := newTestPayloads(t)
	config.Set(config.RLUSDIssuer, "bad")
	tp, err := txprep.NewTransactionPreparer(context.Background())
	assert.NoError(t, err)
	pm.preparer = tp
	_, err = pm.TrustlinePayload(context.Background())
	assert.Regexp(t, "RPX10153", err)
}

func TestSignInPayload(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("CreatePayload", mock.Anything, xrpl.NewSignIn(), false).Return(&signing.Payload{UUID: "u3"}, nil)
	mmi.On("PayloadCreated", rptypes.PayloadKindSignIn).Return()
	mdi.On("UpsertPayload", mock.Anything, &rptypes.PayloadRecord{UUID: "u3", Kind: rptypes.PayloadKindSignIn}).Return(nil)

	p, err := pm.SignInPayload(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "u3", p.UUID)
}

func TestCreateSigningFail(t *testing.T) {
	pm, msi, mdi, _ := newTestPayloads(t)
	msi.On("CreatePayload", mock.Anything, mock.Anything, false).Return(nil, fmt.Errorf("pop"))
	_, err := pm.SignInPayload(context.Background())
	assert.Regexp(t, "pop", err)
	mdi.AssertNotCalled(t, "UpsertPayload", mock.Anything, mock.Anything)
}

func TestStatusSignedTrustline(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("PayloadStatus", mock.Anything, "u2").Return(&signing.PayloadStatus{
		UUID:    "u2",
		Signed:  true,
		Account: testDest,
		TxID:    "TX1",
	}, nil)
	mdi.On("GetPayload", mock.Anything, "u2").Return(&rptypes.PayloadRecord{
		UUID:     "u2",
		Kind:     rptypes.PayloadKindRWATrustline,
		Currency: "5257414143430000000000000000000000000000",
		Issuer:   testIssuer,
	}, nil)
	mdi.On("UpsertPayload", mock.Anything, mock.MatchedBy(func(p *rptypes.PayloadRecord) bool {
		return p.Signed && p.Account == testDest && p.TxID == "TX1"
	})).Return(nil)
	mdi.On("UpsertTrustlineMarker", mock.Anything, &rptypes.TrustlineMarker{
		Account:     testDest,
		Currency:    "5257414143430000000000000000000000000000",
		Issuer:      testIssuer,
		PayloadUUID: "u2",
	}).Return(nil)
	mmi.On("PayloadSigned", rptypes.PayloadKindRWATrustline).Return()

	s, err := pm.Status(context.Background(), "u2")
	assert.NoError(t, err)
	assert.True(t, s.Signed)
	mdi.AssertExpectations(t)
	mmi.AssertExpectations(t)
}

func TestStatusSignedAlreadyRecorded(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("PayloadStatus", mock.Anything, "u1").Return(&signing.PayloadStatus{UUID: "u1", Signed: true}, nil)
	mdi.On("GetPayload", mock.Anything, "u1").Return(&rptypes.PayloadRecord{UUID: "u1", Signed: true}, nil)

	_, err := pm.Status(context.Background(), "u1")
	assert.NoError(t, err)
	mdi.AssertNotCalled(t, "UpsertPayload", mock.Anything, mock.Anything)
	mmi.AssertNotCalled(t, "PayloadSigned", mock.Anything)
}

func TestStatusSignedPaymentNoMarker(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("PayloadStatus", mock.Anything, "u1").Return(&signing.PayloadStatus{UUID: "u1", Signed: true, Account: testDest}, nil)
	mdi.On("GetPayload", mock.Anything, "u1").Return(&rptypes.PayloadRecord{UUID: "u1", Kind: rptypes.PayloadKindPayment}, nil)
	mdi.On("UpsertPayload", mock.Anything, mock.Anything).Return(nil)
	mmi.On("PayloadSigned", rptypes.PayloadKindPayment).Return()

	_, err := pm.Status(context.Background(), "u1")
	assert.NoError(t, err)
	mdi.AssertNotCalled(t, "UpsertTrustlineMarker", mock.Anything, mock.Anything)
}

func TestStatusRecordFailureNotFatal(t *testing.T) {
	pm, msi, mdi, mmi := newTestPayloads(t)
	msi.On("PayloadStatus", mock.Anything, "u2").Return(&signing.PayloadStatus{UUID: "u2", Signed: true, Account: testDest}, nil)
	mdi.On("GetPayload", mock.Anything, "u2").Return(&rptypes.PayloadRecord{UUID: "u2", Kind: rptypes.PayloadKindTrustline}, nil)
	mdi.On("UpsertPayload", mock.Anything, mock.Anything).Return(nil)
	mdi.On("UpsertTrustlineMarker", mock.Anything, mock.Anything).Return(fmt.Errorf("pop"))

	s, err := pm.Status(context.Background(), "u2")
	assert.NoError(t, err)
	assert.True(t, s.Signed)
	mmi.AssertNotCalled(t, "PayloadSigned", mock.Anything)
}

func TestStatusUnsignedAndUnknown(t *testing.T) {
	pm, msi, mdi, _ := newTestPayloads(t)
	msi.On("PayloadStatus", mock.Anything, "u1").Return(&signing.PayloadStatus{UUID: "u1"}, nil)
	msi.On("PayloadStatus", mock.Anything, "u9").Return(&signing.PayloadStatus{UUID: "u9", Signed: true}, nil)
	msi.On("PayloadStatus", mock.Anything, "u0").Return(nil, fmt.Errorf("pop"))
	mdi.On("GetPayload", mock.Anything, "u9").Return(nil, nil)

	s, err := pm.Status(context.Background(), "u1")
	assert.NoError(t, err)
	assert.False(t, s.Signed)

	_, err = pm.Status(context.Background(), "u9")
	assert.NoError(t, err)

	_, err = pm.Status(context.Background(), "u0")
	assert.Regexp(t, "pop", err)
	mdi.AssertNotCalled(t, "UpsertPayload", mock.Anything, mock.Anything)
}

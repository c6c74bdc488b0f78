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

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestExpand(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := Expand(ctx, MsgInvalidAddress, "rBad")
	assert.Equal(t, "Invalid XRPL classic address 'rBad'", str)
}

func TestExpandWithCode(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := ExpandWithCode(ctx, MsgLedgerUnreachable, "pop")
	assert.Equal(t, "RPX10120: Ledger gateway unreachable: pop", str)
}

func TestExpandDefaultLang(t *testing.T) {
	SetLang("fr")
	str := Expand(context.Background(), MsgMissingAddress)
	assert.Equal(t, "Missing address", str)
	SetLang("en")
}

func TestGetStatusHint(t *testing.T) {
	code, ok := GetStatusHint(string(MsgInvalidAddress))
	assert.True(t, ok)
	assert.Equal(t, 400, code)

	_, ok = GetStatusHint(string(MsgConfigFailed))
	assert.False(t, ok)
}

func TestDuplicateKey(t *testing.T) {
	ffm("RPX99999", "test1")
	assert.Panics(t, func() {
		ffm("RPX99999", "test2")
	})
}

func TestNewError(t *testing.T) {
	err := NewError(context.Background(), MsgInvalidAmount, "-1")
	assert.EqualError(t, err, "RPX10131: Invalid amount '-1': must be a non-negative decimal")
}

func TestWrapError(t *testing.T) {
	err := WrapError(context.Background(), fmt.Errorf("pop"), MsgLedgerUnreachable, "http://localhost:5005")
	assert.Regexp(t, "RPX10120.*pop", err)
}

func TestNewStatusError(t *testing.T) {
	err := NewStatusError(context.Background(), 409, MsgSigningServiceError, "conflict")
	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, 409, se.HTTPStatus())
	assert.Regexp(t, "RPX10170", se.Unwrap())
}

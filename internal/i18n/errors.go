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

	"github.com/pkg/errors"
)

// StatusError is an error that carries an explicit HTTP status, overriding the
// status hint of its message code. Used to pass through upstream statuses.
type StatusError struct {
	error
	status int
}

func (se *StatusError) HTTPStatus() int {
	return se.status
}

func (se *StatusError) Unwrap() error {
	return se.error
}

// NewError creates a new error
func NewError(ctx context.Context, msg MessageKey, inserts ...interface{}) error {
	return errors.New(ExpandWithCode(ctx, msg, inserts...))
}

// WrapError wraps an error
func WrapError(ctx context.Context, err error, msg MessageKey, inserts ...interface{}) error {
	return errors.Wrap(err, ExpandWithCode(ctx, msg, inserts...))
}

// NewStatusError creates a new error that will be reported with the supplied HTTP status
func NewStatusError(ctx context.Context, status int, msg MessageKey, inserts ...interface{}) error {
	return &StatusError{
		error:  NewError(ctx, msg, inserts...),
		status: status,
	}
}

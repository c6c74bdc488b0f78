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

package sqlcommon

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
)

func TestTrustlineMarkersE2EWithDB(t *testing.T) {
	s := newSQLiteTestProvider(t)
	defer s.Close()
	ctx := context.Background()

	marker := &rptypes.TrustlineMarker{
		Account:     testAccount,
		Currency:    "524C555344000000000000000000000000000000",
		Issuer:      testDestination,
		PayloadUUID: "u1",
	}
	err := s.UpsertTrustlineMarker(ctx, marker)
	assert.NoError(t, err)
	created := marker.Created.UnixNano()

	err = s.UpsertTrustlineMarker(ctx, &rptypes.TrustlineMarker{
		Account:     testAccount,
		Currency:    "524C555344000000000000000000000000000000",
		Issuer:      testDestination,
		PayloadUUID: "u2",
	})
	assert.NoError(t, err)

	tm, err := s.GetTrustlineMarker(ctx, testAccount, "524C555344000000000000000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, "u2", tm.PayloadUUID)
	assert.Equal(t, created, tm.Created.UnixNano())

	tm, err = s.GetTrustlineMarker(ctx, testAccount, "USD")
	assert.NoError(t, err)
	assert.Nil(t, tm)
}

func TestUpsertTrustlineMarkerFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.UpsertTrustlineMarker(context.Background(), &rptypes.TrustlineMarker{})
	assert.Regexp(t, "RPX10182", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTrustlineMarkerFailSelect(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.UpsertTrustlineMarker(context.Background(), &rptypes.TrustlineMarker{})
	assert.Regexp(t, "RPX10183", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTrustlineMarkerFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.UpsertTrustlineMarker(context.Background(), &rptypes.TrustlineMarker{})
	assert.Regexp(t, "RPX10184", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTrustlineMarkerFailUpdate(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows(trustlineMarkerColumns).
		AddRow(testAccount, "USD", testDestination, "u1", int64(1000000000)))
	mock.ExpectExec("UPDATE .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.UpsertTrustlineMarker(context.Background(), &rptypes.TrustlineMarker{Account: testAccount, Currency: "USD"})
	assert.Regexp(t, "RPX10185", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrustlineMarkerReadFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"account"}).AddRow(testAccount))
	_, err := s.GetTrustlineMarker(context.Background(), testAccount, "USD")
	assert.Regexp(t, "RPX10186", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

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
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/rptypes"
	"github.com/stretchr/testify/assert"
)

const (
	testAccount     = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testDestination = "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe"
)

func TestSubmissionsE2EWithDB(t *testing.T) {
	s := newSQLiteTestProvider(t)
	defer s.Close()
	ctx := context.Background()

	blob := &rptypes.SubmissionRecord{
		Kind:         rptypes.SubmissionKindBlob,
		TxHash:       "ABCD",
		Account:      testAccount,
		EngineResult: "tesSUCCESS",
		Submitted:    true,
		Message:      "Transaction submitted to XRPL",
	}
	err := s.InsertSubmission(ctx, blob)
	assert.NoError(t, err)
	assert.NotNil(t, blob.ID)
	assert.NotNil(t, blob.Created)

	mint := &rptypes.SubmissionRecord{
		Kind:         rptypes.SubmissionKindRWAMint,
		Account:      "rIssuer",
		Destination:  testAccount,
		EngineResult: "tecNO_LINE",
	}
	err = s.InsertSubmission(ctx, mint)
	assert.NoError(t, err)

	other := &rptypes.SubmissionRecord{
		Kind:    rptypes.SubmissionKindBlob,
		Account: testDestination,
	}
	err = s.InsertSubmission(ctx, other)
	assert.NoError(t, err)

	all, err := s.GetSubmissions(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, *other.ID, *all[0].ID)

	forAccount, err := s.GetSubmissions(ctx, &database.SubmissionFilter{Account: testAccount})
	assert.NoError(t, err)
	assert.Len(t, forAccount, 2)
	assert.Equal(t, rptypes.SubmissionKindRWAMint, forAccount[0].Kind)
	assert.False(t, forAccount[0].Submitted)
	assert.Equal(t, "ABCD", forAccount[1].TxHash)
	assert.True(t, forAccount[1].Submitted)
	assert.Equal(t, blob.Created.UnixNano(), forAccount[1].Created.UnixNano())

	limited, err := s.GetSubmissions(ctx, &database.SubmissionFilter{Kind: rptypes.SubmissionKindBlob, Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
	assert.Equal(t, testDestination, limited[0].Account)
}

func TestInsertSubmissionFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertSubmission(context.Background(), &rptypes.SubmissionRecord{})
	assert.Regexp(t, "RPX10182", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSubmissionFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertSubmission(context.Background(), &rptypes.SubmissionRecord{})
	assert.Regexp(t, "RPX10184", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSubmissionFailCommit(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertSubmission(context.Background(), &rptypes.SubmissionRecord{})
	assert.Regexp(t, "RPX10187", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubmissionsQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetSubmissions(context.Background(), &database.SubmissionFilter{Account: testAccount})
	assert.Regexp(t, "RPX10183", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubmissionsReadFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetSubmissions(context.Background(), nil)
	assert.Regexp(t, "RPX10186", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

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
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/pkg/database"
	"github.com/riplx/riplx/pkg/rptypes"
)

var (
	submissionColumns = []string{
		"id",
		"kind",
		"tx_hash",
		"account",
		"destination",
		"engine_result",
		"submitted",
		"message",
		"created",
	}
)

const submissionsTable = "submissions"

func (s *SQLCommon) InsertSubmission(ctx context.Context, submission *rptypes.SubmissionRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if submission.ID == nil {
		submission.ID = rptypes.NewUUID()
	}
	if submission.Created == nil {
		submission.Created = rptypes.Now()
	}
	if _, err = s.insertTx(ctx, tx,
		sq.Insert(submissionsTable).
			Columns(submissionColumns...).
			Values(
				submission.ID,
				string(submission.Kind),
				submission.TxHash,
				submission.Account,
				submission.Destination,
				submission.EngineResult,
				submission.Submitted,
				submission.Message,
				submission.Created,
			),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) submissionResult(ctx context.Context, row *sql.Rows) (*rptypes.SubmissionRecord, error) {
	var submission rptypes.SubmissionRecord
	var kind string
	submission.ID = &uuid.UUID{}
	submission.Created = &rptypes.RPTime{}
	err := row.Scan(
		submission.ID,
		&kind,
		&submission.TxHash,
		&submission.Account,
		&submission.Destination,
		&submission.EngineResult,
		&submission.Submitted,
		&submission.Message,
		submission.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, submissionsTable)
	}
	submission.Kind = rptypes.SubmissionKind(kind)
	return &submission, nil
}

func (s *SQLCommon) GetSubmissions(ctx context.Context, filter *database.SubmissionFilter) (submissions []*rptypes.SubmissionRecord, err error) {
	query := sq.Select(submissionColumns...).From(submissionsTable)
	if filter != nil {
		if filter.Account != "" {
			query = query.Where(sq.Or{
				sq.Eq{"account": filter.Account},
				sq.Eq{"destination": filter.Account},
			})
		}
		if filter.Kind != "" {
			query = query.Where(sq.Eq{"kind": string(filter.Kind)})
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
	}
	query = query.OrderBy(sequenceColumn + " DESC")

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions = []*rptypes.SubmissionRecord{}
	for rows.Next() {
		submission, err := s.submissionResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}
	return submissions, nil
}

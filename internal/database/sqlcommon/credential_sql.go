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
	"github.com/riplx/riplx/internal/i18n"
	"github.com/riplx/riplx/pkg/rptypes"
)

var (
	credentialColumns = []string{
		"subject",
		"issuer",
		"credential_type",
		"tx_hash",
		"engine_result",
		"submitted",
		"created",
		"updated",
	}
)

const credentialsTable = "credentials"

func (s *SQLCommon) UpsertCredential(ctx context.Context, credential *rptypes.CredentialRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	existing, err := s.getCredential(ctx, tx, credential.Subject)
	if err != nil {
		return err
	}

	credential.Updated = rptypes.Now()
	if existing != nil {
		credential.Created = existing.Created
		if err = s.updateTx(ctx, tx,
			sq.Update(credentialsTable).
				Set("issuer", credential.Issuer).
				Set("credential_type", credential.CredentialType).
				Set("tx_hash", credential.TxHash).
				Set("engine_result", credential.EngineResult).
				Set("submitted", credential.Submitted).
				Set("updated", credential.Updated).
				Where(sq.Eq{"subject": credential.Subject}),
		); err != nil {
			return err
		}
	} else {
		if credential.Created == nil {
			credential.Created = credential.Updated
		}
		if _, err = s.insertTx(ctx, tx,
			sq.Insert(credentialsTable).
				Columns(credentialColumns...).
				Values(
					credential.Subject,
					credential.Issuer,
					credential.CredentialType,
					credential.TxHash,
					credential.EngineResult,
					credential.Submitted,
					credential.Created,
					credential.Updated,
				),
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) credentialResult(ctx context.Context, row *sql.Rows) (*rptypes.CredentialRecord, error) {
	credential := rptypes.CredentialRecord{
		Created: &rptypes.RPTime{},
		Updated: &rptypes.RPTime{},
	}
	err := row.Scan(
		&credential.Subject,
		&credential.Issuer,
		&credential.CredentialType,
		&credential.TxHash,
		&credential.EngineResult,
		&credential.Submitted,
		credential.Created,
		credential.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, credentialsTable)
	}
	return &credential, nil
}

func (s *SQLCommon) getCredential(ctx context.Context, tx *txWrapper, subject string) (*rptypes.CredentialRecord, error) {
	rows, err := s.queryTx(ctx, tx,
		sq.Select(credentialColumns...).
			From(credentialsTable).
			Where(sq.Eq{"subject": subject}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return s.credentialResult(ctx, rows)
}

func (s *SQLCommon) GetCredential(ctx context.Context, subject string) (*rptypes.CredentialRecord, error) {
	return s.getCredential(ctx, nil, subject)
}

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
	payloadColumns = []string{
		"uuid",
		"kind",
		"currency",
		"issuer",
		"signed",
		"account",
		"txid",
		"created",
		"updated",
	}
)

const payloadsTable = "payloads"

func (s *SQLCommon) UpsertPayload(ctx context.Context, payload *rptypes.PayloadRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	existing, err := s.getPayload(ctx, tx, payload.UUID)
	if err != nil {
		return err
	}

	payload.Updated = rptypes.Now()
	if existing != nil {
		payload.Created = existing.Created
		if err = s.updateTx(ctx, tx,
			sq.Update(payloadsTable).
				Set("kind", string(payload.Kind)).
				Set("currency", payload.Currency).
				Set("issuer", payload.Issuer).
				Set("signed", payload.Signed).
				Set("account", payload.Account).
				Set("txid", payload.TxID).
				Set("updated", payload.Updated).
				Where(sq.Eq{"uuid": payload.UUID}),
		); err != nil {
			return err
		}
	} else {
		if payload.Created == nil {
			payload.Created = payload.Updated
		}
		if _, err = s.insertTx(ctx, tx,
			sq.Insert(payloadsTable).
				Columns(payloadColumns...).
				Values(
					payload.UUID,
					string(payload.Kind),
					payload.Currency,
					payload.Issuer,
					payload.Signed,
					payload.Account,
					payload.TxID,
					payload.Created,
					payload.Updated,
				),
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) payloadResult(ctx context.Context, row *sql.Rows) (*rptypes.PayloadRecord, error) {
	payload := rptypes.PayloadRecord{
		Created: &rptypes.RPTime{},
		Updated: &rptypes.RPTime{},
	}
	var kind string
	err := row.Scan(
		&payload.UUID,
		&kind,
		&payload.Currency,
		&payload.Issuer,
		&payload.Signed,
		&payload.Account,
		&payload.TxID,
		payload.Created,
		payload.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, payloadsTable)
	}
	payload.Kind = rptypes.PayloadKind(kind)
	return &payload, nil
}

func (s *SQLCommon) getPayload(ctx context.Context, tx *txWrapper, uuid string) (*rptypes.PayloadRecord, error) {
	rows, err := s.queryTx(ctx, tx,
		sq.Select(payloadColumns...).
			From(payloadsTable).
			Where(sq.Eq{"uuid": uuid}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return s.payloadResult(ctx, rows)
}

func (s *SQLCommon) GetPayload(ctx context.Context, uuid string) (*rptypes.PayloadRecord, error) {
	return s.getPayload(ctx, nil, uuid)
}

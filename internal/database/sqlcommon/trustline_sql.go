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
	trustlineMarkerColumns = []string{
		"account",
		"currency",
		"issuer",
		"payload_uuid",
		"created",
	}
)

const trustlineMarkersTable = "trustline_markers"

func (s *SQLCommon) UpsertTrustlineMarker(ctx context.Context, marker *rptypes.TrustlineMarker) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	existing, err := s.getTrustlineMarker(ctx, tx, marker.Account, marker.Currency)
	if err != nil {
		return err
	}

	if existing != nil {
		marker.Created = existing.Created
		if err = s.updateTx(ctx, tx,
			sq.Update(trustlineMarkersTable).
				Set("issuer", marker.Issuer).
				Set("payload_uuid", marker.PayloadUUID).
				Where(sq.Eq{
					"account":  marker.Account,
					"currency": marker.Currency,
				}),
		); err != nil {
			return err
		}
	} else {
		if marker.Created == nil {
			marker.Created = rptypes.Now()
		}
		if _, err = s.insertTx(ctx, tx,
			sq.Insert(trustlineMarkersTable).
				Columns(trustlineMarkerColumns...).
				Values(
					marker.Account,
					marker.Currency,
					marker.Issuer,
					marker.PayloadUUID,
					marker.Created,
				),
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) trustlineMarkerResult(ctx context.Context, row *sql.Rows) (*rptypes.TrustlineMarker, error) {
	marker := rptypes.TrustlineMarker{
		Created: &rptypes.RPTime{},
	}
	err := row.Scan(
		&marker.Account,
		&marker.Currency,
		&marker.Issuer,
		&marker.PayloadUUID,
		marker.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, trustlineMarkersTable)
	}
	return &marker, nil
}

func (s *SQLCommon) getTrustlineMarker(ctx context.Context, tx *txWrapper, account, currency string) (*rptypes.TrustlineMarker, error) {
	rows, err := s.queryTx(ctx, tx,
		sq.Select(trustlineMarkerColumns...).
			From(trustlineMarkersTable).
			Where(sq.Eq{
				"account":  account,
				"currency": currency,
			}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return s.trustlineMarkerResult(ctx, rows)
}

func (s *SQLCommon) GetTrustlineMarker(ctx context.Context, account, currency string) (*rptypes.TrustlineMarker, error) {
	return s.getTrustlineMarker(ctx, nil, account, currency)
}

/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
)

// BlobStore keeps attachment payloads in a BYTEA column.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore creates a BlobStore on db. The schema must exist, see EnsureSchema.
func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Put inserts or replaces the payload stored under key.
func (s *BlobStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	query, args, err := dialect.Insert(blobTable).
		Rows(goqu.Record{"key": key, "content_type": contentType, "data": data}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"content_type": goqu.L("EXCLUDED.content_type"),
			"data":         goqu.L("EXCLUDED.data"),
			"updated_at":   goqu.L("NOW()"),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("writing attachment", err)
	}
	return nil
}

// Get returns the content type and payload stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) (string, []byte, error) {
	query, args, err := dialect.From(blobTable).
		Select("content_type", "data").
		Where(goqu.C("key").Eq(key)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, err
	}
	var contentType string
	var data []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&contentType, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, common.NewErrNotFound(key)
		}
		return "", nil, mapError("reading attachment", err)
	}
	return contentType, data, nil
}

// Delete removes the payload stored under key.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	query, args, err := dialect.Delete(blobTable).
		Where(goqu.C("key").Eq(key)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	return execExpectingRow(ctx, s.db, "deleting attachment", key, query, args)
}

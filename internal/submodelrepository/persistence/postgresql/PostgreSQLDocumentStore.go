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

// DocumentStore keeps one JSONB document per submodel id.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a DocumentStore on db. The schema must exist, see EnsureSchema.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Get returns the document of id.
func (s *DocumentStore) Get(ctx context.Context, id string) ([]byte, error) {
	query, args, err := dialect.From(documentTable).
		Select("document").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	var doc []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewErrNotFound(id)
		}
		return nil, mapError("reading document", err)
	}
	return doc, nil
}

// Put inserts or replaces the document of id.
func (s *DocumentStore) Put(ctx context.Context, id string, doc []byte) error {
	query, args, err := dialect.Insert(documentTable).
		Rows(goqu.Record{"id": id, "document": string(doc)}).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"document":   goqu.L("EXCLUDED.document"),
			"updated_at": goqu.L("NOW()"),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("writing document", err)
	}
	return nil
}

// Delete removes the document of id.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	query, args, err := dialect.Delete(documentTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	return execExpectingRow(ctx, s.db, "deleting document", id, query, args)
}

// List returns all document ids in ascending order.
func (s *DocumentStore) List(ctx context.Context) ([]string, error) {
	query, args, err := dialect.From(documentTable).
		Select("id").
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("listing documents", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError("listing documents", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("listing documents", err)
	}
	return ids, nil
}

func execExpectingRow(ctx context.Context, db *sql.DB, what string, key string, query string, args []interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(what, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(what, err)
	}
	if affected == 0 {
		return common.NewErrNotFound(key)
	}
	return nil
}

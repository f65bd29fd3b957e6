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
	"database/sql/driver"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestDocumentStoreGet(t *testing.T) {
	db, mock := newMock(t)
	sut := NewDocumentStore(db)

	mock.ExpectQuery(`SELECT "document" FROM "submodel_document" WHERE`).
		WithArgs("sm-1").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(`{"submodel":{}}`)))
	mock.ExpectQuery(`SELECT "document" FROM "submodel_document" WHERE`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	doc, err := sut.Get(context.Background(), "sm-1")
	require.NoError(t, err)
	assert.Equal(t, `{"submodel":{}}`, string(doc))

	_, err = sut.Get(context.Background(), "missing")
	assert.True(t, common.IsErrNotFound(err))
}

func TestDocumentStorePutUpserts(t *testing.T) {
	db, mock := newMock(t)
	sut := NewDocumentStore(db)

	mock.ExpectExec(`INSERT INTO "submodel_document" .* ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, sut.Put(context.Background(), "sm-1", []byte(`{}`)))
}

func TestDocumentStoreDelete(t *testing.T) {
	db, mock := newMock(t)
	sut := NewDocumentStore(db)

	mock.ExpectExec(`DELETE FROM "submodel_document" WHERE`).
		WithArgs("sm-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "submodel_document" WHERE`).
		WithArgs("sm-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, sut.Delete(context.Background(), "sm-1"))
	assert.True(t, common.IsErrNotFound(sut.Delete(context.Background(), "sm-1")))
}

func TestDocumentStoreList(t *testing.T) {
	db, mock := newMock(t)
	sut := NewDocumentStore(db)

	mock.ExpectQuery(`SELECT "id" FROM "submodel_document" ORDER BY "id" ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	ids, err := sut.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestBlobStoreRoundTrip(t *testing.T) {
	db, mock := newMock(t)
	sut := NewBlobStore(db)

	mock.ExpectExec(`INSERT INTO "attachment_blob" .* ON CONFLICT \(key\) DO UPDATE SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "content_type", "data" FROM "attachment_blob" WHERE`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"content_type", "data"}).AddRow("text/plain", []byte("hi")))
	mock.ExpectExec(`DELETE FROM "attachment_blob" WHERE`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, sut.Put(ctx, "k", "text/plain", []byte("hi")))

	contentType, data, err := sut.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, []byte("hi"), data)

	assert.True(t, common.IsErrNotFound(sut.Delete(ctx, "k")))
}

func TestConnectionFailuresAreUnavailable(t *testing.T) {
	db, mock := newMock(t)
	sut := NewBlobStore(db)

	mock.ExpectQuery(`SELECT .* FROM "attachment_blob"`).
		WillReturnError(&pq.Error{Code: "08006", Message: "connection failure"})

	_, _, err := sut.Get(context.Background(), "k")
	assert.True(t, common.IsErrUnavailable(err))
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError("x", nil))
	assert.True(t, common.IsErrUnavailable(mapError("x", driver.ErrBadConn)))
	assert.True(t, common.IsErrUnavailable(mapError("x", &pq.Error{Code: "40001"})))
	assert.True(t, common.IsInternalServerError(mapError("x", &pq.Error{Code: "23505"})))

	plain := errors.New("plain")
	assert.Same(t, plain, mapError("x", plain))
}

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

// Package postgresql stores submodel documents and attachment payloads in
// PostgreSQL. Documents live in a JSONB column, payloads in a BYTEA column,
// which limits a single payload to 1 GB.
package postgresql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	_ "embed"
	"errors"
	"net"

	"github.com/doug-martin/goqu/v9"
	// registers the postgres dialect for $n placeholders
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/lib/pq"
)

const (
	documentTable = "submodel_document"
	blobTable     = "attachment_blob"
)

//go:embed schema.sql
var schema string

var dialect = goqu.Dialect("postgres")

// EnsureSchema creates the tables used by this package if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return mapError("creating schema", err)
	}
	return nil
}

// mapError classifies driver errors. Connection problems and transient server
// states become Unavailable, everything else is returned wrapped.
func mapError(what string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return common.NewErrUnavailable(what+" failed: database unavailable", err)
		case "40":
			return common.NewErrUnavailable(what+" failed: transaction conflict", err)
		}
		return common.NewInternalServerError(what + " failed").Wrap(err)
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return common.NewErrUnavailable(what+" failed: database unreachable", err)
	}
	return err
}

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

package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageCarriesStatusAndLocation(t *testing.T) {
	err := NewErrNotFound("Submodel element not found").WithLocation("sm-1", "collection/myMLP")

	assert.Equal(t, `404 Not Found: Submodel element not found (submodel "sm-1", path "collection/myMLP")`, err.Error())
	assert.True(t, IsErrNotFound(err))
	assert.False(t, IsErrConflict(err))
}

func TestErrorsIsMatchesCanonicalValueRegardlessOfLocation(t *testing.T) {
	canonical := NewErrConflict("Submodel element already exists")
	located := canonical.WithLocation("sm-1", "a")
	wrapped := fmt.Errorf("adding element: %w", located)

	assert.True(t, errors.Is(wrapped, canonical))
	assert.False(t, errors.Is(wrapped, NewErrConflict("Submodel already exists")))
	assert.True(t, IsErrConflict(wrapped))
}

func TestUnavailableIsTheOnlyRetryableKind(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewErrUnavailable("document store", cause)

	require.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsRetryable(NewErrConflict("exists")))
	assert.False(t, IsRetryable(NewErrNotFound("missing")))
	assert.False(t, IsRetryable(errors.New("foreign")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewErrNotFound("x"), http.StatusNotFound},
		{NewErrConflict("x"), http.StatusConflict},
		{NewErrInvalidPathSegment("x"), http.StatusBadRequest},
		{NewErrAmbiguousPath("x"), http.StatusBadRequest},
		{NewErrTypeMismatch("x"), http.StatusBadRequest},
		{NewErrUnsupportedVariant("x"), http.StatusBadRequest},
		{NewErrMalformedTree("x"), http.StatusBadRequest},
		{NewErrUnavailable("x", nil), http.StatusServiceUnavailable},
		{errors.New("foreign"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(KindOf(tt.err).String(), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorHandlerAssignsCorrelationID(t *testing.T) {
	h := NewErrorHandler("Error", NewErrNotFound("Submodel not found"))

	assert.Equal(t, "404", h.Code)
	assert.NotEmpty(t, h.CorrelationId)
	assert.NotEmpty(t, h.Timestamp)
	assert.Contains(t, h.Text, "Submodel not found")
}

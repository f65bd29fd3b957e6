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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	identity := func(s string) string { return s }

	page, next, err := Paginate(items, "", 2, identity)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, page)
	assert.Equal(t, EncodeString("c"), next)

	page, next, err = Paginate(items, next, 2, identity)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, page)

	page, next, err = Paginate(items, next, 2, identity)
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, page)
	assert.Empty(t, next)

	page, next, err = Paginate(items, "", 0, identity)
	require.NoError(t, err)
	assert.Equal(t, items, page)
	assert.Empty(t, next)
}

func TestPaginateCursorOfDeletedItem(t *testing.T) {
	page, _, err := Paginate([]string{"a", "c", "d"}, EncodeString("b"), 1, func(s string) string { return s })
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, page)
}

func TestPaginateRejectsBadInput(t *testing.T) {
	_, _, err := Paginate([]string{"a"}, "%%", 1, func(s string) string { return s })
	assert.True(t, IsErrBadRequest(err))

	for _, raw := range []string{"0", "-1", "ten"} {
		_, err := ParseLimit(raw)
		assert.True(t, IsErrBadRequest(err), raw)
	}
	limit, err := ParseLimit("25")
	require.NoError(t, err)
	assert.Equal(t, 25, limit)
}

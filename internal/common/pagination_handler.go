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

//nolint:revive
package common

import (
	"sort"
	"strconv"
)

// PagingMetadata carries the encoded cursor of the next page. It is empty on
// the last page.
type PagingMetadata struct {
	Cursor string `json:"cursor,omitempty"`
}

// PagedResult represents a paginated response containing a cursor for the next page
type PagedResult struct {
	PagingMetadata PagingMetadata `json:"paging_metadata"`
	Result         any            `json:"result"`
}

// ParseLimit reads the limit query parameter. The empty string means no limit.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, NewErrBadRequest("limit must be a positive integer, got " + raw)
	}
	return limit, nil
}

// Paginate returns the page of items that starts at the first item whose key
// is not below the decoded cursor, together with the encoded cursor of the
// following page.
//
// Parameters:
//   - items: All candidates, sorted ascending by key
//   - cursor: base64url encoded key to resume from; "" starts at the beginning
//   - limit: Maximum page size; 0 disables paging
//   - key: Returns the sort key of an item, e.g. the submodel id
//
// Returns:
//   - The items of the page
//   - The cursor of the next page, "" on the last page
//   - A BadRequest error if cursor is not valid base64url
//
// Example:
//
//	page, next, err := Paginate(submodels, r.URL.Query().Get("cursor"), 2,
//	    func(sm *model.Submodel) string { return sm.ID })
//	// ids a, b, c: page = [a b], next = EncodeString("c")
func Paginate[T any](items []T, cursor string, limit int, key func(T) string) ([]T, string, error) {
	if cursor != "" {
		start, err := DecodeString(cursor)
		if err != nil {
			return nil, "", NewErrBadRequest("cursor is not valid base64url")
		}
		from := sort.Search(len(items), func(i int) bool { return key(items[i]) >= start })
		items = items[from:]
	}
	if limit <= 0 || len(items) <= limit {
		return items, "", nil
	}
	return items[:limit], EncodeString(key(items[limit])), nil
}

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

// Package errors provides centralized error definitions for the submodel element store.
package errors

import (
	"fmt"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
)

// Submodel-related errors
var (
	// ErrSubmodelNotFound is returned when the requested submodel does not exist.
	ErrSubmodelNotFound = common.NewErrNotFound("Submodel not found")

	// ErrSubmodelAlreadyExists is returned when trying to create a submodel that already exists.
	ErrSubmodelAlreadyExists = common.NewErrConflict("Submodel already exists")

	// ErrSubmodelDocumentCorrupt is returned when a stored document cannot be decoded.
	ErrSubmodelDocumentCorrupt = common.NewInternalServerError("Stored submodel document is corrupt - see console for details")
)

// Element-related errors
var (
	// ErrSubmodelElementNotFound is returned when the requested submodel element does not exist.
	ErrSubmodelElementNotFound = common.NewErrNotFound("Submodel element not found")

	// ErrSubmodelElementAlreadyExists is returned when trying to create a submodel element that already exists.
	ErrSubmodelElementAlreadyExists = common.NewErrConflict("Submodel element already exists")

	// ErrParentNotCollection is returned when elements are added below a non-collection.
	ErrParentNotCollection = common.NewErrInvalidPathSegment("Parent element is not a SubmodelElementCollection")
)

// Attachment-related errors
var (
	// ErrContentNotFound is returned when a File or Blob has no uploaded content.
	ErrContentNotFound = common.NewErrNotFound("Attachment content not found")

	// ErrNotAttachmentBearing is returned for content operations on variants other than File and Blob.
	ErrNotAttachmentBearing = common.NewErrUnsupportedVariant("Only File and Blob elements carry attachment content")

	// ErrBlobTooLarge is returned when an uploaded payload exceeds the configured size limit.
	ErrBlobTooLarge = common.NewErrBadRequest("attachment payload exceeds the maximum allowed size")
)

// Backend creation error messages
const (
	// BackendCreationFailedFormat is the format string for backend creation failures.
	BackendCreationFailedFormat = "Failed to create %s backend. See console for details."
)

// NewBackendCreationError creates an internal server error for backend creation failures.
func NewBackendCreationError(backend string) error {
	return common.NewInternalServerError(fmt.Sprintf(BackendCreationFailedFormat, backend))
}

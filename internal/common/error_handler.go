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
	"strings"

	"github.com/google/uuid"
)

// ErrorKind classifies failures reported by the submodel element store.
type ErrorKind int

const (
	// KindInternal is an unexpected failure without a more specific class.
	KindInternal ErrorKind = iota
	// KindNotFound reports an absent submodel, element or content.
	KindNotFound
	// KindAlreadyExists reports an identifier collision on create or add.
	KindAlreadyExists
	// KindInvalidPathSegment reports a path segment that exists but is not a container.
	KindInvalidPathSegment
	// KindAmbiguousPath reports duplicate idShorts met during resolution.
	KindAmbiguousPath
	// KindTypeMismatch reports a value that does not fit the declared value type.
	KindTypeMismatch
	// KindUnsupportedVariant reports a payload or operation that does not fit the element variant.
	KindUnsupportedVariant
	// KindMalformedTree reports a tree that violates the idShort invariants.
	KindMalformedTree
	// KindBadRequest reports any other invalid input.
	KindBadRequest
	// KindUnavailable reports a backing-service timeout or transient failure.
	KindUnavailable
)

var kindNames = map[ErrorKind]string{
	KindInternal:           "Internal",
	KindNotFound:           "NotFound",
	KindAlreadyExists:      "AlreadyExists",
	KindInvalidPathSegment: "InvalidPathSegment",
	KindAmbiguousPath:      "AmbiguousPath",
	KindTypeMismatch:       "TypeMismatch",
	KindUnsupportedVariant: "UnsupportedVariant",
	KindMalformedTree:      "MalformedTree",
	KindBadRequest:         "BadRequest",
	KindUnavailable:        "Unavailable",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Status returns the HTTP status code a remote adapter should answer with.
func (k ErrorKind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindInvalidPathSegment, KindAmbiguousPath, KindTypeMismatch, KindUnsupportedVariant, KindMalformedTree, KindBadRequest:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error type returned by every store operation.
// SubmodelID and Path are filled in by the layer that knows them.
type Error struct {
	Kind       ErrorKind
	SubmodelID string
	Path       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var sb strings.Builder
	status := e.Kind.Status()
	sb.WriteString(fmt.Sprintf("%d %s: %s", status, http.StatusText(status), e.Message))
	if e.SubmodelID != "" {
		sb.WriteString(fmt.Sprintf(" (submodel %q", e.SubmodelID))
		if e.Path != "" {
			sb.WriteString(fmt.Sprintf(", path %q", e.Path))
		}
		sb.WriteString(")")
	} else if e.Path != "" {
		sb.WriteString(fmt.Sprintf(" (path %q)", e.Path))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind and message, so the canonical values
// in the errors package can be used with errors.Is regardless of location.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// WithLocation returns a copy of e carrying the submodel identifier and path.
func (e *Error) WithLocation(submodelID string, path string) *Error {
	c := *e
	c.SubmodelID = submodelID
	c.Path = path
	return &c
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.Err = cause
	return &c
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewErrNotFound(elementID string) *Error {
	return newError(KindNotFound, elementID)
}

func NewErrConflict(message string) *Error {
	return newError(KindAlreadyExists, message)
}

func NewErrInvalidPathSegment(message string) *Error {
	return newError(KindInvalidPathSegment, message)
}

func NewErrAmbiguousPath(message string) *Error {
	return newError(KindAmbiguousPath, message)
}

func NewErrTypeMismatch(message string) *Error {
	return newError(KindTypeMismatch, message)
}

func NewErrUnsupportedVariant(message string) *Error {
	return newError(KindUnsupportedVariant, message)
}

func NewErrMalformedTree(message string) *Error {
	return newError(KindMalformedTree, message)
}

func NewErrBadRequest(message string) *Error {
	return newError(KindBadRequest, message)
}

// NewErrUnavailable reports a timeout or transient backend failure. Only errors
// of this kind are safe for callers to retry.
func NewErrUnavailable(message string, cause error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, Err: cause}
}

func NewInternalServerError(message string) *Error {
	return newError(KindInternal, message)
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsErrNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

func IsErrConflict(err error) bool {
	return isKind(err, KindAlreadyExists)
}

func IsErrInvalidPathSegment(err error) bool {
	return isKind(err, KindInvalidPathSegment)
}

func IsErrAmbiguousPath(err error) bool {
	return isKind(err, KindAmbiguousPath)
}

func IsErrTypeMismatch(err error) bool {
	return isKind(err, KindTypeMismatch)
}

func IsErrUnsupportedVariant(err error) bool {
	return isKind(err, KindUnsupportedVariant)
}

func IsErrMalformedTree(err error) bool {
	return isKind(err, KindMalformedTree)
}

func IsErrBadRequest(err error) bool {
	return isKind(err, KindBadRequest)
}

func IsErrUnavailable(err error) bool {
	return isKind(err, KindUnavailable)
}

func IsInternalServerError(err error) bool {
	return err != nil && KindOf(err) == KindInternal
}

// IsRetryable reports whether a caller may retry the failed operation.
// AlreadyExists in particular must never be retried blindly.
func IsRetryable(err error) bool {
	return IsErrUnavailable(err)
}

// HTTPStatus maps err to the status code of a remote response.
func HTTPStatus(err error) int {
	return KindOf(err).Status()
}

// ErrorHandler is a single message of an error response body.
type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"` //nolint:revive
	Timestamp     string `json:"timestamp,omitempty"`
}

// NewErrorHandler builds a response message for err with a fresh correlation id.
func NewErrorHandler(messageType string, err error) *ErrorHandler {
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          err.Error(),
		Code:          fmt.Sprintf("%d", HTTPStatus(err)),
		CorrelationId: uuid.NewString(),
		Timestamp:     GetCurrentTimestamp(),
	}
}

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

// Package api exposes the submodel store over HTTP. Submodel identifiers are
// base64url encoded path segments and element paths use the dotted idShort
// notation, e.g. "motor.limits.max".
package api

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Route defines the parameters for an API endpoint.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a map of defined API endpoints keyed by operation name.
type Routes map[string]Route

// Router defines the required methods for retrieving API routes.
type Router interface {
	Routes() Routes
}

// NewRouter creates a chi router with request logging and mounts the routes
// of every router on it.
func NewRouter(routers ...Router) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	for _, api := range routers {
		for _, route := range api.Routes() {
			router.Method(route.Method, route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// result is the envelope of list responses.
type result struct {
	Result any `json:"result"`
}

// errorResult is the envelope of error responses.
type errorResult struct {
	Messages []*common.ErrorHandler `json:"messages"`
}

// EncodeJSONResponse writes i as JSON with status. A nil i writes no body.
func EncodeJSONResponse(i any, status int, w http.ResponseWriter) error {
	if i == nil {
		w.WriteHeader(status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(i)
}

// encodeRawJSON writes an already serialized body.
func encodeRawJSON(body []byte, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(body)
	return err
}

// writeError renders err with the status of its kind. Server side failures
// are logged, client errors are not.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.LogErrorf(err, "%s %s", r.Method, r.URL.Path)
	}
	if common.IsErrUnavailable(err) {
		w.Header().Set("Retry-After", "1")
	}
	_ = EncodeJSONResponse(errorResult{Messages: []*common.ErrorHandler{common.NewErrorHandler("Error", err)}}, status, w)
}

func setSafeDownloadHeaders(wHeader http.Header, filename, contentType string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	wHeader.Set("Content-Type", contentType)
	wHeader.Set("X-Content-Type-Options", "nosniff")

	if filename == "" {
		wHeader.Set("Content-Disposition", "attachment")
		return
	}

	safeFilename := filepath.Base(filename)
	contentDisposition := mime.FormatMediaType("attachment", map[string]string{"filename": safeFilename})
	wHeader.Set("Content-Disposition", contentDisposition)
}

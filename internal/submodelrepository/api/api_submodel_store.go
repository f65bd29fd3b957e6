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

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/idshortpath"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/value"
	"github.com/go-chi/chi/v5"
)

// Store is the submodel store as seen by the HTTP adapter.
type Store interface {
	CreateSubmodel(ctx context.Context, sm *model.Submodel) error
	GetSubmodel(ctx context.Context, id string) (*model.Submodel, error)
	ListSubmodels(ctx context.Context) ([]*model.Submodel, error)
	DeleteSubmodel(ctx context.Context, id string) error
	GetElements(ctx context.Context, id string, path string) ([]model.SubmodelElement, error)
	GetElement(ctx context.Context, id string, path string) (model.SubmodelElement, error)
	GetElementValue(ctx context.Context, id string, path string) (value.SubmodelElementValue, error)
	AddElement(ctx context.Context, id string, parentPath string, element model.SubmodelElement) error
	UpdateElementValue(ctx context.Context, id string, path string, v value.SubmodelElementValue) error
	DeleteElement(ctx context.Context, id string, path string) error
	UploadContent(ctx context.Context, id string, path string, contentType string, data []byte) error
	GetContent(ctx context.Context, id string, path string) (attachment.Content, error)
	DeleteContent(ctx context.Context, id string, path string) error
}

// SubmodelStoreAPIController binds the store operations to HTTP routes.
type SubmodelStoreAPIController struct {
	store         Store
	contextPath   string
	maxUploadSize int64
}

// NewSubmodelStoreAPIController creates a controller serving store below
// contextPath. Uploads larger than maxUploadSize are rejected before they are
// read completely.
func NewSubmodelStoreAPIController(store Store, contextPath string, maxUploadSize int64) *SubmodelStoreAPIController {
	return &SubmodelStoreAPIController{
		store:         store,
		contextPath:   common.NormalizeBasePath(contextPath),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns all the api routes for the SubmodelStoreAPIController
func (c *SubmodelStoreAPIController) Routes() Routes {
	submodel := c.contextPath + "/submodels/{submodelIdentifier}"
	element := submodel + "/submodel-elements/{idShortPath}"
	return Routes{
		"GetAllSubmodels":              Route{http.MethodGet, c.contextPath + "/submodels", c.GetAllSubmodels},
		"PostSubmodel":                 Route{http.MethodPost, c.contextPath + "/submodels", c.PostSubmodel},
		"GetSubmodelByID":              Route{http.MethodGet, submodel, c.GetSubmodelByID},
		"DeleteSubmodelByID":           Route{http.MethodDelete, submodel, c.DeleteSubmodelByID},
		"GetAllSubmodelElements":       Route{http.MethodGet, submodel + "/submodel-elements", c.GetAllSubmodelElements},
		"PostSubmodelElement":          Route{http.MethodPost, submodel + "/submodel-elements", c.PostSubmodelElement},
		"GetSubmodelElementByPath":     Route{http.MethodGet, element, c.GetSubmodelElementByPath},
		"PostSubmodelElementByPath":    Route{http.MethodPost, element, c.PostSubmodelElementByPath},
		"DeleteSubmodelElementByPath":  Route{http.MethodDelete, element, c.DeleteSubmodelElementByPath},
		"GetSubmodelElementValue":      Route{http.MethodGet, element + "/$value", c.GetSubmodelElementValue},
		"PatchSubmodelElementValue":    Route{http.MethodPatch, element + "/$value", c.PatchSubmodelElementValue},
		"GetFileByPath":                Route{http.MethodGet, element + "/attachment", c.GetFileByPath},
		"PutFileByPath":                Route{http.MethodPut, element + "/attachment", c.PutFileByPath},
		"DeleteFileByPath":             Route{http.MethodDelete, element + "/attachment", c.DeleteFileByPath},
		"GetAllSubmodelElementsByPath": Route{http.MethodGet, element + "/submodel-elements", c.GetAllSubmodelElementsByPath},
	}
}

func submodelID(r *http.Request) (string, error) {
	id, err := common.DecodeString(chi.URLParam(r, "submodelIdentifier"))
	if err != nil || id == "" {
		return "", common.NewErrBadRequest("submodel identifier is not valid base64url")
	}
	return id, nil
}

// elementPath converts the dotted idShort path of the request into a store path.
func elementPath(r *http.Request) (string, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "idShortPath"))
	if err != nil || raw == "" {
		return "", common.NewErrBadRequest("idShortPath is not a valid path")
	}
	if strings.ContainsAny(raw, "[]") {
		return "", common.NewErrInvalidPathSegment("list indices are not supported in idShortPath " + raw)
	}
	segments := strings.Split(raw, ".")
	for i, segment := range segments {
		if segment == "" || strings.Contains(segment, idshortpath.Delimiter) {
			return "", common.NewErrInvalidPathSegment(fmt.Sprintf("segment %d of idShortPath %s is not a valid idShort", i, raw))
		}
	}
	return idshortpath.Join(segments...), nil
}

func coreLevel(r *http.Request) (bool, error) {
	switch level := r.URL.Query().Get("level"); level {
	case "", "deep":
		return false, nil
	case "core":
		return true, nil
	default:
		return false, common.NewErrBadRequest("level must be core or deep, got " + level)
	}
}

// shallow strips the grandchildren of element, keeping its direct children.
func shallow(children []model.SubmodelElement) []model.SubmodelElement {
	out := make([]model.SubmodelElement, len(children))
	for i, child := range children {
		if collection, ok := child.(*model.SubmodelElementCollection); ok {
			stripped := *collection
			stripped.SetChildren(nil)
			child = &stripped
		}
		out[i] = child
	}
	return out
}

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, common.NewErrBadRequest("reading request body failed").Wrap(err)
	}
	return data, nil
}

// GetAllSubmodels - Returns all submodels ordered by id, paged by the limit
// and cursor query parameters
func (c *SubmodelStoreAPIController) GetAllSubmodels(w http.ResponseWriter, r *http.Request) {
	limit, err := common.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	submodels, err := c.store.ListSubmodels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, next, err := common.Paginate(submodels, r.URL.Query().Get("cursor"), limit,
		func(sm *model.Submodel) string { return sm.ID })
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(common.PagedResult{
		PagingMetadata: common.PagingMetadata{Cursor: next},
		Result:         page,
	}, http.StatusOK, w)
}

// PostSubmodel - Creates a new submodel
func (c *SubmodelStoreAPIController) PostSubmodel(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sm := new(model.Submodel)
	if err := json.Unmarshal(body, sm); err != nil {
		writeError(w, r, common.NewErrBadRequest("submodel payload is not valid JSON").Wrap(err))
		return
	}
	if err := c.store.CreateSubmodel(r.Context(), sm); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", c.contextPath+"/submodels/"+common.EncodeString(sm.ID))
	_ = EncodeJSONResponse(sm, http.StatusCreated, w)
}

// GetSubmodelByID - Returns a specific submodel
func (c *SubmodelStoreAPIController) GetSubmodelByID(w http.ResponseWriter, r *http.Request) {
	id, err := submodelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	core, err := coreLevel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sm, err := c.store.GetSubmodel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if core {
		sm.SetChildren(shallow(sm.Children()))
	}
	_ = EncodeJSONResponse(sm, http.StatusOK, w)
}

// DeleteSubmodelByID - Deletes a submodel with all its elements and attachments
func (c *SubmodelStoreAPIController) DeleteSubmodelByID(w http.ResponseWriter, r *http.Request) {
	id, err := submodelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := c.store.DeleteSubmodel(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(nil, http.StatusNoContent, w)
}

// GetAllSubmodelElements - Returns the top-level elements of a submodel
func (c *SubmodelStoreAPIController) GetAllSubmodelElements(w http.ResponseWriter, r *http.Request) {
	c.listElements(w, r, false)
}

// GetAllSubmodelElementsByPath - Returns the children of a collection
func (c *SubmodelStoreAPIController) GetAllSubmodelElementsByPath(w http.ResponseWriter, r *http.Request) {
	c.listElements(w, r, true)
}

func (c *SubmodelStoreAPIController) listElements(w http.ResponseWriter, r *http.Request, nested bool) {
	id, err := submodelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	path := ""
	if nested {
		if path, err = elementPath(r); err != nil {
			writeError(w, r, err)
			return
		}
	}
	core, err := coreLevel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	elements, err := c.store.GetElements(r.Context(), id, path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if core {
		elements = shallow(elements)
	}
	_ = EncodeJSONResponse(result{Result: elements}, http.StatusOK, w)
}

// PostSubmodelElement - Adds a top-level element to a submodel
func (c *SubmodelStoreAPIController) PostSubmodelElement(w http.ResponseWriter, r *http.Request) {
	c.addElement(w, r, false)
}

// PostSubmodelElementByPath - Adds an element to the collection at a path
func (c *SubmodelStoreAPIController) PostSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	c.addElement(w, r, true)
}

func (c *SubmodelStoreAPIController) addElement(w http.ResponseWriter, r *http.Request, nested bool) {
	id, err := submodelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	parent := ""
	if nested {
		if parent, err = elementPath(r); err != nil {
			writeError(w, r, err)
			return
		}
	}
	body, err := readBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	element, err := model.UnmarshalSubmodelElement(body)
	if err != nil {
		writeError(w, r, common.NewErrBadRequest("submodel element payload is not valid").Wrap(err))
		return
	}
	if err := c.store.AddElement(r.Context(), id, parent, element); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(element, http.StatusCreated, w)
}

// GetSubmodelElementByPath - Returns the element at a path including its subtree
func (c *SubmodelStoreAPIController) GetSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	core, err := coreLevel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	element, err := c.store.GetElement(r.Context(), id, path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if collection, isCollection := element.(*model.SubmodelElementCollection); isCollection && core {
		collection.SetChildren(shallow(collection.Children()))
	}
	_ = EncodeJSONResponse(element, http.StatusOK, w)
}

// DeleteSubmodelElementByPath - Deletes the element at a path and its attachments
func (c *SubmodelStoreAPIController) DeleteSubmodelElementByPath(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	if err := c.store.DeleteElement(r.Context(), id, path); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(nil, http.StatusNoContent, w)
}

// GetSubmodelElementValue - Returns the value-only representation of an element
func (c *SubmodelStoreAPIController) GetSubmodelElementValue(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	v, err := c.store.GetElementValue(r.Context(), id, path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := value.MarshalValueOnly(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = encodeRawJSON(body, w)
}

// PatchSubmodelElementValue - Updates the value of an element. The payload is
// decoded against the current element, so omitted fields keep their values.
func (c *SubmodelStoreAPIController) PatchSubmodelElementValue(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	body, err := readBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	target, err := c.store.GetElement(r.Context(), id, path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := value.UnmarshalValueOnly(target, body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := c.store.UpdateElementValue(r.Context(), id, path, v); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(nil, http.StatusNoContent, w)
}

// GetFileByPath - Downloads the attachment of a File or Blob element
func (c *SubmodelStoreAPIController) GetFileByPath(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	content, err := c.store.GetContent(r.Context(), id, path)
	if err != nil {
		writeError(w, r, err)
		return
	}
	segments, _ := idshortpath.Split(path)
	filename := segments[len(segments)-1]
	if exts, _ := mime.ExtensionsByType(content.ContentType); len(exts) > 0 {
		filename += exts[0]
	}
	setSafeDownloadHeaders(w.Header(), filename, content.ContentType)
	w.WriteHeader(http.StatusOK)
	// #nosec G705 -- writing binary attachment payload with Content-Disposition attachment and nosniff header
	_, _ = w.Write(content.Data)
}

// PutFileByPath - Uploads the attachment of a File or Blob element from the
// multipart field "file"
func (c *SubmodelStoreAPIController) PutFileByPath(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	// multipart framing needs some headroom above the payload limit
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, r, uploadError(err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, common.NewErrBadRequest("multipart field file is missing").Wrap(err))
		return
	}
	defer func() {
		_ = file.Close()
	}()
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, uploadError(err))
		return
	}

	fileName := r.FormValue("fileName")
	if fileName == "" {
		fileName = header.Filename
	}
	if err := c.store.UploadContent(r.Context(), id, path, uploadContentType(header.Header.Get("Content-Type"), fileName, data), data); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(nil, http.StatusNoContent, w)
}

// DeleteFileByPath - Deletes the attachment of a File or Blob element
func (c *SubmodelStoreAPIController) DeleteFileByPath(w http.ResponseWriter, r *http.Request) {
	id, path, ok := c.locate(w, r)
	if !ok {
		return
	}
	if err := c.store.DeleteContent(r.Context(), id, path); err != nil {
		writeError(w, r, err)
		return
	}
	_ = EncodeJSONResponse(nil, http.StatusNoContent, w)
}

func (c *SubmodelStoreAPIController) locate(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	id, err := submodelID(r)
	if err != nil {
		writeError(w, r, err)
		return "", "", false
	}
	path, err := elementPath(r)
	if err != nil {
		writeError(w, r, err)
		return "", "", false
	}
	return id, path, true
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return common.NewErrBadRequest("attachment exceeds the maximum upload size").Wrap(err)
	}
	return common.NewErrBadRequest("multipart payload is not valid").Wrap(err)
}

// uploadContentType prefers the declared part type, then the file extension,
// then content sniffing.
func uploadContentType(declared string, fileName string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(filepath.Ext(fileName)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}

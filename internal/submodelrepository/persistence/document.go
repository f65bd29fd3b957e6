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

package persistence

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/logger"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the unit persisted per submodel: the element tree and the
// attachment index mapping element paths to their uploaded payloads.
type document struct {
	Submodel    *model.Submodel               `json:"submodel"`
	Attachments map[string]attachment.BlobRef `json:"attachments,omitempty"`
}

func newDocument(sm *model.Submodel) *document {
	return &document{Submodel: sm, Attachments: make(map[string]attachment.BlobRef)}
}

func encodeDocument(doc *document) ([]byte, error) {
	return json.Marshal(doc)
}

func decodeDocument(id string, data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Submodel == nil {
		logger.LogErrorf(err, "decoding document of submodel %q", id)
		return nil, errs.ErrSubmodelDocumentCorrupt.WithLocation(id, "")
	}
	if doc.Attachments == nil {
		doc.Attachments = make(map[string]attachment.BlobRef)
	}
	return &doc, nil
}

func isWithin(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+model.PathDelimiter)
}

// attachmentsWithin returns the index entries at prefix or below it.
func (d *document) attachmentsWithin(prefix string) map[string]attachment.BlobRef {
	out := make(map[string]attachment.BlobRef)
	for path, ref := range d.Attachments {
		if isWithin(path, prefix) {
			out[path] = ref
		}
	}
	return out
}

// allAttachments returns every indexed reference.
func (d *document) allAttachments() []attachment.BlobRef {
	refs := make([]attachment.BlobRef, 0, len(d.Attachments))
	for _, ref := range d.Attachments {
		refs = append(refs, ref)
	}
	return refs
}

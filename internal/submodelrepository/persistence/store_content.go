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
	"context"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/idshortpath"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/logger"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/metrics"
)

// attachmentBearing returns the file name hint of File and Blob elements and
// rejects every other variant.
func attachmentBearing(element model.SubmodelElement) (string, error) {
	switch e := element.(type) {
	case *model.File:
		return e.Value, nil
	case *model.Blob:
		return "", nil
	default:
		return "", errs.ErrNotAttachmentBearing
	}
}

// UploadContent stores data as the payload of the File or Blob at path and
// records it in the element. Uploading again replaces the payload.
func (s *SubmodelStore) UploadContent(ctx context.Context, id string, path string, contentType string, data []byte) (err error) {
	defer observe("UploadContent", id, path, time.Now(), &err)

	if int64(len(data)) > s.attachments.MaxSize() {
		return errs.ErrBlobTooLarge
	}

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	node, err := idshortpath.Resolve(doc.Submodel, path)
	if err != nil {
		return err
	}
	fileName, err := attachmentBearing(node.Element)
	if err != nil {
		return err
	}

	ref := attachment.DeriveRef(id, path, contentType, fileName)
	previous, replaced := doc.Attachments[path]
	ctx = context.WithoutCancel(ctx)
	if err := s.attachments.Store(ctx, ref, contentType, data); err != nil {
		return err
	}

	switch e := node.Element.(type) {
	case *model.File:
		e.ContentType = contentType
		e.Value = string(ref)
	case *model.Blob:
		e.ContentType = contentType
	}
	doc.Attachments[path] = ref

	if err := s.save(ctx, id, doc); err != nil {
		// an overwritten key is still referenced by the stored document
		if !replaced || previous != ref {
			s.discard(ctx, ref)
		}
		return err
	}
	if replaced && previous != ref {
		s.discard(ctx, previous)
	}
	return nil
}

// discard deletes a payload no document references any more.
func (s *SubmodelStore) discard(ctx context.Context, ref attachment.BlobRef) {
	err := s.attachments.Delete(ctx, ref)
	if common.IsErrNotFound(err) {
		err = nil
	}
	logger.LogErrorf(err, "removing orphaned attachment %s", ref)
	metrics.ObserveOrphanCleanup(err)
}

// GetContent returns the uploaded payload of the File or Blob at path.
func (s *SubmodelStore) GetContent(ctx context.Context, id string, path string) (content attachment.Content, err error) {
	defer observe("GetContent", id, path, time.Now(), &err)

	unlock := s.locks.RLock(id)
	defer unlock()
	doc, node, err := s.resolve(ctx, id, path)
	if err != nil {
		return attachment.Content{}, err
	}
	if _, err := attachmentBearing(node.Element); err != nil {
		return attachment.Content{}, err
	}
	ref, ok := doc.Attachments[path]
	if !ok {
		return attachment.Content{}, errs.ErrContentNotFound
	}
	return s.attachments.Retrieve(ctx, ref)
}

// DeleteContent removes the uploaded payload of the File or Blob at path. The
// element itself stays; a File loses its value.
func (s *SubmodelStore) DeleteContent(ctx context.Context, id string, path string) (err error) {
	defer observe("DeleteContent", id, path, time.Now(), &err)

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	node, err := idshortpath.Resolve(doc.Submodel, path)
	if err != nil {
		return err
	}
	if _, err := attachmentBearing(node.Element); err != nil {
		return err
	}
	ref, ok := doc.Attachments[path]
	if !ok {
		return errs.ErrContentNotFound
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.attachments.Delete(ctx, ref); err != nil && !common.IsErrNotFound(err) {
		return err
	}
	delete(doc.Attachments, path)
	if f, ok := node.Element.(*model.File); ok {
		f.Value = ""
	}
	return s.save(ctx, id, doc)
}

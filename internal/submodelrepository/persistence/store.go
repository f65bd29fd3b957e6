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

// Package persistence implements the submodel element store: a façade over a
// document store holding one JSON document per submodel and a blob store
// holding the attachment payloads of File and Blob elements.
package persistence

import (
	"context"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/config"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/metrics"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/value"
	"golang.org/x/sync/singleflight"
)

// DocumentStore persists one serialized submodel per id. Missing ids are
// reported as NotFound.
type DocumentStore interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, doc []byte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

// BlobStore persists attachment payloads by key.
type BlobStore = attachment.BlobStore

// SubmodelStore provides element level CRUD on submodels. Operations on one
// submodel are serialized by a per-submodel lock; reads share it.
type SubmodelStore struct {
	documents   DocumentStore
	attachments *attachment.Manager
	locks       *lockTable
	reads       singleflight.Group
	timeout     time.Duration
}

type options struct {
	timeout time.Duration
	maxBlob int64
	workers int
}

// Option configures a SubmodelStore.
type Option func(*options)

// WithOperationTimeout bounds every single backend call.
func WithOperationTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxBlobSize limits the size of uploaded attachment payloads.
func WithMaxBlobSize(bytes int64) Option {
	return func(o *options) { o.maxBlob = bytes }
}

// WithWorkers bounds the number of concurrent attachment deletions.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// NewSubmodelStore creates a store on top of the given backends.
func NewSubmodelStore(documents DocumentStore, blobs BlobStore, opts ...Option) *SubmodelStore {
	o := options{
		timeout: config.DefaultOperationTimeout,
		maxBlob: config.MaxBlobSizeBytes,
		workers: config.WorkerPoolSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &SubmodelStore{
		documents: documents,
		attachments: attachment.NewManager(blobs,
			attachment.WithMaxSize(o.maxBlob),
			attachment.WithWorkers(o.workers),
			attachment.WithTimeout(o.timeout)),
		locks:   newLockTable(),
		timeout: o.timeout,
	}
}

// observe attaches the location to err and records the operation.
func observe(operation string, submodelID string, path string, start time.Time, errp *error) {
	if *errp != nil {
		*errp = locate(*errp, submodelID, path)
	}
	metrics.ObserveOperation(operation, time.Since(start), *errp)
}

func locate(err error, submodelID string, path string) error {
	e, ok := err.(*common.Error)
	if !ok || e.SubmodelID != "" {
		return err
	}
	if e.Path != "" {
		path = e.Path
	}
	return e.WithLocation(submodelID, path)
}

// load reads and decodes the document of id. Concurrent readers share one
// backend call; every caller decodes its own copy. The shared call is bounded
// by the operation timeout only, so one caller giving up does not fail the
// others.
func (s *SubmodelStore) load(ctx context.Context, id string) (*document, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.reads.DoChan(id, func() (any, error) {
		return s.fetch(shared, id)
	})
	select {
	case <-ctx.Done():
		return nil, common.NewErrUnavailable("document read was cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return decodeDocument(id, res.Val.([]byte))
	}
}

// loadForUpdate reads the document without coalescing. The caller holds the
// write lock.
func (s *SubmodelStore) loadForUpdate(ctx context.Context, id string) (*document, error) {
	data, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeDocument(id, data)
}

func (s *SubmodelStore) fetch(ctx context.Context, id string) ([]byte, error) {
	data, err := common.CallWithTimeout(ctx, s.timeout, "document read", func(ctx context.Context) ([]byte, error) {
		return s.documents.Get(ctx, id)
	})
	if common.IsErrNotFound(err) {
		return nil, errs.ErrSubmodelNotFound
	}
	return data, err
}

func (s *SubmodelStore) save(ctx context.Context, id string, doc *document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return common.NewInternalServerError("failed to encode submodel document").Wrap(err)
	}
	return common.RunWithTimeout(ctx, s.timeout, "document write", func(ctx context.Context) error {
		return s.documents.Put(ctx, id, data)
	})
}

// checkCancelled refuses to start a mutation on a finished context.
func checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return common.NewErrUnavailable("request cancelled before the change started", err)
	}
	return nil
}

// CreateSubmodel stores sm as a new submodel.
func (s *SubmodelStore) CreateSubmodel(ctx context.Context, sm *model.Submodel) (err error) {
	id := ""
	if sm != nil {
		id = sm.ID
	}
	defer observe("CreateSubmodel", id, "", time.Now(), &err)

	if err := model.ValidateSubmodel(sm); err != nil {
		return err
	}
	if err := value.CheckElements(sm.SubmodelElements); err != nil {
		return err
	}
	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	_, err = s.fetch(ctx, id)
	switch {
	case err == nil:
		return errs.ErrSubmodelAlreadyExists
	case !common.IsErrNotFound(err):
		return err
	}
	return s.save(ctx, id, newDocument(sm.Copy()))
}

// GetSubmodel returns the submodel id with all its elements.
func (s *SubmodelStore) GetSubmodel(ctx context.Context, id string) (sm *model.Submodel, err error) {
	defer observe("GetSubmodel", id, "", time.Now(), &err)

	unlock := s.locks.RLock(id)
	defer unlock()
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.Submodel, nil
}

// ListSubmodels returns all stored submodels ordered by id.
func (s *SubmodelStore) ListSubmodels(ctx context.Context) (submodels []*model.Submodel, err error) {
	defer observe("ListSubmodels", "", "", time.Now(), &err)

	ids, err := common.CallWithTimeout(ctx, s.timeout, "document list", s.documents.List)
	if err != nil {
		return nil, err
	}
	submodels = make([]*model.Submodel, 0, len(ids))
	for _, id := range ids {
		sm, err := s.getForList(ctx, id)
		if common.IsErrNotFound(err) {
			// deleted since listing
			continue
		}
		if err != nil {
			return nil, locate(err, id, "")
		}
		submodels = append(submodels, sm)
	}
	return submodels, nil
}

func (s *SubmodelStore) getForList(ctx context.Context, id string) (*model.Submodel, error) {
	unlock := s.locks.RLock(id)
	defer unlock()
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.Submodel, nil
}

// DeleteSubmodel removes the submodel id, its elements and all their
// attachment payloads. Payloads are removed first so that a failure never
// leaves payloads without an owner.
func (s *SubmodelStore) DeleteSubmodel(ctx context.Context, id string) (err error) {
	defer observe("DeleteSubmodel", id, "", time.Now(), &err)

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.attachments.DeleteAll(ctx, doc.allAttachments()); err != nil {
		return err
	}
	err = common.RunWithTimeout(ctx, s.timeout, "document delete", func(ctx context.Context) error {
		return s.documents.Delete(ctx, id)
	})
	if common.IsErrNotFound(err) {
		return errs.ErrSubmodelNotFound
	}
	return err
}

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

// Package attachment manages the out-of-band payloads of File and Blob
// elements. Every payload is addressed by a BlobRef derived from the owning
// submodel and element path.
package attachment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/config"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"golang.org/x/sync/errgroup"
)

// BlobRef is the storage key of one attachment payload.
type BlobRef string

// Content is a stored payload together with its content type.
type Content struct {
	ContentType string
	Data        []byte
}

// BlobStore is the key/value storage holding the payloads. Missing keys are
// reported as NotFound.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Get(ctx context.Context, key string) (string, []byte, error)
	Delete(ctx context.Context, key string) error
}

// preferred extensions where the system mime table lists several
var preferredExtensions = map[string]string{
	"image/jpeg":       ".jpg",
	"text/plain":       ".txt",
	"application/json": ".json",
	"application/xml":  ".xml",
	"text/xml":         ".xml",
	"image/png":        ".png",
	"application/pdf":  ".pdf",
}

// DeriveRef returns the reference of the payload of the element at path in
// submodel submodelID. The key is stable for a given submodel, path and type
// and never collides for distinct paths. The extension comes from the content
// type, else from fileName.
func DeriveRef(submodelID string, path string, contentType string, fileName string) BlobRef {
	sum := sha256.Sum256([]byte(submodelID))
	return BlobRef(fmt.Sprintf("%s/%s/%s%s",
		hex.EncodeToString(sum[:8]),
		common.EncodeString(submodelID),
		common.EncodeString(path),
		extension(contentType, fileName)))
}

func extension(contentType string, fileName string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := preferredExtensions[mediaType]; ok {
			return ext
		}
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	ext := filepath.Ext(fileName)
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return strings.ToLower(ext)
}

// Manager stores, retrieves and deletes attachment payloads.
type Manager struct {
	blobs   BlobStore
	maxSize int64
	workers int
	timeout time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxSize limits the size of a single payload. A value <= 0 keeps the default.
func WithMaxSize(bytes int64) Option {
	return func(m *Manager) {
		if bytes > 0 {
			m.maxSize = bytes
		}
	}
}

// WithWorkers bounds the number of concurrent deletions in DeleteAll.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithTimeout bounds every single call into the blob store.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.timeout = d
	}
}

// NewManager creates a Manager writing to blobs.
func NewManager(blobs BlobStore, opts ...Option) *Manager {
	m := &Manager{
		blobs:   blobs,
		maxSize: config.MaxBlobSizeBytes,
		workers: config.WorkerPoolSize,
		timeout: config.DefaultOperationTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MaxSize returns the largest accepted payload in bytes.
func (m *Manager) MaxSize() int64 {
	return m.maxSize
}

// Store writes data under ref, replacing any previous payload.
func (m *Manager) Store(ctx context.Context, ref BlobRef, contentType string, data []byte) error {
	if int64(len(data)) > m.maxSize {
		return errs.ErrBlobTooLarge
	}
	return common.RunWithTimeout(ctx, m.timeout, "attachment write", func(ctx context.Context) error {
		return m.blobs.Put(ctx, string(ref), contentType, data)
	})
}

// Retrieve reads the payload stored under ref.
func (m *Manager) Retrieve(ctx context.Context, ref BlobRef) (Content, error) {
	return common.CallWithTimeout(ctx, m.timeout, "attachment read", func(ctx context.Context) (Content, error) {
		contentType, data, err := m.blobs.Get(ctx, string(ref))
		if err != nil {
			if common.IsErrNotFound(err) {
				return Content{}, errs.ErrContentNotFound.Wrap(err)
			}
			return Content{}, err
		}
		return Content{ContentType: contentType, Data: data}, nil
	})
}

// Delete removes the payload stored under ref. An absent payload is reported
// as NotFound.
func (m *Manager) Delete(ctx context.Context, ref BlobRef) error {
	return common.RunWithTimeout(ctx, m.timeout, "attachment delete", func(ctx context.Context) error {
		err := m.blobs.Delete(ctx, string(ref))
		if common.IsErrNotFound(err) {
			return errs.ErrContentNotFound.Wrap(err)
		}
		return err
	})
}

// DeleteAll removes every payload in refs concurrently. Payloads that are
// already gone count as deleted; the first other failure is returned after
// all started deletions have finished.
func (m *Manager) DeleteAll(ctx context.Context, refs []BlobRef) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for _, ref := range refs {
		g.Go(func() error {
			err := m.Delete(ctx, ref)
			if err != nil && !common.IsErrNotFound(err) {
				return fmt.Errorf("failed to delete attachment %s: %w", ref, err)
			}
			return nil
		})
	}
	return g.Wait()
}

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

package attachment_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	persistence_inmemory "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRef(t *testing.T) {
	ref := attachment.DeriveRef("urn:sm:1", "docs/manual", "application/pdf", "")
	assert.Equal(t, ref, attachment.DeriveRef("urn:sm:1", "docs/manual", "application/pdf", ""))
	assert.True(t, strings.HasSuffix(string(ref), ".pdf"), ref)

	// sibling collections holding equally named files must not collide
	assert.NotEqual(t, ref, attachment.DeriveRef("urn:sm:1", "other/manual", "application/pdf", ""))
	assert.NotEqual(t, ref, attachment.DeriveRef("urn:sm:2", "docs/manual", "application/pdf", ""))

	fromName := attachment.DeriveRef("urn:sm:1", "model", "", "part.STEP")
	assert.True(t, strings.HasSuffix(string(fromName), ".step"), fromName)

	bare := attachment.DeriveRef("urn:sm:1", "model", "", "")
	assert.False(t, strings.Contains(string(bare)[strings.LastIndex(string(bare), "/"):], "."), bare)
}

func TestStoreRetrieveDelete(t *testing.T) {
	ctx := context.Background()
	manager := attachment.NewManager(persistence_inmemory.NewInMemoryBlobStore())
	ref := attachment.DeriveRef("urn:sm:1", "raw", "text/plain", "")

	require.NoError(t, manager.Store(ctx, ref, "text/plain", []byte("v1")))
	require.NoError(t, manager.Store(ctx, ref, "text/plain", []byte("v2")))

	content, err := manager.Retrieve(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, attachment.Content{ContentType: "text/plain", Data: []byte("v2")}, content)

	require.NoError(t, manager.Delete(ctx, ref))

	_, err = manager.Retrieve(ctx, ref)
	assert.ErrorIs(t, err, errs.ErrContentNotFound)
	assert.ErrorIs(t, manager.Delete(ctx, ref), errs.ErrContentNotFound)
}

func TestStoreRejectsOversizedPayload(t *testing.T) {
	blobs := persistence_inmemory.NewInMemoryBlobStore()
	manager := attachment.NewManager(blobs, attachment.WithMaxSize(4))

	err := manager.Store(context.Background(), "k", "", []byte("12345"))
	assert.ErrorIs(t, err, errs.ErrBlobTooLarge)
	assert.True(t, common.IsErrBadRequest(err))
	assert.Empty(t, blobs.Keys())
}

func TestDeleteAllToleratesMissingPayloads(t *testing.T) {
	ctx := context.Background()
	blobs := persistence_inmemory.NewInMemoryBlobStore()
	manager := attachment.NewManager(blobs, attachment.WithWorkers(2))

	refs := []attachment.BlobRef{"a", "b", "c", "never-uploaded"}
	for _, ref := range refs[:3] {
		require.NoError(t, manager.Store(ctx, ref, "", []byte(ref)))
	}

	require.NoError(t, manager.DeleteAll(ctx, refs))
	assert.Empty(t, blobs.Keys())
}

func TestDeleteAllReportsBackendFailure(t *testing.T) {
	ctx := context.Background()
	blobs := persistence_inmemory.NewInMemoryBlobStore()
	manager := attachment.NewManager(blobs)
	require.NoError(t, manager.Store(ctx, "a", "", nil))

	boom := errors.New("connection reset")
	blobs.InjectFault(persistence_inmemory.FailOn(persistence_inmemory.OpDelete, boom))

	err := manager.DeleteAll(ctx, []attachment.BlobRef{"a"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, blobs.Keys())
}

func TestSlowBackendIsUnavailable(t *testing.T) {
	blobs := persistence_inmemory.NewInMemoryBlobStore()
	manager := attachment.NewManager(blobs, attachment.WithTimeout(10*time.Millisecond))
	blobs.InjectFault(persistence_inmemory.Hang(persistence_inmemory.OpGet))

	_, err := manager.Retrieve(context.Background(), "a")
	assert.True(t, common.IsErrUnavailable(err))
}

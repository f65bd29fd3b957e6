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

package objectstore

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	contentType string
	data        []byte
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]object
	err     error
	deletes int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]object{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = object{contentType: aws.ToString(in.ContentType), data: data}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(obj.data)),
		ContentType: aws.String(obj.contentType),
	}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3BlobStorePutGet(t *testing.T) {
	fake := newFakeS3()
	sut := NewS3BlobStore(fake, "attachments", "submodels")
	ctx := context.Background()

	require.NoError(t, sut.Put(ctx, "ab12/c20/ZmlsZQ.pdf", "application/pdf", []byte("%PDF")))
	assert.Contains(t, fake.objects, "submodels/ab12/c20/ZmlsZQ.pdf")

	contentType, data, err := sut.Get(ctx, "ab12/c20/ZmlsZQ.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF"), data)

	_, _, err = sut.Get(ctx, "missing")
	assert.True(t, common.IsErrNotFound(err))
}

func TestS3BlobStoreDelete(t *testing.T) {
	fake := newFakeS3()
	sut := NewS3BlobStore(fake, "attachments", "")
	ctx := context.Background()

	require.NoError(t, sut.Put(ctx, "k", "text/plain", []byte("x")))
	require.NoError(t, sut.Delete(ctx, "k"))
	assert.Empty(t, fake.objects)

	assert.True(t, common.IsErrNotFound(sut.Delete(ctx, "k")))
	assert.Equal(t, 1, fake.deletes)
}

func TestS3BlobStoreSlowDownIsUnavailable(t *testing.T) {
	fake := newFakeS3()
	fake.err = &smithy.GenericAPIError{Code: "SlowDown", Fault: smithy.FaultServer}
	sut := NewS3BlobStore(fake, "attachments", "")

	assert.True(t, common.IsErrUnavailable(sut.Put(context.Background(), "k", "text/plain", []byte("x"))))
	_, _, err := sut.Get(context.Background(), "k")
	assert.True(t, common.IsErrUnavailable(err))
}

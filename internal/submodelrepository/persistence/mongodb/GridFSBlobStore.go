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

package mongodb

import (
	"bytes"
	"context"
	"io"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSBlobStore keeps attachment payloads as GridFS files named by their key.
// Every write adds a revision; older revisions are removed afterwards.
type GridFSBlobStore struct {
	db         *mongo.Database
	bucketName string
}

// NewGridFSBlobStore creates a blob store using the bucket bucketName in db.
func NewGridFSBlobStore(db *mongo.Database, bucketName string) *GridFSBlobStore {
	return &GridFSBlobStore{db: db, bucketName: bucketName}
}

// bucket returns a bucket bounded by the deadline of ctx. Buckets carry their
// deadlines as state, so every call gets its own.
func (s *GridFSBlobStore) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.bucketName))
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return bucket, nil
}

// Put uploads data as the newest revision of key and removes older ones.
func (s *GridFSBlobStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	bucket, err := s.bucket(ctx)
	if err != nil {
		return mapError("opening bucket", err)
	}
	id, err := bucket.UploadFromStream(key, bytes.NewReader(data),
		options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType}))
	if err != nil {
		return mapError("uploading attachment", err)
	}
	_, err = s.deleteRevisions(ctx, bucket, bson.M{"filename": key, "_id": bson.M{"$ne": id}})
	return err
}

// Get downloads the newest revision of key.
func (s *GridFSBlobStore) Get(ctx context.Context, key string) (string, []byte, error) {
	bucket, err := s.bucket(ctx)
	if err != nil {
		return "", nil, mapError("opening bucket", err)
	}
	stream, err := bucket.OpenDownloadStreamByName(key)
	if err != nil {
		return "", nil, mapError(key, err)
	}
	defer func() {
		_ = stream.Close()
	}()
	data, err := io.ReadAll(stream)
	if err != nil {
		return "", nil, mapError("downloading attachment", err)
	}
	return contentTypeOf(stream.GetFile().Metadata), data, nil
}

// Delete removes every revision of key.
func (s *GridFSBlobStore) Delete(ctx context.Context, key string) error {
	bucket, err := s.bucket(ctx)
	if err != nil {
		return mapError("opening bucket", err)
	}
	deleted, err := s.deleteRevisions(ctx, bucket, bson.M{"filename": key})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.NewErrNotFound(key)
	}
	return nil
}

func (s *GridFSBlobStore) deleteRevisions(ctx context.Context, bucket *gridfs.Bucket, filter bson.M) (int, error) {
	cursor, err := bucket.FindContext(ctx, filter)
	if err != nil {
		return 0, mapError("finding attachment revisions", err)
	}
	var files []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return 0, mapError("finding attachment revisions", err)
	}
	for _, f := range files {
		// a concurrent Delete may have removed the revision already
		if err := mapError("deleting attachment revision", bucket.DeleteContext(ctx, f.ID)); err != nil && !common.IsErrNotFound(err) {
			return 0, err
		}
	}
	return len(files), nil
}

func contentTypeOf(metadata bson.Raw) string {
	if len(metadata) == 0 {
		return ""
	}
	value, err := metadata.LookupErr("contentType")
	if err != nil {
		return ""
	}
	contentType, _ := value.StringValueOK()
	return contentType
}

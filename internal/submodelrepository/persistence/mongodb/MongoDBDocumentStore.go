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
	"context"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type documentRecord struct {
	ID       string   `bson:"_id"`
	Document bson.Raw `bson:"document"`
}

// DocumentStore keeps one document per submodel id. Documents are stored as
// native BSON so they stay queryable from the mongo shell.
type DocumentStore struct {
	collection *mongo.Collection
}

// NewDocumentStore creates a DocumentStore on collection.
func NewDocumentStore(collection *mongo.Collection) *DocumentStore {
	return &DocumentStore{collection: collection}
}

// Get returns the document of id as JSON.
func (s *DocumentStore) Get(ctx context.Context, id string) ([]byte, error) {
	var record documentRecord
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		return nil, mapError(id, err)
	}
	doc, err := bson.MarshalExtJSON(record.Document, false, false)
	if err != nil {
		return nil, common.NewInternalServerError("converting stored document").Wrap(err)
	}
	return doc, nil
}

// Put inserts or replaces the document of id.
func (s *DocumentStore) Put(ctx context.Context, id string, doc []byte) error {
	var fields bson.D
	if err := bson.UnmarshalExtJSON(doc, false, &fields); err != nil {
		return common.NewInternalServerError("converting document to BSON").Wrap(err)
	}
	record := bson.D{{Key: "_id", Value: id}, {Key: "document", Value: fields}}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, record, options.Replace().SetUpsert(true))
	return mapError("writing document", err)
}

// Delete removes the document of id.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("deleting document", err)
	}
	if result.DeletedCount == 0 {
		return common.NewErrNotFound(id)
	}
	return nil
}

// List returns all document ids in ascending order.
func (s *DocumentStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, mapError("listing documents", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var record struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&record); err != nil {
			return nil, mapError("listing documents", err)
		}
		ids = append(ids, record.ID)
	}
	return ids, mapError("listing documents", cursor.Err())
}

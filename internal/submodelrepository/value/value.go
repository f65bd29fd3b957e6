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

// Package value converts between the structural form of submodel elements and
// their value-only form used for partial reads and writes.
package value

import "github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"

// SubmodelElementValue is the value-only form of one element variant. It is
// implemented only by the types of this package.
type SubmodelElementValue interface {
	// ModelType names the element variant the value belongs to.
	ModelType() model.ModelType
}

// ValueOnly pairs a value with the idShort of the element it belongs to. It
// keeps the order of entity statements and relationship annotations.
type ValueOnly struct {
	IdShort string //nolint:revive
	Value   SubmodelElementValue
}

// PropertyValue is the textual value of a Property.
type PropertyValue struct {
	Value string
}

func (PropertyValue) ModelType() model.ModelType { return model.ModelTypeProperty }

// RangeValue holds the textual bounds of a Range.
type RangeValue struct {
	Min string
	Max string
}

func (RangeValue) ModelType() model.ModelType { return model.ModelTypeRange }

// MultiLanguagePropertyValue is the ordered set of language tagged texts.
type MultiLanguagePropertyValue []model.LangString

func (MultiLanguagePropertyValue) ModelType() model.ModelType {
	return model.ModelTypeMultiLanguageProperty
}

// FileValue describes the content of a File. The uploaded payload itself is
// managed by the attachment package.
type FileValue struct {
	ContentType string
	Value       string
}

func (FileValue) ModelType() model.ModelType { return model.ModelTypeFile }

// BlobValue carries the inline content of a Blob.
type BlobValue struct {
	ContentType string
	Value       []byte
}

func (BlobValue) ModelType() model.ModelType { return model.ModelTypeBlob }

// ReferenceValue is the value-only form of a reference.
type ReferenceValue struct {
	Type               model.ReferenceTypes `json:"type"`
	Keys               []model.Key          `json:"keys"`
	ReferredSemanticID *ReferenceValue      `json:"referredSemanticId,omitempty"`
}

// ReferenceElementValue is the reference held by a ReferenceElement; nil when unset.
type ReferenceElementValue struct {
	Value *ReferenceValue
}

func (ReferenceElementValue) ModelType() model.ModelType { return model.ModelTypeReferenceElement }

// RelationshipElementValue holds both ends of a relationship.
type RelationshipElementValue struct {
	First  *ReferenceValue
	Second *ReferenceValue
}

func (RelationshipElementValue) ModelType() model.ModelType {
	return model.ModelTypeRelationshipElement
}

// AnnotatedRelationshipElementValue holds both ends of a relationship and the
// values of its annotations.
type AnnotatedRelationshipElementValue struct {
	First       *ReferenceValue
	Second      *ReferenceValue
	Annotations []ValueOnly
}

func (AnnotatedRelationshipElementValue) ModelType() model.ModelType {
	return model.ModelTypeAnnotatedRelationshipElement
}

// SpecificAssetIDValue is the value-only form of a specific asset id.
type SpecificAssetIDValue struct {
	Name              string          `json:"name"`
	Value             string          `json:"value"`
	ExternalSubjectID *ReferenceValue `json:"externalSubjectId,omitempty"`
}

// EntityValue holds the statement values and asset identification of an Entity.
type EntityValue struct {
	Statements       []ValueOnly
	EntityType       model.EntityType
	GlobalAssetID    string
	SpecificAssetIDs []SpecificAssetIDValue
}

func (EntityValue) ModelType() model.ModelType { return model.ModelTypeEntity }

// SubmodelElementCollectionValue maps child idShorts to the child values.
type SubmodelElementCollectionValue map[string]SubmodelElementValue

func (SubmodelElementCollectionValue) ModelType() model.ModelType {
	return model.ModelTypeSubmodelElementCollection
}

func toReferenceValue(ref *model.Reference) *ReferenceValue {
	if ref == nil {
		return nil
	}
	v := &ReferenceValue{Type: ref.Type, ReferredSemanticID: toReferenceValue(ref.ReferredSemanticID)}
	if ref.Keys != nil {
		v.Keys = append([]model.Key(nil), ref.Keys...)
	}
	return v
}

func fromReferenceValue(v *ReferenceValue) *model.Reference {
	if v == nil {
		return nil
	}
	ref := &model.Reference{Type: v.Type, ReferredSemanticID: fromReferenceValue(v.ReferredSemanticID)}
	if v.Keys != nil {
		ref.Keys = append([]model.Key(nil), v.Keys...)
	}
	return ref
}

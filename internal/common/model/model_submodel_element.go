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

// Package model defines the element tree of a submodel: the closed set of
// submodel element variants, the recursive collection type and the submodel
// root container.
package model

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ModelType is the variant tag of a submodel element.
type ModelType string

const (
	ModelTypeProperty                     ModelType = "Property"
	ModelTypeRange                        ModelType = "Range"
	ModelTypeMultiLanguageProperty        ModelType = "MultiLanguageProperty"
	ModelTypeFile                         ModelType = "File"
	ModelTypeBlob                         ModelType = "Blob"
	ModelTypeEntity                       ModelType = "Entity"
	ModelTypeReferenceElement             ModelType = "ReferenceElement"
	ModelTypeRelationshipElement          ModelType = "RelationshipElement"
	ModelTypeAnnotatedRelationshipElement ModelType = "AnnotatedRelationshipElement"
	ModelTypeSubmodelElementCollection    ModelType = "SubmodelElementCollection"
	ModelTypeSubmodel                     ModelType = "Submodel"
)

// SubmodelElement is implemented by the pointer types of the ten element
// variants of this package and by nothing else.
type SubmodelElement interface {
	GetIdShort() string
	GetCategory() string
	GetDescription() []LangString
	GetSemanticID() *Reference
	GetModelType() ModelType

	SetIdShort(string)
	SetSemanticID(*Reference)

	isSubmodelElement()
}

// Referable holds the attributes shared by all submodel elements.
type Referable struct {
	IdShort     string       `json:"idShort,omitempty"` //nolint:revive
	Category    string       `json:"category,omitempty"`
	Description []LangString `json:"description,omitempty"`
	SemanticID  *Reference   `json:"semanticId,omitempty"`
}

//nolint:all
func (r Referable) GetIdShort() string {
	return r.IdShort
}

func (r Referable) GetCategory() string {
	return r.Category
}

func (r Referable) GetDescription() []LangString {
	return r.Description
}

func (r Referable) GetSemanticID() *Reference {
	return r.SemanticID
}

//nolint:all
func (r *Referable) SetIdShort(v string) {
	r.IdShort = v
}

func (r *Referable) SetSemanticID(v *Reference) {
	r.SemanticID = v
}

func (r Referable) copyReferable() Referable {
	return Referable{
		IdShort:     r.IdShort,
		Category:    r.Category,
		Description: copyLangStrings(r.Description),
		SemanticID:  r.SemanticID.Copy(),
	}
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement type from JSON
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	var raw struct {
		ModelType ModelType `json:"modelType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}

	var element SubmodelElement
	switch raw.ModelType {
	case ModelTypeProperty:
		element = &Property{}
	case ModelTypeRange:
		element = &Range{}
	case ModelTypeMultiLanguageProperty:
		element = &MultiLanguageProperty{}
	case ModelTypeFile:
		element = &File{}
	case ModelTypeBlob:
		element = &Blob{}
	case ModelTypeEntity:
		element = &Entity{}
	case ModelTypeReferenceElement:
		element = &ReferenceElement{}
	case ModelTypeRelationshipElement:
		element = &RelationshipElement{}
	case ModelTypeAnnotatedRelationshipElement:
		element = &AnnotatedRelationshipElement{}
	case ModelTypeSubmodelElementCollection:
		element = &SubmodelElementCollection{}
	default:
		return nil, fmt.Errorf("unsupported modelType: %q", raw.ModelType)
	}
	if err := json.Unmarshal(data, element); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", raw.ModelType, err)
	}
	return element, nil
}

func unmarshalSubmodelElements(raws []jsoniter.RawMessage, field string) ([]SubmodelElement, error) {
	if raws == nil {
		return nil, nil
	}
	elements := make([]SubmodelElement, len(raws))
	for i, raw := range raws {
		element, err := UnmarshalSubmodelElement(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s[%d]: %w", field, i, err)
		}
		elements[i] = element
	}
	return elements, nil
}

// CopySubmodelElement returns a deep copy of element, including all descendants.
func CopySubmodelElement(element SubmodelElement) SubmodelElement {
	switch e := element.(type) {
	case *Property:
		return e.copy()
	case *Range:
		return e.copy()
	case *MultiLanguageProperty:
		return e.copy()
	case *File:
		return e.copy()
	case *Blob:
		return e.copy()
	case *Entity:
		return e.copy()
	case *ReferenceElement:
		return e.copy()
	case *RelationshipElement:
		return e.copy()
	case *AnnotatedRelationshipElement:
		return e.copy()
	case *SubmodelElementCollection:
		return e.copy()
	default:
		return nil
	}
}

// CopySubmodelElements deep-copies a list of elements.
func CopySubmodelElements(elements []SubmodelElement) []SubmodelElement {
	if elements == nil {
		return nil
	}
	out := make([]SubmodelElement, len(elements))
	for i, e := range elements {
		out[i] = CopySubmodelElement(e)
	}
	return out
}

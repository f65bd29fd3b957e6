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

package model

import "fmt"

// ReferenceTypes distinguishes references into the model from external ones.
type ReferenceTypes string

const (
	ReferenceTypesExternalReference ReferenceTypes = "ExternalReference"
	ReferenceTypesModelReference    ReferenceTypes = "ModelReference"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v ReferenceTypes) IsValid() bool {
	return v == ReferenceTypesExternalReference || v == ReferenceTypesModelReference
}

// KeyTypes names the kind of object a reference key points to.
type KeyTypes string

const (
	KeyTypesAnnotatedRelationshipElement KeyTypes = "AnnotatedRelationshipElement"
	KeyTypesBlob                         KeyTypes = "Blob"
	KeyTypesCapability                   KeyTypes = "Capability"
	KeyTypesConceptDescription           KeyTypes = "ConceptDescription"
	KeyTypesEntity                       KeyTypes = "Entity"
	KeyTypesFile                         KeyTypes = "File"
	KeyTypesFragmentReference            KeyTypes = "FragmentReference"
	KeyTypesGlobalReference              KeyTypes = "GlobalReference"
	KeyTypesMultiLanguageProperty        KeyTypes = "MultiLanguageProperty"
	KeyTypesProperty                     KeyTypes = "Property"
	KeyTypesRange                        KeyTypes = "Range"
	KeyTypesReferenceElement             KeyTypes = "ReferenceElement"
	KeyTypesRelationshipElement          KeyTypes = "RelationshipElement"
	KeyTypesSubmodel                     KeyTypes = "Submodel"
	KeyTypesSubmodelElement              KeyTypes = "SubmodelElement"
	KeyTypesSubmodelElementCollection    KeyTypes = "SubmodelElementCollection"
)

// Key is a single step of a Reference.
type Key struct {
	Type  KeyTypes `json:"type"`
	Value string   `json:"value"`
}

// Reference points to an element of a model or to an external entity.
type Reference struct {
	Type               ReferenceTypes `json:"type"`
	Keys               []Key          `json:"keys"`
	ReferredSemanticID *Reference     `json:"referredSemanticId,omitempty"`
}

// NewReference creates a Reference of the given type with the given keys.
func NewReference(refType ReferenceTypes, keys ...Key) *Reference {
	return &Reference{Type: refType, Keys: keys}
}

// Copy returns a deep copy of r. A nil reference copies to nil.
func (r *Reference) Copy() *Reference {
	if r == nil {
		return nil
	}
	c := &Reference{Type: r.Type, ReferredSemanticID: r.ReferredSemanticID.Copy()}
	if r.Keys != nil {
		c.Keys = append([]Key(nil), r.Keys...)
	}
	return c
}

func (r *Reference) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", r.Type, r.Keys)
}

// LangString is a text tagged with its language.
type LangString struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

func copyLangStrings(in []LangString) []LangString {
	if in == nil {
		return nil
	}
	return append([]LangString(nil), in...)
}

// SpecificAssetID is a name/value pair identifying an asset in a specific context.
type SpecificAssetID struct {
	Name              string     `json:"name"`
	Value             string     `json:"value"`
	ExternalSubjectID *Reference `json:"externalSubjectId,omitempty"`
}

// EntityType type of EntityType
type EntityType string

const (
	EntityTypeCoManagedEntity   EntityType = "CoManagedEntity"
	EntityTypeSelfManagedEntity EntityType = "SelfManagedEntity"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v EntityType) IsValid() bool {
	return v == EntityTypeCoManagedEntity || v == EntityTypeSelfManagedEntity
}

// DataTypeDefXsd is the XML schema data type of a Property or Range value.
type DataTypeDefXsd string

const (
	DataTypeDefXsdAnyURI             DataTypeDefXsd = "xs:anyURI"
	DataTypeDefXsdBoolean            DataTypeDefXsd = "xs:boolean"
	DataTypeDefXsdByte               DataTypeDefXsd = "xs:byte"
	DataTypeDefXsdDate               DataTypeDefXsd = "xs:date"
	DataTypeDefXsdDateTime           DataTypeDefXsd = "xs:dateTime"
	DataTypeDefXsdDecimal            DataTypeDefXsd = "xs:decimal"
	DataTypeDefXsdDouble             DataTypeDefXsd = "xs:double"
	DataTypeDefXsdFloat              DataTypeDefXsd = "xs:float"
	DataTypeDefXsdInt                DataTypeDefXsd = "xs:int"
	DataTypeDefXsdInteger            DataTypeDefXsd = "xs:integer"
	DataTypeDefXsdLong               DataTypeDefXsd = "xs:long"
	DataTypeDefXsdNegativeInteger    DataTypeDefXsd = "xs:negativeInteger"
	DataTypeDefXsdNonNegativeInteger DataTypeDefXsd = "xs:nonNegativeInteger"
	DataTypeDefXsdNonPositiveInteger DataTypeDefXsd = "xs:nonPositiveInteger"
	DataTypeDefXsdPositiveInteger    DataTypeDefXsd = "xs:positiveInteger"
	DataTypeDefXsdShort              DataTypeDefXsd = "xs:short"
	DataTypeDefXsdString             DataTypeDefXsd = "xs:string"
	DataTypeDefXsdUnsignedByte       DataTypeDefXsd = "xs:unsignedByte"
	DataTypeDefXsdUnsignedInt        DataTypeDefXsd = "xs:unsignedInt"
	DataTypeDefXsdUnsignedLong       DataTypeDefXsd = "xs:unsignedLong"
	DataTypeDefXsdUnsignedShort      DataTypeDefXsd = "xs:unsignedShort"
)

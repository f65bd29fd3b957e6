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

import jsoniter "github.com/json-iterator/go"

// AnnotatedRelationshipElement is a RelationshipElement that additionally owns
// a list of annotation data elements.
type AnnotatedRelationshipElement struct {
	Referable
	ModelType   ModelType         `json:"modelType"`
	First       *Reference        `json:"first,omitempty"`
	Second      *Reference        `json:"second,omitempty"`
	Annotations []SubmodelElement `json:"annotations,omitempty"`
}

// NewAnnotatedRelationshipElement creates a new AnnotatedRelationshipElement instance
func NewAnnotatedRelationshipElement(idShort string, first *Reference, second *Reference, annotations ...SubmodelElement) *AnnotatedRelationshipElement {
	return &AnnotatedRelationshipElement{
		Referable:   Referable{IdShort: idShort},
		ModelType:   ModelTypeAnnotatedRelationshipElement,
		First:       first,
		Second:      second,
		Annotations: annotations,
	}
}

func (*AnnotatedRelationshipElement) isSubmodelElement() {}

func (a AnnotatedRelationshipElement) GetModelType() ModelType {
	return ModelTypeAnnotatedRelationshipElement
}

func (a AnnotatedRelationshipElement) MarshalJSON() ([]byte, error) {
	type alias AnnotatedRelationshipElement
	al := alias(a)
	al.ModelType = ModelTypeAnnotatedRelationshipElement
	return json.Marshal(al)
}

// UnmarshalJSON resolves the concrete annotation types through their modelType.
func (a *AnnotatedRelationshipElement) UnmarshalJSON(data []byte) error {
	type Alias AnnotatedRelationshipElement
	aux := &struct {
		Annotations []jsoniter.RawMessage `json:"annotations,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(a),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	annotations, err := unmarshalSubmodelElements(aux.Annotations, "annotations")
	if err != nil {
		return err
	}
	a.Annotations = annotations
	return nil
}

func (a *AnnotatedRelationshipElement) copy() *AnnotatedRelationshipElement {
	c := *a
	c.Referable = a.copyReferable()
	c.First = a.First.Copy()
	c.Second = a.Second.Copy()
	c.Annotations = CopySubmodelElements(a.Annotations)
	return &c
}

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

// RelationshipElement relates two elements to each other.
type RelationshipElement struct {
	Referable
	ModelType ModelType  `json:"modelType"`
	First     *Reference `json:"first,omitempty"`
	Second    *Reference `json:"second,omitempty"`
}

// NewRelationshipElement creates a new RelationshipElement instance
func NewRelationshipElement(idShort string, first *Reference, second *Reference) *RelationshipElement {
	return &RelationshipElement{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeRelationshipElement,
		First:     first,
		Second:    second,
	}
}

func (*RelationshipElement) isSubmodelElement() {}

func (r RelationshipElement) GetModelType() ModelType {
	return ModelTypeRelationshipElement
}

func (r RelationshipElement) MarshalJSON() ([]byte, error) {
	type alias RelationshipElement
	a := alias(r)
	a.ModelType = ModelTypeRelationshipElement
	return json.Marshal(a)
}

func (r *RelationshipElement) copy() *RelationshipElement {
	c := *r
	c.Referable = r.copyReferable()
	c.First = r.First.Copy()
	c.Second = r.Second.Copy()
	return &c
}

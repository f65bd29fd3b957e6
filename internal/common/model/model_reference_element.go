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

// ReferenceElement holds a single reference.
type ReferenceElement struct {
	Referable
	ModelType ModelType  `json:"modelType"`
	Value     *Reference `json:"value,omitempty"`
}

// NewReferenceElement creates a new ReferenceElement instance
func NewReferenceElement(idShort string, value *Reference) *ReferenceElement {
	return &ReferenceElement{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeReferenceElement,
		Value:     value,
	}
}

func (*ReferenceElement) isSubmodelElement() {}

func (r ReferenceElement) GetModelType() ModelType {
	return ModelTypeReferenceElement
}

func (r ReferenceElement) MarshalJSON() ([]byte, error) {
	type alias ReferenceElement
	a := alias(r)
	a.ModelType = ModelTypeReferenceElement
	return json.Marshal(a)
}

func (r *ReferenceElement) copy() *ReferenceElement {
	c := *r
	c.Referable = r.copyReferable()
	c.Value = r.Value.Copy()
	return &c
}

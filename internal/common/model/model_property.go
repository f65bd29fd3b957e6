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

// Property is a single typed scalar value.
type Property struct {
	Referable
	ModelType ModelType      `json:"modelType"`
	ValueType DataTypeDefXsd `json:"valueType"`
	Value     string         `json:"value,omitempty"`
	ValueID   *Reference     `json:"valueId,omitempty"`
}

// NewProperty creates a new Property instance
func NewProperty(idShort string, valueType DataTypeDefXsd, value string) *Property {
	return &Property{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeProperty,
		ValueType: valueType,
		Value:     value,
	}
}

func (*Property) isSubmodelElement() {}

func (p Property) GetModelType() ModelType {
	return ModelTypeProperty
}

func (p Property) MarshalJSON() ([]byte, error) {
	type alias Property
	a := alias(p)
	a.ModelType = ModelTypeProperty
	return json.Marshal(a)
}

func (p *Property) copy() *Property {
	c := *p
	c.Referable = p.copyReferable()
	c.ValueID = p.ValueID.Copy()
	return &c
}

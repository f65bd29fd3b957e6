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

// Range is an interval of values of one value type. Either bound may be empty.
type Range struct {
	Referable
	ModelType ModelType      `json:"modelType"`
	ValueType DataTypeDefXsd `json:"valueType"`
	Min       string         `json:"min,omitempty"`
	Max       string         `json:"max,omitempty"`
}

// NewRange creates a new Range instance
func NewRange(idShort string, valueType DataTypeDefXsd, minValue string, maxValue string) *Range {
	return &Range{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeRange,
		ValueType: valueType,
		Min:       minValue,
		Max:       maxValue,
	}
}

func (*Range) isSubmodelElement() {}

func (r Range) GetModelType() ModelType {
	return ModelTypeRange
}

func (r Range) MarshalJSON() ([]byte, error) {
	type alias Range
	a := alias(r)
	a.ModelType = ModelTypeRange
	return json.Marshal(a)
}

func (r *Range) copy() *Range {
	c := *r
	c.Referable = r.copyReferable()
	return &c
}

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

// MultiLanguageProperty holds one text per language.
type MultiLanguageProperty struct {
	Referable
	ModelType ModelType    `json:"modelType"`
	Value     []LangString `json:"value,omitempty"`
	ValueID   *Reference   `json:"valueId,omitempty"`
}

// NewMultiLanguageProperty creates a new MultiLanguageProperty instance
func NewMultiLanguageProperty(idShort string, value ...LangString) *MultiLanguageProperty {
	return &MultiLanguageProperty{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeMultiLanguageProperty,
		Value:     value,
	}
}

func (*MultiLanguageProperty) isSubmodelElement() {}

func (m MultiLanguageProperty) GetModelType() ModelType {
	return ModelTypeMultiLanguageProperty
}

func (m MultiLanguageProperty) MarshalJSON() ([]byte, error) {
	type alias MultiLanguageProperty
	a := alias(m)
	a.ModelType = ModelTypeMultiLanguageProperty
	return json.Marshal(a)
}

func (m *MultiLanguageProperty) copy() *MultiLanguageProperty {
	c := *m
	c.Referable = m.copyReferable()
	c.Value = copyLangStrings(m.Value)
	c.ValueID = m.ValueID.Copy()
	return &c
}

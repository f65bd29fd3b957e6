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

// Submodel is the identified root container of an element tree.
type Submodel struct {
	ModelType        ModelType         `json:"modelType"`
	ID               string            `json:"id"`
	IdShort          string            `json:"idShort,omitempty"` //nolint:revive
	Description      []LangString      `json:"description,omitempty"`
	SemanticID       *Reference        `json:"semanticId,omitempty"`
	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// NewSubmodel creates a new Submodel instance
func NewSubmodel(id string, idShort string, elements ...SubmodelElement) *Submodel {
	return &Submodel{
		ModelType:        ModelTypeSubmodel,
		ID:               id,
		IdShort:          idShort,
		SubmodelElements: elements,
	}
}

func (s Submodel) MarshalJSON() ([]byte, error) {
	type alias Submodel
	a := alias(s)
	a.ModelType = ModelTypeSubmodel
	return json.Marshal(a)
}

// UnmarshalJSON resolves the concrete element types through their modelType.
func (s *Submodel) UnmarshalJSON(data []byte) error {
	type Alias Submodel
	aux := &struct {
		SubmodelElements []jsoniter.RawMessage `json:"submodelElements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	elements, err := unmarshalSubmodelElements(aux.SubmodelElements, "submodelElements")
	if err != nil {
		return err
	}
	s.SubmodelElements = elements
	return nil
}

// Children returns the top-level elements in order.
func (s *Submodel) Children() []SubmodelElement {
	return s.SubmodelElements
}

// SetChildren replaces the top-level elements.
func (s *Submodel) SetChildren(children []SubmodelElement) {
	s.SubmodelElements = children
}

// Copy returns a deep copy of s.
func (s *Submodel) Copy() *Submodel {
	c := *s
	c.Description = copyLangStrings(s.Description)
	c.SemanticID = s.SemanticID.Copy()
	c.SubmodelElements = CopySubmodelElements(s.SubmodelElements)
	return &c
}

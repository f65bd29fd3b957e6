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

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElementCollection is the only recursive variant: it owns an ordered
// list of child elements addressable by path.
type SubmodelElementCollection struct {
	Referable
	ModelType ModelType         `json:"modelType"`
	Value     []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementCollection creates a collection holding children. It fails
// with MalformedTree if two children share an idShort.
func NewSubmodelElementCollection(idShort string, children ...SubmodelElement) (*SubmodelElementCollection, error) {
	if err := checkSiblingIdShorts(children); err != nil {
		return nil, fmt.Errorf("collection %q: %w", idShort, err)
	}
	return &SubmodelElementCollection{
		Referable: Referable{IdShort: idShort},
		ModelType: ModelTypeSubmodelElementCollection,
		Value:     children,
	}, nil
}

func (*SubmodelElementCollection) isSubmodelElement() {}

func (c SubmodelElementCollection) GetModelType() ModelType {
	return ModelTypeSubmodelElementCollection
}

func (c SubmodelElementCollection) MarshalJSON() ([]byte, error) {
	type alias SubmodelElementCollection
	a := alias(c)
	a.ModelType = ModelTypeSubmodelElementCollection
	return json.Marshal(a)
}

// UnmarshalJSON implements custom JSON unmarshaling for SubmodelElementCollection
func (c *SubmodelElementCollection) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementCollection
	aux := &struct {
		Value []jsoniter.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	value, err := unmarshalSubmodelElements(aux.Value, "value")
	if err != nil {
		return err
	}
	c.Value = value
	return nil
}

// Children returns the child elements in order.
func (c *SubmodelElementCollection) Children() []SubmodelElement {
	return c.Value
}

// SetChildren replaces the child elements.
func (c *SubmodelElementCollection) SetChildren(children []SubmodelElement) {
	c.Value = children
}

func (c *SubmodelElementCollection) copy() *SubmodelElementCollection {
	cp := *c
	cp.Referable = c.copyReferable()
	cp.Value = CopySubmodelElements(c.Value)
	return &cp
}

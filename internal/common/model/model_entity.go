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

// Entity describes an asset through a list of statements.
type Entity struct {
	Referable
	ModelType        ModelType         `json:"modelType"`
	EntityType       EntityType        `json:"entityType"`
	GlobalAssetID    string            `json:"globalAssetId,omitempty"`
	SpecificAssetIDs []SpecificAssetID `json:"specificAssetIds,omitempty"`
	Statements       []SubmodelElement `json:"statements,omitempty"`
}

// NewEntity creates a new Entity instance
func NewEntity(idShort string, entityType EntityType, statements ...SubmodelElement) *Entity {
	return &Entity{
		Referable:  Referable{IdShort: idShort},
		ModelType:  ModelTypeEntity,
		EntityType: entityType,
		Statements: statements,
	}
}

func (*Entity) isSubmodelElement() {}

func (e Entity) GetModelType() ModelType {
	return ModelTypeEntity
}

func (e Entity) MarshalJSON() ([]byte, error) {
	type alias Entity
	a := alias(e)
	a.ModelType = ModelTypeEntity
	return json.Marshal(a)
}

// UnmarshalJSON custom unmarshaler for Entity to handle the Statements field
func (e *Entity) UnmarshalJSON(data []byte) error {
	type Alias Entity
	aux := &struct {
		Statements []jsoniter.RawMessage `json:"statements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	statements, err := unmarshalSubmodelElements(aux.Statements, "statements")
	if err != nil {
		return err
	}
	e.Statements = statements
	return nil
}

func (e *Entity) copy() *Entity {
	c := *e
	c.Referable = e.copyReferable()
	if e.SpecificAssetIDs != nil {
		c.SpecificAssetIDs = make([]SpecificAssetID, len(e.SpecificAssetIDs))
		for i, id := range e.SpecificAssetIDs {
			c.SpecificAssetIDs[i] = SpecificAssetID{Name: id.Name, Value: id.Value, ExternalSubjectID: id.ExternalSubjectID.Copy()}
		}
	}
	c.Statements = CopySubmodelElements(e.Statements)
	return &c
}

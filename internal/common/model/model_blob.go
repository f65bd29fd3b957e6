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

// Blob carries small binary content inline. Larger payloads are uploaded as
// attachments and stored outside the tree.
type Blob struct {
	Referable
	ModelType   ModelType `json:"modelType"`
	ContentType string    `json:"contentType,omitempty"`
	Value       []byte    `json:"value,omitempty"`
}

// NewBlob creates a new Blob instance
func NewBlob(idShort string, contentType string, value []byte) *Blob {
	return &Blob{
		Referable:   Referable{IdShort: idShort},
		ModelType:   ModelTypeBlob,
		ContentType: contentType,
		Value:       value,
	}
}

func (*Blob) isSubmodelElement() {}

func (b Blob) GetModelType() ModelType {
	return ModelTypeBlob
}

func (b Blob) MarshalJSON() ([]byte, error) {
	type alias Blob
	a := alias(b)
	a.ModelType = ModelTypeBlob
	return json.Marshal(a)
}

func (b *Blob) copy() *Blob {
	c := *b
	c.Referable = b.copyReferable()
	if b.Value != nil {
		c.Value = append([]byte(nil), b.Value...)
	}
	return &c
}

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

// File references a document by path or URI. Uploaded content is stored
// outside the tree and bound to the element by the store.
type File struct {
	Referable
	ModelType   ModelType `json:"modelType"`
	ContentType string    `json:"contentType,omitempty"`
	Value       string    `json:"value,omitempty"`
}

// NewFile creates a new File instance
func NewFile(idShort string, contentType string, value string) *File {
	return &File{
		Referable:   Referable{IdShort: idShort},
		ModelType:   ModelTypeFile,
		ContentType: contentType,
		Value:       value,
	}
}

func (*File) isSubmodelElement() {}

func (f File) GetModelType() ModelType {
	return ModelTypeFile
}

func (f File) MarshalJSON() ([]byte, error) {
	type alias File
	a := alias(f)
	a.ModelType = ModelTypeFile
	return json.Marshal(a)
}

func (f *File) copy() *File {
	c := *f
	c.Referable = f.copyReferable()
	return &c
}

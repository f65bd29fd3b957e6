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
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// PathDelimiter separates idShort segments of an element path. It is not a
// legal idShort character.
const PathDelimiter = "/"

// Container is implemented by the two owners of path-addressable children:
// the Submodel and the SubmodelElementCollection.
type Container interface {
	Children() []SubmodelElement
	SetChildren([]SubmodelElement)
}

// ValidateIdShort rejects idShorts that cannot be addressed by a path.
func ValidateIdShort(idShort string) error {
	if idShort == "" {
		return common.NewErrMalformedTree("idShort must not be empty")
	}
	if strings.Contains(idShort, PathDelimiter) {
		return common.NewErrMalformedTree(fmt.Sprintf("idShort %q must not contain %q", idShort, PathDelimiter))
	}
	return nil
}

func checkSiblingIdShorts(siblings []SubmodelElement) error {
	seen := make(map[string]struct{}, len(siblings))
	for i, element := range siblings {
		if element == nil {
			return common.NewErrMalformedTree(fmt.Sprintf("element at index %d is nil", i))
		}
		idShort := element.GetIdShort()
		if _, dup := seen[idShort]; dup {
			return common.NewErrMalformedTree(fmt.Sprintf("duplicate idShort %q", idShort))
		}
		seen[idShort] = struct{}{}
	}
	return nil
}

// ValidateElements checks the whole subtree below elements: every idShort is
// addressable and unique among its siblings, including entity statements and
// relationship annotations.
func ValidateElements(elements []SubmodelElement) error {
	if err := checkSiblingIdShorts(elements); err != nil {
		return err
	}
	for _, element := range elements {
		if err := ValidateIdShort(element.GetIdShort()); err != nil {
			return err
		}
		var children []SubmodelElement
		switch e := element.(type) {
		case *SubmodelElementCollection:
			children = e.Value
		case *Entity:
			children = e.Statements
		case *AnnotatedRelationshipElement:
			children = e.Annotations
		default:
			continue
		}
		if err := ValidateElements(children); err != nil {
			return fmt.Errorf("below %q: %w", element.GetIdShort(), err)
		}
	}
	return nil
}

// ValidateSubmodel checks the identifier and the element tree of sm.
func ValidateSubmodel(sm *Submodel) error {
	if sm == nil {
		return common.NewErrBadRequest("submodel must not be nil")
	}
	if sm.ID == "" {
		return common.NewErrBadRequest("submodel id must not be empty")
	}
	return ValidateElements(sm.SubmodelElements)
}

// WalkFunc is called for every path-addressable node. Returning false stops the walk.
type WalkFunc func(path string, element SubmodelElement) bool

// Walk visits elements depth-first in pre-order, descending into collections.
// prefix is prepended to every reported path.
func Walk(prefix string, elements []SubmodelElement, fn WalkFunc) bool {
	for _, element := range elements {
		path := element.GetIdShort()
		if prefix != "" {
			path = prefix + PathDelimiter + path
		}
		if !fn(path, element) {
			return false
		}
		if c, ok := element.(*SubmodelElementCollection); ok {
			if !Walk(path, c.Value, fn) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether a and b are structurally equal. Nil and empty lists
// are treated alike.
func Equal(a, b SubmodelElement) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// Diff returns a human readable difference between a and b, for test output.
func Diff(a, b SubmodelElement) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

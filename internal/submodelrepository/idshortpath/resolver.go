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

// Package idshortpath resolves delimiter-separated idShort paths inside a
// submodel element tree.
package idshortpath

import (
	"fmt"
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
)

// Delimiter separates the idShort segments of a path.
const Delimiter = model.PathDelimiter

// NodeRef locates a resolved element inside its owning container.
type NodeRef struct {
	Path    string
	Element model.SubmodelElement
	Parent  model.Container
	Index   int
}

// Split breaks path into its segments. The empty path yields no segments;
// empty segments (leading, trailing or doubled delimiters) are rejected.
func Split(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, Delimiter)
	for i, s := range segments {
		if s == "" {
			return nil, common.NewErrInvalidPathSegment(fmt.Sprintf("empty segment at position %d", i)).WithLocation("", path)
		}
	}
	return segments, nil
}

// Join builds a path from segments, skipping empty ones.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, Delimiter)
}

// findChild returns the index of the single child called idShort. Duplicate
// idShorts are a corruption of the tree and reported as AmbiguousPath.
func findChild(children []model.SubmodelElement, idShort string, path string) (int, error) {
	found := -1
	for i, child := range children {
		if child.GetIdShort() != idShort {
			continue
		}
		if found >= 0 {
			return -1, common.NewErrAmbiguousPath(fmt.Sprintf("idShort %q occurs more than once", idShort)).WithLocation("", path)
		}
		found = i
	}
	if found < 0 {
		return -1, common.NewErrNotFound(fmt.Sprintf("no element %q", idShort)).WithLocation("", path)
	}
	return found, nil
}

// descend walks segments from root and returns the container owning the last
// segment. Every segment it steps through must be a collection.
func descend(root model.Container, segments []string, path string) (model.Container, error) {
	current := root
	for _, segment := range segments {
		idx, err := findChild(current.Children(), segment, path)
		if err != nil {
			return nil, err
		}
		collection, ok := current.Children()[idx].(*model.SubmodelElementCollection)
		if !ok {
			return nil, common.NewErrInvalidPathSegment(fmt.Sprintf("%q is a %s, not a collection", segment, current.Children()[idx].GetModelType())).WithLocation("", path)
		}
		current = collection
	}
	return current, nil
}

// Resolve locates the element addressed by path. The final segment may be
// any variant.
func Resolve(root model.Container, path string) (NodeRef, error) {
	segments, err := Split(path)
	if err != nil {
		return NodeRef{}, err
	}
	if len(segments) == 0 {
		return NodeRef{}, common.NewErrInvalidPathSegment("path must not be empty")
	}
	parent, err := descend(root, segments[:len(segments)-1], path)
	if err != nil {
		return NodeRef{}, err
	}
	idx, err := findChild(parent.Children(), segments[len(segments)-1], path)
	if err != nil {
		return NodeRef{}, err
	}
	return NodeRef{
		Path:    path,
		Element: parent.Children()[idx],
		Parent:  parent,
		Index:   idx,
	}, nil
}

// ResolveParentAndKey locates the container that owns, or would own, the
// element addressed by path, without requiring that element to exist.
func ResolveParentAndKey(root model.Container, path string) (model.Container, string, error) {
	segments, err := Split(path)
	if err != nil {
		return nil, "", err
	}
	if len(segments) == 0 {
		return nil, "", common.NewErrInvalidPathSegment("path must not be empty")
	}
	parent, err := descend(root, segments[:len(segments)-1], path)
	if err != nil {
		return nil, "", err
	}
	return parent, segments[len(segments)-1], nil
}

// ResolveContainer returns the container addressed by path: the root for the
// empty path, otherwise a collection.
func ResolveContainer(root model.Container, path string) (model.Container, error) {
	segments, err := Split(path)
	if err != nil {
		return nil, err
	}
	return descend(root, segments, path)
}

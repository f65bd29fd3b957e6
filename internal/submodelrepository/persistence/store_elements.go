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

package persistence

import (
	"context"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/attachment"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/idshortpath"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/value"
)

func (s *SubmodelStore) resolve(ctx context.Context, id string, path string) (*document, idshortpath.NodeRef, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, idshortpath.NodeRef{}, err
	}
	node, err := idshortpath.Resolve(doc.Submodel, path)
	if err != nil {
		return nil, idshortpath.NodeRef{}, err
	}
	return doc, node, nil
}

// GetElements returns the children of the collection at path, or the
// top-level elements for the empty path.
func (s *SubmodelStore) GetElements(ctx context.Context, id string, path string) (elements []model.SubmodelElement, err error) {
	defer observe("GetElements", id, path, time.Now(), &err)

	unlock := s.locks.RLock(id)
	defer unlock()
	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	container, err := idshortpath.ResolveContainer(doc.Submodel, path)
	if err != nil {
		return nil, err
	}
	return container.Children(), nil
}

// GetElement returns the element at path including its subtree.
func (s *SubmodelStore) GetElement(ctx context.Context, id string, path string) (element model.SubmodelElement, err error) {
	defer observe("GetElement", id, path, time.Now(), &err)

	unlock := s.locks.RLock(id)
	defer unlock()
	_, node, err := s.resolve(ctx, id, path)
	if err != nil {
		return nil, err
	}
	return node.Element, nil
}

// GetElementValue returns the value-only form of the element at path.
func (s *SubmodelStore) GetElementValue(ctx context.Context, id string, path string) (v value.SubmodelElementValue, err error) {
	defer observe("GetElementValue", id, path, time.Now(), &err)

	unlock := s.locks.RLock(id)
	defer unlock()
	_, node, err := s.resolve(ctx, id, path)
	if err != nil {
		return nil, err
	}
	return value.ExtractValue(node.Element)
}

// AddElement adds element as the last child of the collection at parentPath,
// or as a top-level element for the empty parentPath.
func (s *SubmodelStore) AddElement(ctx context.Context, id string, parentPath string, element model.SubmodelElement) (err error) {
	defer observe("AddElement", id, parentPath, time.Now(), &err)

	if element == nil {
		return common.NewErrBadRequest("element must not be nil")
	}
	if err := model.ValidateElements([]model.SubmodelElement{element}); err != nil {
		return err
	}
	if err := value.CheckElements([]model.SubmodelElement{element}); err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	parent, err := idshortpath.ResolveContainer(doc.Submodel, parentPath)
	if err != nil {
		return err
	}
	children := parent.Children()
	for _, child := range children {
		if child.GetIdShort() == element.GetIdShort() {
			return errs.ErrSubmodelElementAlreadyExists.WithLocation(id, idshortpath.Join(parentPath, element.GetIdShort()))
		}
	}
	parent.SetChildren(append(children, model.CopySubmodelElement(element)))
	return s.save(ctx, id, doc)
}

// UpdateElementValue applies v to the element at path. Uploaded File payloads
// that the new value no longer points at are deleted before the document is
// written.
func (s *SubmodelStore) UpdateElementValue(ctx context.Context, id string, path string, v value.SubmodelElementValue) (err error) {
	defer observe("UpdateElementValue", id, path, time.Now(), &err)

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	node, err := idshortpath.Resolve(doc.Submodel, path)
	if err != nil {
		return err
	}
	updated, err := value.ApplyValue(node.Element, v)
	if err != nil {
		return err
	}

	orphaned := orphanedBy(doc, path, updated)
	if len(orphaned) > 0 {
		ctx = context.WithoutCancel(ctx)
		if err := s.attachments.DeleteAll(ctx, refsOf(orphaned)); err != nil {
			return err
		}
		for p := range orphaned {
			delete(doc.Attachments, p)
		}
	}

	children := node.Parent.Children()
	children[node.Index] = updated
	node.Parent.SetChildren(children)
	return s.save(ctx, id, doc)
}

// DeleteElement removes the element at path and its subtree. The attachment
// payloads of the subtree are deleted first; if that fails the element stays.
func (s *SubmodelStore) DeleteElement(ctx context.Context, id string, path string) (err error) {
	defer observe("DeleteElement", id, path, time.Now(), &err)

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	doc, err := s.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	node, err := idshortpath.Resolve(doc.Submodel, path)
	if err != nil {
		return err
	}

	owned := doc.attachmentsWithin(path)
	ctx = context.WithoutCancel(ctx)
	if err := s.attachments.DeleteAll(ctx, refsOf(owned)); err != nil {
		return err
	}
	for p := range owned {
		delete(doc.Attachments, p)
	}

	children := node.Parent.Children()
	remaining := make([]model.SubmodelElement, 0, len(children)-1)
	remaining = append(remaining, children[:node.Index]...)
	remaining = append(remaining, children[node.Index+1:]...)
	node.Parent.SetChildren(remaining)
	return s.save(ctx, id, doc)
}

// orphanedBy returns the index entries at or below path whose File element in
// updated no longer references the stored payload.
func orphanedBy(doc *document, path string, updated model.SubmodelElement) map[string]attachment.BlobRef {
	owned := doc.attachmentsWithin(path)
	if len(owned) == 0 {
		return nil
	}
	elements := map[string]model.SubmodelElement{path: updated}
	if c, ok := updated.(*model.SubmodelElementCollection); ok {
		model.Walk(path, c.Value, func(p string, e model.SubmodelElement) bool {
			elements[p] = e
			return true
		})
	}
	orphaned := make(map[string]attachment.BlobRef)
	for p, ref := range owned {
		if f, ok := elements[p].(*model.File); ok && f.Value != string(ref) {
			orphaned[p] = ref
		}
	}
	return orphaned
}

func refsOf(entries map[string]attachment.BlobRef) []attachment.BlobRef {
	refs := make([]attachment.BlobRef, 0, len(entries))
	for _, ref := range entries {
		refs = append(refs, ref)
	}
	return refs
}

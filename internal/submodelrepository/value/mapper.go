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

package value

import (
	"fmt"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
)

// ValueMapper converts one element variant to and from its value-only form.
type ValueMapper interface {
	ModelType() model.ModelType
	Extract(element model.SubmodelElement) (SubmodelElementValue, error)
	// Apply writes v into element in place. The caller owns element.
	Apply(element model.SubmodelElement, v SubmodelElementValue) error
}

var (
	propertyMapper                     ValueMapper = propertyValueMapper{}
	rangeMapper                        ValueMapper = rangeValueMapper{}
	multiLanguagePropertyMapper        ValueMapper = multiLanguagePropertyValueMapper{}
	fileMapper                         ValueMapper = fileValueMapper{}
	blobMapper                         ValueMapper = blobValueMapper{}
	referenceElementMapper             ValueMapper = referenceElementValueMapper{}
	relationshipElementMapper          ValueMapper = relationshipElementValueMapper{}
	annotatedRelationshipElementMapper ValueMapper = annotatedRelationshipElementValueMapper{}
	entityMapper                       ValueMapper = entityValueMapper{}
	collectionMapper                   ValueMapper = collectionValueMapper{}
)

// MapperFor returns the mapper of the variant of element.
func MapperFor(element model.SubmodelElement) (ValueMapper, error) {
	switch element.(type) {
	case *model.Property:
		return propertyMapper, nil
	case *model.Range:
		return rangeMapper, nil
	case *model.MultiLanguageProperty:
		return multiLanguagePropertyMapper, nil
	case *model.File:
		return fileMapper, nil
	case *model.Blob:
		return blobMapper, nil
	case *model.ReferenceElement:
		return referenceElementMapper, nil
	case *model.RelationshipElement:
		return relationshipElementMapper, nil
	case *model.AnnotatedRelationshipElement:
		return annotatedRelationshipElementMapper, nil
	case *model.Entity:
		return entityMapper, nil
	case *model.SubmodelElementCollection:
		return collectionMapper, nil
	case nil:
		return nil, common.NewErrBadRequest("element must not be nil")
	default:
		return nil, common.NewErrUnsupportedVariant(fmt.Sprintf("no value mapper for %T", element))
	}
}

// ExtractValue returns the value-only form of element.
func ExtractValue(element model.SubmodelElement) (SubmodelElementValue, error) {
	m, err := MapperFor(element)
	if err != nil {
		return nil, err
	}
	return m.Extract(element)
}

// CheckElements extracts the value of every element, so stored text that does
// not parse as its declared type is refused before it is written.
func CheckElements(elements []model.SubmodelElement) error {
	for _, e := range elements {
		if _, err := ExtractValue(e); err != nil {
			return err
		}
	}
	return nil
}

// ApplyValue returns a deep copy of element with v applied. element itself is
// never modified, also not when an error is returned.
func ApplyValue(element model.SubmodelElement, v SubmodelElementValue) (model.SubmodelElement, error) {
	m, err := MapperFor(element)
	if err != nil {
		return nil, err
	}
	updated := model.CopySubmodelElement(element)
	if err := m.Apply(updated, v); err != nil {
		return nil, err
	}
	return updated, nil
}

func applyInPlace(element model.SubmodelElement, v SubmodelElementValue) error {
	m, err := MapperFor(element)
	if err != nil {
		return err
	}
	return m.Apply(element, v)
}

func errVariant(element model.SubmodelElement, v SubmodelElementValue) error {
	got := "nil value"
	if v != nil {
		got = string(v.ModelType()) + " value"
	}
	return common.NewErrUnsupportedVariant(fmt.Sprintf("%s cannot be applied to %s %q", got, element.GetModelType(), element.GetIdShort()))
}

// cast checks both sides of a mapper call against the expected variant.
func cast[E model.SubmodelElement, V SubmodelElementValue](element model.SubmodelElement, v SubmodelElementValue) (E, V, error) {
	e, eok := element.(E)
	val, vok := v.(V)
	if !eok || !vok {
		var zeroE E
		var zeroV V
		if !eok {
			return zeroE, zeroV, common.NewErrUnsupportedVariant(fmt.Sprintf("unexpected element %T", element))
		}
		return zeroE, zeroV, errVariant(element, v)
	}
	return e, val, nil
}

func castElement[E model.SubmodelElement](element model.SubmodelElement) (E, error) {
	e, ok := element.(E)
	if !ok {
		return e, common.NewErrUnsupportedVariant(fmt.Sprintf("unexpected element %T", element))
	}
	return e, nil
}

type propertyValueMapper struct{}

func (propertyValueMapper) ModelType() model.ModelType { return model.ModelTypeProperty }

func (propertyValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	p, err := castElement[*model.Property](element)
	if err != nil {
		return nil, err
	}
	if err := CheckLexical(p.ValueType, p.Value); err != nil {
		return nil, err
	}
	return PropertyValue{Value: p.Value}, nil
}

func (propertyValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	p, val, err := cast[*model.Property, PropertyValue](element, v)
	if err != nil {
		return err
	}
	if err := CheckLexical(p.ValueType, val.Value); err != nil {
		return err
	}
	p.Value = val.Value
	return nil
}

type rangeValueMapper struct{}

func (rangeValueMapper) ModelType() model.ModelType { return model.ModelTypeRange }

func (rangeValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	r, err := castElement[*model.Range](element)
	if err != nil {
		return nil, err
	}
	for _, bound := range []string{r.Min, r.Max} {
		if err := CheckLexical(r.ValueType, bound); err != nil {
			return nil, err
		}
	}
	return RangeValue{Min: r.Min, Max: r.Max}, nil
}

func (rangeValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	r, val, err := cast[*model.Range, RangeValue](element, v)
	if err != nil {
		return err
	}
	if err := CheckLexical(r.ValueType, val.Min); err != nil {
		return err
	}
	if err := CheckLexical(r.ValueType, val.Max); err != nil {
		return err
	}
	r.Min, r.Max = val.Min, val.Max
	return nil
}

type multiLanguagePropertyValueMapper struct{}

func (multiLanguagePropertyValueMapper) ModelType() model.ModelType {
	return model.ModelTypeMultiLanguageProperty
}

func (multiLanguagePropertyValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	m, err := castElement[*model.MultiLanguageProperty](element)
	if err != nil {
		return nil, err
	}
	if m.Value == nil {
		return MultiLanguagePropertyValue(nil), nil
	}
	return MultiLanguagePropertyValue(append([]model.LangString(nil), m.Value...)), nil
}

// Apply replaces the whole set of texts; languages missing from v are dropped.
func (multiLanguagePropertyValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	m, val, err := cast[*model.MultiLanguageProperty, MultiLanguagePropertyValue](element, v)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(val))
	for _, ls := range val {
		if ls.Language == "" {
			return common.NewErrBadRequest(fmt.Sprintf("text %q of %q has no language", ls.Text, m.IdShort))
		}
		if seen[ls.Language] {
			return common.NewErrBadRequest(fmt.Sprintf("language %q appears twice in %q", ls.Language, m.IdShort))
		}
		seen[ls.Language] = true
	}
	if val == nil {
		m.Value = nil
		return nil
	}
	m.Value = append([]model.LangString(nil), val...)
	return nil
}

type fileValueMapper struct{}

func (fileValueMapper) ModelType() model.ModelType { return model.ModelTypeFile }

func (fileValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	f, err := castElement[*model.File](element)
	if err != nil {
		return nil, err
	}
	return FileValue{ContentType: f.ContentType, Value: f.Value}, nil
}

func (fileValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	f, val, err := cast[*model.File, FileValue](element, v)
	if err != nil {
		return err
	}
	f.ContentType, f.Value = val.ContentType, val.Value
	return nil
}

type blobValueMapper struct{}

func (blobValueMapper) ModelType() model.ModelType { return model.ModelTypeBlob }

func (blobValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	b, err := castElement[*model.Blob](element)
	if err != nil {
		return nil, err
	}
	return BlobValue{ContentType: b.ContentType, Value: copyBytes(b.Value)}, nil
}

func (blobValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	b, val, err := cast[*model.Blob, BlobValue](element, v)
	if err != nil {
		return err
	}
	b.ContentType, b.Value = val.ContentType, copyBytes(val.Value)
	return nil
}

func copyBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	return append([]byte(nil), in...)
}

type referenceElementValueMapper struct{}

func (referenceElementValueMapper) ModelType() model.ModelType {
	return model.ModelTypeReferenceElement
}

func (referenceElementValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	r, err := castElement[*model.ReferenceElement](element)
	if err != nil {
		return nil, err
	}
	return ReferenceElementValue{Value: toReferenceValue(r.Value)}, nil
}

func (referenceElementValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	r, val, err := cast[*model.ReferenceElement, ReferenceElementValue](element, v)
	if err != nil {
		return err
	}
	if err := checkReference(val.Value); err != nil {
		return err
	}
	r.Value = fromReferenceValue(val.Value)
	return nil
}

func checkReference(ref *ReferenceValue) error {
	if ref == nil {
		return nil
	}
	if !ref.Type.IsValid() {
		return common.NewErrBadRequest(fmt.Sprintf("invalid reference type %q", ref.Type))
	}
	return checkReference(ref.ReferredSemanticID)
}

type relationshipElementValueMapper struct{}

func (relationshipElementValueMapper) ModelType() model.ModelType {
	return model.ModelTypeRelationshipElement
}

func (relationshipElementValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	r, err := castElement[*model.RelationshipElement](element)
	if err != nil {
		return nil, err
	}
	return RelationshipElementValue{First: toReferenceValue(r.First), Second: toReferenceValue(r.Second)}, nil
}

func (relationshipElementValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	r, val, err := cast[*model.RelationshipElement, RelationshipElementValue](element, v)
	if err != nil {
		return err
	}
	if err := checkReference(val.First); err != nil {
		return err
	}
	if err := checkReference(val.Second); err != nil {
		return err
	}
	r.First, r.Second = fromReferenceValue(val.First), fromReferenceValue(val.Second)
	return nil
}

type annotatedRelationshipElementValueMapper struct{}

func (annotatedRelationshipElementValueMapper) ModelType() model.ModelType {
	return model.ModelTypeAnnotatedRelationshipElement
}

func (annotatedRelationshipElementValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	a, err := castElement[*model.AnnotatedRelationshipElement](element)
	if err != nil {
		return nil, err
	}
	annotations, err := extractOrdered(a.Annotations)
	if err != nil {
		return nil, err
	}
	return AnnotatedRelationshipElementValue{
		First:       toReferenceValue(a.First),
		Second:      toReferenceValue(a.Second),
		Annotations: annotations,
	}, nil
}

func (annotatedRelationshipElementValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	a, val, err := cast[*model.AnnotatedRelationshipElement, AnnotatedRelationshipElementValue](element, v)
	if err != nil {
		return err
	}
	if err := checkReference(val.First); err != nil {
		return err
	}
	if err := checkReference(val.Second); err != nil {
		return err
	}
	if err := applyOrdered(a.IdShort, a.Annotations, val.Annotations); err != nil {
		return err
	}
	a.First, a.Second = fromReferenceValue(val.First), fromReferenceValue(val.Second)
	return nil
}

type entityValueMapper struct{}

func (entityValueMapper) ModelType() model.ModelType { return model.ModelTypeEntity }

func (entityValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	e, err := castElement[*model.Entity](element)
	if err != nil {
		return nil, err
	}
	statements, err := extractOrdered(e.Statements)
	if err != nil {
		return nil, err
	}
	out := EntityValue{
		Statements:    statements,
		EntityType:    e.EntityType,
		GlobalAssetID: e.GlobalAssetID,
	}
	for _, id := range e.SpecificAssetIDs {
		out.SpecificAssetIDs = append(out.SpecificAssetIDs, SpecificAssetIDValue{
			Name:              id.Name,
			Value:             id.Value,
			ExternalSubjectID: toReferenceValue(id.ExternalSubjectID),
		})
	}
	return out, nil
}

func (entityValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	e, val, err := cast[*model.Entity, EntityValue](element, v)
	if err != nil {
		return err
	}
	if val.EntityType != "" && !val.EntityType.IsValid() {
		return common.NewErrBadRequest(fmt.Sprintf("invalid entity type %q", val.EntityType))
	}
	var ids []model.SpecificAssetID
	for _, id := range val.SpecificAssetIDs {
		if id.Name == "" {
			return common.NewErrBadRequest(fmt.Sprintf("specific asset id of %q has no name", e.IdShort))
		}
		if err := checkReference(id.ExternalSubjectID); err != nil {
			return err
		}
		ids = append(ids, model.SpecificAssetID{
			Name:              id.Name,
			Value:             id.Value,
			ExternalSubjectID: fromReferenceValue(id.ExternalSubjectID),
		})
	}
	if err := applyOrdered(e.IdShort, e.Statements, val.Statements); err != nil {
		return err
	}
	e.EntityType = val.EntityType
	e.GlobalAssetID = val.GlobalAssetID
	e.SpecificAssetIDs = ids
	return nil
}

type collectionValueMapper struct{}

func (collectionValueMapper) ModelType() model.ModelType {
	return model.ModelTypeSubmodelElementCollection
}

func (collectionValueMapper) Extract(element model.SubmodelElement) (SubmodelElementValue, error) {
	c, err := castElement[*model.SubmodelElementCollection](element)
	if err != nil {
		return nil, err
	}
	out := make(SubmodelElementCollectionValue, len(c.Value))
	for _, child := range c.Value {
		v, err := ExtractValue(child)
		if err != nil {
			return nil, fmt.Errorf("failed to convert element '%s': %w", child.GetIdShort(), err)
		}
		out[child.GetIdShort()] = v
	}
	return out, nil
}

// Apply updates the children named in v. Children not named keep their value.
func (collectionValueMapper) Apply(element model.SubmodelElement, v SubmodelElementValue) error {
	c, val, err := cast[*model.SubmodelElementCollection, SubmodelElementCollectionValue](element, v)
	if err != nil {
		return err
	}
	for idShort, childValue := range val {
		child := findByIdShort(c.Value, idShort)
		if child == nil {
			return common.NewErrNotFound(fmt.Sprintf("element %q in collection %q", idShort, c.IdShort))
		}
		if err := applyInPlace(child, childValue); err != nil {
			return err
		}
	}
	return nil
}

func extractOrdered(elements []model.SubmodelElement) ([]ValueOnly, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	out := make([]ValueOnly, 0, len(elements))
	for _, element := range elements {
		v, err := ExtractValue(element)
		if err != nil {
			return nil, fmt.Errorf("failed to convert element '%s': %w", element.GetIdShort(), err)
		}
		out = append(out, ValueOnly{IdShort: element.GetIdShort(), Value: v})
	}
	return out, nil
}

// applyOrdered applies the values to the owned elements with the same idShort.
func applyOrdered(owner string, elements []model.SubmodelElement, values []ValueOnly) error {
	for _, v := range values {
		element := findByIdShort(elements, v.IdShort)
		if element == nil {
			return common.NewErrNotFound(fmt.Sprintf("element %q of %q", v.IdShort, owner))
		}
		if err := applyInPlace(element, v.Value); err != nil {
			return err
		}
	}
	return nil
}

func findByIdShort(elements []model.SubmodelElement, idShort string) model.SubmodelElement {
	for _, element := range elements {
		if element.GetIdShort() == idShort {
			return element
		}
	}
	return nil
}

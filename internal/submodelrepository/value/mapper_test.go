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
	"testing"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func globalRef(value string) *model.Reference {
	return model.NewReference(model.ReferenceTypesExternalReference, model.Key{Type: model.KeyTypesGlobalReference, Value: value})
}

// everyVariant returns one populated element per variant.
func everyVariant(t *testing.T) []model.SubmodelElement {
	t.Helper()

	modelRef := model.NewReference(model.ReferenceTypesModelReference,
		model.Key{Type: model.KeyTypesSubmodel, Value: "urn:sm:1"},
		model.Key{Type: model.KeyTypesProperty, Value: "temperature"})
	modelRef.ReferredSemanticID = globalRef("urn:semantic:temperature")

	entity := model.NewEntity("motor", model.EntityTypeSelfManagedEntity,
		model.NewProperty("serial", model.DataTypeDefXsdString, "SN-42"),
		model.NewMultiLanguageProperty("label", model.LangString{Language: "en", Text: "Motor"}))
	entity.GlobalAssetID = "urn:asset:motor"
	entity.SpecificAssetIDs = []model.SpecificAssetID{
		{Name: "serialNumber", Value: "SN-42", ExternalSubjectID: globalRef("urn:vendor")},
		{Name: "partNumber", Value: "P-7"},
	}

	inner, err := model.NewSubmodelElementCollection("inner",
		model.NewRange("limits", model.DataTypeDefXsdDouble, "-1.5", "2.5e3"))
	require.NoError(t, err)
	outer, err := model.NewSubmodelElementCollection("outer",
		model.NewProperty("count", model.DataTypeDefXsdInt, "12"),
		model.NewBlob("thumbnail", "image/png", []byte{0x89, 'P', 'N', 'G'}),
		inner)
	require.NoError(t, err)

	return []model.SubmodelElement{
		model.NewProperty("temperature", model.DataTypeDefXsdDouble, "21.5"),
		model.NewRange("window", model.DataTypeDefXsdInt, "1", "10"),
		model.NewMultiLanguageProperty("name",
			model.LangString{Language: "de", Text: "Hallo"},
			model.LangString{Language: "en", Text: "Hello"}),
		model.NewFile("manual", "application/pdf", "manual.pdf"),
		model.NewBlob("raw", "application/octet-stream", []byte("payload")),
		model.NewReferenceElement("link", modelRef),
		model.NewRelationshipElement("drives", globalRef("urn:a"), globalRef("urn:b")),
		model.NewAnnotatedRelationshipElement("connects", globalRef("urn:a"), globalRef("urn:c"),
			model.NewProperty("since", model.DataTypeDefXsdDate, "2024-01-01")),
		entity,
		outer,
	}
}

// shellOf returns a copy of e with the same structure and empty values.
func shellOf(e model.SubmodelElement) model.SubmodelElement {
	s := model.CopySubmodelElement(e)
	clearValues(s)
	return s
}

func clearValues(e model.SubmodelElement) {
	switch x := e.(type) {
	case *model.Property:
		x.Value = ""
	case *model.Range:
		x.Min, x.Max = "", ""
	case *model.MultiLanguageProperty:
		x.Value = nil
	case *model.File:
		x.ContentType, x.Value = "", ""
	case *model.Blob:
		x.ContentType, x.Value = "", nil
	case *model.ReferenceElement:
		x.Value = nil
	case *model.RelationshipElement:
		x.First, x.Second = nil, nil
	case *model.AnnotatedRelationshipElement:
		x.First, x.Second = nil, nil
		for _, a := range x.Annotations {
			clearValues(a)
		}
	case *model.Entity:
		x.EntityType, x.GlobalAssetID, x.SpecificAssetIDs = "", "", nil
		for _, s := range x.Statements {
			clearValues(s)
		}
	case *model.SubmodelElementCollection:
		for _, c := range x.Value {
			clearValues(c)
		}
	}
}

func TestMapperForCoversEveryVariant(t *testing.T) {
	seen := map[model.ModelType]bool{}
	for _, e := range everyVariant(t) {
		m, err := MapperFor(e)
		require.NoError(t, err)
		assert.Equal(t, e.GetModelType(), m.ModelType())
		seen[m.ModelType()] = true
	}
	assert.Len(t, seen, 10)

	_, err := MapperFor(nil)
	assert.True(t, common.IsErrBadRequest(err))
}

func TestApplyExtractedValueToShellRestoresElement(t *testing.T) {
	for _, e := range everyVariant(t) {
		t.Run(e.GetIdShort(), func(t *testing.T) {
			v, err := ExtractValue(e)
			require.NoError(t, err)
			assert.Equal(t, e.GetModelType(), v.ModelType())

			got, err := ApplyValue(shellOf(e), v)
			require.NoError(t, err)
			assert.True(t, model.Equal(e, got), model.Diff(e, got))
		})
	}
}

func TestApplyValueDoesNotModifyInput(t *testing.T) {
	p := model.NewProperty("temperature", model.DataTypeDefXsdDouble, "21.5")

	got, err := ApplyValue(p, PropertyValue{Value: "22"})
	require.NoError(t, err)
	assert.Equal(t, "21.5", p.Value)
	assert.Equal(t, "22", got.(*model.Property).Value)

	// a failing nested apply leaves the input untouched as well
	c := everyVariant(t)[9].(*model.SubmodelElementCollection)
	_, err = ApplyValue(c, SubmodelElementCollectionValue{
		"count":   PropertyValue{Value: "13"},
		"missing": PropertyValue{Value: "x"},
	})
	assert.True(t, common.IsErrNotFound(err))
	assert.Equal(t, "12", c.Value[0].(*model.Property).Value)
}

func TestPropertyValueIsCheckedAgainstValueType(t *testing.T) {
	tests := []struct {
		valueType model.DataTypeDefXsd
		value     string
		ok        bool
	}{
		{model.DataTypeDefXsdInt, "42", true},
		{model.DataTypeDefXsdInt, "-42", true},
		{model.DataTypeDefXsdInt, "4.2", false},
		{model.DataTypeDefXsdInt, "abc", false},
		{model.DataTypeDefXsdInt, "3000000000", false},
		{model.DataTypeDefXsdLong, "3000000000", true},
		{model.DataTypeDefXsdByte, "128", false},
		{model.DataTypeDefXsdUnsignedByte, "255", true},
		{model.DataTypeDefXsdUnsignedByte, "-1", false},
		{model.DataTypeDefXsdInteger, "123456789012345678901234567890", true},
		{model.DataTypeDefXsdPositiveInteger, "0", false},
		{model.DataTypeDefXsdNonNegativeInteger, "0", true},
		{model.DataTypeDefXsdNegativeInteger, "-1", true},
		{model.DataTypeDefXsdDecimal, "12.50", true},
		{model.DataTypeDefXsdDecimal, "1e3", false},
		{model.DataTypeDefXsdDouble, "1e3", true},
		{model.DataTypeDefXsdDouble, "INF", true},
		{model.DataTypeDefXsdDouble, "Infinity", false},
		{model.DataTypeDefXsdFloat, "1e39", false},
		{model.DataTypeDefXsdBoolean, "true", true},
		{model.DataTypeDefXsdBoolean, "0", true},
		{model.DataTypeDefXsdBoolean, "yes", false},
		{model.DataTypeDefXsdString, "anything", true},
		{model.DataTypeDefXsdInt, "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.valueType)+"/"+tt.value, func(t *testing.T) {
			p := model.NewProperty("p", tt.valueType, "")
			got, err := ApplyValue(p, PropertyValue{Value: tt.value})
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.value, got.(*model.Property).Value)
				return
			}
			assert.True(t, common.IsErrTypeMismatch(err), "expected TypeMismatch, got %v", err)
		})
	}
}

func TestRangeBoundsAreChecked(t *testing.T) {
	r := model.NewRange("window", model.DataTypeDefXsdInt, "1", "10")

	_, err := ApplyValue(r, RangeValue{Min: "1", Max: "ten"})
	assert.True(t, common.IsErrTypeMismatch(err))
}

func TestApplyValueOfOtherVariantIsUnsupported(t *testing.T) {
	p := model.NewProperty("temperature", model.DataTypeDefXsdDouble, "21.5")

	_, err := ApplyValue(p, RangeValue{Min: "1", Max: "2"})
	assert.True(t, common.IsErrUnsupportedVariant(err))

	_, err = ApplyValue(p, nil)
	assert.True(t, common.IsErrUnsupportedVariant(err))
}

func TestMultiLanguagePropertyValueReplacesAllTexts(t *testing.T) {
	m := model.NewMultiLanguageProperty("name",
		model.LangString{Language: "de", Text: "Hallo"},
		model.LangString{Language: "en", Text: "Hello"})

	got, err := ApplyValue(m, MultiLanguagePropertyValue{{Language: "fr", Text: "Bonjour"}})
	require.NoError(t, err)
	assert.Equal(t, []model.LangString{{Language: "fr", Text: "Bonjour"}}, got.(*model.MultiLanguageProperty).Value)

	_, err = ApplyValue(m, MultiLanguagePropertyValue{{Text: "no language"}})
	assert.True(t, common.IsErrBadRequest(err))
}

func TestCollectionValueUpdatesNamedChildrenOnly(t *testing.T) {
	c := everyVariant(t)[9]

	got, err := ApplyValue(c, SubmodelElementCollectionValue{
		"inner": SubmodelElementCollectionValue{"limits": RangeValue{Min: "0", Max: "1"}},
	})
	require.NoError(t, err)

	collection := got.(*model.SubmodelElementCollection)
	assert.Equal(t, "12", collection.Value[0].(*model.Property).Value)
	limits := collection.Value[2].(*model.SubmodelElementCollection).Value[0].(*model.Range)
	assert.Equal(t, "0", limits.Min)
	assert.Equal(t, "1", limits.Max)
}

func TestEntityValueRejectsUnknownStatement(t *testing.T) {
	e := everyVariant(t)[8]

	v, err := ExtractValue(e)
	require.NoError(t, err)
	ev := v.(EntityValue)
	ev.Statements = append(ev.Statements, ValueOnly{IdShort: "ghost", Value: PropertyValue{Value: "x"}})

	_, err = ApplyValue(e, ev)
	assert.True(t, common.IsErrNotFound(err))

	ev.Statements = nil
	ev.EntityType = "Shared"
	_, err = ApplyValue(e, ev)
	assert.True(t, common.IsErrBadRequest(err))
}

func TestReferenceValueMustHaveValidType(t *testing.T) {
	r := model.NewReferenceElement("link", nil)

	_, err := ApplyValue(r, ReferenceElementValue{Value: &ReferenceValue{Type: "Pointer"}})
	assert.True(t, common.IsErrBadRequest(err))

	got, err := ApplyValue(r, ReferenceElementValue{})
	require.NoError(t, err)
	assert.Nil(t, got.(*model.ReferenceElement).Value)
}

func TestExtractChecksStoredNumericText(t *testing.T) {
	_, err := ExtractValue(model.NewProperty("count", model.DataTypeDefXsdInt, "abc"))
	assert.True(t, common.IsErrTypeMismatch(err))

	_, err = ExtractValue(model.NewRange("window", model.DataTypeDefXsdInt, "1", "1.5"))
	assert.True(t, common.IsErrTypeMismatch(err))

	c, err := model.NewSubmodelElementCollection("c", model.NewProperty("on", model.DataTypeDefXsdBoolean, "maybe"))
	require.NoError(t, err)
	assert.True(t, common.IsErrTypeMismatch(CheckElements([]model.SubmodelElement{c})))

	v, err := ExtractValue(model.NewProperty("label", model.DataTypeDefXsdString, "abc"))
	require.NoError(t, err)
	assert.Equal(t, PropertyValue{Value: "abc"}, v)
}

func TestMultiLanguagePropertyRejectsDuplicateLanguages(t *testing.T) {
	m := model.NewMultiLanguageProperty("name", model.LangString{Language: "de", Text: "Hallo"})

	_, err := ApplyValue(m, MultiLanguagePropertyValue{
		{Language: "en", Text: "Hello"},
		{Language: "en", Text: "Hi"},
	})
	assert.True(t, common.IsErrBadRequest(err))
	assert.Equal(t, []model.LangString{{Language: "de", Text: "Hallo"}}, m.Value)
}

func TestEntityKeepsSeveralSpecificAssetIDs(t *testing.T) {
	e := everyVariant(t)[8]
	v, err := ExtractValue(e)
	require.NoError(t, err)
	ev := v.(EntityValue)
	ev.SpecificAssetIDs = []SpecificAssetIDValue{
		{Name: "serialNumber", Value: "4711"},
		{Name: "batch", Value: "B-12"},
	}

	got, err := ApplyValue(e, ev)
	require.NoError(t, err)
	back, err := ExtractValue(got)
	require.NoError(t, err)
	assert.Equal(t, ev.SpecificAssetIDs, back.(EntityValue).SpecificAssetIDs)
}

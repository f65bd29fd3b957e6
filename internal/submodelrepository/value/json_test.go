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

func TestMarshalValueOnly(t *testing.T) {
	tests := []struct {
		name     string
		value    SubmodelElementValue
		expected string
	}{
		{"property", PropertyValue{Value: "21.5"}, `"21.5"`},
		{"range", RangeValue{Min: "1", Max: "10"}, `{"min":"1","max":"10"}`},
		{
			"multi language property",
			MultiLanguagePropertyValue{{Language: "de", Text: "Hallo"}, {Language: "en", Text: "Hello"}},
			`[{"de":"Hallo"},{"en":"Hello"}]`,
		},
		{"file", FileValue{ContentType: "application/pdf", Value: "manual.pdf"}, `{"contentType":"application/pdf","value":"manual.pdf"}`},
		{"blob", BlobValue{ContentType: "text/plain", Value: []byte("hi")}, `{"contentType":"text/plain","value":"aGk="}`},
		{"empty reference element", ReferenceElementValue{}, `null`},
		{
			"collection",
			SubmodelElementCollectionValue{
				"a": PropertyValue{Value: "1"},
				"b": SubmodelElementCollectionValue{"c": PropertyValue{Value: "2"}},
			},
			`{"a":"1","b":{"c":"2"}}`,
		},
		{
			"entity",
			EntityValue{
				Statements:       []ValueOnly{{IdShort: "serial", Value: PropertyValue{Value: "SN-42"}}},
				EntityType:       model.EntityTypeSelfManagedEntity,
				GlobalAssetID:    "urn:asset:motor",
				SpecificAssetIDs: []SpecificAssetIDValue{{Name: "partNumber", Value: "P-7"}},
			},
			`{"statements":{"serial":"SN-42"},"entityType":"SelfManagedEntity","globalAssetId":"urn:asset:motor","specificAssetIds":[{"name":"partNumber","value":"P-7"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalValueOnly(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}

	_, err := MarshalValueOnly(nil)
	assert.True(t, common.IsErrBadRequest(err))
}

func TestValueOnlyJSONRoundTrip(t *testing.T) {
	for _, e := range everyVariant(t) {
		t.Run(e.GetIdShort(), func(t *testing.T) {
			v, err := ExtractValue(e)
			require.NoError(t, err)
			data, err := MarshalValueOnly(v)
			require.NoError(t, err)

			shell := shellOf(e)
			decoded, err := UnmarshalValueOnly(shell, data)
			require.NoError(t, err)
			got, err := ApplyValue(shell, decoded)
			require.NoError(t, err)
			assert.True(t, model.Equal(e, got), model.Diff(e, got))
		})
	}
}

func TestUnmarshalPropertyAcceptsJSONScalars(t *testing.T) {
	p := model.NewProperty("count", model.DataTypeDefXsdInt, "1")

	for input, expected := range map[string]string{`"42"`: "42", `42`: "42", `-7`: "-7", `true`: "true", `null`: ""} {
		v, err := UnmarshalValueOnly(p, []byte(input))
		require.NoError(t, err, input)
		assert.Equal(t, PropertyValue{Value: expected}, v, input)
	}

	_, err := UnmarshalValueOnly(p, []byte(`{"value":"42"}`))
	assert.True(t, common.IsErrUnsupportedVariant(err))

	_, err = UnmarshalValueOnly(p, []byte(`{"value":`))
	assert.True(t, common.IsErrBadRequest(err))
}

func TestUnmarshalKeepsFieldsMissingFromPayload(t *testing.T) {
	elements := everyVariant(t)

	v, err := UnmarshalValueOnly(elements[3], []byte(`{"value":"other.pdf"}`))
	require.NoError(t, err)
	assert.Equal(t, FileValue{ContentType: "application/pdf", Value: "other.pdf"}, v)

	v, err = UnmarshalValueOnly(elements[8], []byte(`{"globalAssetId":"urn:asset:other"}`))
	require.NoError(t, err)
	ev := v.(EntityValue)
	assert.Equal(t, "urn:asset:other", ev.GlobalAssetID)
	assert.Equal(t, model.EntityTypeSelfManagedEntity, ev.EntityType)
	assert.Len(t, ev.SpecificAssetIDs, 2)
	assert.Empty(t, ev.Statements)
}

func TestUnmarshalCollectionValue(t *testing.T) {
	outer := everyVariant(t)[9]

	v, err := UnmarshalValueOnly(outer, []byte(`{"inner":{"limits":{"max":"3"}}}`))
	require.NoError(t, err)
	assert.Equal(t, SubmodelElementCollectionValue{
		"inner": SubmodelElementCollectionValue{"limits": RangeValue{Min: "-1.5", Max: "3"}},
	}, v)

	_, err = UnmarshalValueOnly(outer, []byte(`{"ghost":"1"}`))
	assert.True(t, common.IsErrNotFound(err))

	_, err = UnmarshalValueOnly(outer, []byte(`["count"]`))
	assert.True(t, common.IsErrUnsupportedVariant(err))
}

func TestUnmarshalAnnotationsKeepElementOrder(t *testing.T) {
	are := model.NewAnnotatedRelationshipElement("connects", globalRef("urn:a"), globalRef("urn:b"),
		model.NewProperty("first", model.DataTypeDefXsdString, ""),
		model.NewProperty("second", model.DataTypeDefXsdString, ""))

	v, err := UnmarshalValueOnly(are, []byte(`{"annotations":{"second":"2","first":"1"}}`))
	require.NoError(t, err)
	got := v.(AnnotatedRelationshipElementValue)
	require.Len(t, got.Annotations, 2)
	assert.Equal(t, "first", got.Annotations[0].IdShort)
	assert.Equal(t, "second", got.Annotations[1].IdShort)
	assert.Equal(t, "urn:a", got.First.Keys[0].Value)
}

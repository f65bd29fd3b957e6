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
	"bytes"
	"fmt"
	"sort"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rangeJSON struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

type contentJSON struct {
	ContentType string `json:"contentType"`
	Value       any    `json:"value,omitempty"`
}

type relationshipJSON struct {
	First       *ReferenceValue `json:"first"`
	Second      *ReferenceValue `json:"second"`
	Annotations map[string]any  `json:"annotations,omitempty"`
}

type entityJSON struct {
	Statements       map[string]any         `json:"statements,omitempty"`
	EntityType       model.EntityType       `json:"entityType,omitempty"`
	GlobalAssetID    string                 `json:"globalAssetId,omitempty"`
	SpecificAssetIDs []SpecificAssetIDValue `json:"specificAssetIds,omitempty"`
}

// MarshalValueOnly serializes v in the value-only JSON format. Statements,
// annotations and collection children become objects keyed by idShort.
func MarshalValueOnly(v SubmodelElementValue) ([]byte, error) {
	doc, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func toJSONValue(v SubmodelElementValue) (any, error) {
	switch val := v.(type) {
	case PropertyValue:
		return val.Value, nil
	case RangeValue:
		return rangeJSON(val), nil
	case MultiLanguagePropertyValue:
		out := make([]map[string]string, 0, len(val))
		for _, ls := range val {
			out = append(out, map[string]string{ls.Language: ls.Text})
		}
		return out, nil
	case FileValue:
		return contentJSON{ContentType: val.ContentType, Value: val.Value}, nil
	case BlobValue:
		doc := contentJSON{ContentType: val.ContentType}
		if len(val.Value) > 0 {
			doc.Value = val.Value
		}
		return doc, nil
	case ReferenceElementValue:
		return val.Value, nil
	case RelationshipElementValue:
		return relationshipJSON{First: val.First, Second: val.Second}, nil
	case AnnotatedRelationshipElementValue:
		annotations, err := orderedToJSON(val.Annotations)
		if err != nil {
			return nil, err
		}
		return relationshipJSON{First: val.First, Second: val.Second, Annotations: annotations}, nil
	case EntityValue:
		statements, err := orderedToJSON(val.Statements)
		if err != nil {
			return nil, err
		}
		return entityJSON{
			Statements:       statements,
			EntityType:       val.EntityType,
			GlobalAssetID:    val.GlobalAssetID,
			SpecificAssetIDs: val.SpecificAssetIDs,
		}, nil
	case SubmodelElementCollectionValue:
		out := make(map[string]any, len(val))
		for idShort, child := range val {
			doc, err := toJSONValue(child)
			if err != nil {
				return nil, err
			}
			out[idShort] = doc
		}
		return out, nil
	case nil:
		return nil, common.NewErrBadRequest("value must not be nil")
	default:
		return nil, common.NewErrUnsupportedVariant(fmt.Sprintf("unknown value type %T", v))
	}
}

func orderedToJSON(values []ValueOnly) (map[string]any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(values))
	for _, v := range values {
		doc, err := toJSONValue(v.Value)
		if err != nil {
			return nil, err
		}
		out[v.IdShort] = doc
	}
	return out, nil
}

// UnmarshalValueOnly decodes data as the value of target. The variant of target
// decides the expected shape. Fields missing from an object keep the current
// value of target, so the result can be applied as a partial update.
func UnmarshalValueOnly(target model.SubmodelElement, data []byte) (SubmodelElementValue, error) {
	if target == nil {
		return nil, common.NewErrBadRequest("element must not be nil")
	}
	if !json.Valid(data) {
		return nil, common.NewErrBadRequest("value payload is not valid JSON")
	}
	return decodeValue(target, data)
}

func decodeValue(target model.SubmodelElement, raw []byte) (SubmodelElementValue, error) {
	switch e := target.(type) {
	case *model.Property:
		text, err := scalarText(e, raw)
		if err != nil {
			return nil, err
		}
		return PropertyValue{Value: text}, nil
	case *model.Range:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := RangeValue{Min: e.Min, Max: e.Max}
		if r, ok := obj["min"]; ok {
			if out.Min, err = scalarText(e, r); err != nil {
				return nil, err
			}
		}
		if r, ok := obj["max"]; ok {
			if out.Max, err = scalarText(e, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *model.MultiLanguageProperty:
		var entries []map[string]string
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, shapeError(e, err)
		}
		out := make(MultiLanguagePropertyValue, 0, len(entries))
		for _, entry := range entries {
			languages := make([]string, 0, len(entry))
			for language := range entry {
				languages = append(languages, language)
			}
			sort.Strings(languages)
			for _, language := range languages {
				out = append(out, model.LangString{Language: language, Text: entry[language]})
			}
		}
		return out, nil
	case *model.File:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := FileValue{ContentType: e.ContentType, Value: e.Value}
		if err := decodeField(e, obj, "contentType", &out.ContentType); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "value", &out.Value); err != nil {
			return nil, err
		}
		return out, nil
	case *model.Blob:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := BlobValue{ContentType: e.ContentType, Value: copyBytes(e.Value)}
		if err := decodeField(e, obj, "contentType", &out.ContentType); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "value", &out.Value); err != nil {
			return nil, err
		}
		return out, nil
	case *model.ReferenceElement:
		var ref *ReferenceValue
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, shapeError(e, err)
		}
		return ReferenceElementValue{Value: ref}, nil
	case *model.RelationshipElement:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := RelationshipElementValue{First: toReferenceValue(e.First), Second: toReferenceValue(e.Second)}
		if err := decodeField(e, obj, "first", &out.First); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "second", &out.Second); err != nil {
			return nil, err
		}
		return out, nil
	case *model.AnnotatedRelationshipElement:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := AnnotatedRelationshipElementValue{First: toReferenceValue(e.First), Second: toReferenceValue(e.Second)}
		if err := decodeField(e, obj, "first", &out.First); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "second", &out.Second); err != nil {
			return nil, err
		}
		if r, ok := obj["annotations"]; ok {
			if out.Annotations, err = decodeOrdered(e, e.Annotations, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *model.Entity:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		current, err := entityMapper.Extract(e)
		if err != nil {
			return nil, err
		}
		out := current.(EntityValue)
		out.Statements = nil
		if err := decodeField(e, obj, "entityType", &out.EntityType); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "globalAssetId", &out.GlobalAssetID); err != nil {
			return nil, err
		}
		if err := decodeField(e, obj, "specificAssetIds", &out.SpecificAssetIDs); err != nil {
			return nil, err
		}
		if r, ok := obj["statements"]; ok {
			if out.Statements, err = decodeOrdered(e, e.Statements, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *model.SubmodelElementCollection:
		obj, err := decodeObject(e, raw)
		if err != nil {
			return nil, err
		}
		out := make(SubmodelElementCollectionValue, len(obj))
		for idShort, r := range obj {
			child := findByIdShort(e.Value, idShort)
			if child == nil {
				return nil, common.NewErrNotFound(fmt.Sprintf("element %q in collection %q", idShort, e.IdShort))
			}
			if out[idShort], err = decodeValue(child, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, common.NewErrUnsupportedVariant(fmt.Sprintf("no value mapper for %T", target))
	}
}

// decodeOrdered decodes an idShort keyed object against the owned elements,
// keeping their order.
func decodeOrdered(owner model.SubmodelElement, elements []model.SubmodelElement, raw []byte) ([]ValueOnly, error) {
	obj, err := decodeObject(owner, raw)
	if err != nil {
		return nil, err
	}
	for idShort := range obj {
		if findByIdShort(elements, idShort) == nil {
			return nil, common.NewErrNotFound(fmt.Sprintf("element %q of %q", idShort, owner.GetIdShort()))
		}
	}
	var out []ValueOnly
	for _, element := range elements {
		r, ok := obj[element.GetIdShort()]
		if !ok {
			continue
		}
		v, err := decodeValue(element, r)
		if err != nil {
			return nil, err
		}
		out = append(out, ValueOnly{IdShort: element.GetIdShort(), Value: v})
	}
	return out, nil
}

func decodeObject(target model.SubmodelElement, raw []byte) (map[string]jsoniter.RawMessage, error) {
	var obj map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, shapeError(target, err)
	}
	return obj, nil
}

func decodeField(target model.SubmodelElement, obj map[string]jsoniter.RawMessage, key string, dst any) error {
	r, ok := obj[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(r, dst); err != nil {
		return shapeError(target, fmt.Errorf("field %q: %w", key, err))
	}
	return nil
}

// scalarText accepts JSON strings, numbers and booleans and returns their
// textual form. null stands for the unset value.
func scalarText(target model.SubmodelElement, raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", shapeError(target, nil)
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", shapeError(target, err)
		}
		return s, nil
	case c == 'n':
		return "", nil
	case c == 't', c == 'f', c == '-', c >= '0' && c <= '9':
		return string(trimmed), nil
	default:
		return "", shapeError(target, nil)
	}
}

func shapeError(target model.SubmodelElement, cause error) error {
	err := common.NewErrUnsupportedVariant(fmt.Sprintf("payload does not match the value shape of %s %q", target.GetModelType(), target.GetIdShort()))
	if cause != nil {
		return err.Wrap(cause)
	}
	return err
}

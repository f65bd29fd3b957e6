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
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common/model"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// sign constraints of the unbounded xs integer types
var integerSigns = map[model.DataTypeDefXsd]func(int) bool{
	model.DataTypeDefXsdInteger:            func(int) bool { return true },
	model.DataTypeDefXsdPositiveInteger:    func(s int) bool { return s > 0 },
	model.DataTypeDefXsdNonNegativeInteger: func(s int) bool { return s >= 0 },
	model.DataTypeDefXsdNegativeInteger:    func(s int) bool { return s < 0 },
	model.DataTypeDefXsdNonPositiveInteger: func(s int) bool { return s <= 0 },
}

var signedBits = map[model.DataTypeDefXsd]int{
	model.DataTypeDefXsdByte:  8,
	model.DataTypeDefXsdShort: 16,
	model.DataTypeDefXsdInt:   32,
	model.DataTypeDefXsdLong:  64,
}

var unsignedBits = map[model.DataTypeDefXsd]int{
	model.DataTypeDefXsdUnsignedByte:  8,
	model.DataTypeDefXsdUnsignedShort: 16,
	model.DataTypeDefXsdUnsignedInt:   32,
	model.DataTypeDefXsdUnsignedLong:  64,
}

// CheckLexical verifies that text is a valid lexical form of valueType.
// Numeric and boolean types are parsed; every other type passes through.
// The empty string stands for an unset value and is always accepted.
func CheckLexical(valueType model.DataTypeDefXsd, text string) error {
	if text == "" {
		return nil
	}
	if !isLexical(valueType, text) {
		return common.NewErrTypeMismatch(fmt.Sprintf("%q is not a valid %s", text, valueType))
	}
	return nil
}

func isLexical(valueType model.DataTypeDefXsd, text string) bool {
	if bits, ok := signedBits[valueType]; ok {
		_, err := strconv.ParseInt(text, 10, bits)
		return err == nil
	}
	if bits, ok := unsignedBits[valueType]; ok {
		_, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, bits)
		return err == nil
	}
	if signOK, ok := integerSigns[valueType]; ok {
		n, ok := new(big.Int).SetString(text, 10)
		return ok && signOK(n.Sign())
	}
	switch valueType {
	case model.DataTypeDefXsdDecimal:
		return decimalPattern.MatchString(text)
	case model.DataTypeDefXsdDouble:
		return isFloat(text, 64)
	case model.DataTypeDefXsdFloat:
		return isFloat(text, 32)
	case model.DataTypeDefXsdBoolean:
		switch text {
		case "true", "false", "1", "0":
			return true
		}
		return false
	default:
		return true
	}
}

func isFloat(text string, bits int) bool {
	switch text {
	case "INF", "+INF", "-INF", "NaN":
		return true
	}
	// strconv accepts spellings that xsd does not
	lower := strings.ToLower(text)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "x") || strings.Contains(text, "_") {
		return false
	}
	_, err := strconv.ParseFloat(text, bits)
	return err == nil
}

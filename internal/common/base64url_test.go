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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "SimpleString", input: []byte("hello world"), expected: "aGVsbG8gd29ybGQ"},
		{name: "EmptyString", input: []byte{}, expected: ""},
		{name: "WithSpecialChars", input: []byte("hello+world/test"), expected: "aGVsbG8rd29ybGQvdGVzdA"},
		{name: "WithNonASCII", input: []byte("こんにちは"), expected: "44GT44KT44Gr44Gh44Gv"},
		{name: "BinaryData", input: []byte{0, 1, 2, 3, 255, 254}, expected: "AAECA__-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.input))
		})
	}
}

func TestDecodeAcceptsPaddedAndUnpaddedInput(t *testing.T) {
	decoded, err := DecodeString("YQ")
	require.NoError(t, err)
	assert.Equal(t, "a", decoded)

	decoded, err = DecodeString("YQ==")
	require.NoError(t, err)
	assert.Equal(t, "a", decoded)

	_, err = Decode("!@#$%^")
	assert.Error(t, err)
}

func TestSubmodelIdentifierRoundtrip(t *testing.T) {
	id := "https://example.com/ids/sm/1234_5678?x=1"
	decoded, err := DecodeString(EncodeString(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

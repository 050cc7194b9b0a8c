// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bencode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	s := newScanner(strings.NewReader("d3:fooli-7e0:ei+5ee"))
	expected := []token{
		{kind: tokenDictOpen},
		{kind: tokenByteString, bytes: []byte("foo"), digits: "3"},
		{kind: tokenListOpen},
		{kind: tokenInteger, integer: -7, digits: "-7"},
		{kind: tokenByteString, bytes: []byte{}, digits: "0"},
		{kind: tokenEnd},
		{kind: tokenInteger, integer: 5, digits: "+5"},
		{kind: tokenEnd},
	}
	var encoded []byte
	for _, want := range expected {
		tok, err := s.scanToken()
		require.NoError(t, err)
		assert.Equal(t, want, tok)
		encoded = tok.appendEncoding(encoded)
	}
	assert.Equal(t, "d3:fooli-7e0:ei+5ee", string(encoded))
	assert.Equal(t, len(encoded), s.n)

	_, err := s.scanToken()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestTokenValueKind(t *testing.T) {
	assert.Equal(t, KindInteger, token{kind: tokenInteger}.valueKind())
	assert.Equal(t, KindByteString, token{kind: tokenByteString}.valueKind())
	assert.Equal(t, KindList, token{kind: tokenListOpen}.valueKind())
	assert.Equal(t, KindDict, token{kind: tokenDictOpen}.valueKind())
	assert.Equal(t, KindInvalid, token{kind: tokenEnd}.valueKind())
	assert.Panics(t, func() {
		_ = token{}.valueKind()
	})
	assert.Equal(t, "End", tokenEnd.String())
	assert.Equal(t, "tokenKind(0)", tokenKind(0).String())
}

func TestDecoderStateIsolation(t *testing.T) {
	// A struct inside a map inside a struct still treats its keys as field names
	type inner struct {
		Value int64 `bencode:"value"`
	}
	type outer struct {
		Items map[string]inner `bencode:"items"`
	}
	d := NewDecoder(strings.NewReader("d5:itemsd1:ad5:valuei1eeee"))
	var got outer
	require.NoError(t, d.Decode(&got))
	assert.Equal(t, map[string]inner{"a": {Value: 1}}, got.Items)
	assert.Empty(t, d.stack)
}

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

package bencode_test

import (
	"testing"

	"github.com/blinklabs-io/gobencode/bencode"
	"github.com/blinklabs-io/gobencode/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toCborTestDefinition struct {
	Bencode string
	CborHex string
}

var toCborTests = []toCborTestDefinition{
	{
		Bencode: "i3e",
		CborHex: "03",
	},
	{
		Bencode: "i-1e",
		CborHex: "20",
	},
	{
		Bencode: "0:",
		CborHex: "40",
	},
	{
		Bencode: "le",
		CborHex: "80",
	},
	{
		Bencode: "de",
		CborHex: "a0",
	},
	{
		Bencode: "li1ei-1ee",
		CborHex: "820120",
	},
	// {h'636f77': h'6d6f6f', h'7370616d': h'65676773'}
	{
		Bencode: "d3:cow3:moo4:spam4:eggse",
		CborHex: "a243636f77436d6f6f447370616d4465676773",
	},
	// Keys come out in deterministic order regardless of input order
	{
		Bencode: "d4:spam4:eggs3:cow3:mooe",
		CborHex: "a243636f77436d6f6f447370616d4465676773",
	},
}

func TestToCbor(t *testing.T) {
	for _, testDef := range toCborTests {
		t.Run(testDef.Bencode, func(t *testing.T) {
			cborData, err := bencode.ToCbor([]byte(testDef.Bencode))
			require.NoError(t, err)
			assert.Equal(t, test.DecodeHexString(testDef.CborHex), cborData)
		})
	}
}

func TestToCborErrors(t *testing.T) {
	_, err := bencode.ToCbor([]byte("li1e"))
	require.ErrorIs(t, err, bencode.ErrEndOfStream)

	_, err = bencode.ToCbor([]byte("l"), bencode.WithMaxDepth(1))
	require.ErrorIs(t, err, bencode.ErrEndOfStream)

	_, err = bencode.ToCbor([]byte("llee"), bencode.WithMaxDepth(1))
	require.ErrorIs(t, err, bencode.ErrMaxDepthExceeded)

	_, err = bencode.Value{}.MarshalCBOR()
	require.Error(t, err)
}

func TestValueMarshalCBOR(t *testing.T) {
	v, err := bencode.FromString[bencode.Value]("l4:spami3ee")
	require.NoError(t, err)
	cborData, err := v.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("82447370616d03"), cborData)
}

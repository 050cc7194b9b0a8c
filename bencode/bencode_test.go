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
	"crypto/sha1" //nolint:gosec // G505: BitTorrent info-hashes are defined as SHA-1
	"errors"
	"testing"

	"github.com/blinklabs-io/gobencode/bencode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTorrentInfo struct {
	bencode.DecodeStoreBencode
	Name        string `bencode:"name"`
	PieceLength int64  `bencode:"piece length"`
}

func (i *testTorrentInfo) UnmarshalBencode(data []byte) error {
	if err := bencode.DecodeGeneric(data, i); err != nil {
		return err
	}
	i.SetBencode(data)
	return nil
}

type testTorrentMeta struct {
	bencode.DecodeStoreBencode
	Announce string          `bencode:"announce"`
	Info     testTorrentInfo `bencode:"info"`
}

func (m *testTorrentMeta) UnmarshalBencode(data []byte) error {
	type tTorrentMeta testTorrentMeta
	var tmp tTorrentMeta
	if _, err := bencode.Decode(data, &tmp); err != nil {
		return err
	}
	*m = testTorrentMeta(tmp)
	m.SetBencode(data)
	return nil
}

func TestDecodeStoreBencode(t *testing.T) {
	infoData := []byte("d4:name8:test.bin12:piece lengthi16384ee")
	data := []byte("d8:announce3:url4:info" + string(infoData) + "e")
	got, err := bencode.FromBytes[testTorrentMeta](data)
	require.NoError(t, err)
	assert.Equal(t, "url", got.Announce)
	assert.Equal(t, "test.bin", got.Info.Name)
	assert.Equal(t, int64(16384), got.Info.PieceLength)
	assert.Equal(t, data, got.Bencode())
	assert.Equal(t, infoData, got.Info.Bencode())
	assert.Equal(t, sha1.Sum(infoData), got.Info.InfoHash()) //nolint:gosec
}

func TestDecodeStoreBencodeCopiesInput(t *testing.T) {
	data := []byte("d4:name1:a12:piece lengthi1ee")
	var info testTorrentInfo
	_, err := bencode.Decode(data, &info)
	require.NoError(t, err)
	data[9] = 'b'
	assert.Equal(t, []byte("d4:name1:a12:piece lengthi1ee"), info.Bencode())
}

func TestRawMessage(t *testing.T) {
	type envelope struct {
		Kind string             `bencode:"kind"`
		Body bencode.RawMessage `bencode:"body"`
	}
	got, err := bencode.FromString[envelope]("d4:bodyd1:ai007e1:bl0:ee4:kind3:fooe")
	require.NoError(t, err)
	assert.Equal(t, "foo", got.Kind)
	assert.Equal(t, bencode.RawMessage("d1:ai007e1:bl0:ee"), got.Body)

	raw, err := bencode.FromString[bencode.RawMessage]("i-0e")
	require.NoError(t, err)
	assert.Equal(t, bencode.RawMessage("i-0e"), raw)

	body, err := bencode.FromBytes[map[string]any](got.Body)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(7), "b": []any{[]byte{}}}, body)
}

func TestRawMessageMalformed(t *testing.T) {
	_, err := bencode.FromString[bencode.RawMessage]("li1e")
	require.ErrorIs(t, err, bencode.ErrEndOfStream)

	_, err = bencode.FromString[bencode.RawMessage]("d1:a")
	require.ErrorIs(t, err, bencode.ErrEndOfStream)

	// Dictionary keys must be byte strings even when the value is only captured
	for _, data := range []string{"dli1eei1ee", "di1ei2ee", "dde1:ae", "l1:adi1e1:xee"} {
		_, err = bencode.FromString[bencode.RawMessage](data)
		require.ErrorIs(t, err, bencode.ErrInvalidValue, data)
	}
}

var errCustomDecoder = errors.New("custom decoder called")

type testCustom struct {
	Name string `bencode:"name"`
}

func (c *testCustom) UnmarshalBencode(data []byte) error {
	return errCustomDecoder
}

func TestUnmarshalerErrorPropagates(t *testing.T) {
	type wrapper struct {
		Custom testCustom `bencode:"custom"`
	}
	_, err := bencode.FromString[wrapper]("d6:customd4:name1:aee")
	require.ErrorIs(t, err, errCustomDecoder)
}

func TestDecodeGeneric(t *testing.T) {
	var got testCustom
	require.NoError(t, bencode.DecodeGeneric([]byte("d4:name4:teste"), &got))
	assert.Equal(t, "test", got.Name)

	require.Error(t, bencode.DecodeGeneric([]byte("de"), got))
	var nilDest *testCustom
	require.Error(t, bencode.DecodeGeneric([]byte("de"), nilDest))
	var notStruct []int64
	require.Error(t, bencode.DecodeGeneric([]byte("le"), &notStruct))

	err := bencode.DecodeGeneric([]byte("d4:namei1ee"), &got)
	require.ErrorIs(t, err, bencode.ErrInvalidValue)
}

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
	"bytes"
	"crypto/sha1" //nolint:gosec // G505: BitTorrent info-hashes are defined as SHA-1
)

// Unmarshaler is implemented by types that decode themselves from the original
// encoding of their value
type Unmarshaler interface {
	UnmarshalBencode(data []byte) error
}

// RawMessage is the raw encoding of a single value. It can be used to delay decoding.
type RawMessage []byte

func (m *RawMessage) UnmarshalBencode(data []byte) error {
	*m = append((*m)[0:0], data...)
	return nil
}

// DecodeStoreBencode is embedded in types that need the original encoding of the
// object after decoding, such as a torrent info dictionary whose hash identifies the
// torrent
type DecodeStoreBencode struct {
	bencodeData []byte
}

// SetBencode stores a copy of the original encoding of the object
func (d *DecodeStoreBencode) SetBencode(data []byte) {
	d.bencodeData = bytes.Clone(data)
}

// Bencode returns the original encoding of the object
func (d *DecodeStoreBencode) Bencode() []byte {
	return d.bencodeData
}

// InfoHash returns the SHA-1 of the original encoding, which for a torrent's info
// dictionary is the torrent's info-hash
func (d *DecodeStoreBencode) InfoHash() [sha1.Size]byte {
	return sha1.Sum(d.bencodeData) //nolint:gosec
}

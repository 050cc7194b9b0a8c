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
	"encoding/hex"
	"reflect"
)

var byteStringType = reflect.TypeFor[ByteString]()

// ByteString is a comparable byte string for use as a map key. Dictionaries keyed by
// binary data, such as the info-hashes in a tracker scrape response, decode into a
// map[ByteString]T.
type ByteString struct {
	data string
}

func NewByteString(data []byte) ByteString {
	return ByteString{data: string(data)}
}

// UnmarshalBencode accepts only a byte string
func (bs *ByteString) UnmarshalBencode(data []byte) error {
	raw, err := FromBytes[[]byte](data)
	if err != nil {
		return err
	}
	*bs = NewByteString(raw)
	return nil
}

// Bytes returns a copy of the wrapped bytes
func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

// Len returns the number of wrapped bytes
func (bs ByteString) Len() int {
	return len(bs.data)
}

// String renders the bytes as lowercase hex, the usual form for info-hashes and peer IDs
func (bs ByteString) String() string {
	return hex.EncodeToString(bs.Bytes())
}

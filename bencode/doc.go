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

// Package bencode decodes the bencode format used by BitTorrent into Go values.
//
// The format has four primitives:
//
//	i42e            integer (64-bit signed)
//	4:spam          byte string (length prefix, raw bytes)
//	l4:spami42ee    list
//	d3:cow3:mooe    dictionary (byte string keys)
//
// # Decoding
//
// The shape of the destination decides how the input is read:
//
//	count, err := bencode.FromString[int64]("i42e")
//	names, err := bencode.FromBytes[[]string](data)
//	_, err = bencode.Decode(data, &torrent)
//
// Structs are read from dictionaries, using the `bencode:"name"` struct tag for the key.
// Pointer fields are optional: a missing key leaves them nil. Targets of type any get
// int64, []byte, []any and map[string]any.
//
// # Key Types
//
//   - Decoder: stream decoder that reads only as many bytes as each value needs
//   - Value: self-describing value that keeps dictionary order and original bytes
//   - RawMessage: deferred decoding
//   - DecodeStoreBencode: embed to keep the original bytes of an object for hashing
//   - UnionSet: tagged-union variants for interface targets
//
// # Decoding Gotchas
//
//  1. There is no null: optional values can only be absent from a dictionary.
//  2. Key order and key uniqueness are not enforced.
//  3. Strings must be valid UTF-8; use []byte for binary data such as piece hashes.
//  4. Nesting is limited to DefaultMaxDepth unless WithMaxDepth says otherwise.
package bencode

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
	"fmt"
)

const (
	markerInteger   byte = 'i'
	markerList      byte = 'l'
	markerDict      byte = 'd'
	markerEnd       byte = 'e'
	markerLengthSep byte = ':'
)

// Kind describes the shape of an encoded value
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindByteString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindByteString:
		return "ByteString"
	case KindList:
		return "List"
	case KindDict:
		return "Dict"
	default:
		return "Invalid"
	}
}

type tokenKind uint8

const (
	tokenInteger tokenKind = iota + 1
	tokenByteString
	tokenListOpen
	tokenDictOpen
	tokenEnd
)

func (k tokenKind) String() string {
	switch k {
	case tokenInteger:
		return "Integer"
	case tokenByteString:
		return "ByteString"
	case tokenListOpen:
		return "ListOpen"
	case tokenDictOpen:
		return "DictOpen"
	case tokenEnd:
		return "End"
	default:
		return fmt.Sprintf("tokenKind(%d)", uint8(k))
	}
}

// token is one scanned unit of input that has not been delivered yet. Only the field
// matching kind has meaning.
type token struct {
	kind    tokenKind
	integer int64
	bytes   []byte
	// digits is the integer text or byte string length exactly as it appeared on the wire
	digits string
}

// valueKind maps a token that starts a value to the kind of that value. End starts
// nothing and maps to KindInvalid.
func (t token) valueKind() Kind {
	switch t.kind {
	case tokenInteger:
		return KindInteger
	case tokenByteString:
		return KindByteString
	case tokenListOpen:
		return KindList
	case tokenDictOpen:
		return KindDict
	case tokenEnd:
		return KindInvalid
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", t.kind))
	}
}

// appendEncoding appends the token's original wire bytes to buf
func (t token) appendEncoding(buf []byte) []byte {
	switch t.kind {
	case tokenInteger:
		buf = append(buf, markerInteger)
		buf = append(buf, t.digits...)
		return append(buf, markerEnd)
	case tokenByteString:
		buf = append(buf, t.digits...)
		buf = append(buf, markerLengthSep)
		return append(buf, t.bytes...)
	case tokenListOpen:
		return append(buf, markerList)
	case tokenDictOpen:
		return append(buf, markerDict)
	case tokenEnd:
		return append(buf, markerEnd)
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", t.kind))
	}
}

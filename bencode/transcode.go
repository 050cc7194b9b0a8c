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
	"errors"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedCborEncMode     _cbor.EncMode
	cachedCborEncModeErr  error
	cachedCborEncModeOnce sync.Once
)

// getCborEncMode returns a cached EncMode using Core Deterministic Encoding, so the same
// bencode input always transcodes to the same CBOR bytes
func getCborEncMode() (_cbor.EncMode, error) {
	cachedCborEncModeOnce.Do(func() {
		cachedCborEncMode, cachedCborEncModeErr = _cbor.CoreDetEncOptions().EncMode()
	})
	return cachedCborEncMode, cachedCborEncModeErr
}

// MarshalCBOR encodes the value as CBOR. Integers become CBOR integers, byte strings
// become CBOR byte strings, lists become arrays and dictionaries become maps keyed by
// byte strings. A later duplicate dictionary key overwrites an earlier one.
func (v Value) MarshalCBOR() ([]byte, error) {
	if v.kind == KindInvalid {
		return nil, errors.New("cannot encode an empty Value")
	}
	encMode, err := getCborEncMode()
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(v.cborValue())
}

func (v Value) cborValue() any {
	switch v.kind {
	case KindInteger:
		return v.integer
	case KindByteString:
		return v.bytes
	case KindList:
		ret := make([]any, 0, len(v.list))
		for _, item := range v.list {
			ret = append(ret, item.cborValue())
		}
		return ret
	case KindDict:
		// Bencode keys are byte strings, which need not be valid text
		ret := make(map[_cbor.ByteString]any, len(v.dict))
		for _, entry := range v.dict {
			ret[_cbor.ByteString(entry.Key)] = entry.Value.cborValue()
		}
		return ret
	default:
		return nil
	}
}

// ToCbor transcodes the first value in data to CBOR
func ToCbor(data []byte, opts ...DecoderOptionFunc) ([]byte, error) {
	var tmpValue Value
	if _, err := Decode(data, &tmpValue, opts...); err != nil {
		return nil, err
	}
	return tmpValue.MarshalCBOR()
}

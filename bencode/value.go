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

// Value holds an arbitrary decoded value along with its original encoding. Unlike a
// map[string]any, dictionaries keep their wire order, duplicate keys and non-text keys.
type Value struct {
	kind    Kind
	integer int64
	bytes   []byte
	list    []Value
	dict    []DictEntry
	raw     []byte
}

// DictEntry is one key/value pair of a dictionary Value
type DictEntry struct {
	Key   []byte
	Value Value
}

func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer and true if v is an Integer
func (v Value) Int() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// Bytes returns the bytes and true if v is a ByteString
func (v Value) Bytes() ([]byte, bool) {
	return v.bytes, v.kind == KindByteString
}

// List returns the elements and true if v is a List
func (v Value) List() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Dict returns the entries in wire order and true if v is a Dict
func (v Value) Dict() ([]DictEntry, bool) {
	return v.dict, v.kind == KindDict
}

// Lookup returns the value of the first entry with the given key in a Dict
func (v Value) Lookup(key string) (Value, bool) {
	for _, entry := range v.dict {
		if string(entry.Key) == key {
			return entry.Value, true
		}
	}
	return Value{}, false
}

// Bencode returns the original encoding of the value
func (v Value) Bencode() []byte {
	return v.raw
}

// Value returns v as plain Go types: int64, []byte, []any and map[string]any. A later
// duplicate dictionary key overwrites an earlier one.
func (v Value) Value() any {
	switch v.kind {
	case KindInteger:
		return v.integer
	case KindByteString:
		return v.bytes
	case KindList:
		ret := make([]any, 0, len(v.list))
		for _, item := range v.list {
			ret = append(ret, item.Value())
		}
		return ret
	case KindDict:
		ret := make(map[string]any, len(v.dict))
		for _, entry := range v.dict {
			ret[string(entry.Key)] = entry.Value.Value()
		}
		return ret
	default:
		return nil
	}
}

// decodeTree decodes the next value into a Value, recording its encoding as it goes
func (d *Decoder) decodeTree(state decodeState) (Value, error) {
	if err := d.ensureToken(); err != nil {
		return Value{}, err
	}
	tok := d.pop()
	switch tok.kind {
	case tokenInteger:
		return Value{
			kind:    KindInteger,
			integer: tok.integer,
			raw:     tok.appendEncoding(nil),
		}, nil
	case tokenByteString:
		return Value{
			kind:  KindByteString,
			bytes: tok.bytes,
			raw:   tok.appendEncoding(nil),
		}, nil
	case tokenListOpen:
		inner, err := d.enter(state)
		if err != nil {
			return Value{}, err
		}
		c := newContainer(d, inner)
		ret := Value{
			kind: KindList,
			list: []Value{},
			raw:  []byte{markerList},
		}
		for {
			var item Value
			ok, err := c.next(func(s decodeState) error {
				var err error
				item, err = d.decodeTree(s)
				return err
			})
			if err != nil {
				return Value{}, err
			}
			if !ok {
				break
			}
			ret.list = append(ret.list, item)
			ret.raw = append(ret.raw, item.raw...)
		}
		ret.raw = append(ret.raw, markerEnd)
		return ret, nil
	case tokenDictOpen:
		inner, err := d.enter(state)
		if err != nil {
			return Value{}, err
		}
		c := newContainer(d, inner)
		ret := Value{
			kind: KindDict,
			dict: []DictEntry{},
			raw:  []byte{markerDict},
		}
		for {
			var key, val Value
			ok, err := c.next(func(s decodeState) error {
				var err error
				key, err = d.decodeTree(s)
				if err != nil {
					return err
				}
				if key.kind != KindByteString {
					return invalidValue("dictionary key must be a ByteString, found %s", key.kind)
				}
				return nil
			})
			if err != nil {
				return Value{}, err
			}
			if !ok {
				break
			}
			err = c.value(func(s decodeState) error {
				var err error
				val, err = d.decodeTree(s)
				return err
			})
			if err != nil {
				return Value{}, err
			}
			ret.dict = append(ret.dict, DictEntry{Key: key.bytes, Value: val})
			ret.raw = append(ret.raw, key.raw...)
			ret.raw = append(ret.raw, val.raw...)
		}
		ret.raw = append(ret.raw, markerEnd)
		return ret, nil
	case tokenEnd:
		return Value{}, unexpectedEnd("found end marker where a value was expected")
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", tok.kind))
	}
}

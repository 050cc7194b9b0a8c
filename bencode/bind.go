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
	"reflect"
	"unicode/utf8"
)

var valueType = reflect.TypeFor[Value]()

// decodeValue decodes the next value into rv, picking the request from rv's type
func (d *Decoder) decodeValue(state decodeState, rv reflect.Value) error {
	t := rv.Type()
	if t == valueType {
		v, err := d.decodeTree(state)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(Unmarshaler); ok {
			raw, err := d.capture(state)
			if err != nil {
				return err
			}
			return u.UnmarshalBencode(raw)
		}
	}
	switch t.Kind() {
	case reflect.Pointer:
		return d.decodeOption(state, rv)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return d.decodeSelfDescribing(state, rv)
		}
		if d.unions.has(t) {
			return d.decodeTaggedUnion(state, rv)
		}
		return invalidValue("no variants registered for interface %s", t)
	case reflect.Struct:
		return d.decodeStruct(state, rv)
	case reflect.Bool,
		reflect.Float32,
		reflect.Float64,
		reflect.Complex64,
		reflect.Complex128,
		reflect.Chan,
		reflect.Func,
		reflect.UnsafePointer:
		return invalidValue("unsupported target type %s", t)
	default:
		return d.decodeAny(state, rv)
	}
}

// decodeSelfDescribing decodes into a schema-less target, choosing the Go type from
// the shape of the next value
func (d *Decoder) decodeSelfDescribing(state decodeState, rv reflect.Value) error {
	kind, err := d.PeekKind()
	if err != nil {
		return err
	}
	var tmp reflect.Value
	switch kind {
	case KindInteger:
		tmp = reflect.New(reflect.TypeFor[int64]()).Elem()
	case KindByteString:
		tmp = reflect.New(reflect.TypeFor[[]byte]()).Elem()
	case KindList:
		tmp = reflect.New(reflect.TypeFor[[]any]()).Elem()
	case KindDict:
		tmp = reflect.New(reflect.TypeFor[map[string]any]()).Elem()
	default:
		panic(fmt.Sprintf("bencode: unhandled kind %s", kind))
	}
	if err := d.decodeAny(state, tmp); err != nil {
		return err
	}
	rv.Set(tmp)
	return nil
}

// decodeStruct decodes a dictionary into a struct, treating keys as field identifiers
func (d *Decoder) decodeStruct(state decodeState, rv reflect.Value) error {
	if err := d.ensureToken(); err != nil {
		return err
	}
	tok := d.pop()
	switch tok.kind {
	case tokenDictOpen:
	case tokenEnd:
		return unexpectedEnd("found end marker where a value was expected")
	default:
		return typeMismatch(tok.valueKind(), rv.Type())
	}
	inner, err := d.enter(state)
	if err != nil {
		return err
	}
	inner.structMode = true
	c := newContainer(d, inner)
	fields := d.structFields(rv.Type())
	for {
		name, ok, err := c.fieldIdentifier()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		field := fields.lookup(name)
		if field == nil {
			if d.disallowUnknownFields {
				return invalidValue("unknown field %q in %s", name, rv.Type())
			}
			d.logger.Debug(
				"skipping unknown field",
				"component", "bencode",
				"field", string(name),
				"type", rv.Type().String(),
			)
			if err := c.value(d.skip); err != nil {
				return err
			}
			continue
		}
		fv := fieldByIndex(rv, field.index)
		err = c.value(func(s decodeState) error {
			return d.decodeValue(s, fv)
		})
		if err != nil {
			return err
		}
	}
}

// visitSeq fills rv from an open list
func (d *Decoder) visitSeq(c *container, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		elemType := rv.Type().Elem()
		rv.Set(reflect.MakeSlice(rv.Type(), 0, 0))
		for {
			elem := reflect.New(elemType).Elem()
			ok, err := c.next(func(s decodeState) error {
				return d.decodeValue(s, elem)
			})
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			rv.Set(reflect.Append(rv, elem))
		}
	case reflect.Array:
		i := 0
		for ; i < rv.Len(); i++ {
			elem := rv.Index(i)
			ok, err := c.next(func(s decodeState) error {
				return d.decodeValue(s, elem)
			})
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
		// Elements that were not present are zeroed
		for j := i; j < rv.Len(); j++ {
			rv.Index(j).SetZero()
		}
		end, err := c.atEnd()
		if err != nil {
			return err
		}
		if !end {
			return invalidValue("list has more than %d elements for %s", rv.Len(), rv.Type())
		}
		return nil
	default:
		return typeMismatch(KindList, rv.Type())
	}
}

// visitMap fills rv from an open dictionary, decoding keys as generic values
func (d *Decoder) visitMap(c *container, rv reflect.Value) error {
	t := rv.Type()
	if t.Kind() != reflect.Map {
		return typeMismatch(KindDict, t)
	}
	if t.Key().Kind() != reflect.String && t.Key() != byteStringType {
		return invalidValue("unsupported map key type %s", t.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(t))
	}
	for {
		key := reflect.New(t.Key()).Elem()
		ok, err := c.next(func(s decodeState) error {
			return d.decodeValue(s, key)
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		val := reflect.New(t.Elem()).Elem()
		err = c.value(func(s decodeState) error {
			return d.decodeValue(s, val)
		})
		if err != nil {
			return err
		}
		rv.SetMapIndex(key, val)
	}
}

func setInteger(rv reflect.Value, i int64) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(i) {
			return invalidValue("integer %d overflows %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return invalidValue("integer %d overflows %s", i, rv.Type())
		}
		rv.SetUint(uint64(i))
		return nil
	default:
		return typeMismatch(KindInteger, rv.Type())
	}
}

func setBytes(rv reflect.Value, b []byte) error {
	switch rv.Kind() {
	case reflect.String:
		if !utf8.Valid(b) {
			return invalidValue("byte string is not valid UTF-8 text for %s", rv.Type())
		}
		rv.SetString(string(b))
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return typeMismatch(KindByteString, rv.Type())
		}
		rv.SetBytes(b)
		return nil
	case reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return typeMismatch(KindByteString, rv.Type())
		}
		if len(b) != rv.Len() {
			return invalidValue(
				"byte string has %d bytes, %s needs %d",
				len(b),
				rv.Type(),
				rv.Len(),
			)
		}
		reflect.Copy(rv, reflect.ValueOf(b))
		return nil
	default:
		return typeMismatch(KindByteString, rv.Type())
	}
}

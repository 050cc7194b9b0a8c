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
	"errors"
	"reflect"

	"github.com/jinzhu/copier"
)

// Decode decodes the first value in data into dest and returns the number of bytes it
// occupied. Any bytes after the first value are left alone.
func Decode(dataBytes []byte, dest any, opts ...DecoderOptionFunc) (int, error) {
	dec := NewDecoder(bytes.NewReader(dataBytes), opts...)
	err := dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// FromBytes decodes the first value in data as a T
func FromBytes[T any](data []byte, opts ...DecoderOptionFunc) (T, error) {
	var ret T
	if _, err := Decode(data, &ret, opts...); err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}

// FromString decodes the first value in s as a T
func FromString[T any](s string, opts ...DecoderOptionFunc) (T, error) {
	return FromBytes[T]([]byte(s), opts...)
}

// DecodeGeneric decodes the specified data into the destination object without using
// the destination object's UnmarshalBencode() function
func DecodeGeneric(data []byte, dest any, opts ...DecoderOptionFunc) error {
	valueDest := reflect.ValueOf(dest)
	if valueDest.Kind() != reflect.Pointer ||
		valueDest.IsNil() ||
		valueDest.Elem().Kind() != reflect.Struct {
		return errors.New("destination must be a pointer to a struct")
	}
	// Create a duplicate(-ish) struct from the destination
	// We do this so that we can bypass any custom UnmarshalBencode() function on the
	// destination object
	typeDest := valueDest.Elem().Type()
	destTypeFields := []reflect.StructField{}
	for i := range typeDest.NumField() {
		tmpField := typeDest.Field(i)
		if tmpField.IsExported() && tmpField.Name != "DecodeStoreBencode" {
			destTypeFields = append(destTypeFields, tmpField)
		}
	}
	tmpDest := reflect.New(reflect.StructOf(destTypeFields))
	if _, err := Decode(data, tmpDest.Interface(), opts...); err != nil {
		return err
	}
	// Copy values from temporary object into destination object
	return copier.Copy(dest, tmpDest.Interface())
}

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
	"reflect"
	"slices"
	"strings"
)

const structTagName = "bencode"

type structField struct {
	name  string
	index []int
}

type structFields struct {
	list   []structField
	byName map[string]int
}

// lookup finds the field for a dictionary key, preferring an exact match over a
// case-insensitive one
func (f *structFields) lookup(name []byte) *structField {
	if i, ok := f.byName[string(name)]; ok {
		return &f.list[i]
	}
	for i := range f.list {
		if bytes.EqualFold([]byte(f.list[i].name), name) {
			return &f.list[i]
		}
	}
	return nil
}

// structFields returns the field metadata for t. The cache belongs to the decoder, so
// decoding never touches process-wide state.
func (d *Decoder) structFields(t reflect.Type) *structFields {
	if f, ok := d.fields[t]; ok {
		return f
	}
	f := &structFields{
		byName: make(map[string]int),
	}
	collectFields(t, nil, map[reflect.Type]bool{}, f)
	if d.fields == nil {
		d.fields = make(map[reflect.Type]*structFields)
	}
	d.fields[t] = f
	return f
}

// collectFields adds the fields of t, then the fields promoted from its embedded
// structs. Names already present shadow promoted ones.
func collectFields(
	t reflect.Type,
	index []int,
	visited map[reflect.Type]bool,
	f *structFields,
) {
	if visited[t] {
		return
	}
	visited[t] = true
	var embedded []reflect.StructField
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get(structTagName)
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				// Unexported embedded pointers cannot be allocated
				if !sf.IsExported() {
					continue
				}
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded = append(embedded, sf)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if _, ok := f.byName[name]; ok {
			continue
		}
		f.byName[name] = len(f.list)
		f.list = append(f.list, structField{
			name:  name,
			index: append(slices.Clone(index), i),
		})
	}
	for _, sf := range embedded {
		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		collectFields(ft, append(slices.Clone(index), sf.Index[0]), visited, f)
	}
}

// fieldByIndex returns the nested field, allocating nil embedded pointers on the way
func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

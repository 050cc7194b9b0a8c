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
	"fmt"
	"reflect"
)

// UnionSet maps interface types to their tagged-union variants. A variant is encoded as
// a one-entry dictionary whose key names the variant and whose value is its payload:
//
//	d6:circled6:radiusi3eee
//
// A UnionSet should be fully populated before it is shared between decoders.
type UnionSet struct {
	unions map[reflect.Type]map[string]reflect.Type
}

func NewUnionSet() *UnionSet {
	return &UnionSet{
		unions: make(map[reflect.Type]map[string]reflect.Type),
	}
}

// Add registers payloadType as the variant called name of the interface type iface.
// Either payloadType or a pointer to it must implement iface. A nil payloadType
// registers a unit variant, which is recognized but cannot be decoded because the
// format has no way to express a variant without a payload.
func (u *UnionSet) Add(iface reflect.Type, name string, payloadType reflect.Type) error {
	if iface == nil || iface.Kind() != reflect.Interface {
		return fmt.Errorf("union type must be an interface, got %v", iface)
	}
	if iface.NumMethod() == 0 {
		return errors.New("union type must have at least one method")
	}
	if payloadType != nil &&
		!payloadType.Implements(iface) &&
		!reflect.PointerTo(payloadType).Implements(iface) {
		return fmt.Errorf("variant %q: %s does not implement %s", name, payloadType, iface)
	}
	variants, ok := u.unions[iface]
	if !ok {
		variants = make(map[string]reflect.Type)
		u.unions[iface] = variants
	}
	if _, ok := variants[name]; ok {
		return fmt.Errorf("variant %q already registered for %s", name, iface)
	}
	variants[name] = payloadType
	return nil
}

func (u *UnionSet) has(iface reflect.Type) bool {
	if u == nil {
		return false
	}
	_, ok := u.unions[iface]
	return ok
}

// decodeTaggedUnion decodes a one-entry dictionary into the variant its key names
func (d *Decoder) decodeTaggedUnion(state decodeState, rv reflect.Value) error {
	state.structMode = false
	if err := d.ensureToken(); err != nil {
		return err
	}
	tok := d.pop()
	switch tok.kind {
	case tokenDictOpen:
	case tokenByteString:
		return d.rejectVariant(rv.Type(), "unit variant not supported")
	case tokenListOpen:
		return d.rejectVariant(rv.Type(), "tuple variant not supported")
	case tokenInteger:
		return d.rejectVariant(rv.Type(), "integer cannot select a variant")
	case tokenEnd:
		return unexpectedEnd("found end marker where a value was expected")
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", tok.kind))
	}
	inner, err := d.enter(state)
	if err != nil {
		return err
	}
	c := newContainer(d, inner)
	var tag string
	ok, err := c.next(func(s decodeState) error {
		return d.decodeValue(s, reflect.ValueOf(&tag).Elem())
	})
	if err != nil {
		return err
	}
	if !ok {
		return d.rejectVariant(rv.Type(), "unit variant not supported")
	}
	payloadType, found := d.unions.unions[rv.Type()][tag]
	if !found {
		return d.rejectVariant(rv.Type(), fmt.Sprintf("variant %q is not registered", tag))
	}
	if payloadType == nil {
		return d.rejectVariant(rv.Type(), fmt.Sprintf("unit variant %q not supported", tag))
	}
	payload := reflect.New(payloadType)
	err = c.value(func(s decodeState) error {
		return d.decodeValue(s, payload.Elem())
	})
	if err != nil {
		return err
	}
	end, err := c.atEnd()
	if err != nil {
		return err
	}
	if !end {
		return d.rejectVariant(rv.Type(), "struct variant not supported")
	}
	if payloadType.Implements(rv.Type()) {
		rv.Set(payload.Elem())
	} else {
		rv.Set(payload)
	}
	return nil
}

func (d *Decoder) rejectVariant(iface reflect.Type, detail string) error {
	d.logger.Debug(
		"rejecting tagged union value",
		"component", "bencode",
		"type", iface.String(),
		"reason", detail,
	)
	return unknownVariant("%s: %s", iface, detail)
}

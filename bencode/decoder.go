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
	"io"
	"log/slog"
	"reflect"
)

// DefaultMaxDepth is the nesting limit used when WithMaxDepth is not given
const DefaultMaxDepth = 256

// Decoder reads bencoded values from an input stream. A Decoder is not safe for
// concurrent use.
type Decoder struct {
	scanner *scanner
	// Scanned tokens that have not been consumed yet, top last. Holds at most one pending
	// token per active decode frame.
	stack                 []token
	maxDepth              int
	logger                *slog.Logger
	unions                *UnionSet
	disallowUnknownFields bool
	fields                map[reflect.Type]*structFields
}

// decodeState is scoped to a single decode request and passed by value, so a nested
// request never sees the modes of its parent
type decodeState struct {
	// Dictionary keys are field identifiers rather than generic values
	structMode bool
	// The next produced value is wrapped as present
	optionMode bool
	// Number of enclosing containers
	depth int
}

// NewDecoder returns a decoder that reads from r. The decoder reads only as many bytes
// as each value needs.
func NewDecoder(r io.Reader, opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		scanner:  newScanner(r),
		stack:    make([]token, 0, 1),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Decode reads the next value from the input and stores it in the value pointed to by
// dest. After an error the input is left wherever decoding stopped, possibly inside a
// list or dictionary, so a stream should not be decoded further once Decode fails.
func (d *Decoder) Decode(dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return invalidValue("destination must be a non-nil pointer, got %T", dest)
	}
	// Each top-level decode starts without any modes set
	var state decodeState
	if err := d.decodeValue(state, rv.Elem()); err != nil {
		d.stack = d.stack[:0]
		return err
	}
	return nil
}

// NumBytesRead returns the number of bytes consumed from the input so far
func (d *Decoder) NumBytesRead() int {
	return d.scanner.n
}

// PeekKind reports the kind of the next value without consuming it. This is the
// capability used to decode into schema-less targets.
func (d *Decoder) PeekKind() (Kind, error) {
	if err := d.ensureToken(); err != nil {
		return KindInvalid, err
	}
	kind := d.top().valueKind()
	if kind == KindInvalid {
		return KindInvalid, unexpectedEnd("found end marker where a value was expected")
	}
	return kind, nil
}

// ensureToken stages a token if none is pending
func (d *Decoder) ensureToken() error {
	if len(d.stack) > 0 {
		return nil
	}
	tok, err := d.scanner.scanToken()
	if err != nil {
		return err
	}
	d.stack = append(d.stack, tok)
	return nil
}

func (d *Decoder) top() token {
	return d.stack[len(d.stack)-1]
}

func (d *Decoder) pop() token {
	tok := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return tok
}

// enter returns the state for the inside of a newly opened container
func (d *Decoder) enter(state decodeState) (decodeState, error) {
	inner := decodeState{depth: state.depth + 1}
	if inner.depth > d.maxDepth {
		d.logger.Debug(
			"nesting depth limit reached",
			"component", "bencode",
			"max_depth", d.maxDepth,
			"offset", d.scanner.n,
		)
		return inner, fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, d.maxDepth)
	}
	return inner, nil
}

// decodeAny delivers the next value to rv according to the token that starts it
func (d *Decoder) decodeAny(state decodeState, rv reflect.Value) error {
	if err := d.ensureToken(); err != nil {
		return err
	}
	if state.optionMode {
		// There is no null marker, so an optional value that gets here is present
		state.optionMode = false
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decodeValue(state, rv.Elem())
	}
	tok := d.pop()
	switch tok.kind {
	case tokenInteger:
		return setInteger(rv, tok.integer)
	case tokenByteString:
		return setBytes(rv, tok.bytes)
	case tokenListOpen:
		inner, err := d.enter(state)
		if err != nil {
			return err
		}
		return d.visitSeq(newContainer(d, inner), rv)
	case tokenDictOpen:
		inner, err := d.enter(state)
		if err != nil {
			return err
		}
		return d.visitMap(newContainer(d, inner), rv)
	case tokenEnd:
		return unexpectedEnd("found end marker where a value was expected")
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", tok.kind))
	}
}

// decodeOption decodes a value that may be absent from its dictionary
func (d *Decoder) decodeOption(state decodeState, rv reflect.Value) error {
	state.optionMode = true
	return d.decodeAny(state, rv)
}

// consume reads one complete value and hands each of its tokens to emit, if set
func (d *Decoder) consume(state decodeState, emit func(token)) error {
	if err := d.ensureToken(); err != nil {
		return err
	}
	tok := d.pop()
	if emit != nil {
		emit(tok)
	}
	switch tok.kind {
	case tokenInteger, tokenByteString:
		return nil
	case tokenListOpen, tokenDictOpen:
		inner, err := d.enter(state)
		if err != nil {
			return err
		}
		c := newContainer(d, inner)
		consumeNext := func(s decodeState) error {
			return d.consume(s, emit)
		}
		consumeKey := consumeNext
		if tok.kind == tokenDictOpen {
			consumeKey = func(s decodeState) error {
				if err := d.ensureToken(); err != nil {
					return err
				}
				if key := d.top(); key.kind != tokenByteString {
					return invalidValue("dictionary key must be a ByteString, found %s", key.kind)
				}
				return consumeNext(s)
			}
		}
		for {
			ok, err := c.next(consumeKey)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if tok.kind == tokenDictOpen {
				if err := c.value(consumeNext); err != nil {
					return err
				}
			}
		}
		if emit != nil {
			emit(token{kind: tokenEnd})
		}
		return nil
	case tokenEnd:
		return unexpectedEnd("found end marker where a value was expected")
	default:
		panic(fmt.Sprintf("bencode: unhandled token kind %s", tok.kind))
	}
}

// capture reads one complete value and returns its original encoding
func (d *Decoder) capture(state decodeState) ([]byte, error) {
	var raw []byte
	err := d.consume(state, func(tok token) {
		raw = tok.appendEncoding(raw)
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// skip reads and discards one complete value
func (d *Decoder) skip(state decodeState) error {
	return d.consume(state, nil)
}

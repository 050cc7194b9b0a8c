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

// container pulls successive elements or key/value pairs out of one open list or
// dictionary. The format carries no element count, so the end of the container is
// found by peeking for the End token before each element. A container is used for
// exactly one list or dictionary and is exhausted once its End has been consumed.
type container struct {
	d      *Decoder
	state  decodeState
	closed bool
}

func newContainer(d *Decoder, state decodeState) *container {
	return &container{
		d:     d,
		state: state,
	}
}

// elementState is the state each element is decoded with: the container's depth and
// no modes
func (c *container) elementState() decodeState {
	return decodeState{depth: c.state.depth}
}

// atEnd stages the next token and consumes it if it is the container's End
func (c *container) atEnd() (bool, error) {
	if c.closed {
		return true, nil
	}
	if err := c.d.ensureToken(); err != nil {
		return false, err
	}
	if c.d.top().kind != tokenEnd {
		return false, nil
	}
	c.d.pop()
	c.closed = true
	return true, nil
}

// next decodes the next list element or dictionary key with fn. It returns false once
// the container is exhausted. Errors from fn are returned unchanged.
func (c *container) next(fn func(decodeState) error) (bool, error) {
	end, err := c.atEnd()
	if err != nil || end {
		return false, err
	}
	if err := fn(c.elementState()); err != nil {
		return false, err
	}
	return true, nil
}

// value decodes the value that follows a dictionary key with fn
func (c *container) value(fn func(decodeState) error) error {
	if err := c.d.ensureToken(); err != nil {
		return err
	}
	if c.d.top().kind == tokenEnd {
		return unexpectedEnd("dictionary key has no value")
	}
	return fn(c.elementState())
}

// fieldIdentifier returns the next dictionary key as a raw field name without decoding
// it as a generic value. It returns false once the container is exhausted.
func (c *container) fieldIdentifier() ([]byte, bool, error) {
	end, err := c.atEnd()
	if err != nil || end {
		return nil, false, err
	}
	tok := c.d.pop()
	if tok.kind != tokenByteString {
		return nil, false, invalidValue(
			"dictionary key must be a ByteString, found %s",
			tok.kind,
		)
	}
	return tok.bytes, true, nil
}

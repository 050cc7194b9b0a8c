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

var (
	// ErrEndOfStream is returned when the input runs out (or contains a byte that cannot
	// start a value) while a value, length or terminator is still expected
	ErrEndOfStream = errors.New("unexpected end of stream")

	// ErrInvalidValue is returned for malformed integers and lengths, non-text bytes where
	// text is required, and values that do not fit the requested target
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownVariant is returned when a tagged-union value has a shape the format cannot
	// express, or names a variant that is not registered
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrMaxDepthExceeded is returned when lists and dictionaries nest deeper than the
	// decoder's configured limit
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

func unknownVariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnknownVariant, fmt.Sprintf(format, args...))
}

func unexpectedEnd(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEndOfStream, fmt.Sprintf(format, args...))
}

func typeMismatch(kind Kind, t reflect.Type) error {
	return invalidValue("cannot decode %s into %s", kind, t)
}

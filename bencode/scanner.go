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
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// scanner reads exactly one token at a time and never reads past the end of it
type scanner struct {
	r  io.Reader
	br io.ByteReader
	// Number of bytes consumed so far
	n int
}

func newScanner(r io.Reader) *scanner {
	s := &scanner{r: r}
	if br, ok := r.(io.ByteReader); ok {
		s.br = br
	} else {
		// Read a single byte at a time so that nothing after the current value is
		// pulled out of the caller's reader
		s.br = &singleByteReader{r: r}
	}
	return s
}

type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

func (s *scanner) readByte() (byte, error) {
	b, err := s.br.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, unexpectedEnd("input ended at offset %d", s.n)
		}
		return 0, fmt.Errorf("read failed at offset %d: %w", s.n, err)
	}
	s.n++
	return b, nil
}

// readUntil appends bytes to buf up to, but not including, delim
func (s *scanner) readUntil(delim byte, buf []byte) ([]byte, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if b == delim {
			return buf, nil
		}
		buf = append(buf, b)
	}
}

func (s *scanner) scanToken() (token, error) {
	b, err := s.readByte()
	if err != nil {
		return token{}, err
	}
	switch {
	case b == markerList:
		return token{kind: tokenListOpen}, nil
	case b == markerDict:
		return token{kind: tokenDictOpen}, nil
	case b == markerEnd:
		return token{kind: tokenEnd}, nil
	case b == markerInteger:
		return s.scanInteger()
	case b >= '0' && b <= '9':
		return s.scanByteString(b)
	default:
		return token{}, unexpectedEnd("unexpected byte 0x%02x at offset %d", b, s.n-1)
	}
}

func (s *scanner) scanInteger() (token, error) {
	text, err := s.readUntil(markerEnd, nil)
	if err != nil {
		return token{}, err
	}
	if !utf8.Valid(text) {
		return token{}, invalidValue("non UTF-8 integer encoding")
	}
	i, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return token{}, invalidValue("cannot parse %q as int64", text)
	}
	return token{kind: tokenInteger, integer: i, digits: string(text)}, nil
}

func (s *scanner) scanByteString(firstDigit byte) (token, error) {
	text, err := s.readUntil(markerLengthSep, []byte{firstDigit})
	if err != nil {
		return token{}, err
	}
	if !utf8.Valid(text) {
		return token{}, invalidValue("non UTF-8 byte string length")
	}
	// A bit size of 63 keeps the length representable as an int64 for io.CopyN
	length, err := strconv.ParseUint(string(text), 10, 63)
	if err != nil {
		return token{}, invalidValue("cannot parse %q as byte string length", text)
	}
	// The body is copied as it arrives rather than allocated up front, so a bogus
	// length cannot force a huge allocation
	var body bytes.Buffer
	copied, err := io.CopyN(&body, s.r, int64(length))
	s.n += int(copied)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return token{}, unexpectedEnd(
				"byte string declares %d bytes but only %d remain",
				length,
				copied,
			)
		}
		return token{}, fmt.Errorf("read failed at offset %d: %w", s.n, err)
	}
	data := body.Bytes()
	if data == nil {
		data = []byte{}
	}
	return token{kind: tokenByteString, bytes: data, digits: string(text)}, nil
}

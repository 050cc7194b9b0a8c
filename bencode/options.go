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
	"log/slog"
)

// DecoderOptionFunc is a function that configures a Decoder
type DecoderOptionFunc func(*Decoder)

// WithMaxDepth limits how deeply lists and dictionaries may nest. Values <= 0 select
// DefaultMaxDepth.
func WithMaxDepth(maxDepth int) DecoderOptionFunc {
	return func(d *Decoder) {
		if maxDepth <= 0 {
			maxDepth = DefaultMaxDepth
		}
		d.maxDepth = maxDepth
	}
}

// WithLogger specifies the logger for debug output. slog.Default() is used when not set
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithUnionSet specifies the tagged-union variants available to interface targets
func WithUnionSet(unions *UnionSet) DecoderOptionFunc {
	return func(d *Decoder) {
		d.unions = unions
	}
}

// WithDisallowUnknownFields makes a dictionary key that matches no struct field an
// error instead of being skipped
func WithDisallowUnknownFields(disallow bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.disallowUnknownFields = disallow
	}
}

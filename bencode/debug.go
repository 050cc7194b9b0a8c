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
	"fmt"
	"maps"
	"slices"
)

// DumpStructure generates an indented string representing a decoded data structure for
// debugging purposes. Dictionary keys are printed in sorted order.
func DumpStructure(data any, prefix string) string {
	var ret bytes.Buffer
	switch v := data.(type) {
	case Value:
		return DumpStructure(v.Value(), prefix)
	case int64:
		return fmt.Sprintf("%s%d,\n", prefix, v)
	case []byte:
		return fmt.Sprintf("%s<bytes> (length %d) %q,\n", prefix, len(v), v)
	case []any:
		ret.WriteString(prefix + "[\n")
		newPrefix := "  " + prefix
		for _, val := range v {
			ret.WriteString(DumpStructure(val, newPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case map[string]any:
		ret.WriteString(prefix + "{\n")
		newPrefix := "  " + prefix
		for _, key := range slices.Sorted(maps.Keys(v)) {
			ret.WriteString(fmt.Sprintf("%s%q =>\n", newPrefix, key))
			ret.WriteString(DumpStructure(v[key], "  "+newPrefix))
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}

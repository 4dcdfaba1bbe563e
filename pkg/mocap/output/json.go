// Package output provides JSON serialization for extraction results.
package output

import "encoding/json"

// ToJSON serializes a value to JSON, optionally pretty-printed.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

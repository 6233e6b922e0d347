package source

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONParser parses a JSON array of flat objects.
type JSONParser struct{}

// NewJSONParser creates a new JSON parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON data into a Table. Empty input is an empty table.
func (p *JSONParser) Parse(data []byte) (Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Table{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objs []map[string]any
	if err := dec.Decode(&objs); err != nil {
		return Table{}, fmt.Errorf("%w: json: %w", ErrParse, err)
	}
	return tableFromMaps(objs), nil
}

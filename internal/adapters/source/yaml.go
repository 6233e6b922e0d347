package source

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses a YAML sequence of mappings.
type YAMLParser struct{}

// NewYAMLParser creates a new YAML parser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML data into a Table. Empty input is an empty table.
func (p *YAMLParser) Parse(data []byte) (Table, error) {
	var objs []map[string]any
	if err := yaml.Unmarshal(data, &objs); err != nil {
		return Table{}, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	return tableFromMaps(objs), nil
}

// tableFromMaps flattens keyed rows into a Table whose header is the sorted
// union of all keys. Missing keys become empty cells.
func tableFromMaps(objs []map[string]any) Table {
	if len(objs) == 0 {
		return Table{}
	}
	seen := make(map[string]struct{})
	var header []string
	for _, o := range objs {
		for k := range o {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				header = append(header, k)
			}
		}
	}
	sort.Strings(header)

	t := Table{Header: header, Rows: make([][]string, 0, len(objs))}
	for _, o := range objs {
		row := make([]string, len(header))
		for i, k := range header {
			if v, ok := o[k]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

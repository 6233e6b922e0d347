// Package source reads the players, reports and shortlist tables from CSV,
// XLSX, JSON or YAML files and decodes them into domain records.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a parsed sheet: a header row and data rows of raw cell text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Parser turns raw file bytes into a Table.
type Parser interface {
	Parse(data []byte) (Table, error)
}

// ParserFactory picks a Parser for a file name.
type ParserFactory interface {
	GetParser(filename string) (Parser, error)
}

// Factory creates the appropriate parser based on file extension.
type Factory struct{}

// NewFactory creates a new parser factory.
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns the parser for filename's extension.
func (f *Factory) GetParser(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	case ".json":
		return NewJSONParser(), nil
	case ".yaml", ".yml":
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// tableFromRecords uses the first non-empty record as header and keeps the
// remaining non-empty records as rows.
func tableFromRecords(records [][]string) Table {
	var t Table
	for _, rec := range records {
		if isBlankRow(rec) {
			continue
		}
		if t.Header == nil {
			t.Header = trimAll(rec)
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

func isBlankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, c := range rec {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

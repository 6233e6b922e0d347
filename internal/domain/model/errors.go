package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for record errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
)

// InvalidRecordError reports a structurally invalid player record.
// Index is the row position in its input sequence, or -1 when unknown.
type InvalidRecordError struct {
	Index    int
	PlayerID string
	Field    string
	Reason   string
}

func (e *InvalidRecordError) Error() string {
	var b strings.Builder
	b.WriteString("invalid record")
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at row %d", e.Index)
	}
	if e.PlayerID != "" {
		fmt.Fprintf(&b, " (id %q)", e.PlayerID)
	}
	fmt.Fprintf(&b, ": %s %s", e.Field, e.Reason)
	return b.String()
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidRecord).
func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }

// Validate checks the fields every card needs: a non-blank id and a
// non-negative age.
func (p PlayerRecord) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return &InvalidRecordError{Index: -1, Field: "id", Reason: "is required"}
	}
	if p.Age < 0 {
		return &InvalidRecordError{Index: -1, PlayerID: p.ID, Field: "age", Reason: fmt.Sprintf("must be non-negative, got %d", p.Age)}
	}
	return nil
}

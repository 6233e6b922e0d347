// Package render prints dashboard descriptors as terminal tables.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	service "github.com/okian/scoutboard/internal/app"
)

// Supported table styles.
const (
	StyleLight    = "light"
	StyleRounded  = "rounded"
	StyleMarkdown = "markdown"
	StyleCSV      = "csv"
)

// ErrUnknownStyle is returned for a style name Tables does not support.
var ErrUnknownStyle = errors.New("unknown table style")

// Styles lists the accepted style names.
func Styles() []string {
	return []string{StyleLight, StyleRounded, StyleMarkdown, StyleCSV}
}

// Tables writes the KPI table followed by the player card table.
func Tables(w io.Writer, d service.Dashboard, style string) error {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = StyleLight
	}
	emit, err := emitter(style)
	if err != nil {
		return err
	}

	kpis := newWriter(w, style, "KPIs")
	kpis.AppendHeader(table.Row{"Title", "Value"})
	for _, k := range d.KPIs {
		kpis.AppendRow(table.Row{k.Title, k.Value})
	}
	emit(kpis)
	_, _ = fmt.Fprintln(w)

	players := newWriter(w, style, "Players")
	players.AppendHeader(table.Row{"ID", "Name", "Age", "Position", "Club", "Nationality", "Photo"})
	for _, p := range d.Players {
		players.AppendRow(table.Row{p.ID, p.Name, p.Age, p.Position, p.Club, p.Nationality, p.PhotoURL})
	}
	emit(players)

	if style == StyleCSV {
		return nil
	}
	_, _ = fmt.Fprintf(w, "(%d cards)\n", len(d.Players))
	for _, s := range d.Skipped {
		_, _ = fmt.Fprintf(w, "skipped row %d (%s): %s %s\n", s.Index, s.PlayerID, s.Field, s.Reason)
	}
	return nil
}

func newWriter(w io.Writer, style, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	switch style {
	case StyleRounded:
		t.SetStyle(table.StyleRounded)
	default:
		t.SetStyle(table.StyleLight)
	}
	if style == StyleLight || style == StyleRounded {
		t.SetTitle(title)
	}
	return t
}

func emitter(style string) (func(table.Writer), error) {
	switch style {
	case StyleLight, StyleRounded:
		return func(t table.Writer) { t.Render() }, nil
	case StyleMarkdown:
		return func(t table.Writer) { t.RenderMarkdown() }, nil
	case StyleCSV:
		return func(t table.Writer) { t.RenderCSV() }, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStyle, style, strings.Join(Styles(), ", "))
	}
}

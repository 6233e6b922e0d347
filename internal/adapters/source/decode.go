package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Canonical column names.
const (
	colID          = "id"
	colPlayerID    = "player_id"
	colName        = "name"
	colAge         = "age"
	colPosition    = "position"
	colClub        = "club"
	colNationality = "nationality"
	colPhotoURL    = "photo_url"
	colAuthor      = "author"
	colDate        = "date"
	colRating      = "rating"
	colNotes       = "notes"
)

// Header aliases per table, keyed by normalized header text. The Spanish
// spellings match the scouting spreadsheets the tables are exported from.
var (
	playerColumns = map[string]string{
		"id": colID, "playerid": colID, "jugadorid": colID,
		"name": colName, "nombre": colName, "fullname": colName,
		"age": colAge, "edad": colAge,
		"position": colPosition, "posicion": colPosition, "posición": colPosition, "pos": colPosition,
		"club": colClub, "team": colClub, "equipo": colClub,
		"nationality": colNationality, "nacionalidad": colNationality, "country": colNationality,
		"photourl": colPhotoURL, "photo": colPhotoURL, "foto": colPhotoURL, "imageurl": colPhotoURL,
	}
	reportColumns = map[string]string{
		"id": colID, "reportid": colID,
		"playerid": colPlayerID, "jugadorid": colPlayerID,
		"author": colAuthor, "scout": colAuthor, "autor": colAuthor,
		"date": colDate, "fecha": colDate,
		"rating": colRating, "score": colRating, "nota": colRating,
		"notes": colNotes, "note": colNotes, "comments": colNotes, "notas": colNotes,
	}
	// A bare "id" names the player only when no explicit player column is
	// present; see DecodeShortlist.
	shortlistColumns = map[string]string{
		"playerid": colPlayerID, "jugadorid": colPlayerID, "id": colID,
	}
)

// columns maps canonical names to cell positions for one table.
type columns map[string]int

func indexColumns(header []string, aliases map[string]string) columns {
	idx := make(columns)
	for i, h := range header {
		canon, ok := aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := idx[canon]; !dup {
			idx[canon] = i
		}
	}
	return idx
}

func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columns) require(table string, names ...string) error {
	for _, n := range names {
		if _, ok := c[n]; !ok {
			return fmt.Errorf("%w: %s table needs %q", ErrMissingColumn, table, n)
		}
	}
	return nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(h)
}

// DecodePlayers converts a players table into records in row order.
// A blank or non-numeric age decodes as -1 so the card formatter reports the
// row instead of the loader dropping it.
func DecodePlayers(t Table) ([]model.PlayerRecord, error) {
	if len(t.Header) == 0 {
		return nil, nil
	}
	cols := indexColumns(t.Header, playerColumns)
	if err := cols.require("players", colID); err != nil {
		return nil, err
	}
	out := make([]model.PlayerRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, model.PlayerRecord{
			ID:          cols.get(row, colID),
			Name:        cols.get(row, colName),
			Age:         parseAge(cols.get(row, colAge)),
			Position:    cols.get(row, colPosition),
			Club:        cols.get(row, colClub),
			Nationality: cols.get(row, colNationality),
			PhotoURL:    cols.get(row, colPhotoURL),
		})
	}
	return out, nil
}

// DecodeReports converts a reports table into records in row order. Rows
// without a report id get a generated one.
func DecodeReports(t Table) ([]model.ReportRecord, error) {
	if len(t.Header) == 0 {
		return nil, nil
	}
	cols := indexColumns(t.Header, reportColumns)
	if err := cols.require("reports", colPlayerID); err != nil {
		return nil, err
	}
	out := make([]model.ReportRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := model.ReportRecord{
			ID:       cols.get(row, colID),
			PlayerID: cols.get(row, colPlayerID),
			Author:   cols.get(row, colAuthor),
			Date:     cols.get(row, colDate),
			Notes:    cols.get(row, colNotes),
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if v := cols.get(row, colRating); v != "" {
			if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
				r.Rating = f
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// DecodeShortlist converts a shortlist table into entries. Rows with a blank
// player id are skipped; a repeated player id is an error.
func DecodeShortlist(t Table) ([]model.ShortlistEntry, error) {
	if len(t.Header) == 0 {
		return nil, nil
	}
	cols := indexColumns(t.Header, shortlistColumns)
	if _, ok := cols[colPlayerID]; !ok {
		if i, ok := cols[colID]; ok {
			cols[colPlayerID] = i
		}
	}
	if err := cols.require("shortlist", colPlayerID); err != nil {
		return nil, err
	}
	seen := make(map[string]int, len(t.Rows))
	out := make([]model.ShortlistEntry, 0, len(t.Rows))
	for i, row := range t.Rows {
		id := cols.get(row, colPlayerID)
		if id == "" {
			continue
		}
		if first, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateShortlist, id, first, i)
		}
		seen[id] = i
		out = append(out, model.ShortlistEntry{PlayerID: id})
	}
	return out, nil
}

func parseAge(s string) int {
	if s == "" {
		return -1
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Spreadsheet exports sometimes write integral numbers as "19.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
		return int(f)
	}
	return -1
}

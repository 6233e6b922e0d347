// Package cards converts records and metrics into renderer-agnostic card
// descriptors.
package cards

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Default values substituted for absent optional fields.
const (
	PlaceholderPhotoURL = "/static/img/player-placeholder.png"
	UnknownValue        = "Unknown"
)

// FormatKPICard builds a KPI card. Integers render without a decimal point;
// non-integral floats render with one decimal place. An empty title is
// accepted.
func FormatKPICard(title string, value any) model.KPICard {
	return model.KPICard{Title: title, Value: formatValue(value)}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatPlayerCard validates p and returns its card with defaults resolved.
// It returns a *model.InvalidRecordError for a blank id or a negative age.
func FormatPlayerCard(p model.PlayerRecord) (model.PlayerCard, error) {
	if err := p.Validate(); err != nil {
		return model.PlayerCard{}, err
	}
	return model.PlayerCard{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Position:    orDefault(p.Position, UnknownValue),
		Club:        orDefault(p.Club, UnknownValue),
		Nationality: orDefault(p.Nationality, UnknownValue),
		PhotoURL:    orDefault(p.PhotoURL, PlaceholderPhotoURL),
	}, nil
}

// FormatPlayerCards formats players in input order. Invalid rows are left
// out of the cards and reported, one error each, with their input index.
func FormatPlayerCards(players []model.PlayerRecord) ([]model.PlayerCard, []error) {
	out := make([]model.PlayerCard, 0, len(players))
	var errs []error
	for i, p := range players {
		card, err := FormatPlayerCard(p)
		if err != nil {
			if ire, ok := err.(*model.InvalidRecordError); ok {
				ire.Index = i
			}
			errs = append(errs, err)
			continue
		}
		out = append(out, card)
	}
	return out, errs
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

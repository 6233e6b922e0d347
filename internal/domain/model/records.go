// Package model contains domain models passed between layers.
package model

// PlayerRecord is one row of the players table.
// Optional string fields are empty when absent.
type PlayerRecord struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Age         int    `json:"age" yaml:"age"`
	Position    string `json:"position" yaml:"position"`
	Club        string `json:"club" yaml:"club"`
	Nationality string `json:"nationality" yaml:"nationality"`
	PhotoURL    string `json:"photo_url" yaml:"photo_url"`
}

// ReportRecord is one scouting report. PlayerID is a weak reference and may
// point at a player that is not loaded.
type ReportRecord struct {
	ID       string  `json:"id" yaml:"id"`
	PlayerID string  `json:"player_id" yaml:"player_id"`
	Author   string  `json:"author,omitempty" yaml:"author"`
	Date     string  `json:"date,omitempty" yaml:"date"`
	Rating   float64 `json:"rating,omitempty" yaml:"rating"`
	Notes    string  `json:"notes,omitempty" yaml:"notes"`
}

// ShortlistEntry marks a player as shortlisted. PlayerID is a weak reference.
type ShortlistEntry struct {
	PlayerID string `json:"player_id" yaml:"player_id"`
}

// SummaryMetrics are derived on demand from the three tables.
type SummaryMetrics struct {
	TotalPlayers     int `json:"total_players"`
	TotalReports     int `json:"total_reports"`
	TotalShortlisted int `json:"total_shortlisted"`
	// AverageAge is 0 when there are no players.
	AverageAge float64 `json:"average_age"`
	// ShortlistedResolved counts shortlist entries that reference a loaded player.
	ShortlistedResolved int `json:"shortlisted_resolved"`
	// ReportedPlayers counts distinct loaded players with at least one report.
	ReportedPlayers int `json:"reported_players"`
}

// Dataset is the three tables loaded for one dashboard session.
type Dataset struct {
	Players   []PlayerRecord   `json:"players"`
	Reports   []ReportRecord   `json:"reports"`
	Shortlist []ShortlistEntry `json:"shortlist"`
}

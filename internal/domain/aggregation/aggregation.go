// Package aggregation computes dashboard summary metrics from the players,
// reports and shortlist tables.
//
// Every function here is pure and total: nil slices count as empty and no
// input shape produces an error. Weak references from reports and the
// shortlist to players are resolved by id; dangling ones are ignored by the
// membership-based metrics and still counted by the raw totals.
package aggregation

import (
	"github.com/okian/scoutboard/internal/domain/cards"
	"github.com/okian/scoutboard/internal/domain/model"
)

// KPI titles in display order.
const (
	TitlePlayers     = "Players"
	TitleReports     = "Reports"
	TitleShortlisted = "Shortlisted"
	TitleAverageAge  = "Average age"
)

// ComputeSummary returns raw row counts for each table plus derived metrics.
// Rows are counted as given, duplicates included. AverageAge is 0 when
// players is empty.
func ComputeSummary(players []model.PlayerRecord, reports []model.ReportRecord, shortlist []model.ShortlistEntry) model.SummaryMetrics {
	m := model.SummaryMetrics{
		TotalPlayers:     len(players),
		TotalReports:     len(reports),
		TotalShortlisted: len(shortlist),
	}
	if len(players) == 0 {
		return m
	}

	known := make(map[string]struct{}, len(players))
	ageSum := 0
	for _, p := range players {
		ageSum += p.Age
		known[p.ID] = struct{}{}
	}
	m.AverageAge = float64(ageSum) / float64(len(players))

	for _, s := range shortlist {
		if _, ok := known[s.PlayerID]; ok {
			m.ShortlistedResolved++
		}
	}

	reported := make(map[string]struct{})
	for _, r := range reports {
		if _, ok := known[r.PlayerID]; ok {
			reported[r.PlayerID] = struct{}{}
		}
	}
	m.ReportedPlayers = len(reported)

	return m
}

// KPIs returns the standard KPI cards for m in display order.
func KPIs(m model.SummaryMetrics) []model.KPICard {
	return []model.KPICard{
		cards.FormatKPICard(TitlePlayers, m.TotalPlayers),
		cards.FormatKPICard(TitleReports, m.TotalReports),
		cards.FormatKPICard(TitleShortlisted, m.TotalShortlisted),
		cards.FormatKPICard(TitleAverageAge, m.AverageAge),
	}
}

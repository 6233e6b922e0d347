// Package testutil provides generated scouting data for tests.
package testutil

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/okian/scoutboard/internal/domain/model"
)

var positions = []string{"POR", "DEF", "LAT", "MC", "MCO", "EXT", "DEL"}

// RecordGenerator produces deterministic record sequences for a seed.
type RecordGenerator struct {
	faker *gofakeit.Faker
}

// NewRecordGenerator creates a generator seeded with seed.
func NewRecordGenerator(seed uint64) *RecordGenerator {
	return &RecordGenerator{faker: gofakeit.New(seed)}
}

// Players returns n valid players with sequential ids "1".."n".
// Roughly half have no photo URL.
func (g *RecordGenerator) Players(n int) []model.PlayerRecord {
	out := make([]model.PlayerRecord, n)
	for i := range out {
		p := model.PlayerRecord{
			ID:          strconv.Itoa(i + 1),
			Name:        g.faker.Name(),
			Age:         g.faker.Number(15, 38),
			Position:    g.faker.RandomString(positions),
			Club:        g.faker.Company(),
			Nationality: g.faker.CountryAbr(),
		}
		if g.faker.Bool() {
			p.PhotoURL = g.faker.URL()
		}
		out[i] = p
	}
	return out
}

// Reports returns n reports referencing random players. When dangling is
// true some reports point at ids that are not in players.
func (g *RecordGenerator) Reports(n int, players []model.PlayerRecord, dangling bool) []model.ReportRecord {
	out := make([]model.ReportRecord, n)
	for i := range out {
		out[i] = model.ReportRecord{
			ID:       g.faker.UUID(),
			PlayerID: g.playerID(players, dangling),
			Author:   g.faker.Name(),
			Rating:   g.faker.Float64Range(1, 10),
		}
	}
	return out
}

// Shortlist returns up to n unique entries drawn from players.
func (g *RecordGenerator) Shortlist(n int, players []model.PlayerRecord) []model.ShortlistEntry {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	g.faker.ShuffleAnySlice(ids)
	if n > len(ids) {
		n = len(ids)
	}
	out := make([]model.ShortlistEntry, n)
	for i := range out {
		out[i] = model.ShortlistEntry{PlayerID: ids[i]}
	}
	return out
}

// Shuffle permutes players in place.
func (g *RecordGenerator) Shuffle(players []model.PlayerRecord) {
	g.faker.ShuffleAnySlice(players)
}

func (g *RecordGenerator) playerID(players []model.PlayerRecord, dangling bool) string {
	if len(players) == 0 || (dangling && g.faker.Bool()) {
		return "missing-" + g.faker.Numerify("####")
	}
	return players[g.faker.Number(0, len(players)-1)].ID
}

package source

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/okian/scoutboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodePlayers(t *testing.T) {
	Convey("Given a players table with aliased headers", t, func() {
		table := Table{
			Header: []string{"Jugador ID", "Nombre", "Edad", "Posición", "Equipo", "Nacionalidad", "Foto"},
			Rows: [][]string{
				{"1", "Juan Pérez", "19", "DEL", "Central", "ARG", ""},
				{"2", "Luis Gómez", "22.0", "", "", "URU", "https://img/2.png"},
				{"3", "Sin Edad", "", "MC"},
				{"4", "Texto", "diecinueve", "MC"},
			},
		}

		players, err := DecodePlayers(table)

		Convey("Then rows should decode in order", func() {
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 4)
			So(players[0], ShouldResemble, model.PlayerRecord{
				ID: "1", Name: "Juan Pérez", Age: 19, Position: "DEL", Club: "Central", Nationality: "ARG",
			})
			So(players[1].Age, ShouldEqual, 22)
			So(players[1].PhotoURL, ShouldEqual, "https://img/2.png")
		})

		Convey("And missing or non-numeric ages should decode as negative", func() {
			So(players[2].Age, ShouldEqual, -1)
			So(players[3].Age, ShouldEqual, -1)
			So(players[2].Club, ShouldEqual, "")
		})
	})

	Convey("Given a players table without an id column", t, func() {
		_, err := DecodePlayers(Table{Header: []string{"name", "age"}, Rows: [][]string{{"x", "1"}}})

		Convey("Then it should report the missing column", func() {
			So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
		})
	})

	Convey("Given an empty table", t, func() {
		players, err := DecodePlayers(Table{})

		Convey("Then there should be no players and no error", func() {
			So(err, ShouldBeNil)
			So(players, ShouldBeEmpty)
		})
	})
}

func TestDecodeReports(t *testing.T) {
	Convey("Given a reports table", t, func() {
		table := Table{
			Header: []string{"report_id", "playerId", "Scout", "Fecha", "Nota", "Notas"},
			Rows: [][]string{
				{"r1", "1", "Marta", "2024-03-02", "7,5", "buen primer toque"},
				{"", "99", "Pablo", "", "x", ""},
			},
		}

		reports, err := DecodeReports(table)

		Convey("Then opaque fields should be kept", func() {
			So(err, ShouldBeNil)
			So(reports[0], ShouldResemble, model.ReportRecord{
				ID: "r1", PlayerID: "1", Author: "Marta", Date: "2024-03-02", Rating: 7.5, Notes: "buen primer toque",
			})
		})

		Convey("And a blank report id should be generated", func() {
			_, err := uuid.Parse(reports[1].ID)
			So(err, ShouldBeNil)
			So(reports[1].PlayerID, ShouldEqual, "99")
			So(reports[1].Rating, ShouldEqual, 0)
		})
	})

	Convey("Given a reports table without its own id column", t, func() {
		table, err := NewCSVParser().Parse([]byte("player_id,notes\n7,good\n"))
		So(err, ShouldBeNil)
		reports, err := DecodeReports(table)

		Convey("Then it should load with generated report ids", func() {
			So(err, ShouldBeNil)
			So(len(reports), ShouldEqual, 1)
			So(reports[0].PlayerID, ShouldEqual, "7")
			_, err := uuid.Parse(reports[0].ID)
			So(err, ShouldBeNil)
		})
	})

	Convey("Given a reports table without a player reference column", t, func() {
		_, err := DecodeReports(Table{Header: []string{"id", "notes"}})

		Convey("Then it should report the missing column", func() {
			So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
		})
	})
}

func TestDecodeShortlist(t *testing.T) {
	Convey("Given a shortlist table", t, func() {
		Convey("When every player id is unique", func() {
			entries, err := DecodeShortlist(Table{Header: []string{"player_id"}, Rows: [][]string{{"1"}, {""}, {"3"}}})

			Convey("Then blank rows should be skipped", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldResemble, []model.ShortlistEntry{{PlayerID: "1"}, {PlayerID: "3"}})
			})
		})

		Convey("When a player id repeats", func() {
			_, err := DecodeShortlist(Table{Header: []string{"id"}, Rows: [][]string{{"1"}, {"2"}, {"1"}}})

			Convey("Then it should reject the table", func() {
				So(errors.Is(err, ErrDuplicateShortlist), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, `"1" at rows 0 and 2`)
			})
		})

		Convey("When the table has its own row id before player_id", func() {
			table, err := NewCSVParser().Parse([]byte("id,player_id\ns1,7\ns2,9\n"))
			So(err, ShouldBeNil)
			entries, err := DecodeShortlist(table)

			Convey("Then player_id should be the reference", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldResemble, []model.ShortlistEntry{{PlayerID: "7"}, {PlayerID: "9"}})
			})
		})

		Convey("When a JSON shortlist carries row ids", func() {
			table, err := NewJSONParser().Parse([]byte(`[{"id":"s1","player_id":"7"},{"id":"s2","player_id":"7"}]`))
			So(err, ShouldBeNil)
			_, err = DecodeShortlist(table)

			Convey("Then duplicates should be detected on player_id", func() {
				So(errors.Is(err, ErrDuplicateShortlist), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, `"7" at rows 0 and 1`)
			})
		})

		Convey("When the table only has a bare id column", func() {
			entries, err := DecodeShortlist(Table{Header: []string{"ID"}, Rows: [][]string{{"4"}}})

			Convey("Then id should name the player", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldResemble, []model.ShortlistEntry{{PlayerID: "4"}})
			})
		})

		Convey("When no player column exists", func() {
			_, err := DecodeShortlist(Table{Header: []string{"notes"}, Rows: [][]string{{"x"}}})

			Convey("Then it should report the missing column", func() {
				So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
			})
		})
	})
}

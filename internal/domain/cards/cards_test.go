package cards_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/scoutboard/internal/domain/cards"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatKPICard(t *testing.T) {
	Convey("Given KPI values of different kinds", t, func() {
		cases := []struct {
			value any
			want  string
		}{
			{value: 0, want: "0"},
			{value: 42, want: "42"},
			{value: int64(-7), want: "-7"},
			{value: uint32(12), want: "12"},
			{value: 3.0, want: "3"},
			{value: 21.26, want: "21.3"},
			{value: float32(19.5), want: "19.5"},
			{value: 19.96, want: "20"},
			{value: 19.04, want: "19"},
			{value: math.Copysign(0, -1), want: "0"},
			{value: -0.04, want: "0"},
			{value: -2.5, want: "-2.5"},
			{value: 1e21, want: "1000000000000000000000"},
			{value: "n/a", want: "n/a"},
			{value: 90 * time.Second, want: "1m30s"},
			{value: nil, want: ""},
			{value: true, want: "true"},
		}

		Convey("Then each should render to its display string", func() {
			for _, c := range cases {
				So(cards.FormatKPICard("Players", c.value).Value, ShouldEqual, c.want)
			}
		})

		Convey("And the title should pass through, even when empty", func() {
			So(cards.FormatKPICard("Reports", 1).Title, ShouldEqual, "Reports")
			So(cards.FormatKPICard("", 1), ShouldResemble, model.KPICard{Title: "", Value: "1"})
		})
	})
}

func TestFormatPlayerCard(t *testing.T) {
	Convey("Given the Juan Pérez record", t, func() {
		p := model.PlayerRecord{ID: "1", Name: "Juan Pérez", Age: 19, Position: "DEL", Club: "Central", Nationality: "ARG", PhotoURL: ""}

		Convey("When formatting the player card", func() {
			card, err := cards.FormatPlayerCard(p)

			Convey("Then it should mirror the record with a placeholder photo", func() {
				So(err, ShouldBeNil)
				So(card, ShouldResemble, model.PlayerCard{
					ID:          "1",
					Name:        "Juan Pérez",
					Age:         19,
					Position:    "DEL",
					Club:        "Central",
					Nationality: "ARG",
					PhotoURL:    cards.PlaceholderPhotoURL,
				})
			})

			Convey("And formatting again should yield the same descriptor", func() {
				again, err := cards.FormatPlayerCard(p)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, card)
			})
		})
	})

	Convey("Given a record with absent optional fields", t, func() {
		p := model.PlayerRecord{ID: "2", Name: "Sin Datos", Age: 17, Position: " ", PhotoURL: "  "}
		card, err := cards.FormatPlayerCard(p)

		Convey("Then each absent field should resolve to its default", func() {
			So(err, ShouldBeNil)
			So(card.Position, ShouldEqual, cards.UnknownValue)
			So(card.Club, ShouldEqual, cards.UnknownValue)
			So(card.Nationality, ShouldEqual, cards.UnknownValue)
			So(card.PhotoURL, ShouldEqual, cards.PlaceholderPhotoURL)
		})
	})

	Convey("Given a record with a photo URL", t, func() {
		p := model.PlayerRecord{ID: "3", Age: 22, PhotoURL: "https://img.example/3.png"}
		card, err := cards.FormatPlayerCard(p)

		Convey("Then the URL should be kept", func() {
			So(err, ShouldBeNil)
			So(card.PhotoURL, ShouldEqual, "https://img.example/3.png")
		})
	})

	Convey("Given a record with a negative age", t, func() {
		p := model.PlayerRecord{ID: "4", Name: "Neg", Age: -1}
		_, err := cards.FormatPlayerCard(p)

		Convey("Then it should return an InvalidRecordError", func() {
			var ire *model.InvalidRecordError
			So(errors.As(err, &ire), ShouldBeTrue)
			So(ire.Field, ShouldEqual, "age")
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})
	})

	Convey("Given a record without an id", t, func() {
		_, err := cards.FormatPlayerCard(model.PlayerRecord{Name: "Anon", Age: 20})

		Convey("Then it should return an InvalidRecordError", func() {
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})
	})
}

func TestFormatPlayerCards(t *testing.T) {
	Convey("Given generated players", t, func() {
		players := testutil.NewRecordGenerator(7).Players(30)

		Convey("When formatting them as a batch", func() {
			got, errs := cards.FormatPlayerCards(players)

			Convey("Then the output should keep input order", func() {
				So(errs, ShouldBeEmpty)
				want := make([]model.PlayerCard, len(players))
				for i, p := range players {
					c, err := cards.FormatPlayerCard(p)
					So(err, ShouldBeNil)
					want[i] = c
				}
				So(cmp.Diff(want, got), ShouldBeEmpty)
			})

			Convey("And no photo URL should be empty", func() {
				for _, c := range got {
					So(c.PhotoURL, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When some rows are invalid", func() {
			players[3].Age = -2
			players[10].ID = ""
			got, errs := cards.FormatPlayerCards(players)

			Convey("Then the invalid rows should be skipped and reported by index", func() {
				So(len(got), ShouldEqual, len(players)-2)
				So(len(errs), ShouldEqual, 2)
				var first, second *model.InvalidRecordError
				So(errors.As(errs[0], &first), ShouldBeTrue)
				So(errors.As(errs[1], &second), ShouldBeTrue)
				So(first.Index, ShouldEqual, 3)
				So(second.Index, ShouldEqual, 10)
			})

			Convey("And the remaining cards should stay in order", func() {
				ids := make([]string, 0, len(got))
				for _, c := range got {
					ids = append(ids, c.ID)
				}
				var want []string
				for i, p := range players {
					if i == 3 || i == 10 {
						continue
					}
					want = append(want, p.ID)
				}
				So(cmp.Diff(want, ids), ShouldBeEmpty)
			})
		})
	})

	Convey("Given no players", t, func() {
		got, errs := cards.FormatPlayerCards(nil)

		Convey("Then the result should be empty", func() {
			So(got, ShouldBeEmpty)
			So(errs, ShouldBeEmpty)
		})
	})
}

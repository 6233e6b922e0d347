package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/scoutboard/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckStyle(t *testing.T) {
	Convey("Given style names", t, func() {
		for _, style := range append(render.Styles(), "", " Markdown ") {
			So(checkStyle(style), ShouldBeNil)
		}
		So(errors.Is(checkStyle("fancy"), render.ErrUnknownStyle), ShouldBeTrue)
	})
}

func TestRun(t *testing.T) {
	Convey("Given tables on disk", t, func() {
		dir := t.TempDir()
		players := filepath.Join(dir, "players.csv")
		So(os.WriteFile(players, []byte("id,name,age\n1,Juan Pérez,19\n"), 0o600), ShouldBeNil)

		Convey("When running with a known style", func() {
			err := run(players, "", "", render.StyleCSV, 0, time.Second, false)

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When running with an unknown style", func() {
			err := run(players, "", "", "fancy", 0, time.Second, false)

			Convey("Then it should report the style", func() {
				So(errors.Is(err, render.ErrUnknownStyle), ShouldBeTrue)
			})
		})

		Convey("When the style is unknown and a table is missing", func() {
			err := run(filepath.Join(dir, "nope.csv"), "", "", "fancy", 0, time.Second, false)

			Convey("Then the style should be rejected before loading", func() {
				So(errors.Is(err, render.ErrUnknownStyle), ShouldBeTrue)
			})
		})

		Convey("When a table is missing", func() {
			err := run(filepath.Join(dir, "nope.csv"), "", "", render.StyleLight, 0, time.Second, false)

			Convey("Then the load error should surface", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

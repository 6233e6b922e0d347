package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/okian/scoutboard/internal/adapters/source"
	app "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/render"
	"github.com/okian/scoutboard/pkg/logger"
)

const defaultTimeout = 30 * time.Second

func main() {
	var (
		players   = flag.String("players", "data/players.csv", "Players table (.csv, .xlsx, .json, .yaml)")
		reports   = flag.String("reports", "data/reports.csv", "Reports table")
		shortlist = flag.String("shortlist", "data/shortlist.csv", "Shortlist table")
		style     = flag.String("style", render.StyleLight, "Table style: "+strings.Join(render.Styles(), ", "))
		limit     = flag.Int("limit", 0, "Maximum player cards to print (0 for all)")
		timeout   = flag.Duration("timeout", defaultTimeout, "Load timeout")
		verbose   = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if err := run(*players, *reports, *shortlist, *style, *limit, *timeout, *verbose); err != nil {
		os.Stderr.WriteString("render failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(players, reports, shortlist, style string, limit int, timeout time.Duration, verbose bool) error {
	if err := checkStyle(style); err != nil {
		return err
	}
	if err := logger.Init(); err != nil {
		return err
	}
	// Tables go to stdout; logs stay out of the way.
	logger.SetOutput(os.Stderr)
	if !verbose {
		_ = logger.SetLevelString("warn")
	} else {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc := app.New(
		app.WithLogger(logger.Named("render")),
		app.WithPaths(source.Paths{Players: players, Reports: reports, Shortlist: shortlist}),
		app.WithMaxCards(limit),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	return render.Tables(os.Stdout, svc.Dashboard(ctx), style)
}

// checkStyle rejects an unknown style before any table is read.
func checkStyle(style string) error {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" || slices.Contains(render.Styles(), style) {
		return nil
	}
	return fmt.Errorf("%w: %q (want one of %s)", render.ErrUnknownStyle, style, strings.Join(render.Styles(), ", "))
}

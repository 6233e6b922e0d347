package source

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Paths names the three table files. An empty path loads an empty table.
type Paths struct {
	Players   string
	Reports   string
	Shortlist string
}

// Loader reads and decodes a Dataset from files.
type Loader struct {
	factory ParserFactory
	read    func(name string) ([]byte, error)
}

// LoaderOption applies a configuration option to the Loader.
type LoaderOption func(*Loader)

// WithParserFactory replaces the extension-based parser factory.
func WithParserFactory(f ParserFactory) LoaderOption {
	return func(l *Loader) {
		if f != nil {
			l.factory = f
		}
	}
}

// WithReadFile replaces os.ReadFile, mainly for tests.
func WithReadFile(read func(name string) ([]byte, error)) LoaderOption {
	return func(l *Loader) {
		if read != nil {
			l.read = read
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{factory: NewFactory(), read: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the players, reports and shortlist tables in that order.
func (l *Loader) Load(ctx context.Context, paths Paths) (model.Dataset, error) {
	var ds model.Dataset

	t, err := l.table(ctx, paths.Players)
	if err != nil {
		return ds, fmt.Errorf("players: %w", err)
	}
	if ds.Players, err = DecodePlayers(t); err != nil {
		return ds, fmt.Errorf("players: %w", err)
	}

	if t, err = l.table(ctx, paths.Reports); err != nil {
		return ds, fmt.Errorf("reports: %w", err)
	}
	if ds.Reports, err = DecodeReports(t); err != nil {
		return ds, fmt.Errorf("reports: %w", err)
	}

	if t, err = l.table(ctx, paths.Shortlist); err != nil {
		return ds, fmt.Errorf("shortlist: %w", err)
	}
	if ds.Shortlist, err = DecodeShortlist(t); err != nil {
		return ds, fmt.Errorf("shortlist: %w", err)
	}
	return ds, nil
}

func (l *Loader) table(ctx context.Context, path string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	if path == "" {
		return Table{}, nil
	}
	parser, err := l.factory.GetParser(path)
	if err != nil {
		return Table{}, err
	}
	data, err := l.read(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return parser.Parse(data)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/flowsheet"
	"github.com/fwojciec/flowsheet/fs"
	"github.com/fwojciec/flowsheet/generate"
	"github.com/fwojciec/flowsheet/htmltomarkdown"
	flowhttp "github.com/fwojciec/flowsheet/http"
	"github.com/fwojciec/flowsheet/safehtml"
	flowslog "github.com/fwojciec/flowsheet/slog"
	"github.com/fwojciec/flowsheet/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", errorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher for end-to-end testing.
	Fetcher flowsheet.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("flowsheet"),
		kong.Description("Generate Flow type cheat-sheet pages from the Flow library definitions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	catalog, err := yaml.Load(cli.Config)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = flowhttp.NewFetcher(
			flowhttp.WithTimeout(cli.Timeout),
			flowhttp.WithUserAgent(cli.UserAgent),
		)
	}
	fetcher = flowslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	store := fs.NewFileStoreForDir(cli.Out)

	g := &generate.Generator{
		Fetcher:  fetcher,
		Renderer: safehtml.NewPageRenderer(),
		Store:    flowslog.NewLoggingPageStore(store, logger),
		Logger:   logger,
	}
	if cli.Markdown {
		g.Markdown = htmltomarkdown.NewConverter()
	}

	result, err := g.Run(ctx, catalog)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d files to %s\n", len(result.Files), store.Dir())
	return nil
}

// errorMessage returns the text printed for a failed run. Application
// errors carry a user-facing message; anything else is shown verbatim.
func errorMessage(err error) string {
	if flowsheet.ErrorCode(err) == flowsheet.EINTERNAL {
		return err.Error()
	}
	return flowsheet.ErrorMessage(err)
}

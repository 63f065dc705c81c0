package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rtfm"
	"github.com/fwojciec/rtfm/goquery"
	rtfmhttp "github.com/fwojciec/rtfm/http"
	rtfmslog "github.com/fwojciec/rtfm/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services may be pre-populated for end-to-end testing; Run wires
	// HTTP-backed defaults for any left nil.
	Scraper     rtfm.Scraper
	Inventories rtfm.InventoryService
	Pages       rtfm.PageFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rtfm"),
		kong.Description("Look up Sphinx documentation from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rtfm --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire HTTP-backed services for anything not injected by tests.
	if m.Scraper == nil {
		m.Scraper = goquery.NewScraper()
	}
	if m.Inventories == nil {
		m.Inventories = rtfmhttp.NewInventoryService(rtfmhttp.WithInventoryTimeout(cli.Timeout))
	}
	if m.Pages == nil {
		fetcher, err := rtfmhttp.NewFetcher(rtfmhttp.WithTimeout(cli.Timeout))
		if err != nil {
			return fmt.Errorf("failed to create page fetcher: %w", err)
		}
		defer fetcher.Close()
		m.Pages = fetcher
	}

	deps.Scraper = m.Scraper
	deps.Inventories = m.Inventories
	deps.Pages = m.Pages

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Scraper = rtfmslog.NewLoggingScraper(deps.Scraper, logger)
		deps.Inventories = rtfmslog.NewLoggingInventoryService(deps.Inventories, logger)
	}

	return kongCtx.Run(deps)
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/rtfm"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Scraper     rtfm.Scraper
	Inventories rtfm.InventoryService
	Pages       rtfm.PageFetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log service activity to stderr"`
	Timeout time.Duration `default:"10s" help:"HTTP request timeout"`

	Sources SourcesCmd `cmd:"" help:"List known documentation sources"`
	Search  SearchCmd  `cmd:"" help:"Search a source's symbol inventory"`
	Doc     DocCmd     `cmd:"" help:"Show documentation for a symbol"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source string `arg:"" help:"Documentation source key or alias"`
	Query  string `arg:"" help:"Symbol name to search for"`
	Limit  int    `default:"25" help:"Maximum number of results"`
}

// DocCmd is the "doc" subcommand.
type DocCmd struct {
	Source string `arg:"" help:"Documentation source key or alias"`
	Name   string `arg:"" help:"Symbol name to look up"`
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/linkx"
	"github.com/fwojciec/linkx/view"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Extractor   linkx.Extractor
	View        *view.View
	Extractions linkx.ExtractionService
	Prompter    linkx.Prompter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL    string `name:"api-url" env:"LINKX_API_URL" default:"${api_url}" help:"Extraction service base URL"`
	DB        string `name:"db" env:"LINKX_DB" default:"${db}" help:"History database path"`
	NoHistory bool   `name:"no-history" help:"Do not record extractions"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`

	Extract     ExtractCmd     `cmd:"" help:"Extract links from one or more page URLs"`
	Serve       ServeCmd       `cmd:"" help:"Serve the link extractor web page"`
	Interactive InteractiveCmd `cmd:"" help:"Extract links interactively in the terminal"`
	History     HistoryCmd     `cmd:"" help:"List, show or delete recorded extractions"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URL(s) to extract links from"`
	Copy        bool     `help:"Copy all links to the clipboard"`
	Visit       int      `placeholder:"N" help:"Open the Nth link (1-based) in the browser"`
	Concurrency int      `short:"c" default:"${concurrency}" help:"Concurrent extractions when several URLs are given"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per site when several URLs are given"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"${addr}" help:"Listen address"`
}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct{}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"withargs" help:"List recorded extractions"`
	Show   HistoryShowCmd   `cmd:"" help:"Print the links of a recorded extraction"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a recorded extraction"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Limit int    `short:"n" default:"20" help:"Maximum number of records"`
	URL   string `name:"url" help:"Only show extractions of this page URL"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

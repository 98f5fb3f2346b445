package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkx"
	"github.com/fwojciec/linkx/browser"
	"github.com/fwojciec/linkx/clipboard"
	"github.com/fwojciec/linkx/history"
	lxhttp "github.com/fwojciec/linkx/http"
	lxslog "github.com/fwojciec/linkx/slog"
	"github.com/fwojciec/linkx/sqlite"
	"github.com/fwojciec/linkx/survey"
	"github.com/fwojciec/linkx/view"
)

// userAgent is sent with every extraction request.
const userAgent = "linkx/1.0 (+https://github.com/fwojciec/linkx)"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database used for extraction history.
	DB *sqlite.DB

	// Host integrations. Nil values are replaced with the real
	// implementations; tests set them to mocks.
	Clipboard linkx.Clipboard
	Browser   linkx.Browser
	Prompter  linkx.Prompter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkx"),
		kong.Description("Extract links from a page through the link extraction service."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		cfg.Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkx --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	var extractor linkx.Extractor = lxslog.NewLoggingExtractor(
		lxhttp.NewClient(cli.APIURL, lxhttp.WithUserAgent(userAgent)),
		logger,
	)

	// History is opened for the history command itself and whenever
	// recording is enabled.
	if cmd == "history" || !cli.NoHistory {
		if err := m.openDB(cli.DB); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LINKX_DB or pass --no-history\n")
			return err
		}
		defer m.Close()

		deps.Extractions = sqlite.NewExtractionService(m.DB)
		if !cli.NoHistory {
			extractor = history.NewRecorder(extractor, deps.Extractions, logger)
		}
	}
	deps.Extractor = extractor

	clip := m.Clipboard
	if clip == nil {
		clip = clipboard.NewClipboard()
	}
	br := m.Browser
	if br == nil {
		br = browser.NewBrowser()
	}
	deps.View = view.New(extractor, lxslog.NewLoggingClipboard(clip, logger), br)

	if cmd == "interactive" {
		deps.Prompter = m.Prompter
		if deps.Prompter == nil {
			deps.Prompter = survey.NewPrompter()
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

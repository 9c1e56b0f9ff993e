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

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/scraper"
	"github.com/fwojciec/scraper/config"
	"github.com/fwojciec/scraper/crawl"
	"github.com/fwojciec/scraper/fs"
	"github.com/fwojciec/scraper/goquery"
	scraperhttp "github.com/fwojciec/scraper/http"
	scraperslog "github.com/fwojciec/scraper/slog"
	"github.com/fwojciec/scraper/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path used when --config is not given. Set before calling Run().
	ConfigPath string

	// SQLite database backing the crawl history, opened only when configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: config.DefaultPath(),
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scraper"),
		kong.Description("Scrape jokes, article metadata and article bodies"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scraper --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = m.ConfigPath
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s or pass --config to use a different file\n", config.EnvPath)
		return err
	}
	deps.Config = cfg

	logger := newLogger(stderr, cli.Verbose, cli.Debug)
	deps.Logger = logger

	fetcher := scraperslog.NewLoggingFetcher(
		scraperhttp.NewFetcher(
			scraperhttp.WithTimeout(cfg.Timeout),
			scraperhttp.WithHeaders(cfg.Headers()),
		),
		logger,
	)
	defer fetcher.Close()

	deps.Fetcher = fetcher
	deps.Jokes = scraperhttp.NewJokeService(cfg.JokeURL, cfg.Timeout)
	deps.Summarizer = goquery.NewSummarizer()
	deps.Store = scraperslog.NewLoggingArticleStore(fs.NewArticleStore(), logger)

	historyPath := cli.HistoryDB
	if historyPath == "" {
		historyPath = cfg.HistoryDB
	}
	command := strings.Fields(kongCtx.Command())[0]
	if command == "history" && historyPath == "" {
		fmt.Fprintln(stderr, "Hint: Set history_db in the config file or pass --history-db")
		return scraper.Errorf(scraper.EINVALID, "no crawl history database configured")
	}
	if historyPath != "" && (command == "crawl" || command == "history") {
		if historyPath != ":memory:" {
			_ = os.MkdirAll(filepath.Dir(historyPath), 0755)
		}
		m.DB = sqlite.NewDB(historyPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open history database at %q: %w", historyPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB)
	}

	if command == "crawl" {
		deps.Crawler = &crawl.Crawler{
			Fetcher:    fetcher,
			Listings:   scraperslog.NewLoggingListingParser(goquery.NewListingParser(cfg.BaseURL), logger),
			Extractor:  goquery.NewArticleExtractor(),
			Store:      deps.Store,
			History:    deps.History,
			ListingURL: cfg.ListingPageURL,
			OutputDir:  cfg.OutputDir,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler.
// Only warnings and errors are shown unless verbose or debug is set.
func newLogger(w io.Writer, verbose, debug bool) *slog.Logger {
	level := charmlog.WarnLevel
	switch {
	case debug:
		level = charmlog.DebugLevel
	case verbose:
		level = charmlog.InfoLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: debug,
	})
	return slog.New(handler)
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/scraper"
	"github.com/fwojciec/scraper/config"
	"github.com/fwojciec/scraper/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
	Logger *slog.Logger

	Fetcher    scraper.Fetcher
	Crawler    *crawl.Crawler
	Jokes      scraper.JokeService
	Summarizer scraper.Summarizer
	Store      scraper.ArticleStore
	History    scraper.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `help:"Path to config file (default: $SCRAPER_CONFIG or ~/.scraper/config.yaml)"`
	HistoryDB string `name:"history-db" help:"Record saved articles in this SQLite database"`
	Verbose   bool   `short:"v" help:"Log fetches and saves"`
	Debug     bool   `help:"Log parser details"`

	Joke     JokeCmd     `cmd:"" help:"Print a joke from the joke API"`
	Describe DescribeCmd `cmd:"" help:"Print the title and description of an article page"`
	Source   SourceCmd   `cmd:"" help:"Save the HTML of a page to a file"`
	Crawl    CrawlCmd    `cmd:"" help:"Save articles of one category from the listing pages"`
	History  HistoryCmd  `cmd:"" help:"List articles recorded in the crawl history"`
}

// JokeCmd is the "joke" subcommand.
type JokeCmd struct {
	ID string `help:"Joke ID to look up; skips the prompt"`
}

// DescribeCmd is the "describe" subcommand.
type DescribeCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// SourceCmd is the "source" subcommand.
type SourceCmd struct {
	URL string `arg:"" help:"Page URL"`
	Out string `short:"o" default:"source.html" help:"Output file"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Pages     int    `short:"n" help:"Number of listing pages to crawl; prompted when omitted"`
	Category  string `short:"c" help:"Article type to save; prompted when omitted"`
	Out       string `short:"o" help:"Parent directory for Page_<n> folders (default: output_dir from config)"`
	List      bool   `short:"l" help:"Print the saved filenames when done"`
	KeepGoing bool   `short:"k" help:"Skip articles that fail to download instead of stopping"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Category string `short:"c" help:"Only show articles of this type"`
	Limit    int    `short:"l" default:"20" help:"Maximum number of records"`
}

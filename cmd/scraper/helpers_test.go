package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	main "github.com/fwojciec/scraper/cmd/scraper"
	"github.com/fwojciec/scraper/config"
)

// newDeps returns Dependencies reading input from stdin and capturing output.
func newDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Config: config.Default(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, stdout, stderr
}

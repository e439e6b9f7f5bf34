package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/castmatch"
	casthttp "github.com/fwojciec/castmatch/http"
	"github.com/fwojciec/castmatch/resolve"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Resolver   *resolve.Resolver
	Pages      *casthttp.PageService
	NewBrowser func() (castmatch.Fetcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool       `short:"v" help:"Enable debug logging"`
	Match   MatchCmd   `cmd:"" help:"Match a web page to an Overcast episode"`
	Context ContextCmd `cmd:"" help:"Print the page context extracted from a web page"`
}

// MatchCmd is the "match" subcommand.
type MatchCmd struct {
	URL     string `arg:"" help:"Page URL to match"`
	Title   string `short:"t" help:"Override the target episode title"`
	HTML    string `type:"existingfile" help:"Read page markup from a file instead of fetching"`
	Browser bool   `short:"b" help:"Render the page in a headless browser before extraction"`
	ItemID  bool   `help:"Also fetch the episode page and print its item ID"`
	JSON    bool   `help:"Print the result as JSON"`
}

// ContextCmd is the "context" subcommand.
type ContextCmd struct {
	URL     string `arg:"" help:"Page URL to extract"`
	HTML    string `type:"existingfile" help:"Read page markup from a file instead of fetching"`
	Browser bool   `short:"b" help:"Render the page in a headless browser before extraction"`
}

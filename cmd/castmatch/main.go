package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/castmatch"
	"github.com/fwojciec/castmatch/gemini"
	"github.com/fwojciec/castmatch/gofeed"
	castgoquery "github.com/fwojciec/castmatch/goquery"
	casthttp "github.com/fwojciec/castmatch/http"
	"github.com/fwojciec/castmatch/resolve"
	"github.com/fwojciec/castmatch/rod"
	castslog "github.com/fwojciec/castmatch/slog"
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
	// Resolver is exposed for end-to-end testing.
	Resolver *resolve.Resolver
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
		kong.Name("castmatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'castmatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logging goes to stderr so stdout stays pipeable.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	pages := casthttp.NewPageService()
	deps.Pages = pages

	resolver := &resolve.Resolver{
		Search:   castslog.NewSearchProvider(casthttp.NewSearchService(), deps.Logger),
		Pages:    castslog.NewPageFetcher(pages, deps.Logger),
		Episodes: castgoquery.NewEpisodeParser(),
		Feeds:    gofeed.NewProber(),
	}

	// The LLM hint is optional: without a key, resolution runs on
	// heuristics alone.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		resolver.Hints = castslog.NewHintService(gemini.NewHintService(client), deps.Logger)
	}

	m.Resolver = resolver
	deps.Resolver = resolver
	deps.NewBrowser = func() (castmatch.Fetcher, error) { return rod.NewFetcher() }

	return kongCtx.Run(deps)
}

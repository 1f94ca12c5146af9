package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/webdocx/webdocx/crawl"
	"github.com/webdocx/webdocx/duckduckgo"
	"github.com/webdocx/webdocx/goquery"
	"github.com/webdocx/webdocx/htmltomarkdown"
	webhttp "github.com/webdocx/webdocx/http"
	"github.com/webdocx/webdocx/monitor"
	"github.com/webdocx/webdocx/readability"
	"github.com/webdocx/webdocx/research"
	"github.com/webdocx/webdocx/rod"
	"github.com/webdocx/webdocx/scrape"
	webslog "github.com/webdocx/webdocx/slog"
	"github.com/webdocx/webdocx/sqlite"
	"github.com/webdocx/webdocx/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the watch command's digest store.
	// Set before calling Run().
	DBPath string

	// SQLite database, opened lazily for the watch command.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{DBPath: defaultDBPath()}
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webdocx"),
		kong.Description("Fetch web content as markdown for LLM consumption"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webdocx --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// One HTTP client shared by the fetcher, sitemap discovery and
	// search provider.
	client := &http.Client{Timeout: cli.Timeout}

	fetcher := webhttp.NewFetcher(webhttp.WithClient(client))
	converter := htmltomarkdown.NewConverter()

	var strategies []scrape.Strategy
	if cli.Render {
		renderer, err := rod.NewRenderer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return err
		}
		defer renderer.Close()
		strategies = append(strategies, &scrape.RenderStrategy{
			Renderer:  webslog.NewLoggingRenderer(renderer, logger),
			Converter: converter,
		})
	}
	strategies = append(strategies,
		&scrape.StaticStrategy{
			Fetcher:   webslog.NewLoggingFetcher(fetcher, logger),
			Extractor: trafilatura.NewExtractor(),
			Converter: converter,
		},
		&scrape.StaticStrategy{
			Fetcher:   webslog.NewLoggingFetcher(fetcher, logger),
			Extractor: readability.NewExtractor(),
			Converter: converter,
		},
	)

	deps.Pipeline = &scrape.Pipeline{
		Strategies: strategies,
		Logger:     logger,
	}
	deps.Links = goquery.NewExtractor()
	deps.Sitemap = webhttp.NewSitemap(client)
	deps.Search = webslog.NewLoggingSearch(duckduckgo.NewSearch(client), logger)
	deps.Limiter = crawl.NewDomainLimiter(cli.RateLimit, 1)

	deps.Research = &research.Service{
		Search:   deps.Search,
		Fetcher:  deps.Pipeline,
		Links:    deps.Links,
		Outliner: goquery.NewOutliner(),
		Logger:   logger,
	}
	deps.Detector = &monitor.Detector{Fetcher: deps.Pipeline}

	// Only the watch command persists anything.
	if kongCtx.Command() == "watch <url>" {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WEBDOCX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		deps.Digests = sqlite.NewDigestStore(m.DB)
	}

	return kongCtx.Run(deps)
}

// defaultDBPath returns the digest database location, honoring the
// WEBDOCX_DB environment variable.
func defaultDBPath() string {
	if path := os.Getenv("WEBDOCX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webdocx.db"
	}
	return filepath.Join(home, ".webdocx", "webdocx.db")
}

// Command regcheck reviews corporate documents for ADGM compliance:
// it classifies the document, locates the official checklist, reports
// missing items and regulatory red flags, and writes an annotated copy.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/checklist"
	"github.com/tkarwowski/regcheck/classify"
	"github.com/tkarwowski/regcheck/compare"
	"github.com/tkarwowski/regcheck/crawl"
	"github.com/tkarwowski/regcheck/difflib"
	"github.com/tkarwowski/regcheck/docx"
	"github.com/tkarwowski/regcheck/fs"
	"github.com/tkarwowski/regcheck/gemini"
	"github.com/tkarwowski/regcheck/goquery"
	"github.com/tkarwowski/regcheck/htmltomarkdown"
	regchttp "github.com/tkarwowski/regcheck/http"
	"github.com/tkarwowski/regcheck/ingest"
	"github.com/tkarwowski/regcheck/pdf"
	"github.com/tkarwowski/regcheck/redflag"
	"github.com/tkarwowski/regcheck/review"
	"github.com/tkarwowski/regcheck/rod"
	regcslog "github.com/tkarwowski/regcheck/slog"
	"github.com/tkarwowski/regcheck/sqlite"
	"github.com/tkarwowski/regcheck/trafilatura"
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
	// Database path for the rule vector store. Set before calling Run().
	DBPath string

	// Output directory for reports and annotated documents.
	OutDir string

	// SQLite database used by the rule store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		OutDir: defaultOutDir(),
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
	// A .env file is optional; environment variables win.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Mapping: checklist.DefaultMapping(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("regcheck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'regcheck --help' to see available commands")
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

	// The types command needs no API key, database, or network.
	if cmd == "types" {
		return kongCtx.Run(deps)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REGCHECK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	deps.DB = m.DB

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	llm := gemini.NewClient(genaiClient)
	generator := regcslog.NewLoggingGenerator(llm, logger)
	embedder := regcslog.NewLoggingEmbedder(llm, logger)

	var fetcher regcheck.Fetcher
	if cmd == "review" && cli.Review.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = browser
	} else {
		fetcher = regchttp.NewFetcher()
	}
	fetcher = regcslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	extractor := regcheck.NewExtensionExtractor()
	extractor.Register(".docx", docx.NewReader())
	extractor.Register(".pdf", pdf.NewReader())
	deps.Extractor = extractor

	deps.Classifier = classify.NewClassifier(generator, difflib.NewResolver())

	store := sqlite.NewRuleStore(m.DB)
	scraper := goquery.NewTextScraper()

	var indexerOpts []ingest.IndexerOption
	if cmd == "ingest" && cli.Ingest.RulesURL != "" {
		indexerOpts = append(indexerOpts, ingest.WithRulesURL(cli.Ingest.RulesURL))
	}
	deps.Indexer = ingest.NewIndexer(store, fetcher, scraper, embedder, indexerOpts...)

	if cmd == "review" {
		crawler := crawl.NewCrawler(fetcher, goquery.NewLinkExtractor())

		var locatorOpts []checklist.Option
		if cli.Review.SinglePage {
			locatorOpts = append(locatorOpts, checklist.WithSinglePageScrape())
		}

		deps.Pipeline = &review.Pipeline{
			Extractor:  deps.Extractor,
			Classifier: deps.Classifier,
			Mapping:    deps.Mapping,
			Checklists: checklist.NewService(deps.Mapping, crawler, checklist.NewFilter(generator), locatorOpts...),
			Comparator: compare.NewComparator(deps.Extractor, fetcher, trafilatura.NewExtractor(), htmltomarkdown.NewConverter(), generator),
			Indexer:    deps.Indexer,
			Retriever:  ingest.NewRetriever(store, embedder),
			Detector:   redflag.NewDetector(generator),
			Reports:    fs.NewReportWriter(m.OutDir),
			Annotator:  docx.NewAnnotator(),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("REGCHECK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "regcheck.db"
	}
	dir := filepath.Join(home, ".regcheck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "regcheck.db")
}

func defaultOutDir() string {
	if path := os.Getenv("REGCHECK_OUT"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "reports"
	}
	return filepath.Join(home, ".regcheck", "reports")
}

package main

import (
	"context"
	"io"

	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/review"
	"github.com/tkarwowski/regcheck/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB         *sqlite.DB
	Mapping    regcheck.Mapping
	Extractor  regcheck.TextExtractor
	Classifier regcheck.Classifier
	Indexer    regcheck.RuleIndexer
	Pipeline   *review.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Review   ReviewCmd   `cmd:"" help:"Run the full compliance review on a document"`
	Classify ClassifyCmd `cmd:"" help:"Classify a document without running the full review"`
	Ingest   IngestCmd   `cmd:"" help:"Build the regulatory rule index if it is empty"`
	Types    TypesCmd    `cmd:"" help:"List the document types the reviewer recognizes"`
}

// ReviewCmd is the "review" subcommand.
type ReviewCmd struct {
	File       string `arg:"" help:"Path to the DOCX or PDF document to review"`
	SinglePage bool   `help:"Scrape only the mapped site root instead of deep-crawling"`
	Browser    bool   `help:"Fetch pages with a headless browser (for JS-rendered portals)"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	File string `arg:"" help:"Path to the DOCX or PDF document to classify"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	RulesURL string `help:"Override the ruleset page URL"`
}

// TypesCmd is the "types" subcommand.
type TypesCmd struct{}

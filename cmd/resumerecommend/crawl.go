package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faloii/resumerecommend/internal/crawling"
	"github.com/faloii/resumerecommend/internal/fetch"
	"github.com/faloii/resumerecommend/internal/logger"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl the current posting pool and dump it as JSON",
	Long: "Fetches the latest postings for each tracked job category and writes them " +
		"as a postings JSON file usable by the analyze command.",
	RunE: runCrawl,
}

var (
	crawlOutPath     string
	crawlPerCategory int
	crawlEnrich      bool
	crawlUseBrowser  bool
	crawlVerbose     bool
)

func init() {
	crawlCmd.Flags().StringVarP(&crawlOutPath, "out", "o", "", "Output file path (default: stdout)")
	crawlCmd.Flags().IntVar(&crawlPerCategory, "per-category", 0, "Postings to fetch per category")
	crawlCmd.Flags().BoolVar(&crawlEnrich, "enrich", false, "Fetch each posting's detail page for a full description")
	crawlCmd.Flags().BoolVar(&crawlUseBrowser, "use-browser", false, "Allow headless-browser rendering when enriching")
	crawlCmd.Flags().BoolVarP(&crawlVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(_ *cobra.Command, _ []string) error {
	log, err := logger.New(false, crawlVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var opts []crawling.Option
	if crawlPerCategory > 0 {
		opts = append(opts, crawling.WithPerCategory(crawlPerCategory))
	}

	ctx := context.Background()
	pool, err := crawling.NewClient(log, opts...).Crawl(ctx)
	if err != nil {
		return fmt.Errorf("failed to crawl postings: %w", err)
	}

	if crawlEnrich {
		fetchText := staticPostingText
		if crawlUseBrowser {
			fetchText = browserPostingText
		}
		for i := range pool {
			crawling.Enrich(ctx, &pool[i], fetchText, log)
		}
	}

	out, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal postings: %w", err)
	}

	if crawlOutPath == "" {
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}
	if err := os.WriteFile(crawlOutPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write postings file %s: %w", crawlOutPath, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d postings to %s\n", len(pool), crawlOutPath)
	return nil
}

// staticPostingText extracts detail-page text without a browser fallback.
func staticPostingText(ctx context.Context, url string) (string, error) {
	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return "", err
	}
	return fetch.ExtractPostingText(result.HTML, fetch.SelectorsFor(url))
}

// browserPostingText falls back to headless rendering for SPA pages.
func browserPostingText(ctx context.Context, url string) (string, error) {
	return fetch.PostingText(ctx, url, nil)
}

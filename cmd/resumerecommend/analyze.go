// Package main implements the resumerecommend CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/advisory"
	"github.com/faloii/resumerecommend/internal/config"
	"github.com/faloii/resumerecommend/internal/crawling"
	"github.com/faloii/resumerecommend/internal/logger"
	"github.com/faloii/resumerecommend/internal/observability"
	"github.com/faloii/resumerecommend/internal/pipeline"
	"github.com/faloii/resumerecommend/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank job postings against a resume",
	Long: "Extracts a candidate profile from a resume text file, scores it against " +
		"a posting pool (from a JSON file or a live crawl) and prints the ranked matches as JSON.",
	RunE: runAnalyze,
}

var (
	analyzeConfigPath   string
	analyzeResumePath   string
	analyzePostingsPath string
	analyzeCrawl        bool
	analyzeRegions      []string
	analyzeSalary       int
	analyzeTopN         int
	analyzeSeed         int64
	analyzeAPIKey       string
	analyzeModel        string
	analyzeNoAdvisory   bool
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume text file (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzePostingsPath, "postings", "p", "", "Path to postings JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeCrawl, "crawl", false, "Crawl the posting pool instead of reading a file")
	analyzeCmd.Flags().StringSliceVar(&analyzeRegions, "regions", nil, "Preferred regions, e.g. 서울,경기,원격")
	analyzeCmd.Flags().IntVar(&analyzeSalary, "salary", 0, "Current annual salary in 10,000 KRW units")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "Cap on the number of returned matches")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "Seed for presentation jitter (0 = time-seeded)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model name")
	analyzeCmd.Flags().BoolVar(&analyzeNoAdvisory, "no-advisory", false, "Skip the advisory call and rank internally")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print profile, quality and filter details")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(analyzeConfigPath)
	if err != nil {
		return err
	}
	mergeAnalyzeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("resume file required: set --resume flag or 'resume' in the config file")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
	}

	ctx := context.Background()

	var pool []types.Posting
	switch {
	case analyzeCrawl:
		pool, err = crawling.NewClient(log).Crawl(ctx)
		if err != nil {
			return fmt.Errorf("failed to crawl postings: %w", err)
		}
	case cfg.Postings != "":
		pool, err = loadPostings(cfg.Postings)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("posting pool required: set --postings, 'postings' in the config file, or --crawl")
	}

	advisor, closeAdvisor, err := buildAdvisor(ctx, cfg, analyzeNoAdvisory, log)
	if err != nil {
		return err
	}
	if closeAdvisor != nil {
		defer func() { _ = closeAdvisor() }()
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	var currentSalary *int
	if cfg.CurrentSalary > 0 {
		currentSalary = &cfg.CurrentSalary
	}

	trace := &pipeline.Trace{}
	matches, err := pipeline.Run(ctx, pipeline.Options{
		ResumeText: string(resumeBytes),
		Postings:   pool,
		Preferences: types.Preferences{
			CurrentSalary:    currentSalary,
			PreferredRegions: cfg.PreferredRegions,
		},
		Advisor: advisor,
		Rand:    rng,
		TopN:    cfg.TopN,
		Logger:  log,
		Trace:   trace,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(trace.Profile)
		printer.PrintQuality(trace.Quality)
		printer.PrintFilterSteps(trace.FilterSteps)
		printer.PrintMatches(matches)
	}

	out, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// mergeAnalyzeFlags overlays explicitly-set flags onto the file config.
func mergeAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResumePath
	}
	if cmd.Flags().Changed("postings") {
		cfg.Postings = analyzePostingsPath
	}
	if cmd.Flags().Changed("regions") {
		cfg.PreferredRegions = analyzeRegions
	}
	if cmd.Flags().Changed("salary") {
		cfg.CurrentSalary = analyzeSalary
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = analyzeTopN
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = analyzeSeed
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = analyzeModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
}

// buildAdvisor creates the Gemini advisor when a key is available. A missing
// key degrades to internal-only ranking instead of failing.
func buildAdvisor(ctx context.Context, cfg *config.Config, disabled bool, log *zap.Logger) (advisory.Advisor, func() error, error) {
	if disabled {
		return nil, nil, nil
	}
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		log.Warn("no Gemini API key configured, ranking internally only")
		return nil, nil, nil
	}
	advisor, closeFn, err := advisory.NewGeminiAdvisor(ctx, apiKey, cfg.Model, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create advisory client: %w", err)
	}
	return advisor, closeFn, nil
}

// loadConfigFile loads the JSON config, or returns an empty config when no
// path was given.
func loadConfigFile(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(path)
}

// loadPostings reads a posting pool from a JSON file.
func loadPostings(path string) ([]types.Posting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings file %s: %w", path, err)
	}
	var pool []types.Posting
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to parse postings JSON: %w", err)
	}
	return pool, nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faloii/resumerecommend/internal/config"
	"github.com/faloii/resumerecommend/internal/crawling"
	"github.com/faloii/resumerecommend/internal/logger"
	"github.com/faloii/resumerecommend/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Serves POST /analyze, which crawls the current posting pool and ranks it against the submitted resume text.",
	RunE:  runServe,
}

var (
	serveConfigPath  string
	serveAddr        string
	servePerCategory int
	serveAPIKey      string
	serveModel       string
	serveTopN        int
	serveNoAdvisory  bool
	serveVerbose     bool
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().IntVar(&servePerCategory, "per-category", 0, "Postings to fetch per category")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model name")
	serveCmd.Flags().IntVar(&serveTopN, "top-n", 0, "Cap on the number of returned matches")
	serveCmd.Flags().BoolVar(&serveNoAdvisory, "no-advisory", false, "Skip the advisory call and rank internally")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return err
	}
	mergeServeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}

	log, err := logger.New(true, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	advisor, closeAdvisor, err := buildAdvisor(ctx, cfg, serveNoAdvisory, log)
	if err != nil {
		return err
	}
	if closeAdvisor != nil {
		defer func() { _ = closeAdvisor() }()
	}

	var opts []crawling.Option
	if servePerCategory > 0 {
		opts = append(opts, crawling.WithPerCategory(servePerCategory))
	}

	srv, err := server.New(server.Config{
		Addr:    addr,
		Source:  crawling.NewClient(log, opts...),
		Advisor: advisor,
		TopN:    cfg.TopN,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// mergeServeFlags overlays explicitly-set flags onto the file config.
func mergeServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = serveModel
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = serveTopN
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
}

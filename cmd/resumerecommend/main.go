// Package main provides the resumerecommend CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumerecommend",
	Short: "Resume-to-job-posting matching for the Korean job market",
	Long: "resumerecommend extracts a candidate profile from resume text, scores it " +
		"against crawled job postings across six dimensions and returns the ranked matches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the disclosure feed ingestion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disclosure_agent",
	Short: "Securities-exchange disclosure feed ingestion",
	Long:  "disclosure_agent parses fixed-width Big5 disclosure feed files into typed records, classifies subject-stream disclosures into business categories, and forwards results to CSV, PostgreSQL, and LLM analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

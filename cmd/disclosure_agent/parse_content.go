package main

import (
	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/parser"
)

var parseContentCmd = &cobra.Command{
	Use:   "parse-content",
	Short: "Parse a content-stream feed file (268-byte disclosure bodies)",
	Long:  "Parse a fixed-width Big5 content-stream file into typed records with the announcement hour and class letter derived per record, writing CSV and/or storing to the database.",
	RunE:  runParseContent,
}

var contentFlags parseFlags

func init() {
	f := parseContentCmd.Flags()
	f.StringVarP(&contentFlags.inputFile, "input", "i", "", "Path to the Big5 feed file (required)")
	f.StringVarP(&contentFlags.outputFile, "output", "o", "", "Path to the output CSV file (UTF-8)")
	f.IntVar(&contentFlags.maxRecords, "max-records", 0, "Parse at most N records (default all)")
	f.BoolVar(&contentFlags.toDB, "to-db", false, "Insert parsed records into the database")
	f.StringVar(&contentFlags.databaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	f.StringVar(&contentFlags.configPath, "config", "", "Path to JSON config file")
	f.IntVar(&contentFlags.batchSize, "batch-size", 0, "Rows per insert batch")
	f.BoolVarP(&contentFlags.verbose, "verbose", "v", false, "Print a parse summary")

	_ = parseContentCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(parseContentCmd)
}

func runParseContent(_ *cobra.Command, _ []string) error {
	return runParse(parser.ContentLayout(), "content", contentFlags)
}

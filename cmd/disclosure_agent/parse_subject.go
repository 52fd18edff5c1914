package main

import (
	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/parser"
)

var parseSubjectCmd = &cobra.Command{
	Use:   "parse-subject",
	Short: "Parse a subject-stream feed file (290-byte disclosure headers)",
	Long:  "Parse a fixed-width Big5 subject-stream file into typed records with suffix fields and a business category per disclosure, writing CSV and/or storing to the database.",
	RunE:  runParseSubject,
}

var subjectFlags parseFlags

func init() {
	f := parseSubjectCmd.Flags()
	f.StringVarP(&subjectFlags.inputFile, "input", "i", "", "Path to the Big5 feed file (required)")
	f.StringVarP(&subjectFlags.outputFile, "output", "o", "", "Path to the output CSV file (UTF-8)")
	f.IntVar(&subjectFlags.maxRecords, "max-records", 0, "Parse at most N records (default all)")
	f.BoolVar(&subjectFlags.toDB, "to-db", false, "Insert parsed records into the database")
	f.StringVar(&subjectFlags.databaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	f.StringVar(&subjectFlags.configPath, "config", "", "Path to JSON config file")
	f.IntVar(&subjectFlags.batchSize, "batch-size", 0, "Rows per insert batch")
	f.BoolVarP(&subjectFlags.verbose, "verbose", "v", false, "Print a parse summary")

	_ = parseSubjectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(parseSubjectCmd)
}

func runParseSubject(_ *cobra.Command, _ []string) error {
	return runParse(parser.SubjectLayout(), "subject", subjectFlags)
}

// Package parser drives one sequential pass over a fixed-width feed file:
// read a line, decode it, compute derived fields, classify (subject stream
// only), and accumulate an ordered result table.
package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/kaiwen/disclosure-ingest/internal/decode"
	"github.com/kaiwen/disclosure-ingest/internal/record"
	"github.com/kaiwen/disclosure-ingest/internal/schema"
)

// ErrEmptyResult signals that a parse pass produced zero records. It is not an
// I/O failure; the caller decides whether an empty feed is fatal.
var ErrEmptyResult = errors.New("no records produced from source")

// Layout couples a schema with the derived columns its stream appends after
// the schema fields.
type Layout struct {
	Schema  schema.Schema
	derived []string
	enrich  func(fields map[string]record.Value) []record.Value
}

// Columns returns the full output column order: schema fields in definition
// order, then derived fields.
func (l Layout) Columns() []string {
	return append(l.Schema.Columns(), l.derived...)
}

// Options configures one parse pass.
type Options struct {
	// MaxRecords bounds the number of produced records; zero means no bound.
	// Skipped blank lines do not count toward the bound.
	MaxRecords int
	// Text overrides the byte→text decoder. Defaults to the feed's Big5
	// decoder; tests substitute a deterministic stub.
	Text decode.TextDecoder
}

// Parse reads the source strictly sequentially and returns the ordered result
// table. Lines have trailing CR/LF stripped; blank lines are skipped without
// producing a record. Per-record problems never fail the batch: short lines
// are padded, invalid bytes become replacement characters, bad numbers become
// null. An I/O error reading the source is fatal and wraps the cause. A pass
// that produces zero records returns ErrEmptyResult.
func Parse(r io.Reader, layout Layout, opts Options) (*record.ResultTable, error) {
	td := opts.Text
	if td == nil {
		td = decode.Big5{}
	}

	table := record.NewResultTable(layout.Columns())
	fieldNames := layout.Schema.Columns()

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			buf := bytes.TrimRight(line, "\r\n")
			if len(buf) > 0 {
				row := decode.Record(layout.Schema, buf, td)
				fields := make(map[string]record.Value, len(row))
				for i, name := range fieldNames {
					fields[name] = row[i]
				}
				row = append(row, layout.enrich(fields)...)
				table.Append(row)
				if opts.MaxRecords > 0 && table.Len() >= opts.MaxRecords {
					break
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read source: %w", err)
		}
	}

	if table.Len() == 0 {
		return nil, ErrEmptyResult
	}
	return table, nil
}

package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Result is the outcome of parsing a whole file. Accepted rows keep their
// input order; every dropped row carries its line number and the reason.
type Result struct {
	Rows     []Row         `json:"rows"`
	Rejected []RejectedRow `json:"rejected"`
}

// RejectedRow describes one row that was dropped during import.
type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Parse reads a delimited spreadsheet export and normalizes it row by row.
//
// The delimiter is sniffed from the first line: a tab makes it a TSV,
// anything else a CSV. When skipHeader is set the first line is not
// parsed as data. Row-level failures never abort the import, they are
// collected in the result instead.
func Parse(f io.Reader, skipHeader bool) (Result, error) {
	buffered := bufio.NewReader(f)

	sample, err := buffered.Peek(4096)
	if err != nil && err != io.EOF {
		return Result{}, fmt.Errorf("could not read import file: %w", err)
	}

	reader := csv.NewReader(buffered)
	reader.Comma = sniffDelimiter(sample)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// The record slice is reused between reads, NormalizeRow copies the
	// values out
	reader.ReuseRecord = true

	result := Result{
		Rows:     []Row{},
		Rejected: []RejectedRow{},
	}

	if skipHeader {
		_, err := reader.Read()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("could not read import file: %w", err)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("could not read line in import file: %w", err)
		}

		line, _ := reader.FieldPos(0)

		row, err := NormalizeRow(record)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedRow{
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}

		row.Line = line
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// sniffDelimiter decides between tab and comma based on the first line.
func sniffDelimiter(sample []byte) rune {
	line := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		line = sample[:i]
	}

	if bytes.ContainsRune(line, '\t') {
		return '\t'
	}

	return ','
}

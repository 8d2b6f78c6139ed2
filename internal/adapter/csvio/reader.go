// Package csvio decodes the source CSV into column-keyed rows and encodes
// the three output collections.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// requiredColumns must appear in the input header. top_country is optional.
var requiredColumns = []string{"date", "hashtag", "mentions", "estimated_reach", "sentiment_score"}

// ReadFile decodes a CSV file into header-keyed rows.
func ReadFile(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}

// ReadRows decodes CSV content into one map per data row, keyed by the
// header columns. A missing required column is a configuration-class error:
// the run fails before any processing.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("missing columns in input CSV: %s", strings.Join(missing, ", "))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

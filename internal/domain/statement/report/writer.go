// Package report serializes batch extraction results into the output
// artifacts downstream consumers read: a JSON results file, a CSV summary,
// and an XLSX workbook.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(path string, records []statement.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// WriteCSV writes the flat summary table, one row per source file.
func WriteCSV(path string, records []statement.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

package resultstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/parquet"
)

// ExportToParquet writes all stored metric rows to a Parquet file.
func ExportToParquet(store contract.ResultStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	rows, err := store.FetchRows()
	if err != nil {
		return fmt.Errorf("failed to fetch stored results: %w", err)
	}
	if len(rows) == 0 {
		return errors.New("no result data found to export")
	}

	if err := parquet.WriteRowRecordsParquet(rows, outputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d metric rows to %s\n", len(rows), outputFile)
	return nil
}

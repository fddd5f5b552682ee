package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/parquet"
	"github.com/huangsam/modelmeter/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMetricRows outputs evaluation results, dispatching based on the output format configured.
func WriteMetricRows(rows []schema.MetricRow, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForMetrics(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForMetrics(w, rows, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteMetricRowsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricTable(rows, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeMetricTable generates and writes the human-readable table.
func writeMetricTable(rows []schema.MetricRow, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	grouped := hasGroups(rows)
	headers := []string{"Metric", "Estimator", "Value", "Direction"}
	if grouped {
		headers = append([]string{"Group"}, headers...)
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	groupWidth := getMaxGroupWidth(cfg)
	var data [][]string
	for _, r := range rows {
		direction := contract.GetDirectionLabel(r.Direction)
		if cfg.Color {
			direction = contract.GetColorDirectionLabel(r.Direction)
		}
		row := []string{
			r.Metric,
			r.Estimator,
			fmtFloat(r.Value),
			direction,
		}
		if grouped {
			row = append([]string{truncateCell(contract.FormatGroups(r.Groups), groupWidth)}, row...)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Computed %d metric values in %v\n", len(rows), duration); err != nil {
		return err
	}
	return nil
}

// writeJSONResultsForMetrics marshals the metric rows to JSON and writes them.
func writeJSONResultsForMetrics(w io.Writer, rows []schema.MetricRow) error {
	return writeJSON(w, rows)
}

// writeCSVResultsForMetrics writes the metric rows to a CSV writer.
func writeCSVResultsForMetrics(w io.Writer, rows []schema.MetricRow, fmtFloat func(float64) string) error {
	header := []string{"group", "metric", "estimator", "value", "direction", "kind"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			row := []string{
				contract.GroupKeyString(r.Groups),
				r.Metric,
				r.Estimator,
				fmtFloat(r.Value),
				string(r.Direction),
				string(r.Kind),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// hasGroups reports whether any row carries a partition key.
func hasGroups(rows []schema.MetricRow) bool {
	for _, r := range rows {
		if len(r.Groups) > 0 {
			return true
		}
	}
	return false
}

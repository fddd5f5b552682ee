package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCatalog outputs the built-in metric definitions.
func WriteCatalog(infos []core.MetricInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, infos)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForCatalog(w, infos)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for metric definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(infos, cfg, w)
		}, "Wrote table")
	}
}

// writeCatalogTable renders the metric definitions as a table.
func writeCatalogTable(infos []core.MetricInfo, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Kind", "Direction", "Purpose", "Formula"})

	var data [][]string
	for _, info := range infos {
		direction := contract.GetDirectionLabel(info.Direction)
		if cfg.Color {
			direction = contract.GetColorDirectionLabel(info.Direction)
		}
		data = append(data, []string{
			info.Name,
			string(info.Kind),
			direction,
			info.Purpose,
			info.Formula,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForCatalog writes the metric definitions to CSV.
func writeCSVResultsForCatalog(w io.Writer, infos []core.MetricInfo) error {
	header := []string{"metric", "kind", "direction", "purpose", "formula"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, info := range infos {
			row := []string{info.Name, string(info.Kind), string(info.Direction), info.Purpose, info.Formula}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

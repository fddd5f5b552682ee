package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/parquet"
	"github.com/huangsam/modelmeter/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteGainResults outputs gain curve points, dispatching based on the output format configured.
func WriteGainResults(points []schema.GainPoint, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForGain(w, points, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteGainPointsParquet(points, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCurveTable(curveRowsFromGain(points, fmtFloat), "%Found", len(points), cfg, duration, w)
		}, "Wrote table")
	}
}

// WriteLiftResults outputs lift curve points, dispatching based on the output format configured.
func WriteLiftResults(points []schema.LiftPoint, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForLift(w, points, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteLiftPointsParquet(points, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCurveTable(curveRowsFromLift(points, fmtFloat), "Lift", len(points), cfg, duration, w)
		}, "Wrote table")
	}
}

// curveRow is one pre-formatted table row shared by the gain and lift tables.
type curveRow struct {
	group, level, sample, rank, tested, value string
	grouped, leveled                          bool
}

// curveRowsFromGain formats gain points for table display.
func curveRowsFromGain(points []schema.GainPoint, fmtFloat func(float64) string) []curveRow {
	rows := make([]curveRow, len(points))
	for i, p := range points {
		rows[i] = curveRow{
			group:   contract.FormatGroups(p.Groups),
			level:   p.Level,
			sample:  strconv.Itoa(p.SampleIndex),
			rank:    strconv.Itoa(p.RankIndex),
			tested:  fmtFloat(p.PercentTested),
			value:   fmtFloat(p.PercentFound),
			grouped: len(p.Groups) > 0,
			leveled: p.Level != "",
		}
	}
	return rows
}

// curveRowsFromLift formats lift points for table display.
func curveRowsFromLift(points []schema.LiftPoint, fmtFloat func(float64) string) []curveRow {
	rows := make([]curveRow, len(points))
	for i, p := range points {
		rows[i] = curveRow{
			group:   contract.FormatGroups(p.Groups),
			level:   p.Level,
			sample:  strconv.Itoa(p.SampleIndex),
			rank:    strconv.Itoa(p.RankIndex),
			tested:  fmtFloat(p.PercentTested),
			value:   fmtFloat(p.Lift),
			grouped: len(p.Groups) > 0,
			leveled: p.Level != "",
		}
	}
	return rows
}

// writeCurveTable renders curve points as a table, showing at most the
// configured number of rows.
func writeCurveTable(rows []curveRow, valueHeader string, total int, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	grouped, leveled := false, false
	for _, r := range rows {
		grouped = grouped || r.grouped
		leveled = leveled || r.leveled
	}

	headers := []string{"Sample", "Rank", "%Tested", valueHeader}
	if leveled {
		headers = append([]string{"Level"}, headers...)
	}
	if grouped {
		headers = append([]string{"Group"}, headers...)
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	groupWidth := getMaxGroupWidth(cfg)
	shown := rows
	if len(shown) > cfg.ResultLimit {
		shown = shown[:cfg.ResultLimit]
	}

	var data [][]string
	for _, r := range shown {
		row := []string{r.sample, r.rank, r.tested, r.value}
		if leveled {
			row = append([]string{r.level}, row...)
		}
		if grouped {
			row = append([]string{truncateCell(r.group, groupWidth)}, row...)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d of %d curve points, computed in %v\n", len(shown), total, duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForGain writes gain points to CSV.
func writeCSVResultsForGain(w io.Writer, points []schema.GainPoint, fmtFloat func(float64) string) error {
	header := []string{"group", "level", "sample_index", "rank_index", "percent_tested", "percent_found"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range points {
			row := []string{
				contract.GroupKeyString(p.Groups),
				p.Level,
				strconv.Itoa(p.SampleIndex),
				strconv.Itoa(p.RankIndex),
				fmtFloat(p.PercentTested),
				fmtFloat(p.PercentFound),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVResultsForLift writes lift points to CSV.
func writeCSVResultsForLift(w io.Writer, points []schema.LiftPoint, fmtFloat func(float64) string) error {
	header := []string{"group", "level", "sample_index", "rank_index", "percent_tested", "lift"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range points {
			row := []string{
				contract.GroupKeyString(p.Groups),
				p.Level,
				strconv.Itoa(p.SampleIndex),
				strconv.Itoa(p.RankIndex),
				fmtFloat(p.PercentTested),
				fmtFloat(p.Lift),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

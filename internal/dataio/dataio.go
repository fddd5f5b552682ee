// Package dataio loads tabular prediction data into frames.
package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/huangsam/modelmeter/schema"
)

// LoadCSV reads a CSV file with a header row into a frame. Each column is
// numeric if every non-empty cell parses as a float, otherwise it is a label
// column. Empty cells are missing values in both cases.
func LoadCSV(path string) (*schema.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// ReadCSV parses CSV content from a reader. See LoadCSV for inference rules.
func ReadCSV(r io.Reader) (*schema.Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("data file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		for i := range header {
			cells[i] = append(cells[i], record[i])
		}
	}

	series := make([]*schema.Series, len(header))
	for i, name := range header {
		series[i] = inferSeries(name, cells[i])
	}
	return schema.NewFrame(series...)
}

// inferSeries decides between a numeric and a label column.
func inferSeries(name string, values []string) *schema.Series {
	numeric := true
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		floats := make([]float64, len(values))
		for i, v := range values {
			if v == "" {
				floats[i] = math.NaN()
				continue
			}
			floats[i], _ = strconv.ParseFloat(v, 64)
		}
		return schema.NewNumericSeries(name, floats)
	}
	return schema.NewLabelSeries(name, values)
}

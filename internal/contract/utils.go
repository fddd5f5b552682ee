package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/modelmeter/schema"
)

// Color variables for console output.
var (
	MaximizeColor = color.New(color.FgGreen)  // higher is better
	MinimizeColor = color.New(color.FgCyan)   // lower is better
	ZeroColor     = color.New(color.FgYellow) // closer to zero is better
)

// GetDirectionLabel returns the plain text label for a metric direction.
// This is the core logic used for CSV, JSON, and table printing.
func GetDirectionLabel(d schema.Direction) string {
	return string(d)
}

// GetColorDirectionLabel returns a colored direction label for console
// output (table).
func GetColorDirectionLabel(d schema.Direction) string {
	switch d {
	case schema.Maximize:
		return MaximizeColor.Sprint(string(d))
	case schema.Minimize:
		return MinimizeColor.Sprint(string(d))
	default: // zero
		return ZeroColor.Sprint(string(d))
	}
}

// FormatGroups renders a partition key tuple as "col=value" pairs for table
// and CSV output. Ungrouped rows render as a single dash.
func FormatGroups(groups []schema.GroupValue) string {
	if len(groups) == 0 {
		return "-"
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s=%s", g.Column, g.Value)
	}
	return strings.Join(parts, ", ")
}

// GroupKeyString renders a key tuple as a compact storage key.
func GroupKeyString(groups []schema.GroupValue) string {
	if len(groups) == 0 {
		return ""
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s=%s", g.Column, g.Value)
	}
	return strings.Join(parts, ";")
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for result storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".modelmeter_results.db"
	}
	return filepath.Join(homeDir, ".modelmeter_results.db")
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// Render formats a summary with the named formatter or alias.
func Render(summary *domain.PayrollSummary, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return f.Format(summary)
}

// WriteReport renders a summary to w.
func WriteReport(w io.Writer, summary *domain.PayrollSummary, format string) error {
	data, err := Render(summary, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes a summary to a timestamped file in dir and returns its path.
// The format "all" writes the detailed console report and the per-day CSV.
func GenerateReport(summary *domain.PayrollSummary, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			path, err := WriteFormatted(f, summary, dir, FileExtension(f.Name()))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, summary, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

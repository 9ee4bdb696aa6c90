package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// HolidayLoader reads dated holiday tables from CSV files with a
// "date,name" header, one row per holiday day.
type HolidayLoader struct {
	DataPath string
}

// NewHolidayLoader creates a loader rooted at dataPath
func NewHolidayLoader(dataPath string) *HolidayLoader {
	return &HolidayLoader{DataPath: dataPath}
}

// LoadAll loads every .csv file under DataPath, ordered by date
func (hl *HolidayLoader) LoadAll() ([]domain.HolidayEntry, error) {
	files, err := filepath.Glob(filepath.Join(hl.DataPath, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday files in %s: %w", hl.DataPath, err)
	}
	sort.Strings(files)

	var all []domain.HolidayEntry
	for _, f := range files {
		entries, err := hl.LoadFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all, nil
}

// LoadFile loads a single holiday CSV file
func (hl *HolidayLoader) LoadFile(path string) ([]domain.HolidayEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	entries, err := ReadHolidays(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	return entries, nil
}

// ReadHolidays parses holiday rows. Rows with an unreadable date or an empty
// name are skipped.
func ReadHolidays(r io.Reader) ([]domain.HolidayEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}

	header := records[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, fmt.Errorf("expected header date,name, got %s", strings.Join(header, ","))
	}

	entries := make([]domain.HolidayEntry, 0, len(records)-1)
	for i, row := range records[1:] {
		if len(row) < 2 {
			continue
		}
		date, err := dateutil.ParseDate(row[0])
		if err != nil {
			zap.S().Warnf("holiday row %d: unreadable date %q", i+2, row[0])
			continue
		}
		name := strings.TrimSpace(row[1])
		if name == "" {
			zap.S().Warnf("holiday row %d: empty name for %s", i+2, dateutil.DateKey(date))
			continue
		}
		entries = append(entries, domain.HolidayEntry{Date: date, Name: name})
	}
	return entries, nil
}

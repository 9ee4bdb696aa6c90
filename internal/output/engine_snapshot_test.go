package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ympay/payroll-calculator/internal/calculation"
	"github.com/ympay/payroll-calculator/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core payroll metrics.
func TestEngineSnapshot(t *testing.T) {
	parser := config.NewInputParser()
	ts, err := parser.LoadFromFile("../config/testdata/example_timesheet.yaml")
	if err != nil {
		t.Fatalf("load timesheet: %v", err)
	}

	eng := calculation.NewCalculationEngineForTimesheet(ts)
	res := eng.CalculateTimesheet(ts, 2025, time.January)

	// Trim to stable summary fields only
	out := struct {
		Cycle       string `json:"cycle"`
		WorkDays    int    `json:"work_days"`
		OTHours     string `json:"ot_hours"`
		BaseIncome  string `json:"base_income"`
		OTIncome    string `json:"ot_income"`
		Allowances  string `json:"allowances"`
		Gross       string `json:"gross"`
		Insurance   string `json:"insurance"`
		TaxExemptOT string `json:"tax_exempt_ot"`
		Taxable     string `json:"taxable"`
		Tax         string `json:"tax"`
		Net         string `json:"net"`
	}{
		Cycle:       FormatCycle(&res),
		WorkDays:    res.TotalWorkDays,
		OTHours:     res.TotalOTHours.StringFixed(2),
		BaseIncome:  res.BaseIncome.StringFixed(0),
		OTIncome:    res.OTIncome.StringFixed(0),
		Allowances:  res.TotalAllowances.StringFixed(0),
		Gross:       res.GrossIncome.StringFixed(0),
		Insurance:   res.InsuranceDeduction.StringFixed(0),
		TaxExemptOT: res.TaxExemptOT.StringFixed(0),
		Taxable:     res.TaxableIncome.StringFixed(0),
		Tax:         res.PersonalTax.StringFixed(0),
		Net:         res.NetIncome.StringFixed(0),
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}

package output

import (
	"encoding/json"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// JSONFormatter serializes the payroll summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.PayrollSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

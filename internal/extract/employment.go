package extract

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	economySectionRe = regexp.MustCompile(`(?is)Economy\s*\n.*?EMPLOYMENT BY INDUSTRY`)
	employmentHdrRe  = regexp.MustCompile(`(?i)EMPLOYMENT BY INDUSTRY`)

	// Total Employment row: jobs (thousands), location quotient, then six
	// growth columns (current, 10yr historical, 5yr forecast; market/US).
	totalEmploymentRe = regexp.MustCompile(`Total Employment\s+([\d,]+)\s+([\d.]+)\s*(-?[\d.]+)%\s*(-?[\d.]+)%\s*(-?[\d.]+)%\s*(-?[\d.]+)%\s*(-?[\d.]+)%\s*(-?[\d.]+)%`)
)

// extractEmployment reads the Total Employment row from the Economy
// section's employment-by-industry table.
func extractEmployment(doc *pdftext.Document, rec model.Record) {
	hdr, ok := searchDoc(doc, economySectionRe)
	if !ok {
		if hdr, ok = searchDoc(doc, employmentHdrRe); !ok {
			zap.L().Info("extract: no employment section found")
			return
		}
	}

	m, ok := searchDoc(doc, totalEmploymentRe)
	if !ok {
		zap.L().Info("extract: could not parse Total Employment row")
		return
	}

	emp := rec.EnsureCategory("employment")
	if v, ok := parseInt(m.group(1)); ok {
		emp["total_jobs_thousands"] = v
	}
	if v, ok := parseFloat(m.group(2)); ok {
		emp["location_quotient"] = v
	}
	fields := []string{
		"current_growth_market", "current_growth_us",
		"historical_10yr_market", "historical_10yr_us",
		"forecast_5yr_market", "forecast_5yr_us",
	}
	for i, field := range fields {
		if v, ok := parseFloat(m.group(3 + i)); ok {
			emp[field] = v
		}
	}
	rec.SetPage("employment", "employment", hdr.page)

	zap.L().Info("extract: employment",
		zap.Int("page", hdr.page),
		zap.Any("current_growth_market", emp["current_growth_market"]),
		zap.Any("current_growth_us", emp["current_growth_us"]),
		zap.Any("forecast_5yr_market", emp["forecast_5yr_market"]),
		zap.Any("forecast_5yr_us", emp["forecast_5yr_us"]))
}

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	// Headline 12-month row, values printed above their column headers.
	// In a submarket-only report this row IS the submarket vacancy.
	market12MoRe = regexp.MustCompile(`([\d,]+)\s+([\d,]+)\s+([\d.]+)%\s+(-?[\d.]+)%\s*12 Mo Delivered Units\s*12 Mo Absorption Units\s*Vacancy Rate\s*12 Mo Asking Rent Growth`)

	underConstructionRe   = regexp.MustCompile(`(?i)([\d,]+)\s*units\s*under\s*construction`)
	noUnderConstructionRe = regexp.MustCompile(`(?i)no.*(?:projects?|units?).*under\s*construction`)

	// Annual trends row: forecast average, historical average, YoY change.
	vacancyTrendRe = regexp.MustCompile(`(?i)([\d.]+)%\s+([\d.]+)%\s+(-?[\d.]+)%\s*\(YOY\)\s*Vacancy`)

	rentsIncreasedRe = regexp.MustCompile(`(?i)rents\s*increased\s*by\s*([\d.]+)%`)

	submarketNameRe        = regexp.MustCompile(`([A-Z][A-Z ]+)\s+SUBMARKET SALES VOLUME IN UNITS`)
	submarketVacSectionRe  = regexp.MustCompile(`(?s)SUBMARKET VACANCY & ABSORPTION(.*?)(?:SUBMARKET RENT|Page \d|$)`)
	submarketRentSectionRe = regexp.MustCompile(`(?s)SUBMARKET RENT(.*?)(?:OVERALL|Page \d{2}|$)`)
	overallVacRentRe       = regexp.MustCompile(`(?s)OVERALL VACANCY & RENT(.*?)(?:4 & 5 STAR|SUBMARKET|Page \d{2}|$)`)
)

// extractMarket pulls submarket-level supply, vacancy, and rent growth data
// from the asset/market report.
func extractMarket(doc *pdftext.Document, rec model.Record) {
	mkt := rec.EnsureCategory("market")
	set := func(field string, value any, page int) {
		rec.SetWithPage("market", field, value, page)
	}

	if m, ok := searchDoc(doc, market12MoRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("delivered_12mo", v, m.page)
		}
		if v, ok := parseInt(m.group(2)); ok {
			set("absorption_12mo", v, m.page)
		}
		if v, ok := parseFloat(m.group(3)); ok {
			set("submarket_vacancy_rate", v, m.page)
		}
		if v, ok := parseFloat(m.group(4)); ok {
			set("asking_rent_growth", v, m.page)
		}
	}

	if m, ok := searchDoc(doc, underConstructionRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("under_construction", v, m.page)
		}
	} else if noUnderConstructionRe.MatchString(doc.Text) {
		mkt["under_construction"] = 0
	}

	if m, ok := searchDoc(doc, vacancyTrendRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("vacancy_forecast_avg", v, m.page)
		}
		if v, ok := parseFloat(m.group(2)); ok {
			set("vacancy_historical_avg", v, m.page)
		}
		if v, ok := parseFloat(m.group(3)); ok {
			set("vacancy_yoy_change", v, m.page)
		}
		zap.L().Info("extract: vacancy trends",
			zap.Any("yoy", mkt["vacancy_yoy_change"]),
			zap.Any("historical_avg", mkt["vacancy_historical_avg"]),
			zap.Any("forecast_avg", mkt["vacancy_forecast_avg"]))
	}

	if strings.Contains(strings.ToLower(doc.Text), "population growth") {
		mkt["has_population_growth"] = true
	}

	if m, ok := searchDoc(doc, rentsIncreasedRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("rent_growth_actual", v, m.page)
		}
	}

	// The submarket name anchors the per-submarket table rows below.
	submarket := ""
	if m, ok := searchDoc(doc, submarketNameRe); ok {
		submarket = strings.TrimSpace(m.group(1))
		mkt["property_submarket"] = submarket

		if sm, ok := searchDoc(doc, submarketVacSectionRe); ok {
			rowRe := regexp.MustCompile(fmt.Sprintf(`(?i)\d+\s+%s\s+([\d,]+)\s+([\d.]+)%%`, regexp.QuoteMeta(submarket)))
			if vm := rowRe.FindStringSubmatch(sm.group(1)); vm != nil {
				if v, ok := parseFloat(vm[2]); ok {
					mkt["submarket_vacancy_rate"] = v
				}
			}
		}
	}

	projections := map[string]float64{}

	// CoStar reports the submarket's current YoY rent growth in the
	// SUBMARKET RENT table; 5-year projections exist at market level only.
	if submarket != "" {
		if sm, ok := searchDoc(doc, submarketRentSectionRe); ok {
			rowRe := regexp.MustCompile(fmt.Sprintf(`(?i)\d+\s+%s\s+(-?[\d.]+)%%`, regexp.QuoteMeta(submarket)))
			if gm := rowRe.FindStringSubmatch(sm.group(1)); gm != nil {
				if v, ok := parseFloat(gm[1]); ok {
					projections["submarket_current_yoy_growth"] = v
					zap.L().Info("extract: submarket current YoY rent growth",
						zap.String("submarket", submarket), zap.Float64("growth_pct", v))
				}
			}
		}
	}

	if om, ok := searchDoc(doc, overallVacRentRe); ok {
		section := om.group(1)
		for _, year := range []string{"2025", "2026", "2027", "2028", "2029"} {
			// Row shape: ppts chg, year, vacancy%, ppts chg, absorption,
			// $rent, $psf, growth%.
			rowRe := regexp.MustCompile(fmt.Sprintf(`[\d.\-()]+\s+%s\s+[\d.]+%%\s+[\d.\-()]+\s+[\d,]+\s+\$[\d,]+\s+\$[\d.]+\s+(-?[\d.]+)%%`, year))
			if m := rowRe.FindStringSubmatch(section); m != nil {
				if v, ok := parseFloat(m[1]); ok {
					projections["rent_growth_"+year] = v
					rec.SetPage("market", "rent_growth_"+year, om.page)
				}
			}
		}
	}

	if len(projections) > 0 {
		mkt["rent_growth_projections"] = projections
	} else {
		zap.L().Warn("extract: no rent growth projections found")
	}
}

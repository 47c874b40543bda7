package extract

import (
	"regexp"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	demoMedIncome1miRe = regexp.MustCompile(`(?i)Med\.\s*HH\s*Inc\.\s*\(1\s*mi\)\s*\$?([\d,]+)`)

	demoAbsCurrentRe = regexp.MustCompile(`Current:\s*(\(?\d+\)?|-?\d+)\s*Units`)
	demoAbsCompRe    = regexp.MustCompile(`Competitor Total:\s*(\(?\d+\)?|-?\d+)\s*Units`)
	demoAbsCompAvgRe = regexp.MustCompile(`Competitor Avg:\s*\(?(-?[\d.]+)\)?\s*Units`)
	demoAbsSubmktRe  = regexp.MustCompile(`Submarket Total:\s*([\d,]+)\s*Units`)

	demoCompVacancyRe  = regexp.MustCompile(`Competitors:\s*([\d.]+)%`)
	demoCompRentRe     = regexp.MustCompile(`Competitors:\s*\$?([\d,]+)`)
	demoSubmktVacRe    = regexp.MustCompile(`Submarket:\s*([\d.]+)%`)
	demoSubmktRentRe   = regexp.MustCompile(`Submarket:\s*\$?([\d,]+)`)
	demoRentYearAgoRe  = regexp.MustCompile(`Year Ago:\s*\$?([\d,]+)`)

	// Demographic summary table rows read right-to-left: 5 mi, 3 mi, 1 mi,
	// then the row label.
	demoPop2024Re    = regexp.MustCompile(`([\d,]+)\s+([\d,]+)\s+([\d,]+)\s*2024 Population`)
	demoPop2029Re    = regexp.MustCompile(`([\d,]+)\s+([\d,]+)\s+([\d,]+)\s*2029 Population`)
	demoPopGrowthRe  = regexp.MustCompile(`(\(?-?[\d.]+%\)?)\s+(\(?-?[\d.]+%\)?)\s+(\(?-?[\d.]+%\)?)\s*Pop Growth`)
	demoAvgAgeRe     = regexp.MustCompile(`(\d+)\s+(\d+)\s+(\d+)\s*2024 Average Age`)
	demoHH2024Re     = regexp.MustCompile(`([\d,]+)\s+([\d,]+)\s+([\d,]+)\s*2024 Households`)
	demoHH2029Re     = regexp.MustCompile(`([\d,]+)\s+([\d,]+)\s+([\d,]+)\s*2029 Households`)
	demoHHGrowthRe   = regexp.MustCompile(`(\(?-?[\d.]+%\)?)\s+(\(?-?[\d.]+%\)?)\s+(\(?-?[\d.]+%\)?)\s*Household Growth`)
	demoMedIncomeRe  = regexp.MustCompile(`\$?([\d,]+)\s+\$?([\d,]+)\s+\$?([\d,]+)\s*Median Household Income`)
	demoHHSizeRe     = regexp.MustCompile(`([\d.]+)\s+([\d.]+)\s+([\d.]+)\s*Average Household Size`)
	demoHHVehiclesRe = regexp.MustCompile(`(\d+)\s+(\d+)\s+(\d+)\s*Average HH Vehicles`)
	demoHomeValueRe  = regexp.MustCompile(`\$?([\d,]+)\s+\$?([\d,]+)\s+\$?([\d,]+)\s*Median Home Value`)
	demoYearBuiltRe  = regexp.MustCompile(`(\d{4})\s+(\d{4})\s+(\d{4})\s*Median Year Built`)
)

func extractDemographics(doc *pdftext.Document, rec model.Record) {
	set := func(field string, value any, page int) {
		rec.SetWithPage("demographics", field, value, page)
	}

	if m, ok := searchDoc(doc, demoMedIncome1miRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("median_hh_income_1mi", v, m.page)
		}
	}

	// Property-level absorption block, accounting negatives allowed.
	if m, ok := searchDoc(doc, demoAbsCurrentRe); ok {
		if v, ok := parseAccountingInt(m.group(1)); ok {
			set("absorption_12mo_property", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoAbsCompRe); ok {
		if v, ok := parseAccountingInt(m.group(1)); ok {
			set("absorption_12mo_competitor_total", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoAbsCompAvgRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("absorption_12mo_competitor_avg", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoAbsSubmktRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("absorption_12mo_submarket", v, m.page)
		}
	}

	if m, ok := searchDoc(doc, demoCompVacancyRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("competitor_vacancy_rate", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoCompRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("competitor_avg_rent", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoSubmktVacRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("submarket_vacancy_rate", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoSubmktRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("submarket_avg_rent", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoRentYearAgoRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("rent_year_ago", v, m.page)
		}
	}

	extractRadiiInts(doc, rec, demoPop2024Re, "population_5mi_2024", "population_3mi_2024", "population_1mi_2024")
	extractRadiiInts(doc, rec, demoPop2029Re, "population_5mi_2029", "population_3mi_2029", "population_1mi_2029")
	extractRadiiGrowth(doc, rec, demoPopGrowthRe, "population_growth_pct_5mi", "population_growth_pct_3mi", "population_growth_pct")
	extractRadiiInts(doc, rec, demoAvgAgeRe, "avg_age_5mi", "avg_age_3mi", "avg_age_1mi")
	extractRadiiInts(doc, rec, demoHH2024Re, "households_5mi_2024", "households_3mi_2024", "households_1mi_2024")
	extractRadiiInts(doc, rec, demoHH2029Re, "households_5mi_2029", "households_3mi_2029", "households_1mi_2029")
	extractRadiiGrowth(doc, rec, demoHHGrowthRe, "household_growth_pct_5mi", "household_growth_pct_3mi", "household_growth_pct")
	extractRadiiInts(doc, rec, demoMedIncomeRe, "median_hh_income_5mi", "median_hh_income_3mi", "median_hh_income_1mi")
	extractRadiiFloats(doc, rec, demoHHSizeRe, "avg_household_size_5mi", "avg_household_size_3mi", "avg_household_size")
	extractRadiiInts(doc, rec, demoHomeValueRe, "median_home_value_5mi", "median_home_value_3mi", "median_home_value")

	// Vehicle count and housing vintage only matter at the 1-mile radius.
	if m, ok := searchDoc(doc, demoHHVehiclesRe); ok {
		if v, ok := parseInt(m.group(3)); ok {
			set("avg_hh_vehicles", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, demoYearBuiltRe); ok {
		if v, ok := parseInt(m.group(3)); ok {
			set("median_year_built_housing", v, m.page)
		}
	}
}

func extractRadiiInts(doc *pdftext.Document, rec model.Record, re *regexp.Regexp, key5, key3, key1 string) {
	m, ok := searchDoc(doc, re)
	if !ok {
		return
	}
	for i, key := range []string{key5, key3, key1} {
		if v, ok := parseInt(m.group(i + 1)); ok {
			rec.SetWithPage("demographics", key, v, m.page)
		}
	}
}

func extractRadiiFloats(doc *pdftext.Document, rec model.Record, re *regexp.Regexp, key5, key3, key1 string) {
	m, ok := searchDoc(doc, re)
	if !ok {
		return
	}
	for i, key := range []string{key5, key3, key1} {
		if v, ok := parseFloat(m.group(i + 1)); ok {
			rec.SetWithPage("demographics", key, v, m.page)
		}
	}
}

// extractRadiiGrowth handles growth rows where a parenthesized percentage is
// an accounting negative: "(0.4%)" is -0.4.
func extractRadiiGrowth(doc *pdftext.Document, rec model.Record, re *regexp.Regexp, key5, key3, key1 string) {
	m, ok := searchDoc(doc, re)
	if !ok {
		return
	}
	for i, key := range []string{key5, key3, key1} {
		raw := m.group(i + 1)
		v, ok := parseAccountingFloat(strings.TrimSpace(raw))
		if !ok {
			continue
		}
		rec.SetWithPage("demographics", key, v, m.page)
	}
}

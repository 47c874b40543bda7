package extract

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	bachelorsRe  = regexp.MustCompile(`(?i)Bachelor'?s?\s*(?:Degree)?.*?(\d+\.?\d*)%`)
	highSchoolRe = regexp.MustCompile(`(?i)High\s*School\s*(?:Graduate|Diploma).*?(\d+\.?\d*)%`)
	someCollege  = regexp.MustCompile(`(?i)Some\s*College.*?(\d+\.?\d*)%`)
	gradDegreeRe = regexp.MustCompile(`(?i)Graduate\s*(?:Degree|or\s*Professional).*?(\d+\.?\d*)%`)

	marketCapRateRe   = regexp.MustCompile(`(?i)Market\s*Cap\s*Rate.*?([\d.]+)%`)
	avgCapRateRe      = regexp.MustCompile(`(?i)(?:Average|Avg\.?)\s*Cap\s*Rate.*?([\d.]+)%`)
	anyCapRateRe      = regexp.MustCompile(`(?i)CAP\s*RATE.*?([\d.]+)%`)
	trailingCapRateRe = regexp.MustCompile(`(?i)(?:Trailing|TTM|12\s*Mo).*?Cap\s*Rate.*?([\d.]+)%`)
)

// extractEducation reads education attainment from the Age & Education
// section and merges it into demographics.
func extractEducation(doc *pdftext.Document, rec model.Record) {
	n := 0
	setFirst := func(re *regexp.Regexp, field string) {
		if m, ok := searchDoc(doc, re); ok {
			if v, ok := parseFloat(m.group(1)); ok {
				rec.SetWithPage("demographics", field, v, m.page)
				n++
			}
		}
	}
	setFirst(bachelorsRe, "bachelors_pct")
	setFirst(highSchoolRe, "high_school_pct")
	setFirst(someCollege, "some_college_pct")
	setFirst(gradDegreeRe, "graduate_degree_pct")

	if n > 0 {
		zap.L().Info("extract: education", zap.Int("fields", n))
	}
}

// extractCapRates reads market and trailing cap rates and merges them into
// the market category.
func extractCapRates(doc *pdftext.Document, rec model.Record) {
	mkt := rec.EnsureCategory("market")
	n := 0

	if m, ok := searchDoc(doc, marketCapRateRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			rec.SetWithPage("market", "market_cap_rate", v, m.page)
			n++
		}
	}
	if m, ok := searchDoc(doc, avgCapRateRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			rec.SetWithPage("market", "avg_cap_rate", v, m.page)
			n++
		}
	}
	if _, have := mkt["market_cap_rate"]; !have {
		if m, ok := searchDoc(doc, anyCapRateRe); ok {
			if v, ok := parseFloat(m.group(1)); ok {
				rec.SetWithPage("market", "market_cap_rate", v, m.page)
				n++
			}
		}
	}
	if m, ok := searchDoc(doc, trailingCapRateRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			rec.SetWithPage("market", "trailing_cap_rate", v, m.page)
			n++
		}
	}

	if n > 0 {
		zap.L().Info("extract: cap rates", zap.Int("fields", n))
	}
}

package extract

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

// Headers that terminate the Subject Property one-pager. The section is
// bounded dynamically because combined exports place it on varying pages.
var subjectSectionEnders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)RENT COMPARABLES`),
	regexp.MustCompile(`(?i)SALE COMPARABLES`),
	regexp.MustCompile(`(?i)SUBMARKET TREND`),
	regexp.MustCompile(`(?i)MARKET TREND`),
	regexp.MustCompile(`(?i)DEMOGRAPHICS`),
	regexp.MustCompile(`(?i)SUPPLY & DEMAND`),
}

var (
	subjectStartRe  = regexp.MustCompile(`(?i)Subject Property`)
	subjectHeaderRe = regexp.MustCompile(`(?s)Subject Property.*?([\d\-]+[^\n]+)\s*-\s*([A-Za-z][^\n]+?)\n([A-Za-z][^,]+),\s*([A-Za-z]+)\s*-\s*([^\n]+?)\s*Neighborhood`)

	subjUnitsRe     = regexp.MustCompile(`No\.\s*of\s*Units:\s*(\d+)`)
	subjStoriesRe   = regexp.MustCompile(`Stories:\s*(\d+)`)
	subjAvgSizeRe   = regexp.MustCompile(`Avg\.\s*Unit\s*Size:\s*([\d,]+)\s*SF`)
	subjYearBuiltRe = regexp.MustCompile(`Year\s*Built:\s*(\d{4})`)
	subjParkingRe   = regexp.MustCompile(`Parking:\s*(\d+)\s*Spaces;\s*([\d.]+)\s*per\s*Unit`)
	subjRentTypeRe  = regexp.MustCompile(`Rent\s*Type:\s*([A-Za-z]+)`)
	subjPropTypeRe  = regexp.MustCompile(`Type:\s*([A-Za-z\s\-]+?)(?:\n|Rent)`)
	subjOwnerRe     = regexp.MustCompile(`OWNER\s*([^\n]+?)\n`)

	subjCurrentRentRe = regexp.MustCompile(`Current:\s*\$([\d,]+)\s*\$([\d.]+)\s*/SF`)
	subjLastQtrRentRe = regexp.MustCompile(`Last\s*Quarter:\s*\$([\d,]+)\s*\$([\d.]+)\s*/SF`)
	subjYearAgoRentRe = regexp.MustCompile(`Year\s*Ago:\s*\$([\d,]+)`)
	subjCompRentRe    = regexp.MustCompile(`Competitors:\s*\$([\d,]+)`)
	subjSubmktRentRe  = regexp.MustCompile(`Submarket:\s*\$([\d,]+)`)

	// Vacancy alternatives, most specific first.
	subjVacancyRes = []*regexp.Regexp{
		regexp.MustCompile(`(?si)VACANCY.*?Current:?\s*([\d.]+)\s*%\s*(\d+)\s*Units`),
		regexp.MustCompile(`(?si)VACANCY.*?Current:?\s*([\d.]+)%\s+(\d+)`),
		regexp.MustCompile(`(?si)VACANCY\s+Current:?\s*([\d.]+)\s*%`),
	}
	subjYearAgoVacRe = regexp.MustCompile(`(?s)VACANCY.*?Year\s*Ago:\s*([\d.]+)%`)
	subjCompVacRe    = regexp.MustCompile(`(?s)VACANCY.*?Competitors:\s*([\d.]+)%`)
	subjSubmktVacRe  = regexp.MustCompile(`(?s)VACANCY.*?Submarket:\s*([\d.]+)%`)

	subjAbsCurrentRe = regexp.MustCompile(`(?s)12 MONTH ABSORPTION.*?Current:\s*(\(?[\d,]+\)?|-?[\d,]+)\s*Units`)
	subjAbsCompRe    = regexp.MustCompile(`Competitor\s*Total:\s*(\(?[\d,]+\)?|-?[\d,]+)\s*Units`)
	subjAbsSubmktRe  = regexp.MustCompile(`Submarket\s*Total:\s*([\d,]+)\s*Units`)
)

// extractSubjectProperty reads the Subject Property one-pager. All fields
// are searched only within the section's bounds so competitor rows further
// into the report cannot shadow subject values.
func extractSubjectProperty(doc *pdftext.Document, rec model.Record) {
	start := 0
	if loc := subjectStartRe.FindStringIndex(doc.Text); loc != nil {
		start = loc[0]
	}

	// Section ends at the first major header after the subject block.
	end := len(doc.Text)
	searchFrom := start + 100
	if searchFrom > len(doc.Text) {
		searchFrom = len(doc.Text)
	}
	for _, header := range subjectSectionEnders {
		if loc := header.FindStringIndex(doc.Text[searchFrom:]); loc != nil {
			if candidate := searchFrom + loc[0]; candidate < end {
				end = candidate
			}
		}
	}
	section := doc.Text[start:end]

	set := func(field string, value any, page int) {
		rec.SetWithPage("subject_property", field, value, page)
	}

	if m, ok := searchAt(doc, section, start, subjectHeaderRe); ok {
		set("address", trimField(m.group(1)), m.page)
		set("property_name", trimField(m.group(2)), m.page)
		set("city", trimField(m.group(3)), m.page)
		set("state", trimField(m.group(4)), m.page)
		set("submarket_neighborhood", trimField(m.group(5)), m.page)
		zap.L().Info("extract: subject property",
			zap.String("name", trimField(m.group(2))),
			zap.Int("page", m.page),
		)
	}

	if m, ok := searchAt(doc, section, start, subjUnitsRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("units", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjStoriesRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("stories", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjAvgSizeRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("avg_unit_size", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjYearBuiltRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("year_built", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjParkingRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("parking_spaces", v, m.page)
		}
		if v, ok := parseFloat(m.group(2)); ok {
			set("parking_ratio", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjRentTypeRe); ok {
		set("rent_type", trimField(m.group(1)), m.page)
	}
	if m, ok := searchAt(doc, section, start, subjPropTypeRe); ok {
		set("property_type", trimField(m.group(1)), m.page)
	}
	if m, ok := searchAt(doc, section, start, subjOwnerRe); ok {
		set("owner", trimField(m.group(1)), m.page)
	}

	// Asking rents.
	if m, ok := searchAt(doc, section, start, subjCurrentRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("current_rent_per_unit", v, m.page)
		}
		if v, ok := parseFloat(m.group(2)); ok {
			set("current_rent_psf", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjLastQtrRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("last_quarter_rent_per_unit", v, m.page)
		}
		if v, ok := parseFloat(m.group(2)); ok {
			set("last_quarter_rent_psf", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjYearAgoRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("year_ago_rent", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjCompRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("competitor_rent", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjSubmktRentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("submarket_rent", v, m.page)
		}
	}

	// Vacancy block.
	if m, ok := firstMatch(doc, section, start, subjVacancyRes); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("current_vacancy", v, m.page)
		}
		if m.group(2) != "" {
			if v, ok := parseInt(m.group(2)); ok {
				set("current_vacant_units", v, m.page)
			}
		}
		zap.L().Info("extract: subject vacancy",
			zap.String("pct", m.group(1)),
			zap.Int("page", m.page),
		)
	}
	if m, ok := searchAt(doc, section, start, subjYearAgoVacRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("year_ago_vacancy", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjCompVacRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("competitor_vacancy", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjSubmktVacRe); ok {
		if v, ok := parseFloat(m.group(1)); ok {
			set("submarket_vacancy", v, m.page)
		}
	}

	// 12 month absorption. Parenthesized counts are accounting negatives.
	if m, ok := searchAt(doc, section, start, subjAbsCurrentRe); ok {
		if v, ok := parseAccountingInt(m.group(1)); ok {
			set("absorption_12mo_current", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjAbsCompRe); ok {
		if v, ok := parseAccountingInt(m.group(1)); ok {
			set("absorption_12mo_competitor_total", v, m.page)
		}
	}
	if m, ok := searchAt(doc, section, start, subjAbsSubmktRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("absorption_12mo_submarket", v, m.page)
		}
	}
}

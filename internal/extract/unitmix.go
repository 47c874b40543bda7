package extract

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	allBedMarkers = map[int]*regexp.Regexp{
		0: regexp.MustCompile(`(?i)All\s*Studios`),
		1: regexp.MustCompile(`(?i)All\s*1\s*Beds?`),
		2: regexp.MustCompile(`(?i)All\s*2\s*Beds?`),
		3: regexp.MustCompile(`(?i)All\s*3\s*Beds?`),
		4: regexp.MustCompile(`(?i)All\s*4\s*Beds?`),
	}

	// Fallback bedroom detection from raw table rows when the Totals
	// section carries no "All X Beds" markers.
	bedRowProbeRe = regexp.MustCompile(`(?:^|\s)(\d)\s+[\d.]+\s+[\d,]+\s+\d+\s+[\d.]+%`)

	// Detail row: Bed Bath AvgSF Units Mix% Avail Avail% $Rent $PSF $Rent $PSF Conc%
	unitMixRowRe = regexp.MustCompile(`(\d)\s+([\d.]+)\s+([\d,]+)\s+(\d+)\s+([\d.]+)%\s+(\d+)\s+([\d.]+)%\s+\$\s*([\d,]+)\s+\$\s*([\d.]+)\s+\$\s*([\d,]+)\s+\$\s*([\d.]+)\s+([\d.]+)%`)

	// Same row with the whitespace collapsed away, as some text backends
	// concatenate the columns.
	unitMixRowTightRe = regexp.MustCompile(`(\d)([\d.]+)([\d,]+)(\d+)([\d.]+)%([\d]+)([\d.]+)%\$?([\d,]+)\$?([\d.]+)\$?([\d,]+)\$?([\d.]+)([\d.]+)%`)
)

// extractUnitMix reads the subject property's unit mix table. Bedroom-type
// eligibility comes from page-1 "All N Beds" markers only, so comparable
// properties deeper in the report cannot add phantom bedroom types. Detail
// rows are scanned on pages 1-2 because the table may spill over.
func extractUnitMix(doc *pdftext.Document) ([]model.UnitMixEntry, int) {
	page1 := doc.PageText(1)
	pages12 := page1 + doc.PageText(2)

	eligible := make(map[int]bool)
	for beds, re := range allBedMarkers {
		if re.MatchString(page1) {
			eligible[beds] = true
		}
	}
	if len(eligible) == 0 {
		for _, m := range bedRowProbeRe.FindAllStringSubmatch(page1, 5) {
			if beds, ok := parseInt(m[1]); ok {
				eligible[beds] = true
			}
		}
	}

	rows := unitMixRowRe.FindAllStringSubmatchIndex(pages12, -1)
	tight := false
	if len(rows) == 0 {
		rows = unitMixRowTightRe.FindAllStringSubmatchIndex(pages12, -1)
		tight = true
	}
	if len(rows) == 0 {
		return nil, 0
	}

	// Page attribution: the table begins on page 1; rows past the end of
	// the page-1 text are on page 2.
	firstPage := 1
	if rows[0][0] >= len(page1) {
		firstPage = 2
	}

	seen := make(map[int]bool)
	var mix []model.UnitMixEntry
	for _, idx := range rows {
		g := func(n int) string { return pages12[idx[n*2]:idx[n*2+1]] }

		beds, ok := parseInt(g(1))
		if !ok {
			continue
		}
		if len(eligible) > 0 && !eligible[beds] {
			continue
		}
		if seen[beds] {
			continue
		}
		seen[beds] = true

		entry := model.UnitMixEntry{Bedrooms: beds, SourcePage: firstPage}
		if idx[0] >= len(page1) {
			entry.SourcePage = 2
		}
		entry.Bathrooms, _ = parseFloat(g(2))
		entry.AvgSF, _ = parseInt(g(3))
		entry.Units, _ = parseInt(g(4))
		entry.MixPct, _ = parseFloat(g(5))
		entry.AvailableUnits, _ = parseInt(g(6))
		entry.AvailablePct, _ = parseFloat(g(7))
		if v, ok := parseInt(g(8)); ok {
			entry.AskingRentUnit = float64(v)
		}
		entry.AskingRentSF, _ = parseFloat(g(9))
		if v, ok := parseInt(g(10)); ok {
			entry.EffectiveRentUnit = float64(v)
		}
		entry.EffectiveRentSF, _ = parseFloat(g(11))
		entry.ConcessionPct, _ = parseFloat(g(12))
		mix = append(mix, entry)

		if len(eligible) > 0 && len(seen) >= len(eligible) {
			break
		}
	}

	if len(mix) > 0 {
		beds := make([]int, 0, len(mix))
		for _, u := range mix {
			beds = append(beds, u.Bedrooms)
		}
		zap.L().Info("extract: unit mix", zap.Ints("bedroom_types", beds), zap.Bool("tight_format", tight))
	}

	return mix, firstPage
}

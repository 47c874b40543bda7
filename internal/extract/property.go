package extract

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	propUnitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*Unit\s*Apartment`),
		regexp.MustCompile(`Units\s+(\d+)`),
		regexp.MustCompile(`(\d+)\s*(?:Units|units)`),
	}
	propYearBuiltRe    = regexp.MustCompile(`(?i)Year Built:\s*(\d{4})`)
	propYearPatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Built\s+(\d{4})`),
		regexp.MustCompile(`(?i)(\d{4})\s+(?:Year Built|Yr Built)`),
	}
	propSubjectVacRe   = regexp.MustCompile(`(?s)Subject Property.*?Vacancy\s*([\d.]+)%`)
	propStoriesRe      = regexp.MustCompile(`Stories\s+(\d+)`)
	propLandAreaRe     = regexp.MustCompile(`(?i)Land\s*(?:Area)?[:\s]*([\d.]+)\s*(?:AC|Acres?)`)
	propAvgSizeRe      = regexp.MustCompile(`Average Unit Size\s*([\d,]+)\s*SF`)
	propConstructionRe = regexp.MustCompile(`(?i)Construction\s*(?:Type)?[:\s]+([A-Za-z]+(?:\s+Frame)?)`)
	propBuildingsRe    = regexp.MustCompile(`(?i)(?:Number\s+of\s+Buildings|Buildings)\s*:\s*(\d+)`)
	propParkingRe      = regexp.MustCompile(`([\d.]+)/Unit;\s*(\d+)\s*Surface Spaces;\s*(\d+)\s*Covered Spaces`)
)

// streetSuffixes covers the street types CoStar prints in comp tables,
// including Tfwy (Trafficway) and numbered streets.
const streetSuffixes = `(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Tfwy|Pkwy|Cir|Pl|Hwy|Loop|Pky)`

// extractProperty builds the property category. Subject-property values
// extracted earlier take priority over whole-document pattern fallbacks.
func extractProperty(doc *pdftext.Document, rec model.Record) {
	prop := rec.EnsureCategory("property")
	set := func(field string, value any, page int) {
		rec.SetWithPage("property", field, value, page)
	}

	// Prefer the clean Subject Property one-pager values.
	copyFromSubject(rec, "units", "units")
	copyFromSubject(rec, "stories", "stories")
	copyFromSubject(rec, "avg_unit_size", "avg_unit_size")
	copyFromSubject(rec, "year_built", "vintage")
	copyFromSubject(rec, "parking_ratio", "parking_ratio")
	copyFromSubject(rec, "parking_spaces", "parking_spaces")

	if _, ok := prop["units"]; !ok {
		if m, ok := firstMatch(doc, doc.Text, 0, propUnitPatterns); ok {
			if units, pok := parseInt(m.group(1)); pok && units >= 10 && units <= 2000 {
				set("units", units, m.page)
			}
		}
	}

	// Vintage: the rent comp summary row for the subject carries the year
	// concatenated onto the street address, keyed by our unit count.
	if _, ok := prop["vintage"]; !ok {
		if units, uok := prop["units"].(int); uok {
			re := regexp.MustCompile(fmt.Sprintf(`(?i)%d\s+[\d,]+.*?%s(\d{4})`, units, streetSuffixes))
			if m, ok := searchDoc(doc, re); ok {
				if year, pok := parseInt(m.group(1)); pok && year >= 1950 && year <= 2025 {
					set("vintage", year, m.page)
				}
			}
		}
	}
	if _, ok := prop["vintage"]; !ok {
		if m, ok := searchDoc(doc, propYearBuiltRe); ok {
			if year, pok := parseInt(m.group(1)); pok && year >= 1950 && year <= 2025 {
				set("vintage", year, m.page)
			}
		}
	}
	if _, ok := prop["vintage"]; !ok {
		if m, ok := firstMatch(doc, doc.Text, 0, propYearPatterns); ok {
			if year, pok := parseInt(m.group(1)); pok && year >= 1960 && year <= 2025 {
				set("vintage", year, m.page)
			}
		}
	}

	// Vacancy: the VACANCY block on the subject page is authoritative; the
	// whole-document regex is a last resort.
	if sp := rec.Category("subject_property"); sp != nil {
		if v, ok := sp["current_vacancy"]; ok {
			set("vacancy_rate", v, rec.PageFor("subject_property", "current_vacancy"))
			zap.L().Info("extract: vacancy from subject property section",
				zap.Any("pct", v),
				zap.Int("page", rec.PageFor("subject_property", "current_vacancy")),
			)
		}
	}
	if _, ok := prop["vacancy_rate"]; !ok {
		if m, ok := searchDoc(doc, propSubjectVacRe); ok {
			if v, pok := parseFloat(m.group(1)); pok {
				set("vacancy_rate", v, m.page)
			}
		}
	}

	if _, ok := prop["stories"]; !ok {
		if units, uok := prop["units"].(int); uok {
			re := regexp.MustCompile(fmt.Sprintf(`(?i)%d\s*Units\s*/\s*(\d+)\s*Stor`, units))
			if m, ok := searchDoc(doc, re); ok {
				if v, pok := parseInt(m.group(1)); pok {
					set("stories", v, m.page)
				}
			}
		}
	}
	if _, ok := prop["stories"]; !ok {
		if m, ok := searchDoc(doc, propStoriesRe); ok {
			if v, pok := parseInt(m.group(1)); pok {
				set("stories", v, m.page)
			}
		}
	}

	if _, ok := prop["avg_unit_size"]; !ok {
		if units, uok := prop["units"].(int); uok {
			re := regexp.MustCompile(fmt.Sprintf(`%d\s+([\d,]+)\s+[-$]`, units))
			if m, ok := searchDoc(doc, re); ok {
				if sf, pok := parseInt(m.group(1)); pok && sf >= 400 && sf <= 2000 {
					set("avg_unit_size", sf, m.page)
				}
			}
		}
	}
	if _, ok := prop["avg_unit_size"]; !ok {
		if m, ok := searchDoc(doc, propAvgSizeRe); ok {
			if v, pok := parseInt(m.group(1)); pok {
				set("avg_unit_size", v, m.page)
			}
		}
	}

	if m, ok := searchDoc(doc, propLandAreaRe); ok {
		if v, pok := parseFloat(m.group(1)); pok {
			set("land_area_acres", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, propConstructionRe); ok {
		set("construction_type", trimField(m.group(1)), m.page)
	}
	if m, ok := searchDoc(doc, propBuildingsRe); ok {
		if v, pok := parseInt(m.group(1)); pok {
			set("number_of_buildings", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, propParkingRe); ok {
		if v, pok := parseFloat(m.group(1)); pok {
			set("parking_ratio", v, m.page)
		}
		if v, pok := parseInt(m.group(2)); pok {
			set("parking_surface_spaces", v, m.page)
		}
		if v, pok := parseInt(m.group(3)); pok {
			set("parking_covered_spaces", v, m.page)
		}
	}

	if mix, page := extractUnitMix(doc); len(mix) > 0 {
		prop["unit_mix"] = mix
		attachUnitMixSummaries(rec, mix, page)
	}

	if amenities := extractAmenitySection(doc); amenities != nil {
		prop["amenities"] = amenities
	}
}

// copyFromSubject carries one field from subject_property into property,
// preserving its page provenance.
func copyFromSubject(rec model.Record, srcField, dstField string) {
	sp := rec.Category("subject_property")
	if sp == nil {
		return
	}
	v, ok := sp[srcField]
	if !ok {
		return
	}
	rec.SetWithPage("property", dstField, v, rec.PageFor("subject_property", srcField))
}

// attachUnitMixSummaries derives the per-bedroom rent and unit-count lookup
// maps the mapper addresses by dotted path.
func attachUnitMixSummaries(rec model.Record, mix []model.UnitMixEntry, page int) {
	rents := make(map[string]any)
	counts := make(map[string]any)
	labels := map[int]string{0: "studio", 1: "bed_1", 2: "bed_2", 3: "bed_3"}
	for _, entry := range mix {
		label, ok := labels[entry.Bedrooms]
		if !ok {
			continue
		}
		rents[label] = entry.AskingRentUnit
		counts[label] = entry.Units
		rec.SetPage("property", "unit_mix_rents."+label, page)
		rec.SetPage("property", "unit_counts."+label, page)
	}
	prop := rec.EnsureCategory("property")
	if len(rents) > 0 {
		prop["unit_mix_rents"] = rents
	}
	if len(counts) > 0 {
		prop["unit_counts"] = counts
	}
}

// Package datainputs realizes the canonical field catalog as ordered Data
// Inputs sheet rows, with per-field source attribution and stable cell
// references for downstream formulas.
package datainputs

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
)

// SheetName is the tab every other sheet references.
const SheetName = "Data Inputs"

// startRow is the first catalog row; rows 1-3 hold the sheet title.
const startRow = 4

// Mapper walks the field catalog against a screening record.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapToDataInputs resolves every catalog field against the record and the
// property configuration. Rows with no resolvable value are skipped but
// their row slot is still consumed, so cell references stay stable no
// matter how complete a run is.
func (m *Mapper) MapToDataInputs(rec model.Record, cfg map[string]any) []model.DataInputRow {
	combined := make(model.Record, len(rec)+1)
	for k, v := range rec {
		combined[k] = v
	}
	combined["config"] = cfg

	var rows []model.DataInputRow
	currentRow := startRow
	currentSection := ""

	for _, def := range fieldCatalog {
		if def.Section != currentSection {
			// Section header plus blank row.
			currentRow += 2
			currentSection = def.Section
		}

		if def.Path != "" {
			value, source, ok := resolveField(combined, def.Path)
			if ok {
				rows = append(rows, model.DataInputRow{
					Row:         currentRow,
					Field:       def.Name,
					Value:       value,
					Source:      source,
					Description: def.Description,
				})
			}
		}
		currentRow++
	}

	zap.L().Info("datainputs: catalog mapped",
		zap.Int("fields", len(fieldCatalog)),
		zap.Int("resolved", len(rows)))
	return rows
}

// CellReferences replays the catalog walk without data, yielding the value
// cell for every field. No two fields ever share a cell.
func (m *Mapper) CellReferences() map[string]string {
	refs := make(map[string]string, len(fieldCatalog))
	currentRow := startRow
	currentSection := ""

	for _, def := range fieldCatalog {
		if def.Section != currentSection {
			currentRow += 2
			currentSection = def.Section
		}
		refs[def.Name] = fmt.Sprintf("C%d", currentRow)
		currentRow++
	}
	return refs
}

// FormulaMappings pre-authors the formulas a downstream sheet uses to pull
// each field's value (column C) and source (column D) out of this sheet.
func (m *Mapper) FormulaMappings() []model.FormulaMapping {
	refs := m.CellReferences()

	mappings := make([]model.FormulaMapping, 0, len(fieldCatalog))
	for _, def := range fieldCatalog {
		ref := refs[def.Name]
		mappings = append(mappings, model.FormulaMapping{
			Field:         def.Name,
			ValueFormula:  fmt.Sprintf("='%s'!%s", SheetName, ref),
			SourceFormula: fmt.Sprintf("='%s'!D%s", SheetName, ref[1:]),
		})
	}
	return mappings
}

// resolveField reads a dotted path out of the record and derives its source
// descriptor. Formula literals echo the formula with a readable explanation
// instead of touching the record.
func resolveField(rec model.Record, path string) (any, model.Source, bool) {
	if formula, ok := strings.CutPrefix(path, "formula:"); ok {
		explanation := strings.NewReplacer(
			"=", "", "*", " × ",
			"C12", "[Units]", "C16", "[Avg SF]",
		).Replace(formula)
		return formula, model.Source{Label: "Formula: " + explanation}, true
	}

	value, found := rec.Get(path)
	if !found || value == nil || value == "" {
		return nil, model.Source{}, false
	}

	return value, sourceFor(rec, path), true
}

var sourceLabels = map[string]string{
	"config":           "Config",
	"property":         "CoStar Property",
	"demographics":     "CoStar Demographics",
	"market":           "CoStar Submarket",
	"submarket":        "CoStar Submarket",
	"employment":       "CoStar Economy",
	"rent_comps":       "CoStar Rent Comps",
	"sale_comps":       "CoStar Sale Comps",
	"web_demographics": "Web Scraping",
	"calculated":       "Auto-Generated",
	"stage2_scores":    "Calculated",
}

// sourceFor builds the source descriptor for a resolved path: the category
// label, a page number from extraction provenance when one was recorded,
// and provider-specific overrides for web-sourced fields.
func sourceFor(rec model.Record, path string) model.Source {
	parts := strings.Split(path, ".")
	category := parts[0]
	fieldKey := parts[len(parts)-1]

	label, ok := sourceLabels[category]
	if !ok {
		label = category
	}

	page := 0
	switch category {
	case "market", "submarket":
		page = rec.PageFor("market", fieldKey)
	case "property":
		if strings.Contains(path, "unit_mix_rents") {
			page = rec.PageFor("property", strings.Join(parts[1:], "."))
			if page == 0 {
				page = rec.PageFor("property", fieldKey)
			}
		} else {
			page = rec.PageFor("property", fieldKey)
		}
	case "subject_property", "demographics", "rent_comps", "sale_comps":
		page = rec.PageFor(category, fieldKey)
	case "employment":
		// All employment fields come off the same Economy page.
		page = rec.PageFor("employment", "employment")
	}
	if page > 0 {
		label = fmt.Sprintf("%s (pg %d)", label, page)
	}

	src := model.Source{Label: label}
	switch {
	case category == "web_demographics":
		applyWebSource(rec, path, &src)
	case category == "stage2_scores" && strings.Contains(path, "employer_stability"):
		src.Label = employerStabilityLabel(path)
	}
	return src
}

// applyWebSource swaps the generic Web Scraping label for the concrete
// provider, attaching a verification URL when the provider recorded one.
func applyWebSource(rec model.Record, path string, src *model.Source) {
	web := rec.Category("web_demographics")

	switch {
	case strings.Contains(path, "school"):
		if ratings, ok := web["school_ratings"].(map[string]any); ok {
			if s, ok := ratings["source"].(string); ok && s != "" {
				src.Label = s
			}
			if u, ok := ratings["source_url"].(string); ok && u != "" {
				src.URL = u
			}
		}
	case strings.Contains(path, "crime"):
		src.Label = "BestPlaces.net"
		if crime, ok := web["crime_data"].(map[string]any); ok {
			if u, ok := crime["source_url"].(string); ok && u != "" {
				src.URL = u
			}
		}
	case strings.Contains(path, "walk"):
		src.Label = "Walk Score"
		if walk, ok := web["walkability"].(map[string]any); ok {
			if s, ok := walk["source"].(string); ok && s != "" {
				src.Label = s
			}
		}
	case strings.Contains(path, "transit"):
		if transit, ok := web["transit_score"].(map[string]any); ok {
			if s, ok := transit["source"].(string); ok && s != "" {
				src.Label = s
			}
		}
	case strings.Contains(path, "flood"):
		src.Label = "FEMA API"
		if u, ok := web["flood_source_url"].(string); ok && u != "" {
			src.URL = u
		}
	case strings.Contains(path, "home_ownership"), strings.Contains(path, "renter_occupied"):
		src.Label = "Census API"
	}
}

// employerStabilityLabel names the concrete upstream API for each employer
// stability field instead of the generic Calculated label.
func employerStabilityLabel(path string) string {
	switch {
	case strings.Contains(path, "county_fips"),
		strings.Contains(path, "county_name"),
		strings.HasSuffix(path, ".state"):
		return "FCC Census API"
	case strings.Contains(path, "rri"),
		strings.Contains(path, "concentration_adj"),
		strings.Contains(path, "final_score"),
		strings.Contains(path, "base_score"):
		return "Calculated (BLS)"
	default:
		return "BLS QCEW API"
	}
}

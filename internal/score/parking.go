package score

import (
	"fmt"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// scoreParking rates parking spaces per unit against a suburban workforce
// housing target of 1:1 or better. Fields fall back from the property
// report to the subject-property page; zero is a valid value so only
// absence triggers a fallback.
func (c *Calculator) scoreParking(rec model.Record) map[string]any {
	prop := category(rec, "property")
	subject := category(rec, "subject_property")

	ratio, hasRatio := numFrom("parking_ratio", prop, subject)
	spaces, hasSpaces := numFrom("parking_spaces", prop, subject)
	units, hasUnits := numFrom("units", prop, subject)
	surface, hasSurface := numFrom("parking_surface_spaces", prop, subject)
	covered, hasCovered := numFrom("parking_covered_spaces", prop, subject)

	result := map[string]any{
		"parking_ratio":       nil,
		"parking_spaces":      nil,
		"surface_spaces":      nil,
		"covered_spaces":      nil,
		"units":               nil,
		"base_score":          nil,
		"underground_penalty": 0,
		"final_score":         nil,
		"notes":               nil,
	}
	if hasRatio {
		result["parking_ratio"] = ratio
	}
	if hasSpaces {
		result["parking_spaces"] = spaces
	}
	if hasSurface {
		result["surface_spaces"] = surface
	}
	if hasCovered {
		result["covered_spaces"] = covered
	}
	if hasUnits {
		result["units"] = units
	}

	if !hasRatio {
		result["notes"] = "No parking ratio data"
		return result
	}

	var notes []string
	var base int
	switch {
	case ratio >= 2.0:
		base = 10
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Excellent (>=2.0)", ratio))
	case ratio >= 1.5:
		base = 9
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Very Good (1.5-2.0)", ratio))
	case ratio >= 1.25:
		base = 8
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Good (1.25-1.5)", ratio))
	case ratio >= 1.0:
		base = 7
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Adequate (1.0-1.25)", ratio))
	case ratio >= 0.75:
		base = 5
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Limited (0.75-1.0)", ratio))
	case ratio >= 0.5:
		base = 3
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Poor (0.5-0.75)", ratio))
	default:
		base = 2
		notes = append(notes, fmt.Sprintf("%v:1 ratio - Insufficient (<0.5)", ratio))
	}
	result["base_score"] = base

	penalty := 0
	if hasSurface && hasCovered {
		if surface == 0 && covered > 0 {
			penalty = -1
			notes = append(notes, "Underground-only (-1)")
		} else if surface > 0 {
			notes = append(notes, fmt.Sprintf("%v surface + %v covered", surface, covered))
		}
	}
	result["underground_penalty"] = penalty

	result["final_score"] = clamp110(base + penalty)
	result["notes"] = strings.Join(notes, " | ")
	return result
}

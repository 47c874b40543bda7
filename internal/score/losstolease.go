package score

import (
	"fmt"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// scoreLossToLease blends the subject rent's gap to the comp average (60%)
// and to the submarket average (40%). Negative loss-to-lease means the
// subject sits below market and has room to push rents.
func (c *Calculator) scoreLossToLease(rec model.Record) map[string]any {
	rentComps := category(rec, "rent_comps")
	subject := category(rec, "subject_property")
	demographics := category(rec, "demographics")

	subjectRent, hasSubject := num(rentComps, "subject_current_rent")
	if !hasSubject || subjectRent == 0 {
		subjectRent, hasSubject = numNonZero("current_rent_per_unit", subject)
	}
	compRent, hasComp := num(rentComps, "avg_comp_rent_per_unit")
	if !hasComp || compRent == 0 {
		compRent, hasComp = numNonZero("competitor_avg_rent", demographics)
	}
	submarketRent, hasSubmarket := num(rentComps, "submarket_avg_rent")
	if !hasSubmarket || submarketRent == 0 {
		submarketRent, hasSubmarket = numNonZero("submarket_avg_rent", demographics)
	}

	result := map[string]any{
		"subject_rent":         nil,
		"comp_avg_rent":        nil,
		"submarket_rent":       nil,
		"ltl_vs_comps_pct":     nil,
		"ltl_vs_submarket_pct": nil,
		"blended_ltl_pct":      nil,
		"final_score":          nil,
		"notes":                nil,
	}
	if hasSubject {
		result["subject_rent"] = subjectRent
	}
	if hasComp {
		result["comp_avg_rent"] = compRent
	}
	if hasSubmarket {
		result["submarket_rent"] = submarketRent
	}

	type weighted struct {
		value  float64
		weight float64
	}
	var parts []weighted
	var notes []string

	if hasSubject && hasComp && compRent > 0 {
		ltl := (subjectRent - compRent) / compRent * 100
		result["ltl_vs_comps_pct"] = round1(ltl)
		parts = append(parts, weighted{ltl, 0.6})
		notes = append(notes, fmt.Sprintf("vs Comps: %+.1f%%", ltl))
	} else {
		notes = append(notes, "No comp rent data")
	}

	if hasSubject && hasSubmarket && submarketRent > 0 {
		ltl := (subjectRent - submarketRent) / submarketRent * 100
		result["ltl_vs_submarket_pct"] = round1(ltl)
		parts = append(parts, weighted{ltl, 0.4})
		notes = append(notes, fmt.Sprintf("vs Submarket: %+.1f%%", ltl))
	} else {
		notes = append(notes, "No submarket rent data")
	}

	if len(parts) == 0 {
		result["notes"] = "Missing rent data for LTL calculation"
		return result
	}

	var blended float64
	if len(parts) == 2 {
		for _, p := range parts {
			blended += p.value * p.weight
		}
	} else {
		blended = parts[0].value
	}
	result["blended_ltl_pct"] = round1(blended)

	var score int
	switch {
	case blended <= -20:
		score = 10
	case blended <= -15:
		score = 9
	case blended <= -10:
		score = 8
	case blended <= -5:
		score = 7
	case blended <= -2.5:
		score = 6
	case blended <= 2.5:
		score = 5
	case blended <= 5:
		score = 4
	case blended <= 10:
		score = 3
	case blended <= 15:
		score = 2
	case blended <= 20:
		score = 1
	default:
		score = 0
	}
	result["final_score"] = score
	notes = append(notes, fmt.Sprintf("Blended: %+.1f%%", blended))

	result["notes"] = strings.Join(notes, " | ")
	return result
}

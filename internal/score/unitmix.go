package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// scoreUnitMix averages a size sub-score (average unit SF) with a mix
// sub-score (share of 2-3 bedroom units, the workforce family segment).
func (c *Calculator) scoreUnitMix(rec model.Record) map[string]any {
	prop := category(rec, "property")
	subject := category(rec, "subject_property")

	avgSF, hasSF := numNonZero("avg_unit_size", prop, subject)
	totalUnits, hasUnits := numNonZero("units", prop, subject)

	result := map[string]any{
		"total_units":  nil,
		"avg_sf":       nil,
		"units_2_3_br": nil,
		"pct_2_3_br":   nil,
		"size_score":   nil,
		"mix_score":    nil,
		"final_score":  nil,
		"notes":        nil,
	}
	if hasUnits {
		result["total_units"] = totalUnits
	}
	if hasSF {
		result["avg_sf"] = avgSF
	}

	var subs []int
	var notes []string

	if hasSF {
		var s int
		switch {
		case avgSF >= 1000:
			s = 10
		case avgSF >= 900:
			s = 8
		case avgSF >= 800:
			s = 6
		case avgSF >= 700:
			s = 4
		default:
			s = 2
		}
		result["size_score"] = s
		subs = append(subs, s)
		notes = append(notes, fmt.Sprintf("Size: %vsf (%d)", avgSF, s))
	} else {
		notes = append(notes, "No avg SF data")
	}

	mix := unitMixEntries(prop["unit_mix"])
	if len(mix) > 0 {
		units23 := 0
		totalFromMix := 0
		for _, u := range mix {
			totalFromMix += u.Units
			if u.Bedrooms == 2 || u.Bedrooms == 3 {
				units23 += u.Units
			}
		}
		result["units_2_3_br"] = units23

		if totalFromMix > 0 {
			pct := float64(units23) / float64(totalFromMix) * 100
			result["pct_2_3_br"] = round1(pct)
			var s int
			switch {
			case pct >= 70:
				s = 10
			case pct >= 60:
				s = 8
			case pct >= 50:
				s = 6
			case pct >= 40:
				s = 4
			default:
				s = 3
			}
			result["mix_score"] = s
			subs = append(subs, s)
			notes = append(notes, fmt.Sprintf("Mix: %.0f%% 2-3BR (%d)", pct, s))
		} else {
			notes = append(notes, "No unit count in mix")
		}
	} else {
		notes = append(notes, "No unit mix data")
	}

	if len(subs) > 0 {
		sum := 0
		for _, s := range subs {
			sum += s
		}
		result["final_score"] = int(math.RoundToEven(float64(sum) / float64(len(subs))))
	}

	result["notes"] = strings.Join(notes, " | ")
	return result
}

// unitMixEntries tolerates both native entries and the generic maps a JSON
// round trip produces.
func unitMixEntries(v any) []model.UnitMixEntry {
	switch mix := v.(type) {
	case []model.UnitMixEntry:
		return mix
	case []any:
		var out []model.UnitMixEntry
		for _, item := range mix {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			var entry model.UnitMixEntry
			if beds, ok := num(m, "bedrooms"); ok {
				entry.Bedrooms = int(beds)
			}
			if units, ok := num(m, "units"); ok {
				entry.Units = int(units)
			}
			out = append(out, entry)
		}
		return out
	}
	return nil
}

package score

import (
	"fmt"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// The nuisance, climate risk, and employer stability components relay the
// web-sourced checker results into the score set. Counts and sub-scores are
// carried through so the spreadsheet can reweight them without a rerun.

func (c *Calculator) scoreNuisance(rec model.Record) map[string]any {
	webDemo := category(rec, "web_demographics")
	data, _ := webDemo["nuisance_data"].(map[string]any)

	result := map[string]any{
		"source":           "OpenStreetMap/Overpass API",
		"severe_count":     0,
		"industrial_count": 0,
		"moderate_count":   0,
		"minor_count":      0,
		"nuisances_list":   nil,
		"python_score":     nil,
		"notes":            nil,
	}

	if errMsg, failed := checkerError(data, "No nuisance data"); failed {
		result["notes"] = fmt.Sprintf("Nuisance check unavailable: %s", errMsg)
		return result
	}

	for _, key := range []string{"severe_count", "industrial_count", "moderate_count", "minor_count"} {
		if v, ok := num(data, key); ok {
			result[key] = int(v)
		}
	}

	if nuisances, ok := data["nuisances"].([]any); ok && len(nuisances) > 0 {
		var items []string
		for _, raw := range nuisances {
			n, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name, _ := n["name"].(string)
			ntype, _ := n["type"].(string)
			if ntype == "" {
				ntype = "unknown"
			}
			if name != "" && name != "Unnamed" {
				items = append(items, fmt.Sprintf("%s (%s)", ntype, name))
			} else {
				items = append(items, ntype)
			}
		}
		result["nuisances_list"] = strings.Join(items, ", ")
	} else {
		result["nuisances_list"] = "None"
	}

	result["python_score"] = valueOr(data, "final_score", 10)
	result["notes"] = valueOr(data, "notes", "No nuisances detected")
	return result
}

func (c *Calculator) scoreClimateRisk(rec model.Record) map[string]any {
	webDemo := category(rec, "web_demographics")
	data, _ := webDemo["climate_risk_data"].(map[string]any)

	result := map[string]any{
		"source":                "FEMA + USDA + Open-Meteo",
		"flood_zone":            nil,
		"flood_zone_desc":       nil,
		"flood_is_sfha":         nil,
		"flood_score":           nil,
		"fire_burn_probability": nil,
		"fire_score":            nil,
		"heat_days":             nil,
		"heat_score":            nil,
		"cold_days":             nil,
		"cold_score":            nil,
		"final_score":           nil,
		"notes":                 nil,
	}

	if errMsg, failed := checkerError(data, "No climate data"); failed {
		result["notes"] = fmt.Sprintf("Climate check unavailable: %s", errMsg)
		return result
	}

	for _, key := range []string{
		"flood_zone", "flood_zone_desc", "flood_is_sfha", "flood_score",
		"fire_burn_probability", "fire_score",
		"heat_days", "heat_score", "cold_days", "cold_score",
		"final_score",
	} {
		if v, ok := data[key]; ok {
			result[key] = v
		}
	}
	result["notes"] = valueOr(data, "notes", "Climate data available")
	return result
}

func (c *Calculator) scoreEmployerStability(rec model.Record) map[string]any {
	webDemo := category(rec, "web_demographics")
	data, _ := webDemo["employer_stability_data"].(map[string]any)

	result := map[string]any{
		"source":              "BLS QCEW",
		"county_fips":         nil,
		"county_name":         nil,
		"state":               nil,
		"total_employment":    nil,
		"government_pct":      nil,
		"recession_proof_pct": nil,
		"essential_pct":       nil,
		"moderate_pct":        nil,
		"cyclical_pct":        nil,
		"rri":                 nil,
		"concentration_adj":   nil,
		"final_score":         nil,
		"notes":               nil,
	}

	if errMsg, failed := checkerError(data, "No employer data"); failed {
		result["notes"] = fmt.Sprintf("Employer stability unavailable: %s", errMsg)
		return result
	}

	for _, key := range []string{
		"county_fips", "county_name", "state", "total_employment",
		"government_pct", "recession_proof_pct", "essential_pct",
		"moderate_pct", "cyclical_pct", "rri", "concentration_adj",
		"final_score",
	} {
		if v, ok := data[key]; ok {
			result[key] = v
		}
	}
	result["notes"] = valueOr(data, "notes", "Employer data available")
	return result
}

// checkerError reports whether a web checker payload is missing or carries
// an error message.
func checkerError(data map[string]any, missing string) (string, bool) {
	if len(data) == 0 {
		return missing, true
	}
	if errMsg, ok := data["error"].(string); ok && errMsg != "" {
		return errMsg, true
	}
	return "", false
}

func valueOr(m map[string]any, key string, fallback any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return fallback
}

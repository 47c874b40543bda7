package score

import (
	"fmt"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// stateBusinessScores ranks the landlord and regulatory environment by
// state: rent control laws, eviction process, tenant protections, and
// general business tax burden.
var stateBusinessScores = map[string]int{
	// Very business friendly
	"TX": 10, "FL": 10, "TN": 10, "AZ": 10,
	// Business friendly
	"GA": 9, "NC": 9, "SC": 9, "NV": 9, "IN": 9,
	// Good
	"KS": 8, "MO": 8, "OH": 8, "UT": 8, "OK": 8, "AL": 8,
	// Above average
	"CO": 7, "ID": 7, "KY": 7, "AR": 7, "NE": 7, "LA": 7, "MS": 7,
	// Average
	"PA": 6, "MI": 6, "WI": 6, "VA": 6, "IA": 6, "MT": 6, "WY": 6, "SD": 6, "ND": 6,
	// Below average
	"IL": 5, "MN": 5, "NM": 5, "WV": 5, "AK": 5,
	// Less friendly
	"WA": 4, "MD": 4, "NH": 4, "DE": 4,
	// Challenging
	"MA": 3, "NJ": 3, "CT": 3, "HI": 3, "ME": 3,
	// Difficult
	"NY": 2, "VT": 2, "RI": 2,
	// Heavy regulation
	"CA": 1, "OR": 1, "DC": 1,
}

var stateNameToAbbrev = map[string]string{
	"TEXAS": "TX", "FLORIDA": "FL", "TENNESSEE": "TN", "ARIZONA": "AZ",
	"GEORGIA": "GA", "NORTH CAROLINA": "NC", "SOUTH CAROLINA": "SC",
	"NEVADA": "NV", "INDIANA": "IN", "KANSAS": "KS", "MISSOURI": "MO",
	"OHIO": "OH", "UTAH": "UT", "OKLAHOMA": "OK", "ALABAMA": "AL",
	"COLORADO": "CO", "IDAHO": "ID", "KENTUCKY": "KY", "ARKANSAS": "AR",
	"NEBRASKA": "NE", "LOUISIANA": "LA", "MISSISSIPPI": "MS",
	"PENNSYLVANIA": "PA", "MICHIGAN": "MI", "WISCONSIN": "WI",
	"VIRGINIA": "VA", "IOWA": "IA", "MONTANA": "MT", "WYOMING": "WY",
	"SOUTH DAKOTA": "SD", "NORTH DAKOTA": "ND", "ILLINOIS": "IL",
	"MINNESOTA": "MN", "NEW MEXICO": "NM", "WEST VIRGINIA": "WV",
	"ALASKA": "AK", "WASHINGTON": "WA", "MARYLAND": "MD",
	"NEW HAMPSHIRE": "NH", "DELAWARE": "DE", "MASSACHUSETTS": "MA",
	"NEW JERSEY": "NJ", "CONNECTICUT": "CT", "HAWAII": "HI", "MAINE": "ME",
	"NEW YORK": "NY", "VERMONT": "VT", "RHODE ISLAND": "RI",
	"CALIFORNIA": "CA", "OREGON": "OR", "DISTRICT OF COLUMBIA": "DC",
}

func (c *Calculator) scoreBusinessFriendly(rec model.Record) map[string]any {
	cfg := category(rec, "config")
	details, _ := cfg["property_details"].(map[string]any)
	state, _ := details["state"].(string)

	result := map[string]any{
		"state":       nil,
		"final_score": nil,
		"notes":       nil,
	}
	if state == "" {
		result["notes"] = "No state data available"
		return result
	}
	result["state"] = state

	stateUpper := strings.ToUpper(strings.TrimSpace(state))
	if len(stateUpper) > 2 {
		if abbrev, ok := stateNameToAbbrev[stateUpper]; ok {
			stateUpper = abbrev
		}
	}

	score, ok := stateBusinessScores[stateUpper]
	if !ok {
		result["notes"] = fmt.Sprintf("State %s not in lookup table", stateUpper)
		return result
	}

	result["final_score"] = score
	switch {
	case score >= 9:
		result["notes"] = fmt.Sprintf("%s: Very business-friendly (no rent control, easy eviction)", stateUpper)
	case score >= 7:
		result["notes"] = fmt.Sprintf("%s: Business-friendly environment", stateUpper)
	case score >= 5:
		result["notes"] = fmt.Sprintf("%s: Moderate regulatory environment", stateUpper)
	case score >= 3:
		result["notes"] = fmt.Sprintf("%s: Some tenant protections/regulations", stateUpper)
	default:
		result["notes"] = fmt.Sprintf("%s: Heavy regulation (rent control, strict tenant laws)", stateUpper)
	}
	return result
}

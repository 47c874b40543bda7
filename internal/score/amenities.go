package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// Point values per amenity. Each side of the checklist caps at five points
// so a resort-style amenity package cannot mask missing in-unit basics.
var siteAmenityPoints = []struct {
	name string
	pts  float64
}{
	{"Pool", 1.0},
	{"Fitness Center", 1.0},
	{"Clubhouse", 1.0},
	{"Business Center", 0.5},
	{"Playground", 0.5},
	{"Dog Park", 0.5},
	{"Concierge", 0.5},
	{"Property Manager on Site", 0.5},
	{"Basketball Court", 0.5},
	{"Tennis Court", 0.5},
	{"Sport Court", 0.5},
	{"Grill", 0.25},
	{"Picnic Area", 0.25},
}

var unitAmenityPoints = []struct {
	name string
	pts  float64
}{
	{"Washer/Dryer", 1.5},
	{"Washer/Dryer Hookup", 0.75},
	{"Air Conditioning", 1.0},
	{"Dishwasher", 0.5},
	{"Balcony", 0.5},
	{"Patio", 0.5},
	{"Walk-In Closets", 0.5},
	{"Fireplace", 0.5},
	{"Hardwood Floors", 0.5},
	{"Vaulted Ceiling", 0.25},
	{"Stainless Steel Appliances", 0.25},
	{"Granite Countertops", 0.25},
}

// scoreAmenities runs a points-based checklist over the extracted site and
// unit amenity lists.
func (c *Calculator) scoreAmenities(rec model.Record) map[string]any {
	prop := category(rec, "property")

	var site, unit []string
	if amenities, ok := prop["amenities"].(map[string][]string); ok {
		site = amenities["site"]
		unit = amenities["unit"]
	} else if amenities, ok := prop["amenities"].(map[string]any); ok {
		site = toStringSlice(amenities["site"])
		unit = toStringSlice(amenities["unit"])
	}

	result := map[string]any{
		"site_amenities": site,
		"unit_amenities": unit,
		"site_score":     0.0,
		"unit_score":     0.0,
		"site_matches":   []string{},
		"unit_matches":   []string{},
		"final_score":    nil,
		"notes":          nil,
	}

	if len(site) == 0 && len(unit) == 0 {
		result["notes"] = "No amenity data available"
		return result
	}

	sitePts, siteMatches := tallyAmenities(site, siteAmenityPoints)
	siteScore := round1(sitePts)
	if siteScore > 5 {
		// The cap is an integer ceiling, not a rounded point tally.
		siteScore = 5
		result["site_score"] = 5
	} else {
		result["site_score"] = siteScore
	}
	result["site_matches"] = siteMatches

	unitPts, unitMatches := tallyAmenities(unit, unitAmenityPoints)
	unitScore := round1(unitPts)
	if unitScore > 5 {
		unitScore = 5
		result["unit_score"] = 5
	} else {
		result["unit_score"] = unitScore
	}
	result["unit_matches"] = unitMatches

	result["final_score"] = clamp110(int(math.RoundToEven(siteScore + unitScore)))
	result["notes"] = fmt.Sprintf("Site: %v/5 (%d items) | Unit: %v/5 (%d items)",
		siteScore, len(siteMatches), unitScore, len(unitMatches))
	return result
}

// tallyAmenities matches case-insensitively on substrings; each amenity
// scores once against the first table entry it matches.
func tallyAmenities(amenities []string, table []struct {
	name string
	pts  float64
}) (float64, []string) {
	total := 0.0
	matches := []string{}
	for _, amenity := range amenities {
		lower := strings.ToLower(amenity)
		for _, entry := range table {
			if strings.Contains(lower, strings.ToLower(entry.name)) {
				total += entry.pts
				matches = append(matches, fmt.Sprintf("%s(%v)", amenity, entry.pts))
				break
			}
		}
	}
	return total, matches
}

func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

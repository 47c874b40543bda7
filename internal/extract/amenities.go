package extract

import (
	"regexp"
	"strings"

	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	siteAmenitySectionRe = regexp.MustCompile(`(?is)SITE\s+AMENITIES(.*?)UNIT\s+AMENITIES`)
	unitAmenitySectionRe = regexp.MustCompile(`(?is)UNIT\s+AMENITIES(.*?)(?:Updated|11/)`)

	siteAmenityKeywords = []string{
		"Basketball Court",
		"Business Center",
		"Clubhouse",
		"Concierge",
		"Fitness Center",
		"Laundry Facilities",
		"Playground",
		"Pool",
		"Property Manager on Site",
		"Tennis Court",
		"Dog Park",
		"Garage",
		"Package Room",
	}

	unitAmenityKeywords = []string{
		"Air Conditioning",
		"Balcony",
		"Dishwasher",
		"Disposal",
		"Fireplace",
		"Washer/Dryer",
		"Walk-In Closets",
		"Vaulted Ceiling",
		"Patio",
		"Hardwood Floors",
		"Stainless Steel Appliances",
	}
)

// extractAmenitySection pulls the site and unit amenity lists from the
// property report's amenity block. Only known keywords are kept; free-text
// leasing copy in the same section is ignored.
func extractAmenitySection(doc *pdftext.Document) map[string][]string {
	site := amenityKeywordsIn(doc.Text, siteAmenitySectionRe, siteAmenityKeywords)
	unit := amenityKeywordsIn(doc.Text, unitAmenitySectionRe, unitAmenityKeywords)
	if site == nil && unit == nil {
		return nil
	}
	return map[string][]string{
		"site": site,
		"unit": unit,
	}
}

func amenityKeywordsIn(text string, sectionRe *regexp.Regexp, keywords []string) []string {
	m := sectionRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	section := strings.ToLower(m[1])

	var found []string
	for _, kw := range keywords {
		if strings.Contains(section, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

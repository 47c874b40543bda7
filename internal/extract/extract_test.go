package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

const subjectPage = `Subject Property
12345 W 110th St - Fieldstone Apartments
Overland Park, Kansas - College Boulevard Neighborhood
No. of Units: 352
Stories: 3
Avg. Unit Size: 663 SF
Year Built: 1986
Parking: 528 Spaces; 1.5 per Unit
ASKING RENTS PER UNIT
Current: $1,151 $1.74 /SF
Year Ago: $1,176
Competitors: $1,314
Submarket: $1,350
VACANCY
Current: 5.4% 19 Units
Year Ago: 6.8%
Competitors: 6.7%
Submarket: 7.8%
12 MONTH ABSORPTION
Current: (5) Units
Competitor Total: 136 Units
Submarket Total: 131 Units
`

func TestExtractSubjectProperty(t *testing.T) {
	doc := pdftext.NewDocument("combined.pdf", []string{subjectPage, "DEMOGRAPHICS\nfiller"})
	rec := model.Record{}

	extractSubjectProperty(doc, rec)

	sp := rec.Category("subject_property")
	require.NotNil(t, sp)

	assert.Equal(t, "12345 W 110th St", sp["address"])
	assert.Equal(t, "Fieldstone Apartments", sp["property_name"])
	assert.Equal(t, "Overland Park", sp["city"])
	assert.Equal(t, "Kansas", sp["state"])
	assert.Equal(t, 352, sp["units"])
	assert.Equal(t, 3, sp["stories"])
	assert.Equal(t, 663, sp["avg_unit_size"])
	assert.Equal(t, 1986, sp["year_built"])
	assert.Equal(t, 528, sp["parking_spaces"])
	assert.Equal(t, 1.5, sp["parking_ratio"])
	assert.Equal(t, 1151, sp["current_rent_per_unit"])
	assert.Equal(t, 1.74, sp["current_rent_psf"])
	assert.Equal(t, 1314, sp["competitor_rent"])
	assert.Equal(t, 5.4, sp["current_vacancy"])
	assert.Equal(t, 19, sp["current_vacant_units"])
	assert.Equal(t, 6.7, sp["competitor_vacancy"])
	assert.Equal(t, 7.8, sp["submarket_vacancy"])

	// Parenthesized absorption counts are negative.
	assert.Equal(t, -5, sp["absorption_12mo_current"])
	assert.Equal(t, 136, sp["absorption_12mo_competitor_total"])
	assert.Equal(t, 131, sp["absorption_12mo_submarket"])

	assert.Equal(t, 1, rec.PageFor("subject_property", "units"))
}

func TestExtractSubjectPropertyBounded(t *testing.T) {
	// A vacancy block after the section's terminating header must not
	// shadow subject values.
	tail := "RENT COMPARABLES\nVACANCY\nCurrent: 99.9% 999 Units\n"
	doc := pdftext.NewDocument("combined.pdf", []string{subjectPage + tail})
	rec := model.Record{}

	extractSubjectProperty(doc, rec)

	assert.Equal(t, 5.4, rec.Category("subject_property")["current_vacancy"])
}

func TestExtractDemographics(t *testing.T) {
	page := `Med. HH Inc. (1 mi) $74,519
Competitors: $1,314
Submarket: $1,350
Year Ago: $1,176
Competitors: 6.7%
Submarket: 7.8%
Current: (5) Units
Competitor Total: 136 Units
Competitor Avg: 9.7 Units
Submarket Total: 131 Units
234,567 89,012 12,345 2024 Population
245,000 92,000 12,800 2029 Population
4.4% 3.2% (0.4%) Pop Growth
38 37 36 2024 Average Age
98,000 37,000 5,200 2024 Households
99,000 38,000 5,400 2029 Households
4.2% 3.1% 2.8% Household Growth
$85,000 $80,000 $74,519 Median Household Income
2.5 2.4 2.3 Average Household Size
2 2 2 Average HH Vehicles
$350,000 $320,000 $300,000 Median Home Value
1995 1990 1985 Median Year Built
`
	doc := pdftext.NewDocument("demographic.pdf", []string{page})
	rec := model.Record{}

	extractDemographics(doc, rec)

	demo := rec.Category("demographics")
	require.NotNil(t, demo)

	assert.Equal(t, 74519, demo["median_hh_income_1mi"])
	assert.Equal(t, 234567, demo["population_5mi_2024"])
	assert.Equal(t, 12345, demo["population_1mi_2024"])
	assert.Equal(t, 4.4, demo["population_growth_pct_5mi"])
	assert.Equal(t, -0.4, demo["population_growth_pct"], "parenthesized growth is negative")
	assert.Equal(t, 36, demo["avg_age_1mi"])
	assert.Equal(t, 5200, demo["households_1mi_2024"])
	assert.Equal(t, 2.8, demo["household_growth_pct"])
	assert.Equal(t, 2.3, demo["avg_household_size"])
	assert.Equal(t, 2, demo["avg_hh_vehicles"])
	assert.Equal(t, 300000, demo["median_home_value"])
	assert.Equal(t, 1985, demo["median_year_built_housing"])

	assert.Equal(t, -5, demo["absorption_12mo_property"])
	assert.Equal(t, 9.7, demo["absorption_12mo_competitor_avg"])
	assert.Equal(t, 6.7, demo["competitor_vacancy_rate"])
	assert.Equal(t, 1314, demo["competitor_avg_rent"])
}

func TestExtractUnitMixEligibility(t *testing.T) {
	page1 := `MULTI-FAMILY UNIT MIX
All 1 Beds 663 160 45.5%
All 2 Beds 746 192 54.5%
1 1.0 663 160 45.5% 8 2.3% $1,151 $1.74 $1,130 $1.70 1.8%
2 2.0 746 192 54.5% 11 2.9% $1,288 $1.73 $1,270 $1.70 1.4%
3 2.0 1,450 22 3.0% 1 1.0% $1,500 $1.03 $1,480 $1.02 1.3%
`
	doc := pdftext.NewDocument("property.pdf", []string{page1})

	mix, page := extractUnitMix(doc)
	require.Len(t, mix, 2, "3-bed row lacks a page-1 marker and must be dropped")
	assert.Equal(t, 1, page)

	assert.Equal(t, 1, mix[0].Bedrooms)
	assert.Equal(t, 1.0, mix[0].Bathrooms)
	assert.Equal(t, 663, mix[0].AvgSF)
	assert.Equal(t, 160, mix[0].Units)
	assert.Equal(t, 45.5, mix[0].MixPct)
	assert.Equal(t, 1151.0, mix[0].AskingRentUnit)
	assert.Equal(t, 1.74, mix[0].AskingRentSF)
	assert.Equal(t, 1130.0, mix[0].EffectiveRentUnit)
	assert.Equal(t, 1.8, mix[0].ConcessionPct)

	assert.Equal(t, 2, mix[1].Bedrooms)
	assert.Equal(t, 192, mix[1].Units)
}

func TestExtractUnitMixFirstRowPerTypeWins(t *testing.T) {
	page1 := `All 1 Beds 663 160 45.5%
1 1.0 663 160 45.5% 8 2.3% $1,151 $1.74 $1,130 $1.70 1.8%
1 1.5 700 40 11.0% 2 1.0% $1,200 $1.71 $1,180 $1.69 1.7%
`
	doc := pdftext.NewDocument("property.pdf", []string{page1})

	mix, _ := extractUnitMix(doc)
	require.Len(t, mix, 1)
	assert.Equal(t, 663, mix[0].AvgSF)
}

func TestExtractAmenitySection(t *testing.T) {
	page := `SITE AMENITIES
Clubhouse
Fitness Center
Pool
Leasing office open daily
UNIT AMENITIES
Air Conditioning
Dishwasher
Washer/Dryer
Updated 11/2025
`
	doc := pdftext.NewDocument("property.pdf", []string{page})

	amenities := extractAmenitySection(doc)
	require.NotNil(t, amenities)
	assert.ElementsMatch(t, []string{"Clubhouse", "Fitness Center", "Pool"}, amenities["site"])
	assert.ElementsMatch(t, []string{"Air Conditioning", "Dishwasher", "Washer/Dryer"}, amenities["unit"])
}

func TestParseRentCompTable(t *testing.T) {
	page := `Studio 1 Bed 2 Bed 3 Bed
Hawthorne Apartments
352 663 - $1,151 $1,288 - $1.85 8501 N Platte Purchase Dr3 2007
The Jefferson on the Lake380 700 - $1,260 $1,376 - $2.0012251-12289 S Strang Lin1 1986
Rent Comparables Photo
`
	doc := pdftext.NewDocument("rentcomp.pdf", []string{page})
	rec := model.Record{}

	comps := parseRentCompTable(doc, rec)
	require.Len(t, comps, 2)

	// Old layout: the name line precedes its data line.
	assert.Equal(t, "Hawthorne Apartments", comps[0].Name)
	assert.Equal(t, 352, comps[0].Units)
	assert.Equal(t, 663, comps[0].AvgSF)
	assert.Equal(t, 1151.0, comps[0].Rents["1bed"])
	assert.Equal(t, 1288.0, comps[0].Rents["2bed"])
	assert.Equal(t, 1.85, comps[0].RentPSF, "PSF figures must not leak into the rent list")
	assert.Equal(t, 2007, comps[0].YearBuilt)
	assert.Equal(t, "8501 N Platte Purchase Dr", comps[0].Address)

	// Fused layout: name and figures share a line.
	assert.Equal(t, "The Jefferson on the Lake", comps[1].Name)
	assert.Equal(t, 380, comps[1].Units)
	assert.Equal(t, 1260.0, comps[1].Rents["1bed"])
	assert.Equal(t, 1986, comps[1].YearBuilt)
	assert.Equal(t, "12251-12289 S Strang Lin", comps[1].Address)
}

func TestParseRentCompTableExcludesSubject(t *testing.T) {
	page := `Studio 1 Bed 2 Bed 3 Bed
Fieldstone Apartments
352 663 - $1,151 $1,288 - $1.85 8501 N Platte Purchase Dr3 2007
Hawthorne Apartments
240 700 - $1,200 $1,300 - $1.80 100 W Elm St2 2001
`
	doc := pdftext.NewDocument("rentcomp.pdf", []string{page})
	rec := model.Record{
		"property": map[string]any{"name": "Fieldstone Apartments"},
	}

	comps := parseRentCompTable(doc, rec)
	require.Len(t, comps, 1)
	assert.Equal(t, "Hawthorne Apartments", comps[0].Name)
}

func TestExtractRentCompsSummary(t *testing.T) {
	page := `17$1,314 $1.49 6.7%No. Rent Comps
Current: $1,151 $1.74 /SF
Year Ago: $1,176
Competitors: $1,314
Submarket: $1,350
`
	doc := pdftext.NewDocument("rentcomp.pdf", []string{page})
	rec := model.Record{}

	extractRentComps(doc, rec)

	rc := rec.Category("rent_comps")
	require.NotNil(t, rc)
	assert.Equal(t, 17, rc["comp_count"])
	assert.Equal(t, 1314, rc["avg_comp_rent_per_unit"])
	assert.Equal(t, 1.49, rc["avg_comp_rent_psf"])
	assert.Equal(t, 6.7, rc["avg_comp_vacancy"])
	assert.Equal(t, 1151, rc["subject_current_rent"])
	assert.Equal(t, 1.74, rc["subject_current_rent_psf"])
	assert.Equal(t, 1176, rc["subject_rent_year_ago"])
}

func TestExtractSaleComps(t *testing.T) {
	page := `North Oak Crossing Apartments12 $122 $24.7 13.7%Sale Comparables
Sale Date Price Price/Unit Price/SF Sale Information
7005 N Bales AveThe Bluffs-
 1 1968 138 8.0% 9/19/2025 $11,700,000 $84,782 $90
`
	doc := pdftext.NewDocument("combined.pdf", []string{page})
	rec := model.Record{}

	extractSaleComps(doc, rec)

	sc := rec.Category("sale_comps")
	require.NotNil(t, sc)
	assert.Equal(t, 12, sc["comp_count"])
	assert.Equal(t, 122000, sc["avg_price_per_unit"])
	assert.Equal(t, 24_700_000.0, sc["avg_price"])
	assert.Equal(t, 13.7, sc["avg_vacancy_at_sale"])

	comps, ok := sc["comparable_properties"].([]*model.SaleComparable)
	require.True(t, ok)
	require.Len(t, comps, 1)
	assert.Equal(t, "The Bluffs", comps[0].Name)
	assert.Equal(t, "7005 N Bales Ave", comps[0].Address)
	assert.Equal(t, 1, comps[0].Rank)
	assert.Equal(t, 1968, comps[0].YearBuilt)
	assert.Equal(t, 138, comps[0].Units)
	assert.Equal(t, 8.0, comps[0].VacancyAtSale)
	assert.Equal(t, "9/19/2025", comps[0].SaleDate)
	assert.Equal(t, 11700000, comps[0].SalePrice)
	assert.Equal(t, 84782, comps[0].PricePerUnit)
	assert.Equal(t, 90, comps[0].PricePerSF)
}

func TestExtractMarket(t *testing.T) {
	page := `289 131 9.7% -6.4% 12 Mo Delivered Units 12 Mo Absorption Units Vacancy Rate 12 Mo Asking Rent Growth
6.6% 7.8% -1.1% (YOY) Vacancy
Strong population growth continues in the metro.
OVERLAND PARK SUBMARKET SALES VOLUME IN UNITS
SUBMARKET VACANCY & ABSORPTION
9 OVERLAND PARK 10,218 7.8% 131
SUBMARKET RENT
9 OVERLAND PARK 1.3% 3 1.5%
OVERALL VACANCY & RENT
(0.2) 2025 8.6% (0.1) 16,690 $1,458 $1.57 1.8%
(0.3) 2026 8.2% (0.4) 16,800 $1,490 $1.60 2.2%
`
	doc := pdftext.NewDocument("asset.pdf", []string{page})
	rec := model.Record{}

	extractMarket(doc, rec)

	mkt := rec.Category("market")
	require.NotNil(t, mkt)
	assert.Equal(t, 289, mkt["delivered_12mo"])
	assert.Equal(t, 131, mkt["absorption_12mo"])
	assert.Equal(t, -6.4, mkt["asking_rent_growth"])
	assert.Equal(t, -1.1, mkt["vacancy_yoy_change"])
	assert.Equal(t, 7.8, mkt["vacancy_historical_avg"])
	assert.Equal(t, 6.6, mkt["vacancy_forecast_avg"])
	assert.Equal(t, true, mkt["has_population_growth"])
	assert.Equal(t, "OVERLAND PARK", mkt["property_submarket"])

	// Per-submarket rows win over the headline figure.
	assert.Equal(t, 7.8, mkt["submarket_vacancy_rate"])

	proj, ok := mkt["rent_growth_projections"].(map[string]float64)
	require.True(t, ok)
	assert.Equal(t, 1.3, proj["submarket_current_yoy_growth"])
	assert.Equal(t, 1.8, proj["rent_growth_2025"])
	assert.Equal(t, 2.2, proj["rent_growth_2026"])
}

func TestExtractMarketNoConstruction(t *testing.T) {
	doc := pdftext.NewDocument("asset.pdf", []string{"There are no projects under construction in the submarket.\n"})
	rec := model.Record{}

	extractMarket(doc, rec)

	assert.Equal(t, 0, rec.Category("market")["under_construction"])
}

func TestExtractMarketUnderConstruction(t *testing.T) {
	doc := pdftext.NewDocument("asset.pdf", []string{"1,248 units under construction\n"})
	rec := model.Record{}

	extractMarket(doc, rec)

	assert.Equal(t, 1248, rec.Category("market")["under_construction"])
}

func TestExtractEmployment(t *testing.T) {
	page := `Economy
KANSAS CITY EMPLOYMENT BY INDUSTRY
Total Employment 1,151 1.0 -0.35% 0.59% 0.94% 1.12% 0.39% 0.44%
`
	doc := pdftext.NewDocument("combined.pdf", []string{page})
	rec := model.Record{}

	extractEmployment(doc, rec)

	emp := rec.Category("employment")
	require.NotNil(t, emp)
	assert.Equal(t, 1151, emp["total_jobs_thousands"])
	assert.Equal(t, 1.0, emp["location_quotient"])
	assert.Equal(t, -0.35, emp["current_growth_market"])
	assert.Equal(t, 0.59, emp["current_growth_us"])
	assert.Equal(t, 0.94, emp["historical_10yr_market"])
	assert.Equal(t, 1.12, emp["historical_10yr_us"])
	assert.Equal(t, 0.39, emp["forecast_5yr_market"])
	assert.Equal(t, 0.44, emp["forecast_5yr_us"])
}

func TestExtractEducationAndCapRates(t *testing.T) {
	page := `AGE & EDUCATION
Bachelor's Degree 28.4%
High School Graduate 24.1%
Some College 22.9%
Graduate Degree 12.3%
CAP RATES
Market Cap Rate 6.1%
`
	doc := pdftext.NewDocument("combined.pdf", []string{page})
	rec := model.Record{}

	extractEducation(doc, rec)
	extractCapRates(doc, rec)

	demo := rec.Category("demographics")
	require.NotNil(t, demo)
	assert.Equal(t, 28.4, demo["bachelors_pct"])
	assert.Equal(t, 24.1, demo["high_school_pct"])
	assert.Equal(t, 22.9, demo["some_college_pct"])
	assert.Equal(t, 12.3, demo["graduate_degree_pct"])

	assert.Equal(t, 6.1, rec.Category("market")["market_cap_rate"])
}

func TestParseHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (any, bool)
		want any
		ok   bool
	}{
		{"int with comma", func() (any, bool) { v, ok := parseInt("1,052"); return v, ok }, 1052, true},
		{"int with dollar", func() (any, bool) { v, ok := parseInt("$84,782"); return v, ok }, 84782, true},
		{"accounting negative", func() (any, bool) { v, ok := parseAccountingInt("(5)"); return v, ok }, -5, true},
		{"accounting positive", func() (any, bool) { v, ok := parseAccountingInt("136"); return v, ok }, 136, true},
		{"accounting pct", func() (any, bool) { v, ok := parseAccountingFloat("(0.4%)"); return v, ok }, -0.4, true},
		{"float pct", func() (any, bool) { v, ok := parseFloat("6.7%"); return v, ok }, 6.7, true},
		{"garbage", func() (any, bool) { v, ok := parseInt("n/a"); return v, ok }, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

package model

// UnitMixEntry holds one bedroom-type row from the unit mix detail table.
// Only bedroom types confirmed by a page-1 "All N Beds" (or "All Studios")
// marker are eligible for extraction.
type UnitMixEntry struct {
	Bedrooms          int     `json:"bedrooms"`
	Bathrooms         float64 `json:"bathrooms,omitempty"`
	AvgSF             int     `json:"avg_sf,omitempty"`
	Units             int     `json:"units,omitempty"`
	MixPct            float64 `json:"mix_pct,omitempty"`
	AvailableUnits    int     `json:"available_units,omitempty"`
	AvailablePct      float64 `json:"available_pct,omitempty"`
	AskingRentUnit    float64 `json:"asking_rent_per_unit,omitempty"`
	AskingRentSF      float64 `json:"asking_rent_per_sf,omitempty"`
	EffectiveRentUnit float64 `json:"effective_rent_per_unit,omitempty"`
	EffectiveRentSF   float64 `json:"effective_rent_per_sf,omitempty"`
	ConcessionPct     float64 `json:"concession_pct,omitempty"`
	SourcePage        int     `json:"source_page,omitempty"`
}

// RentComparable is one competitor property from a rent comps report.
// Rents is keyed by bedroom type (studio, 1bed, 2bed, 3bed) and UnitCounts
// by the same keys when the report's detail pages carry them.
type RentComparable struct {
	Rank          int                `json:"rank,omitempty"`
	Name          string             `json:"name"`
	Address       string             `json:"address,omitempty"`
	City          string             `json:"city,omitempty"`
	State         string             `json:"state,omitempty"`
	Neighborhood  string             `json:"neighborhood,omitempty"`
	DistanceMiles float64            `json:"distance_miles,omitempty"`
	YearBuilt     int                `json:"year_built,omitempty"`
	Units         int                `json:"units,omitempty"`
	Stories       int                `json:"stories,omitempty"`
	AvgSF         int                `json:"avg_sf,omitempty"`
	VacancyPct    *float64           `json:"vacancy_pct,omitempty"`
	Rents         map[string]float64 `json:"rents,omitempty"`
	RentPSF       float64            `json:"rent_psf,omitempty"`
	ConcessionPct *float64           `json:"concession_pct,omitempty"`
	UnitCounts    map[string]int     `json:"unit_counts,omitempty"`
	SourcePage    int                `json:"source_page,omitempty"`
}

// SaleComparable is one property from a sale comps report.
type SaleComparable struct {
	Rank          int     `json:"rank,omitempty"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	Submarket     string  `json:"submarket,omitempty"`
	DistanceMiles float64 `json:"distance_miles,omitempty"`
	YearBuilt     int     `json:"year_built,omitempty"`
	Units         int     `json:"units,omitempty"`
	VacancyAtSale float64 `json:"vacancy_at_sale,omitempty"`
	SaleDate      string  `json:"sale_date,omitempty"`
	SalePrice     int     `json:"sale_price,omitempty"`
	PricePerUnit  int     `json:"price_per_unit,omitempty"`
	PricePerSF    int     `json:"price_per_sf,omitempty"`
	CapRate       float64 `json:"cap_rate,omitempty"`
	PropertyType  string  `json:"property_type,omitempty"`
	SourcePage    int     `json:"source_page,omitempty"`
}

// Rent comp and sale comp table caps. CoStar reports rarely carry more, and
// rows past these counts are boilerplate continuation noise.
const (
	MaxRentComps = 17
	MaxSaleComps = 15
)

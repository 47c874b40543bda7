package datainputs

// fieldDef is one catalog entry: display name, dotted record path (or a
// "formula:" literal echoed as-is), sheet section, and an optional
// description surfaced next to the value.
type fieldDef struct {
	Name        string
	Path        string
	Section     string
	Description string
}

// fieldCatalog drives the Data Inputs sheet layout. Order matters: rows are
// assigned by walking this list from startRow, reserving two rows at each
// section change. Field names must be unique across the whole catalog.
var fieldCatalog = []fieldDef{
	// Property info
	{Name: "Property Name", Path: "config.property_name", Section: "property"},
	{Name: "Street Address", Path: "config.property_details.address", Section: "property"},
	{Name: "City", Path: "config.property_details.city", Section: "property"},
	{Name: "State", Path: "config.property_details.state", Section: "property"},
	{Name: "ZIP Code", Path: "config.property_details.zip_code", Section: "property"},
	{Name: "County", Path: "web_demographics.county", Section: "property"},
	{Name: "Number of Units", Path: "property.units", Section: "property"},
	{Name: "Year Built", Path: "property.vintage", Section: "property"},
	{Name: "Year Renovated", Path: "property.year_renovated", Section: "property"},
	{Name: "Stories", Path: "property.stories", Section: "property"},
	{Name: "Avg Unit Size (SF)", Path: "property.avg_unit_size", Section: "property"},
	// C12 is Number of Units, C16 is Avg Unit Size.
	{Name: "Net Rentable SF", Path: "formula:=C12*C16", Section: "calculated", Description: "Units × Avg Unit Size (SF)"},

	// Location
	{Name: "Latitude", Path: "web_demographics.latitude", Section: "location"},
	{Name: "Longitude", Path: "web_demographics.longitude", Section: "location"},
	{Name: "Flood Zone", Path: "web_demographics.flood_zone", Section: "location"},
	{Name: "Flood Risk (Yes/No)", Path: "web_demographics.flood_risk", Section: "location"},

	// Demographics, 1 mile radius
	{Name: "Population (1mi) - 2024", Path: "demographics.population_1mi_2024", Section: "demo_1mi"},
	{Name: "Population (1mi) - 2029", Path: "demographics.population_1mi_2029", Section: "demo_1mi"},
	{Name: "Population Growth % (1mi)", Path: "demographics.population_growth_pct", Section: "demo_1mi"},
	{Name: "Households (1mi) - 2024", Path: "demographics.households_1mi_2024", Section: "demo_1mi"},
	{Name: "Households (1mi) - 2029", Path: "demographics.households_1mi_2029", Section: "demo_1mi"},
	{Name: "Household Growth % (1mi)", Path: "demographics.household_growth_pct", Section: "demo_1mi"},
	{Name: "Median HH Income (1mi)", Path: "demographics.median_hh_income_1mi", Section: "demo_1mi"},
	{Name: "Avg Household Size (1mi)", Path: "demographics.avg_household_size", Section: "demo_1mi"},
	{Name: "Median Age (1mi)", Path: "demographics.avg_age_1mi", Section: "demo_1mi"},
	{Name: "Median Home Value (1mi)", Path: "demographics.median_home_value", Section: "demo_1mi"},

	// Demographics, 3 mile radius
	{Name: "Population (3mi) - 2024", Path: "demographics.population_3mi_2024", Section: "demo_3mi"},
	{Name: "Population (3mi) - 2029", Path: "demographics.population_3mi_2029", Section: "demo_3mi"},
	{Name: "Population Growth % (3mi)", Path: "demographics.population_growth_pct_3mi", Section: "demo_3mi"},
	{Name: "Households (3mi) - 2024", Path: "demographics.households_3mi_2024", Section: "demo_3mi"},
	{Name: "Households (3mi) - 2029", Path: "demographics.households_3mi_2029", Section: "demo_3mi"},
	{Name: "Household Growth % (3mi)", Path: "demographics.household_growth_pct_3mi", Section: "demo_3mi"},
	{Name: "Median HH Income (3mi)", Path: "demographics.median_hh_income_3mi", Section: "demo_3mi"},
	{Name: "Avg Household Size (3mi)", Path: "demographics.avg_household_size_3mi", Section: "demo_3mi"},
	{Name: "Median Age (3mi)", Path: "demographics.avg_age_3mi", Section: "demo_3mi"},
	{Name: "Median Home Value (3mi)", Path: "demographics.median_home_value_3mi", Section: "demo_3mi"},

	// Demographics, 5 mile radius
	{Name: "Population (5mi) - 2024", Path: "demographics.population_5mi_2024", Section: "demo_5mi"},
	{Name: "Population (5mi) - 2029", Path: "demographics.population_5mi_2029", Section: "demo_5mi"},
	{Name: "Population Growth % (5mi)", Path: "demographics.population_growth_pct_5mi", Section: "demo_5mi"},
	{Name: "Households (5mi) - 2024", Path: "demographics.households_5mi_2024", Section: "demo_5mi"},
	{Name: "Households (5mi) - 2029", Path: "demographics.households_5mi_2029", Section: "demo_5mi"},
	{Name: "Household Growth % (5mi)", Path: "demographics.household_growth_pct_5mi", Section: "demo_5mi"},
	{Name: "Median HH Income (5mi)", Path: "demographics.median_hh_income_5mi", Section: "demo_5mi"},
	{Name: "Avg Household Size (5mi)", Path: "demographics.avg_household_size_5mi", Section: "demo_5mi"},
	{Name: "Median Age (5mi)", Path: "demographics.avg_age_5mi", Section: "demo_5mi"},
	{Name: "Median Home Value (5mi)", Path: "demographics.median_home_value_5mi", Section: "demo_5mi"},

	// Demographics, other
	{Name: "Home Ownership %", Path: "web_demographics.home_ownership_pct", Section: "demo_other"},
	{Name: "Renter Occupied %", Path: "web_demographics.renter_occupied_pct", Section: "demo_other"},
	{Name: "Avg HH Vehicles", Path: "demographics.avg_hh_vehicles", Section: "demo_other"},
	{Name: "Median Year Built (Housing)", Path: "demographics.median_year_built_housing", Section: "demo_other"},

	// Submarket
	{Name: "Submarket Vacancy Rate %", Path: "market.submarket_vacancy_rate", Section: "submarket"},
	{Name: "Competitor Vacancy Rate %", Path: "demographics.competitor_vacancy_rate", Section: "submarket"},
	{Name: "Subject Vacancy Rate %", Path: "property.vacancy_rate", Section: "submarket"},
	{Name: "12 Mo Delivered Units", Path: "market.delivered_12mo", Section: "submarket"},
	{Name: "12 Mo Absorption Units", Path: "market.absorption_12mo", Section: "submarket"},
	{Name: "Under Construction Units", Path: "market.under_construction", Section: "submarket"},
	{Name: "Asking Rent Growth % (YoY)", Path: "market.asking_rent_growth", Section: "submarket"},
	{Name: "Actual Rent Growth % (YoY)", Path: "market.rent_growth_actual", Section: "submarket"},
	{Name: "Rent Growth Yr1", Path: "market.rent_growth_projections.rent_growth_2025", Section: "submarket"},
	{Name: "Rent Growth Yr2", Path: "market.rent_growth_projections.rent_growth_2026", Section: "submarket"},
	{Name: "Rent Growth Yr3", Path: "market.rent_growth_projections.rent_growth_2027", Section: "submarket"},
	{Name: "Rent Growth Yr4", Path: "market.rent_growth_projections.rent_growth_2028", Section: "submarket"},
	{Name: "Rent Growth Yr5", Path: "market.rent_growth_projections.rent_growth_2029", Section: "submarket"},
	{Name: "Absorption - Property (12mo)", Path: "demographics.absorption_12mo_property", Section: "submarket"},
	{Name: "Absorption - Competitors (12mo)", Path: "demographics.absorption_12mo_competitor_total", Section: "submarket"},
	{Name: "Absorption - Submarket (12mo)", Path: "demographics.absorption_12mo_submarket", Section: "submarket"},
	{Name: "Vacancy YoY Change %", Path: "market.vacancy_yoy_change", Section: "submarket", Description: "Year-over-year vacancy change in ppts. Negative = improving (vacancy falling)"},
	{Name: "Vacancy Historical Avg %", Path: "market.vacancy_historical_avg", Section: "submarket", Description: "Long-term historical average vacancy rate for submarket"},
	{Name: "Vacancy Forecast Avg %", Path: "market.vacancy_forecast_avg", Section: "submarket", Description: "CoStar forecasted average vacancy rate"},

	// Employment
	{Name: "Employment Growth - Market", Path: "employment.current_growth_market", Section: "employment", Description: "Current YoY employment growth for metro area"},
	{Name: "Employment Growth - US", Path: "employment.current_growth_us", Section: "employment", Description: "Current YoY employment growth for US (national avg)"},

	// Scores and ratings
	{Name: "School Data Type", Path: "web_demographics.school_ratings.school_method", Section: "scores", Description: "'Assigned' = actual zoned schools for address, 'District Avg' = average of all schools in district by level"},
	{Name: "Elementary School Rating", Path: "web_demographics.school_ratings.elementary_avg", Section: "scores", Description: "SchoolDigger rating 1-10 scale. Higher=better. Top 10% of state = 9-10"},
	{Name: "Elementary School Name", Path: "web_demographics.school_ratings.elementary_name", Section: "scores", Description: "Name of assigned elementary school (if Assigned) or district name (if District Avg)"},
	{Name: "Middle School Rating", Path: "web_demographics.school_ratings.middle_avg", Section: "scores", Description: "SchoolDigger rating 1-10 scale. Higher=better. Top 10% of state = 9-10"},
	{Name: "Middle School Name", Path: "web_demographics.school_ratings.middle_name", Section: "scores", Description: "Name of assigned middle school (if Assigned) or district name (if District Avg)"},
	{Name: "High School Rating", Path: "web_demographics.school_ratings.high_avg", Section: "scores", Description: "SchoolDigger rating 1-10 scale. Higher=better. Top 10% of state = 9-10"},
	{Name: "High School Name", Path: "web_demographics.school_ratings.high_name", Section: "scores", Description: "Name of assigned high school (if Assigned) or district name (if District Avg)"},
	{Name: "Manual School Lookup", Path: "web_demographics.greatschools_url", Section: "scores", Description: "GreatSchools boundary map - click to see assigned schools for this address"},
	{Name: "Crime Data Level", Path: "web_demographics.crime_data.source", Section: "scores", Description: "ZIP or City - indicates granularity of crime data"},
	{Name: "Crime Score (1-10)", Path: "web_demographics.crime_data.crime_score_avg", Section: "scores", Description: "1-10 scale where 5=US average. Lower=safer. Formula: (index / US avg index) × 5"},
	{Name: "Crime Index", Path: "web_demographics.crime_data.crime_index", Section: "scores", Description: "BestPlaces weighted index: (violent×0.6 + property×0.4)"},
	{Name: "US Avg Crime Index", Path: "web_demographics.crime_data.us_avg_index", Section: "scores", Description: "National average index (pulled from BestPlaces page)"},
	{Name: "Violent Crime Index", Path: "web_demographics.crime_data.violent_crime", Section: "scores", Description: "BestPlaces violent crime index (1-100 scale)"},
	{Name: "US Avg Violent", Path: "web_demographics.crime_data.us_avg_violent", Section: "scores", Description: "National avg violent crime (pulled from BestPlaces)"},
	{Name: "Property Crime Index", Path: "web_demographics.crime_data.property_crime", Section: "scores", Description: "BestPlaces property crime index (1-100 scale)"},
	{Name: "US Avg Property", Path: "web_demographics.crime_data.us_avg_property", Section: "scores", Description: "National avg property crime (pulled from BestPlaces)"},
	{Name: "Crime Data Warning", Path: "web_demographics.crime_data.validation_warning", Section: "scores", Description: "Shows if regex extracted unexpected values - CHECK IF PRESENT"},

	// Rent data, subject
	{Name: "Subject Current Rent (Avg)", Path: "rent_comps.subject_current_rent", Section: "rent_subject"},
	{Name: "Subject Rent PSF", Path: "rent_comps.subject_current_rent_psf", Section: "rent_subject"},
	{Name: "Subject Rent - Year Ago", Path: "rent_comps.subject_rent_year_ago", Section: "rent_subject"},
	{Name: "Subject Rent - Last Quarter", Path: "rent_comps.subject_last_quarter_rent", Section: "rent_subject"},
	{Name: "Subject Rent - Studio", Path: "property.unit_mix_rents.studio", Section: "rent_subject"},
	{Name: "Subject Rent - 1BR", Path: "property.unit_mix_rents.bed_1", Section: "rent_subject"},
	{Name: "Subject Rent - 2BR", Path: "property.unit_mix_rents.bed_2", Section: "rent_subject"},
	{Name: "Subject Rent - 3BR", Path: "property.unit_mix_rents.bed_3", Section: "rent_subject"},
	{Name: "Subject Units - Studio", Path: "property.unit_counts.studio", Section: "rent_subject"},
	{Name: "Subject Units - 1BR", Path: "property.unit_counts.bed_1", Section: "rent_subject"},
	{Name: "Subject Units - 2BR", Path: "property.unit_counts.bed_2", Section: "rent_subject"},
	{Name: "Subject Units - 3BR", Path: "property.unit_counts.bed_3", Section: "rent_subject"},

	// Rent data, market
	{Name: "Avg Comp Rent/Unit", Path: "rent_comps.avg_comp_rent_per_unit", Section: "rent_market"},
	{Name: "Avg Comp Rent PSF", Path: "rent_comps.avg_comp_rent_psf", Section: "rent_market"},
	{Name: "Submarket Avg Rent", Path: "demographics.submarket_avg_rent", Section: "rent_market"},

	// Stage 2 calculated scores: supply-demand drivers
	{Name: "SD: Absorption (12mo)", Path: "stage2_scores.supply_demand.absorption_12mo", Section: "stage2_scores", Description: "Units absorbed in submarket over trailing 12 months (CoStar pg 58)"},
	{Name: "SD: Delivered (12mo)", Path: "stage2_scores.supply_demand.delivered_12mo", Section: "stage2_scores", Description: "New units delivered in submarket over trailing 12 months (CoStar pg 58)"},
	{Name: "SD: Under Construction", Path: "stage2_scores.supply_demand.under_construction", Section: "stage2_scores", Description: "Units currently under construction in submarket - future supply pressure"},
	{Name: "SD: Absorption Ratio", Path: "stage2_scores.supply_demand.absorption_ratio", Section: "stage2_scores", Description: "Absorption / Delivered. Measures if market absorbs new supply. >2.0=strong demand, 1.0=balanced, <0.5=oversupply"},
	{Name: "SD: Pipeline Ratio", Path: "stage2_scores.supply_demand.pipeline_ratio", Section: "stage2_scores", Description: "Under Construction / Absorption. Measures future supply pressure. >1.5=heavy pipeline risk, <0.5=light pipeline"},
	{Name: "SD: Base Score", Path: "stage2_scores.supply_demand.base_score", Section: "stage2_scores", Description: "SCALE: Ratio>=2.0=10, 1.5-2.0=8, 1.0-1.5=6, 0.5-1.0=4, <0.5=2. Negative absorption caps at 3"},
	{Name: "SD: Pipeline Adjustment", Path: "stage2_scores.supply_demand.pipeline_adjustment", Section: "stage2_scores", Description: "Pipeline penalty/bonus: >1.5x absorption=-2, >1.0x=-1, <0.5x=+1. Adjusts for future supply wave"},
	{Name: "SD: Final Score", Path: "stage2_scores.supply_demand.final_score", Section: "stage2_scores", Description: "SUPPLY-DEMAND DRIVERS (5% wt). Base+Adj capped 1-10. High=demand outpaces supply, Low=oversupply risk"},
	{Name: "SD: Notes", Path: "stage2_scores.supply_demand.notes", Section: "stage2_scores", Description: "Auto-generated explanation of score factors"},
	// Submarket outlook
	{Name: "SO: Current Vacancy %", Path: "stage2_scores.submarket_outlook.current_vacancy", Section: "stage2_scores", Description: "Current submarket vacancy rate"},
	{Name: "SO: Vacancy YoY Change", Path: "stage2_scores.submarket_outlook.vacancy_yoy_change", Section: "stage2_scores", Description: "Year-over-year vacancy change. Negative=improving (vacancy falling)"},
	{Name: "SO: Historical Avg Vacancy", Path: "stage2_scores.submarket_outlook.vacancy_historical_avg", Section: "stage2_scores", Description: "Long-term historical avg vacancy for this submarket"},
	{Name: "SO: Vacancy vs Historical", Path: "stage2_scores.submarket_outlook.vacancy_vs_historical", Section: "stage2_scores", Description: "Current minus Historical. Negative=below normal (good), Positive=above normal (bad)"},
	{Name: "SO: Level Adjustment", Path: "stage2_scores.submarket_outlook.level_adjustment", Section: "stage2_scores", Description: "SCALE: >2ppts below hist=+2, 0.5-2 below=+1, within 0.5=0, 0.5-2 above=-1, >2 above=-2"},
	{Name: "SO: Trend Adjustment", Path: "stage2_scores.submarket_outlook.trend_adjustment", Section: "stage2_scores", Description: "SCALE: YoY<=-1%=+3, -0.5 to -1%=+2, 0 to -0.5%=+1, 0=0, 0-0.5%=-1, 0.5-1%=-2, >1%=-3"},
	{Name: "SO: Pipeline Ratio", Path: "stage2_scores.submarket_outlook.pipeline_ratio", Section: "stage2_scores", Description: "Under Construction / Absorption. Future supply pressure indicator"},
	{Name: "SO: Pipeline Adjustment", Path: "stage2_scores.submarket_outlook.pipeline_adjustment", Section: "stage2_scores", Description: "SCALE: <0.5x=+1, 0.5-1x=0, 1-1.5x=-1, >1.5x=-2"},
	{Name: "SO: Final Score", Path: "stage2_scores.submarket_outlook.final_score", Section: "stage2_scores", Description: "SUBMARKET OUTLOOK (10% wt). Base 5 + adjustments, capped 1-10. High=improving/tight, Low=worsening/loose"},
	{Name: "SO: Notes", Path: "stage2_scores.submarket_outlook.notes", Section: "stage2_scores", Description: "Auto-generated breakdown of all adjustment factors"},
	// Migration / GDP growth
	{Name: "MG: Employment Growth - Market", Path: "stage2_scores.migration_gdp.emp_growth_market", Section: "stage2_scores", Description: "Current YoY job growth for metro area (from CoStar Economy)"},
	{Name: "MG: Employment Growth - US", Path: "stage2_scores.migration_gdp.emp_growth_us", Section: "stage2_scores", Description: "Current YoY job growth for US (national benchmark)"},
	{Name: "MG: Employment vs US", Path: "stage2_scores.migration_gdp.emp_vs_us", Section: "stage2_scores", Description: "Market minus US. Positive=outperforming, Negative=underperforming"},
	{Name: "MG: Employment Score", Path: "stage2_scores.migration_gdp.emp_score", Section: "stage2_scores", Description: "SCALE: >=+1% vs US=10, +0.5-1%=8, 0-0.5%=6, 0 to -0.5%=5, -0.5 to -1%=4, -1 to -1.5%=3, <-1.5%=2"},
	{Name: "MG: Pop Growth (5mi)", Path: "stage2_scores.migration_gdp.pop_growth_5mi", Section: "stage2_scores", Description: "5-year population growth projection for 5-mile radius (migration proxy)"},
	{Name: "MG: Population Score", Path: "stage2_scores.migration_gdp.pop_score", Section: "stage2_scores", Description: "SCALE: >=10%=10, 8-10%=9, 6-8%=8, 4-6%=7, 2-4%=6, 0-2%=5, -2-0%=4, <-2%=2"},
	{Name: "MG: Final Score", Path: "stage2_scores.migration_gdp.final_score", Section: "stage2_scores", Description: "MIGRATION/GDP (3% wt). Avg of Emp+Pop scores. High=strong jobs+migration, Low=weak economy"},
	{Name: "MG: Notes", Path: "stage2_scores.migration_gdp.notes", Section: "stage2_scores", Description: "Auto-generated breakdown: employment score | population score"},
	// Parking ratio
	{Name: "PR: Parking Ratio", Path: "stage2_scores.parking.parking_ratio", Section: "stage2_scores", Description: "Parking spaces per unit (from CoStar Property)"},
	{Name: "PR: Parking Spaces", Path: "stage2_scores.parking.parking_spaces", Section: "stage2_scores", Description: "Total parking spaces"},
	{Name: "PR: Surface Spaces", Path: "stage2_scores.parking.surface_spaces", Section: "stage2_scores", Description: "Surface lot parking spaces"},
	{Name: "PR: Covered Spaces", Path: "stage2_scores.parking.covered_spaces", Section: "stage2_scores", Description: "Covered/garage parking spaces"},
	{Name: "PR: Units", Path: "stage2_scores.parking.units", Section: "stage2_scores", Description: "Total units"},
	{Name: "PR: Base Score", Path: "stage2_scores.parking.base_score", Section: "stage2_scores", Description: "SCALE: >=2.0=10, 1.5-2.0=9, 1.25-1.5=8, 1.0-1.25=7, 0.75-1.0=5, 0.5-0.75=3, <0.5=2"},
	{Name: "PR: Underground Penalty", Path: "stage2_scores.parking.underground_penalty", Section: "stage2_scores", Description: "-1 if underground/garage only (no surface parking)"},
	{Name: "PR: Final Score", Path: "stage2_scores.parking.final_score", Section: "stage2_scores", Description: "PARKING RATIO (3% wt). Base score + underground penalty, capped 1-10"},
	{Name: "PR: Notes", Path: "stage2_scores.parking.notes", Section: "stage2_scores", Description: "Auto-generated score explanation"},
	// Amenities and lifestyle
	{Name: "AM: Site Score", Path: "stage2_scores.amenities.site_score", Section: "stage2_scores", Description: "Site amenities pts (max 5). Pool/Fitness/Clubhouse=1ea, Business/Playground/Dog Park=0.5ea"},
	{Name: "AM: Unit Score", Path: "stage2_scores.amenities.unit_score", Section: "stage2_scores", Description: "Unit amenities pts (max 5). In-Unit W/D=1.5, AC=1, Dishwasher/Balcony/Walk-In=0.5ea"},
	{Name: "AM: Final Score", Path: "stage2_scores.amenities.final_score", Section: "stage2_scores", Description: "AMENITIES (5% wt). Site+Unit scores, capped 1-10"},
	{Name: "AM: Notes", Path: "stage2_scores.amenities.notes", Section: "stage2_scores", Description: "Auto-generated breakdown: site score | unit score"},
	// Unit mix and size
	{Name: "UM: Total Units", Path: "stage2_scores.unit_mix.total_units", Section: "stage2_scores", Description: "Total number of units"},
	{Name: "UM: 2-3BR Units", Path: "stage2_scores.unit_mix.units_2_3_br", Section: "stage2_scores", Description: "Count of 2BR + 3BR units"},
	{Name: "UM: 2-3BR %", Path: "stage2_scores.unit_mix.pct_2_3_br", Section: "stage2_scores", Description: "Percentage of units that are 2-3 bedrooms"},
	{Name: "UM: Avg SF", Path: "stage2_scores.unit_mix.avg_sf", Section: "stage2_scores", Description: "Average unit size in square feet"},
	{Name: "UM: Size Score", Path: "stage2_scores.unit_mix.size_score", Section: "stage2_scores", Description: "SCALE: >=1000sf=10, 900-1000=8, 800-900=6, 700-800=4, <700=2"},
	{Name: "UM: Mix Score", Path: "stage2_scores.unit_mix.mix_score", Section: "stage2_scores", Description: "SCALE: >=70% 2-3BR=10, 60-70%=8, 50-60%=6, 40-50%=4, <40%=3"},
	{Name: "UM: Final Score", Path: "stage2_scores.unit_mix.final_score", Section: "stage2_scores", Description: "UNIT MIX (5% wt). Avg of Size+Mix scores. High=family-friendly units, Low=small/studio-heavy"},
	{Name: "UM: Notes", Path: "stage2_scores.unit_mix.notes", Section: "stage2_scores", Description: "Auto-generated breakdown: size score | mix score"},
	// Loss-to-lease
	{Name: "LTL: Subject Rent", Path: "stage2_scores.loss_to_lease.subject_rent", Section: "stage2_scores", Description: "Subject property average rent per unit"},
	{Name: "LTL: Comp Avg Rent", Path: "stage2_scores.loss_to_lease.comp_avg_rent", Section: "stage2_scores", Description: "Average rent of comparable properties"},
	{Name: "LTL: Submarket Rent", Path: "stage2_scores.loss_to_lease.submarket_rent", Section: "stage2_scores", Description: "Submarket average rent"},
	{Name: "LTL: vs Comps %", Path: "stage2_scores.loss_to_lease.ltl_vs_comps_pct", Section: "stage2_scores", Description: "(Subject-Comps)/Comps. Negative=below market, Positive=above market"},
	{Name: "LTL: vs Submarket %", Path: "stage2_scores.loss_to_lease.ltl_vs_submarket_pct", Section: "stage2_scores", Description: "(Subject-Submarket)/Submarket. Negative=below market, Positive=above market"},
	{Name: "LTL: Blended %", Path: "stage2_scores.loss_to_lease.blended_ltl_pct", Section: "stage2_scores", Description: "Weighted avg: 60% vs Comps + 40% vs Submarket"},
	{Name: "LTL: Final Score", Path: "stage2_scores.loss_to_lease.final_score", Section: "stage2_scores", Description: "LOSS-TO-LEASE (10% wt). SCALE: <=-20%=10, -15 to -20=9, -10 to -15=8, -5 to -10=7, -2.5 to -5=6, +/-2.5%=5, +2.5 to +5=4, +5 to +10=3, +10 to +15=2, +15 to +20=1, >+20%=0"},
	{Name: "LTL: Notes", Path: "stage2_scores.loss_to_lease.notes", Section: "stage2_scores", Description: "Auto-generated breakdown: vs comps | vs submarket | blended"},
	// Business-friendly environment
	{Name: "BF: State", Path: "stage2_scores.business_friendly.state", Section: "stage2_scores", Description: "State from property address"},
	{Name: "BF: Final Score", Path: "stage2_scores.business_friendly.final_score", Section: "stage2_scores", Description: "BUSINESS-FRIENDLY (3% wt). State lookup: TX/FL/TN/AZ=10, GA/NC/SC/NV/IN=9, KS/MO/OH/UT/OK/AL=8, CO/ID/KY/AR/NE=7, PA/MI/WI/VA/IA=6, IL/MN/NM=5, WA/MD/NH/DE=4, MA/NJ/CT/HI=3, NY/VT/RI=2, CA/OR/DC=1"},
	{Name: "BF: Notes", Path: "stage2_scores.business_friendly.notes", Section: "stage2_scores", Description: "Auto-generated explanation of state regulatory environment"},
	// Nearby nuisance properties
	{Name: "NU: Source", Path: "stage2_scores.nuisance.source", Section: "stage2_scores", Description: "Data source for nuisance detection"},
	{Name: "NU: Severe Count", Path: "stage2_scores.nuisance.severe_count", Section: "stage2_scores", Description: "Count of severe nuisances within 1mi (prison, landfill, waste facility)"},
	{Name: "NU: Industrial Count", Path: "stage2_scores.nuisance.industrial_count", Section: "stage2_scores", Description: "Count of industrial areas within 0.5mi"},
	{Name: "NU: Moderate Count", Path: "stage2_scores.nuisance.moderate_count", Section: "stage2_scores", Description: "Count of moderate nuisances within 0.25mi (motel, storage, pawn, liquor, shelter)"},
	{Name: "NU: Minor Count", Path: "stage2_scores.nuisance.minor_count", Section: "stage2_scores", Description: "Count of minor nuisances within 500ft (gas station, auto repair)"},
	{Name: "NU: Nuisances List", Path: "stage2_scores.nuisance.nuisances_list", Section: "stage2_scores", Description: "Nuisances found with names for verification (e.g., 'industrial area (YRC Freight)')"},
	{Name: "NU: Python Score", Path: "stage2_scores.nuisance.python_score", Section: "stage2_scores", Description: "Reference score (spreadsheet recalculates with editable weights)"},
	{Name: "NU: Notes", Path: "stage2_scores.nuisance.notes", Section: "stage2_scores", Description: "Auto-generated summary of detected nuisances by category"},
	// Climate risk
	{Name: "CR: Source", Path: "stage2_scores.climate_risk.source", Section: "stage2_scores", Description: "Data source: FEMA + USDA + Open-Meteo"},
	{Name: "CR: Flood Zone", Path: "stage2_scores.climate_risk.flood_zone", Section: "stage2_scores", Description: "FEMA flood zone code (X=minimal, A/AE=high, V/VE=coastal high)"},
	{Name: "CR: Flood Zone Desc", Path: "stage2_scores.climate_risk.flood_zone_desc", Section: "stage2_scores", Description: "Full description of flood zone classification"},
	{Name: "CR: Is SFHA", Path: "stage2_scores.climate_risk.flood_is_sfha", Section: "stage2_scores", Description: "Special Flood Hazard Area (True=high risk, requires flood insurance)"},
	{Name: "CR: Flood Score", Path: "stage2_scores.climate_risk.flood_score", Section: "stage2_scores", Description: "Flood risk score 1-10 (10=Zone X, 2=Zone A/AE, 1=Zone V/VE) - 50% weight"},
	{Name: "CR: Fire Burn Prob", Path: "stage2_scores.climate_risk.fire_burn_probability", Section: "stage2_scores", Description: "Annual burn probability (0.01 = 1% chance of fire per year)"},
	{Name: "CR: Fire Score", Path: "stage2_scores.climate_risk.fire_score", Section: "stage2_scores", Description: "Fire risk score 1-10 (10=<0.01% prob, 1=>5% prob) - 20% weight"},
	{Name: "CR: Heat Days", Path: "stage2_scores.climate_risk.heat_days", Section: "stage2_scores", Description: "Avg days per year with max temp >90F (32C)"},
	{Name: "CR: Heat Score", Path: "stage2_scores.climate_risk.heat_score", Section: "stage2_scores", Description: "Heat risk score 1-10 (10=<10 days, 1=>150 days) - 15% weight"},
	{Name: "CR: Cold Days", Path: "stage2_scores.climate_risk.cold_days", Section: "stage2_scores", Description: "Avg days per year with min temp <32F (0C)"},
	{Name: "CR: Cold Score", Path: "stage2_scores.climate_risk.cold_score", Section: "stage2_scores", Description: "Cold risk score 1-10 (10=<15 days, 1=>180 days) - 15% weight"},
	{Name: "CR: Final Score", Path: "stage2_scores.climate_risk.final_score", Section: "stage2_scores", Description: "CLIMATE RISK (5% wt). Weighted: 50% flood + 20% fire + 15% heat + 15% cold"},
	{Name: "CR: Notes", Path: "stage2_scores.climate_risk.notes", Section: "stage2_scores", Description: "Auto-generated breakdown: flood | fire | heat days | cold days"},
	// Employer stability / recession resistance
	{Name: "ES: Source", Path: "stage2_scores.employer_stability.source", Section: "stage2_scores", Description: "Data source: BLS QCEW (Quarterly Census of Employment and Wages)"},
	{Name: "ES: County FIPS", Path: "stage2_scores.employer_stability.county_fips", Section: "stage2_scores", Description: "5-digit county FIPS code for employment data lookup"},
	{Name: "ES: County Name", Path: "stage2_scores.employer_stability.county_name", Section: "stage2_scores", Description: "County name where property is located"},
	{Name: "ES: State", Path: "stage2_scores.employer_stability.state", Section: "stage2_scores", Description: "State abbreviation"},
	{Name: "ES: Total Employment", Path: "stage2_scores.employer_stability.total_employment", Section: "stage2_scores", Description: "Total county employment (all sectors)"},
	{Name: "ES: Government %", Path: "stage2_scores.employer_stability.government_pct", Section: "stage2_scores", Description: "% of jobs in government (federal + state + local)"},
	{Name: "ES: Recession-Proof %", Path: "stage2_scores.employer_stability.recession_proof_pct", Section: "stage2_scores", Description: "% in healthcare, education, utilities (stable during recessions)"},
	{Name: "ES: Essential %", Path: "stage2_scores.employer_stability.essential_pct", Section: "stage2_scores", Description: "% in retail, transportation, wholesale (essential services)"},
	{Name: "ES: Moderate %", Path: "stage2_scores.employer_stability.moderate_pct", Section: "stage2_scores", Description: "% in finance, professional services, admin (moderate stability)"},
	{Name: "ES: Cyclical %", Path: "stage2_scores.employer_stability.cyclical_pct", Section: "stage2_scores", Description: "% in construction, manufacturing, hospitality (first to layoff)"},
	{Name: "ES: RRI", Path: "stage2_scores.employer_stability.rri", Section: "stage2_scores", Description: "Recession Resistance Index: stable% + 0.6*essential% + 0.3*moderate% - 0.4*cyclical%"},
	{Name: "ES: Concentration Adj", Path: "stage2_scores.employer_stability.concentration_adj", Section: "stage2_scores", Description: "Adjustment for industry concentration (-1.5 if >35% in one industry)"},
	{Name: "ES: Final Score", Path: "stage2_scores.employer_stability.final_score", Section: "stage2_scores", Description: "EMPLOYER STABILITY (5% wt). Based on RRI + concentration adjustment"},
	{Name: "ES: Notes", Path: "stage2_scores.employer_stability.notes", Section: "stage2_scores", Description: "Auto-generated: stable% breakdown | concentration analysis"},
}

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screener-cli/internal/model"
)

func TestCalculateAllComponentKeys(t *testing.T) {
	c := NewCalculator()
	rec := c.CalculateAll(model.Record{})

	scores, ok := rec["stage2_scores"].(map[string]any)
	require.True(t, ok)

	want := []string{
		"supply_demand", "submarket_outlook", "migration_gdp", "parking",
		"amenities", "unit_mix", "loss_to_lease", "business_friendly",
		"nuisance", "climate_risk", "employer_stability",
	}
	require.Len(t, scores, len(want))
	for _, key := range want {
		res, ok := scores[key].(map[string]any)
		require.True(t, ok, "component %s missing or wrong shape", key)
		assert.Contains(t, res, "notes", "component %s", key)
	}
}

func TestSupplyDemandScore(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name       string
		market     map[string]any
		wantScore  any
		wantNotes  any
		wantBase   any
		wantAdjust any
	}{
		{
			name: "healthy ratio with manageable pipeline",
			market: map[string]any{
				"delivered_12mo":     100,
				"absorption_12mo":    150,
				"under_construction": 100,
			},
			wantScore:  8,
			wantNotes:  nil,
			wantBase:   8,
			wantAdjust: 0,
		},
		{
			name: "strong ratio with light pipeline clamps at ten",
			market: map[string]any{
				"delivered_12mo":     100,
				"absorption_12mo":    300,
				"under_construction": 30,
			},
			wantScore:  10,
			wantNotes:  "Light pipeline (+1)",
			wantBase:   10,
			wantAdjust: 1,
		},
		{
			name: "heavy pipeline penalty",
			market: map[string]any{
				"delivered_12mo":     100,
				"absorption_12mo":    100,
				"under_construction": 200,
			},
			wantScore:  4,
			wantNotes:  "Heavy pipeline (-2)",
			wantBase:   6,
			wantAdjust: -2,
		},
		{
			name: "stagnant market",
			market: map[string]any{
				"delivered_12mo":  0,
				"absorption_12mo": 0,
			},
			wantScore:  5,
			wantNotes:  "Stagnant market (no deliveries or absorption)",
			wantBase:   5,
			wantAdjust: 0,
		},
		{
			name: "no deliveries positive absorption",
			market: map[string]any{
				"delivered_12mo":  0,
				"absorption_12mo": 80,
			},
			wantScore:  9,
			wantNotes:  "No deliveries, positive absorption",
			wantBase:   9,
			wantAdjust: 0,
		},
		{
			name: "negative absorption caps base",
			market: map[string]any{
				"delivered_12mo":     200,
				"absorption_12mo":    -50,
				"under_construction": 100,
			},
			wantScore:  3,
			wantNotes:  "Negative absorption (net move-outs) - capped at 3",
			wantBase:   3,
			wantAdjust: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.scoreSupplyDemand(model.Record{"market": tt.market})
			assert.Equal(t, tt.wantScore, res["final_score"])
			assert.Equal(t, tt.wantBase, res["base_score"])
			assert.Equal(t, tt.wantAdjust, res["pipeline_adjustment"])
			assert.Equal(t, tt.wantNotes, res["notes"])
		})
	}
}

func TestSupplyDemandMissingInputs(t *testing.T) {
	c := NewCalculator()
	res := c.scoreSupplyDemand(model.Record{"market": map[string]any{"delivered_12mo": 100}})
	assert.Nil(t, res["final_score"])
	assert.Equal(t, "Missing absorption or delivery data", res["notes"])
}

func TestSubmarketOutlookClampsAtTen(t *testing.T) {
	c := NewCalculator()
	res := c.scoreSubmarketOutlook(model.Record{"market": map[string]any{
		"submarket_vacancy_rate": 5.0,
		"vacancy_historical_avg": 8.0,
		"vacancy_yoy_change":     -1.5,
		"under_construction":     40,
		"absorption_12mo":        100,
	}})
	assert.Equal(t, 2, res["level_adjustment"])
	assert.Equal(t, 3, res["trend_adjustment"])
	assert.Equal(t, 1, res["pipeline_adjustment"])
	assert.Equal(t, 10, res["final_score"])
}

func TestSubmarketOutlookDefaultsToBase(t *testing.T) {
	c := NewCalculator()
	res := c.scoreSubmarketOutlook(model.Record{})
	assert.Equal(t, 5, res["final_score"])
	assert.Contains(t, res["notes"], "No historical data")
	assert.Contains(t, res["notes"], "No YoY trend data")
	assert.Contains(t, res["notes"], "No pipeline data")
}

func TestMigrationGDPScore(t *testing.T) {
	c := NewCalculator()
	res := c.scoreMigrationGDP(model.Record{
		"employment": map[string]any{
			"current_growth_market": 1.2,
			"current_growth_us":     0.5,
		},
		"demographics": map[string]any{
			"population_growth_pct_5mi": 4.5,
		},
	})
	assert.Equal(t, 8, res["emp_score"])
	assert.Equal(t, 7, res["pop_score"])
	assert.Equal(t, 8, res["final_score"])
}

func TestMigrationGDPPartialInputs(t *testing.T) {
	c := NewCalculator()
	res := c.scoreMigrationGDP(model.Record{
		"demographics": map[string]any{"population_growth_pct_5mi": 6.0},
	})
	assert.Nil(t, res["emp_score"])
	assert.Equal(t, 8, res["pop_score"])
	assert.Equal(t, 8, res["final_score"])
	assert.Contains(t, res["notes"], "No employment data")
}

func TestMigrationGDPHalfMeanRoundsToEven(t *testing.T) {
	// 8 and 9 average to 8.5; half-to-even keeps 8.
	c := NewCalculator()
	res := c.scoreMigrationGDP(model.Record{
		"employment": map[string]any{
			"current_growth_market": 3.2,
			"current_growth_us":     2.5,
		},
		"demographics": map[string]any{
			"population_growth_pct_5mi": 8.5,
		},
	})
	assert.Equal(t, 8, res["emp_score"])
	assert.Equal(t, 9, res["pop_score"])
	assert.Equal(t, 8, res["final_score"])
}

func TestParkingScore(t *testing.T) {
	c := NewCalculator()
	res := c.scoreParking(model.Record{"property": map[string]any{
		"parking_ratio":          1.6,
		"parking_spaces":         320,
		"parking_surface_spaces": 0,
		"parking_covered_spaces": 200,
		"units":                  200,
	}})
	assert.Equal(t, 9, res["base_score"])
	assert.Equal(t, -1, res["underground_penalty"])
	assert.Equal(t, 8, res["final_score"])
	assert.Contains(t, res["notes"], "Underground-only (-1)")
}

func TestParkingFallsBackToSubjectPage(t *testing.T) {
	c := NewCalculator()
	res := c.scoreParking(model.Record{
		"property":         map[string]any{},
		"subject_property": map[string]any{"parking_ratio": 2.1},
	})
	assert.Equal(t, 10, res["final_score"])
}

func TestAmenitiesScore(t *testing.T) {
	c := NewCalculator()
	res := c.scoreAmenities(model.Record{"property": map[string]any{
		"amenities": map[string][]string{
			"site": {"Pool", "Dog Park", "Grill Area"},
			"unit": {"Washer/Dryer Hookup", "Air Conditioning"},
		},
	}})
	assert.Equal(t, 1.8, res["site_score"])
	assert.Equal(t, 2.5, res["unit_score"])
	assert.Equal(t, 4, res["final_score"])
	assert.Equal(t, "Site: 1.8/5 (3 items) | Unit: 2.5/5 (2 items)", res["notes"])
}

func TestAmenitiesHandlesDecodedShape(t *testing.T) {
	// Shape after a JSON round trip through the store.
	c := NewCalculator()
	res := c.scoreAmenities(model.Record{"property": map[string]any{
		"amenities": map[string]any{
			"site": []any{"Pool", "Fitness Center", "Clubhouse"},
			"unit": []any{"Washer/Dryer", "Dishwasher"},
		},
	}})
	assert.Equal(t, 3.0, res["site_score"])
	assert.Equal(t, 2.0, res["unit_score"])
	assert.Equal(t, 5, res["final_score"])
}

func TestAmenitiesHalfTotalRoundsToEven(t *testing.T) {
	// 2.5 + 2.0 lands exactly between 4 and 5; half-to-even keeps 4.
	c := NewCalculator()
	res := c.scoreAmenities(model.Record{"property": map[string]any{
		"amenities": map[string][]string{
			"site": {"Pool", "Fitness Center", "Business Center"},
			"unit": {"Washer/Dryer", "Dishwasher"},
		},
	}})
	assert.Equal(t, 2.5, res["site_score"])
	assert.Equal(t, 2.0, res["unit_score"])
	assert.Equal(t, 4, res["final_score"])
}

func TestAmenitiesSiteScoreCapped(t *testing.T) {
	c := NewCalculator()
	res := c.scoreAmenities(model.Record{"property": map[string]any{
		"amenities": map[string][]string{
			"site": {
				"Pool", "Fitness Center", "Clubhouse", "Business Center",
				"Playground", "Dog Park", "Concierge", "Basketball Court",
			},
			"unit": {"Washer/Dryer", "Dishwasher"},
		},
	}})
	// The capped side reports the integer ceiling, not a rounded tally.
	assert.Equal(t, 5, res["site_score"])
	assert.Equal(t, 2.0, res["unit_score"])
	assert.Equal(t, 7, res["final_score"])
}

func TestAmenitiesMissing(t *testing.T) {
	c := NewCalculator()
	res := c.scoreAmenities(model.Record{})
	assert.Nil(t, res["final_score"])
	assert.Equal(t, "No amenity data available", res["notes"])
}

func TestUnitMixScore(t *testing.T) {
	c := NewCalculator()
	res := c.scoreUnitMix(model.Record{"property": map[string]any{
		"avg_unit_size": 950,
		"units":         200,
		"unit_mix": []model.UnitMixEntry{
			{Bedrooms: 1, Units: 40},
			{Bedrooms: 2, Units: 100},
			{Bedrooms: 3, Units: 60},
		},
	}})
	assert.Equal(t, 8, res["size_score"])
	assert.Equal(t, 10, res["mix_score"])
	assert.Equal(t, 160, res["units_2_3_br"])
	assert.Equal(t, 80.0, res["pct_2_3_br"])
	assert.Equal(t, 9, res["final_score"])
	assert.Equal(t, "Size: 950sf (8) | Mix: 80% 2-3BR (10)", res["notes"])
}

func TestUnitMixHalfMeanRoundsToEven(t *testing.T) {
	// 10 and 3 average to 6.5; half-to-even keeps 6.
	c := NewCalculator()
	res := c.scoreUnitMix(model.Record{"property": map[string]any{
		"avg_unit_size": 1100,
		"units":         100,
		"unit_mix": []model.UnitMixEntry{
			{Bedrooms: 1, Units: 70},
			{Bedrooms: 2, Units: 30},
		},
	}})
	assert.Equal(t, 10, res["size_score"])
	assert.Equal(t, 3, res["mix_score"])
	assert.Equal(t, 6, res["final_score"])
}

func TestUnitMixSubjectFallback(t *testing.T) {
	c := NewCalculator()
	res := c.scoreUnitMix(model.Record{
		"property":         map[string]any{},
		"subject_property": map[string]any{"avg_unit_size": 1050},
	})
	assert.Equal(t, 10, res["size_score"])
	assert.Nil(t, res["mix_score"])
	assert.Equal(t, 10, res["final_score"])
	assert.Contains(t, res["notes"], "No unit mix data")
}

func TestLossToLeaseBlended(t *testing.T) {
	c := NewCalculator()
	res := c.scoreLossToLease(model.Record{"rent_comps": map[string]any{
		"subject_current_rent":   1300,
		"avg_comp_rent_per_unit": 1200,
		"submarket_avg_rent":     1250,
	}})
	assert.Equal(t, 8.3, res["ltl_vs_comps_pct"])
	assert.Equal(t, 4.0, res["ltl_vs_submarket_pct"])
	assert.Equal(t, 6.6, res["blended_ltl_pct"])
	assert.Equal(t, 3, res["final_score"])
	assert.Equal(t, "vs Comps: +8.3% | vs Submarket: +4.0% | Blended: +6.6%", res["notes"])
}

func TestLossToLeaseSingleSource(t *testing.T) {
	c := NewCalculator()
	res := c.scoreLossToLease(model.Record{
		"rent_comps": map[string]any{"subject_current_rent": 1000},
		"demographics": map[string]any{
			"submarket_avg_rent": 1250,
		},
	})
	// -20% below market uses the submarket leg alone.
	assert.Nil(t, res["ltl_vs_comps_pct"])
	assert.Equal(t, -20.0, res["ltl_vs_submarket_pct"])
	assert.Equal(t, 10, res["final_score"])
}

func TestLossToLeaseMissingData(t *testing.T) {
	c := NewCalculator()
	res := c.scoreLossToLease(model.Record{})
	assert.Nil(t, res["final_score"])
	assert.Equal(t, "Missing rent data for LTL calculation", res["notes"])
}

func TestBusinessFriendlyScore(t *testing.T) {
	c := NewCalculator()

	configFor := func(state any) model.Record {
		details := map[string]any{}
		if state != nil {
			details["state"] = state
		}
		return model.Record{"config": map[string]any{"property_details": details}}
	}

	res := c.scoreBusinessFriendly(configFor("TX"))
	assert.Equal(t, 10, res["final_score"])
	assert.Equal(t, "TX: Very business-friendly (no rent control, easy eviction)", res["notes"])

	res = c.scoreBusinessFriendly(configFor("Missouri"))
	assert.Equal(t, 8, res["final_score"])
	assert.Equal(t, "MO: Business-friendly environment", res["notes"])

	res = c.scoreBusinessFriendly(configFor("ca"))
	assert.Equal(t, 1, res["final_score"])
	assert.Equal(t, "CA: Heavy regulation (rent control, strict tenant laws)", res["notes"])

	res = c.scoreBusinessFriendly(configFor("ZZ"))
	assert.Nil(t, res["final_score"])
	assert.Equal(t, "State ZZ not in lookup table", res["notes"])

	res = c.scoreBusinessFriendly(configFor(nil))
	assert.Nil(t, res["final_score"])
	assert.Equal(t, "No state data available", res["notes"])
}

func TestNuisancePassthrough(t *testing.T) {
	c := NewCalculator()
	res := c.scoreNuisance(model.Record{"web_demographics": map[string]any{
		"nuisance_data": map[string]any{
			"severe_count":   0,
			"moderate_count": 2,
			"minor_count":    1,
			"nuisances": []any{
				map[string]any{"type": "motel", "name": "Budget Inn"},
				map[string]any{"type": "liquor_store"},
				map[string]any{"type": "gas_station", "name": "Unnamed"},
			},
			"final_score": 7,
			"notes":       "3 nuisances within radius",
		},
	}})
	assert.Equal(t, "OpenStreetMap/Overpass API", res["source"])
	assert.Equal(t, 2, res["moderate_count"])
	assert.Equal(t, 1, res["minor_count"])
	assert.Equal(t, 0, res["industrial_count"])
	assert.Equal(t, "motel (Budget Inn), liquor_store, gas_station", res["nuisances_list"])
	assert.Equal(t, 7, res["python_score"])
	assert.Equal(t, "3 nuisances within radius", res["notes"])
}

func TestNuisanceUnavailable(t *testing.T) {
	c := NewCalculator()

	res := c.scoreNuisance(model.Record{})
	assert.Equal(t, "Nuisance check unavailable: No nuisance data", res["notes"])
	assert.Nil(t, res["python_score"])

	res = c.scoreNuisance(model.Record{"web_demographics": map[string]any{
		"nuisance_data": map[string]any{"error": "Overpass timeout"},
	}})
	assert.Equal(t, "Nuisance check unavailable: Overpass timeout", res["notes"])
}

func TestClimateRiskPassthrough(t *testing.T) {
	c := NewCalculator()
	res := c.scoreClimateRisk(model.Record{"web_demographics": map[string]any{
		"climate_risk_data": map[string]any{
			"flood_zone":      "X",
			"flood_zone_desc": "Minimal flood hazard",
			"flood_is_sfha":   false,
			"flood_score":     10,
			"heat_days":       42,
			"heat_score":      7,
			"final_score":     8.4,
			"notes":           "Low overall climate risk",
		},
	}})
	assert.Equal(t, "FEMA + USDA + Open-Meteo", res["source"])
	assert.Equal(t, "X", res["flood_zone"])
	assert.Equal(t, false, res["flood_is_sfha"])
	assert.Equal(t, 8.4, res["final_score"])
	assert.Equal(t, "Low overall climate risk", res["notes"])
	assert.Nil(t, res["fire_score"])
}

func TestEmployerStabilityPassthrough(t *testing.T) {
	c := NewCalculator()
	res := c.scoreEmployerStability(model.Record{"web_demographics": map[string]any{
		"employer_stability_data": map[string]any{
			"county_fips":         "29095",
			"county_name":         "Jackson County",
			"state":               "MO",
			"total_employment":    312000,
			"recession_proof_pct": 31.2,
			"cyclical_pct":        18.4,
			"rri":                 62.5,
			"final_score":         7,
			"notes":               "Diverse employment base",
		},
	}})
	assert.Equal(t, "BLS QCEW", res["source"])
	assert.Equal(t, "29095", res["county_fips"])
	assert.Equal(t, 31.2, res["recession_proof_pct"])
	assert.Equal(t, 7, res["final_score"])

	res = c.scoreEmployerStability(model.Record{})
	assert.Equal(t, "Employer stability unavailable: No employer data", res["notes"])
	assert.Nil(t, res["final_score"])
}

func TestComponentsDoNotShareState(t *testing.T) {
	// Two records scored back to back must not leak values between runs.
	c := NewCalculator()
	first := c.CalculateAll(model.Record{"market": map[string]any{
		"delivered_12mo":  100,
		"absorption_12mo": 150,
	}})
	second := c.CalculateAll(model.Record{})

	firstScores := first["stage2_scores"].(map[string]any)
	secondScores := second["stage2_scores"].(map[string]any)

	firstSD := firstScores["supply_demand"].(map[string]any)
	secondSD := secondScores["supply_demand"].(map[string]any)
	assert.Equal(t, 8, firstSD["final_score"])
	assert.Nil(t, secondSD["final_score"])
}

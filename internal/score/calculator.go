// Package score computes the eleven stage-two investment component scores
// from an extracted property record. Every component returns a result map
// carrying its intermediate values so the spreadsheet side can show its
// work; a component missing its inputs reports a nil final_score and a
// note instead of failing the run.
package score

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
)

// Calculator derives component scores on a 1-10 scale.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateAll computes every component and stores the result set under the
// record's stage2_scores category. All eleven keys are always present.
func (c *Calculator) CalculateAll(rec model.Record) model.Record {
	scores := map[string]any{
		"supply_demand":      c.scoreSupplyDemand(rec),
		"submarket_outlook":  c.scoreSubmarketOutlook(rec),
		"migration_gdp":      c.scoreMigrationGDP(rec),
		"parking":            c.scoreParking(rec),
		"amenities":          c.scoreAmenities(rec),
		"unit_mix":           c.scoreUnitMix(rec),
		"loss_to_lease":      c.scoreLossToLease(rec),
		"business_friendly":  c.scoreBusinessFriendly(rec),
		"nuisance":           c.scoreNuisance(rec),
		"climate_risk":       c.scoreClimateRisk(rec),
		"employer_stability": c.scoreEmployerStability(rec),
	}
	rec["stage2_scores"] = scores

	zap.L().Info("score: stage two components calculated", zap.Int("components", len(scores)))
	return rec
}

// category returns a record category map, or an empty map when absent so
// field lookups degrade to missing values.
func category(rec model.Record, name string) map[string]any {
	if m, ok := rec[name].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// num reads a numeric field, tolerating the int/float64 split that comes
// from extraction versus a JSON round trip.
func num(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// numFrom tries the same field across categories in priority order. Zero is
// a valid value, so fallbacks trigger only on absence.
func numFrom(key string, cats ...map[string]any) (float64, bool) {
	for _, m := range cats {
		if v, ok := num(m, key); ok {
			return v, true
		}
	}
	return 0, false
}

// numNonZero is the fallback variant for fields where a zero reading means
// the value never extracted, so it falls through to the next category.
func numNonZero(key string, cats ...map[string]any) (float64, bool) {
	for _, m := range cats {
		if v, ok := num(m, key); ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}

func clamp110(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// Rounding is half-to-even throughout, matching the reference scores the
// downstream spreadsheet was calibrated against.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

package score

import (
	"github.com/sells-group/screener-cli/internal/model"
)

// scoreSupplyDemand rates the absorption/delivery balance. The base score
// comes from the absorption-to-delivery ratio; an adjustment layers in
// pipeline pressure from units under construction.
func (c *Calculator) scoreSupplyDemand(rec model.Record) map[string]any {
	market := category(rec, "market")

	absorption, hasAbs := num(market, "absorption_12mo")
	delivered, hasDel := num(market, "delivered_12mo")
	underConstruction, hasUC := num(market, "under_construction")

	result := map[string]any{
		"absorption_12mo":     market["absorption_12mo"],
		"delivered_12mo":      market["delivered_12mo"],
		"under_construction":  market["under_construction"],
		"absorption_ratio":    nil,
		"pipeline_ratio":      nil,
		"base_score":          nil,
		"pipeline_adjustment": nil,
		"final_score":         nil,
		"notes":               nil,
	}

	if !hasAbs || !hasDel {
		result["notes"] = "Missing absorption or delivery data"
		return result
	}

	// Zero-delivery markets need special handling before the ratio.
	switch {
	case delivered == 0 && absorption == 0:
		result["absorption_ratio"] = "N/A"
		result["base_score"] = 5
		result["pipeline_adjustment"] = 0
		result["final_score"] = 5
		result["notes"] = "Stagnant market (no deliveries or absorption)"
		return result
	case delivered == 0 && absorption > 0:
		result["absorption_ratio"] = "Infinite (no deliveries)"
		result["base_score"] = 9
		result["pipeline_adjustment"] = 0
		result["final_score"] = 9
		result["notes"] = "No deliveries, positive absorption"
		return result
	case delivered == 0 && absorption < 0:
		result["absorption_ratio"] = "N/A"
		result["base_score"] = 4
		result["pipeline_adjustment"] = 0
		result["final_score"] = 4
		result["notes"] = "No deliveries but negative absorption (move-outs)"
		return result
	}

	base := 0
	notes := ""
	if absorption < 0 {
		result["absorption_ratio"] = round2(absorption / delivered)
		base = 3
		notes = "Negative absorption (net move-outs) - capped at 3"
	} else {
		ratio := absorption / delivered
		result["absorption_ratio"] = round2(ratio)
		switch {
		case ratio >= 2.0:
			base = 10
		case ratio >= 1.5:
			base = 8
		case ratio >= 1.0:
			base = 6
		case ratio >= 0.5:
			base = 4
		default:
			base = 2
		}
	}
	result["base_score"] = base

	adjustment := 0
	if hasUC && absorption > 0 {
		pipelineRatio := underConstruction / absorption
		result["pipeline_ratio"] = round2(pipelineRatio)
		switch {
		case pipelineRatio > 1.5:
			adjustment = -2
			notes += "Heavy pipeline (-2)"
		case pipelineRatio > 1.0:
			adjustment = -1
			notes += "Moderate pipeline (-1)"
		case pipelineRatio < 0.5:
			adjustment = 1
			notes += "Light pipeline (+1)"
		}
	} else if !hasUC {
		notes += " No UC data"
	}
	result["pipeline_adjustment"] = adjustment

	result["final_score"] = clamp110(base + adjustment)
	if notes != "" {
		result["notes"] = notes
	}
	return result
}

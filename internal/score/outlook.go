package score

import (
	"fmt"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// scoreSubmarketOutlook rates where submarket vacancy is headed. Three
// adjustments apply to a base of five: current vacancy versus the
// historical average, the YoY vacancy trend (weighted heaviest), and
// pipeline pressure against absorption.
func (c *Calculator) scoreSubmarketOutlook(rec model.Record) map[string]any {
	market := category(rec, "market")

	currentVacancy, hasVac := num(market, "submarket_vacancy_rate")
	vacancyYoY, hasYoY := num(market, "vacancy_yoy_change")
	historicalAvg, hasHist := num(market, "vacancy_historical_avg")
	underConstruction, hasUC := num(market, "under_construction")
	absorption, hasAbs := num(market, "absorption_12mo")

	result := map[string]any{
		"current_vacancy":        market["submarket_vacancy_rate"],
		"vacancy_yoy_change":     market["vacancy_yoy_change"],
		"vacancy_historical_avg": market["vacancy_historical_avg"],
		"under_construction":     market["under_construction"],
		"absorption_12mo":        market["absorption_12mo"],
		"vacancy_vs_historical":  nil,
		"level_adjustment":       nil,
		"trend_adjustment":       nil,
		"pipeline_adjustment":    nil,
		"pipeline_ratio":         nil,
		"base_score":             5,
		"final_score":            nil,
		"notes":                  nil,
	}

	var adjustments []string

	level := 0
	if hasVac && hasHist {
		diff := currentVacancy - historicalAvg
		result["vacancy_vs_historical"] = round1(diff)
		switch {
		case diff <= -2.0:
			level = 2
			adjustments = append(adjustments, "Well below historical avg (+2)")
		case diff <= -0.5:
			level = 1
			adjustments = append(adjustments, "Below historical avg (+1)")
		case diff <= 0.5:
			adjustments = append(adjustments, "Near historical avg (0)")
		case diff <= 2.0:
			level = -1
			adjustments = append(adjustments, "Above historical avg (-1)")
		default:
			level = -2
			adjustments = append(adjustments, "Well above historical avg (-2)")
		}
	} else {
		adjustments = append(adjustments, "No historical data")
	}
	result["level_adjustment"] = level

	trend := 0
	if hasYoY {
		switch {
		case vacancyYoY <= -1.0:
			trend = 3
			adjustments = append(adjustments, fmt.Sprintf("Improving fast %v%% (+3)", vacancyYoY))
		case vacancyYoY <= -0.5:
			trend = 2
			adjustments = append(adjustments, fmt.Sprintf("Improving %v%% (+2)", vacancyYoY))
		case vacancyYoY < 0:
			trend = 1
			adjustments = append(adjustments, fmt.Sprintf("Slightly improving %v%% (+1)", vacancyYoY))
		case vacancyYoY == 0:
			adjustments = append(adjustments, "Flat trend (0)")
		case vacancyYoY <= 0.5:
			trend = -1
			adjustments = append(adjustments, fmt.Sprintf("Slightly worsening +%v%% (-1)", vacancyYoY))
		case vacancyYoY <= 1.0:
			trend = -2
			adjustments = append(adjustments, fmt.Sprintf("Worsening +%v%% (-2)", vacancyYoY))
		default:
			trend = -3
			adjustments = append(adjustments, fmt.Sprintf("Worsening fast +%v%% (-3)", vacancyYoY))
		}
	} else {
		adjustments = append(adjustments, "No YoY trend data")
	}
	result["trend_adjustment"] = trend

	pipeline := 0
	if hasUC && hasAbs && absorption > 0 {
		ratio := underConstruction / absorption
		result["pipeline_ratio"] = round2(ratio)
		switch {
		case ratio < 0.5:
			pipeline = 1
			adjustments = append(adjustments, fmt.Sprintf("Light pipeline %.1fx (+1)", ratio))
		case ratio <= 1.0:
			adjustments = append(adjustments, fmt.Sprintf("Manageable pipeline %.1fx (0)", ratio))
		case ratio <= 1.5:
			pipeline = -1
			adjustments = append(adjustments, fmt.Sprintf("Moderate pipeline %.1fx (-1)", ratio))
		default:
			pipeline = -2
			adjustments = append(adjustments, fmt.Sprintf("Heavy pipeline %.1fx (-2)", ratio))
		}
	} else if hasAbs && absorption <= 0 {
		adjustments = append(adjustments, "Negative/zero absorption - pipeline N/A")
	} else {
		adjustments = append(adjustments, "No pipeline data")
	}
	result["pipeline_adjustment"] = pipeline

	result["final_score"] = clamp110(5 + level + trend + pipeline)
	result["notes"] = strings.Join(adjustments, " | ")
	return result
}

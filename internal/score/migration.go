package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/screener-cli/internal/model"
)

// scoreMigrationGDP averages two sub-scores: local job growth versus the
// US, and 5-mile population growth as a migration proxy.
func (c *Calculator) scoreMigrationGDP(rec model.Record) map[string]any {
	employment := category(rec, "employment")
	demographics := category(rec, "demographics")

	empMarket, hasMkt := num(employment, "current_growth_market")
	empUS, hasUS := num(employment, "current_growth_us")
	popGrowth, hasPop := num(demographics, "population_growth_pct_5mi")

	result := map[string]any{
		"emp_growth_market": employment["current_growth_market"],
		"emp_growth_us":     employment["current_growth_us"],
		"emp_vs_us":         nil,
		"pop_growth_5mi":    demographics["population_growth_pct_5mi"],
		"emp_score":         nil,
		"pop_score":         nil,
		"final_score":       nil,
		"notes":             nil,
	}

	var subs []int
	var notes []string

	if hasMkt && hasUS {
		diff := empMarket - empUS
		result["emp_vs_us"] = round2(diff)
		var s int
		switch {
		case diff >= 1.0:
			s = 10
		case diff >= 0.5:
			s = 8
		case diff >= 0:
			s = 6
		case diff >= -0.5:
			s = 5
		case diff >= -1.0:
			s = 4
		case diff >= -1.5:
			s = 3
		default:
			s = 2
		}
		result["emp_score"] = s
		subs = append(subs, s)
		notes = append(notes, fmt.Sprintf("Jobs: %+.1f%% vs US (%d)", diff, s))
	} else {
		notes = append(notes, "No employment data")
	}

	if hasPop {
		var s int
		switch {
		case popGrowth >= 10:
			s = 10
		case popGrowth >= 8:
			s = 9
		case popGrowth >= 6:
			s = 8
		case popGrowth >= 4:
			s = 7
		case popGrowth >= 2:
			s = 6
		case popGrowth >= 0:
			s = 5
		case popGrowth >= -2:
			s = 4
		default:
			s = 2
		}
		result["pop_score"] = s
		subs = append(subs, s)
		notes = append(notes, fmt.Sprintf("Pop: %+v%% (%d)", popGrowth, s))
	} else {
		notes = append(notes, "No population data")
	}

	if len(subs) > 0 {
		sum := 0
		for _, s := range subs {
			sum += s
		}
		result["final_score"] = int(math.RoundToEven(float64(sum) / float64(len(subs))))
	}

	result["notes"] = strings.Join(notes, " | ")
	return result
}

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// parseInt parses an integer that may carry thousands separators, a leading
// dollar sign, or a trailing percent sign.
func parseInt(s string) (int, bool) {
	s = cleanNumber(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloat behaves like parseInt for floating point values.
func parseFloat(s string) (float64, bool) {
	s = cleanNumber(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseAccountingInt parses an integer where parentheses denote a negative,
// per accounting notation: "(5)" is -5. Plain "-5" and "5" also parse.
func parseAccountingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	n, ok := parseInt(s)
	if !ok {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// parseAccountingFloat is parseAccountingInt for percentages like "(0.4%)".
func parseAccountingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	f, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

func trimField(s string) string {
	return strings.TrimSpace(s)
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	return s
}

var (
	asciiOnly  = regexp.MustCompile(`[^\x20-\x7E]`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// cleanPropertyName strips encoding artifacts from a property name and
// truncates very long names for spreadsheet compatibility.
func cleanPropertyName(name string) string {
	replacer := strings.NewReplacer(
		"�", "",
		"\x00", "",
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
		"–", "-",
		"—", "-",
	)
	name = replacer.Replace(name)
	name = asciiOnly.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(strings.TrimSpace(name), " ")
	if len(name) > 50 {
		name = name[:47] + "..."
	}
	return name
}

// cleanCity drops newlines and immediately repeated words from a city name,
// e.g. "Olathe Olathe" becomes "Olathe".
func cleanCity(city string) string {
	city = strings.TrimSpace(strings.ReplaceAll(city, "\n", " "))
	words := strings.Fields(city)
	var out []string
	for _, w := range words {
		if len(out) == 0 || !strings.EqualFold(w, out[len(out)-1]) {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

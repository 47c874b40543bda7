package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	// Summary banner, e.g. "North Oak Crossing Apartments12 $122 $24.7
	// 13.7%Sale Comparables". Price/unit is reported in thousands and the
	// average price in millions.
	saleSummaryRe = regexp.MustCompile(`Apartments\s*(\d+)\s+\$?([\d,]+)\s+\$?([\d.]+)\s+([\d.]+)%\s*Sale Comparables`)

	saleSectionRe = regexp.MustCompile(`(?s)Sale Date\s+Price\s+Price/Unit\s+Price/SF\s*Sale Information(.*?)(?:Page \d{2,}|Sale Comparables Photo|$)`)

	// Data row: rank, year built, units, vacancy at sale, date, price,
	// price/unit, price/SF.
	saleDataRowRe = regexp.MustCompile(`^\s*(\d+)\s+(\d{4})\s+(\d+)\s+([\d.]+)%\s+(\d{1,2}/\d{1,2}/\d{4})\s+\$([\d,]+)\s+\$([\d,]+)\s+\$(\d+)`)

	saleStreetHintRe = regexp.MustCompile(`(?i)(St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Pkwy|Pky|Cir|Pl)`)

	// Address and name share a line with no separator, e.g.
	// "7005 N Bales AveThe Bluffs-". The name starts at the first
	// capital+lowercase pair after the street suffix, allowing for a
	// single-letter direction suffix like "6201 NW 70th St".
	saleAddrNameRe = regexp.MustCompile(`^(\d+.*?(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Pkwy|Pky|Cir|Pl|Tfwy|\d+(?:st|nd|rd|th))(?:\s?[NSEW])?)([A-Z][a-z].*?)[-\x{fffd}]?$`)

	// Detail page header: Name - Address, then City, ST ZIP - Submarket.
	saleDetailPageRe = regexp.MustCompile(`([A-Z][A-Za-z0-9][A-Za-z0-9 \t\-'\.]+?)\s*-\s*(\d+[A-Za-z\d \t\-]+(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Pkwy|Pky|Cir|Pl|Tfwy|\d+(?:st|nd|rd|th)))\n([A-Z][a-z']+(?:\s[A-Z][a-z']+)?),\s*([A-Z]{2})\s+(\d{5})\s*-\s*([A-Za-z\s\-]+?)Neighborhood`)

	saleCapRateRe  = regexp.MustCompile(`Cap Rate:\s*([\d.]+)%`)
	salePropTypeRe = regexp.MustCompile(`Type:\s*([A-Za-z\s\-]+?)(?:\n|Rent)`)
)

// extractSaleComps pulls the sale comparables section: summary averages and
// the individual sale table enriched from comp detail pages.
func extractSaleComps(doc *pdftext.Document, rec model.Record) {
	sc := rec.EnsureCategory("sale_comps")

	if m, ok := searchDoc(doc, saleSummaryRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			rec.SetWithPage("sale_comps", "comp_count", v, m.page)
		}
		if v, ok := parseInt(m.group(2)); ok {
			rec.SetWithPage("sale_comps", "avg_price_per_unit", v*1000, m.page)
		}
		if v, ok := parseFloat(m.group(3)); ok {
			rec.SetWithPage("sale_comps", "avg_price", v*1_000_000, m.page)
		}
		if v, ok := parseFloat(m.group(4)); ok {
			rec.SetWithPage("sale_comps", "avg_vacancy_at_sale", v, m.page)
		}
	}

	comps := parseSaleCompTable(doc)
	if len(comps) > 0 {
		enrichSaleComps(comps, doc.Text)
		sc["comparable_properties"] = comps
		if _, have := sc["comp_count"]; !have {
			sc["comp_count"] = len(comps)
		}
		zap.L().Info("extract: sale comps", zap.Int("count", len(comps)))
	}
}

// parseSaleCompTable reads the sale table, where each comp's address+name
// line precedes its numeric data line.
func parseSaleCompTable(doc *pdftext.Document) []*model.SaleComparable {
	sec, ok := searchDoc(doc, saleSectionRe)
	if !ok {
		return nil
	}
	sectionText := sec.group(1)
	sectionBase := sec.start + strings.Index(doc.Text[sec.start:sec.end], sectionText)

	var comps []*model.SaleComparable
	currentAddrName := ""
	offset := 0
	for _, raw := range strings.Split(sectionText, "\n") {
		lineStart := offset
		offset += len(raw) + 1
		line := strings.TrimSpace(raw)
		if line == "" || line == "-" || strings.Contains(line, "Sale Comparables") {
			continue
		}

		m := saleDataRowRe.FindStringSubmatch(line)
		if m == nil {
			if len(line) > 5 && saleStreetHintRe.MatchString(line) {
				currentAddrName = line
			}
			continue
		}

		if currentAddrName != "" {
			comp := buildSaleComp(currentAddrName, m)
			if comp != nil {
				comp.SourcePage = doc.PageAt(sectionBase + lineStart)
				comps = append(comps, comp)
			}
		}
		currentAddrName = ""
	}

	if len(comps) > model.MaxSaleComps {
		comps = comps[:model.MaxSaleComps]
	}
	return comps
}

func buildSaleComp(addrName string, m []string) *model.SaleComparable {
	comp := &model.SaleComparable{SaleDate: m[5]}

	var ok bool
	if comp.Rank, ok = parseInt(m[1]); !ok {
		return nil
	}
	comp.YearBuilt, _ = parseInt(m[2])
	comp.Units, _ = parseInt(m[3])
	comp.VacancyAtSale, _ = parseFloat(m[4])
	comp.SalePrice, _ = parseInt(m[6])
	comp.PricePerUnit, _ = parseInt(m[7])
	comp.PricePerSF, _ = parseInt(m[8])

	if am := saleAddrNameRe.FindStringSubmatch(addrName); am != nil {
		comp.Address = strings.TrimSpace(am[1])
		comp.Name = cleanPropertyName(strings.TrimSpace(am[2]))
	} else {
		comp.Name = cleanPropertyName(strings.TrimRight(addrName, "-�"))
	}
	if comp.Name == "" {
		comp.Name = "Comp " + m[1]
	}

	return comp
}

type saleDetail struct {
	submarket    string
	distance     float64
	capRate      float64
	propertyType string
	city         string
	state        string
}

func enrichSaleComps(comps []*model.SaleComparable, text string) {
	details := saleCompDetailPages(text)

	for _, comp := range comps {
		nameLower := strings.ToLower(comp.Name)
		addrLower := strings.ToLower(comp.Address)

		var d *saleDetail
		if addrLower != "" {
			if found, ok := details["addr:"+addrLower]; ok {
				d = found
			}
		}
		if d == nil {
			for key, info := range details {
				if strings.HasPrefix(key, "addr:") {
					continue
				}
				if strings.Contains(nameLower, key) || strings.Contains(key, nameLower) ||
					(len(nameLower) > 6 && len(key) > 6 && (strings.Contains(key, nameLower[:6]) || strings.Contains(nameLower, key[:6]))) {
					d = info
					break
				}
			}
		}
		if d == nil {
			continue
		}

		comp.Submarket = d.submarket
		comp.DistanceMiles = d.distance
		comp.CapRate = d.capRate
		comp.PropertyType = d.propertyType
		if comp.City == "" {
			comp.City = d.city
		}
		if comp.State == "" {
			comp.State = d.state
		}
	}
}

func saleCompDetailPages(text string) map[string]*saleDetail {
	details := map[string]*saleDetail{}

	for _, idx := range saleDetailPageRe.FindAllStringSubmatchIndex(text, -1) {
		g := func(n int) string { return text[idx[n*2]:idx[n*2+1]] }
		name := strings.TrimSpace(g(1))
		address := strings.TrimSpace(g(2))

		// Page footers match the shape of a detail header; skip them.
		if strings.Contains(name, "Page") || strings.Contains(name, "CoStar") || strings.Contains(name, "Leeds") {
			continue
		}

		d := &saleDetail{
			submarket: strings.TrimSpace(g(6)),
			city:      strings.TrimSpace(g(3)),
			state:     strings.TrimSpace(g(4)),
		}
		tail := text[idx[1]:min(idx[1]+800, len(text))]
		if m := milesRe.FindStringSubmatch(tail); m != nil {
			d.distance, _ = parseFloat(m[1])
		}
		if m := saleCapRateRe.FindStringSubmatch(tail); m != nil {
			d.capRate, _ = parseFloat(m[1])
		}
		if m := salePropTypeRe.FindStringSubmatch(tail); m != nil {
			d.propertyType = strings.TrimSpace(m[1])
		}

		details[strings.ToLower(name)] = d
		details["addr:"+strings.ToLower(address)] = d
	}

	return details
}

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

var (
	// Summary stats row, e.g. "17$1,314 $1.49 6.7%No. Rent Comps". Some
	// reports drop the space between the comp count and the dollar sign.
	rentSummaryRe = regexp.MustCompile(`(\d+)\$?([\d,]+)\s+\$?([\d.]+)\s+([\d.]+)%\s*No\.\s*Rent\s*Comps`)

	rentSubjectCurrentRe = regexp.MustCompile(`Current:\s*\$?([\d,]+)\s*\$?([\d.]+)\s*/SF`)
	rentYearAgoRe        = regexp.MustCompile(`Year Ago:\s*\$?([\d,]+)`)
	rentCompetitorsRe    = regexp.MustCompile(`Competitors:\s*\$?([\d,]+)`)
	rentSubmarketRe      = regexp.MustCompile(`Submarket:\s*\$?([\d,]+)`)

	// Comp table section, identified by its bedroom column headers.
	rentCompSectionRe = regexp.MustCompile(`(?s)Studio\s+1\s*Bed\s+2\s*Bed\s+3\s*Bed(.*?)(?:Rent Comparables Photo|Page \d{2,}|$)`)

	// Row with the property name fused onto the numbers, e.g.
	// "The Jefferson on the Lake352 663 - $1,260 ...". Name, then a 2-4
	// digit unit count, then average SF.
	rentCompFusedRowRe = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\-'\.]+?)(\d{2,4})\s+([\d,]{3,5})\s+`)

	// Older layout: the name sits on its own line and the next line opens
	// with "units avgSF".
	rentCompDataRowRe = regexp.MustCompile(`^(\d{2,4})\s+([\d,]+)\s+`)

	dollarAmountRe = regexp.MustCompile(`\$([\d,]+)(\.\d{1,2})?`)
	rentPSFRe      = regexp.MustCompile(`\$(\d+\.\d{2})`)
	fourDigitRe    = regexp.MustCompile(`\d{4}`)

	rentCompAddrFusedRe = regexp.MustCompile(`(?i)\$\d+\.\d{2}([\d\w\s\-]+(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Tfwy|Pkwy|Cir|Pl|Hwy|Loop|Pky|Lin))`)
	rentCompAddrOldRe   = regexp.MustCompile(`(?i)\$\d+\.\d{2}([\d\w\s\-]+(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Tfwy|Pkwy|Cir|Pl|Hwy|Loop|Pky))\d*\s*\d{4}`)

	// Photo page block carrying vacancy and stories for each comp.
	rentPhotoDetailRe    = regexp.MustCompile(`(?s)Vacancy\s+([\d.]+)%\s*\n([^\n]+)\n(\d+)\s*Units\s*/\s*(\d+)\s*Stor.*?Rent/SF([A-Za-z][A-Za-z\s\-'\.]+?)\n\s*(\d+)`)
	rentPhotoDetailAltRe = regexp.MustCompile(`(?s)Vacancy\s+([\d.]+)%\s*\n([^\n]+?)(\d+)\s*Units\s*/\s*(\d+)\s*Stor.*?Rent/SF\s*\$([\d.]+),([^\n]+)`)

	// Detail page header: address - name, then city, state - neighborhood.
	rentDetailPageRe = regexp.MustCompile(`([\d\-]+[\d\w\s\-]+(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Pkwy|Pky|Cir|Pl|Tfwy))\s*-\s*([A-Za-z][A-Za-z\s\-'\.]+?)\n([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s*([A-Za-z]+)\s*-\s*([A-Za-z\s]+?)Neighborhood`)
	milesRe          = regexp.MustCompile(`([\d.]+)\s*Miles`)

	rentDetailSplitRe = regexp.MustCompile(`Rent Comparables\d+[\d\-]+\s+[A-Z]`)
	rentDetailNameRe  = regexp.MustCompile(`\d+[\w\s\-]+(?:St|Ave|Blvd|Rd|Dr|Ter|Ct|Ln|Way|Pkwy|Cir|Pl|Tfwy)\s*-\s*([A-Za-z][^\d]+?)(?:[A-Z][a-z]+,\s*[A-Za-z]+)`)
	rentDetailCityRe  = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s*[A-Za-z]+`)
	allStudiosRowRe   = regexp.MustCompile(`All Studios\s+(\d+)\s+(\d+)\s+[\d.]+%`)
	totalsRowRe       = regexp.MustCompile(`(?m)Totals\s+[\d,]+\s+\d+\s+100%.*?(\d+\.\d+)%\s*$`)

	leadingDigitsRe = regexp.MustCompile(`^(\d+)`)
	trailingJunkRe  = regexp.MustCompile(`[\-\x{fffd}]+$`)
	trailingRankRe  = regexp.MustCompile(`\s*\d+$`)
)

func allBedsRowRe(beds int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`All %d Beds\s+([\d,]+)\s+(\d+)\s+[\d.]+%%`, beds))
}

// extractRentComps pulls the rent comparables section: summary averages,
// the subject's own rent trend, and the individual comp table enriched from
// photo and detail pages.
func extractRentComps(doc *pdftext.Document, rec model.Record) {
	rc := rec.EnsureCategory("rent_comps")
	set := func(field string, value any, page int) {
		rec.SetWithPage("rent_comps", field, value, page)
	}

	if m, ok := searchDoc(doc, rentSummaryRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("comp_count", v, m.page)
		}
		if v, ok := parseInt(m.group(2)); ok {
			set("avg_comp_rent_per_unit", v, m.page)
		}
		if v, ok := parseFloat(m.group(3)); ok {
			set("avg_comp_rent_psf", v, m.page)
		}
		if v, ok := parseFloat(m.group(4)); ok {
			set("avg_comp_vacancy", v, m.page)
		}
	}

	// The subject property summary page is the more reliable source for
	// competitor averages when both are present.
	if sp, ok := rec["subject_property"].(map[string]any); ok {
		if v, ok := sp["competitor_rent"]; ok {
			if _, have := rc["avg_comp_rent_per_unit"]; !have {
				set("avg_comp_rent_per_unit", v, rec.PageFor("subject_property", "competitor_rent"))
			}
		}
		if v, ok := sp["competitor_vacancy"]; ok {
			if _, have := rc["avg_comp_vacancy"]; !have {
				set("avg_comp_vacancy", v, rec.PageFor("subject_property", "competitor_vacancy"))
			}
		}
	}

	if m, ok := searchDoc(doc, rentSubjectCurrentRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("subject_current_rent", v, m.page)
		}
		if v, ok := parseFloat(m.group(2)); ok {
			set("subject_current_rent_psf", v, m.page)
		}
	}

	prop, _ := rec["property"].(map[string]any)

	// Fall back to the subject's row in the comp table, keyed by its unit
	// count. The rent/SF is the decimal dollar figure before the year.
	if _, have := rc["subject_current_rent_psf"]; !have && prop != nil {
		if units, ok := prop["units"].(int); ok && units > 0 {
			re := regexp.MustCompile(fmt.Sprintf(`%d\s+[\d,]+\s+.*?\$([\d.]+)\s*\d{4}`, units))
			if m, ok := searchDoc(doc, re); ok {
				if psf, ok := parseFloat(m.group(1)); ok && psf >= 0.5 && psf <= 5.0 {
					set("subject_current_rent_psf", psf, m.page)
				}
			}
		}
	}

	if _, have := rc["subject_current_rent"]; !have && prop != nil {
		psf, okPSF := rc["subject_current_rent_psf"].(float64)
		avgSF, okSF := prop["avg_unit_size"].(int)
		if okPSF && okSF && psf > 0 && avgSF > 0 {
			set("subject_current_rent", int(psf*float64(avgSF)), rec.PageFor("rent_comps", "subject_current_rent_psf"))
		}
	}

	if m, ok := searchDoc(doc, rentYearAgoRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("subject_rent_year_ago", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, rentCompetitorsRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("competitor_avg_rent", v, m.page)
		}
	}
	if m, ok := searchDoc(doc, rentSubmarketRe); ok {
		if v, ok := parseInt(m.group(1)); ok {
			set("submarket_avg_rent", v, m.page)
		}
	}

	comps := parseRentCompTable(doc, rec)
	if len(comps) > 0 {
		enrichRentComps(comps, doc.Text)
		rc["comparable_properties"] = comps
		if _, have := rc["comp_count"]; !have {
			rc["comp_count"] = len(comps)
		}
		zap.L().Info("extract: rent comps", zap.Int("count", len(comps)))
	}
}

// parseRentCompTable walks the comp summary table line by line. Two layouts
// exist: the fused layout where the name and figures share a line, and the
// older layout where the name line precedes its data line.
func parseRentCompTable(doc *pdftext.Document, rec model.Record) []*model.RentComparable {
	sec, ok := searchDoc(doc, rentCompSectionRe)
	if !ok {
		return nil
	}
	sectionText := sec.group(1)
	sectionBase := sec.start + strings.Index(doc.Text[sec.start:sec.end], sectionText)

	var comps []*model.RentComparable
	currentName := ""
	offset := 0
	for _, raw := range strings.Split(sectionText, "\n") {
		lineStart := offset
		offset += len(raw) + 1
		line := strings.TrimSpace(raw)
		if line == "" || line == "-" || strings.Contains(line, "Rent Comparables") || strings.Contains(line, "Property Size") {
			continue
		}
		page := doc.PageAt(sectionBase + lineStart)

		if m := rentCompFusedRowRe.FindStringSubmatch(line); m != nil {
			comp := buildRentComp(m[1], m[2], m[3], line, page, rentCompAddrFusedRe)
			if comp != nil {
				comps = append(comps, comp)
			}
			currentName = ""
			continue
		}

		if rentCompDataRowRe.MatchString(line) {
			if len(currentName) > 3 {
				m := rentCompDataRowRe.FindStringSubmatch(line)
				comp := buildRentComp(currentName, m[1], m[2], line, page, rentCompAddrOldRe)
				if comp != nil {
					comps = append(comps, comp)
				}
			}
			currentName = ""
			continue
		}

		// Candidate name line: not numeric-led, not an address fragment.
		if len(line) > 3 && !isDigit(line[0]) {
			currentName = line
		}
	}

	comps = dropSubjectProperty(comps, rec)
	if len(comps) > model.MaxRentComps {
		comps = comps[:model.MaxRentComps]
	}
	return comps
}

func buildRentComp(name, unitsStr, sfStr, line string, page int, addrRe *regexp.Regexp) *model.RentComparable {
	units, okU := parseInt(unitsStr)
	avgSF, okSF := parseInt(sfStr)
	if !okU || !okSF || units < 20 || units > 1000 || avgSF < 400 || avgSF > 2000 {
		return nil
	}

	comp := &model.RentComparable{
		Name:       cleanPropertyName(name),
		Units:      units,
		AvgSF:      avgSF,
		SourcePage: page,
	}

	// Monthly rents are whole-dollar figures; $X.XX values are rent/SF and
	// must not land in the rent list.
	var rents []float64
	for _, m := range dollarAmountRe.FindAllStringSubmatch(line, -1) {
		if m[2] != "" {
			continue
		}
		if v, ok := parseInt(m[1]); ok && v >= 400 {
			rents = append(rents, float64(v))
		}
	}
	comp.Rents = map[string]float64{}
	switch {
	case len(rents) >= 4:
		// Four rent columns means the studio column is populated.
		comp.Rents["studio"] = rents[0]
		comp.Rents["1bed"] = rents[1]
		comp.Rents["2bed"] = rents[2]
		comp.Rents["3bed"] = rents[3]
	case len(rents) == 3:
		comp.Rents["1bed"] = rents[0]
		comp.Rents["2bed"] = rents[1]
		comp.Rents["3bed"] = rents[2]
	case len(rents) == 2:
		comp.Rents["1bed"] = rents[0]
		comp.Rents["2bed"] = rents[1]
	case len(rents) == 1:
		comp.Rents["1bed"] = rents[0]
	}

	if m := rentPSFRe.FindStringSubmatch(line); m != nil {
		comp.RentPSF, _ = parseFloat(m[1])
	}

	years := fourDigitRe.FindAllString(line, -1)
	for i := len(years) - 1; i >= 0; i-- {
		if y, ok := parseInt(years[i]); ok && y >= 1960 && y <= 2025 {
			comp.YearBuilt = y
			break
		}
	}

	if m := addrRe.FindStringSubmatch(line); m != nil {
		if addr := strings.TrimSpace(m[1]); len(addr) > 5 {
			comp.Address = addr
		}
	}

	return comp
}

func dropSubjectProperty(comps []*model.RentComparable, rec model.Record) []*model.RentComparable {
	var subjAddr, subjName string
	if prop, ok := rec["property"].(map[string]any); ok {
		subjAddr, _ = prop["address"].(string)
		subjName, _ = prop["name"].(string)
	}
	subjAddr = strings.ToLower(subjAddr)
	subjKey := strings.TrimSpace(strings.NewReplacer("apartments", "", "apartment", "").Replace(strings.ToLower(subjName)))

	out := comps[:0]
	for _, c := range comps {
		if subjAddr != "" && strings.Contains(strings.ToLower(c.Address), subjAddr) {
			continue
		}
		if subjKey != "" && strings.Contains(strings.ToLower(c.Name), subjKey) {
			continue
		}
		out = append(out, c)
	}
	return out
}

type rentPhotoDetail struct {
	vacancy float64
	stories int
}

type rentPageDetail struct {
	city         string
	state        string
	neighborhood string
	distance     float64
	address      string
}

type rentUnitCounts struct {
	counts     map[string]int
	concession *float64
}

func enrichRentComps(comps []*model.RentComparable, text string) {
	photos := rentCompPhotoDetails(text)
	pages := rentCompDetailPages(text)
	unitCounts := rentCompUnitCounts(text)

	for _, comp := range comps {
		nameLower := strings.ToLower(comp.Name)
		addrLower := strings.ToLower(comp.Address)

		for key, d := range photos {
			if fuzzyNameMatch(nameLower, key) {
				if comp.VacancyPct == nil {
					v := d.vacancy
					comp.VacancyPct = &v
				}
				if comp.Stories == 0 {
					comp.Stories = d.stories
				}
				break
			}
		}

		matched := false
		if addrLower != "" {
			if d, ok := pages["addr:"+addrLower]; ok {
				applyRentPageDetail(comp, d)
				matched = true
			} else {
				// Street-number match covers truncated street names.
				num := leadingDigitsRe.FindString(addrLower)
				if num != "" {
					for key, d := range pages {
						if strings.HasPrefix(key, "addr:") && leadingDigitsRe.FindString(d.address) == num {
							applyRentPageDetail(comp, d)
							matched = true
							break
						}
					}
				}
			}
		}
		if !matched {
			for key, d := range pages {
				if strings.HasPrefix(key, "addr:") {
					continue
				}
				if strings.Contains(key, nameLower) || strings.Contains(nameLower, key) ||
					(len(nameLower) > 8 && len(key) > 8 && (strings.Contains(key, nameLower[:8]) || strings.Contains(nameLower, key[:8]))) {
					applyRentPageDetail(comp, d)
					break
				}
			}
		}

		for key, uc := range unitCounts {
			if fuzzyNameMatch(nameLower, key) {
				if len(uc.counts) > 0 {
					if comp.UnitCounts == nil {
						comp.UnitCounts = map[string]int{}
					}
					for k, v := range uc.counts {
						comp.UnitCounts[k] = v
					}
				}
				if uc.concession != nil && comp.ConcessionPct == nil {
					comp.ConcessionPct = uc.concession
				}
				break
			}
		}
	}
}

func fuzzyNameMatch(nameLower, key string) bool {
	if strings.Contains(nameLower, key) || strings.Contains(key, nameLower) {
		return true
	}
	return len(nameLower) > 8 && strings.Contains(key, nameLower[:8])
}

func applyRentPageDetail(comp *model.RentComparable, d rentPageDetail) {
	comp.City = cleanCity(d.city)
	comp.State = d.state
	comp.Neighborhood = d.neighborhood
	comp.DistanceMiles = d.distance
}

func rentCompPhotoDetails(text string) map[string]rentPhotoDetail {
	details := map[string]rentPhotoDetail{}

	for _, m := range rentPhotoDetailRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(trailingJunkRe.ReplaceAllString(strings.TrimSpace(m[5]), ""))
		if name == "" {
			continue
		}
		d := rentPhotoDetail{}
		d.vacancy, _ = parseFloat(m[1])
		d.stories, _ = parseInt(m[4])
		details[strings.ToLower(name)] = d
	}

	// Older layout puts a dollar figure between Rent/SF and the name.
	for _, m := range rentPhotoDetailAltRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(trailingRankRe.ReplaceAllString(strings.TrimSpace(m[6]), ""))
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, have := details[key]; have {
			continue
		}
		d := rentPhotoDetail{}
		d.vacancy, _ = parseFloat(m[1])
		d.stories, _ = parseInt(m[4])
		details[key] = d
	}

	return details
}

func rentCompDetailPages(text string) map[string]rentPageDetail {
	details := map[string]rentPageDetail{}

	for _, idx := range rentDetailPageRe.FindAllStringSubmatchIndex(text, -1) {
		g := func(n int) string { return text[idx[n*2]:idx[n*2+1]] }
		address := strings.TrimSpace(g(1))
		name := strings.TrimSpace(g(2))
		city := strings.TrimSpace(g(3))
		state := strings.TrimSpace(g(4))
		neighborhood := strings.TrimSpace(g(5))

		// Drop a city name fused onto the end of the property name, e.g.
		// "Arlo of OlatheOlathe".
		if strings.HasSuffix(name, city) && len(name) > len(city) {
			prev := name[len(name)-len(city)-1]
			if prev >= 'a' && prev <= 'z' {
				name = strings.TrimSpace(name[:len(name)-len(city)])
			}
		}
		name = strings.TrimSpace(strings.TrimSuffix(name, "Apartments"))
		if name == "" {
			continue
		}

		d := rentPageDetail{
			city:         cleanCity(city),
			state:        state,
			neighborhood: neighborhood,
			address:      address,
		}
		tail := text[idx[1]:min(idx[1]+500, len(text))]
		if dm := milesRe.FindStringSubmatch(tail); dm != nil {
			d.distance, _ = parseFloat(dm[1])
		}

		details[strings.ToLower(name)] = d
		details["addr:"+strings.ToLower(address)] = d
	}

	return details
}

func rentCompUnitCounts(text string) map[string]rentUnitCounts {
	byName := map[string]rentUnitCounts{}

	for _, page := range rentDetailSplitRe.Split(text, -1) {
		if !strings.Contains(page, "All 1 Beds") && !strings.Contains(page, "All Studios") && !strings.Contains(page, "All 2 Beds") {
			continue
		}

		nm := rentDetailNameRe.FindStringSubmatch(page)
		if nm == nil {
			continue
		}
		name := strings.TrimSpace(nm[1])

		// The page's own "City, State" header tells us which trailing
		// fused word to strip from the name.
		if cm := rentDetailCityRe.FindStringSubmatch(page); cm != nil {
			city := cm[1]
			if strings.HasSuffix(name, city) && len(name) > len(city) {
				prev := name[len(name)-len(city)-1]
				if prev >= 'a' && prev <= 'z' {
					name = strings.TrimSpace(name[:len(name)-len(city)])
				}
			}
		}
		if name == "" {
			continue
		}

		uc := rentUnitCounts{counts: map[string]int{}}
		if m := allStudiosRowRe.FindStringSubmatch(page); m != nil {
			if v, ok := parseInt(m[2]); ok {
				uc.counts["studio"] = v
			}
		}
		for beds, key := range map[int]string{1: "1bed", 2: "2bed", 3: "3bed"} {
			if m := allBedsRowRe(beds).FindStringSubmatch(page); m != nil {
				if v, ok := parseInt(m[2]); ok {
					uc.counts[key] = v
				}
			}
		}
		if m := totalsRowRe.FindStringSubmatch(page); m != nil {
			if v, ok := parseFloat(m[1]); ok {
				uc.concession = &v
			}
		}

		if len(uc.counts) > 0 || uc.concession != nil {
			byName[strings.ToLower(name)] = uc
		}
	}

	return byName
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

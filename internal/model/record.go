package model

import (
	"strings"
)

// PageSourcesKey is the per-category sibling map that records which PDF page
// each extracted field came from.
const PageSourcesKey = "_page_sources"

// Record is the nested result of a screening run. Top-level keys are data
// categories (property, demographics, market, rent_comps, ...) and each
// category value is a map[string]any of extracted fields. Categories written
// by the extractor may carry a "_page_sources" sibling map of field name to
// page number.
type Record map[string]any

// Category returns the named category map, or nil if absent or not a map.
func (r Record) Category(name string) map[string]any {
	if r == nil {
		return nil
	}
	m, _ := r[name].(map[string]any)
	return m
}

// EnsureCategory returns the named category map, creating it if needed.
func (r Record) EnsureCategory(name string) map[string]any {
	if m, ok := r[name].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	r[name] = m
	return m
}

// Get resolves a dotted path (e.g. "demographics.population_5mi") against the
// record. The second return is false when any segment is missing or a
// non-leaf segment is not a map.
func (r Record) Get(path string) (any, bool) {
	if r == nil || path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var cur any = map[string]any(r)
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// PageFor returns the recorded source page for a field within a category,
// or 0 when no provenance was recorded.
func (r Record) PageFor(category, field string) int {
	cat := r.Category(category)
	if cat == nil {
		return 0
	}
	sources, _ := cat[PageSourcesKey].(map[string]int)
	if sources != nil {
		return sources[field]
	}
	// Round-tripped through JSON the map loses its concrete type.
	loose, _ := cat[PageSourcesKey].(map[string]any)
	if loose == nil {
		return 0
	}
	switch v := loose[field].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// SetWithPage stores a field value in a category and records its source page
// when page > 0.
func (r Record) SetWithPage(category, field string, value any, page int) {
	cat := r.EnsureCategory(category)
	cat[field] = value
	r.SetPage(category, field, page)
}

// SetPage records provenance for a field without touching its value. Dotted
// field names are allowed here; nested values keep their own map layout
// while provenance stays flat.
func (r Record) SetPage(category, field string, page int) {
	if page <= 0 {
		return
	}
	cat := r.EnsureCategory(category)
	sources, ok := cat[PageSourcesKey].(map[string]int)
	if !ok {
		sources = make(map[string]int)
		cat[PageSourcesKey] = sources
	}
	sources[field] = page
}

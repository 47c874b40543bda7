package model

// Source describes where a Data Inputs value came from.
type Source struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// DataInputRow is one emitted row of the Data Inputs sheet. Row numbers are
// assigned by the catalog walk and are stable regardless of which values are
// present.
type DataInputRow struct {
	Row         int    `json:"row"`
	Field       string `json:"field"`
	Value       any    `json:"value"`
	Source      Source `json:"source"`
	Description string `json:"description,omitempty"`
}

// FormulaMapping pre-authors the spreadsheet formulas a downstream sheet
// uses to pull a field's value and source out of the Data Inputs sheet.
type FormulaMapping struct {
	Field         string `json:"field"`
	ValueFormula  string `json:"value_formula"`
	SourceFormula string `json:"source_formula"`
}

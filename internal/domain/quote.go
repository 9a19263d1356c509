package domain

import "strconv"

// Quantity is either a count with a unit suffix ("3 bkt") or a categorical
// label ("Global") for rows priced as a lump sum.
type Quantity struct {
	Count float64 `json:"count,omitempty"`
	Unit  string  `json:"unit,omitempty"`
	Label string  `json:"label,omitempty"`
}

// CountOf builds a count-bearing quantity.
func CountOf(n float64, unit string) Quantity {
	return Quantity{Count: n, Unit: unit}
}

// LabelOf builds a categorical quantity.
func LabelOf(label string) Quantity {
	return Quantity{Label: label}
}

// Categorical reports whether the quantity is a label rather than a count.
func (q Quantity) Categorical() bool {
	return q.Label != ""
}

func (q Quantity) String() string {
	if q.Categorical() {
		return q.Label
	}
	n := strconv.FormatFloat(q.Count, 'f', -1, 64)
	if q.Unit == "" {
		return n
	}
	return n + " " + q.Unit
}

// QuoteItem is one row of a quote.
type QuoteItem struct {
	Kind         RowKind  `json:"kind"`
	Concept      string   `json:"concept"`
	Detail       string   `json:"detail"`
	Quantity     Quantity `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	Total        float64  `json:"total"`
	Brand        string   `json:"brand,omitempty"`
	YieldDisplay string   `json:"yield_display,omitempty"`
	Warning      bool     `json:"warning,omitempty"`
	Adjustable   bool     `json:"adjustable,omitempty"`
}

// QuoteResult is the ordered list of rows plus their aggregates.
type QuoteResult struct {
	Items    []QuoteItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
}

// Item returns the first row of the given kind.
func (r QuoteResult) Item(kind RowKind) (QuoteItem, bool) {
	for _, it := range r.Items {
		if it.Kind == kind {
			return it, true
		}
	}
	return QuoteItem{}, false
}

package catalog

import (
	"strconv"
	"strings"

	"github.com/fortune-auction/gateway/internal/model"
)

// Filter is the full filter state of a listing view. The zero value matches
// every record: empty strings and nil bounds mean "inactive", never "equals
// empty".
type Filter struct {
	Query     string
	GoldAge   string
	Purity    string
	Category  string
	Material  string
	Clarity   string
	Carat     string
	MinWeight *float64
	MaxWeight *float64
}

// Reset deactivates every attribute filter and clears the search query.
func (f *Filter) Reset() {
	*f = Filter{}
}

// Matches is a pure predicate over (record, filter state): the free-text
// clause must hit at least one searchable field (vacuously true for an empty
// query) and every active attribute clause must hold.
func (f Filter) Matches(item model.JewelryItem) bool {
	if !f.matchesQuery(item) {
		return false
	}
	if f.GoldAge != "" && item.GoldAge != f.GoldAge {
		return false
	}
	if f.Purity != "" && item.Purity != f.Purity {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Material != "" && !strings.Contains(strings.ToLower(item.Materials), strings.ToLower(f.Material)) {
		return false
	}
	if f.Clarity != "" && item.Clarity != f.Clarity {
		return false
	}
	if f.Carat != "" && item.Carat != f.Carat {
		return false
	}
	// weight range, both bounds inclusive
	if f.MinWeight != nil && item.Weight < *f.MinWeight {
		return false
	}
	if f.MaxWeight != nil && item.Weight > *f.MaxWeight {
		return false
	}
	return true
}

func (f Filter) matchesQuery(item model.JewelryItem) bool {
	if f.Query == "" {
		return true
	}
	query := strings.ToLower(f.Query)
	fields := []string{
		item.Name,
		item.Description,
		item.Collection,
		item.GoldAge,
		item.Materials,
		strconv.FormatFloat(item.Weight, 'f', -1, 64),
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Apply keeps the records that pass the filter, in input order.
func (f Filter) Apply(items []model.JewelryItem) []model.JewelryItem {
	kept := make([]model.JewelryItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

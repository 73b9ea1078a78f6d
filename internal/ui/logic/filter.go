package logic

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"showroom/internal/domain"
)

// ItemFilter matches catalog items against a free-text query
type ItemFilter struct {
	fold cases.Caser
}

// NewItemFilter creates a new item filter
func NewItemFilter() *ItemFilter {
	return &ItemFilter{fold: cases.Fold()}
}

// Normalize trims and case-folds a query. An empty result means "no filter".
func (f *ItemFilter) Normalize(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	return f.fold.String(query)
}

// Matches checks if an item's name or description contains the query
func (f *ItemFilter) Matches(item domain.Item, query string) bool {
	q := f.Normalize(query)
	if q == "" {
		return true
	}
	return f.contains(item, q)
}

// Filter returns the items matching query, in their original order.
// A blank query returns all of them. The result never shares storage with
// items.
func (f *ItemFilter) Filter(items []domain.Item, query string) []domain.Item {
	q := f.Normalize(query)
	if q == "" {
		return slices.Clone(items)
	}

	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if f.contains(item, q) {
			result = append(result, item)
		}
	}
	return result
}

func (f *ItemFilter) contains(item domain.Item, folded string) bool {
	return strings.Contains(f.fold.String(item.Name), folded) ||
		strings.Contains(f.fold.String(item.Description), folded)
}

// Package directory filters catalog entries for the directory and shop views.
package directory

import (
	"strings"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// Filter returns the items that satisfy every predicate of c, in input order.
// The result is always a new, non-nil slice.
func Filter[T domain.Item](items []T, c domain.FilterCriteria) []T {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesSearch(item, term) && matchesCategory(item, c.Category) && matchesIndustry(item, c.Industry) {
			result = append(result, item)
		}
	}
	return result
}

// Published keeps only the listings visible in the public directory.
func Published(listings []domain.Listing) []domain.Listing {
	result := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Status == domain.ListingPublished {
			result = append(result, l)
		}
	}
	return result
}

type Options struct {
	Categories []string `json:"categories"`
	Industries []string `json:"industries"`
}

// FilterOptions lists the selectable category and industry values, each led by the wildcard.
func FilterOptions() Options {
	return Options{
		Categories: append([]string{domain.AllOption}, catalog.Categories...),
		Industries: append([]string{domain.AllOption}, catalog.Industries...),
	}
}

func matchesSearch(item domain.Item, term string) bool {
	if term == "" {
		return true
	}
	h := item.Header()
	if contains(h.Name, term) || contains(h.Description, term) {
		return true
	}
	if l, ok := any(item).(domain.Listing); ok {
		return contains(l.Location, term)
	}
	return false
}

func matchesCategory(item domain.Item, category string) bool {
	return domain.IsWildcard(category) || item.Header().Category == category
}

func matchesIndustry(item domain.Item, industry string) bool {
	if domain.IsWildcard(industry) {
		return true
	}
	l, ok := any(item).(domain.Listing)
	return ok && l.Industry == industry
}

func contains(field, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(field), lowerTerm)
}

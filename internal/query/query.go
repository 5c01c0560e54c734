// Package query turns list-filter state into backend query parameters.
package query

import (
	"fmt"
	"strings"

	"eventscout/internal/domain"
	"eventscout/pkg/e"
)

var ErrUnknownCategory = fmt.Errorf("unknown category: %w", e.ErrInvalidInput)

// Filter is the free-text and category filter state of the events list.
// An empty Category means "all categories"; that sentinel belongs to the
// filter only and is never a value of domain.Category.
type Filter struct {
	Text     string
	Category string
}

// Params builds the backend query parameters. A parameter is emitted only
// when its filter is actually set: the backend distinguishes "no category
// filter" (param absent) from "filter on empty category" (param present), so
// the all-categories sentinel must not be sent at all.
func (f Filter) Params() map[string]string {
	params := make(map[string]string, 2)

	if text := strings.TrimSpace(f.Text); text != "" {
		params["q"] = text
	}
	if f.Category != "" {
		params["category"] = f.Category
	}

	return params
}

// Validate rejects a category outside the closed set. Free text is passed
// through untouched; matching semantics belong to the backend.
func (f Filter) Validate() error {
	if f.Category == "" {
		return nil
	}
	if _, ok := domain.ParseCategory(f.Category); !ok {
		return ErrUnknownCategory
	}
	return nil
}

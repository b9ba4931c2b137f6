// Package view derives display data from a list snapshot. Everything here is a
// pure function of its input and may be recomputed at will.
package view

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
)

// SortOrder selects how items are displayed. It never changes the stored order.
type SortOrder int

const (
	SortInput SortOrder = iota
	SortDescription
)

var sortNames = map[SortOrder]string{
	SortInput:       "input",
	SortDescription: "description",
}

func (o SortOrder) String() string {
	if n, ok := sortNames[o]; ok {
		return n
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// Label is the human readable name shown in the UI.
func (o SortOrder) Label() string {
	switch o {
	case SortDescription:
		return "Sort by description"
	default:
		return "Sort by input order"
	}
}

// Next cycles to the following order.
func (o SortOrder) Next() SortOrder {
	if o == SortInput {
		return SortDescription
	}
	return SortInput
}

// ParseSortOrder accepts "input" or "description" (case-insensitive).
// An empty string yields SortInput.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "input":
		return SortInput, nil
	case "description":
		return SortDescription, nil
	}
	return SortInput, fmt.Errorf("unknown sort order %q (want input or description)", s)
}

// Sort returns a new slice ordered by o. Ties under SortDescription keep
// insertion order.
func Sort(items []model.Item, o SortOrder) []model.Item {
	out := slices.Clone(items)
	if o != SortDescription {
		return out
	}
	// Collators carry scratch buffers, so each call gets its own.
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return c.CompareString(a.Description, b.Description)
	})
	return out
}

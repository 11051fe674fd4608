package types

import (
	"fmt"
	"strings"
)

// Category classifies a report. The zero value means no category was given.
type Category string

// Report categories, in display order.
const (
	CategoryTheft     Category = "THEFT"
	CategoryBurglary  Category = "BURGLARY"
	CategoryAssault   Category = "ASSAULT"
	CategoryRobbery   Category = "ROBBERY"
	CategoryFraud     Category = "FRAUD"
	CategoryVandalism Category = "VANDALISM"
	CategoryOther     Category = "OTHER"
)

// orderedCategories fixes the order used by menus and listings.
var orderedCategories = []Category{
	CategoryTheft,
	CategoryBurglary,
	CategoryAssault,
	CategoryRobbery,
	CategoryFraud,
	CategoryVandalism,
	CategoryOther,
}

// categoryDisplayNames maps each recognized category to its label.
var categoryDisplayNames = map[Category]string{
	CategoryTheft:     "Theft",
	CategoryBurglary:  "Burglary",
	CategoryAssault:   "Assault",
	CategoryRobbery:   "Robbery",
	CategoryFraud:     "Fraud",
	CategoryVandalism: "Vandalism",
	CategoryOther:     "Other",
}

// Categories returns every recognized category in display order.
// The returned slice is a copy; callers may modify it.
func Categories() []Category {
	out := make([]Category, len(orderedCategories))
	copy(out, orderedCategories)
	return out
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// DisplayName returns the human-readable label, or the raw value when c is
// not recognized.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves s to a category by enum name ("THEFT") or display
// name ("Theft"), ignoring case and surrounding whitespace.
// Returns ErrMissingCategory for blank input and ErrUnknownCategory when
// nothing matches.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingCategory
	}
	for _, c := range orderedCategories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, categoryDisplayNames[c]) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

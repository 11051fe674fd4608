package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	got := Categories()
	assert.Equal(t, []Category{
		CategoryTheft,
		CategoryBurglary,
		CategoryAssault,
		CategoryRobbery,
		CategoryFraud,
		CategoryVandalism,
		CategoryOther,
	}, got)

	got[0] = CategoryOther
	assert.Equal(t, CategoryTheft, Categories()[0], "Categories must return a copy")
}

func TestCategoryValidAndDisplayName(t *testing.T) {
	tests := []struct {
		category Category
		valid    bool
		display  string
	}{
		{CategoryTheft, true, "Theft"},
		{CategoryVandalism, true, "Vandalism"},
		{CategoryOther, true, "Other"},
		{"", false, ""},
		{"ARSON", false, "ARSON"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.category.Valid())
			assert.Equal(t, tt.display, tt.category.DisplayName())
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr error
	}{
		{name: "enum name", input: "FRAUD", want: CategoryFraud},
		{name: "display name", input: "Burglary", want: CategoryBurglary},
		{name: "lower case with spaces", input: "  robbery ", want: CategoryRobbery},
		{name: "blank", input: "   ", wantErr: ErrMissingCategory},
		{name: "unknown", input: "arson", wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidReport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

func TestWriteReportListGolden(t *testing.T) {
	first, err := types.NewBuilder().
		WithID("r-1").
		WithDescription("Bicycle stolen").
		WithLocation("City park").
		WithCategory(types.CategoryTheft).
		WithReporterID("reporter-1").
		WithReportedAt(fixedTime).
		Build()
	require.NoError(t, err)

	second, err := first.Builder().
		WithID("r-2").
		WithDescription("Card cloned at ATM").
		WithLocation("Harbour mall").
		WithCategory(types.CategoryFraud).
		WithReporterID("reporter-2").
		WithResolved(true).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	writeReportList(&buf, newStyles(&buf), []types.Report{first, second})

	g := goldie.New(t)
	g.Assert(t, "report_list", buf.Bytes())
}

func TestCategoryTableGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "categories_table", []byte(formatCategoryTable(categoryEntries())))
}

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// reportedAtLayout formats report timestamps in listings.
const reportedAtLayout = "2006-01-02 15:04:05"

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

// styles are bound to one output writer so color is only emitted when that
// writer is a terminal. Only single-line strings are rendered through them.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		heading: r.NewStyle().Foreground(colorAccent),
		label:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError),
	}
}

// writeReport prints one report as labeled lines.
func writeReport(w io.Writer, st styles, r types.Report) {
	field := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", st.label.Render(name+":"), value)
	}
	field("ID", r.ID())
	field("Type", r.Category().DisplayName())
	field("Description", r.Description())
	field("Location", r.Location())
	field("Reported At", r.ReportedAt().Format(reportedAtLayout))
	field("Reporter ID", r.ReporterID())
	field("Status", r.Status())
}

// writeReportList prints a count followed by each report, numbered from 1.
func writeReportList(w io.Writer, st styles, reports []types.Report) {
	fmt.Fprintf(w, "Total reports: %d\n", len(reports))
	for i, r := range reports {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render(fmt.Sprintf("Report #%d:", i+1)))
		writeReport(w, st, r)
	}
}

// writeCategoryChoices prints the numbered category list used by prompts.
func writeCategoryChoices(w io.Writer, cats []types.Category) {
	fmt.Fprintln(w, "Crime Types:")
	for i, c := range cats {
		fmt.Fprintf(w, "%d. %s\n", i+1, c.DisplayName())
	}
}

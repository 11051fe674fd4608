package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

const (
	welcomeText = "Welcome to the Crime Reporting System"
	goodbyeText = "Thank you for using the Crime Reporting System. Goodbye!"
)

// menuItem is one numbered entry in the main menu.
type menuItem struct {
	label  string
	action func(m *menu) error
}

// menuItems lists the main menu in display order; 0 always exits.
var menuItems = []menuItem{
	{"Report a crime", (*menu).reportCrime},
	{"View all reports", (*menu).viewAll},
	{"Search by ID", (*menu).searchByID},
	{"Search by type", (*menu).searchByType},
	{"Search by location", (*menu).searchByLocation},
	{"Update resolution status", (*menu).updateStatus},
	{"Search by reporter", (*menu).searchByReporter},
	{"View by resolution status", (*menu).viewByStatus},
	{"Delete a report", (*menu).deleteReport},
}

// menu drives the interactive session. Actions return an error only when
// input fails; store errors are shown to the user and the loop continues.
type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	store types.ReportStore
	log   logrus.FieldLogger
	st    styles

	// now and newID override the builder defaults when set.
	now   func() time.Time
	newID func() string
}

func newMenu(in io.Reader, out io.Writer, s types.ReportStore, log logrus.FieldLogger) *menu {
	return &menu{
		in:    bufio.NewScanner(in),
		out:   out,
		store: s,
		log:   log,
		st:    newStyles(out),
	}
}

// run shows the menu until the user picks 0 or input ends.
func (m *menu) run() error {
	m.println(m.st.title.Render(welcomeText))
	for {
		m.showMenu()
		choice, err := m.readInt("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}
		if choice == 0 {
			return m.finish(nil)
		}
		if choice < 0 || choice > len(menuItems) {
			m.println(m.st.warning.Render("Invalid choice. Please try again."))
			continue
		}
		if err := menuItems[choice-1].action(m); err != nil {
			return m.finish(err)
		}
	}
}

// finish prints the farewell. End of input is a normal way to leave.
func (m *menu) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		m.println("")
	}
	m.println(goodbyeText)
	return nil
}

func (m *menu) showMenu() {
	m.println("")
	m.println(m.st.heading.Render("===== MENU ====="))
	for i, item := range menuItems {
		m.printf("%d. %s\n", i+1, item.label)
	}
	m.println("0. Exit")
	m.println(m.st.heading.Render("================"))
}

func (m *menu) section(title string) {
	m.println("")
	m.println(m.st.title.Render("--- " + title + " ---"))
}

func (m *menu) reportCrime() error {
	m.section("Report a Crime")

	description, err := m.readLine("Enter crime description: ")
	if err != nil {
		return err
	}
	location, err := m.readLine("Enter crime location: ")
	if err != nil {
		return err
	}

	cats := types.Categories()
	writeCategoryChoices(m.out, cats)
	n, err := m.readInt(fmt.Sprintf("Select crime type (1-%d): ", len(cats)))
	if err != nil {
		return err
	}
	category := types.CategoryOther
	if n >= 1 && n <= len(cats) {
		category = cats[n-1]
	} else {
		m.println(m.st.warning.Render("Invalid choice. Defaulting to " + types.CategoryOther.DisplayName() + "."))
	}

	reporterID, err := m.readLine("Enter your ID (for reporting purposes): ")
	if err != nil {
		return err
	}

	b := types.NewBuilder().
		WithDescription(description).
		WithLocation(location).
		WithCategory(category).
		WithReporterID(reporterID)
	if m.newID != nil {
		b = b.WithID(m.newID())
	}
	if m.now != nil {
		b = b.WithReportedAt(m.now())
	}
	r, err := b.Build()
	if err != nil {
		m.fail("Could not file report", err)
		return nil
	}
	if _, err := m.store.Create(r); err != nil {
		m.fail("Could not file report", err)
		return nil
	}

	m.println(m.st.success.Render("Crime reported successfully. Report ID: " + r.ID()))
	return nil
}

func (m *menu) viewAll() error {
	m.section("All Reports")
	all := m.store.ReadAll()
	if len(all) == 0 {
		m.println("No crimes have been reported yet.")
		return nil
	}
	writeReportList(m.out, m.st, all)
	return nil
}

func (m *menu) searchByID() error {
	m.section("Search by ID")
	id, err := m.readLine("Enter report ID: ")
	if err != nil {
		return err
	}
	r, ok := m.lookup(id)
	if ok {
		writeReport(m.out, m.st, r)
	}
	return nil
}

func (m *menu) searchByType() error {
	m.section("Search by Type")
	cats := types.Categories()
	writeCategoryChoices(m.out, cats)
	n, err := m.readInt(fmt.Sprintf("Select crime type (1-%d): ", len(cats)))
	if err != nil {
		return err
	}
	if n < 1 || n > len(cats) {
		m.println(m.st.warning.Render("Invalid choice."))
		return nil
	}

	c := cats[n-1]
	reports, err := m.store.FindByCategory(c)
	if err != nil {
		m.fail("Search failed", err)
		return nil
	}
	if len(reports) == 0 {
		m.println("No reports found of type: " + c.DisplayName())
		return nil
	}
	m.println("Reports of type " + c.DisplayName() + ":")
	writeReportList(m.out, m.st, reports)
	return nil
}

func (m *menu) searchByLocation() error {
	m.section("Search by Location")
	location, err := m.readLine("Enter location to search for: ")
	if err != nil {
		return err
	}
	reports, err := m.store.FindByLocation(location)
	if err != nil {
		m.fail("Search failed", err)
		return nil
	}
	if len(reports) == 0 {
		m.println("No reports found at location containing: " + location)
		return nil
	}
	m.println("Reports at location containing '" + location + "':")
	writeReportList(m.out, m.st, reports)
	return nil
}

func (m *menu) updateStatus() error {
	m.section("Update Resolution Status")
	id, err := m.readLine("Enter report ID: ")
	if err != nil {
		return err
	}
	r, ok := m.lookup(id)
	if !ok {
		return nil
	}

	m.println("Current report details:")
	writeReport(m.out, m.st, r)

	answer, err := m.readLine("Mark as resolved? (yes/no): ")
	if err != nil {
		return err
	}
	resolved := strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")

	replacement, err := r.Builder().WithResolved(resolved).Build()
	if err != nil {
		m.fail("Update failed", err)
		return nil
	}
	if _, err := m.store.Update(replacement); err != nil {
		m.fail("Update failed", err)
		return nil
	}
	m.println(m.st.success.Render("Report status updated to " + replacement.Status() + "."))
	return nil
}

func (m *menu) searchByReporter() error {
	m.section("Search by Reporter")
	reporterID, err := m.readLine("Enter reporter ID: ")
	if err != nil {
		return err
	}
	reports, err := m.store.FindByReporterID(reporterID)
	if err != nil {
		m.fail("Search failed", err)
		return nil
	}
	if len(reports) == 0 {
		m.println("No reports found for reporter: " + reporterID)
		return nil
	}
	m.println("Reports filed by " + reporterID + ":")
	writeReportList(m.out, m.st, reports)
	return nil
}

func (m *menu) viewByStatus() error {
	m.section("View by Resolution Status")
	answer, err := m.readLine("Show resolved or unresolved reports? (r/u): ")
	if err != nil {
		return err
	}

	var resolved bool
	switch strings.ToLower(answer) {
	case "r", "resolved":
		resolved = true
	case "u", "unresolved":
		resolved = false
	default:
		m.println(m.st.warning.Render("Invalid choice."))
		return nil
	}

	label := strings.ToLower(types.StatusUnresolved)
	if resolved {
		label = strings.ToLower(types.StatusResolved)
	}
	reports := m.store.FindByResolutionStatus(resolved)
	if len(reports) == 0 {
		m.println("No " + label + " reports.")
		return nil
	}
	m.println("Reports that are " + label + ":")
	writeReportList(m.out, m.st, reports)
	return nil
}

func (m *menu) deleteReport() error {
	m.section("Delete a Report")
	id, err := m.readLine("Enter report ID: ")
	if err != nil {
		return err
	}
	removed, err := m.store.Delete(id)
	if err != nil {
		m.fail("Delete failed", err)
		return nil
	}
	if !removed {
		m.println("No report found with ID: " + id)
		return nil
	}
	m.println(m.st.success.Render("Report " + id + " deleted."))
	return nil
}

// lookup reads a report and reports problems to the user. It returns false
// when there is nothing to show.
func (m *menu) lookup(id string) (types.Report, bool) {
	r, ok, err := m.store.Read(id)
	if err != nil {
		m.fail("Search failed", err)
		return types.Report{}, false
	}
	if !ok {
		m.println("No report found with ID: " + id)
		return types.Report{}, false
	}
	return r, true
}

// readLine prompts and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (m *menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// readInt prompts until the user enters a whole number.
func (m *menu) readInt(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		m.println(m.st.warning.Render("Please enter a valid number."))
	}
}

// fail shows a store or validation error and logs it at debug.
func (m *menu) fail(what string, err error) {
	m.log.WithError(err).Debug(strings.ToLower(what))
	m.println(m.st.err.Render(what + ": " + err.Error()))
}

func (m *menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

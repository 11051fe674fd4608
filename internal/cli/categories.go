package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// categoryEntry is the JSON shape of one category.
type categoryEntry struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func newCategoriesCmd() *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the recognized crime categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := categoryEntries()
			if jsonMode {
				output, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal categories: %w", err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(output))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatCategoryTable(entries))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output in JSON format")
	return cmd
}

// categoryEntries numbers the categories the same way the menu does.
func categoryEntries() []categoryEntry {
	cats := types.Categories()
	out := make([]categoryEntry, len(cats))
	for i, c := range cats {
		out[i] = categoryEntry{Number: i + 1, Name: c.String(), DisplayName: c.DisplayName()}
	}
	return out
}

func formatCategoryTable(entries []categoryEntry) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tNAME\tDISPLAY")
	fmt.Fprintln(w, "-\t----\t-------")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Number, e.Name, e.DisplayName)
	}
	w.Flush()
	return sb.String()
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gemshub/internal/catalog"
	"gemshub/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the gem catalog and print matching links",
	Long: `Runs the same type-ahead query as the interactive search box: a
case-insensitive substring match over gem names, in catalog order, capped
at ten results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("absolute", false, "print absolute links")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(verbose)
	defer closeLog()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	absolute, _ := cmd.Flags().GetBool("absolute")

	_, cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	svc := search.NewService(catalog.NewService(newClient(cfg), nil), nil)
	outcome := svc.Query(context.Background(), strings.Join(args, " "))

	out := cmd.OutOrStdout()
	if absolute {
		for i := range outcome.Results {
			outcome.Results[i].Link = cfg.SiteURL(outcome.Results[i].Link)
		}
	}

	if jsonOutput {
		results := outcome.Results
		if results == nil {
			results = []search.Result{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if !outcome.Visible {
		return fmt.Errorf("empty query")
	}
	if outcome.Empty() {
		fmt.Fprintln(out, search.EmptyMessage)
		return nil
	}
	for _, r := range outcome.Results {
		fmt.Fprintf(out, "%-32s %s\n", r.Name, r.Link)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the Gems Hub API is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(verbose)
	defer closeLog()

	_, cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	res, err := newClient(cfg).Health(context.Background())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n%s\n", cfg.HealthURL(), res.StatusCode, res.Body)
	return nil
}

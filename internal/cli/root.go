// Package cli wires the gemshub commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gemshub/internal/catalog"
	"gemshub/internal/config"
	"gemshub/internal/eventbus"
)

var (
	cfgFile string
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gemshub",
	Short: "Browse the Gems Hub site and search the gem catalog from the terminal",
	Long: `Gems Hub brings the preciousstone.info navigation to the terminal:
a collapsible sidebar menu, animated content sections and a live
type-ahead search over the gem catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitOnError(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the site base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also log to stderr")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to gemshub.log in the config
// directory. mirror also copies it to stderr.
func setupLogging(mirror bool) func() {
	dir := config.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Could not create log directory: %v", err)
		return func() {}
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "gemshub.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	if mirror {
		log.SetOutput(io.MultiWriter(logFile, os.Stderr))
	} else {
		log.SetOutput(logFile)
	}
	return func() { logFile.Close() }
}

// loadConfig reads the config file, then applies env and flag overrides
func loadConfig(bus eventbus.EventBus) (config.ConfigService, *config.Config, error) {
	svc := config.NewConfigServiceWithBus(cfgFile, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// newClient builds the API client for cfg
func newClient(cfg *config.Config) *catalog.Client {
	key, source := cfg.ResolveAPIKey(os.LookupEnv)
	if key != "" {
		log.Printf("Using API key from %s", source)
	}
	return catalog.NewClient(catalog.ClientOptions{
		CatalogURL: cfg.CatalogURL(),
		HealthURL:  cfg.HealthURL(),
		APIKey:     key,
		Timeout:    cfg.Timeout(),
	})
}

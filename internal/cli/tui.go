package cli

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gemshub/internal/catalog"
	"gemshub/internal/eventbus"
	"gemshub/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive browser (default)",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventCatalogFailed,
	eventbus.EventLinkCopied,
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(false)
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()

	_, cfg, err := loadConfig(bus)
	if err != nil {
		return err
	}

	service := catalog.NewService(newClient(cfg), bus)
	model := ui.NewModel(ui.Options{
		Config:  cfg,
		Bus:     bus,
		Catalog: service,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Forward domain events into the program
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})
	for _, t := range forwardedEvents {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
		defer unsubscribe()
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	if os.Getenv("GEMSHUB_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stdout, "__READY__")
	}

	log.Printf("Starting gemshub against %s", cfg.BaseURL)
	_, err = p.Run()

	close(done)
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"payctl/internal/models"
	"payctl/internal/ui"
)

var uiPlansFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive client",
	Long:  "Browse plans, switch between monthly and yearly billing and check out in a terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI("", uiPlansFile)
	},
}

// runUI starts the interactive client, optionally on a given screen
func runUI(startRoute, plansFile string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	opts := []ui.Option{
		ui.WithAuthenticatedHook(func(a *models.Auth) {
			if err := s.rememberUser(a); err != nil {
				logger.WithError(err).Warn("failed to remember user")
			}
		}),
	}
	if startRoute != "" {
		opts = append(opts, ui.WithStartRoute(startRoute))
	}
	if plansFile != "" {
		opts = append(opts, ui.WithPlanSource(filePlanSource(plansFile)))
	}

	model := ui.NewModel(s.config, s.client, s.tokens, models.DefaultPaymentCatalog(), opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func filePlanSource(path string) ui.PlanSource {
	return func(ctx context.Context) ([]models.Plan, error) {
		return models.LoadPlans(path)
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().StringVar(&uiPlansFile, "plans-file", "", "Read plans from a local YAML or JSON file")
}

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"payctl/internal/models"
	"payctl/internal/pricing"
	"payctl/internal/util"
)

var (
	plansYearly bool
	plansFile   string
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List subscription plans",
	Long:  "Show every plan with its monthly price, or the yearly price per month with --yearly",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := loadPlans(plansFile)
		if err != nil {
			return err
		}

		cycle := models.Monthly
		if plansYearly {
			cycle = models.Yearly
		}

		printPlans(cmd.OutOrStdout(), plans, cycle)
		return nil
	},
}

// loadPlans reads plans from a local file when one is given, from the backend otherwise
func loadPlans(file string) ([]models.Plan, error) {
	if file != "" {
		plans, err := models.LoadPlans(file)
		if err != nil {
			return nil, fmt.Errorf("error loading plans: %w", err)
		}
		return plans, nil
	}

	s, err := newSession()
	if err != nil {
		return nil, err
	}
	plans, err := s.client.GetPlans(context.Background())
	if err != nil {
		return nil, failure("error fetching plans", err)
	}
	return plans, nil
}

func printPlans(out io.Writer, plans []models.Plan, cycle models.BillingCycle) {
	if len(plans) == 0 {
		printWarning(out, "No plans available")
		return
	}

	if cycle == models.Yearly {
		if discount := pricing.MaxDiscount(plans); discount > 0 {
			_, _ = color.New(color.FgGreen, color.Bold).Fprintf(out, "Yearly billing: save up to %d%%\n\n", discount)
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if cycle == models.Yearly {
		fmt.Fprintln(w, "ID\tPLAN\tPRICE / MONTH\tPER YEAR\tSAVE")
	} else {
		fmt.Fprintln(w, "ID\tPLAN\tPRICE / MONTH")
	}

	for i, quote := range pricing.QuoteAll(plans, cycle) {
		plan := plans[i]
		title := plan.Title
		if plan.IsFeatured {
			title += " *"
		}
		if cycle == models.Yearly {
			save := "-"
			if plan.IsDiscounted() {
				save = fmt.Sprintf("%d %%", quote.Discount)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", plan.ID, title,
				util.FormatPrice(quote.Price), util.FormatPrice(plan.YearlyPrice), save)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", plan.ID, title, util.FormatPrice(quote.Price))
		}
	}
	_ = w.Flush()

	for _, plan := range plans {
		if len(plan.Features) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s: %s", plan.Title, strings.Join(plan.Features, ", "))
	}
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(plansCmd)

	plansCmd.Flags().BoolVar(&plansYearly, "yearly", false, "Show yearly billing prices")
	plansCmd.Flags().StringVar(&plansFile, "file", "", "Read plans from a local YAML or JSON file")
}

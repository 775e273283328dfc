package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"payctl/internal/models"
	"payctl/internal/pricing"
	"payctl/internal/util"
	"payctl/internal/validation"
)

var (
	paymentProvider  string
	paymentYearly    bool
	paymentPlansFile string
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payments",
	Long:  "List payment methods, start a checkout and look up payments",
}

var paymentMethodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List payment methods",
	Long:  "Show the payment methods accepted at checkout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, method := range models.DefaultPaymentCatalog().Methods {
			fmt.Fprintf(w, "%s\t%s %s\t%s\n", method.ID, method.Icon, method.Name, method.Description)
		}
		return w.Flush()
	},
}

var paymentInitCmd = &cobra.Command{
	Use:   "init <plan>",
	Short: "Start a checkout",
	Long:  "Request a payment URL for a plan (by id or title) with the chosen payment method",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := loadPlans(paymentPlansFile)
		if err != nil {
			return err
		}
		plan, err := models.FindPlan(plans, args[0])
		if err != nil {
			return err
		}

		catalog := models.DefaultPaymentCatalog()
		if paymentProvider != "" && !catalog.Contains(paymentProvider) {
			return fmt.Errorf("%w: %s (available: %s)", models.ErrUnknownPaymentMethod,
				paymentProvider, strings.Join(catalog.IDs(), ", "))
		}

		cycle := models.Monthly
		if paymentYearly {
			cycle = models.Yearly
		}

		req := models.InitPaymentRequest{
			PlanID:        plan.ID,
			BillingPeriod: cycle,
			Provider:      paymentProvider,
		}
		out := cmd.OutOrStdout()
		if errs := validation.New().Struct(req); errs != nil {
			printFieldErrors(out, errs)
			return fmt.Errorf("invalid payment request")
		}

		s, err := newSession()
		if err != nil {
			return err
		}
		resp, err := s.client.InitPayment(context.Background(), req)
		if err != nil {
			return failure("error starting payment", err)
		}

		quote := pricing.QuotePlan(*plan, cycle)
		fmt.Fprintf(out, "%s (%s): %s / month\n", plan.Title, cycle, util.FormatPrice(quote.Price))
		printSuccess(out, "Open this link to complete the payment:")
		fmt.Fprintln(out, resp.URL)
		return nil
	},
}

var paymentShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a payment",
	Long:  "Display the status and details of a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		details, err := s.client.GetPaymentByID(context.Background(), args[0])
		if err != nil {
			return failure("error fetching payment", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Payment: %s\n", details.ID)
		fmt.Fprintf(out, "Status: %s\n", statusColor(details.Status).Sprint(details.Status))
		fmt.Fprintf(out, "Amount: %s\n", util.FormatPrice(details.Amount))
		if details.Plan != nil {
			fmt.Fprintf(out, "Plan: %s\n", details.Plan.Title)
		}
		if details.BillingPeriod != "" {
			fmt.Fprintf(out, "Billing period: %s\n", details.BillingPeriod)
		}
		if details.Provider != "" {
			fmt.Fprintf(out, "Provider: %s\n", details.Provider)
		}
		if details.CreatedAt != "" {
			fmt.Fprintf(out, "Created: %s\n", details.CreatedAt)
		}
		return nil
	},
}

func statusColor(status string) *color.Color {
	switch strings.ToLower(status) {
	case "succeeded", "paid", "success":
		return color.New(color.FgGreen)
	case "pending", "waiting_for_capture":
		return color.New(color.FgYellow)
	case "canceled", "cancelled", "failed":
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

func init() {
	rootCmd.AddCommand(paymentCmd)
	paymentCmd.AddCommand(paymentMethodsCmd)
	paymentCmd.AddCommand(paymentInitCmd)
	paymentCmd.AddCommand(paymentShowCmd)

	paymentInitCmd.Flags().StringVar(&paymentProvider, "provider", "", "Payment method id (see 'payctl payment methods')")
	paymentInitCmd.Flags().BoolVar(&paymentYearly, "yearly", false, "Bill yearly instead of monthly")
	paymentInitCmd.Flags().StringVar(&paymentPlansFile, "plans-file", "", "Resolve the plan from a local YAML or JSON file")
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"payctl/internal/models"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Manage your subscription",
	Long:  "Change settings of the current subscription",
}

var autoRenewalCmd = &cobra.Command{
	Use:       "auto-renewal <on|off>",
	Short:     "Turn automatic renewal on or off",
	Long:      "Enable or disable automatic renewal of the current subscription",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		enable := args[0] == "on"
		resp, err := s.client.ToggleAutoRenewal(context.Background(), models.UpdateAutoRenewalRequest{IsAutoRenewal: enable})
		if err != nil {
			return failure("error updating auto-renewal", err)
		}

		state := "off"
		if resp.IsAutoRenewal {
			state = "on"
		}
		if resp.IsAutoRenewal != enable {
			printWarning(cmd.OutOrStdout(), "Auto-renewal is still %s", state)
			return fmt.Errorf("server kept auto-renewal %s", state)
		}
		printSuccess(cmd.OutOrStdout(), "Auto-renewal is now %s", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subscriptionCmd)
	subscriptionCmd.AddCommand(autoRenewalCmd)
}

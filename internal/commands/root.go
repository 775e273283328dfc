package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"payctl/internal/api"
	"payctl/internal/config"
	"payctl/internal/logging"
	"payctl/internal/models"
	"payctl/internal/mutation"
)

var (
	globalConfig *config.Config
	logger       = logging.NewModuleLogger("commands")
)

var rootCmd = &cobra.Command{
	Use:   "payctl",
	Short: "payctl - A terminal client for the subscription billing service",
	Long: `payctl is a command-line client for the subscription billing service.
It lets you sign in, compare plans with monthly or yearly billing, pick a payment
method and start a checkout, either interactively or with plain commands.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// session bundles what a command needs to talk to the backend
type session struct {
	configDir string
	config    *config.Config
	tokens    *models.TokenStore
	client    *api.Client
}

// newSession loads the global config and builds an API client around the stored token
func newSession() (*session, error) {
	globalConfigDir, err := config.GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(globalConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating global config directory: %w", err)
	}

	cfg := globalConfig
	if cfg == nil {
		cfg, err = config.LoadGlobalConfig()
		if err != nil {
			return nil, fmt.Errorf("error loading global config: %w", err)
		}
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server URL not configured")
	}

	tokenStore := models.NewTokenStore(globalConfigDir)
	client := api.NewClient(cfg.ServerURL, tokenStore, api.WithTimeout(cfg.RequestTimeout()))

	return &session{
		configDir: globalConfigDir,
		config:    cfg,
		tokens:    tokenStore,
		client:    client,
	}, nil
}

// rememberUser stores the signed in user's details in the global config
func (s *session) rememberUser(a *models.Auth) error {
	s.config.UserID = a.User.ID
	s.config.Email = a.User.Email
	s.config.Name = a.User.Name
	if err := config.SaveGlobalConfig(s.config); err != nil {
		return fmt.Errorf("error saving global config: %w", err)
	}
	return nil
}

// failure reports a backend failure the same way the interactive forms do
func failure(action string, err error) error {
	return fmt.Errorf("%s: %s", action, mutation.ErrorMessage(err))
}

func printSuccess(w io.Writer, format string, a ...interface{}) {
	_, _ = color.New(color.FgGreen).Fprintf(w, format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...interface{}) {
	_, _ = color.New(color.FgYellow).Fprintf(w, format+"\n", a...)
}

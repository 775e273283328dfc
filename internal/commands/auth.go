package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"payctl/internal/auth"
	"payctl/internal/config"
	"payctl/internal/models"
	"payctl/internal/validation"
)

var (
	loginPlain    bool
	registerPlain bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the billing service",
	Long:  "Sign in with your email and password. Opens the interactive form unless --plain is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !loginPlain {
			return runUI(auth.LoginPath, "")
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		email, err := prompt(in, out, "Email: ")
		if err != nil {
			return fmt.Errorf("error reading email: %w", err)
		}
		password, err := promptPassword(cmd, in, out, "Password: ")
		if err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}

		data := models.Credentials{Email: email, Password: password}
		if errs := validation.New().Struct(data); errs != nil {
			printFieldErrors(out, errs)
			return fmt.Errorf("invalid credentials input")
		}

		authResult, err := s.client.Login(context.Background(), data)
		if err != nil {
			return failure("login failed", err)
		}
		if err := s.rememberUser(authResult); err != nil {
			return err
		}

		printSuccess(out, "Successfully logged in as %s", data.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  "Register a new account with the billing service. Opens the interactive form unless --plain is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !registerPlain {
			return runUI(auth.RegisterPath, "")
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		name, err := prompt(in, out, "Name: ")
		if err != nil {
			return fmt.Errorf("error reading name: %w", err)
		}
		email, err := prompt(in, out, "Email: ")
		if err != nil {
			return fmt.Errorf("error reading email: %w", err)
		}
		password, err := promptPassword(cmd, in, out, "Password: ")
		if err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}

		data := models.Registration{Name: name, Email: email, Password: password}
		if errs := validation.New().Struct(data); errs != nil {
			printFieldErrors(out, errs)
			return fmt.Errorf("invalid registration input")
		}

		authResult, err := s.client.Register(context.Background(), data)
		if err != nil {
			return failure("account creation failed", err)
		}
		if err := s.rememberUser(authResult); err != nil {
			return err
		}

		printSuccess(out, "Account successfully created for %s", data.Email)
		fmt.Fprintln(out, "You are now logged in")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from the billing service",
	Long:  "Remove saved authentication credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		if err := s.client.Logout(); err != nil {
			return fmt.Errorf("error during logout: %w", err)
		}

		s.config.ClearUser()
		if err := config.SaveGlobalConfig(s.config); err != nil {
			return fmt.Errorf("error saving global config: %w", err)
		}

		printSuccess(cmd.OutOrStdout(), "Successfully logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current user information",
	Long:  "Display information about the currently logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !auth.IsAuthenticated(s.tokens) {
			printWarning(out, "You are not logged in")
			return nil
		}

		if s.config.Email == "" {
			fmt.Fprintln(out, "You are logged in, but user details are not available")
			fmt.Fprintf(out, "Server: %s\n", s.config.ServerURL)
			return nil
		}

		fmt.Fprintf(out, "Logged in as: %s\n", s.config.Email)
		if s.config.Name != "" {
			fmt.Fprintf(out, "Name: %s\n", s.config.Name)
		}
		if s.config.UserID != "" {
			fmt.Fprintf(out, "User ID: %s\n", s.config.UserID)
		}
		fmt.Fprintf(out, "Server: %s\n", s.config.ServerURL)
		return nil
	},
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword hides input on a terminal and falls back to a plain line otherwise
func promptPassword(cmd *cobra.Command, in *bufio.Reader, out io.Writer, label string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(f.Fd()) {
		fmt.Fprint(out, label)
		passwordBytes, err := term.ReadPassword(f.Fd())
		fmt.Fprintln(out) // Add a newline after password input
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printFieldErrors(w io.Writer, errs validation.Errors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	red := color.New(color.FgRed)
	for _, field := range fields {
		_, _ = red.Fprintf(w, "%s: %s\n", field, errs[field])
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().BoolVar(&loginPlain, "plain", false, "Prompt on the command line instead of opening the form")
	registerCmd.Flags().BoolVar(&registerPlain, "plain", false, "Prompt on the command line instead of opening the form")
}

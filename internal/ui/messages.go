package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"payctl/internal/models"
)

// NavigateMsg switches the app to the screen at Path. Auth is set when the
// navigation follows a successful login or registration.
type NavigateMsg struct {
	Path string
	Auth *models.Auth
}

// CheckoutMsg is emitted when a plan is chosen on the pricing screen
type CheckoutMsg struct {
	Plan  models.Plan
	Cycle models.BillingCycle
}

type plansLoadedMsg []models.Plan
type errorMsg string

type authResultMsg struct {
	auth *models.Auth
	err  error
}

type paymentResultMsg struct {
	response *models.InitPaymentResponse
	err      error
}

func navigate(path string, a *models.Auth) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path, Auth: a}
	}
}

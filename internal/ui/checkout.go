package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"payctl/internal/auth"
	"payctl/internal/models"
	"payctl/internal/mutation"
	"payctl/internal/pricing"
	"payctl/internal/ui/components"
	"payctl/internal/util"
	"payctl/internal/validation"
)

// PaymentService starts a checkout on the backend
type PaymentService interface {
	InitPayment(ctx context.Context, data models.InitPaymentRequest) (*models.InitPaymentResponse, error)
}

// CheckoutModel confirms a plan and cycle, lets the user pick a payment
// method and requests a payment URL.
type CheckoutModel struct {
	plan    models.Plan
	cycle   models.BillingCycle
	quote   pricing.Quote
	methods components.PaymentMethodsModel

	pending     bool
	fieldErrors validation.Errors
	errMessage  string
	paymentURL  string

	validator *validation.Validator
	initPay   *mutation.Mutation[models.InitPaymentRequest, *models.InitPaymentResponse]
}

// NewCheckoutModel creates the checkout screen for a chosen plan
func NewCheckoutModel(plan models.Plan, cycle models.BillingCycle, catalog *models.PaymentCatalog, svc PaymentService) CheckoutModel {
	return CheckoutModel{
		plan:      plan,
		cycle:     cycle,
		quote:     pricing.QuotePlan(plan, cycle),
		methods:   components.NewPaymentMethodsModel(catalog, 60, 4*len(catalog.Methods)+4),
		validator: validation.New(),
		initPay:   mutation.New[models.InitPaymentRequest, *models.InitPaymentResponse]("initPayment", svc.InitPayment),
	}
}

// Plan returns the plan being bought
func (m CheckoutModel) Plan() models.Plan {
	return m.plan
}

// Cycle returns the billing cycle being bought
func (m CheckoutModel) Cycle() models.BillingCycle {
	return m.cycle
}

// Provider returns the selected payment method id
func (m CheckoutModel) Provider() string {
	return m.methods.Value()
}

// SetProvider selects a payment method by id
func (m *CheckoutModel) SetProvider(id string) error {
	return m.methods.SetValue(id)
}

// Pending reports whether a payment request is in flight
func (m CheckoutModel) Pending() bool {
	return m.pending || (m.initPay != nil && m.initPay.Pending())
}

// ErrorMessage is the failure text of the last payment request
func (m CheckoutModel) ErrorMessage() string {
	return m.errMessage
}

// FieldErrors are the validation messages of the last submit attempt
func (m CheckoutModel) FieldErrors() validation.Errors {
	return m.fieldErrors
}

// PaymentURL is the provider URL returned by the backend
func (m CheckoutModel) PaymentURL() string {
	return m.paymentURL
}

// Update handles method selection, submission and results
func (m CheckoutModel) Update(msg tea.Msg) (CheckoutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case paymentResultMsg:
		m.pending = false
		if msg.err != nil {
			m.errMessage = mutation.ErrorMessage(msg.err)
			return m, nil
		}
		m.paymentURL = msg.response.URL
		return m, nil

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "esc":
			return m, navigate(auth.DashboardPath, nil)
		}
	}

	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.methods, cmd = m.methods.Update(msg)
	return m, cmd
}

func (m CheckoutModel) submit() (CheckoutModel, tea.Cmd) {
	if m.Pending() {
		return m, nil
	}
	m.errMessage = ""
	m.paymentURL = ""

	req := models.InitPaymentRequest{
		PlanID:        m.plan.ID,
		BillingPeriod: m.cycle,
		Provider:      m.methods.Value(),
	}
	if m.fieldErrors = m.validator.Struct(req); m.fieldErrors != nil {
		return m, nil
	}

	m.pending = true
	initPay := m.initPay
	return m, func() tea.Msg {
		resp, err := initPay.Do(context.Background(), req)
		return paymentResultMsg{response: resp, err: err}
	}
}

// View renders the order summary and method list
func (m CheckoutModel) View() string {
	var b strings.Builder

	b.WriteString(accentStyle.Render(fmt.Sprintf("%s %s", planIcon(m.plan.Title), m.plan.Title)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s)", m.cycle)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s%s", util.FormatPrice(m.quote.Price), mutedStyle.Render(" / month")))
	if m.cycle == models.Yearly {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(", %s billed annually", util.FormatPrice(m.plan.YearlyPrice))))
	}
	b.WriteString("\n\n")

	b.WriteString(m.methods.View())
	b.WriteString("\n")
	if msg, ok := m.fieldErrors["provider"]; ok {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	switch {
	case m.pending:
		b.WriteString(disabledButtonStyle.Render("Please wait…"))
	case m.paymentURL != "":
		b.WriteString(successStyle.Render("Open this link to complete the payment:"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Underline(true).Render(m.paymentURL))
	default:
		b.WriteString(buttonStyle.Render("Pay"))
	}
	b.WriteString("\n")

	if m.errMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMessage))
		b.WriteString("\n")
	}

	return b.String()
}

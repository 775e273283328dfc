package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"payctl/internal/auth"
	"payctl/internal/config"
	"payctl/internal/logging"
	"payctl/internal/models"
)

// Backend is everything the interactive client needs from the billing API
type Backend interface {
	auth.Service
	PaymentService
	GetPlans(ctx context.Context) ([]models.Plan, error)
}

// PlanSource loads the plan catalog
type PlanSource func(ctx context.Context) ([]models.Plan, error)

// Option customises the root model
type Option func(*Model)

// WithPlanSource replaces the backend plan listing, e.g. with a local file
func WithPlanSource(source PlanSource) Option {
	return func(m *Model) {
		m.planSource = source
	}
}

// WithStartRoute opens the UI on the given screen instead of the default
func WithStartRoute(path string) Option {
	return func(m *Model) {
		m.route = path
	}
}

// WithAuthenticatedHook runs after every successful login or registration
func WithAuthenticatedHook(hook func(*models.Auth)) Option {
	return func(m *Model) {
		m.onAuthenticated = hook
	}
}

// Model represents the UI model. It owns the current route and the screen
// shown for it.
type Model struct {
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Config        *config.Config
	Width         int
	Height        int

	backend         Backend
	tokens          auth.TokenSource
	catalog         *models.PaymentCatalog
	planSource      PlanSource
	onAuthenticated func(*models.Auth)
	logger          logrus.FieldLogger

	route    string
	form     AuthFormModel
	pricing  PricingModel
	checkout CheckoutModel
}

// NewModel creates the root model. Unless a start route is given,
// authenticated users start on the dashboard and everyone else on the login form.
func NewModel(cfg *config.Config, backend Backend, tokens auth.TokenSource, catalog *models.PaymentCatalog, opts ...Option) Model {
	if catalog == nil {
		catalog = models.DefaultPaymentCatalog()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		Spinner:       s,
		IsLoading:     true,
		StatusMessage: "Loading plans...",
		Config:        cfg,
		backend:       backend,
		tokens:        tokens,
		catalog:       catalog,
		planSource:    backend.GetPlans,
		logger:        logging.NewModuleLogger("ui"),
		pricing:       NewPricingModel(nil),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.route == "" {
		m.route = auth.LoginPath
		if auth.IsAuthenticated(tokens) {
			m.route = auth.DashboardPath
		}
	}

	switch m.route {
	case auth.LoginPath:
		m.form = NewLoginForm(backend)
	case auth.RegisterPath:
		m.form = NewRegisterForm(backend)
	default:
		m.route = auth.DashboardPath
	}

	return m
}

// Route returns the path of the screen being shown
func (m Model) Route() string {
	return m.route
}

// Form returns the active auth form
func (m Model) Form() AuthFormModel {
	return m.form
}

// Pricing returns the pricing screen
func (m Model) Pricing() PricingModel {
	return m.pricing
}

// Checkout returns the checkout screen
func (m Model) Checkout() CheckoutModel {
	return m.checkout
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick, m.loadPlans()}
	if m.route == auth.LoginPath || m.route == auth.RegisterPath {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.route == auth.DashboardPath {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "r":
				m.IsLoading = true
				m.StatusMessage = "Refreshing plans..."
				m.ErrorMessage = ""
				return m, m.loadPlans()
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.pricing, _ = m.pricing.Update(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case plansLoadedMsg:
		m.IsLoading = false
		m.StatusMessage = fmt.Sprintf("Loaded %d plans", len(msg))
		m.pricing.SetPlans(msg)
		return m, nil

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil

	case NavigateMsg:
		return m.navigate(msg)

	case CheckoutMsg:
		if !auth.IsAuthenticated(m.tokens) {
			m.StatusMessage = "Sign in to continue"
			return m.navigate(NavigateMsg{Path: auth.LoginPath})
		}
		m.route = auth.CheckoutPath
		m.ErrorMessage = ""
		m.StatusMessage = fmt.Sprintf("Checkout: %s (%s)", msg.Plan.Title, msg.Cycle)
		m.checkout = NewCheckoutModel(msg.Plan, msg.Cycle, m.catalog, m.backend)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.route {
	case auth.LoginPath, auth.RegisterPath:
		m.form, cmd = m.form.Update(msg)
	case auth.CheckoutPath:
		m.checkout, cmd = m.checkout.Update(msg)
	default:
		m.pricing, cmd = m.pricing.Update(msg)
	}
	return m, cmd
}

func (m Model) navigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	m.logger.WithField("path", msg.Path).Debug("navigate")

	if msg.Auth != nil {
		m.StatusMessage = fmt.Sprintf("Signed in as %s", msg.Auth.User.Email)
		if m.onAuthenticated != nil {
			m.onAuthenticated(msg.Auth)
		}
	}

	m.route = msg.Path
	switch msg.Path {
	case auth.LoginPath:
		m.form = NewLoginForm(m.backend)
		return m, m.form.Init()
	case auth.RegisterPath:
		m.form = NewRegisterForm(m.backend)
		return m, m.form.Init()
	default:
		m.route = auth.DashboardPath
		return m, nil
	}
}

func (m Model) loadPlans() tea.Cmd {
	source := m.planSource
	logger := m.logger
	return func() tea.Msg {
		plans, err := source(context.Background())
		if err != nil {
			logger.WithError(err).Warn("failed to load plans")
			return errorMsg(fmt.Sprintf("Error loading plans: %v", err))
		}
		return plansLoadedMsg(plans)
	}
}

func (m Model) helpText() string {
	switch m.route {
	case auth.LoginPath:
		return "enter submit • tab next field • ctrl+r register • ctrl+c quit"
	case auth.RegisterPath:
		return "enter submit • tab next field • ctrl+l sign in • ctrl+c quit"
	case auth.CheckoutPath:
		return "↑/↓ move • space select • enter pay • esc back • ctrl+c quit"
	default:
		return "t toggle monthly/yearly • ←/→ choose • enter buy • r refresh • q quit"
	}
}

// View renders the UI
func (m Model) View() string {
	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	serverURL := ""
	if m.Config != nil {
		serverURL = m.Config.ServerURL
	}

	var body string
	switch m.route {
	case auth.LoginPath, auth.RegisterPath:
		body = m.form.View()
	case auth.CheckoutPath:
		body = m.checkout.View()
	default:
		body = m.pricing.View()
	}

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = errorStyle.Padding(0, 1).Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("payctl - %s", serverURL)),
		helpStyle.Render(status),
		body,
		errorView,
		helpStyle.Render(m.helpText()),
	)
}

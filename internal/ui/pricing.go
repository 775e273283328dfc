package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"payctl/internal/models"
	"payctl/internal/pricing"
	"payctl/internal/util"
)

var planIcons = map[string]string{
	"basic":            "◆",
	"базовый":          "◆",
	"professional":     "★",
	"профессиональный": "★",
	"business":         "▲",
	"бизнес":           "▲",
}

func planIcon(title string) string {
	if icon, ok := planIcons[strings.ToLower(title)]; ok {
		return icon
	}
	return "◆"
}

// PricingModel shows every plan under the selected billing cycle.
// The cycle starts monthly and is shared by all cards.
type PricingModel struct {
	plans  []models.Plan
	cycle  models.BillingCycle
	cursor int
	width  int
}

// NewPricingModel creates the pricing screen in monthly mode
func NewPricingModel(plans []models.Plan) PricingModel {
	return PricingModel{plans: plans, cycle: models.Monthly}
}

// Cycle returns the active billing cycle
func (m PricingModel) Cycle() models.BillingCycle {
	return m.cycle
}

// Quotes returns the displayed quote of every plan, in plan order
func (m PricingModel) Quotes() []pricing.Quote {
	return pricing.QuoteAll(m.plans, m.cycle)
}

// SetPlans replaces the catalog, keeping the cycle
func (m *PricingModel) SetPlans(plans []models.Plan) {
	m.plans = plans
	if m.cursor >= len(plans) {
		m.cursor = 0
	}
}

// Selected returns the plan under the cursor
func (m PricingModel) Selected() (models.Plan, bool) {
	if len(m.plans) == 0 {
		return models.Plan{}, false
	}
	return m.plans[m.cursor], true
}

// Update handles the cycle toggle, card navigation and plan choice
func (m PricingModel) Update(msg tea.Msg) (PricingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "t", " ", "tab":
			m.cycle = m.cycle.Toggle()
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.plans)-1 {
				m.cursor++
			}
		case "enter":
			plan, ok := m.Selected()
			if !ok {
				return m, nil
			}
			cycle := m.cycle
			return m, func() tea.Msg {
				return CheckoutMsg{Plan: plan, Cycle: cycle}
			}
		}
	}
	return m, nil
}

func (m PricingModel) renderToggle() string {
	monthly, yearly := mutedStyle.Render("Monthly"), mutedStyle.Render("Yearly")
	if m.cycle == models.Yearly {
		yearly = accentStyle.Render("[Yearly]")
	} else {
		monthly = accentStyle.Render("[Monthly]")
	}

	toggle := fmt.Sprintf("%s  /  %s", monthly, yearly)
	if m.cycle == models.Yearly {
		if discount := pricing.MaxDiscount(m.plans); discount > 0 {
			toggle += "  " + badgeStyle.Render(fmt.Sprintf("Save up to %d%%", discount))
		}
	}
	return toggle
}

func (m PricingModel) renderCard(i int, plan models.Plan, quote pricing.Quote) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", planIcon(plan.Title), plan.Title)
	b.WriteString(labelStyle.Render(title))
	if plan.IsFeatured {
		b.WriteString(" ")
		b.WriteString(badgeStyle.Render("Popular"))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(util.Truncate(plan.Description, 60)))
	b.WriteString("\n\n")

	b.WriteString(accentStyle.Render(util.FormatPrice(quote.Price)))
	b.WriteString(mutedStyle.Render(" / month"))
	b.WriteString("\n")

	if m.cycle == models.Yearly {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s per year", util.FormatPrice(plan.YearlyPrice))))
		b.WriteString("\n")
		if plan.IsDiscounted() {
			b.WriteString(successStyle.Render(fmt.Sprintf("billed annually, save %d %%", quote.Discount)))
		} else {
			b.WriteString(mutedStyle.Render("billed annually"))
		}
	} else {
		b.WriteString(mutedStyle.Render("cancel any time"))
	}
	b.WriteString("\n\n")

	for _, feature := range plan.Features {
		b.WriteString(successStyle.Render("✓ "))
		b.WriteString(feature)
		b.WriteString("\n")
	}

	style := cardStyle
	if plan.IsFeatured {
		style = featuredCardStyle
	}
	if i == m.cursor {
		style = style.BorderForeground(colorTitle)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// View renders the toggle and the plan cards
func (m PricingModel) View() string {
	if len(m.plans) == 0 {
		return mutedStyle.Render("No plans available")
	}

	quotes := m.Quotes()
	cards := make([]string, len(m.plans))
	for i, plan := range m.plans {
		cards[i] = m.renderCard(i, plan, quotes[i])
	}

	var row string
	if m.width > 0 && m.width < len(cards)*lipgloss.Width(cards[0]) {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Choose a plan"),
		m.renderToggle(),
		"",
		row,
	)
}

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payctl/internal/models"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPricing_StartsMonthly(t *testing.T) {
	m := NewPricingModel(testPlans)
	assert.Equal(t, models.Monthly, m.Cycle())

	quotes := m.Quotes()
	require.Len(t, quotes, 3)
	assert.Equal(t, 1000, quotes[0].Price)
	assert.Zero(t, quotes[0].Discount)

	view := m.View()
	assert.Contains(t, view, "1 000 ₽")
	assert.Contains(t, view, "cancel any time")
}

func TestPricing_ToggleYearly(t *testing.T) {
	m := NewPricingModel(testPlans)

	m, _ = m.Update(key("t"))
	assert.Equal(t, models.Yearly, m.Cycle())

	quotes := m.Quotes()
	assert.Equal(t, 800, quotes[0].Price)
	assert.Equal(t, 20, quotes[0].Discount)
	assert.Equal(t, 2000, quotes[1].Price)

	view := m.View()
	assert.Contains(t, view, "Save up to 20%")
	assert.Contains(t, view, "9 600 ₽ per year")
	assert.Contains(t, view, "save 20 %")
}

func TestPricing_SurchargeHidesSaving(t *testing.T) {
	m := NewPricingModel([]models.Plan{
		{ID: "odd", Title: "Odd", MonthlyPrice: 1000, YearlyPrice: 15000},
	})
	m, _ = m.Update(key("t"))

	assert.Equal(t, -25, m.Quotes()[0].Discount)
	view := m.View()
	assert.Contains(t, view, "billed annually")
	assert.NotContains(t, view, "save -25")
	assert.NotContains(t, view, "Save up to")
}

func TestPricing_DoubleToggleRestoresPrices(t *testing.T) {
	m := NewPricingModel(testPlans)
	before := m.Quotes()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, models.Monthly, m.Cycle())
	assert.Equal(t, before, m.Quotes())
}

func TestPricing_EnterEmitsCheckout(t *testing.T) {
	m := NewPricingModel(testPlans)
	m, _ = m.Update(key("t"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	checkout, ok := cmd().(CheckoutMsg)
	require.True(t, ok)
	assert.Equal(t, "biz", checkout.Plan.ID)
	assert.Equal(t, models.Yearly, checkout.Cycle)
}

func TestPricing_Empty(t *testing.T) {
	m := NewPricingModel(nil)

	_, cmd := m.Update(enter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "No plans available")

	m.SetPlans(testPlans)
	_, ok := m.Selected()
	assert.True(t, ok)
}

func TestPlanIcon(t *testing.T) {
	assert.Equal(t, "★", planIcon("Professional"))
	assert.Equal(t, "▲", planIcon("Бизнес"))
	assert.Equal(t, "◆", planIcon("Enterprise"))
}

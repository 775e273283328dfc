package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"payctl/internal/models"
)

// MethodItem represents a payment method in the list
type MethodItem struct {
	Method   models.PaymentMethod
	Selected bool
}

// FilterValue returns the filter value for the method item
func (i MethodItem) FilterValue() string {
	return i.Method.Name
}

// Title returns the radio marker, icon and name
func (i MethodItem) Title() string {
	marker := "○"
	if i.Selected {
		marker = "●"
	}

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(i.Method.TextColor)).
		Background(lipgloss.Color(i.Method.Background)).
		Padding(0, 1)
	if i.Selected {
		icon = icon.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("208"))
	}

	return fmt.Sprintf("%s %s %s", marker, icon.Render(i.Method.Icon), i.Method.Name)
}

// Description returns the method description
func (i MethodItem) Description() string {
	return i.Method.Description
}

// PaymentMethodsModel is a single-select control over a payment catalog.
// Value is the selected method id, or empty while nothing is selected.
type PaymentMethodsModel struct {
	List    list.Model
	Catalog *models.PaymentCatalog
	value   string
}

// NewPaymentMethodsModel creates the selector with nothing selected
func NewPaymentMethodsModel(catalog *models.PaymentCatalog, width, height int) PaymentMethodsModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("208")).
		BorderLeftForeground(lipgloss.Color("208"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("215")).
		BorderLeftForeground(lipgloss.Color("208"))

	listModel := list.New([]list.Item{}, delegate, width, height)
	listModel.Title = "Payment method"
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(false)
	listModel.KeyMap.Quit.SetEnabled(false)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	m := PaymentMethodsModel{
		List:    listModel,
		Catalog: catalog,
	}
	m.refresh()
	return m
}

// Value returns the selected method id
func (m PaymentMethodsModel) Value() string {
	return m.value
}

// SetValue binds the field to id, which must name a catalog method.
// An empty id clears the selection.
func (m *PaymentMethodsModel) SetValue(id string) error {
	if id != "" && !m.Catalog.Contains(id) {
		return fmt.Errorf("%w: %s", models.ErrUnknownPaymentMethod, id)
	}
	m.value = id
	m.refresh()
	return nil
}

// Cursor returns the method under the cursor, which is not necessarily the selected one
func (m PaymentMethodsModel) Cursor() *models.PaymentMethod {
	if item, ok := m.List.SelectedItem().(MethodItem); ok {
		method := item.Method
		return &method
	}
	return nil
}

func (m *PaymentMethodsModel) refresh() {
	items := make([]list.Item, len(m.Catalog.Methods))
	for i, method := range m.Catalog.Methods {
		items[i] = MethodItem{Method: method, Selected: method.ID == m.value}
	}
	m.List.SetItems(items)
}

// Update moves the cursor; space selects the method under it
func (m PaymentMethodsModel) Update(msg tea.Msg) (PaymentMethodsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == " " {
		if method := m.Cursor(); method != nil {
			m.value = method.ID
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the method list
func (m PaymentMethodsModel) View() string {
	return m.List.View()
}

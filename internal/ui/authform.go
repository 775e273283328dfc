package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"payctl/internal/auth"
	"payctl/internal/models"
	"payctl/internal/mutation"
	"payctl/internal/validation"
)

// FormKind selects which auth form a model renders
type FormKind int

const (
	LoginForm FormKind = iota
	RegisterForm
)

type formField struct {
	name        string
	label       string
	placeholder string
	password    bool
}

var (
	nameField     = formField{name: "name", label: "Name", placeholder: "John Myers"}
	emailField    = formField{name: "email", label: "Email", placeholder: "payment@payment.com"}
	passwordField = formField{name: "password", label: "Password", placeholder: "******", password: true}
)

// AuthFormModel is the login or register form. Values are validated before
// anything is sent; while a submission is pending the form ignores input.
type AuthFormModel struct {
	kind        FormKind
	fields      []formField
	inputs      []textinput.Model
	focus       int
	pending     bool
	fieldErrors validation.Errors
	errMessage  string

	validator *validation.Validator
	login     *mutation.Mutation[models.Credentials, *models.Auth]
	register  *mutation.Mutation[models.Registration, *models.Auth]
}

// NewLoginForm creates the login form
func NewLoginForm(svc auth.Service) AuthFormModel {
	m := newAuthForm(LoginForm, []formField{emailField, passwordField})
	m.login = mutation.New[models.Credentials, *models.Auth]("login", svc.Login)
	return m
}

// NewRegisterForm creates the registration form
func NewRegisterForm(svc auth.Service) AuthFormModel {
	m := newAuthForm(RegisterForm, []formField{nameField, emailField, passwordField})
	m.register = mutation.New[models.Registration, *models.Auth]("register", svc.Register)
	return m
}

func newAuthForm(kind FormKind, fields []formField) AuthFormModel {
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = field.placeholder
		ti.CharLimit = 256
		ti.Width = 40
		if field.password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return AuthFormModel{
		kind:      kind,
		fields:    fields,
		inputs:    inputs,
		validator: validation.New(),
	}
}

// Kind returns whether this is the login or the register form
func (m AuthFormModel) Kind() FormKind {
	return m.kind
}

// Pending reports whether a submission is in flight
func (m AuthFormModel) Pending() bool {
	if m.pending {
		return true
	}
	if m.login != nil && m.login.Pending() {
		return true
	}
	return m.register != nil && m.register.Pending()
}

// ErrorMessage is the failure text of the last submission
func (m AuthFormModel) ErrorMessage() string {
	return m.errMessage
}

// FieldErrors are the validation messages of the last submit attempt
func (m AuthFormModel) FieldErrors() validation.Errors {
	return m.fieldErrors
}

// SetValue fills a field by name; unknown names are ignored
func (m *AuthFormModel) SetValue(field, value string) {
	for i, f := range m.fields {
		if f.name == field {
			m.inputs[i].SetValue(value)
			return
		}
	}
}

func (m AuthFormModel) value(field string) string {
	for i, f := range m.fields {
		if f.name == field {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// Init starts the cursor blink
func (m AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input and submission results
func (m AuthFormModel) Update(msg tea.Msg) (AuthFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.pending = false
		m.focusInput(m.focus)
		if msg.err != nil {
			m.errMessage = mutation.ErrorMessage(msg.err)
			return m, nil
		}
		return m, navigate(auth.DashboardPath, msg.auth)

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}

		switch msg.String() {
		case "enter":
			return m.submit()
		case "tab", "down":
			m.focusInput((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "ctrl+r":
			if m.kind == LoginForm {
				return m, navigate(auth.RegisterPath, nil)
			}
		case "ctrl+l":
			if m.kind == RegisterForm {
				return m, navigate(auth.LoginPath, nil)
			}
		}
	}

	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthFormModel) focusInput(index int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = index
	m.inputs[index].Focus()
}

// submit validates and, when valid, starts exactly one backend call
func (m AuthFormModel) submit() (AuthFormModel, tea.Cmd) {
	if m.Pending() {
		return m, nil
	}
	m.errMessage = ""

	switch m.kind {
	case RegisterForm:
		values := models.Registration{
			Name:     strings.TrimSpace(m.value("name")),
			Email:    strings.TrimSpace(m.value("email")),
			Password: m.value("password"),
		}
		if m.fieldErrors = m.validator.Struct(values); m.fieldErrors != nil {
			return m, nil
		}
		m.startPending()
		register := m.register
		return m, func() tea.Msg {
			a, err := register.Do(context.Background(), values)
			return authResultMsg{auth: a, err: err}
		}

	default:
		values := models.Credentials{
			Email:    strings.TrimSpace(m.value("email")),
			Password: m.value("password"),
		}
		if m.fieldErrors = m.validator.Struct(values); m.fieldErrors != nil {
			return m, nil
		}
		m.startPending()
		login := m.login
		return m, func() tea.Msg {
			a, err := login.Do(context.Background(), values)
			return authResultMsg{auth: a, err: err}
		}
	}
}

func (m *AuthFormModel) startPending() {
	m.pending = true
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// View renders the form
func (m AuthFormModel) View() string {
	title, description, bottomText, bottomLink := "Sign in", "Fill in the form below to sign in to your account",
		"No account yet?", "ctrl+r to create one"
	if m.kind == RegisterForm {
		title, description, bottomText, bottomLink = "Create account", "Fill in the form below to create an account",
			"Already have an account?", "ctrl+l to sign in"
	}

	var b strings.Builder
	b.WriteString(accentStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(description))
	b.WriteString("\n\n")

	for i, field := range m.fields {
		b.WriteString(labelStyle.Render(field.label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.fieldErrors[field.name]; ok {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.pending {
		b.WriteString(disabledButtonStyle.Render("Please wait…"))
	} else {
		b.WriteString(buttonStyle.Render("Continue"))
	}
	b.WriteString("\n")

	if m.errMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s", mutedStyle.Render(bottomText), accentStyle.Render(bottomLink)))

	return formStyle.Render(b.String())
}

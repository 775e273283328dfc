package ui

import (
	"context"
	"sync"

	"payctl/internal/models"
)

type fakeBackend struct {
	mu            sync.Mutex
	loginCalls    int
	registerCalls int
	paymentCalls  int

	auth       *models.Auth
	authErr    error
	plans      []models.Plan
	plansErr   error
	payment    *models.InitPaymentResponse
	paymentErr error
	lastInit   models.InitPaymentRequest

	// when set, Login signals started and waits for release
	started chan struct{}
	release chan struct{}
}

func (f *fakeBackend) Login(ctx context.Context, data models.Credentials) (*models.Auth, error) {
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.auth, f.authErr
}

func (f *fakeBackend) Register(ctx context.Context, data models.Registration) (*models.Auth, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	return f.auth, f.authErr
}

func (f *fakeBackend) GetPlans(ctx context.Context) ([]models.Plan, error) {
	return f.plans, f.plansErr
}

func (f *fakeBackend) InitPayment(ctx context.Context, data models.InitPaymentRequest) (*models.InitPaymentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paymentCalls++
	f.lastInit = data
	return f.payment, f.paymentErr
}

type fakeTokens string

func (t fakeTokens) GetAccessToken() (string, bool) {
	return string(t), t != ""
}

var testPlans = []models.Plan{
	{ID: "basic", Title: "Basic", Description: "For individuals", MonthlyPrice: 1000, YearlyPrice: 9600, Features: []string{"1 project"}},
	{ID: "pro", Title: "Professional", Description: "For teams", MonthlyPrice: 2500, YearlyPrice: 24000, IsFeatured: true},
	{ID: "biz", Title: "Business", Description: "For companies", MonthlyPrice: 4900, YearlyPrice: 47000},
}

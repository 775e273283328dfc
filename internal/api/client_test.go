package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"payctl/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *models.TokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := models.NewTokenStore(t.TempDir())
	return NewClient(server.URL+"/", store, WithTimeout(5*time.Second)), store
}

func TestLogin_TokenFromBody(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body.Email)
		assert.Equal(t, "secret", body.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"accessToken":"tok-1","user":{"id":"u1","email":"user@example.com","name":"Jane"}}`)
	})

	auth, err := client.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", auth.Token)
	assert.Equal(t, models.User{ID: "u1", Email: "user@example.com", Name: "Jane"}, auth.User)
	assert.Equal(t, "tok-1", client.AuthToken)

	stored, ok := store.GetAccessToken()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", stored)
}

func TestRegister_TokenFromCookie(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane", body.Name)

		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "refresh"})
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "cookie-tok"})
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"user":{"_id":"u2","email":"jane@example.com"}}`)
	})

	auth, err := client.Register(context.Background(), models.Registration{Name: "Jane", Email: "jane@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "cookie-tok", auth.Token)
	assert.Equal(t, "u2", auth.User.ID)
}

func TestLogin_NoToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"user":{"id":"u1"}}`)
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret"})
	assert.Error(t, err)

	_, ok := store.GetAccessToken()
	assert.False(t, ok)
}

func TestLogin_StructuredFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid credentials","statusCode":401}`)
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret"})
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Equal(t, "Invalid credentials", reqErr.ResponseMessage)
	assert.Equal(t, "request failed with status code 401", reqErr.Message)
}

func TestRequestError_MessageList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":["email must be an email"," password too short "]}`)
	})

	_, err := client.Register(context.Background(), models.Registration{Name: "x", Email: "x", Password: "x"})

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "email must be an email; password too short", reqErr.ResponseMessage)
}

func TestRequestError_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html>bad gateway</html>`)
	})

	_, err := client.GetPlans(context.Background())

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Empty(t, reqErr.ResponseMessage)
	assert.Equal(t, "request failed with status code 502", reqErr.Message)
	assert.Equal(t, []byte(`<html>bad gateway</html>`), reqErr.Body)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, nil, WithTimeout(time.Second))
	_, err := client.GetPlans(context.Background())

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Zero(t, reqErr.StatusCode)
	assert.NotEmpty(t, reqErr.Message)
	assert.Empty(t, reqErr.ResponseMessage)
	assert.NotNil(t, errors.Unwrap(reqErr))
}

func TestGetPlans(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/plans", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[
			{"id":"basic","title":"Basic","monthlyPrice":1000,"yearlyPrice":9600,"features":["A","B"]},
			{"id":"pro","title":"Professional","monthlyPrice":2500,"yearlyPrice":24000,"isFeatured":true}
		]`)
	})

	plans, err := client.GetPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 9600, plans[0].YearlyPrice)
	assert.Equal(t, []string{"A", "B"}, plans[0].Features)
	assert.True(t, plans[1].IsFeatured)
}

func TestGetPlans_RejectsNegativePrice(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":"basic","title":"Basic","monthlyPrice":1000,"yearlyPrice":9600},
			{"id":"broken","title":"Broken","monthlyPrice":-100,"yearlyPrice":0}
		]`)
	})

	plans, err := client.GetPlans(context.Background())
	assert.ErrorIs(t, err, models.ErrInvalidPlan)
	assert.Nil(t, plans)
}

func TestGetPlans_RejectsMissingTitle(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"x","monthlyPrice":100,"yearlyPrice":1000}]`)
	})

	_, err := client.GetPlans(context.Background())
	assert.ErrorIs(t, err, models.ErrInvalidPlan)
}

func TestInitPayment(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/init", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"planId":"pro","billingPeriod":"yearly","provider":"card"}`, string(body))

		_, _ = io.WriteString(w, `{"url":"https://pay.example.com/c/123"}`)
	})
	require.NoError(t, store.SaveToken("tok"))
	client.AuthToken = "tok"

	resp, err := client.InitPayment(context.Background(), models.InitPaymentRequest{
		PlanID:        "pro",
		BillingPeriod: models.Yearly,
		Provider:      "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/c/123", resp.URL)
}

func TestInitPayment_RequiresToken(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.InitPayment(context.Background(), models.InitPaymentRequest{PlanID: "pro", Provider: "card"})
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	assert.False(t, called)
}

func TestGetPaymentByID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/pay%2F1", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"id":"pay/1","status":"succeeded","amount":9600,"billingPeriod":"yearly","provider":"sbp","plan":{"id":"basic","title":"Basic"},"createdAt":"2026-01-02T03:04:05Z"}`)
	})
	client.AuthToken = "tok"

	details, err := client.GetPaymentByID(context.Background(), "pay/1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", details.Status)
	assert.Equal(t, 9600, details.Amount)
	require.NotNil(t, details.Plan)
	assert.Equal(t, "Basic", details.Plan.Title)
}

func TestToggleAutoRenewal(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/@me/auto-renewal", r.URL.Path)

		var body models.UpdateAutoRenewalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.False(t, body.IsAutoRenewal)

		_, _ = io.WriteString(w, `{"isAutoRenewal":false}`)
	})
	client.AuthToken = "tok"

	resp, err := client.ToggleAutoRenewal(context.Background(), models.UpdateAutoRenewalRequest{IsAutoRenewal: false})
	require.NoError(t, err)
	assert.False(t, resp.IsAutoRenewal)
}

func TestLogout(t *testing.T) {
	store := models.NewTokenStore(t.TempDir())
	require.NoError(t, store.SaveToken("tok"))

	client := NewClient("http://localhost", store)
	assert.Equal(t, "tok", client.AuthToken)

	require.NoError(t, client.Logout())
	assert.Empty(t, client.AuthToken)
	_, ok := store.GetAccessToken()
	assert.False(t, ok)
}

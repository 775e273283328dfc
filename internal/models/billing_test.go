package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingCycleToggle(t *testing.T) {
	assert.Equal(t, Yearly, Monthly.Toggle())
	assert.Equal(t, Monthly, Yearly.Toggle())
	assert.Equal(t, Monthly, Monthly.Toggle().Toggle())
}

func TestParseBillingCycle(t *testing.T) {
	cycle, err := ParseBillingCycle("Yearly")
	require.NoError(t, err)
	assert.Equal(t, Yearly, cycle)

	cycle, err = ParseBillingCycle("")
	require.NoError(t, err)
	assert.Equal(t, Monthly, cycle)

	_, err = ParseBillingCycle("weekly")
	assert.ErrorIs(t, err, ErrInvalidBillingCycle)
}

func TestInitPaymentRequestJSON(t *testing.T) {
	data, err := json.Marshal(InitPaymentRequest{PlanID: "pro", BillingPeriod: Yearly, Provider: "sbp"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"planId":"pro","billingPeriod":"yearly","provider":"sbp"}`, string(data))
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payctl/internal/models"
)

func samplePlans() []models.Plan {
	return []models.Plan{
		{ID: "basic", Title: "Basic", MonthlyPrice: 1000, YearlyPrice: 9600},
		{ID: "pro", Title: "Professional", MonthlyPrice: 2490, YearlyPrice: 23900, IsFeatured: true},
		{ID: "biz", Title: "Business", MonthlyPrice: 4990, YearlyPrice: 47900},
		{ID: "free", Title: "Free"},
		{ID: "odd", Title: "Odd", MonthlyPrice: 7, YearlyPrice: 78},
	}
}

func TestQuotePlan_Example(t *testing.T) {
	plan := models.Plan{MonthlyPrice: 1000, YearlyPrice: 9600}

	q := QuotePlan(plan, models.Yearly)
	assert.Equal(t, 800, q.Price)
	assert.Equal(t, 20, q.Discount)

	q = QuotePlan(plan, models.Monthly)
	assert.Equal(t, 1000, q.Price)
	assert.Equal(t, 0, q.Discount)
}

func TestDisplayPrice_MonthlyIsUnchanged(t *testing.T) {
	for _, plan := range samplePlans() {
		assert.Equal(t, plan.MonthlyPrice, DisplayPrice(plan, models.Monthly), plan.Title)
	}
}

func TestDisplayPrice_NonNegative(t *testing.T) {
	for _, plan := range samplePlans() {
		for _, cycle := range []models.BillingCycle{models.Monthly, models.Yearly} {
			assert.GreaterOrEqual(t, DisplayPrice(plan, cycle), 0, "%s/%s", plan.Title, cycle)
		}
	}
}

func TestDisplayPrice_YearlyRounding(t *testing.T) {
	tests := []struct {
		yearly int
		want   int
	}{
		{9600, 800},
		{9594, 800}, // 799.5 rounds up
		{9593, 799},
		{78, 7}, // 6.5 rounds up
		{0, 0},
		{23900, 1992},
	}

	for _, tt := range tests {
		got := DisplayPrice(models.Plan{YearlyPrice: tt.yearly}, models.Yearly)
		assert.Equal(t, tt.want, got, "yearly=%d", tt.yearly)
	}
}

func TestYearlyDiscount(t *testing.T) {
	assert.Equal(t, 20, YearlyDiscount(1000, 9600))
	assert.Equal(t, 0, YearlyDiscount(1000, 12000))
	assert.Equal(t, 0, YearlyDiscount(0, 0))
	assert.Equal(t, 0, YearlyDiscount(0, 1200), "free monthly price must not divide by zero")
	assert.Equal(t, 20, YearlyDiscount(2490, 23900))
	assert.Equal(t, -25, YearlyDiscount(1000, 15000))
	assert.Equal(t, 58, YearlyDiscount(10, 51), "57.5 rounds half away from zero")
	assert.Equal(t, 58, YearlyDiscount(20, 102))
	assert.Equal(t, 58, YearlyDiscount(30, 153))
	assert.Equal(t, -3, YearlyDiscount(100, 1230), "-2.5 rounds away from zero")
}

func TestQuoteAll_OrderIndependent(t *testing.T) {
	plans := samplePlans()
	forward := QuoteAll(plans, models.Yearly)

	reversed := make([]models.Plan, len(plans))
	for i, plan := range plans {
		reversed[len(plans)-1-i] = plan
	}
	backward := QuoteAll(reversed, models.Yearly)

	for i := range plans {
		assert.Equal(t, forward[i], backward[len(plans)-1-i])
		assert.Equal(t, forward[i], QuotePlan(plans[i], models.Yearly), "quotes must be idempotent")
	}
}

func TestQuoteAll_DoubleToggleRestoresPrices(t *testing.T) {
	plans := samplePlans()
	cycle := models.Monthly

	before := QuoteAll(plans, cycle)
	cycle = cycle.Toggle().Toggle()
	after := QuoteAll(plans, cycle)

	assert.Equal(t, before, after)
}

func TestMaxDiscount(t *testing.T) {
	assert.Equal(t, 20, MaxDiscount(samplePlans()))
	assert.Equal(t, 0, MaxDiscount(nil))
	assert.Equal(t, 0, MaxDiscount([]models.Plan{{MonthlyPrice: 100, YearlyPrice: 1500}}))
}

// Package pricing derives the price shown for a plan under a billing cycle.
//
// Arithmetic is exact (shopspring/decimal) and rounding is half away from
// zero. For the non-negative prices a plan carries this matches the
// storefront's rounding, so a yearly price of 9594 shows as 800 per month
// rather than 799.
package pricing

import (
	"github.com/shopspring/decimal"

	"payctl/internal/models"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Quote is the derived display information for one plan
type Quote struct {
	// Price per month in whole currency units
	Price int
	// Discount is the yearly saving in percent; zero in monthly mode
	Discount int
	Cycle    models.BillingCycle
}

// DisplayPrice returns the monthly amount shown for the plan
func DisplayPrice(plan models.Plan, cycle models.BillingCycle) int {
	if cycle == models.Yearly {
		return int(decimal.NewFromInt(int64(plan.YearlyPrice)).DivRound(monthsPerYear, 0).IntPart())
	}
	return plan.MonthlyPrice
}

// YearlyDiscount returns how much cheaper yearly billing is per month, in percent.
// A free monthly price has no meaningful discount and yields 0. A yearly price
// above twelve monthly payments yields a negative value.
func YearlyDiscount(monthlyPrice, yearlyPrice int) int {
	if monthlyPrice == 0 {
		return 0
	}
	// 100 * (12m - y) / 12m
	twelveMonths := decimal.NewFromInt(int64(monthlyPrice)).Mul(monthsPerYear)
	saving := twelveMonths.Sub(decimal.NewFromInt(int64(yearlyPrice))).Mul(hundred)
	return int(saving.DivRound(twelveMonths, 0).IntPart())
}

// QuotePlan computes the quote for a single plan
func QuotePlan(plan models.Plan, cycle models.BillingCycle) Quote {
	q := Quote{
		Price: DisplayPrice(plan, cycle),
		Cycle: cycle,
	}
	if cycle == models.Yearly {
		q.Discount = YearlyDiscount(plan.MonthlyPrice, plan.YearlyPrice)
	}
	return q
}

// QuoteAll maps every plan through QuotePlan, preserving order
func QuoteAll(plans []models.Plan, cycle models.BillingCycle) []Quote {
	quotes := make([]Quote, len(plans))
	for i, plan := range plans {
		quotes[i] = QuotePlan(plan, cycle)
	}
	return quotes
}

// MaxDiscount is the largest yearly discount across plans, never below zero
func MaxDiscount(plans []models.Plan) int {
	best := 0
	for _, plan := range plans {
		if d := YearlyDiscount(plan.MonthlyPrice, plan.YearlyPrice); d > best {
			best = d
		}
	}
	return best
}

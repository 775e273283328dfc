package models

import (
	"errors"
)

// Session errors
var (
	// ErrNotAuthenticated is returned when an operation needs a stored access token
	ErrNotAuthenticated = errors.New("not logged in")
)

// Catalog errors
var (
	// ErrPlanNotFound is returned when a plan id is not in the fetched catalog
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidPlan is returned when a plan record breaks the catalog rules
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrUnknownPaymentMethod is returned when a provider id is not in the payment method catalog
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// ErrInvalidBillingCycle is returned when a billing period string cannot be parsed
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
)

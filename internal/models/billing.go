package models

import (
	"fmt"
	"strings"
)

// BillingCycle selects how a plan is paid for
type BillingCycle int

const (
	Monthly BillingCycle = iota
	Yearly
)

// String returns the backend's billingPeriod value
func (c BillingCycle) String() string {
	if c == Yearly {
		return "yearly"
	}
	return "monthly"
}

// Toggle returns the other cycle
func (c BillingCycle) Toggle() BillingCycle {
	if c == Yearly {
		return Monthly
	}
	return Yearly
}

// ParseBillingCycle parses "monthly" or "yearly"
func ParseBillingCycle(s string) (BillingCycle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "":
		return Monthly, nil
	case "yearly", "year", "annual":
		return Yearly, nil
	}
	return Monthly, fmt.Errorf("%w: %q", ErrInvalidBillingCycle, s)
}

// MarshalText implements encoding.TextMarshaler
func (c BillingCycle) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *BillingCycle) UnmarshalText(text []byte) error {
	parsed, err := ParseBillingCycle(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

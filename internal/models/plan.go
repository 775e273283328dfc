package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plan is a subscription plan as served by the backend. Prices are whole
// currency units.
type Plan struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	MonthlyPrice int      `json:"monthlyPrice" yaml:"monthly_price"`
	YearlyPrice  int      `json:"yearlyPrice" yaml:"yearly_price"`
	Features     []string `json:"features" yaml:"features"`
	IsFeatured   bool     `json:"isFeatured" yaml:"is_featured"`
}

// Validate checks the fields a locally loaded plan must carry
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPlan)
	}
	if p.MonthlyPrice < 0 || p.YearlyPrice < 0 {
		return fmt.Errorf("%w: %s has a negative price", ErrInvalidPlan, p.Title)
	}
	return nil
}

// IsDiscounted reports whether yearly billing costs no more than twelve monthly payments
func (p *Plan) IsDiscounted() bool {
	return p.YearlyPrice <= 12*p.MonthlyPrice
}

// FindPlan looks a plan up by id, falling back to a case-insensitive title match
func FindPlan(plans []Plan, key string) (*Plan, error) {
	for i := range plans {
		if plans[i].ID == key {
			return &plans[i], nil
		}
	}
	for i := range plans {
		if strings.EqualFold(plans[i].Title, key) {
			return &plans[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, key)
}

// LoadPlans reads a plan catalog from a YAML or JSON file
func LoadPlans(path string) ([]Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plans []Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &plans); err != nil {
			return nil, fmt.Errorf("error parsing plans JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &plans); err != nil {
			return nil, fmt.Errorf("error parsing plans YAML: %w", err)
		}
	}

	for i := range plans {
		if err := plans[i].Validate(); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

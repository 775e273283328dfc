package models

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/payment_methods.yaml
var defaultPaymentMethods []byte

// PaymentMethod is one selectable payment provider
type PaymentMethod struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Background  string `yaml:"bg"`
	TextColor   string `yaml:"text_color"`
}

// PaymentCatalog is an ordered, id-unique list of payment methods
type PaymentCatalog struct {
	Methods []PaymentMethod `yaml:"methods"`
}

// ParsePaymentCatalog decodes a YAML catalog and rejects duplicate or empty ids
func ParsePaymentCatalog(data []byte) (*PaymentCatalog, error) {
	var catalog PaymentCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("error parsing payment methods: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Methods))
	for _, method := range catalog.Methods {
		if method.ID == "" {
			return nil, fmt.Errorf("payment method %q has no id", method.Name)
		}
		if seen[method.ID] {
			return nil, fmt.Errorf("duplicate payment method id %q", method.ID)
		}
		seen[method.ID] = true
	}

	return &catalog, nil
}

// DefaultPaymentCatalog returns the catalog compiled into the binary
func DefaultPaymentCatalog() *PaymentCatalog {
	catalog, err := ParsePaymentCatalog(defaultPaymentMethods)
	if err != nil {
		panic(fmt.Sprintf("embedded payment catalog: %v", err))
	}
	return catalog
}

// Find returns the method with the given id
func (c *PaymentCatalog) Find(id string) (*PaymentMethod, error) {
	for i := range c.Methods {
		if c.Methods[i].ID == id {
			return &c.Methods[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPaymentMethod, id)
}

// Contains reports whether id names a catalog method
func (c *PaymentCatalog) Contains(id string) bool {
	_, err := c.Find(id)
	return err == nil
}

// IDs lists the method ids in catalog order
func (c *PaymentCatalog) IDs() []string {
	ids := make([]string, 0, len(c.Methods))
	for _, method := range c.Methods {
		ids = append(ids, method.ID)
	}
	return ids
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"payctl/internal/models"
)

// GetPlans fetches the public plan catalog. A plan with a negative price or
// no title rejects the whole catalog.
func (c *Client) GetPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if _, err := c.do(ctx, http.MethodGet, "/plans", nil, &plans, false); err != nil {
		return nil, err
	}
	for i := range plans {
		if err := plans[i].Validate(); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

// InitPayment starts a checkout and returns the provider URL
func (c *Client) InitPayment(ctx context.Context, data models.InitPaymentRequest) (*models.InitPaymentResponse, error) {
	var response models.InitPaymentResponse
	if _, err := c.do(ctx, http.MethodPost, "/payment/init", data, &response, true); err != nil {
		return nil, err
	}
	if response.URL == "" {
		return nil, fmt.Errorf("payment init response has no checkout url")
	}
	return &response, nil
}

// GetPaymentByID fetches the details of one payment
func (c *Client) GetPaymentByID(ctx context.Context, id string) (*models.PaymentDetails, error) {
	var details models.PaymentDetails
	path := fmt.Sprintf("/payment/%s", url.PathEscape(id))
	if _, err := c.do(ctx, http.MethodGet, path, nil, &details, true); err != nil {
		return nil, err
	}
	return &details, nil
}

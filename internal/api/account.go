package api

import (
	"context"
	"net/http"

	"payctl/internal/models"
)

// ToggleAutoRenewal switches auto-renewal of the current subscription
func (c *Client) ToggleAutoRenewal(ctx context.Context, data models.UpdateAutoRenewalRequest) (*models.UpdateAutoRenewalResponse, error) {
	var response models.UpdateAutoRenewalResponse
	if _, err := c.do(ctx, http.MethodPatch, "/users/@me/auto-renewal", data, &response, true); err != nil {
		return nil, err
	}
	return &response, nil
}

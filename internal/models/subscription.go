package models

// UpdateAutoRenewalRequest switches subscription auto-renewal on or off
type UpdateAutoRenewalRequest struct {
	IsAutoRenewal bool `json:"isAutoRenewal"`
}

// UpdateAutoRenewalResponse echoes the stored auto-renewal flag
type UpdateAutoRenewalResponse struct {
	IsAutoRenewal bool `json:"isAutoRenewal"`
}

package models

// InitPaymentRequest starts a checkout for a plan with the chosen provider
type InitPaymentRequest struct {
	PlanID        string       `json:"planId" validate:"required"`
	BillingPeriod BillingCycle `json:"billingPeriod"`
	Provider      string       `json:"provider" validate:"required"`
}

// InitPaymentResponse carries the provider checkout URL
type InitPaymentResponse struct {
	URL string `json:"url"`
}

// PaymentPlan is the plan summary embedded in payment details
type PaymentPlan struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PaymentDetails is the backend's view of a single payment
type PaymentDetails struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Amount        int          `json:"amount"`
	BillingPeriod string       `json:"billingPeriod"`
	Provider      string       `json:"provider"`
	Plan          *PaymentPlan `json:"plan,omitempty"`
	CreatedAt     string       `json:"createdAt"`
}

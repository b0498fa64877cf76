package dto

type CheckoutSessionRequest struct {
	SubscriptionTier string            `json:"subscriptionTier"`
	SelectedAddons   []string          `json:"selectedAddons"`
	Email            string            `json:"email"`
	MobileNumber     string            `json:"mobileNumber"`
	Metadata         map[string]string `json:"metadata"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// SubmitRecordRequest carries the form payload with tier/add-on labels
// already resolved to display strings and the total pre-computed by the
// caller.
type SubmitRecordRequest struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	SubscriptionTier string   `json:"subscriptionTier"`
	AddOns           []string `json:"addOns"`
	MobileNumber     string   `json:"mobileNumber"`
	CompanyName      string   `json:"companyName"`
	CompanyWebsite   string   `json:"companyWebsite"`
	HearAboutUs      string   `json:"hearAboutUs"`
	Total            int      `json:"total"`
}

type UpdatePaymentStatusRequest struct {
	RecordID      string `json:"recordId"`
	PaymentStatus string `json:"paymentStatus"`
	SessionID     string `json:"sessionId"`
}

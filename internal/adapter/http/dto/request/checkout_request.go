package request

import "strings"

// CheckoutRequest is the body of POST /v1/invoices/:invoice_token/checkout.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	RequestID     string `json:"request_id"`
}

// ResolveRequestID prefers the body field over the S-PAYWAY-REQUEST-ID header.
func (r CheckoutRequest) ResolveRequestID(header string) string {
	if v := strings.TrimSpace(r.RequestID); v != "" {
		return v
	}
	return strings.TrimSpace(header)
}

// PayRequest is the optional body of POST /v1/invoices/:invoice_token/pay.
type PayRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ResolvePaymentMethod falls back to the configured preferred method.
func (r PayRequest) ResolvePaymentMethod(preferred string) string {
	if v := strings.TrimSpace(r.PaymentMethod); v != "" {
		return v
	}
	return strings.TrimSpace(preferred)
}

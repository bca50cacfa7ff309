package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRecord is the local trace of a checkout session created on the gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_token-index): invoice_token
//
// RawPayload keeps the gateway "data" object as received, for audit.
type CheckoutRecord struct {
	ID            string          `json:"id"`
	InvoiceToken  string          `json:"invoice_token"`
	RequestID     string          `json:"request_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	ReceiverName  string          `json:"receiver_name"`
	RemarkCode    string          `json:"remark_code"`
	CreatedAt     time.Time       `json:"created_at"`

	RawPayload json.RawMessage `json:"raw_payload,omitempty"`
}

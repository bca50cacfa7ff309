package entities

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InvoiceStatusPaid is the only status value the payment flow branches on.
//
// Status is otherwise opaque: the gateway does not publish its full set of values,
// so Invoice.Status is kept as a plain string and never validated locally.
const InvoiceStatusPaid = "Paid"

// Invoice is the subset of the gateway "status" payload the service relies on.
type Invoice struct {
	ID       GatewayID       `json:"id"`
	Status   string          `json:"status"`
	Total    decimal.Decimal `json:"total"`
	Customer InvoiceCustomer `json:"customer"`
	Goods    InvoiceGoods    `json:"goods"`
}

type InvoiceCustomer struct {
	FullName string `json:"full_name"`
}

type InvoiceGoods struct {
	Name string `json:"name"`
}

// IsPaid compares against the literal "Paid" (case-sensitive).
func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// GatewayID accepts identifiers the gateway sends either as JSON strings or numbers.
type GatewayID string

func (id *GatewayID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = GatewayID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = GatewayID(n.String())
	return nil
}

package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:       "42",
		Status:   "Paid",
		Total:    decimal.RequireFromString("19.99"),
		Customer: entities.InvoiceCustomer{FullName: "Jane Doe"},
		Goods:    entities.InvoiceGoods{Name: "VIP plan"},
	}

	res := FromInvoice("inv-1", inv)
	if res.ID != "42" || res.InvoiceToken != "inv-1" || !res.Paid {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.CustomerName != "Jane Doe" || res.GoodsName != "VIP plan" {
		t.Fatalf("unexpected nested fields: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"total":"19.99"`) {
		t.Fatalf("expected total as decimal string, got %s", b)
	}
}

func TestFromPaymentFlowResult(t *testing.T) {
	now := time.Now().UTC()
	checkout := usecase.CheckoutResult{
		Record: entities.CheckoutRecord{ID: "chk-1", RequestID: "req-1", PaymentMethod: "binance_c2c_usdt", CreatedAt: now},
		Session: entities.PaymentSession{
			Amount:        decimal.RequireFromString("10"),
			ProcessingFee: decimal.RequireFromString("0.1"),
			QRCodeBase64:  "data:image/png;base64,AAAA",
		},
	}

	res := FromPaymentFlowResult("inv-1", usecase.PaymentFlowResult{
		Invoice:  entities.Invoice{Status: "Unpaid"},
		Methods:  []string{"binance_c2c_usdt"},
		Checkout: &checkout,
	})
	if res.AlreadyPaid || res.Payment == nil {
		t.Fatalf("expected payment session, got %+v", res)
	}
	if res.Payment.CheckoutID != "chk-1" || res.Payment.QRCodeBase64 == "" || !res.Payment.CreatedAt.Equal(now) {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}

	paid := FromPaymentFlowResult("inv-1", usecase.PaymentFlowResult{Invoice: entities.Invoice{Status: "Paid"}, AlreadyPaid: true})
	if !paid.AlreadyPaid || paid.Payment != nil {
		t.Fatalf("unexpected paid response: %+v", paid)
	}
}

func TestFromCheckoutRecords(t *testing.T) {
	out := FromCheckoutRecords(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	out = FromCheckoutRecords([]entities.CheckoutRecord{{ID: "a", RawPayload: []byte(`{}`)}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected records: %+v", out)
	}
}

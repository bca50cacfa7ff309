package response

import (
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

type PaymentMethodsResponse struct {
	PaymentMethods []string `json:"payment_methods"`
}

type InvoiceResponse struct {
	ID           string          `json:"id"`
	InvoiceToken string          `json:"invoice_token"`
	Status       string          `json:"status"`
	Paid         bool            `json:"paid"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customer_name"`
	GoodsName    string          `json:"goods_name"`
}

type PaymentSessionResponse struct {
	CheckoutID    string          `json:"checkout_id"`
	RequestID     string          `json:"request_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	ReceiverName  string          `json:"receiver_name"`
	RemarkCode    string          `json:"remark_code"`
	QRCodeBase64  string          `json:"qrcode_base64,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CheckoutRecordResponse struct {
	ID            string          `json:"id"`
	InvoiceToken  string          `json:"invoice_token"`
	RequestID     string          `json:"request_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	ReceiverName  string          `json:"receiver_name"`
	RemarkCode    string          `json:"remark_code"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentFlowResponse struct {
	Invoice        InvoiceResponse         `json:"invoice"`
	PaymentMethods []string                `json:"payment_methods"`
	AlreadyPaid    bool                    `json:"already_paid"`
	Payment        *PaymentSessionResponse `json:"payment,omitempty"`
}

func FromInvoice(invoiceToken string, inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           string(inv.ID),
		InvoiceToken: invoiceToken,
		Status:       inv.Status,
		Paid:         inv.IsPaid(),
		Total:        inv.Total,
		CustomerName: inv.Customer.FullName,
		GoodsName:    inv.Goods.Name,
	}
}

func FromCheckoutResult(res usecase.CheckoutResult) PaymentSessionResponse {
	return PaymentSessionResponse{
		CheckoutID:    res.Record.ID,
		RequestID:     res.Record.RequestID,
		PaymentMethod: res.Record.PaymentMethod,
		Amount:        res.Session.Amount,
		ProcessingFee: res.Session.ProcessingFee,
		ReceiverName:  res.Session.ReceiverName,
		RemarkCode:    res.Session.RemarkCode,
		QRCodeBase64:  res.Session.QRCodeBase64,
		CreatedAt:     res.Record.CreatedAt,
	}
}

func FromCheckoutRecord(r entities.CheckoutRecord) CheckoutRecordResponse {
	return CheckoutRecordResponse{
		ID:            r.ID,
		InvoiceToken:  r.InvoiceToken,
		RequestID:     r.RequestID,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		ProcessingFee: r.ProcessingFee,
		ReceiverName:  r.ReceiverName,
		RemarkCode:    r.RemarkCode,
		CreatedAt:     r.CreatedAt,
	}
}

func FromCheckoutRecords(records []entities.CheckoutRecord) []CheckoutRecordResponse {
	out := make([]CheckoutRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromCheckoutRecord(r))
	}
	return out
}

func FromPaymentFlowResult(invoiceToken string, res usecase.PaymentFlowResult) PaymentFlowResponse {
	out := PaymentFlowResponse{
		Invoice:        FromInvoice(invoiceToken, res.Invoice),
		PaymentMethods: res.Methods,
		AlreadyPaid:    res.AlreadyPaid,
	}
	if res.Checkout != nil {
		session := FromCheckoutResult(*res.Checkout)
		out.Payment = &session
	}
	return out
}

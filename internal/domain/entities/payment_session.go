package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentSession is the server-issued payment instruction returned by "checkout".
//
// QRCodeBase64 is passed through untouched; it is usually a data URI ready to be
// embedded by a presentation layer.
type PaymentSession struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessingFee decimal.Decimal `json:"processingFee"`
	ReceiverName  string          `json:"receiver_name"`
	RemarkCode    string          `json:"remark_code"`
	QRCodeBase64  string          `json:"qrcode_base64"`

	// Raw is the gateway "data" object as received.
	Raw json.RawMessage `json:"-"`
}

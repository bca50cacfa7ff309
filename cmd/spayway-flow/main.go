// Command spayway-flow runs the S-PayWay payment flow for one invoice and prints the
// invoice and payment session.
//
//	SPAYWAY_ACCESS_TOKEN=... spayway-flow -invoice fc22ccf6-... [-method binance_c2c_usdt] [-timeout 30s]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/infrastructure/cache"
	"spayway_checkout/internal/infrastructure/config"
	"spayway_checkout/internal/infrastructure/events"
	"spayway_checkout/internal/infrastructure/payments"
	"spayway_checkout/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

var errMissingInvoice = errors.New("-invoice is required")

func main() {
	if err := run(context.Background(), os.Args[1:], config.Load().SPayWay, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg config.SPayWayConfig, out io.Writer) error {
	fs := flag.NewFlagSet("spayway-flow", flag.ContinueOnError)
	fs.SetOutput(out)
	invoice := fs.String("invoice", "", "invoice token (must belong to the merchant)")
	method := fs.String("method", cfg.PreferredMethod, "preferred payment method")
	timeout := fs.Duration("timeout", cfg.Timeout, "per-call timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *invoice == "" {
		return errMissingInvoice
	}
	cfg.Timeout = *timeout

	gateway, err := payments.NewSPayWayGateway(cfg, config.BreakerConfig{})
	if err != nil {
		return err
	}
	uc := usecase.NewPaymentFlowUseCase(gateway, discardRepository{}, cache.NoopStore{}, events.NoopPublisher{})

	fmt.Fprintf(out, "=== S-PayWay Payment Flow ===\n\n")
	res, err := uc.CompletePaymentFlow(ctx, *invoice, *method)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Payment methods: %v\n\n", res.Methods)
	printInvoice(out, res.Invoice)
	if res.AlreadyPaid {
		fmt.Fprintf(out, "\nInvoice already paid!\n")
		return nil
	}
	printSession(out, res.Checkout.Session)
	fmt.Fprintf(out, "\nPayment session created successfully! request_id=%s\n", res.Checkout.Record.RequestID)
	return nil
}

func printInvoice(out io.Writer, inv entities.Invoice) {
	fmt.Fprintf(out, "Invoice Details:\n")
	fmt.Fprintf(out, "  ID: %s\n", inv.ID)
	fmt.Fprintf(out, "  Status: %s\n", inv.Status)
	fmt.Fprintf(out, "  Amount: $%s\n", inv.Total)
	fmt.Fprintf(out, "  Customer: %s\n", inv.Customer.FullName)
	fmt.Fprintf(out, "  Product: %s\n", inv.Goods.Name)
}

func printSession(out io.Writer, s entities.PaymentSession) {
	fmt.Fprintf(out, "\nPayment Information:\n")
	fmt.Fprintf(out, "  Method: %s\n", s.PaymentMethod)
	fmt.Fprintf(out, "  Amount: $%s\n", s.Amount)
	fmt.Fprintf(out, "  Fee: $%s\n", s.ProcessingFee)
	fmt.Fprintf(out, "  Receiver: %s\n", s.ReceiverName)
	fmt.Fprintf(out, "  Remark: %s\n", s.RemarkCode)
	fmt.Fprintf(out, "  QR code: %d bytes (data URI)\n", len(s.QRCodeBase64))
}

// discardRepository keeps nothing; the CLI has no persistence.
type discardRepository struct{}

func (discardRepository) Create(_ context.Context, r entities.CheckoutRecord) (entities.CheckoutRecord, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r, nil
}

func (discardRepository) GetByID(context.Context, string) (entities.CheckoutRecord, error) {
	return entities.CheckoutRecord{}, nil
}

func (discardRepository) ListByInvoiceToken(context.Context, string) ([]entities.CheckoutRecord, error) {
	return nil, nil
}

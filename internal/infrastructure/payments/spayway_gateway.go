package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/infrastructure/config"
	"spayway_checkout/internal/infrastructure/metrics"
	"spayway_checkout/internal/infrastructure/spayway"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

var ErrMissingSPayWayAccessToken = fmt.Errorf("missing SPAYWAY_ACCESS_TOKEN: %w", spayway.ErrConfig)

// ErrGatewayUnavailable is returned without calling S-PayWay while the breaker is open.
var ErrGatewayUnavailable = errors.New("spayway gateway unavailable")

const defaultMaxConsecutiveFailures = 5

// SPayWayGateway guards an S-PayWay client with a circuit breaker and records call
// metrics.
//
// Only transient faults (transport, malformed responses) count against the breaker.
// An ApiError means the gateway is up and answered "no", so it never trips it.
// Calls are never retried here.
type SPayWayGateway struct {
	client   interfaces.IPaymentGateway
	breaker  *gobreaker.CircuitBreaker
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*SPayWayGateway)(nil)

func NewSPayWayGateway(cfg config.SPayWayConfig, breakerCfg config.BreakerConfig) (*SPayWayGateway, error) {
	if cfg.MockMode {
		log.Printf("[spayway][gateway] mock mode enabled")
		return &SPayWayGateway{mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[spayway][gateway] missing SPAYWAY_ACCESS_TOKEN")
		return nil, ErrMissingSPayWayAccessToken
	}

	opts := []spayway.Option{spayway.WithTimeout(cfg.Timeout)}
	if cfg.BaseURL != "" {
		opts = append(opts, spayway.WithBaseURL(cfg.BaseURL))
	}
	client, err := spayway.NewClient(cfg.AccessToken, opts...)
	if err != nil {
		log.Printf("[spayway][gateway] failed creating client err=%v", err)
		return nil, err
	}
	log.Printf("[spayway][gateway] S-PayWay client initialized timeout=%s", client.Timeout())

	return NewResilientGateway(client, breakerCfg), nil
}

// NewResilientGateway wraps any gateway implementation with the breaker.
func NewResilientGateway(client interfaces.IPaymentGateway, breakerCfg config.BreakerConfig) *SPayWayGateway {
	maxFailures := breakerCfg.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxConsecutiveFailures
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "spayway",
		MaxRequests: 1,
		Timeout:     breakerCfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: countsAsHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[spayway][gateway] breaker state change name=%s from=%s to=%s", name, from, to)
		},
	})

	return &SPayWayGateway{client: client, breaker: cb}
}

func (g *SPayWayGateway) ListPaymentMethods(ctx context.Context, requestID string) ([]string, error) {
	if g.mockMode {
		log.Printf("[spayway][gateway] mock list payment methods")
		return []string{config.DefaultPreferredMethod, "bank_transfer"}, nil
	}

	out, err := g.execute(spayway.ActionPaymentMethod, func() (any, error) {
		return g.client.ListPaymentMethods(ctx, requestID)
	})
	if err != nil {
		log.Printf("[spayway][gateway] list payment methods failed request_id=%s err=%v", requestID, err)
		return nil, err
	}
	return out.([]string), nil
}

func (g *SPayWayGateway) GetInvoiceStatus(ctx context.Context, invoiceToken, requestID string) (entities.Invoice, error) {
	if g.mockMode {
		log.Printf("[spayway][gateway] mock invoice status invoice_token=%s", invoiceToken)
		return mockInvoice(invoiceToken), nil
	}

	out, err := g.execute(spayway.ActionStatus, func() (any, error) {
		return g.client.GetInvoiceStatus(ctx, invoiceToken, requestID)
	})
	if err != nil {
		log.Printf("[spayway][gateway] invoice status failed invoice_token=%s request_id=%s err=%v", invoiceToken, requestID, err)
		return entities.Invoice{}, err
	}
	return out.(entities.Invoice), nil
}

func (g *SPayWayGateway) Checkout(ctx context.Context, invoiceToken, paymentMethod, requestID string) (entities.PaymentSession, error) {
	if g.mockMode {
		log.Printf("[spayway][gateway] mock checkout invoice_token=%s payment_method=%s", invoiceToken, paymentMethod)
		return mockSession(paymentMethod), nil
	}

	log.Printf("[spayway][gateway] checkout start invoice_token=%s payment_method=%s request_id=%s", invoiceToken, paymentMethod, requestID)
	out, err := g.execute(spayway.ActionCheckout, func() (any, error) {
		return g.client.Checkout(ctx, invoiceToken, paymentMethod, requestID)
	})
	if err != nil {
		log.Printf("[spayway][gateway] checkout failed invoice_token=%s request_id=%s err=%v", invoiceToken, requestID, err)
		return entities.PaymentSession{}, err
	}
	session := out.(entities.PaymentSession)
	log.Printf("[spayway][gateway] checkout success invoice_token=%s amount=%s fee=%s", invoiceToken, session.Amount, session.ProcessingFee)
	return session, nil
}

func (g *SPayWayGateway) execute(action spayway.Action, fn func() (any, error)) (any, error) {
	start := time.Now()
	out, err := g.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	metrics.ObserveGatewayCall(string(action), outcomeOf(err), time.Since(start).Seconds())
	return out, err
}

func countsAsHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return !spayway.IsRetryable(err)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrGatewayUnavailable):
		return metrics.OutcomeCircuitOpen
	case errors.Is(err, spayway.ErrAPI):
		return metrics.OutcomeAPIError
	case errors.Is(err, spayway.ErrTransport):
		return metrics.OutcomeTransportError
	case errors.Is(err, spayway.ErrResponseFormat):
		return metrics.OutcomeFormatError
	default:
		return metrics.OutcomeOther
	}
}

func mockInvoice(invoiceToken string) entities.Invoice {
	return entities.Invoice{
		ID:       entities.GatewayID(invoiceToken),
		Status:   "Unpaid",
		Total:    decimal.RequireFromString("10.00"),
		Customer: entities.InvoiceCustomer{FullName: "Mock Customer"},
		Goods:    entities.InvoiceGoods{Name: "Mock Goods"},
	}
}

func mockSession(paymentMethod string) entities.PaymentSession {
	return entities.PaymentSession{
		PaymentMethod: paymentMethod,
		Amount:        decimal.RequireFromString("10.00"),
		ProcessingFee: decimal.RequireFromString("0.10"),
		ReceiverName:  "Mock Receiver",
		RemarkCode:    fmt.Sprintf("MOCK-%d", time.Now().UTC().UnixNano()),
		QRCodeBase64:  "data:image/png;base64,",
	}
}

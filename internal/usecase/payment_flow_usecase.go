package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/infrastructure/payments"
	"spayway_checkout/internal/infrastructure/spayway"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoiceToken     = errors.New("invalid invoice_token")
	ErrInvalidPaymentMethod    = errors.New("invalid payment_method")
	ErrDuplicateRequest        = errors.New("duplicate request id")
	ErrNoPaymentMethods        = errors.New("no payment methods available")
	ErrPaymentMethodNotOffered = errors.New("payment method not offered")
	ErrInvalidCheckoutID       = errors.New("invalid checkout id")
	ErrCheckoutNotFound        = errors.New("checkout not found")

	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotFound     = errors.New("payment gateway resource not found")
	ErrPaymentGatewayRejected     = errors.New("payment gateway rejected request")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrPaymentGatewayError        = errors.New("payment gateway error")
)

// CheckoutResult pairs the persisted record with the session returned by the gateway.
// The QR code is only in Session; it is not stored.
type CheckoutResult struct {
	Record  entities.CheckoutRecord
	Session entities.PaymentSession
}

// PaymentFlowResult is the outcome of CompletePaymentFlow. Checkout is nil when the
// invoice was already paid.
type PaymentFlowResult struct {
	Invoice       entities.Invoice
	Methods       []string
	AlreadyPaid   bool
	PaymentMethod string
	Checkout      *CheckoutResult
}

// IPaymentFlowUseCase drives the S-PayWay payment flow.
//
// Flow:
//   - list the merchant's payment methods
//   - fetch the invoice; stop if already paid
//   - open a checkout session with the chosen method
type IPaymentFlowUseCase interface {
	ListPaymentMethods(ctx context.Context) ([]string, error)
	GetInvoice(ctx context.Context, invoiceToken string) (entities.Invoice, error)
	CreateCheckout(ctx context.Context, invoiceToken, paymentMethod, requestID string) (CheckoutResult, error)
	CompletePaymentFlow(ctx context.Context, invoiceToken, preferredMethod string) (PaymentFlowResult, error)
	ListCheckouts(ctx context.Context, invoiceToken string) ([]entities.CheckoutRecord, error)
	GetCheckout(ctx context.Context, checkoutID string) (entities.CheckoutRecord, error)
}

type PaymentFlowUseCase struct {
	gateway   interfaces.IPaymentGateway
	repo      interfaces.ICheckoutRepository
	store     interfaces.IIdempotencyStore
	publisher interfaces.ICheckoutEventPublisher
	now       func() time.Time
}

var _ IPaymentFlowUseCase = (*PaymentFlowUseCase)(nil)

func NewPaymentFlowUseCase(gateway interfaces.IPaymentGateway, repo interfaces.ICheckoutRepository, store interfaces.IIdempotencyStore, publisher interfaces.ICheckoutEventPublisher) *PaymentFlowUseCase {
	return &PaymentFlowUseCase{
		gateway:   gateway,
		repo:      repo,
		store:     store,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentFlowUseCase) ListPaymentMethods(ctx context.Context) ([]string, error) {
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	methods, err := u.gateway.ListPaymentMethods(ctx, "")
	if err != nil {
		log.Printf("[spayway][usecase] list payment methods failed err=%v", err)
		return nil, mapGatewayError(err)
	}
	log.Printf("[spayway][usecase] payment methods loaded count=%d", len(methods))
	return methods, nil
}

func (u *PaymentFlowUseCase) GetInvoice(ctx context.Context, invoiceToken string) (entities.Invoice, error) {
	invoiceToken = strings.TrimSpace(invoiceToken)
	if invoiceToken == "" {
		log.Printf("[spayway][usecase] invalid invoice_token (empty)")
		return entities.Invoice{}, ErrInvalidInvoiceToken
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	inv, err := u.gateway.GetInvoiceStatus(ctx, invoiceToken, "")
	if err != nil {
		log.Printf("[spayway][usecase] invoice status failed invoice_token=%s err=%v", invoiceToken, err)
		return entities.Invoice{}, mapGatewayError(err)
	}
	log.Printf("[spayway][usecase] invoice loaded invoice_token=%s id=%s status=%s total=%s", invoiceToken, inv.ID, inv.Status, inv.Total)
	return inv, nil
}

// CreateCheckout opens a payment session. An empty requestID gets a generated one.
// Reusing a request id that is in progress or completed yields ErrDuplicateRequest.
func (u *PaymentFlowUseCase) CreateCheckout(ctx context.Context, invoiceToken, paymentMethod, requestID string) (CheckoutResult, error) {
	invoiceToken = strings.TrimSpace(invoiceToken)
	paymentMethod = strings.TrimSpace(paymentMethod)
	requestID = strings.TrimSpace(requestID)
	log.Printf("[spayway][usecase] checkout start invoice_token=%q payment_method=%q request_id=%q", invoiceToken, paymentMethod, requestID)

	if invoiceToken == "" {
		return CheckoutResult{}, ErrInvalidInvoiceToken
	}
	if paymentMethod == "" {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return CheckoutResult{}, errors.New("checkout repository not configured")
	}
	if requestID == "" {
		requestID = spayway.GenerateRequestID()
	}

	if u.store != nil {
		duplicate, err := u.store.CheckOrSetInProgress(ctx, requestID)
		if err != nil {
			log.Printf("[spayway][usecase] idempotency check failed request_id=%s err=%v", requestID, err)
			return CheckoutResult{}, err
		}
		if duplicate {
			log.Printf("[spayway][usecase] duplicate request request_id=%s", requestID)
			return CheckoutResult{}, ErrDuplicateRequest
		}
	}

	session, err := u.gateway.Checkout(ctx, invoiceToken, paymentMethod, requestID)
	if err != nil {
		log.Printf("[spayway][usecase] gateway checkout failed invoice_token=%s request_id=%s err=%v", invoiceToken, requestID, err)
		u.release(ctx, requestID)
		return CheckoutResult{}, mapGatewayError(err)
	}

	rec := entities.CheckoutRecord{
		ID:            uuid.NewString(),
		InvoiceToken:  invoiceToken,
		RequestID:     requestID,
		PaymentMethod: session.PaymentMethod,
		Amount:        session.Amount,
		ProcessingFee: session.ProcessingFee,
		ReceiverName:  session.ReceiverName,
		RemarkCode:    session.RemarkCode,
		CreatedAt:     u.now(),
		RawPayload:    session.Raw,
	}
	if rec.PaymentMethod == "" {
		rec.PaymentMethod = paymentMethod
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[spayway][usecase] checkout repository create failed invoice_token=%s checkout_id=%s err=%v", invoiceToken, rec.ID, err)
		u.release(ctx, requestID)
		return CheckoutResult{}, err
	}

	if u.publisher != nil {
		if err := u.publisher.PublishCheckoutCreated(ctx, created); err != nil {
			log.Printf("[spayway][usecase] publish checkout event failed checkout_id=%s err=%v", created.ID, err)
		}
	}
	if u.store != nil {
		if err := u.store.SetCompleted(ctx, requestID); err != nil {
			log.Printf("[spayway][usecase] mark request completed failed request_id=%s err=%v", requestID, err)
		}
	}

	log.Printf("[spayway][usecase] checkout success invoice_token=%s checkout_id=%s amount=%s fee=%s", invoiceToken, created.ID, created.Amount, created.ProcessingFee)
	return CheckoutResult{Record: created, Session: session}, nil
}

// CompletePaymentFlow runs the full flow for one invoice. preferredMethod is used when
// offered; an empty preferredMethod picks the first offered method.
func (u *PaymentFlowUseCase) CompletePaymentFlow(ctx context.Context, invoiceToken, preferredMethod string) (PaymentFlowResult, error) {
	invoiceToken = strings.TrimSpace(invoiceToken)
	preferredMethod = strings.TrimSpace(preferredMethod)
	if invoiceToken == "" {
		return PaymentFlowResult{}, ErrInvalidInvoiceToken
	}
	log.Printf("[spayway][usecase] payment flow start invoice_token=%s preferred_method=%q", invoiceToken, preferredMethod)

	methods, err := u.ListPaymentMethods(ctx)
	if err != nil {
		return PaymentFlowResult{}, err
	}
	if len(methods) == 0 {
		log.Printf("[spayway][usecase] no payment methods available")
		return PaymentFlowResult{}, ErrNoPaymentMethods
	}

	inv, err := u.GetInvoice(ctx, invoiceToken)
	if err != nil {
		return PaymentFlowResult{}, err
	}
	result := PaymentFlowResult{Invoice: inv, Methods: methods}
	if inv.IsPaid() {
		log.Printf("[spayway][usecase] invoice already paid invoice_token=%s", invoiceToken)
		result.AlreadyPaid = true
		return result, nil
	}

	method, err := selectPaymentMethod(methods, preferredMethod)
	if err != nil {
		log.Printf("[spayway][usecase] preferred method not offered invoice_token=%s preferred_method=%s offered=%v", invoiceToken, preferredMethod, methods)
		return PaymentFlowResult{}, err
	}
	result.PaymentMethod = method

	checkout, err := u.CreateCheckout(ctx, invoiceToken, method, "")
	if err != nil {
		return PaymentFlowResult{}, err
	}
	result.Checkout = &checkout

	log.Printf("[spayway][usecase] payment flow success invoice_token=%s checkout_id=%s", invoiceToken, checkout.Record.ID)
	return result, nil
}

func (u *PaymentFlowUseCase) ListCheckouts(ctx context.Context, invoiceToken string) ([]entities.CheckoutRecord, error) {
	invoiceToken = strings.TrimSpace(invoiceToken)
	if invoiceToken == "" {
		return nil, ErrInvalidInvoiceToken
	}
	if u.repo == nil {
		return nil, errors.New("checkout repository not configured")
	}
	return u.repo.ListByInvoiceToken(ctx, invoiceToken)
}

// GetCheckout loads one stored checkout record. An unknown id is ErrCheckoutNotFound.
func (u *PaymentFlowUseCase) GetCheckout(ctx context.Context, checkoutID string) (entities.CheckoutRecord, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.CheckoutRecord{}, ErrInvalidCheckoutID
	}
	if u.repo == nil {
		return entities.CheckoutRecord{}, errors.New("checkout repository not configured")
	}
	rec, err := u.repo.GetByID(ctx, checkoutID)
	if err != nil {
		log.Printf("[spayway][usecase] get checkout failed checkout_id=%s err=%v", checkoutID, err)
		return entities.CheckoutRecord{}, err
	}
	if rec.ID == "" {
		return entities.CheckoutRecord{}, ErrCheckoutNotFound
	}
	return rec, nil
}

func (u *PaymentFlowUseCase) release(ctx context.Context, requestID string) {
	if u.store == nil {
		return
	}
	if err := u.store.Release(ctx, requestID); err != nil {
		log.Printf("[spayway][usecase] release request id failed request_id=%s err=%v", requestID, err)
	}
}

func selectPaymentMethod(offered []string, preferred string) (string, error) {
	if preferred == "" {
		return offered[0], nil
	}
	for _, m := range offered {
		if m == preferred {
			return m, nil
		}
	}
	return "", ErrPaymentMethodNotOffered
}

// mapGatewayError translates gateway failures into use-case sentinels. The gateway
// error stays in the chain so its message can still be shown.
func mapGatewayError(err error) error {
	if errors.Is(err, payments.ErrGatewayUnavailable) || spayway.IsRetryable(err) {
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	}

	gwErr, ok := spayway.AsError(err)
	if !ok || !errors.Is(err, spayway.ErrAPI) {
		return fmt.Errorf("%w: %w", ErrPaymentGatewayError, err)
	}

	switch gwErr.StatusCode {
	case 0:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayRejected, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayNotFound, err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	default:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayError, err)
	}
}

package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "spayway_checkout/internal/adapter/http/dto/request"
	response "spayway_checkout/internal/adapter/http/dto/response"
	"spayway_checkout/internal/infrastructure/spayway"
	"spayway_checkout/internal/usecase"
	"spayway_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentFlowHandler exposes the S-PayWay payment flow over HTTP.
type PaymentFlowHandler struct {
	usecase         usecase.IPaymentFlowUseCase
	preferredMethod string
}

func NewPaymentFlowHandler(uc usecase.IPaymentFlowUseCase, preferredMethod string) *PaymentFlowHandler {
	return &PaymentFlowHandler{usecase: uc, preferredMethod: preferredMethod}
}

// ListPaymentMethods godoc
// @Summary      List payment methods
// @Description  Payment methods enabled for the merchant on S-PayWay
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PaymentMethodsResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payment-methods [get]
func (h *PaymentFlowHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.usecase.ListPaymentMethods(c.Request.Context())
	if err != nil {
		log.Printf("[spayway][handler] list payment methods failed err=%v", err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	if methods == nil {
		methods = []string{}
	}
	c.JSON(http.StatusOK, response.PaymentMethodsResponse{PaymentMethods: methods})
}

// GetInvoice godoc
// @Summary      Invoice status
// @Tags         invoices
// @Produce      json
// @Param        invoice_token  path  string  true  "Invoice token"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_token} [get]
func (h *PaymentFlowHandler) GetInvoice(c *gin.Context) {
	token := c.Param("invoice_token")
	log.Printf("[spayway][handler] get invoice start invoice_token=%s", token)

	inv, err := h.usecase.GetInvoice(c.Request.Context(), token)
	if err != nil {
		log.Printf("[spayway][handler] get invoice failed invoice_token=%s err=%v", token, err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(token, inv))
}

// CreateCheckout godoc
// @Summary      Create checkout session
// @Description  Opens a payment session. A request id in the body or S-PAYWAY-REQUEST-ID header makes the call idempotent.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_token        path    string                   true   "Invoice token"
// @Param        S-PAYWAY-REQUEST-ID  header  string                   false  "Idempotency key"
// @Param        body                 body    request.CheckoutRequest  true   "Checkout"
// @Success      201  {object}  response.PaymentSessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_token}/checkout [post]
func (h *PaymentFlowHandler) CreateCheckout(c *gin.Context) {
	token := c.Param("invoice_token")

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[spayway][handler] invalid checkout payload invoice_token=%s err=%v", token, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	requestID := req.ResolveRequestID(c.GetHeader(spayway.HeaderRequestID))
	log.Printf("[spayway][handler] checkout start invoice_token=%s payment_method=%s request_id=%s", token, req.PaymentMethod, requestID)

	res, err := h.usecase.CreateCheckout(c.Request.Context(), token, req.PaymentMethod, requestID)
	if err != nil {
		log.Printf("[spayway][handler] checkout failed invoice_token=%s err=%v", token, err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	log.Printf("[spayway][handler] checkout success invoice_token=%s checkout_id=%s", token, res.Record.ID)

	c.JSON(http.StatusCreated, response.FromCheckoutResult(res))
}

// Pay godoc
// @Summary      Complete payment flow
// @Description  Lists methods, checks the invoice and opens a checkout unless it is already paid.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_token  path  string              true   "Invoice token"
// @Param        body           body  request.PayRequest  false  "Preferred method"
// @Success      200  {object}  response.PaymentFlowResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_token}/pay [post]
func (h *PaymentFlowHandler) Pay(c *gin.Context) {
	token := c.Param("invoice_token")

	var req request.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[spayway][handler] invalid pay payload invoice_token=%s err=%v", token, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	method := req.ResolvePaymentMethod(h.preferredMethod)

	res, err := h.usecase.CompletePaymentFlow(c.Request.Context(), token, method)
	if err != nil {
		log.Printf("[spayway][handler] payment flow failed invoice_token=%s err=%v", token, err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	log.Printf("[spayway][handler] payment flow done invoice_token=%s already_paid=%t", token, res.AlreadyPaid)

	c.JSON(http.StatusOK, response.FromPaymentFlowResult(token, res))
}

// ListCheckouts godoc
// @Summary      Checkouts of an invoice
// @Tags         invoices
// @Produce      json
// @Param        invoice_token  path  string  true  "Invoice token"
// @Success      200  {array}   response.CheckoutRecordResponse
// @Router       /invoices/{invoice_token}/checkouts [get]
func (h *PaymentFlowHandler) ListCheckouts(c *gin.Context) {
	token := c.Param("invoice_token")

	records, err := h.usecase.ListCheckouts(c.Request.Context(), token)
	if err != nil {
		log.Printf("[spayway][handler] list checkouts failed invoice_token=%s err=%v", token, err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutRecords(records))
}

// GetCheckout godoc
// @Summary      Checkout record
// @Tags         checkouts
// @Produce      json
// @Param        checkout_id  path  string  true  "Checkout id"
// @Success      200  {object}  response.CheckoutRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkouts/{checkout_id} [get]
func (h *PaymentFlowHandler) GetCheckout(c *gin.Context) {
	id := c.Param("checkout_id")

	rec, err := h.usecase.GetCheckout(c.Request.Context(), id)
	if err != nil {
		log.Printf("[spayway][handler] get checkout failed checkout_id=%s err=%v", id, err)
		writeError(c, mapPaymentFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutRecord(rec))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentFlowError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceToken), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidCheckoutID):
		appErr = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		appErr = pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateRequest):
		appErr = pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "Request id already used", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentMethods):
		appErr = pkg.NewDomainErrorSimple("NO_PAYMENT_METHODS", "No payment methods available", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentMethodNotOffered):
		appErr = pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_OFFERED", "Payment method not offered", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		appErr = pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		appErr = pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		appErr = pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		appErr = pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayError):
		appErr = pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider error", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	// API errors carry the gateway's own message, which is safe to show.
	if gwErr, ok := spayway.AsError(err); ok && errors.Is(err, spayway.ErrAPI) {
		appErr.WithDetails(gwErr.Message)
	}
	return appErr
}

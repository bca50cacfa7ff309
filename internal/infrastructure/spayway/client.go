// Package spayway is a client for the S-PayWay checkout API.
//
// The API exposes three actions behind one endpoint, selected with the "action"
// query parameter:
//   - payment_method: list the payment methods enabled for the merchant
//   - status:         fetch an invoice by token
//   - checkout:       open a payment session for an invoice and method
//
// Every call is a single authenticated HTTPS round trip. The client never retries;
// callers that retry should reuse the request id so the gateway can deduplicate.
package spayway

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/usecase/interfaces"
)

const (
	DefaultBaseURL = "https://api.s-payway.com/v3/checkout/"
	DefaultTimeout = 30 * time.Second
	UserAgent      = "S-PayWay-Client/3.0"

	HeaderAccessToken = "S-PAYWAY-ACCESS-TOKEN"
	HeaderRequestID   = "S-PAYWAY-REQUEST-ID"

	maxResponseBytes = 10 << 20
)

// Action names the remote operation.
type Action string

const (
	ActionPaymentMethod Action = "payment_method"
	ActionStatus        Action = "status"
	ActionCheckout      Action = "checkout"
)

// Param is one query parameter. Params are sent in the order given.
type Param struct {
	Key   string
	Value string
}

// Request describes a raw gateway call. Method defaults to GET; with POST the
// params are sent as a JSON object body instead of the query string.
type Request struct {
	Method    string
	Action    Action
	Params    []Param
	RequestID string
}

// Option customizes a Client at construction.
type Option func(*Client) error

// WithBaseURL points the client at another gateway host (sandbox, staging).
// Only https URLs are accepted.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return configError("invalid base url: " + err.Error())
		}
		if u.Scheme != "https" || u.Host == "" {
			return configError("base url must be an absolute https url")
		}
		if u.RawQuery != "" {
			return configError("base url must not carry a query string")
		}
		c.baseURL = raw
		return nil
	}
}

// WithRootCAs trusts the given pool instead of the system roots. Certificate and
// hostname verification stay enabled.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(c *Client) error {
		if pool == nil {
			return configError("root CA pool is nil")
		}
		c.rootCAs = pool
		return nil
	}
}

// WithTimeout sets the initial per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.SetTimeout(d)
		return nil
	}
}

// Client calls the S-PayWay API with a merchant access token.
//
// It is safe for concurrent use. LastResponse reflects the most recently completed
// call that produced a decodable body.
type Client struct {
	baseURL     string
	accessToken string
	rootCAs     *x509.CertPool
	httpClient  *http.Client

	mu           sync.Mutex
	timeout      time.Duration
	lastResponse *Envelope
}

var _ interfaces.IPaymentGateway = (*Client)(nil)

// NewClient builds a client for the merchant owning accessToken.
// An empty token is rejected with ErrConfig.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, configError("access token is required")
	}

	c := &Client{
		baseURL:     DefaultBaseURL,
		accessToken: accessToken,
		timeout:     DefaultTimeout,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    c.rootCAs,
	}
	c.httpClient = &http.Client{Transport: transport}

	return c, nil
}

// SetTimeout changes the timeout applied to subsequent calls. Calls already in
// flight keep the timeout they started with. Non-positive values restore DefaultTimeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	c.mu.Lock()
	c.timeout = d
	c.mu.Unlock()
}

func (c *Client) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// LastResponse returns the last decoded envelope, or nil if no call has produced one.
func (c *Client) LastResponse() *Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResponse
}

// GenerateRequestID is a convenience alias for the package-level GenerateRequestID.
func (c *Client) GenerateRequestID() string {
	return GenerateRequestID()
}

// ListPaymentMethods returns the payment method identifiers enabled for the merchant.
func (c *Client) ListPaymentMethods(ctx context.Context, requestID string) ([]string, error) {
	env, err := c.Do(ctx, Request{Action: ActionPaymentMethod, RequestID: requestID})
	if err != nil {
		return nil, err
	}

	var methods []string
	if err := env.DecodeData(&methods); err != nil {
		return nil, formatError(fmt.Errorf("decode payment methods: %w", err))
	}
	return methods, nil
}

// GetInvoiceStatus fetches an invoice. The token must belong to the merchant owning
// the access token; the gateway rejects foreign tokens.
func (c *Client) GetInvoiceStatus(ctx context.Context, invoiceToken, requestID string) (entities.Invoice, error) {
	env, err := c.Do(ctx, Request{
		Action:    ActionStatus,
		Params:    []Param{{Key: "invoice_token", Value: invoiceToken}},
		RequestID: requestID,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	var inv entities.Invoice
	if err := env.DecodeData(&inv); err != nil {
		return entities.Invoice{}, formatError(fmt.Errorf("decode invoice: %w", err))
	}
	return inv, nil
}

// Checkout opens a payment session for the invoice. paymentMethod should be one of
// the identifiers returned by ListPaymentMethods; unknown values are rejected remotely.
func (c *Client) Checkout(ctx context.Context, invoiceToken, paymentMethod, requestID string) (entities.PaymentSession, error) {
	env, err := c.Do(ctx, Request{
		Action: ActionCheckout,
		Params: []Param{
			{Key: "invoice_token", Value: invoiceToken},
			{Key: "payment_method", Value: paymentMethod},
		},
		RequestID: requestID,
	})
	if err != nil {
		return entities.PaymentSession{}, err
	}

	var session entities.PaymentSession
	if err := env.DecodeData(&session); err != nil {
		return entities.PaymentSession{}, formatError(fmt.Errorf("decode payment session: %w", err))
	}
	session.Raw = env.Data()
	return session, nil
}

// Do performs one gateway call and validates the envelope. On success the full
// envelope is returned; any failure is an *Error.
func (c *Client) Do(ctx context.Context, r Request) (*Envelope, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, configError("unsupported method " + method)
	}
	if r.Action == "" {
		return nil, configError("action is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout())
	defer cancel()

	req, err := c.newRequest(ctx, method, r)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(err)
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, formatError(err)
	}
	c.setLastResponse(env)

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, env.messageOr(fallbackStatusMessage))
	}
	if !env.Success() {
		return nil, apiError(0, env.messageOr(fallbackFailureMessage))
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, method string, r Request) (*http.Request, error) {
	var body io.Reader
	target := c.buildURL(r.Action, nil)
	if method == http.MethodGet {
		target = c.buildURL(r.Action, r.Params)
	} else {
		payload, err := encodeJSONParams(r.Params)
		if err != nil {
			return nil, configError("encode params: " + err.Error())
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, configError("build request: " + err.Error())
	}

	// Set directly to keep the header names exactly as the gateway documents them.
	req.Header[HeaderAccessToken] = []string{c.accessToken}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if r.RequestID != "" {
		req.Header[HeaderRequestID] = []string{r.RequestID}
	}
	return req, nil
}

func (c *Client) buildURL(action Action, params []Param) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("?action=")
	b.WriteString(url.QueryEscape(string(action)))
	if len(params) > 0 {
		b.WriteByte('&')
		b.WriteString(encodeQuery(params))
	}
	return b.String()
}

func (c *Client) setLastResponse(env *Envelope) {
	c.mu.Lock()
	c.lastResponse = env
	c.mu.Unlock()
}

// encodeQuery is url.Values.Encode without the key sort.
func encodeQuery(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

func encodeJSONParams(params []Param) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package spayway

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

const testToken = "SAT_test_token"

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewTLSServer(h)
	t.Cleanup(srv.Close)

	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())

	c, err := NewClient(testToken, WithBaseURL(srv.URL+"/v3/checkout/"), WithRootCAs(pool))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, srv
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewClient_Validation(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		for _, tok := range []string{"", "   "} {
			_, err := NewClient(tok)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("token %q: expected ErrConfig, got %v", tok, err)
			}
		}
	})

	t.Run("plain http base url", func(t *testing.T) {
		_, err := NewClient(testToken, WithBaseURL("http://api.s-payway.com/v3/checkout/"))
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("expected ErrConfig, got %v", err)
		}
	})

	t.Run("base url with query", func(t *testing.T) {
		_, err := NewClient(testToken, WithBaseURL("https://api.s-payway.com/v3/checkout/?x=1"))
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("expected ErrConfig, got %v", err)
		}
	})

	t.Run("nil root CAs", func(t *testing.T) {
		_, err := NewClient(testToken, WithRootCAs(nil))
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("expected ErrConfig, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := NewClient(testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.baseURL != DefaultBaseURL {
			t.Fatalf("unexpected base url %s", c.baseURL)
		}
		if c.Timeout() != DefaultTimeout {
			t.Fatalf("expected default timeout, got %v", c.Timeout())
		}
		if c.LastResponse() != nil {
			t.Fatalf("expected no last response")
		}
	})
}

func TestClient_SetTimeout(t *testing.T) {
	c, err := NewClient(testToken, WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Timeout() != 5*time.Second {
		t.Fatalf("expected 5s, got %v", c.Timeout())
	}
	c.SetTimeout(0)
	if c.Timeout() != DefaultTimeout {
		t.Fatalf("expected default after non-positive timeout, got %v", c.Timeout())
	}
}

func TestClient_BuildURL(t *testing.T) {
	c, err := NewClient(testToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		action Action
		params []Param
		want   string
	}{
		{
			name:   "no params",
			action: ActionPaymentMethod,
			want:   DefaultBaseURL + "?action=payment_method",
		},
		{
			name:   "single param",
			action: ActionStatus,
			params: []Param{{Key: "invoice_token", Value: "fc22ccf6-2ed2-412a-80ff-d0fbb5f1684d"}},
			want:   DefaultBaseURL + "?action=status&invoice_token=fc22ccf6-2ed2-412a-80ff-d0fbb5f1684d",
		},
		{
			name:   "encoded and ordered",
			action: ActionCheckout,
			params: []Param{{Key: "invoice_token", Value: "a b&c=d"}, {Key: "payment_method", Value: "binance/usdt"}},
			want:   DefaultBaseURL + "?action=checkout&invoice_token=a+b%26c%3Dd&payment_method=binance%2Fusdt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.buildURL(tc.action, tc.params)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
			u, err := url.Parse(got)
			if err != nil {
				t.Fatalf("built url does not parse: %v", err)
			}
			actions := u.Query()["action"]
			if len(actions) != 1 || actions[0] != string(tc.action) {
				t.Fatalf("expected exactly one action=%s, got %v", tc.action, actions)
			}
			for _, p := range tc.params {
				if u.Query().Get(p.Key) != p.Value {
					t.Fatalf("param %s did not round-trip: %q", p.Key, u.Query().Get(p.Key))
				}
			}
		})
	}
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		respond(http.StatusOK, `{"success":true,"data":[]}`)(w, r)
	})

	if _, err := c.ListPaymentMethods(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get(HeaderAccessToken) != testToken {
		t.Fatalf("missing access token header: %v", got)
	}
	if got.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type %q", got.Get("Content-Type"))
	}
	if got.Get("User-Agent") != UserAgent {
		t.Fatalf("unexpected user agent %q", got.Get("User-Agent"))
	}
	if _, ok := got[http.CanonicalHeaderKey(HeaderRequestID)]; ok {
		t.Fatalf("request id header must be absent without an id")
	}

	if _, err := c.ListPaymentMethods(context.Background(), "abc_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get(HeaderRequestID) != "abc_1" {
		t.Fatalf("expected request id header, got %q", got.Get(HeaderRequestID))
	}
}

func TestClient_Do_Success(t *testing.T) {
	body := `{"success":true,"data":{"id":7,"status":"Unpaid"},"meta":{"v":3}}`
	c, _ := newTestClient(t, respond(http.StatusOK, body))

	env, err := c.Do(context.Background(), Request{Action: ActionStatus, Params: []Param{{Key: "invoice_token", Value: "inv-1"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(env.Raw()) != body {
		t.Fatalf("envelope must be returned unchanged, got %s", env.Raw())
	}
	if !env.Success() {
		t.Fatalf("expected success")
	}
	if c.LastResponse() != env {
		t.Fatalf("expected envelope cached as last response")
	}
	out, _ := json.Marshal(env)
	if string(out) != body {
		t.Fatalf("envelope must marshal back verbatim, got %s", out)
	}
}

func TestClient_Do_APIErrors(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
		wantError  string
	}{
		{name: "success false", status: 200, body: `{"success":false,"message":"bad token"}`, wantMsg: "bad token", wantError: "bad token"},
		{name: "success false without message", status: 200, body: `{"success":false}`, wantMsg: "Request failed", wantError: "Request failed"},
		{name: "success missing", status: 200, body: `{"data":{}}`, wantMsg: "Request failed", wantError: "Request failed"},
		{name: "success not boolean", status: 200, body: `{"success":"true","message":"nope"}`, wantMsg: "nope", wantError: "nope"},
		{name: "forbidden", status: 403, body: `{"message":"forbidden"}`, wantStatus: 403, wantMsg: "forbidden", wantError: "API Error (403): forbidden"},
		{name: "server error without message", status: 500, body: `{"success":false}`, wantStatus: 500, wantMsg: "Unknown error", wantError: "API Error (500): Unknown error"},
		{name: "non-200 ignores success flag", status: 404, body: `{"success":true,"message":"invoice not found"}`, wantStatus: 404, wantMsg: "invoice not found", wantError: "API Error (404): invoice not found"},
		{name: "non-string message", status: 200, body: `{"success":false,"message":{"code":1}}`, wantMsg: "Request failed", wantError: "Request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, respond(tc.status, tc.body))

			env, err := c.Do(context.Background(), Request{Action: ActionPaymentMethod})
			if env != nil {
				t.Fatalf("no envelope expected on error")
			}
			if !errors.Is(err, ErrAPI) {
				t.Fatalf("expected ErrAPI, got %v", err)
			}
			gwErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if gwErr.StatusCode != tc.wantStatus || gwErr.HasStatus() != (tc.wantStatus != 0) {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, gwErr.StatusCode)
			}
			if gwErr.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, gwErr.Message)
			}
			if err.Error() != tc.wantError {
				t.Fatalf("expected error %q, got %q", tc.wantError, err.Error())
			}
			if IsRetryable(err) {
				t.Fatalf("api errors are not retryable")
			}
			last := c.LastResponse()
			if last == nil || string(last.Raw()) != tc.body {
				t.Fatalf("decoded error envelope must be cached, got %v", last)
			}
		})
	}
}

func TestClient_Do_InvalidJSONKeepsPreviousResponse(t *testing.T) {
	okBody := `{"success":true,"data":["binance_c2c_usdt"]}`
	bodies := []string{okBody, `<html>502 Bad Gateway</html>`, ``, `null`, `["not","an","object"]`}
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := bodies[calls]
		calls++
		respond(http.StatusOK, body)(w, r)
	})

	if _, err := c.ListPaymentMethods(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := c.LastResponse()

	for i := 1; i < len(bodies); i++ {
		_, err := c.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, ErrResponseFormat) {
			t.Fatalf("body %q: expected ErrResponseFormat, got %v", bodies[i], err)
		}
		if !IsRetryable(err) {
			t.Fatalf("format errors are retryable")
		}
		if c.LastResponse() != first {
			t.Fatalf("body %q: last response must stay the previous envelope", bodies[i])
		}
	}
}

func TestClient_InvalidJSONWithoutPriorResponse(t *testing.T) {
	c, _ := newTestClient(t, respond(http.StatusBadGateway, `upstream timeout`))

	_, err := c.GetInvoiceStatus(context.Background(), "inv-1", "")
	if !errors.Is(err, ErrResponseFormat) {
		t.Fatalf("expected ErrResponseFormat, got %v", err)
	}
	if c.LastResponse() != nil {
		t.Fatalf("expected empty last response")
	}
}

func TestClient_ListPaymentMethods(t *testing.T) {
	t.Run("decodes identifiers", func(t *testing.T) {
		var query string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			respond(http.StatusOK, `{"success":true,"data":["binance_c2c_usdt","bank_transfer"]}`)(w, r)
		})

		methods, err := c.ListPaymentMethods(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(methods) != 2 || methods[0] != "binance_c2c_usdt" || methods[1] != "bank_transfer" {
			t.Fatalf("unexpected methods: %v", methods)
		}
		if query != "action=payment_method" {
			t.Fatalf("unexpected query %q", query)
		}
	})

	t.Run("unexpected data shape", func(t *testing.T) {
		c, _ := newTestClient(t, respond(http.StatusOK, `{"success":true,"data":{"methods":1}}`))
		_, err := c.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, ErrResponseFormat) {
			t.Fatalf("expected ErrResponseFormat, got %v", err)
		}
	})

	t.Run("missing data", func(t *testing.T) {
		c, _ := newTestClient(t, respond(http.StatusOK, `{"success":true}`))
		_, err := c.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, ErrResponseFormat) {
			t.Fatalf("expected ErrResponseFormat, got %v", err)
		}
	})
}

func TestClient_GetInvoiceStatus(t *testing.T) {
	var query string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		respond(http.StatusOK, `{"success":true,"data":{"id":"inv-9","status":"Paid","total":99.9,"customer":{"full_name":"Jane Doe"},"goods":{"name":"Gym plan"}}}`)(w, r)
	})

	inv, err := c.GetInvoiceStatus(context.Background(), "fc22ccf6", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "action=status&invoice_token=fc22ccf6" {
		t.Fatalf("unexpected query %q", query)
	}
	if inv.ID != "inv-9" || inv.Status != "Paid" || inv.Total.String() != "99.9" {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if inv.Customer.FullName != "Jane Doe" || inv.Goods.Name != "Gym plan" {
		t.Fatalf("unexpected nested fields: %+v", inv)
	}
}

func TestClient_Checkout(t *testing.T) {
	var (
		query     string
		method    string
		requestID string
	)
	data := `{"payment_method":"binance_c2c_usdt","amount":"10.00","processingFee":"0.25","receiver_name":"ACME","remark_code":"RM-1","qrcode_base64":"data:image/png;base64,AAA"}`
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		method = r.Method
		requestID = r.Header.Get(HeaderRequestID)
		respond(http.StatusOK, `{"success":true,"data":`+data+`}`)(w, r)
	})

	session, err := c.Checkout(context.Background(), "inv-1", "binance_c2c_usdt", "rid_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodGet {
		t.Fatalf("expected GET, got %s", method)
	}
	if query != "action=checkout&invoice_token=inv-1&payment_method=binance_c2c_usdt" {
		t.Fatalf("unexpected query %q", query)
	}
	if requestID != "rid_1" {
		t.Fatalf("expected request id forwarded, got %q", requestID)
	}
	if session.PaymentMethod != "binance_c2c_usdt" || session.ReceiverName != "ACME" || session.RemarkCode != "RM-1" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Amount.String() != "10" || session.ProcessingFee.String() != "0.25" {
		t.Fatalf("unexpected amounts: %s %s", session.Amount, session.ProcessingFee)
	}
	if string(session.Raw) != data {
		t.Fatalf("expected raw data kept, got %s", session.Raw)
	}
}

func TestClient_Do_Post(t *testing.T) {
	var (
		query string
		body  string
	)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		respond(http.StatusOK, `{"success":true}`)(w, r)
	})

	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Action: ActionCheckout,
		Params: []Param{{Key: "invoice_token", Value: "inv-1"}, {Key: "payment_method", Value: "x\"y"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "action=checkout" {
		t.Fatalf("POST params must not be in the query, got %q", query)
	}
	if body != `{"invoice_token":"inv-1","payment_method":"x\"y"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestClient_Do_RequestValidation(t *testing.T) {
	c, err := NewClient(testToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Do(context.Background(), Request{Method: http.MethodDelete, Action: ActionStatus}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig for DELETE, got %v", err)
	}
	if _, err := c.Do(context.Background(), Request{}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig for missing action, got %v", err)
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("untrusted certificate", func(t *testing.T) {
		srv := httptest.NewTLSServer(respond(http.StatusOK, `{"success":true}`))
		defer srv.Close()

		c, err := NewClient(testToken, WithBaseURL(srv.URL+"/"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = c.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
		if c.LastResponse() != nil {
			t.Fatalf("transport failures must not touch last response")
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewTLSServer(respond(http.StatusOK, `{}`))
		target := srv.URL
		srv.Close()

		c, err := NewClient(testToken, WithBaseURL(target+"/"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = c.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		c, _ := newTestClient(t, respond(http.StatusOK, `{"success":true,"data":[]}`))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ListPaymentMethods(ctx, "")
		if !errors.Is(err, ErrTransport) || !errors.Is(err, context.Canceled) {
			t.Fatalf("expected transport error wrapping context.Canceled, got %v", err)
		}
	})
}

func TestClient_TimeoutAgainstSilentServer(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	t.Cleanup(func() { close(release) })

	c.SetTimeout(time.Second)

	start := time.Now()
	_, err := c.GetInvoiceStatus(context.Background(), "inv-1", "")
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed < 900*time.Millisecond || elapsed > 3*time.Second {
		t.Fatalf("expected to give up after about 1s, took %v", elapsed)
	}
}

package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/infrastructure/config"
	"spayway_checkout/internal/infrastructure/metrics"
	"spayway_checkout/internal/infrastructure/spayway"
	mock_interfaces "spayway_checkout/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func transportErr() error {
	return &spayway.Error{Kind: spayway.ErrTransport, Message: "dial tcp: connection refused"}
}

func TestNewSPayWayGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		_, err := NewSPayWayGateway(config.SPayWayConfig{}, config.BreakerConfig{})
		if !errors.Is(err, ErrMissingSPayWayAccessToken) {
			t.Fatalf("expected ErrMissingSPayWayAccessToken, got %v", err)
		}
		if !errors.Is(err, spayway.ErrConfig) {
			t.Fatalf("expected ErrConfig kind, got %v", err)
		}
	})

	t.Run("plain http base url rejected", func(t *testing.T) {
		_, err := NewSPayWayGateway(config.SPayWayConfig{AccessToken: "tok", BaseURL: "http://api.s-payway.com/v3/checkout/"}, config.BreakerConfig{})
		if !errors.Is(err, spayway.ErrConfig) {
			t.Fatalf("expected ErrConfig, got %v", err)
		}
	})

	t.Run("configured", func(t *testing.T) {
		g, err := NewSPayWayGateway(config.SPayWayConfig{AccessToken: "tok", Timeout: 5 * time.Second}, config.BreakerConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.client == nil || g.breaker == nil || g.mockMode {
			t.Fatalf("unexpected gateway: %+v", g)
		}
	})
}

func TestSPayWayGateway_MockMode(t *testing.T) {
	g, err := NewSPayWayGateway(config.SPayWayConfig{MockMode: true}, config.BreakerConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	methods, err := g.ListPaymentMethods(context.Background(), "")
	if err != nil || len(methods) == 0 || methods[0] != config.DefaultPreferredMethod {
		t.Fatalf("unexpected methods=%v err=%v", methods, err)
	}

	inv, err := g.GetInvoiceStatus(context.Background(), "inv-1", "")
	if err != nil || inv.ID != "inv-1" || inv.IsPaid() {
		t.Fatalf("unexpected invoice=%+v err=%v", inv, err)
	}

	session, err := g.Checkout(context.Background(), "inv-1", "bank_transfer", "")
	if err != nil || session.PaymentMethod != "bank_transfer" || session.RemarkCode == "" {
		t.Fatalf("unexpected session=%+v err=%v", session, err)
	}
}

func TestSPayWayGateway_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_interfaces.NewMockIPaymentGateway(ctrl)
	g := NewResilientGateway(client, config.BreakerConfig{MaxConsecutiveFailures: 3, OpenTimeout: time.Minute})

	client.EXPECT().ListPaymentMethods(gomock.Any(), "req-1").Return([]string{"binance_c2c_usdt"}, nil)
	client.EXPECT().GetInvoiceStatus(gomock.Any(), "inv-1", "req-2").Return(entities.Invoice{ID: "42", Status: "Paid"}, nil)
	client.EXPECT().Checkout(gomock.Any(), "inv-1", "binance_c2c_usdt", "req-3").
		Return(entities.PaymentSession{PaymentMethod: "binance_c2c_usdt", Amount: decimal.RequireFromString("10.5")}, nil)

	methods, err := g.ListPaymentMethods(context.Background(), "req-1")
	if err != nil || len(methods) != 1 {
		t.Fatalf("unexpected methods=%v err=%v", methods, err)
	}
	inv, err := g.GetInvoiceStatus(context.Background(), "inv-1", "req-2")
	if err != nil || !inv.IsPaid() {
		t.Fatalf("unexpected invoice=%+v err=%v", inv, err)
	}
	session, err := g.Checkout(context.Background(), "inv-1", "binance_c2c_usdt", "req-3")
	if err != nil || !session.Amount.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("unexpected session=%+v err=%v", session, err)
	}
}

func TestSPayWayGateway_BreakerOpensOnTransportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_interfaces.NewMockIPaymentGateway(ctrl)
	g := NewResilientGateway(client, config.BreakerConfig{MaxConsecutiveFailures: 2, OpenTimeout: time.Minute})

	client.EXPECT().ListPaymentMethods(gomock.Any(), gomock.Any()).Return(nil, transportErr()).Times(2)

	for i := 0; i < 2; i++ {
		_, err := g.ListPaymentMethods(context.Background(), "")
		if !errors.Is(err, spayway.ErrTransport) {
			t.Fatalf("call %d: expected ErrTransport, got %v", i, err)
		}
	}

	before := testutil.ToFloat64(metrics.GatewayRequestsTotal.WithLabelValues(string(spayway.ActionPaymentMethod), metrics.OutcomeCircuitOpen))
	_, err := g.ListPaymentMethods(context.Background(), "")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
	after := testutil.ToFloat64(metrics.GatewayRequestsTotal.WithLabelValues(string(spayway.ActionPaymentMethod), metrics.OutcomeCircuitOpen))
	if after-before != 1 {
		t.Fatalf("expected circuit_open counter to grow by 1, got %v", after-before)
	}
}

func TestSPayWayGateway_APIErrorsDoNotTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_interfaces.NewMockIPaymentGateway(ctrl)
	g := NewResilientGateway(client, config.BreakerConfig{MaxConsecutiveFailures: 1, OpenTimeout: time.Minute})

	apiErr := &spayway.Error{Kind: spayway.ErrAPI, StatusCode: 401, Message: "Invalid token"}
	client.EXPECT().GetInvoiceStatus(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Invoice{}, apiErr).Times(3)

	for i := 0; i < 3; i++ {
		_, err := g.GetInvoiceStatus(context.Background(), "inv-1", "")
		if !errors.Is(err, spayway.ErrAPI) {
			t.Fatalf("call %d: expected ErrAPI, got %v", i, err)
		}
		gwErr, ok := spayway.AsError(err)
		if !ok || gwErr.StatusCode != 401 {
			t.Fatalf("call %d: expected status 401, got %v", i, err)
		}
	}
}

func TestOutcomeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, metrics.OutcomeSuccess},
		{"api", &spayway.Error{Kind: spayway.ErrAPI, Message: "x"}, metrics.OutcomeAPIError},
		{"transport", transportErr(), metrics.OutcomeTransportError},
		{"format", &spayway.Error{Kind: spayway.ErrResponseFormat, Message: "x"}, metrics.OutcomeFormatError},
		{"circuit", ErrGatewayUnavailable, metrics.OutcomeCircuitOpen},
		{"other", errors.New("boom"), metrics.OutcomeOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outcomeOf(tc.err); got != tc.want {
				t.Fatalf("outcomeOf(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}

func TestCountsAsHealthy(t *testing.T) {
	canceled := &spayway.Error{Kind: spayway.ErrTransport, Message: "canceled", Err: context.Canceled}
	if !countsAsHealthy(canceled) {
		t.Fatalf("caller cancellation must not count against the breaker")
	}
	if countsAsHealthy(transportErr()) {
		t.Fatalf("transport errors must count against the breaker")
	}
	if !countsAsHealthy(&spayway.Error{Kind: spayway.ErrAPI, Message: "nope"}) {
		t.Fatalf("api errors must not count against the breaker")
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"pension-admin/internal/core/domain"
)

func TestValidateRedirectURL(t *testing.T) {
	cases := map[string]bool{
		"https://checkout.paystack.com/abc123":        true,
		"https://paystack.com/pay/xyz":                true,
		"https://checkout.flutterwave.com/v3/hosted":  true,
		"https://paystack.com.evil.example/abc":       false,
		"https://evil.example/paystack.com":           false,
		"http://checkout.paystack.com/abc":            false,
		"https://notpaystack.com/abc":                 false,
		"https://checkout.paystack.com.attacker.io/x": false,
		"::bad url::":                                 false,
	}

	for raw, wantOK := range cases {
		err := ValidateRedirectURL(raw)
		if wantOK && err != nil {
			t.Errorf("expected %q to pass validation, got: %v", raw, err)
		}
		if !wantOK && !errors.Is(err, domain.ErrUntrustedRedirect) {
			t.Errorf("expected %q to fail with ErrUntrustedRedirect, got: %v", raw, err)
		}
	}
}

func TestInitializeSendsGatewayAndReference(t *testing.T) {
	var body map[string]any
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"authorizationUrl":"https://checkout.paystack.com/xyz","accessCode":"ac_1","reference":"ref_1"}`))
	})

	resp, err := NewPaymentService(api).Initialize(context.Background(), domain.GatewayPaystack, &PaymentInput{
		MemberID:      10,
		Amount:        25000,
		PaymentMethod: "CARD",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if body["gateway"] != "PAYSTACK" {
		t.Errorf("expected gateway PAYSTACK in request, got %v", body["gateway"])
	}
	if ref, _ := body["clientReference"].(string); ref == "" {
		t.Error("expected a client reference in the request")
	}
	if resp.AuthorizationURL != "https://checkout.paystack.com/xyz" {
		t.Errorf("unexpected authorization url %q", resp.AuthorizationURL)
	}
}

func TestInitializeRefusesUntrustedRedirect(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"authorizationUrl":"https://paystack.com.evil.example/pay","reference":"ref_2"}`))
	})

	_, err := NewPaymentService(api).Initialize(context.Background(), domain.GatewayFlutterwave, &PaymentInput{
		MemberID: 10, Amount: 100, PaymentMethod: "CARD",
	})
	if !errors.Is(err, domain.ErrUntrustedRedirect) {
		t.Fatalf("expected ErrUntrustedRedirect, got: %v", err)
	}
}

func TestPaymentsGetByMemberFallbackFilters(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/member/7":
			w.WriteHeader(http.StatusNotFound)
		case "/payments":
			w.Write([]byte(`[
				{"id":1,"memberId":7,"amount":100,"status":"SUCCESS"},
				{"id":2,"memberId":8,"amount":200,"status":"SUCCESS"},
				{"id":3,"memberId":7,"amount":300,"status":"PENDING"}
			]`))
		}
	})

	payments, err := NewPaymentService(api).GetByMember(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments for member 7, got %d", len(payments))
	}
}

func TestVerifyEscapesReference(t *testing.T) {
	var gotPath string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"id":1,"memberId":7,"transactionReference":"ref 1","status":"SUCCESS"}`))
	})

	payment, err := NewPaymentService(api).Verify(context.Background(), "ref 1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotPath != "/payments/verify/ref%201" {
		t.Errorf("expected escaped reference in path, got %q", gotPath)
	}
	if payment.Status != domain.PaymentSuccess {
		t.Errorf("unexpected payment status %q", payment.Status)
	}
}

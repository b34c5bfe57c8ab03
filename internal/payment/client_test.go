package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testParams() CheckoutParams {
	return CheckoutParams{
		OrderID:       17,
		Amount:        18000,
		Currency:      "pln",
		ProductName:   "Order #17 - Генеральная уборка",
		CustomerEmail: "client@example.com",
		SuccessURL:    "http://localhost:8080/api/payment/success",
		CancelURL:     "http://localhost:8080/api/payment/cancel",
	}
}

func TestCreateCheckoutSession_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/checkout/sessions" {
			t.Fatalf("path = %s, want /v1/checkout/sessions", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk_test" {
			t.Fatalf("unexpected authorization header: %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Idempotency-Key") == "" {
			t.Fatalf("idempotency key must be set")
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("line_items[0][price_data][unit_amount]"); got != "18000" {
			t.Fatalf("unit_amount = %q, want 18000", got)
		}
		if got := r.PostForm.Get("metadata[order_id]"); got != "17" {
			t.Fatalf("metadata order_id = %q, want 17", got)
		}
		if got := r.PostForm.Get("line_items[0][price_data][currency]"); got != "pln" {
			t.Fatalf("currency = %q, want pln", got)
		}
		if got := r.PostForm.Get("mode"); got != "payment" {
			t.Fatalf("mode = %q, want payment", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CheckoutSession{
			ID:  "cs_test_123",
			URL: "https://checkout.stripe.com/pay/cs_test_123",
		})
	}))
	defer ts.Close()

	client := NewClient("sk_test")
	client.baseURL = ts.URL

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	session, err := client.CreateCheckoutSession(ctx, testParams())
	if err != nil {
		t.Fatalf("CreateCheckoutSession error: %v", err)
	}
	if session.ID != "cs_test_123" {
		t.Fatalf("session id = %q, want cs_test_123", session.ID)
	}
	if session.URL == "" {
		t.Fatalf("session url must not be empty")
	}
}

func TestCreateCheckoutSession_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer ts.Close()

	client := NewClient("sk_test")
	client.baseURL = ts.URL

	_, err := client.CreateCheckoutSession(context.Background(), testParams())
	if err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestCreateCheckoutSession_NotConfigured(t *testing.T) {
	client := NewClient("")

	_, err := client.CreateCheckoutSession(context.Background(), testParams())
	if err == nil {
		t.Fatalf("expected error for missing secret key")
	}
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()
	header := SignPayload(payload, "whsec_test", now)

	if err := VerifySignature(payload, header, "whsec_test", DefaultTolerance, now); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}

	if err := VerifySignature(payload, header, "whsec_other", DefaultTolerance, now); err == nil {
		t.Fatalf("signature with wrong secret must be rejected")
	}

	if err := VerifySignature([]byte(`{"tampered":true}`), header, "whsec_test", DefaultTolerance, now); err == nil {
		t.Fatalf("tampered payload must be rejected")
	}

	stale := SignPayload(payload, "whsec_test", now.Add(-time.Hour))
	if err := VerifySignature(payload, stale, "whsec_test", DefaultTolerance, now); err == nil {
		t.Fatalf("stale signature must be rejected")
	}

	if err := VerifySignature(payload, "", "whsec_test", DefaultTolerance, now); err == nil {
		t.Fatalf("empty header must be rejected")
	}
}

func TestParseEvent_OrderID(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_123", "payment_status": "paid", "metadata": {"order_id": "42"}}}
	}`)

	e, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("parse event: %v", err)
	}
	if e.Type != EventCheckoutCompleted {
		t.Fatalf("type = %q, want %q", e.Type, EventCheckoutCompleted)
	}

	id, err := e.OrderID()
	if err != nil {
		t.Fatalf("order id: %v", err)
	}
	if id != 42 {
		t.Fatalf("order id = %d, want 42", id)
	}

	e.Data.Object.Metadata = nil
	if _, err := e.OrderID(); err == nil {
		t.Fatalf("expected error for missing metadata")
	}
}

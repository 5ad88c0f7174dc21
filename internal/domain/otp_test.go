package domain_test

import (
	"testing"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

func TestValidOtpCodeFormat(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"12 456", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := domain.ValidOtpCodeFormat(tc.code); got != tc.want {
			t.Fatalf("ValidOtpCodeFormat(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestHashOtpCode_Deterministic(t *testing.T) {
	a := domain.HashOtpCode("123456")
	b := domain.HashOtpCode("123456")
	if a != b {
		t.Fatalf("hash must be deterministic")
	}
	if a == domain.HashOtpCode("654321") {
		t.Fatalf("different codes must not collide trivially")
	}
	if a == "123456" {
		t.Fatalf("hash must not equal plaintext code")
	}
}

func TestOtpChallengeLifecycleFlags(t *testing.T) {
	now := time.Now().UTC()
	challenge := domain.OtpChallenge{
		ID:        "otp-1",
		OrderID:   "order-1",
		Purpose:   domain.OtpPurposeOrderConfirmation,
		CodeHash:  domain.HashOtpCode("123456"),
		IssuedAt:  now,
		ExpiresAt: now.Add(domain.DefaultOtpTTL),
	}

	if challenge.Consumed() {
		t.Fatalf("fresh challenge must not be consumed")
	}
	if challenge.ExpiredAt(now) {
		t.Fatalf("fresh challenge must not be expired")
	}
	if !challenge.ExpiredAt(now.Add(domain.DefaultOtpTTL + time.Second)) {
		t.Fatalf("challenge must expire after TTL")
	}

	challenge.ConsumedAt = now.Add(time.Minute)
	if !challenge.Consumed() {
		t.Fatalf("challenge with consumed_at must report consumed")
	}
}

func TestOtpPurposeValid(t *testing.T) {
	if !domain.OtpPurposeOrderConfirmation.Valid() || !domain.OtpPurposeDeliveryConfirmation.Valid() {
		t.Fatalf("known purposes must be valid")
	}
	if domain.OtpPurpose("login").Valid() {
		t.Fatalf("unknown purpose must be invalid")
	}
}

package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bondhubazaar/storefront/internal/domain"
)

func TestIsVersionConflict(t *testing.T) {
	if !domain.IsVersionConflict(domain.ErrOrderVersionConflict) {
		t.Fatalf("direct sentinel must be detected")
	}
	wrapped := fmt.Errorf("save order: %w", domain.ErrOrderVersionConflict)
	if !domain.IsVersionConflict(wrapped) {
		t.Fatalf("wrapped sentinel must be detected")
	}
	if domain.IsVersionConflict(errors.New("other")) {
		t.Fatalf("unrelated error must not be detected")
	}
}

func TestIsOtpRejection(t *testing.T) {
	rejections := []error{
		domain.ErrInvalidCode,
		domain.ErrChallengeNotFound,
		domain.ErrChallengeConsumed,
		domain.ErrChallengeExpired,
		domain.ErrCodeMismatch,
	}
	for _, err := range rejections {
		if !domain.IsOtpRejection(err) {
			t.Fatalf("error %v must count as otp rejection", err)
		}
		if !domain.IsOtpRejection(fmt.Errorf("verify: %w", err)) {
			t.Fatalf("wrapped %v must count as otp rejection", err)
		}
	}

	if domain.IsOtpRejection(domain.ErrInsufficientFunds) {
		t.Fatalf("wallet error must not count as otp rejection")
	}
}

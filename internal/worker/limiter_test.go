package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://shop.example.com/listing/123"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// A second marketplace gets its own bucket
	if err := limiter.Wait(ctx, "https://market.example.org/item/9"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	err := limiter.WaitWithDelay(ctx, "https://shop.example.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", elapsed)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()
	url := "https://shop.example.com"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst 1: the token is consumed, Allow must fail immediately
	if limiter.Allow(url) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// A different marketplace is unaffected
	if !limiter.Allow("https://market.example.org") {
		t.Errorf("expected allow for other domain")
	}
}

func TestLimiter_SetDomainRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	domain := "slow-marketplace.example"

	limiter.SetDomainRate(domain, 0.1, 1)

	if !limiter.Allow("https://" + domain) {
		t.Errorf("first request should pass")
	}

	if limiter.Allow("https://" + domain) {
		t.Errorf("second request should fail")
	}

	// Other domains keep the fast default
	if !limiter.Allow("https://fast-marketplace.example") {
		t.Errorf("other domain should pass")
	}
}

func TestExtractDomain(t *testing.T) {
	domain, err := extractDomain("https://shop.example.com/listing/123")
	if err != nil {
		t.Fatalf("extractDomain failed: %v", err)
	}
	if domain != "shop.example.com" {
		t.Errorf("expected shop.example.com, got %s", domain)
	}

	if _, err = extractDomain("::invalid"); err == nil {
		t.Errorf("expected error for invalid URL")
	}
}

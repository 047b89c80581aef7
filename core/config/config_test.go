package config

import (
	"strings"
	"testing"
)

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "123:abc"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %s, want %s", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestNormalizeRejectsMissingToken(t *testing.T) {
	err := Normalize(&Config{})
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestNormalizeWebhookRequiresEndpoint(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "123:abc"
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "123:abc"
	cfg.RateLimit.ExcludeUpdates = []string{" Callback "}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclusion = %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unsupported exclusion")
	}
}

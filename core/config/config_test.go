package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:    "123:abc",
			AdminIDs: []int64{1, 2},
			RunMode:  RunModeLongpoll,
		},
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeDedupsAdminIDs(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.AdminIDs = []int64{5, 5, 7, 5}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cfg.Telegram.AdminIDs
	if len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Fatalf("admin ids not deduplicated: %v", got)
	}
}

func TestNormalizeRejectsZeroAdminID(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.AdminIDs = []int64{1, 0}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for zero admin id")
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("alias not normalized: %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeDefaultsRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("expected longpoll default, got %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeWebhookNeedsURL(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook.URL = ""
	err := Normalize(cfg)
	if err == nil {
		t.Fatal("expected error for webhook mode without url")
	}
	if !strings.Contains(err.Error(), "webhook") {
		t.Fatalf("error should mention webhook: %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Telegram.IsAdmin(1) {
		t.Fatal("expected id 1 to be admin")
	}
	if cfg.Telegram.IsAdmin(99) {
		t.Fatal("id 99 must not be admin")
	}
}

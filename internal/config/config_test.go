package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(webhookURLEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if len(cfg.Categories) != 3 {
		t.Fatalf("expected 3 default categories, got %d", len(cfg.Categories))
	}
	if cfg.Categories[0].Name != "Banking & Lending" {
		t.Fatalf("unexpected first category: %s", cfg.Categories[0].Name)
	}
	if cfg.Categories[2].Name != "Python & Tech" {
		t.Fatalf("unexpected last category: %s", cfg.Categories[2].Name)
	}
	if cfg.Briefing.ArticlesPerFeed != 3 {
		t.Fatalf("expected default per-feed limit 3, got %d", cfg.Briefing.ArticlesPerFeed)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default level info, got %s", cfg.Logging.Level)
	}
	if cfg.Slack.WebhookURL != "" {
		t.Fatalf("webhook should have no default, got %s", cfg.Slack.WebhookURL)
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	raw := `
slack:
  webhookUrl: https://hooks.slack.com/services/from-file
  username: File Bot
briefing:
  articlesPerFeed: 5
categories:
  - name: Only Category
    feeds:
      - https://feeds.example/only
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(webhookURLEnv, "https://hooks.slack.com/services/from-env")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/from-env" {
		t.Fatalf("env override should win, got %s", cfg.Slack.WebhookURL)
	}
	if cfg.Slack.Username != "File Bot" {
		t.Fatalf("file value lost: %s", cfg.Slack.Username)
	}
	if cfg.Briefing.ArticlesPerFeed != 5 {
		t.Fatalf("expected per-feed limit 5, got %d", cfg.Briefing.ArticlesPerFeed)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Name != "Only Category" {
		t.Fatalf("unexpected categories: %+v", cfg.Categories)
	}
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(webhookURLEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if len(cfg.Categories) != 3 {
		t.Fatalf("expected default categories, got %d", len(cfg.Categories))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing webhook URL")
	}

	cfg.Slack.WebhookURL = "https://hooks.slack.com/services/x"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Briefing.ArticlesPerFeed = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive per-feed limit")
	}
}

func TestBindTimezoneFallback(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Briefing.Timezone = "Mars/Olympus"
	cfg.bindTimezone()

	if cfg.Briefing.Location().String() == "Mars/Olympus" {
		t.Fatal("unknown timezone should not resolve")
	}
	if cfg.Briefing.Location() == nil {
		t.Fatal("location must never be nil")
	}
}

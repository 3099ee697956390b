package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "America/New_York"
	configPathEnv   = "NEWS_BRIEFING_CONFIG"
	webhookURLEnv   = "SLACK_WEBHOOK_URL"
	logLevelEnv     = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Slack      SlackConfig      `yaml:"slack"`
	Briefing   BriefingConfig   `yaml:"briefing"`
	Logging    LoggingConfig    `yaml:"logging"`
	Categories []CategoryConfig `yaml:"categories"`
}

// SlackConfig wires all data required to post to an incoming webhook.
type SlackConfig struct {
	WebhookURL string `yaml:"webhookUrl"`
	Username   string `yaml:"username"`
	IconEmoji  string `yaml:"iconEmoji"`
}

// BriefingConfig controls message assembly.
type BriefingConfig struct {
	Timezone        string         `yaml:"timezone"`
	ArticlesPerFeed int            `yaml:"articlesPerFeed"`
	location        *time.Location `yaml:"-"`
}

// Location resolves the briefing timezone string to a time.Location.
func (b BriefingConfig) Location() *time.Location {
	if b.location != nil {
		return b.location
	}
	if loc, err := time.LoadLocation(defaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// LoggingConfig selects the console log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CategoryConfig names one topic and the ordered feed URLs behind it.
// Declaration order is the order sections appear in the briefing.
type CategoryConfig struct {
	Name  string   `yaml:"name"`
	Feeds []string `yaml:"feeds"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Categories) == 0 {
		cfg.Categories = defaultConfig().Categories
	}

	return cfg
}

// Validate reports fatal configuration problems. It runs before any network
// activity so a missing webhook fails the process without fetching a single
// feed.
func (c Config) Validate() error {
	if c.Slack.WebhookURL == "" {
		return fmt.Errorf("webhook URL is not configured (set %s)", webhookURLEnv)
	}
	if c.Briefing.ArticlesPerFeed <= 0 {
		return fmt.Errorf("articlesPerFeed must be positive, got %d", c.Briefing.ArticlesPerFeed)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(webhookURLEnv); v != "" {
		c.Slack.WebhookURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Briefing.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		if loc, err = time.LoadLocation(defaultTimezone); err != nil {
			loc = time.UTC
		}
	}
	c.Briefing.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Slack.WebhookURL != "" {
		base.Slack.WebhookURL = override.Slack.WebhookURL
	}
	if override.Slack.Username != "" {
		base.Slack.Username = override.Slack.Username
	}
	if override.Slack.IconEmoji != "" {
		base.Slack.IconEmoji = override.Slack.IconEmoji
	}

	if override.Briefing.Timezone != "" {
		base.Briefing.Timezone = override.Briefing.Timezone
	}
	if override.Briefing.ArticlesPerFeed > 0 {
		base.Briefing.ArticlesPerFeed = override.Briefing.ArticlesPerFeed
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if len(override.Categories) > 0 {
		base.Categories = override.Categories
	}

	return base
}

func defaultConfig() Config {
	loc, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Slack: SlackConfig{},
		Briefing: BriefingConfig{
			Timezone:        defaultTimezone,
			ArticlesPerFeed: 3,
			location:        loc,
		},
		Logging: LoggingConfig{Level: "info"},
		Categories: []CategoryConfig{
			{
				Name: "Banking & Lending",
				Feeds: []string{
					"https://www.americanbanker.com/feed",
					"https://www.housingwire.com/feed/",
				},
			},
			{
				Name:  "Salesforce",
				Feeds: []string{"https://www.salesforceben.com/feed/"},
			},
			{
				Name:  "Python & Tech",
				Feeds: []string{"https://realpython.com/atom.xml"},
			},
		},
	}
}

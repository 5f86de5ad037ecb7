package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Portal struct {
		BaseURL   string `yaml:"base_url"`
		LoginPath string `yaml:"login_path"`
		FeedPath  string `yaml:"feed_path"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
	} `yaml:"portal"`
	Session struct {
		File string `yaml:"file"`
	} `yaml:"session"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		CheckCron string `yaml:"check_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORTAL_BASE_URL"); v != "" {
		cfg.Portal.BaseURL = v
	}
	if v := os.Getenv("PORTAL_USERNAME"); v != "" {
		cfg.Portal.Username = v
	}
	if v := os.Getenv("PORTAL_PASSWORD"); v != "" {
		cfg.Portal.Password = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_CHECK"); v != "" {
		cfg.Schedule.CheckCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		cfg.Session.File = v
	}

	// Defaults
	if cfg.Portal.LoginPath == "" {
		cfg.Portal.LoginPath = "/login"
	}
	if cfg.Portal.FeedPath == "" {
		cfg.Portal.FeedPath = "/account/tolls/csv"
	}
	if cfg.Session.File == "" {
		cfg.Session.File = "data/session.json"
	}
	if cfg.Schedule.CheckCron == "" {
		cfg.Schedule.CheckCron = "0 0 8 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/toll_sentinel.db"
	}

	return cfg, nil
}

// Validate checks the fields every mode needs.
func (c *Config) Validate() error {
	if c.Portal.BaseURL == "" {
		return fmt.Errorf("portal.base_url is required")
	}
	if c.Portal.Username == "" {
		return fmt.Errorf("portal.username is required")
	}
	if c.Portal.Password == "" {
		return fmt.Errorf("portal.password is required")
	}
	return nil
}

// ValidateDaemon checks the extra fields daemon mode needs.
func (c *Config) ValidateDaemon() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required in daemon mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required in daemon mode")
	}
	return nil
}

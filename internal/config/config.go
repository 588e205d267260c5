// Package config loads the yaml settings file and the dotenv secret store.
package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Config is the recap.yaml settings tree.
type Config struct {
	Fireflies FirefliesConfig `yaml:"fireflies"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
	UI        UIConfig        `yaml:"ui"`
}

// FirefliesConfig configures the transcripts query.
type FirefliesConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Limit    int           `yaml:"limit"`
	Timeout  time.Duration `yaml:"timeout"`
}

// OpenAIConfig configures the chat completion requests.
type OpenAIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Model             string        `yaml:"model"`
	Temperature       float64       `yaml:"temperature"`
	AnalysisMaxTokens int64         `yaml:"analysis_max_tokens"`
	EmailMaxTokens    int64         `yaml:"email_max_tokens"`
	Timeout           time.Duration `yaml:"timeout"`
}

// SMTPConfig locates the mail relay. Credentials come from Secrets.
type SMTPConfig struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	From    string        `yaml:"from"`
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig locates the report archive. An empty path keeps it in memory.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig sets the log level and an optional log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UIConfig prefills the interactive inputs.
type UIConfig struct {
	Recipient string `yaml:"recipient"`
	AutoEmail bool   `yaml:"auto_email"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.Validate()
	return c
}

// Validate checks the settings and fills defaults for anything unset.
func (c *Config) Validate() error {
	if c.Fireflies.Endpoint == "" {
		c.Fireflies.Endpoint = "https://api.fireflies.ai/graphql"
	}
	if c.Fireflies.Limit == 0 {
		c.Fireflies.Limit = 10
	}
	if c.Fireflies.Limit < 0 || c.Fireflies.Limit > 50 {
		return fmt.Errorf("fireflies.limit must be between 1 and 50, got %d", c.Fireflies.Limit)
	}
	if c.Fireflies.Timeout == 0 {
		c.Fireflies.Timeout = 30 * time.Second
	}

	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 0.7
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be between 0 and 2, got %v", c.OpenAI.Temperature)
	}
	if c.OpenAI.AnalysisMaxTokens == 0 {
		c.OpenAI.AnalysisMaxTokens = 3000
	}
	if c.OpenAI.EmailMaxTokens == 0 {
		c.OpenAI.EmailMaxTokens = 2000
	}
	if c.OpenAI.Timeout == 0 {
		c.OpenAI.Timeout = 120 * time.Second
	}

	if c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 465
	}
	if c.SMTP.Timeout == 0 {
		c.SMTP.Timeout = 30 * time.Second
	}
	if c.SMTP.From != "" {
		if _, err := mail.ParseAddress(c.SMTP.From); err != nil {
			return fmt.Errorf("smtp.from: %w", err)
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.UI.Recipient = strings.TrimSpace(c.UI.Recipient)

	return nil
}

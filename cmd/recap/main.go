// Command recap is the interactive meeting transcript analyzer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/app"
	"github.com/jwulff/recap/internal/config"
	"github.com/jwulff/recap/internal/db"
	"github.com/jwulff/recap/internal/fireflies"
	"github.com/jwulff/recap/internal/logger"
	"github.com/jwulff/recap/internal/mailer"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "recap.yaml", "Configuration file path")
	flag.Parse()

	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	secrets, err := config.LoadSecrets(config.DotEnvFiles...)
	if err != nil {
		log.Fatalf("Failed to load secrets: %v", err)
	}
	if err := secrets.Validate(); err != nil {
		log.Fatalf("Missing credentials: %v", err)
	}

	var logOut io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	l := logger.New(cfg.Logging.Level, logOut)

	store, err := db.Open(cfg.History.Path)
	if err != nil {
		log.Fatalf("Failed to open report archive: %v", err)
	}
	defer store.Close()

	deps := app.Deps{
		Fetcher: fireflies.New(cfg.Fireflies.Endpoint, cfg.Fireflies.Timeout),
		Analyzer: analysis.New(analysis.Config{
			APIKey:            secrets.OpenAIAPIKey,
			BaseURL:           cfg.OpenAI.BaseURL,
			Model:             cfg.OpenAI.Model,
			Temperature:       cfg.OpenAI.Temperature,
			AnalysisMaxTokens: cfg.OpenAI.AnalysisMaxTokens,
			EmailMaxTokens:    cfg.OpenAI.EmailMaxTokens,
			Timeout:           cfg.OpenAI.Timeout,
		}),
		Reports:         store,
		Log:             l,
		TranscriptLimit: cfg.Fireflies.Limit,
		ModelName:       cfg.OpenAI.Model,
		APIKey:          secrets.FirefliesAPIKey,
		Recipient:       cfg.UI.Recipient,
		AutoEmail:       cfg.UI.AutoEmail,
	}
	// Left nil without credentials so the model reports email as unconfigured.
	if secrets.CanEmail() {
		deps.Notifier = mailer.New(mailer.Config{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			From: cfg.SMTP.From,
			Credentials: mailer.Credentials{
				Username: secrets.SMTPUsername,
				Password: secrets.SMTPPassword,
			},
			Timeout: cfg.SMTP.Timeout,
		})
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

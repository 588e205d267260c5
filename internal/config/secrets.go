package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DotEnvFiles are read in order; earlier files win.
var DotEnvFiles = []string{".env.local", ".env"}

// Secrets are the process-wide credentials, loaded once at startup.
type Secrets struct {
	OpenAIAPIKey    string
	SMTPUsername    string
	SMTPPassword    string
	FirefliesAPIKey string // optional; prefills the API key input
}

// LoadSecrets merges the dotenv files with the process environment. A
// variable already set in the environment wins over the files.
func LoadSecrets(paths ...string) (Secrets, error) {
	values := map[string]string{}
	for _, p := range paths {
		vars, err := godotenv.Read(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Secrets{}, fmt.Errorf("read %s: %w", p, err)
		}
		for k, v := range vars {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}

	lookup := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
			if v := strings.TrimSpace(values[k]); v != "" {
				return v
			}
		}
		return ""
	}

	return Secrets{
		OpenAIAPIKey:    lookup("OPENAI_API_KEY"),
		SMTPUsername:    lookup("SMTP_USERNAME", "GMAIL_USER"),
		SMTPPassword:    lookup("SMTP_PASSWORD", "GMAIL_PASSWORD"),
		FirefliesAPIKey: lookup("FIREFLIES_API_KEY"),
	}, nil
}

// Validate reports missing required secrets.
func (s Secrets) Validate() error {
	if s.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}

// CanEmail reports whether SMTP credentials are present.
func (s Secrets) CanEmail() bool {
	return s.SMTPUsername != "" && s.SMTPPassword != ""
}

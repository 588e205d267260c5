package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	html := "<html><body><h1>Financial Analysis</h1><ul><li>p1</li></ul></body></html>"

	msg, err := BuildMessage("me@example.com", "bob@example.com", "Meeting Analysis: Financial", html)
	if err != nil {
		t.Fatalf("BuildMessage: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"multipart/alternative",
		"text/plain",
		"text/html",
		"Subject: Meeting Analysis: Financial",
		"bob@example.com",
		"me@example.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMessageBadRecipient(t *testing.T) {
	_, err := BuildMessage("me@example.com", "not an address", "s", "<p>x</p>")
	var ee *EmailError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want EmailError", err)
	}
}

func TestSendValidation(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		recipient string
		op        string
	}{
		{"no recipient", Config{Credentials: Credentials{Username: "u@example.com", Password: "p"}}, " ", "build"},
		{"no password", Config{Credentials: Credentials{Username: "u@example.com"}}, "bob@example.com", "auth"},
		{"no username", Config{Credentials: Credentials{Password: "p"}}, "bob@example.com", "auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.cfg).Send(context.Background(), tt.recipient, "s", "<p>x</p>")
			var ee *EmailError
			if !errors.As(err, &ee) {
				t.Fatalf("error = %v, want EmailError", err)
			}
			if ee.Op != tt.op {
				t.Errorf("op = %q, want %q", ee.Op, tt.op)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	m := New(Config{Credentials: Credentials{Username: "me@example.com"}})
	if m.cfg.Host != DefaultHost || m.cfg.Port != DefaultPort {
		t.Errorf("relay = %s:%d", m.cfg.Host, m.cfg.Port)
	}
	if m.cfg.From != "me@example.com" {
		t.Errorf("from = %q", m.cfg.From)
	}
}

func TestSendConnectFailure(t *testing.T) {
	m := New(Config{
		Host:        "127.0.0.1",
		Port:        1,
		Credentials: Credentials{Username: "u@example.com", Password: "p"},
	})
	err := m.Send(context.Background(), "bob@example.com", "s", "<p>x</p>")
	var ee *EmailError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want EmailError", err)
	}
}

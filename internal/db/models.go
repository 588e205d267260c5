// Package db provides SQLite storage for completed analysis reports.
package db

import "time"

// Report is one completed analysis of a transcript.
type Report struct {
	ID              string
	TranscriptID    string
	TranscriptTitle string
	Category        string
	Subject         string
	Summary         string
	HTML            string
	Recipient       string
	EmailedAt       *time.Time
	CreatedAt       time.Time
}

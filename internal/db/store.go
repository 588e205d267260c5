package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		transcriptId TEXT NOT NULL,
		transcriptTitle TEXT NOT NULL,
		category TEXT NOT NULL,
		subject TEXT NOT NULL,
		summary TEXT NOT NULL,
		html TEXT NOT NULL,
		recipient TEXT,
		emailedAt REAL,
		createdAt REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS reports_createdAt ON reports(createdAt);
`

// Store provides access to the report archive.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultDBPath returns the default on-disk archive path.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "recap", "reports.sqlite")
}

// Open opens the archive read-write and creates the schema. An empty path or
// ":memory:" keeps the archive in memory for the life of the process.
func Open(path string) (*Store, error) {
	var dsn string
	if path == "" || path == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// OpenReadOnly opens an existing archive without write access.
func OpenReadOnly(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport inserts r, assigning an ID and CreatedAt when unset, and returns
// the stored ID.
func (s *Store) SaveReport(r Report) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	var emailedAt sql.NullFloat64
	if r.EmailedAt != nil {
		emailedAt = sql.NullFloat64{Float64: unixFromTime(*r.EmailedAt), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO reports (id, transcriptId, transcriptTitle, category, subject, summary, html, recipient, emailedAt, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.TranscriptID, r.TranscriptTitle, r.Category, r.Subject, r.Summary, r.HTML,
		nullString(r.Recipient), emailedAt, unixFromTime(r.CreatedAt))
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}
	return r.ID, nil
}

// MarkEmailed records a successful send of report id to recipient.
func (s *Store) MarkEmailed(id, recipient string, at time.Time) error {
	res, err := s.db.Exec(`UPDATE reports SET recipient = ?, emailedAt = ? WHERE id = ?`,
		recipient, unixFromTime(at), id)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("report %s not found", id)
	}
	return nil
}

// RecentReports returns up to limit reports, newest first.
func (s *Store) RecentReports(limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, transcriptId, transcriptTitle, category, subject, summary, html, recipient, emailedAt, createdAt
		FROM reports
		ORDER BY createdAt DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// ReportByID returns the report with the given id, or nil if none exists.
func (s *Store) ReportByID(id string) (*Report, error) {
	row := s.db.QueryRow(`
		SELECT id, transcriptId, transcriptTitle, category, subject, summary, html, recipient, emailedAt, createdAt
		FROM reports
		WHERE id = ?
	`, strings.TrimSpace(id))

	r, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (Report, error) {
	var r Report
	var recipient sql.NullString
	var emailedAt sql.NullFloat64
	var createdAt float64

	if err := sc.Scan(&r.ID, &r.TranscriptID, &r.TranscriptTitle, &r.Category, &r.Subject,
		&r.Summary, &r.HTML, &recipient, &emailedAt, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return Report{}, err
		}
		return Report{}, fmt.Errorf("scan report: %w", err)
	}

	if recipient.Valid {
		r.Recipient = recipient.String
	}
	if emailedAt.Valid {
		t := timeFromUnix(emailedAt.Float64)
		r.EmailedAt = &t
	}
	r.CreatedAt = timeFromUnix(createdAt)
	return r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

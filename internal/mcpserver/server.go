// Package mcpserver exposes the report archive to agents as read-only MCP
// tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jwulff/recap/internal/db"
	"github.com/jwulff/recap/internal/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Archive is the read side of the report store.
type Archive interface {
	RecentReports(limit int) ([]db.Report, error)
	ReportByID(id string) (*db.Report, error)
}

type reportEntry struct {
	ID              string `json:"id"`
	TranscriptID    string `json:"transcript_id"`
	TranscriptTitle string `json:"transcript_title"`
	Category        string `json:"category"`
	Subject         string `json:"subject"`
	Summary         string `json:"summary"`
	Recipient       string `json:"recipient,omitempty"`
	EmailedAt       string `json:"emailed_at,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type reportDetail struct {
	reportEntry
	HTML string `json:"html"`
}

func entryFor(r db.Report) reportEntry {
	e := reportEntry{
		ID:              r.ID,
		TranscriptID:    r.TranscriptID,
		TranscriptTitle: r.TranscriptTitle,
		Category:        r.Category,
		Subject:         r.Subject,
		Summary:         r.Summary,
		Recipient:       r.Recipient,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.EmailedAt != nil {
		e.EmailedAt = r.EmailedAt.UTC().Format(time.RFC3339)
	}
	return e
}

// Handlers implements the tool handlers over an Archive.
type Handlers struct {
	archive Archive
	log     logger.Logger
}

// NewHandlers returns handlers reading from archive.
func NewHandlers(archive Archive, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{archive: archive, log: log}
}

// New builds the MCP server with the archive tools registered.
func New(archive Archive, log logger.Logger, version string) *server.MCPServer {
	h := NewHandlers(archive, log)
	s := server.NewMCPServer("recap", version, server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("list_reports",
		mcp.WithDescription("List recently generated meeting analysis reports, newest first."),
		mcp.WithNumber("limit", mcp.Description(fmt.Sprintf("Maximum number of reports (default %d, max %d)", defaultListLimit, maxListLimit))),
	), h.ListReports)

	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Get one meeting analysis report, including its HTML document."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Report id from list_reports")),
	), h.GetReport)

	return s
}

// ListReports handles list_reports.
func (h *Handlers) ListReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	reports, err := h.archive.RecentReports(limit)
	if err != nil {
		h.log.Error(ctx, "list reports: %v", err)
		return mcp.NewToolResultError("failed to list reports: " + err.Error()), nil
	}

	entries := make([]reportEntry, 0, len(reports))
	for _, r := range reports {
		entries = append(entries, entryFor(r))
	}
	return jsonResult(entries)
}

// GetReport handles get_report.
func (h *Handlers) GetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := h.archive.ReportByID(id)
	if err != nil {
		h.log.Error(ctx, "get report %s: %v", id, err)
		return mcp.NewToolResultError("failed to load report: " + err.Error()), nil
	}
	if r == nil {
		return mcp.NewToolResultError("report not found: " + id), nil
	}
	return jsonResult(reportDetail{reportEntry: entryFor(*r), HTML: r.HTML})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

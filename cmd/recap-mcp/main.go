// Command recap-mcp serves the recap report archive over MCP stdio.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jwulff/recap/internal/config"
	"github.com/jwulff/recap/internal/db"
	"github.com/jwulff/recap/internal/logger"
	"github.com/jwulff/recap/internal/mcpserver"
)

var version = "dev"

func main() {
	var configFile, dbPath string
	flag.StringVar(&configFile, "config", "recap.yaml", "Configuration file path")
	flag.StringVar(&dbPath, "db", "", "Report archive path (overrides history.path)")
	flag.Parse()

	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dbPath, err = archivePath(dbPath, cfg.History.Path)
	if err != nil {
		log.Fatalf("Failed to locate report archive: %v", err)
	}

	l := logger.New(cfg.Logging.Level, os.Stderr)

	store, err := db.OpenReadOnly(dbPath)
	if err != nil {
		log.Fatalf("Failed to open report archive: %v", err)
	}
	defer store.Close()

	l.Info(context.Background(), "serving reports from %s", dbPath)
	if err := server.ServeStdio(mcpserver.New(store, l, version)); err != nil {
		l.Error(context.Background(), "serve: %v", err)
		os.Exit(1)
	}
}

// archivePath picks the -db flag over history.path. The TUI keeps reports in
// memory when history.path is empty, so there is nothing to serve then.
func archivePath(flagPath, historyPath string) (string, error) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(historyPath); p != "" && p != ":memory:" {
		return p, nil
	}
	return "", errors.New("history.path is empty so reports are not persisted; set history.path (for example " + db.DefaultDBPath() + ") or pass -db")
}

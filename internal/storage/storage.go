package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage is a small document store: one row per imported program and one
// JSON document per exercise holding its setting, plan and history.
type Storage struct {
	DB     *sql.DB
	driver string
}

// Open connects to connString. Remote Turso databases (libsql://, https://,
// wss://) go through the libsql client, anything else is a local SQLite file.
func Open(connString, authToken string) (*Storage, error) {
	if strings.TrimSpace(connString) == "" {
		return nil, fmt.Errorf("database connection string is required")
	}

	driver, dsn := "sqlite", connString
	if remote(connString) {
		driver = "libsql"
		if authToken != "" {
			dsn = withToken(connString, authToken)
		}
	} else {
		dsn = withForeignKeys(connString)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", redact(connString), err)
	}
	if driver == "sqlite" {
		// Writes are serialized by SQLite anyway; one connection keeps the
		// foreign key pragma in effect.
		db.SetMaxOpenConns(1)
	}

	s := &Storage{DB: db, driver: driver}
	if err := s.initializeDB(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	logrus.WithFields(logrus.Fields{"driver": driver, "db": redact(connString)}).Debug("database ready")
	return s, nil
}

func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *Storage) initializeDB(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS programs (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            body TEXT NOT NULL,
            created_at TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS exercises (
            id TEXT PRIMARY KEY,
            program_id TEXT NOT NULL,
            name TEXT NOT NULL,
            body TEXT NOT NULL,
            updated_at TEXT NOT NULL,
            UNIQUE (program_id, name),
            FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
        )`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func remote(connString string) bool {
	for _, prefix := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(connString, prefix) {
			return true
		}
	}
	return false
}

func withToken(connString, token string) string {
	sep := "?"
	if strings.Contains(connString, "?") {
		sep = "&"
	}
	return connString + sep + "authToken=" + url.QueryEscape(token)
}

func withForeignKeys(connString string) string {
	if strings.Contains(connString, "foreign_keys") {
		return connString
	}
	sep := "?"
	if strings.Contains(connString, "?") {
		sep = "&"
	}
	return connString + sep + "_pragma=foreign_keys(1)"
}

// redact drops the query string, which may carry an auth token.
func redact(connString string) string {
	if i := strings.Index(connString, "?"); i >= 0 {
		return connString[:i]
	}
	return connString
}

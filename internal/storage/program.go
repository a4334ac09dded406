package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
)

// ProgramInfo is a stored program without its catalog.
type ProgramInfo struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// SaveProgram stores catalog, replacing the catalog of a program with the
// same name. Exercise state of a replaced program is kept.
func (s *Storage) SaveProgram(ctx context.Context, catalog models.Catalog) error {
	body, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("Failed to encode program %s: %w", catalog.Name, err)
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO programs (id, name, description, body, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET
            description = excluded.description,
            body = excluded.body`,
		uuid.New().String(),
		catalog.Name,
		catalog.Description,
		string(body),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save program %s: %w", catalog.Name, err)
	}
	return nil
}

// GetProgram returns the catalog of the named program.
func (s *Storage) GetProgram(ctx context.Context, name string) (*models.Catalog, error) {
	var body string
	err := s.DB.QueryRowContext(ctx, `SELECT body FROM programs WHERE name = ?`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("program %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to query program %s: %w", name, err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal([]byte(body), &catalog); err != nil {
		return nil, fmt.Errorf("Failed to decode program %s: %w", name, err)
	}
	return &catalog, nil
}

func (s *Storage) ListPrograms(ctx context.Context) ([]ProgramInfo, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, description, created_at
        FROM programs
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query programs: %w", err)
	}
	defer rows.Close()

	var programs []ProgramInfo
	for rows.Next() {
		var p ProgramInfo
		var description sql.NullString
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan program: %w", err)
		}
		p.Description = description.String
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// DeleteProgram removes the program and every exercise document it owns.
func (s *Storage) DeleteProgram(ctx context.Context, name string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM programs WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return errors.NotFound("program %q not found", name)
	}
	if err != nil {
		return fmt.Errorf("Failed to query program %s: %w", name, err)
	}

	// Explicit so that libsql remotes without foreign keys behave the same.
	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE program_id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete exercises of %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete program %s: %w", name, err)
	}
	return tx.Commit()
}

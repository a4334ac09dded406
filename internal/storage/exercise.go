package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/overload/internal/errors"
)

// SaveExercise upserts the JSON document of one exercise of a program.
func (s *Storage) SaveExercise(ctx context.Context, program, name string, body []byte) error {
	id, err := s.programID(ctx, program)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO exercises (id, program_id, name, body, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(program_id, name) DO UPDATE SET
            body = excluded.body,
            updated_at = excluded.updated_at`,
		uuid.New().String(),
		id,
		name,
		string(body),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save exercise %s: %w", name, err)
	}
	return nil
}

// LoadExercises returns every stored exercise document of program by name.
func (s *Storage) LoadExercises(ctx context.Context, program string) (map[string][]byte, error) {
	id, err := s.programID(ctx, program)
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, body FROM exercises WHERE program_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises of %s: %w", program, err)
	}
	defer rows.Close()

	docs := make(map[string][]byte)
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		docs[name] = []byte(body)
	}
	return docs, rows.Err()
}

// DeleteExercises drops the stored state of the named exercises, or of all
// of them when no names are given. The program itself stays.
func (s *Storage) DeleteExercises(ctx context.Context, program string, names ...string) error {
	id, err := s.programID(ctx, program)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		_, err = s.DB.ExecContext(ctx, `DELETE FROM exercises WHERE program_id = ?`, id)
		return err
	}
	for _, name := range names {
		if _, err := s.DB.ExecContext(ctx, `DELETE FROM exercises WHERE program_id = ? AND name = ?`, id, name); err != nil {
			return fmt.Errorf("Failed to delete exercise %s: %w", name, err)
		}
	}
	return nil
}

func (s *Storage) programID(ctx context.Context, name string) (string, error) {
	var id string
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM programs WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", errors.NotFound("program %q not found", name)
	}
	if err != nil {
		return "", fmt.Errorf("Failed to query program %s: %w", name, err)
	}
	return id, nil
}

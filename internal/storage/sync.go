package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// dumpTables lists the tables in dependency order.
var dumpTables = []string{"programs", "exercises"}

// Dump is the whole database as rows per table.
type Dump map[string][]map[string]any

// ExportTOML writes every row of every table as TOML.
func (s *Storage) ExportTOML(ctx context.Context, w io.Writer) error {
	dump := make(Dump)
	for _, table := range dumpTables {
		rows, err := s.tableRows(ctx, table)
		if err != nil {
			return err
		}
		dump[table] = rows
	}

	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

func (s *Storage) tableRows(ctx context.Context, table string) (rows []map[string]any, err error) {
	res, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer func() { err = multierr.Append(err, res.Close()) }()

	cols, err := res.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for table %s: %w", table, err)
	}

	for res.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := res.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row in table %s: %w", table, err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			switch v := values[i].(type) {
			case nil:
				// TOML has no null; absent keys import as NULL.
			case []byte:
				row[col] = string(v)
			default:
				row[col] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, res.Err()
}

// ImportTOML replaces the contents of every table with the rows of a dump
// written by ExportTOML.
func (s *Storage) ImportTOML(ctx context.Context, r io.Reader) error {
	var dump Dump
	if _, err := toml.NewDecoder(r).Decode(&dump); err != nil {
		return fmt.Errorf("Decoding TOML: %w", err)
	}
	for table := range dump {
		if !known(table) {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := len(dumpTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", dumpTables[i])); err != nil {
			return fmt.Errorf("Clearing table %s: %w", dumpTables[i], err)
		}
	}

	for _, table := range dumpTables {
		for _, row := range dump[table] {
			var columns, placeholders []string
			var values []any
			for col, val := range row {
				columns = append(columns, col)
				placeholders = append(placeholders, "?")
				values = append(values, val)
			}
			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("Inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Committing transaction: %w", err)
	}
	return nil
}

func known(table string) bool {
	for _, t := range dumpTables {
		if t == table {
			return true
		}
	}
	return false
}

// ExportPath returns where dumps are written by default,
// ~/.config/overload/db_dump.toml.
func ExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "overload")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// Package store exports pinyin mappings to a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/pinyingen/internal/hanzi"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS pinyin (
	position  INTEGER PRIMARY KEY,
	character TEXT NOT NULL UNIQUE,
	reading   TEXT NOT NULL
)`

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Save replaces the contents of the pinyin table at path with m.
func Save(ctx context.Context, path string, m *hanzi.Mapping) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM pinyin"); err != nil {
		return fmt.Errorf("clearing pinyin table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO pinyin (position, character, reading) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range m.Entries() {
		if _, err = stmt.ExecContext(ctx, i, e.Character, e.Pinyin); err != nil {
			return fmt.Errorf("inserting %s: %w", e.Character, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Load reads the pinyin table at path in position order.
func Load(ctx context.Context, path string) (*hanzi.Mapping, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT character, reading FROM pinyin ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying pinyin: %w", err)
	}
	defer rows.Close()

	m := hanzi.NewMapping()
	for rows.Next() {
		var char, reading string
		if err := rows.Scan(&char, &reading); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		m.Set(char, reading)
	}
	return m, rows.Err()
}

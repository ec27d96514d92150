package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

var _ RecordStore = (*SQLiteStore)(nil)

// SQLiteStore keeps each collection in a table of TEXT columns inside a
// single embedded database file. Insertion order is preserved via rowid.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadAll(ctx context.Context, collection string) ([]Record, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY rowid`, quoteIdent(collection))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	var records []Record
	values := make([]sql.NullString, len(cols))
	scan := make([]any, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		rec := make(Record, len(cols))
		for i, col := range cols {
			rec[col] = values[i].String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return records, nil
}

func (s *SQLiteStore) SaveAll(ctx context.Context, collection string, records []Record, fieldOrder []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	defer tx.Rollback()

	table := quoteIdent(collection)
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	colDefs := make([]string, len(fieldOrder))
	placeholders := make([]string, len(fieldOrder))
	for i, field := range fieldOrder {
		colDefs[i] = quoteIdent(field) + ` TEXT NOT NULL DEFAULT ''`
		placeholders[i] = "?"
	}
	create := fmt.Sprintf(`CREATE TABLE %s (%s)`, table, strings.Join(colDefs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, table, strings.Join(placeholders, ", "))
	args := make([]any, len(fieldOrder))
	for _, rec := range records {
		for i, field := range fieldOrder {
			args[i] = rec[field]
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("save %s: %w", collection, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

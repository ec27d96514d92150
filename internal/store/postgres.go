package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ RecordStore = (*PostgresStore)(nil)

// pgUndefinedTable is the SQLSTATE for a missing relation.
const pgUndefinedTable = "42P01"

// PostgresStore keeps each collection in a table of TEXT columns plus a
// hidden _seq column preserving insertion order across the full rewrite.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) LoadAll(ctx context.Context, collection string) ([]Record, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY "_seq"`, quoteIdent(collection))
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var records []Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		rec := make(Record, len(fields))
		for i, fd := range fields {
			if fd.Name == "_seq" {
				continue
			}
			if v, ok := values[i].(string); ok {
				rec[fd.Name] = v
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return records, nil
}

func (s *PostgresStore) SaveAll(ctx context.Context, collection string, records []Record, fieldOrder []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	defer tx.Rollback(ctx)

	table := quoteIdent(collection)
	if _, err := tx.Exec(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	colDefs := make([]string, 0, len(fieldOrder)+1)
	colDefs = append(colDefs, `"_seq" BIGINT NOT NULL`)
	placeholders := make([]string, 0, len(fieldOrder)+1)
	placeholders = append(placeholders, "$1")
	for i, field := range fieldOrder {
		colDefs = append(colDefs, quoteIdent(field)+` TEXT NOT NULL DEFAULT ''`)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
	}
	create := fmt.Sprintf(`CREATE TABLE %s (%s)`, table, strings.Join(colDefs, ", "))
	if _, err := tx.Exec(ctx, create); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s VALUES (%s)`, table, strings.Join(placeholders, ", "))
	for seq, rec := range records {
		args := make([]any, 0, len(fieldOrder)+1)
		args = append(args, int64(seq))
		for _, field := range fieldOrder {
			args = append(args, rec[field])
		}
		if _, err := tx.Exec(ctx, insert, args...); err != nil {
			return fmt.Errorf("save %s: %w", collection, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

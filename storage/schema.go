package storage

/*

database schema

One table holds everything: each row is a completed solve, keyed
by a generated id, with the puzzle's interchange string as a
natural unique key so repeat requests don't pile up duplicates.

*/

import (
	"context"

	"github.com/jackc/pgx/v5"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS solves (
		solveId   text PRIMARY KEY,
		puzzle    text NOT NULL UNIQUE,
		solution  text NOT NULL,
		steps     integer NOT NULL,
		elapsedUs bigint NOT NULL,
		created   timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS solves_created ON solves (created DESC)`,
}

// ensureSchema creates the solves table if it's missing.  The
// schema is small enough that plain DDL beats a migration tool.
func (s *Store) ensureSchema(ctx context.Context) error {
	return s.pgExecute(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

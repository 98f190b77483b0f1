package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

/*

solve records

*/

// A SolveRecord is the stored form of one completed solve.  It
// is JSON serializable so it can go into the cache as well as
// the database.
type SolveRecord struct {
	ID       string        `json:"id"`       // generated unique id
	Puzzle   string        `json:"puzzle"`   // 81-character input
	Solution string        `json:"solution"` // 81-digit solution
	Steps    int           `json:"steps"`    // assignment-trace length
	Elapsed  time.Duration `json:"elapsed"`  // wall-clock solve time
	Created  time.Time     `json:"created"`
}

// key: compute the cache key for a puzzle's solve record.
func key(puzzle string) string {
	return "SOLVED:" + puzzle
}

// LookupSolve checks the cache for a previously stored solve of
// the given puzzle.  A miss is not an error; it returns (nil,
// false, nil).
func (s *Store) LookupSolve(puzzle string) (*SolveRecord, bool, error) {
	var bytes []byte
	err := s.rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", key(puzzle)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("cache failure loading solve of %q: %w", puzzle, err)
		}
		return
	})
	if err != nil {
		return nil, false, err
	}
	if len(bytes) == 0 {
		return nil, false, nil
	}
	var rec SolveRecord
	if err := json.Unmarshal(bytes, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal solve of %q: %w", puzzle, err)
	}
	if rec.Puzzle != puzzle {
		return nil, false, fmt.Errorf("cached solve %q found under puzzle %q", rec.Puzzle, puzzle)
	}
	return &rec, true, nil
}

// SaveSolve writes a solve record through to both the cache and
// the database.  A missing ID or Created time is filled in.  Re-
// saving the same puzzle replaces the cache entry and leaves the
// database row alone.
func (s *Store) SaveSolve(ctx context.Context, rec *SolveRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Created.IsZero() {
		rec.Created = time.Now()
	}

	bytes, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal solve %q: %w", rec.ID, err)
	}
	err = s.rdExecute(func(conn redis.Conn) (err error) {
		if _, err = conn.Do("SET", key(rec.Puzzle), bytes); err != nil {
			err = fmt.Errorf("cache failure saving solve %q: %w", rec.ID, err)
		}
		return
	})
	if err != nil {
		return err
	}

	return s.pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO solves (solveId, puzzle, solution, steps, elapsedUs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (puzzle) DO NOTHING",
			rec.ID, rec.Puzzle, rec.Solution, rec.Steps,
			rec.Elapsed.Microseconds(), rec.Created)
		if err != nil {
			return fmt.Errorf("database error saving solve %q: %w", rec.ID, err)
		}
		return nil
	})
}

// RecentSolves returns the most recently stored solves, newest
// first, at most limit of them.
func (s *Store) RecentSolves(ctx context.Context, limit int) ([]SolveRecord, error) {
	var recs []SolveRecord
	err := s.pgExecute(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT solveId, puzzle, solution, steps, elapsedUs, created "+
				"FROM solves ORDER BY created DESC LIMIT $1", limit)
		if err != nil {
			return fmt.Errorf("database error listing solves: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var rec SolveRecord
			var us int64
			if err := rows.Scan(&rec.ID, &rec.Puzzle, &rec.Solution,
				&rec.Steps, &us, &rec.Created); err != nil {
				return fmt.Errorf("database error reading solve row: %w", err)
			}
			rec.Elapsed = time.Duration(us) * time.Microsecond
			recs = append(recs, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

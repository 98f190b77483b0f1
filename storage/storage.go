// Package storage persists completed solves.  It keeps a Redis
// cache in front of a Postgres database: solved grids are looked
// up in the cache first, and every new solve is written through
// to both.  Connection URLs come from the environment, with
// localhost defaults for development.
package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// A Store holds the open cache and database connections.  One
// Store is safe for concurrent use; each operation borrows a
// cache connection from the pool and runs database work inside a
// single transaction.
type Store struct {
	rdPool *redis.Pool
	rdURL  string
	pgPool *pgxpool.Pool
	pgURL  string
}

// Connect opens the cache and the database and makes sure the
// schema exists.  The cache URL comes from REDIS_URL and the
// database URL from DATABASE_URL.
func Connect(ctx context.Context) (*Store, error) {
	s := &Store{rdURL: rdURL(), pgURL: pgURL()}
	if err := s.rdConnect(); err != nil {
		return nil, err
	}
	if err := s.pgConnect(ctx); err != nil {
		s.rdClose()
		return nil, err
	}
	if err := s.ensureSchema(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the cache and database connections.
func (s *Store) Close() {
	s.pgClose()
	s.rdClose()
}

// CacheURL returns the URL of the connected cache.
func (s *Store) CacheURL() string { return s.rdURL }

// DatabaseURL returns the URL of the connected database.
func (s *Store) DatabaseURL() string { return s.pgURL }

/*

cache using Redis

*/

// rdURL: look up Redis info from the environment.
func rdURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return "redis://localhost:6379/"
}

// rdConnect: build the Redis pool.  Connections are verified
// with a ping when borrowed after sitting idle, because Redis
// connections can go away without warning.
func (s *Store) rdConnect() error {
	pool := &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(s.rdURL)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
	// dial once up front so a bad URL fails at connect time
	conn, err := pool.Dial()
	if err != nil {
		return fmt.Errorf("couldn't connect to cache at %q: %w", s.rdURL, err)
	}
	conn.Close()
	s.rdPool = pool
	return nil
}

func (s *Store) rdClose() {
	if s.rdPool != nil {
		s.rdPool.Close()
		s.rdPool = nil
	}
}

// rdExecute: run the body with a cache connection borrowed from
// the pool.  Panics inside the body are converted to errors so a
// cache failure never takes the caller down.
func (s *Store) rdExecute(body func(conn redis.Conn) error) (err error) {
	conn := s.rdPool.Get()
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("caught panic during rdExecute: %v", r)
			}
		}
	}()
	return body(conn)
}

/*

persistence using Postgres

*/

// pgURL - look up Postgres info from the environment.
func pgURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "postgres://localhost/xudoku?sslmode=disable"
}

// pgConnect: open the Postgres pool and verify it with a ping.
func (s *Store) pgConnect(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, s.pgURL)
	if err != nil {
		return fmt.Errorf("parse failure on Postgres URL %q: %w", s.pgURL, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("couldn't connect to db at %q: %w", s.pgURL, err)
	}
	s.pgPool = pool
	return nil
}

func (s *Store) pgClose() {
	if s.pgPool != nil {
		s.pgPool.Close()
		s.pgPool = nil
	}
}

// pgExecute: run the body inside a single transaction.  If the
// body errs out the transaction is rolled back, otherwise it's
// committed.  Panics inside the body are converted to errors.
func (s *Store) pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %w", err)
	}
	wrapped := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("caught panic during pgExecute: %v", r)
				}
			}
		}()
		return body(tx)
	}
	if err := wrapped(); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryDSN keeps all state in process memory; it is lost on exit.
const MemoryDSN = ":memory:"

// ErrNotFound is returned when a session, favorite or settings row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the SQLite database at dsn and applies migrations. A busy
// database is retried with exponential backoff; any other failure is returned
// immediately.
func Open(dsn string) (*sql.DB, *Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if dsn == MemoryDSN {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	} else {
		db.Exec("PRAGMA journal_mode=WAL")
	}
	db.Exec("PRAGMA busy_timeout=5000")

	st := New(db)
	operation := func() error {
		if err := db.Ping(); err != nil {
			return retryable(fmt.Errorf("ping: %w", err))
		}
		if err := st.Migrate(); err != nil {
			return retryable(fmt.Errorf("migrate: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	notify := func(err error, d time.Duration) {
		log.Printf("store: database busy, retrying in %s: %v", d, err)
	}
	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, st, nil
}

func retryable(err error) error {
	if isBusy(err) {
		return err
	}
	return backoff.Permanent(err)
}

func isBusy(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code() & 0xff
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}

// Ping reports whether the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Package sqlite implements the local entity store on SQLite.
//
// Every save computes the changed-field delta against the stored row and,
// after the transaction commits, notifies the listeners registered for the
// entity kind with the caller's context.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// gooseMu защищает глобальное состояние goose (dialect, base FS)
var gooseMu sync.Mutex

// Store represents SQLite storage implementation
type Store struct {
	db        *sql.DB
	listeners map[models.Kind][]storage.Listener
	mu        sync.RWMutex
}

var _ storage.Store = (*Store)(nil)

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string) (*Store, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Одно соединение: транзакции чтение-запись сериализуются,
	// а :memory: база остается одной и той же
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{
		db:        db,
		listeners: make(map[models.Kind][]storage.Listener),
	}

	// Запускаем миграции
	if err := store.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (s *Store) runMigrations(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// OnModelUpdated registers a listener for committed writes of kind.
func (s *Store) OnModelUpdated(kind models.Kind, listener storage.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[kind] = append(s.listeners[kind], listener)
}

// notify вызывает слушателей после коммита. Пустая дельта не рассылается.
func (s *Store) notify(ctx context.Context, kind models.Kind, entity any, changed models.FieldSet) {
	if len(changed) == 0 {
		return
	}

	s.mu.RLock()
	listeners := append([]storage.Listener(nil), s.listeners[kind]...)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, entity, changed.Clone())
	}
}

// inTx выполняет fn в транзакции
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

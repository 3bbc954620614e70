package sqlite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifedash/internal/logger"
	"github.com/julianstephens/lifedash/internal/migration"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type Store struct {
	storage.Journal
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() error {
	db, err := sqlx.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection, so a :memory: database survives between queries.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return fmt.Errorf("configuring database: %w", err)
	}
	s.DB = db
	return nil
}

// Init creates the database file if needed, migrates it, and seeds default
// settings.
func (s *Store) Init() error {
	if s.path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if s.DB == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return s.EnsureSettings()
}

// Load opens an existing database and checks its schema version.
func (s *Store) Load() error {
	if s.DB != nil {
		return nil
	}
	if s.path != MemoryPath {
		if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotInitialized
		}
	}
	if err := s.open(); err != nil {
		return err
	}
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.Validate()
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	return err
}

func (s *Store) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("loading sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.DB, sub), nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

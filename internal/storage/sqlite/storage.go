package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS id_counter (
	id   INTEGER PRIMARY KEY CHECK (id = 0),
	next INTEGER NOT NULL
);
INSERT OR IGNORE INTO id_counter (id, next) VALUES (0, 0);
CREATE TABLE IF NOT EXISTS players (
	id   INTEGER PRIMARY KEY,
	data BLOB NOT NULL
);
`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (creating if missing) the database file and applies the schema
func New(cfg Config) (*Storage, error) {
	dir := filepath.Dir(cfg.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=FULL",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// NextPlayerID advances the counter row in a single statement, so the id is
// committed before it is returned
func (s *Storage) NextPlayerID(ctx context.Context) (model.PlayerID, error) {
	var next int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE id_counter SET next = next + 1 WHERE id = 0 RETURNING next`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("increment id counter: %w", err)
	}
	return model.PlayerID(next - 1), nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := storage.EncodePlayer(player)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO players (id, data) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		int64(player.ID), data,
	)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM players WHERE id = ?`, int64(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return storage.DecodePlayer(data)
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `DELETE FROM players WHERE id = ? RETURNING data`, int64(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return storage.DecodePlayer(data)
}

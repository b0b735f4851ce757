package mapstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"trackmap/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS track_maps (
		name        TEXT PRIMARY KEY,
		track_id    INTEGER NOT NULL,
		config_name TEXT NOT NULL,
		points      TEXT NOT NULL,
		point_count INTEGER NOT NULL,
		updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

// SQLiteStore keeps maps in a single SQLite table keyed by document name.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore opens (or creates) the database at dsn.
func NewSQLiteStore(dsn string, logger *log.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open map db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create map schema: %w", err)
	}
	return &SQLiteStore{db: db, logger: discardLogger(logger)}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(id models.TrackIdentity) (models.Path, bool) {
	var doc string
	err := s.db.QueryRow(`SELECT points FROM track_maps WHERE name = ?`, id.DocumentName()).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		s.logger.Printf("trackmap: query stored map for %s: %v", id, err)
		return nil, false
	}
	p, err := Decode([]byte(doc))
	if err != nil {
		s.logger.Printf("trackmap: ignoring stored map for %s: %v", id, err)
		return nil, false
	}
	return p, true
}

func (s *SQLiteStore) Save(id models.TrackIdentity, p models.Path) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO track_maps (name, track_id, config_name, points, point_count, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			points = excluded.points,
			point_count = excluded.point_count,
			updated_at = CURRENT_TIMESTAMP`,
		id.DocumentName(), id.ID, id.Config, string(data), len(p))
	if err != nil {
		return fmt.Errorf("save map for %s: %w", id, err)
	}
	return nil
}

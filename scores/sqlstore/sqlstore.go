package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.
	"github.com/pkg/errors"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/scores"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	score INTEGER NOT NULL CHECK (score >= 0),
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to reach database")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate database")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// HighScore reads the stored score, a missing row is zero.
func (s *Store) HighScore(ctx context.Context, key string) (int, error) {
	r := s.db.QueryRowContext(ctx, `SELECT score FROM high_scores WHERE key=$1`, key)

	var score int
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "unable to read high score %s", key)
	}
	return score, nil
}

// SaveHighScore upserts the score, keeping the larger of the stored and
// new value.
func (s *Store) SaveHighScore(ctx context.Context, key string, score int) (int, error) {
	if score < 0 {
		return 0, scores.ErrNegativeScore
	}

	r := s.db.QueryRowContext(ctx, `
	INSERT INTO high_scores (key, score, updated) VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET score=GREATEST(high_scores.score, EXCLUDED.score),
		updated=CASE WHEN EXCLUDED.score > high_scores.score THEN now() ELSE high_scores.updated END
	RETURNING score`,
		key, score,
	)

	var stored int
	if err := r.Scan(&stored); err != nil {
		return 0, errors.Wrapf(err, "unable to save high score %s", key)
	}
	return stored, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

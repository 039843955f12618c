package db

import (
	"context"
	"fmt"
)

// Statements are idempotent; the later ones upgrade tables created by older releases.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS posts (
	    id SERIAL PRIMARY KEY,
	    title TEXT NOT NULL,
	    body TEXT NOT NULL,
	    tags TEXT[] NOT NULL DEFAULT '{}',
	    thumbnail TEXT NOT NULL,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`ALTER TABLE posts ADD COLUMN IF NOT EXISTS description TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE posts ADD COLUMN IF NOT EXISTS thumbnail_blur TEXT`,
	`ALTER TABLE posts ADD COLUMN IF NOT EXISTS view_count BIGINT NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts (created_at DESC)`,
}

func (s *Store) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

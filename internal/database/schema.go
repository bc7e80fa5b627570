package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the three booking tables.  genres is a JSON array and
// shows cascade on delete of either side, matching the store's policy.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(120) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		address             VARCHAR(120) NOT NULL,
		phone               VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(500) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		genres              JSON NOT NULL,
		seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		KEY idx_venues_area (city, state)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(120) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(120) NOT NULL,
		phone               VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(500) NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		genres              JSON NOT NULL,
		seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		artist_id  BIGINT UNSIGNED NOT NULL,
		venue_id   BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		KEY idx_shows_artist (artist_id),
		KEY idx_shows_venue (venue_id),
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE,
		CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing tables.  It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

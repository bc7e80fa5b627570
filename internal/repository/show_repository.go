// Package repository contains data access logic for Show operations.  A Show
// is a pure association between one artist and one venue at a start time.
// Start times are stored as DATETIME in UTC; the DSN sets parseTime and
// loc=UTC so scanned values come back as UTC time.Time.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MjedAl/Fyyur/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a show after verifying, in the same transaction, that
// both the artist and the venue exist.  The referenced rows are share
// locked so a concurrent cascade delete has to wait for this insert to
// commit (and then removes the show too) or makes this insert fail with a
// *ReferenceError.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockRow(ctx, tx, `SELECT 1 FROM artists WHERE id = ? LOCK IN SHARE MODE`, "artist_id", s.ArtistID); err != nil {
		return err
	}
	if err := lockRow(ctx, tx, `SELECT 1 FROM venues WHERE id = ? LOCK IN SHARE MODE`, "venue_id", s.VenueID); err != nil {
		return err
	}

	start := s.StartTime.UTC().Truncate(time.Second)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`,
		s.ArtistID, s.VenueID, start)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translate(err)
	}
	s.ID = uint64(id)
	s.StartTime = start
	return nil
}

func lockRow(ctx context.Context, tx *sql.Tx, q, field string, id uint64) error {
	var one int
	if err := tx.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ReferenceError{Field: field, ID: id}
		}
		return translate(err)
	}
	return nil
}

// GetByID retrieves a show by its ID.  It returns ErrNotFound if there is
// no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, artist_id, venue_id, start_time FROM shows WHERE id = ?`
	var s model.Show
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.StartTime = s.StartTime.UTC()
	return &s, nil
}

// ListAll returns every show ordered by id.
func (r *ShowRepo) ListAll(ctx context.Context) ([]*model.Show, error) {
	return r.list(ctx, `SELECT id, artist_id, venue_id, start_time FROM shows ORDER BY id`)
}

// ListByVenue returns the shows booked at a venue ordered by id.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]*model.Show, error) {
	return r.list(ctx, `SELECT id, artist_id, venue_id, start_time FROM shows WHERE venue_id = ? ORDER BY id`, venueID)
}

// ListByArtist returns the shows an artist is booked into ordered by id.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]*model.Show, error) {
	return r.list(ctx, `SELECT id, artist_id, venue_id, start_time FROM shows WHERE artist_id = ? ORDER BY id`, artistID)
}

func (r *ShowRepo) list(ctx context.Context, q string, args ...any) ([]*model.Show, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Show, 0)
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime); err != nil {
			return nil, err
		}
		s.StartTime = s.StartTime.UTC()
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a single show.
func (r *ShowRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

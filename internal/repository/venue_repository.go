package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MjedAl/Fyyur/internal/model"
)

// VenueRepo encapsulates all queries against the venues table.  It
// depends on a sql.DB connection which is configured in package database.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, city, state, address, phone, website, facebook_link,
	image_link, genres, seeking_talent, seeking_description`

func scanVenue(row interface{ Scan(...any) error }) (*model.Venue, error) {
	var v model.Venue
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
		&v.FacebookLink, &v.ImageLink, &v.Genres, &v.SeekingTalent, &v.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByID fetches a venue by its ID.  It returns ErrNotFound if no row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	return r.list(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY id")
}

// ListRecent returns the newest venues first, at most limit rows.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]*model.Venue, error) {
	return r.list(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY id DESC LIMIT ?", limit)
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new venue.  On success v.ID holds the generated id.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, website, facebook_link,
		image_link, genres, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.Website,
		v.FacebookLink, v.ImageLink, v.Genres, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// Update overwrites every column of the venue row identified by v.ID in a
// single statement, so readers see either the old or the new row.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues SET name = ?, city = ?, state = ?, address = ?, phone = ?, website = ?,
		facebook_link = ?, image_link = ?, genres = ?, seeking_talent = ?, seeking_description = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.Website,
		v.FacebookLink, v.ImageLink, v.Genres, v.SeekingTalent, v.SeekingDescription, v.ID)
	if err != nil {
		return translate(err)
	}
	// RowsAffected is 0 for an unchanged row as well, so existence is
	// checked separately.
	return r.exists(ctx, v.ID)
}

func (r *VenueRepo) exists(ctx context.Context, id uint64) error {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM venues WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a venue and all shows booked there.  The venue row is
// locked first so concurrent show inserts referencing it either finish
// before the delete or fail afterwards.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? FOR UPDATE`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return translate(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return translate(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return translate(err)
	}
	return translate(tx.Commit())
}

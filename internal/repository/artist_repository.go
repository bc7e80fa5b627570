package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MjedAl/Fyyur/internal/model"
)

// ArtistRepo encapsulates all queries against the artists table.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, website, facebook_link,
	image_link, genres, seeking_venue, seeking_description`

func scanArtist(row interface{ Scan(...any) error }) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
		&a.FacebookLink, &a.ImageLink, &a.Genres, &a.SeekingVenue, &a.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID fetches an artist by id, or ErrNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := "SELECT " + artistColumns + " FROM artists WHERE id = ?"
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*model.Artist, error) {
	return r.list(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id")
}

// ListRecent returns the newest artists first, at most limit rows.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]*model.Artist, error) {
	return r.list(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id DESC LIMIT ?", limit)
}

func (r *ArtistRepo) list(ctx context.Context, q string, args ...any) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new artist and sets a.ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, website, facebook_link,
		image_link, genres, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Website,
		a.FacebookLink, a.ImageLink, a.Genres, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// Update overwrites every column of the artist row identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, website = ?,
		facebook_link = ?, image_link = ?, genres = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Website,
		a.FacebookLink, a.ImageLink, a.Genres, a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return translate(err)
	}
	var one int
	err = r.db.QueryRowContext(ctx, "SELECT 1 FROM artists WHERE id = ?", a.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes an artist and every show they were booked into, inside
// one transaction.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? FOR UPDATE`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return translate(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return translate(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		return translate(err)
	}
	return translate(tx.Commit())
}

package repository

import (
	"context"
	"database/sql"

	"github.com/MjedAl/Fyyur/internal/model"
)

// MySQLStore is the persistent Store.  It composes the per-table
// repositories over one connection pool.
type MySQLStore struct {
	Venues  *VenueRepo
	Artists *ArtistRepo
	Shows   *ShowRepo
}

// NewMySQLStore builds the three repositories over db.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{
		Venues:  NewVenueRepo(db),
		Artists: NewArtistRepo(db),
		Shows:   NewShowRepo(db),
	}
}

var _ Store = (*MySQLStore)(nil)

func (s *MySQLStore) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	return s.Venues.GetByID(ctx, id)
}

func (s *MySQLStore) ListVenues(ctx context.Context) ([]*model.Venue, error) {
	return s.Venues.ListAll(ctx)
}

func (s *MySQLStore) ListRecentVenues(ctx context.Context, limit int) ([]*model.Venue, error) {
	return s.Venues.ListRecent(ctx, limit)
}

func (s *MySQLStore) CreateVenue(ctx context.Context, v *model.Venue) error {
	return s.Venues.Create(ctx, v)
}

func (s *MySQLStore) UpdateVenue(ctx context.Context, v *model.Venue) error {
	return s.Venues.Update(ctx, v)
}

func (s *MySQLStore) DeleteVenue(ctx context.Context, id uint64) error {
	return s.Venues.Delete(ctx, id)
}

func (s *MySQLStore) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.Artists.GetByID(ctx, id)
}

func (s *MySQLStore) ListArtists(ctx context.Context) ([]*model.Artist, error) {
	return s.Artists.ListAll(ctx)
}

func (s *MySQLStore) ListRecentArtists(ctx context.Context, limit int) ([]*model.Artist, error) {
	return s.Artists.ListRecent(ctx, limit)
}

func (s *MySQLStore) CreateArtist(ctx context.Context, a *model.Artist) error {
	return s.Artists.Create(ctx, a)
}

func (s *MySQLStore) UpdateArtist(ctx context.Context, a *model.Artist) error {
	return s.Artists.Update(ctx, a)
}

func (s *MySQLStore) DeleteArtist(ctx context.Context, id uint64) error {
	return s.Artists.Delete(ctx, id)
}

func (s *MySQLStore) GetShow(ctx context.Context, id uint64) (*model.Show, error) {
	return s.Shows.GetByID(ctx, id)
}

func (s *MySQLStore) ListShows(ctx context.Context) ([]*model.Show, error) {
	return s.Shows.ListAll(ctx)
}

func (s *MySQLStore) ListShowsByVenue(ctx context.Context, venueID uint64) ([]*model.Show, error) {
	return s.Shows.ListByVenue(ctx, venueID)
}

func (s *MySQLStore) ListShowsByArtist(ctx context.Context, artistID uint64) ([]*model.Show, error) {
	return s.Shows.ListByArtist(ctx, artistID)
}

func (s *MySQLStore) CreateShow(ctx context.Context, sh *model.Show) error {
	return s.Shows.Create(ctx, sh)
}

func (s *MySQLStore) DeleteShow(ctx context.Context, id uint64) error {
	return s.Shows.Delete(ctx, id)
}

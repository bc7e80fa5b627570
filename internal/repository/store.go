package repository

import (
	"context"

	"github.com/MjedAl/Fyyur/internal/model"
)

// Store is the entity store consumed by the booking core.  Every mutating
// method is atomic: either all field changes and reference checks succeed
// or the store is left unchanged.  List methods return records in id order
// and never return nil slices on success.
//
// Deleting a venue or artist cascades to the shows that reference it.
type Store interface {
	GetVenue(ctx context.Context, id uint64) (*model.Venue, error)
	ListVenues(ctx context.Context) ([]*model.Venue, error)
	ListRecentVenues(ctx context.Context, limit int) ([]*model.Venue, error)
	CreateVenue(ctx context.Context, v *model.Venue) error
	UpdateVenue(ctx context.Context, v *model.Venue) error
	DeleteVenue(ctx context.Context, id uint64) error

	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)
	ListArtists(ctx context.Context) ([]*model.Artist, error)
	ListRecentArtists(ctx context.Context, limit int) ([]*model.Artist, error)
	CreateArtist(ctx context.Context, a *model.Artist) error
	UpdateArtist(ctx context.Context, a *model.Artist) error
	DeleteArtist(ctx context.Context, id uint64) error

	GetShow(ctx context.Context, id uint64) (*model.Show, error)
	ListShows(ctx context.Context) ([]*model.Show, error)
	ListShowsByVenue(ctx context.Context, venueID uint64) ([]*model.Show, error)
	ListShowsByArtist(ctx context.Context, artistID uint64) ([]*model.Show, error)
	CreateShow(ctx context.Context, s *model.Show) error
	DeleteShow(ctx context.Context, id uint64) error
}

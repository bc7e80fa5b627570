package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// runStoreContract exercises behaviour every Store implementation shares.
// newStore must hand out an empty store on each call.
func runStoreContract(t *testing.T, newStore func(t *testing.T) repository.Store) {
	t.Run("venue round trip", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v := &model.Venue{
			Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Address: "1015 Folsom Street", Phone: "123-123-1234",
			Website: "https://www.themusicalhop.com", Genres: model.Genres{"Jazz", "Swing"},
			SeekingTalent: true, SeekingDescription: "Looking for a local artist",
		}
		require.NoError(t, s.CreateVenue(ctx, v))
		require.NotZero(t, v.ID)

		got, err := s.GetVenue(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		got.City = "Oakland"
		got.Genres = model.Genres{"Folk"}
		require.NoError(t, s.UpdateVenue(ctx, got))
		again, err := s.GetVenue(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "Oakland", again.City)
		assert.Equal(t, model.Genres{"Folk"}, again.Genres)

		missing := *got
		missing.ID = v.ID + 1000
		assert.ErrorIs(t, s.UpdateVenue(ctx, &missing), repository.ErrNotFound)
		_, err = s.GetVenue(ctx, v.ID+1000)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("artist round trip", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		a := &model.Artist{
			Name: "Guns N Petals", City: "San Francisco", State: "CA",
			Genres: model.Genres{"Rock n Roll"}, SeekingVenue: true,
		}
		require.NoError(t, s.CreateArtist(ctx, a))
		got, err := s.GetArtist(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)

		assert.ErrorIs(t, s.DeleteArtist(ctx, a.ID+1000), repository.ErrNotFound)
	})

	t.Run("lists are ordered and never nil", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		venues, err := s.ListVenues(ctx)
		require.NoError(t, err)
		assert.NotNil(t, venues)
		assert.Empty(t, venues)
		shows, err := s.ListShows(ctx)
		require.NoError(t, err)
		assert.NotNil(t, shows)

		var ids []uint64
		for _, name := range []string{"A", "B", "C"} {
			v := newVenue(name)
			require.NoError(t, s.CreateVenue(ctx, v))
			ids = append(ids, v.ID)
		}
		venues, err = s.ListVenues(ctx)
		require.NoError(t, err)
		require.Len(t, venues, 3)
		for i, v := range venues {
			assert.Equal(t, ids[i], v.ID)
		}

		recent, err := s.ListRecentVenues(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, ids[2], recent[0].ID)
		assert.Equal(t, ids[1], recent[1].ID)
	})

	t.Run("show references are checked", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v := newVenue("The Musical Hop")
		require.NoError(t, s.CreateVenue(ctx, v))
		a := newArtist("Guns N Petals")
		require.NoError(t, s.CreateArtist(ctx, a))

		err := s.CreateShow(ctx, &model.Show{ArtistID: a.ID + 1000, VenueID: v.ID, StartTime: time.Now()})
		require.ErrorIs(t, err, repository.ErrInvalidReference)
		var ref *repository.ReferenceError
		require.True(t, errors.As(err, &ref))
		assert.Equal(t, "artist_id", ref.Field)

		err = s.CreateShow(ctx, &model.Show{ArtistID: a.ID, VenueID: v.ID + 1000, StartTime: time.Now()})
		require.True(t, errors.As(err, &ref))
		assert.Equal(t, "venue_id", ref.Field)

		shows, err := s.ListShows(ctx)
		require.NoError(t, err)
		assert.Empty(t, shows)
	})

	t.Run("show start time is stored in UTC at second precision", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v := newVenue("The Musical Hop")
		require.NoError(t, s.CreateVenue(ctx, v))
		a := newArtist("Guns N Petals")
		require.NoError(t, s.CreateArtist(ctx, a))

		pst := time.FixedZone("PST", -8*60*60)
		start := time.Date(2035, time.April, 1, 12, 30, 15, 999, pst)
		sh := &model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: start}
		require.NoError(t, s.CreateShow(ctx, sh))

		got, err := s.GetShow(ctx, sh.ID)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2035, time.April, 1, 20, 30, 15, 0, time.UTC), got.StartTime)
		assert.Equal(t, time.UTC, got.StartTime.Location())
	})

	t.Run("deleting a venue cascades to its shows", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v1, v2 := newVenue("V1"), newVenue("V2")
		require.NoError(t, s.CreateVenue(ctx, v1))
		require.NoError(t, s.CreateVenue(ctx, v2))
		a := newArtist("Guns N Petals")
		require.NoError(t, s.CreateArtist(ctx, a))
		start := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateShow(ctx, &model.Show{ArtistID: a.ID, VenueID: v1.ID, StartTime: start}))
		kept := &model.Show{ArtistID: a.ID, VenueID: v2.ID, StartTime: start}
		require.NoError(t, s.CreateShow(ctx, kept))

		require.NoError(t, s.DeleteVenue(ctx, v1.ID))
		_, err := s.GetVenue(ctx, v1.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		byArtist, err := s.ListShowsByArtist(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, byArtist, 1)
		assert.Equal(t, kept.ID, byArtist[0].ID)

		byVenue, err := s.ListShowsByVenue(ctx, v1.ID)
		require.NoError(t, err)
		assert.Empty(t, byVenue)

		assert.ErrorIs(t, s.DeleteVenue(ctx, v1.ID), repository.ErrNotFound)
	})

	t.Run("deleting an artist cascades to their shows", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v := newVenue("V1")
		require.NoError(t, s.CreateVenue(ctx, v))
		a := newArtist("Guns N Petals")
		require.NoError(t, s.CreateArtist(ctx, a))
		require.NoError(t, s.CreateShow(ctx, &model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: time.Now()}))

		require.NoError(t, s.DeleteArtist(ctx, a.ID))
		byVenue, err := s.ListShowsByVenue(ctx, v.ID)
		require.NoError(t, err)
		assert.Empty(t, byVenue)
	})

	t.Run("delete show", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		v := newVenue("V1")
		require.NoError(t, s.CreateVenue(ctx, v))
		a := newArtist("Guns N Petals")
		require.NoError(t, s.CreateArtist(ctx, a))
		sh := &model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: time.Now()}
		require.NoError(t, s.CreateShow(ctx, sh))

		require.NoError(t, s.DeleteShow(ctx, sh.ID))
		_, err := s.GetShow(ctx, sh.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, s.DeleteShow(ctx, sh.ID), repository.ErrNotFound)
	})
}

func newVenue(name string) *model.Venue {
	return &model.Venue{Name: name, City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Genres: model.Genres{}}
}

func newArtist(name string) *model.Artist {
	return &model.Artist{Name: name, City: "San Francisco", State: "CA", Genres: model.Genres{}}
}

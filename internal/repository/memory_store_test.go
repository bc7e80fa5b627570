package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/repository"
)

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, func(*testing.T) repository.Store { return repository.NewMemoryStore() })
}

func TestMemoryStoreDoesNotShareRecords(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	v := newVenue("The Musical Hop")
	v.Genres = model.Genres{"Jazz"}
	require.NoError(t, s.CreateVenue(ctx, v))

	v.Genres[0] = "Metal"
	v.Name = "changed"
	got, err := s.GetVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
	assert.Equal(t, model.Genres{"Jazz"}, got.Genres)

	got.Genres[0] = "Blues"
	again, err := s.GetVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Genres{"Jazz"}, again.Genres)
}

func TestMemoryStoreListRecentLimit(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	for _, name := range []string{"A", "B"} {
		require.NoError(t, s.CreateArtist(ctx, newArtist(name)))
	}
	all, err := s.ListRecentArtists(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := s.ListRecentArtists(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStoreCascadeRacesShowInsert(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()
	v := newVenue("V1")
	require.NoError(t, s.CreateVenue(ctx, v))
	a := newArtist("Guns N Petals")
	require.NoError(t, s.CreateArtist(ctx, a))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.CreateShow(ctx, &model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: time.Unix(int64(i), 0)})
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.DeleteVenue(ctx, v.ID))
	}()
	wg.Wait()

	shows, err := s.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

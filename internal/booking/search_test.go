package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MjedAl/Fyyur/internal/repository"
)

func TestSearchArtistsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	a1 := seedArtist(t, store, "Smashing Pumpkins")
	a2 := seedArtist(t, store, "Smash Bros Band")
	seedArtist(t, store, "Guns N Petals")

	res, err := Search(ctx, store, KindArtist, "smash", refTime)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Data, 2)
	assert.Equal(t, a1.ID, res.Data[0].ID)
	assert.Equal(t, a2.ID, res.Data[1].ID)

	upper, err := Search(ctx, store, KindArtist, "SMASH", refTime)
	require.NoError(t, err)
	assert.Equal(t, res, upper)
}

func TestSearchEmptyTermMatchesAll(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, store, "Park Square Live Music & Coffee", "San Francisco", "CA")
	seedVenue(t, store, "The Dueling Pianos Bar", "New York", "NY")

	res, err := Search(ctx, store, KindVenue, "", refTime)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Data, 3)
}

func TestSearchNoMatchIsEmptyPayload(t *testing.T) {
	res, err := Search(context.Background(), repository.NewMemoryStore(), KindVenue, "nothing", refTime)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestSearchUpcomingCountsAgreeWithDetail(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	v := seedVenue(t, store, "The Musical Hop", "San Francisco", "CA")
	a := seedArtist(t, store, "Guns N Petals")
	seedShow(t, store, a.ID, v.ID, refTime)
	seedShow(t, store, a.ID, v.ID, refTime.Add(time.Second))
	seedShow(t, store, a.ID, v.ID, refTime.Add(-time.Second))

	venues, err := Search(ctx, store, KindVenue, "hop", refTime)
	require.NoError(t, err)
	require.Equal(t, 1, venues.Count)

	detail, err := BuildVenueDetail(ctx, store, v.ID, refTime)
	require.NoError(t, err)
	assert.Equal(t, 1, venues.Data[0].NumUpcomingShows)
	assert.Equal(t, detail.UpcomingShowsCount, venues.Data[0].NumUpcomingShows)

	artists, err := Search(ctx, store, KindArtist, "petals", refTime)
	require.NoError(t, err)
	artistDetail, err := BuildArtistDetail(ctx, store, a.ID, refTime)
	require.NoError(t, err)
	assert.Equal(t, artistDetail.UpcomingShowsCount, artists.Data[0].NumUpcomingShows)
}

func TestSearchUnknownKind(t *testing.T) {
	_, err := Search(context.Background(), repository.NewMemoryStore(), Kind("show"), "", refTime)
	assert.Error(t, err)
}

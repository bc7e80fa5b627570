package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/queue"
	"github.com/MjedAl/Fyyur/internal/repository"
)

var refTime = time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refTime }

func seedVenue(t *testing.T, store repository.Store, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state, Address: "1015 Folsom Street", Genres: model.Genres{}}
	require.NoError(t, store.CreateVenue(context.Background(), v))
	return v
}

func seedArtist(t *testing.T, store repository.Store, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{Name: name, City: "San Francisco", State: "CA", ImageLink: "https://img.example.com/" + name, Genres: model.Genres{}}
	require.NoError(t, store.CreateArtist(context.Background(), a))
	return a
}

func seedShow(t *testing.T, store repository.Store, artistID, venueID uint64, start time.Time) *model.Show {
	t.Helper()
	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	require.NoError(t, store.CreateShow(context.Background(), s))
	return s
}

// orphanStore hides some artists and venues from lookups while leaving the
// shows that reference them in place.
type orphanStore struct {
	*repository.MemoryStore
	missingArtists map[uint64]bool
	missingVenues  map[uint64]bool
}

func (s orphanStore) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	if s.missingArtists[id] {
		return nil, repository.ErrNotFound
	}
	return s.MemoryStore.GetArtist(ctx, id)
}

func (s orphanStore) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	if s.missingVenues[id] {
		return nil, repository.ErrNotFound
	}
	return s.MemoryStore.GetVenue(ctx, id)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.ActivityEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

// cascadingStore deletes a venue right after shows have been listed,
// interleaving a cascade delete between the show read and the lookups
// that resolve each show's venue and artist.
type cascadingStore struct {
	*repository.MemoryStore
	venueID uint64
}

func (s cascadingStore) afterList(ctx context.Context, shows []*model.Show, err error) ([]*model.Show, error) {
	if err == nil {
		_ = s.MemoryStore.DeleteVenue(ctx, s.venueID)
	}
	return shows, err
}

func (s cascadingStore) ListShows(ctx context.Context) ([]*model.Show, error) {
	shows, err := s.MemoryStore.ListShows(ctx)
	return s.afterList(ctx, shows, err)
}

func (s cascadingStore) ListShowsByArtist(ctx context.Context, artistID uint64) ([]*model.Show, error) {
	shows, err := s.MemoryStore.ListShowsByArtist(ctx, artistID)
	return s.afterList(ctx, shows, err)
}

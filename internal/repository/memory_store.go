package repository

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MjedAl/Fyyur/internal/model"
)

// MemoryStore is an in-process Store.  A single RWMutex guards all three
// collections, so every operation observes one consistent snapshot and a
// show can never be inserted against a venue or artist that a concurrent
// delete is removing.  Records are cloned on the way in and out; callers
// never share memory with the store.
type MemoryStore struct {
	mu sync.RWMutex

	venues  map[uint64]*model.Venue
	artists map[uint64]*model.Artist
	shows   map[uint64]*model.Show

	nextVenueID  uint64
	nextArtistID uint64
	nextShowID   uint64
}

// NewMemoryStore returns an empty store.  Each test can own its instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		venues:  map[uint64]*model.Venue{},
		artists: map[uint64]*model.Artist{},
		shows:   map[uint64]*model.Show{},
	}
}

var _ Store = (*MemoryStore)(nil)

// sortedIDs returns the keys of m in ascending order.
func sortedIDs[T any](m map[uint64]T) []uint64 {
	return slices.Sorted(maps.Keys(m))
}

// Venues

func (s *MemoryStore) GetVenue(_ context.Context, id uint64) (*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v.Clone(), nil
}

func (s *MemoryStore) ListVenues(_ context.Context) ([]*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Venue, 0, len(s.venues))
	for _, id := range sortedIDs(s.venues) {
		out = append(out, s.venues[id].Clone())
	}
	return out, nil
}

// ListRecentVenues returns at most limit venues, highest id first.
func (s *MemoryStore) ListRecentVenues(_ context.Context, limit int) ([]*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := sortedIDs(s.venues)
	slices.Reverse(ids)
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*model.Venue, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.venues[id].Clone())
	}
	return out, nil
}

// CreateVenue assigns the next id to v and stores a copy of it.
func (s *MemoryStore) CreateVenue(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextVenueID++
	v.ID = s.nextVenueID
	s.venues[v.ID] = v.Clone()
	return nil
}

// UpdateVenue replaces every field of the stored venue with v's.
func (s *MemoryStore) UpdateVenue(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[v.ID]; !ok {
		return ErrNotFound
	}
	s.venues[v.ID] = v.Clone()
	return nil
}

// DeleteVenue removes the venue and every show booked there.
func (s *MemoryStore) DeleteVenue(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return ErrNotFound
	}
	for sid, sh := range s.shows {
		if sh.VenueID == id {
			delete(s.shows, sid)
		}
	}
	delete(s.venues, id)
	return nil
}

// Artists

func (s *MemoryStore) GetArtist(_ context.Context, id uint64) (*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Clone(), nil
}

func (s *MemoryStore) ListArtists(_ context.Context) ([]*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Artist, 0, len(s.artists))
	for _, id := range sortedIDs(s.artists) {
		out = append(out, s.artists[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) ListRecentArtists(_ context.Context, limit int) ([]*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := sortedIDs(s.artists)
	slices.Reverse(ids)
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*model.Artist, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.artists[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) CreateArtist(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextArtistID++
	a.ID = s.nextArtistID
	s.artists[a.ID] = a.Clone()
	return nil
}

func (s *MemoryStore) UpdateArtist(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[a.ID]; !ok {
		return ErrNotFound
	}
	s.artists[a.ID] = a.Clone()
	return nil
}

// DeleteArtist removes the artist and every show they were booked into.
func (s *MemoryStore) DeleteArtist(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[id]; !ok {
		return ErrNotFound
	}
	for sid, sh := range s.shows {
		if sh.ArtistID == id {
			delete(s.shows, sid)
		}
	}
	delete(s.artists, id)
	return nil
}

// Shows

func (s *MemoryStore) GetShow(_ context.Context, id uint64) (*model.Show, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shows[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *sh
	return &c, nil
}

func (s *MemoryStore) ListShows(_ context.Context) ([]*model.Show, error) {
	return s.filterShows(func(*model.Show) bool { return true }), nil
}

func (s *MemoryStore) ListShowsByVenue(_ context.Context, venueID uint64) ([]*model.Show, error) {
	return s.filterShows(func(sh *model.Show) bool { return sh.VenueID == venueID }), nil
}

func (s *MemoryStore) ListShowsByArtist(_ context.Context, artistID uint64) ([]*model.Show, error) {
	return s.filterShows(func(sh *model.Show) bool { return sh.ArtistID == artistID }), nil
}

func (s *MemoryStore) filterShows(keep func(*model.Show) bool) []*model.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Show, 0)
	for _, id := range sortedIDs(s.shows) {
		if sh := s.shows[id]; keep(sh) {
			c := *sh
			out = append(out, &c)
		}
	}
	return out
}

// CreateShow checks both references and inserts the show under the same
// write lock.  A missing artist or venue yields a *ReferenceError.
func (s *MemoryStore) CreateShow(_ context.Context, sh *model.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[sh.ArtistID]; !ok {
		return &ReferenceError{Field: "artist_id", ID: sh.ArtistID}
	}
	if _, ok := s.venues[sh.VenueID]; !ok {
		return &ReferenceError{Field: "venue_id", ID: sh.VenueID}
	}
	s.nextShowID++
	sh.ID = s.nextShowID
	sh.StartTime = sh.StartTime.UTC().Truncate(time.Second)
	c := *sh
	s.shows[sh.ID] = &c
	return nil
}

func (s *MemoryStore) DeleteShow(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shows[id]; !ok {
		return ErrNotFound
	}
	delete(s.shows, id)
	return nil
}

package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// Kind names a searchable entity collection.
type Kind string

const (
	KindVenue  Kind = "venue"
	KindArtist Kind = "artist"
)

// SearchHit is one matching entity.
type SearchHit struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the answer to a search.  Count is len(Data).
type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// Search returns every entity of kind whose name contains term, ignoring
// case.  An empty term matches everything.  Upcoming show counts are
// classified at ref with the same rule as the detail views.
func Search(ctx context.Context, store repository.Store, kind Kind, term string, ref time.Time) (*SearchResult, error) {
	needle := strings.ToLower(term)
	hits := make([]SearchHit, 0)

	switch kind {
	case KindVenue:
		venues, err := store.ListVenues(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range venues {
			if !strings.Contains(strings.ToLower(v.Name), needle) {
				continue
			}
			hit, err := newHit(v.ID, v.Name, ref, func() ([]*model.Show, error) {
				return store.ListShowsByVenue(ctx, v.ID)
			})
			if err != nil {
				return nil, err
			}
			hits = append(hits, hit)
		}
	case KindArtist:
		artists, err := store.ListArtists(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range artists {
			if !strings.Contains(strings.ToLower(a.Name), needle) {
				continue
			}
			hit, err := newHit(a.ID, a.Name, ref, func() ([]*model.Show, error) {
				return store.ListShowsByArtist(ctx, a.ID)
			})
			if err != nil {
				return nil, err
			}
			hits = append(hits, hit)
		}
	default:
		return nil, fmt.Errorf("search: unknown kind %q", kind)
	}
	return &SearchResult{Count: len(hits), Data: hits}, nil
}

func newHit(id uint64, name string, ref time.Time, shows func() ([]*model.Show, error)) (SearchHit, error) {
	list, err := shows()
	if err != nil {
		return SearchHit{}, fmt.Errorf("list shows of %d: %w", id, err)
	}
	return SearchHit{ID: id, Name: name, NumUpcomingShows: countUpcoming(list, ref)}, nil
}

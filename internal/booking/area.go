package booking

import (
	"context"

	"github.com/MjedAl/Fyyur/internal/repository"
)

// VenueRef is the minimal projection of a venue used in listings.
type VenueRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Area groups the venues sharing one exact (city, state) pair.
type Area struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []VenueRef `json:"venues"`
}

// GroupVenuesByArea partitions every venue by (city, state).  Pairs are
// compared byte for byte, with no case folding or trimming.  Areas appear
// in the order of their first venue and members keep store order.
func GroupVenuesByArea(ctx context.Context, store repository.Store) ([]Area, error) {
	venues, err := store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	type key struct{ city, state string }
	index := make(map[key]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []VenueRef{}})
		}
		areas[i].Venues = append(areas[i].Venues, VenueRef{ID: v.ID, Name: v.Name})
	}
	return areas, nil
}

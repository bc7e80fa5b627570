package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// VenueShow is a show as seen from a venue page.
type VenueShow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show as seen from an artist page.
type ArtistShow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is a venue with its shows split at the reference instant.
// The counts always equal the lengths of the corresponding lists.
type VenueDetail struct {
	model.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with their shows split at the reference instant.
type ArtistDetail struct {
	model.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// BuildVenueDetail loads venue venueID and partitions its shows into past
// and upcoming at ref, each list ascending by start time.  It returns
// repository.ErrNotFound for an unknown venue.  If any show's artist cannot
// be resolved no detail is returned; the error joins one
// *IntegrityFaultError per orphaned show.  A show removed by a cascade
// delete after it was listed is skipped.
func BuildVenueDetail(ctx context.Context, store repository.Store, venueID uint64, ref time.Time) (*VenueDetail, error) {
	venue, err := store.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	shows, err := store.ListShowsByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("list shows of venue %d: %w", venueID, err)
	}

	d := &VenueDetail{Venue: *venue, PastShows: []VenueShow{}, UpcomingShows: []VenueShow{}}
	var faults []error
	for _, s := range shows {
		artist, err := store.GetArtist(ctx, s.ArtistID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				fault, err := orphanCheck(ctx, store, s, KindArtist, s.ArtistID)
				if err != nil {
					return nil, err
				}
				if fault != nil {
					faults = append(faults, fault)
				}
				continue
			}
			return nil, fmt.Errorf("resolve artist %d of show %d: %w", s.ArtistID, s.ID, err)
		}
		vs := VenueShow{
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       s.StartTime,
		}
		if Classify(s, ref) == Upcoming {
			d.UpcomingShows = append(d.UpcomingShows, vs)
		} else {
			d.PastShows = append(d.PastShows, vs)
		}
	}
	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}

	byStart := func(list []VenueShow) func(i, j int) bool {
		return func(i, j int) bool { return list[i].StartTime.Before(list[j].StartTime) }
	}
	sort.SliceStable(d.PastShows, byStart(d.PastShows))
	sort.SliceStable(d.UpcomingShows, byStart(d.UpcomingShows))
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d, nil
}

// BuildArtistDetail is the artist counterpart of BuildVenueDetail; orphaned
// shows are those whose venue cannot be resolved.
func BuildArtistDetail(ctx context.Context, store repository.Store, artistID uint64, ref time.Time) (*ArtistDetail, error) {
	artist, err := store.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	shows, err := store.ListShowsByArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("list shows of artist %d: %w", artistID, err)
	}

	d := &ArtistDetail{Artist: *artist, PastShows: []ArtistShow{}, UpcomingShows: []ArtistShow{}}
	var faults []error
	for _, s := range shows {
		venue, err := store.GetVenue(ctx, s.VenueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				fault, err := orphanCheck(ctx, store, s, KindVenue, s.VenueID)
				if err != nil {
					return nil, err
				}
				if fault != nil {
					faults = append(faults, fault)
				}
				continue
			}
			return nil, fmt.Errorf("resolve venue %d of show %d: %w", s.VenueID, s.ID, err)
		}
		as := ArtistShow{
			VenueID:        venue.ID,
			VenueName:      venue.Name,
			VenueImageLink: venue.ImageLink,
			StartTime:      s.StartTime,
		}
		if Classify(s, ref) == Upcoming {
			d.UpcomingShows = append(d.UpcomingShows, as)
		} else {
			d.PastShows = append(d.PastShows, as)
		}
	}
	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}

	byStart := func(list []ArtistShow) func(i, j int) bool {
		return func(i, j int) bool { return list[i].StartTime.Before(list[j].StartTime) }
	}
	sort.SliceStable(d.PastShows, byStart(d.PastShows))
	sort.SliceStable(d.UpcomingShows, byStart(d.UpcomingShows))
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d, nil
}

// orphanCheck is called when the artist or venue of s was not found.  If
// s is gone as well, a cascade delete committed after the shows were
// listed and the show is dropped from the view (nil, nil).  If s still
// exists it is an orphan and an *IntegrityFaultError is returned.
func orphanCheck(ctx context.Context, store repository.Store, s *model.Show, kind Kind, missingID uint64) (*IntegrityFaultError, error) {
	if _, err := store.GetShow(ctx, s.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("recheck show %d: %w", s.ID, err)
	}
	return &IntegrityFaultError{ShowID: s.ID, MissingKind: kind, MissingID: missingID}, nil
}

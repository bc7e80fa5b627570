package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MjedAl/Fyyur/internal/model"
	"github.com/MjedAl/Fyyur/internal/queue"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// EventPublisher receives an activity event after every successful write.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ActivityEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, queue.ActivityEvent) error { return nil }

// Service exposes the directory operations consumed by the HTTP layer.  It
// reads the clock once per operation and hands that instant to the core as
// the reference time, so one response never mixes two notions of "now".
type Service struct {
	store  repository.Store
	events EventPublisher
	now    func() time.Time
	log    *logrus.Entry
}

// NewService wires a Service.  A nil publisher disables events and a nil
// clock means time.Now.
func NewService(store repository.Store, events EventPublisher, clock func() time.Time) *Service {
	if store == nil {
		panic("nil store passed to NewService")
	}
	if events == nil {
		events = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		store:  store,
		events: events,
		now:    clock,
		log:    logrus.WithField("component", "booking"),
	}
}

func (s *Service) ref() time.Time { return s.now().UTC() }

// ShowListing is one row of the flat show list.
type ShowListing struct {
	ID              uint64    `json:"id"`
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistRef is the minimal projection of an artist used in listings.
type ArtistRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Reads

func (s *Service) ListRecentVenues(ctx context.Context, limit int) ([]VenueRef, error) {
	venues, err := s.store.ListRecentVenues(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]VenueRef, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueRef{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

func (s *Service) ListRecentArtists(ctx context.Context, limit int) ([]ArtistRef, error) {
	artists, err := s.store.ListRecentArtists(ctx, limit)
	if err != nil {
		return nil, err
	}
	return artistRefs(artists), nil
}

// ListArtists returns every artist in store order.
func (s *Service) ListArtists(ctx context.Context) ([]ArtistRef, error) {
	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	return artistRefs(artists), nil
}

func artistRefs(artists []*model.Artist) []ArtistRef {
	out := make([]ArtistRef, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistRef{ID: a.ID, Name: a.Name})
	}
	return out
}

func (s *Service) GroupVenuesByArea(ctx context.Context) ([]Area, error) {
	return GroupVenuesByArea(ctx, s.store)
}

func (s *Service) SearchVenues(ctx context.Context, term string) (*SearchResult, error) {
	return Search(ctx, s.store, KindVenue, term, s.ref())
}

func (s *Service) SearchArtists(ctx context.Context, term string) (*SearchResult, error) {
	return Search(ctx, s.store, KindArtist, term, s.ref())
}

func (s *Service) GetVenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	d, err := BuildVenueDetail(ctx, s.store, id, s.ref())
	if errors.Is(err, ErrIntegrityFault) {
		s.log.WithError(err).WithField("venue_id", id).Error("orphaned shows")
	}
	return d, err
}

func (s *Service) GetArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	d, err := BuildArtistDetail(ctx, s.store, id, s.ref())
	if errors.Is(err, ErrIntegrityFault) {
		s.log.WithError(err).WithField("artist_id", id).Error("orphaned shows")
	}
	return d, err
}

// GetVenue returns the stored venue, e.g. to prefill an edit form.
func (s *Service) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	return s.store.GetVenue(ctx, id)
}

// GetArtist returns the stored artist.
func (s *Service) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.store.GetArtist(ctx, id)
}

// ListShows joins every show with its venue and artist names.  Orphaned
// shows are reported as integrity faults like the detail views do; shows
// removed by a cascade delete during the read are skipped.
func (s *Service) ListShows(ctx context.Context) ([]ShowListing, error) {
	shows, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShowListing, 0, len(shows))
	var faults []error
	for _, sh := range shows {
		venue, err := s.store.GetVenue(ctx, sh.VenueID)
		if errors.Is(err, repository.ErrNotFound) {
			fault, err := orphanCheck(ctx, s.store, sh, KindVenue, sh.VenueID)
			if err != nil {
				return nil, err
			}
			if fault != nil {
				faults = append(faults, fault)
			}
			continue
		} else if err != nil {
			return nil, err
		}
		artist, err := s.store.GetArtist(ctx, sh.ArtistID)
		if errors.Is(err, repository.ErrNotFound) {
			fault, err := orphanCheck(ctx, s.store, sh, KindArtist, sh.ArtistID)
			if err != nil {
				return nil, err
			}
			if fault != nil {
				faults = append(faults, fault)
			}
			continue
		} else if err != nil {
			return nil, err
		}
		out = append(out, ShowListing{
			ID:              sh.ID,
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       sh.StartTime,
		})
	}
	if len(faults) > 0 {
		err := errors.Join(faults...)
		s.log.WithError(err).Error("orphaned shows")
		return nil, err
	}
	return out, nil
}

// Writes

// CreateVenue validates v, stores it and sets v.ID.
func (s *Service) CreateVenue(ctx context.Context, v *model.Venue) (*model.Venue, error) {
	v.Genres = model.NewGenres(v.Genres...)
	if err := check(v); err != nil {
		return nil, err
	}
	if err := s.store.CreateVenue(ctx, v); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.VenueListed, EntityID: v.ID, Name: v.Name})
	return v, nil
}

// CreateArtist validates a, stores it and sets a.ID.
func (s *Service) CreateArtist(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	a.Genres = model.NewGenres(a.Genres...)
	if err := check(a); err != nil {
		return nil, err
	}
	if err := s.store.CreateArtist(ctx, a); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.ArtistListed, EntityID: a.ID, Name: a.Name})
	return a, nil
}

// unknownReference is the field reported when the store rejects a show's
// reference without naming the column.
const unknownReference = "artist_id/venue_id"

// CreateShow stores a show after the store confirms, atomically with the
// insert, that its artist and venue exist.  A dangling reference is a
// *ValidationError naming the offending field.
func (s *Service) CreateShow(ctx context.Context, sh *model.Show) (*model.Show, error) {
	if err := check(sh); err != nil {
		return nil, err
	}
	sh.StartTime = sh.StartTime.UTC()
	if err := s.store.CreateShow(ctx, sh); err != nil {
		var ref *repository.ReferenceError
		if errors.As(err, &ref) {
			return nil, invalidReference(ref.Field, err)
		}
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidReference(unknownReference, err)
		}
		return nil, fmt.Errorf("create show: %w", err)
	}
	s.emit(ctx, queue.ActivityEvent{
		Type: queue.ShowListed, EntityID: sh.ID,
		ArtistID: sh.ArtistID, VenueID: sh.VenueID, StartTime: sh.StartTime,
	})
	return sh, nil
}

// UpdateVenue applies patch to venue id and validates the result before
// writing it.  Concurrent edits are last-writer-wins.
func (s *Service) UpdateVenue(ctx context.Context, id uint64, patch model.VenuePatch) (*model.Venue, error) {
	v, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(v)
	if err := check(v); err != nil {
		return nil, err
	}
	if err := s.store.UpdateVenue(ctx, v); err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.VenueEdited, EntityID: v.ID, Name: v.Name})
	return v, nil
}

// UpdateArtist applies patch to artist id.
func (s *Service) UpdateArtist(ctx context.Context, id uint64, patch model.ArtistPatch) (*model.Artist, error) {
	a, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(a)
	if err := check(a); err != nil {
		return nil, err
	}
	if err := s.store.UpdateArtist(ctx, a); err != nil {
		return nil, fmt.Errorf("update artist %d: %w", id, err)
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.ArtistEdited, EntityID: a.ID, Name: a.Name})
	return a, nil
}

// DeleteVenue removes the venue and, by cascade, its shows.
func (s *Service) DeleteVenue(ctx context.Context, id uint64) error {
	if err := s.store.DeleteVenue(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.VenueDeleted, EntityID: id})
	return nil
}

// DeleteArtist removes the artist and, by cascade, their shows.
func (s *Service) DeleteArtist(ctx context.Context, id uint64) error {
	if err := s.store.DeleteArtist(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.ArtistDeleted, EntityID: id})
	return nil
}

func (s *Service) DeleteShow(ctx context.Context, id uint64) error {
	if err := s.store.DeleteShow(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, queue.ActivityEvent{Type: queue.ShowDeleted, EntityID: id})
	return nil
}

// emit publishes ev; failures are logged and otherwise ignored because the
// write has already committed.
func (s *Service) emit(ctx context.Context, ev queue.ActivityEvent) {
	ev.OccurredAt = s.ref()
	entry := s.log.WithFields(logrus.Fields{"event": ev.Type, "entity_id": ev.EntityID})
	if err := s.events.Publish(ctx, ev); err != nil {
		entry.WithError(err).Warn("publish activity event failed")
		return
	}
	entry.Info("activity recorded")
}

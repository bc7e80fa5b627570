// Package queue defines message payloads exchanged over the message broker
// together with the RabbitMQ publisher and the activity consumer.
package queue

import "time"

// Activity types published after successful writes.
const (
	VenueListed   = "venue.listed"
	VenueEdited   = "venue.edited"
	VenueDeleted  = "venue.deleted"
	ArtistListed  = "artist.listed"
	ArtistEdited  = "artist.edited"
	ArtistDeleted = "artist.deleted"
	ShowListed    = "show.listed"
	ShowDeleted   = "show.deleted"
)

// ActivityEvent is published whenever a venue, artist or show is written.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.  Show-specific fields are zero for other
// entity types.
type ActivityEvent struct {
	Type       string    `json:"type"`
	EntityID   uint64    `json:"entity_id"`
	Name       string    `json:"name,omitempty"`
	ArtistID   uint64    `json:"artist_id,omitempty"`
	VenueID    uint64    `json:"venue_id,omitempty"`
	StartTime  time.Time `json:"start_time,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

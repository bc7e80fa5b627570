package model

import "time"

// Show is a booking of one artist at one venue.  It owns neither side of the
// association and is never edited after creation, only deleted.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – references artists.id.
//  VenueID   – references venues.id.
//  StartTime – when the show begins, always held in UTC.
type Show struct {
	ID        uint64    `json:"id"`
	ArtistID  uint64    `json:"artist_id" validate:"required"`
	VenueID   uint64    `json:"venue_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required,show_time"`
}

// Start times must fit a MySQL DATETIME column.
var (
	MinStartTime = time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxStartTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// StartTimeInRange reports whether t lies within [MinStartTime, MaxStartTime].
func StartTimeInRange(t time.Time) bool {
	return !t.Before(MinStartTime) && !t.After(MaxStartTime)
}

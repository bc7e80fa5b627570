// Package booking holds the show classification and aggregation logic of
// the directory and the service that exposes it to the transport layer.
//
// Every function that depends on the current time takes it as an explicit
// reference instant.  Only Service reads the clock, once per operation.
package booking

import (
	"time"

	"github.com/MjedAl/Fyyur/internal/model"
)

// Status is the classification of a show relative to a reference instant.
type Status int

const (
	Past Status = iota
	Upcoming
)

func (s Status) String() string {
	if s == Upcoming {
		return "upcoming"
	}
	return "past"
}

// Classify reports whether show is Upcoming or Past at ref.  A show is
// Upcoming only when it starts strictly after ref; a show starting exactly
// at ref is Past.  Instants are compared, so the locations of the two
// times do not matter.
func Classify(show *model.Show, ref time.Time) Status {
	if show.StartTime.After(ref) {
		return Upcoming
	}
	return Past
}

// countUpcoming counts the shows Classify marks Upcoming at ref.
func countUpcoming(shows []*model.Show, ref time.Time) int {
	n := 0
	for _, s := range shows {
		if Classify(s, ref) == Upcoming {
			n++
		}
	}
	return n
}

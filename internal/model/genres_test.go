package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenres(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want Genres
	}{
		{name: "empty", in: nil, want: Genres{}},
		{name: "trims and drops blanks", in: []string{" Jazz ", "", "  "}, want: Genres{"Jazz"}},
		{name: "dedupes keeping first", in: []string{"Rock n Roll", "Folk", "Rock n Roll"}, want: Genres{"Rock n Roll", "Folk"}},
		{name: "case sensitive", in: []string{"jazz", "Jazz"}, want: Genres{"jazz", "Jazz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGenres(tt.in...))
		})
	}
}

func TestGenresValueScan(t *testing.T) {
	v, err := Genres{"Jazz", "Reggae, Ska"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Jazz","Reggae, Ska"]`, v)

	var g Genres
	require.NoError(t, g.Scan([]byte(v.(string))))
	assert.Equal(t, Genres{"Jazz", "Reggae, Ska"}, g)

	nilValue, err := Genres(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", nilValue)

	require.NoError(t, g.Scan(nil))
	assert.Equal(t, Genres{}, g)

	assert.Error(t, g.Scan(42))
	assert.Error(t, g.Scan("{Jazz}"))
}

func TestVenuePatchApply(t *testing.T) {
	v := &Venue{ID: 3, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: Genres{"Jazz"}}
	name := "The Dueling Pianos Bar"
	seeking := true
	VenuePatch{Name: &name, SeekingTalent: &seeking, Genres: []string{"Classical", "R&B"}}.Apply(v)

	assert.Equal(t, uint64(3), v.ID)
	assert.Equal(t, name, v.Name)
	assert.Equal(t, "San Francisco", v.City)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, Genres{"Classical", "R&B"}, v.Genres)
}

func TestArtistCloneIsDeep(t *testing.T) {
	a := &Artist{ID: 1, Name: "Guns N Petals", Genres: Genres{"Rock n Roll"}}
	c := a.Clone()
	c.Genres[0] = "Folk"
	assert.Equal(t, "Rock n Roll", a.Genres[0])
}

func TestStartTimeInRange(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{name: "lower bound", t: MinStartTime, want: true},
		{name: "upper bound", t: MaxStartTime, want: true},
		{name: "typical", t: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC), want: true},
		{name: "year 999", t: MinStartTime.Add(-time.Second), want: false},
		{name: "year 10000", t: MaxStartTime.Add(time.Second), want: false},
		{name: "zero", t: time.Time{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartTimeInRange(tt.t))
		})
	}
}

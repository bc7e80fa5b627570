package model

// Artist is a performer who can be booked into shows.  It corresponds to a
// row in the `artists` table.
type Artist struct {
	ID                 uint64 `json:"id"`
	Name               string `json:"name" validate:"required,max=120"`
	City               string `json:"city" validate:"required,max=120"`
	State              string `json:"state" validate:"required,max=120"`
	Phone              string `json:"phone" validate:"omitempty,max=120"`
	Website            string `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link" validate:"omitempty,url,max=500"`
	ImageLink          string `json:"image_link" validate:"omitempty,url,max=500"`
	Genres             Genres `json:"genres" validate:"dive,required,max=120"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" validate:"omitempty,max=500"`
}

// Clone returns a deep copy of a.
func (a *Artist) Clone() *Artist {
	c := *a
	c.Genres = a.Genres.Clone()
	return &c
}

// ArtistPatch is the artist counterpart of VenuePatch.
type ArtistPatch struct {
	Name               *string  `json:"name"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	Phone              *string  `json:"phone"`
	Website            *string  `json:"website"`
	FacebookLink       *string  `json:"facebook_link"`
	ImageLink          *string  `json:"image_link"`
	Genres             []string `json:"genres"`
	SeekingVenue       *bool    `json:"seeking_venue"`
	SeekingDescription *string  `json:"seeking_description"`
}

// Apply copies every non-nil field of p onto a.
func (p ArtistPatch) Apply(a *Artist) {
	setString(&a.Name, p.Name)
	setString(&a.City, p.City)
	setString(&a.State, p.State)
	setString(&a.Phone, p.Phone)
	setString(&a.Website, p.Website)
	setString(&a.FacebookLink, p.FacebookLink)
	setString(&a.ImageLink, p.ImageLink)
	setString(&a.SeekingDescription, p.SeekingDescription)
	if p.Genres != nil {
		a.Genres = NewGenres(p.Genres...)
	}
	if p.SeekingVenue != nil {
		a.SeekingVenue = *p.SeekingVenue
	}
}

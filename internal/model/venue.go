package model

// Venue is a physical location that can host shows.  It corresponds to a
// row in the `venues` table.
//
// Fields:
//  ID                 – primary key, assigned by the store.
//  Name               – display name, searched case-insensitively.
//  City, State        – together form the venue's area.
//  Address, Phone     – contact details.
//  Website, FacebookLink, ImageLink – optional URLs.
//  Genres             – genres the venue books.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is true.
type Venue struct {
	ID                 uint64 `json:"id"`
	Name               string `json:"name" validate:"required,max=120"`
	City               string `json:"city" validate:"required,max=120"`
	State              string `json:"state" validate:"required,max=120"`
	Address            string `json:"address" validate:"required,max=120"`
	Phone              string `json:"phone" validate:"omitempty,max=120"`
	Website            string `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link" validate:"omitempty,url,max=500"`
	ImageLink          string `json:"image_link" validate:"omitempty,url,max=500"`
	Genres             Genres `json:"genres" validate:"dive,required,max=120"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" validate:"omitempty,max=500"`
}

// Clone returns a deep copy of v.
func (v *Venue) Clone() *Venue {
	c := *v
	c.Genres = v.Genres.Clone()
	return &c
}

// VenuePatch carries an edit request.  Nil fields are left untouched, so a
// patch with every field set is a full replacement.
type VenuePatch struct {
	Name               *string  `json:"name"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	Address            *string  `json:"address"`
	Phone              *string  `json:"phone"`
	Website            *string  `json:"website"`
	FacebookLink       *string  `json:"facebook_link"`
	ImageLink          *string  `json:"image_link"`
	Genres             []string `json:"genres"`
	SeekingTalent      *bool    `json:"seeking_talent"`
	SeekingDescription *string  `json:"seeking_description"`
}

// Apply copies every non-nil field of p onto v.
func (p VenuePatch) Apply(v *Venue) {
	setString(&v.Name, p.Name)
	setString(&v.City, p.City)
	setString(&v.State, p.State)
	setString(&v.Address, p.Address)
	setString(&v.Phone, p.Phone)
	setString(&v.Website, p.Website)
	setString(&v.FacebookLink, p.FacebookLink)
	setString(&v.ImageLink, p.ImageLink)
	setString(&v.SeekingDescription, p.SeekingDescription)
	if p.Genres != nil {
		v.Genres = NewGenres(p.Genres...)
	}
	if p.SeekingTalent != nil {
		v.SeekingTalent = *p.SeekingTalent
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Genres is the set of musical genres attached to a venue or artist.  It is
// persisted as a JSON array so that reads never have to parse a delimited
// string.  Order is the order in which genres were first supplied.
type Genres []string

// NewGenres builds a Genres set from raw input.  Values are trimmed, empty
// values are dropped and duplicates keep only their first occurrence.
func NewGenres(raw ...string) Genres {
	out := make(Genres, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, g := range raw {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// Contains reports whether g is a member of the set.
func (g Genres) Contains(genre string) bool {
	for _, v := range g {
		if v == genre {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with g.
func (g Genres) Clone() Genres {
	out := make(Genres, len(g))
	copy(out, g)
	return out
}

// Value implements driver.Valuer.  A nil set is stored as an empty array.
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	bs, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(bs), nil
}

// Scan implements sql.Scanner for JSON columns.
func (g *Genres) Scan(src any) error {
	var bs []byte
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		bs = v
	case string:
		bs = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Genres", src)
	}
	var out []string
	if err := json.Unmarshal(bs, &out); err != nil {
		return fmt.Errorf("decode genres: %w", err)
	}
	*g = Genres(out)
	if *g == nil {
		*g = Genres{}
	}
	return nil
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCountryRequired      = errors.New("country is required")
	ErrStateRequiresCountry = errors.New("state cannot be set without a country")
	ErrCityRequiresCountry  = errors.New("city cannot be set without a country")
	ErrCityRequiresState    = errors.New("city cannot be set without a state")
)

// Search levels of a location scope, from widest to narrowest
const (
	SearchLevelCountry = "country"
	SearchLevelState   = "state"
	SearchLevelCity    = "city"
)

// Location is a place users can live in, with its local currency
type Location struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Country        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_locations_place" json:"country"`
	State          string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_locations_place" json:"state"`
	City           string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_locations_place" json:"city"`
	CurrencyCode   string    `gorm:"type:varchar(3);not null" json:"currency_code"`
	CurrencySymbol string    `gorm:"type:varchar(8);not null" json:"currency_symbol"`
	CreatedAt      time.Time `json:"created_at"`
}

// BeforeCreate hook for Location
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	if strings.TrimSpace(l.Country) == "" {
		return ErrCountryRequired
	}
	return nil
}

// Scope returns the narrowest scope matching this location
func (l *Location) Scope() LocationScope {
	return LocationScope{Country: l.Country, State: l.State, City: l.City}
}

// TableName returns the table name for Location
func (l *Location) TableName() string {
	return "locations"
}

// LocationScope selects the population used for community aggregates.
// A scope is either empty or has a non-empty country.
type LocationScope struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
}

// Normalize trims surrounding whitespace from every part
func (s LocationScope) Normalize() LocationScope {
	return LocationScope{
		Country: strings.TrimSpace(s.Country),
		State:   strings.TrimSpace(s.State),
		City:    strings.TrimSpace(s.City),
	}
}

// Validate checks the cascading invariant: city needs state, state and city need country
func (s LocationScope) Validate() error {
	n := s.Normalize()
	if n.Country == "" {
		switch {
		case n.State != "":
			return ErrStateRequiresCountry
		case n.City != "":
			return ErrCityRequiresCountry
		default:
			return ErrCountryRequired
		}
	}
	if n.City != "" && n.State == "" {
		return ErrCityRequiresState
	}
	return nil
}

// IsEmpty reports whether no part of the scope is set
func (s LocationScope) IsEmpty() bool {
	n := s.Normalize()
	return n.Country == "" && n.State == "" && n.City == ""
}

// ClearCountry empties the scope, since state and city are meaningless without a country
func (s LocationScope) ClearCountry() LocationScope {
	return LocationScope{}
}

// ClearState drops the state and the city under it
func (s LocationScope) ClearState() LocationScope {
	return LocationScope{Country: s.Country}
}

// WithCountry replaces the country, resetting narrower parts when it changes
func (s LocationScope) WithCountry(country string) LocationScope {
	if country == s.Country {
		return s
	}
	if strings.TrimSpace(country) == "" {
		return s.ClearCountry()
	}
	return LocationScope{Country: country}
}

// WithState replaces the state, resetting the city when it changes
func (s LocationScope) WithState(state string) LocationScope {
	if state == s.State {
		return s
	}
	return LocationScope{Country: s.Country, State: state}
}

// Level returns the narrowest level set on the scope
func (s LocationScope) Level() string {
	n := s.Normalize()
	switch {
	case n.City != "":
		return SearchLevelCity
	case n.State != "":
		return SearchLevelState
	default:
		return SearchLevelCountry
	}
}

// Label joins the non-empty parts as "city, state, country"
func (s LocationScope) Label() string {
	n := s.Normalize()
	parts := make([]string, 0, 3)
	for _, part := range []string{n.City, n.State, n.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

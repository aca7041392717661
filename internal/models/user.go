package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidHouseholdSize = errors.New("household size must be at least 1")

// User is the analytics-side view of an account: where the user lives and how many
// people share the household. Identity and credentials belong to the auth provider.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          *string        `gorm:"type:varchar(255)" json:"name,omitempty"`
	LocationID    *uuid.UUID     `gorm:"type:uuid;index" json:"location_id,omitempty"`
	HouseholdSize *int           `json:"household_size,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

func (u *User) Validate() error {
	if u.HouseholdSize != nil && *u.HouseholdSize < 1 {
		return ErrInvalidHouseholdSize
	}
	return nil
}

// HasLocation reports whether the user picked a location
func (u *User) HasLocation() bool {
	return u.LocationID != nil && *u.LocationID != uuid.Nil
}

func (u *User) TableName() string {
	return "users"
}

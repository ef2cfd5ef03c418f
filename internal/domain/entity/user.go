package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the central profile entity. Status tracks the user's position in
// the meetup lifecycle; all other fields are profile data.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Status       UserStatus
	PhotoURL     *string
	Bio          *string
	Location     *string
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

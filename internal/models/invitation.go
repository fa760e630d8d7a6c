package models

import "time"

// Invitation grants an email address access to the training platform.
// Invitations are created by managers and checked during sign-up.
type Invitation struct {
	Email     string    `json:"email"`
	InvitedBy string    `json:"invitedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

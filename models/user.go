package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	IsPremium    bool      `json:"isPremium"`
	IsVip        bool      `json:"isVip"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StatusUpdate carries a partial update of the subscription flags.
// Nil fields are left untouched.
type StatusUpdate struct {
	IsVip     *bool
	IsPremium *bool
}

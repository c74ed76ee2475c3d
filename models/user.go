package models

import "time"

// User is a portal account, keyed by lowercase email. Accounts are
// created lazily on first sign-in; the IsAdmin flag is managed out of
// band and gates the admin queue.
type User struct {
	Email       string    `bson:"email" json:"email"`
	DisplayName string    `bson:"displayName" json:"displayName"`
	IsAdmin     bool      `bson:"isAdmin" json:"isAdmin"`
	Provider    string    `bson:"provider,omitempty" json:"provider,omitempty"` // "google" or "microsoft"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	LastSeenAt  time.Time `bson:"lastSeenAt" json:"lastSeenAt"`
}

package models

// User is a full account row.
type User struct {
	ID           int    `json:"userId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
}

// PublicUser is the identity safe to hand to other users (follow lists,
// search results, sign-up responses).
type PublicUser struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

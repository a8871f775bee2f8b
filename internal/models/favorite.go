package models

import "time"

// Favorite is one user's like of one artwork. A non-nil Description means the
// favorite has been curated into the user's Gallery.
type Favorite struct {
	UserID      int       `json:"userId"`
	ArtID       int       `json:"artId"`
	TimeAdded   time.Time `json:"timeAdded"`
	Description *string   `json:"description"`
}

// IsGallery reports whether this favorite is a Gallery entry.
func (f Favorite) IsGallery() bool {
	return f.Description != nil
}

package entity

import (
	"slices"
	"time"
)

// Moosage is a short post authored by a user.
type Moosage struct {
	ID             int64     // Auto-assigned, strictly increasing per store.
	Content        string    // Message body.
	AuthorID       string    // Weak reference to User.ID.
	AuthorUsername string    // Denormalized author handle at the time of writing.
	AuthorEmail    string    // Denormalized author email at the time of writing.
	CreatedAt      time.Time // Creation timestamp.
	LikedBy        []string  // User IDs that liked this moosage, no duplicates.
	Edited         bool      // Set permanently once content is updated.
}

// IsLikedBy reports whether userID is in the liked-by set.
func (m *Moosage) IsLikedBy(userID string) bool {
	return slices.Contains(m.LikedBy, userID)
}

// LikeCount returns the number of distinct likes.
func (m *Moosage) LikeCount() int {
	return len(m.LikedBy)
}

// IsAuthoredBy reports whether userID wrote this moosage.
func (m *Moosage) IsAuthoredBy(userID string) bool {
	return userID != "" && m.AuthorID == userID
}

// Clone returns a deep copy so callers never share the LikedBy backing array.
func (m *Moosage) Clone() *Moosage {
	c := *m
	c.LikedBy = slices.Clone(m.LikedBy)
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}

	return &c
}

package models

import (
	"time"
)

// User represents a Discord user observed by the tracker
type User struct {
	// ID is the Discord user ID
	ID string

	// Username is the Discord account name
	Username string

	// DisplayName is the server display name, if set
	DisplayName string

	// AvatarURL is a reference to the user's current avatar
	AvatarURL string

	// LastUpdated is when a snapshot for this user was last observed
	LastUpdated time.Time
}

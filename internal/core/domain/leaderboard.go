package domain

import "time"

// Entry is one ranked leaderboard row. Field names mirror the hub
// API's leaderboard document. Rank is assigned by the source order and
// is never recomputed locally; an Entry is immutable once constructed.
type Entry struct {
	// Rank is the 1-based position assigned by the hub.
	Rank int `json:"rank"`

	// User is the display name shown in the table.
	User string `json:"user"`

	// UserID is the user's public identifier. May be empty when the
	// source shape does not carry one.
	UserID string `json:"user_id"`

	// XP is the accumulated experience points for the period.
	XP int `json:"xp"`

	// Completed is the number of completed items for the period.
	Completed int `json:"completed"`

	// Streak is the current activity streak in days.
	Streak int `json:"streak"`
}

// Snapshot is one complete leaderboard fetch result at a point in
// time. Entries reflect exactly one upstream response in source order;
// results are never merged across fetches.
type Snapshot struct {
	// Entries is the ordered entry sequence. Ordering is ranking order.
	Entries []Entry

	// FetchedAt records when the upstream response was received.
	FetchedAt time.Time
}

// UserInfo is the authenticated user's profile as reported by the hub.
// Unknown profile fields are ignored during decoding.
type UserInfo struct {
	// PublicUID is the user's public identifier, matching the user_id
	// values that appear in leaderboard entries.
	PublicUID string `json:"public_uid"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the account email address.
	Email string `json:"email"`
}

// DisplayName returns the best human-readable identifier available.
func (u *UserInfo) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return unknownDescription
}

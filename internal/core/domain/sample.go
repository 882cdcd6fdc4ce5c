package domain

import "time"

// SampleSnapshot returns the built-in demonstration leaderboard shown
// when live data cannot be fetched. Watch mode renders it with a
// warning notice rather than leaving the terminal empty.
func SampleSnapshot() *Snapshot {
	return &Snapshot{
		FetchedAt: time.Now(),
		Entries: []Entry{
			{Rank: 1, User: "Alice Johnson", UserID: "alice123", XP: 2450, Completed: 12, Streak: 8},
			{Rank: 2, User: "Bob Smith", UserID: "bob456", XP: 2320, Completed: 11, Streak: 5},
			{Rank: 3, User: "Carol Davis", UserID: "carol789", XP: 2180, Completed: 10, Streak: 12},
			{Rank: 4, User: "David Wilson", UserID: "david012", XP: 2050, Completed: 10, Streak: 3},
			{Rank: 5, User: "Eva Brown", UserID: "eva345", XP: 1890, Completed: 9, Streak: 15},
		},
	}
}

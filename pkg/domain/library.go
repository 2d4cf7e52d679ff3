package domain

import "time"

// LibraryStatus describes the reading room. There is a single record.
type LibraryStatus struct {
	TotalSeats    int       `json:"totalSeats"`
	OccupiedSeats int       `json:"occupiedSeats"`
	IsOpen        bool      `json:"isOpen"`
	LastResetAt   time.Time `json:"lastResetAt"`
}

// DashboardStats aggregates the counters shown on a member's dashboard.
type DashboardStats struct {
	TotalBooks    int64 `json:"totalBooks"`
	TotalMembers  int64 `json:"totalMembers"`
	BorrowedBooks int64 `json:"borrowedBooks"`
	PendingFines  int64 `json:"pendingFines"`
}

// Dashboard is the landing page payload for a signed-in member.
type Dashboard struct {
	User  User           `json:"user"`
	Stats DashboardStats `json:"stats"`
}

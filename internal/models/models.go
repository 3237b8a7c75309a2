// Package models defines the data structures used across the application.
// JSON field names match the shapes the frontend consumes.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Valid reports whether s is a recognized status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Category classifies a complaint for routing and analytics.
type Category string

const (
	CategoryElectricity Category = "Electricity"
	CategoryWater       Category = "Water"
	CategoryMessFood    Category = "Mess Food"
	CategoryWiFi        Category = "Wi-Fi"
	CategoryOther       Category = "Other"
)

// Valid reports whether c is a recognized category value.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectricity, CategoryWater, CategoryMessFood, CategoryWiFi, CategoryOther:
		return true
	}
	return false
}

// VoteValue is a single user's opinion on a complaint.
type VoteValue string

const (
	VoteUp   VoteValue = "up"
	VoteDown VoteValue = "down"
)

// Valid reports whether v is a recognized vote value.
func (v VoteValue) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// VoteRemoved is the outcome of toggling off an existing vote. It is an
// outcome marker, not a storable vote value.
const VoteRemoved = "removed"

// VoteOutcome reports the effect of a vote cast: the vote value now on
// record for the caller, or "removed" if the cast retracted a prior vote.
type VoteOutcome struct {
	Applied string `json:"applied"`
}

// Roles accepted by the listing API. The role is supplied by the caller
// and trusted as-is; there is no server-side role store.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// StaffMember is an assignable member of the hostel staff.
// Immutable reference data.
type StaffMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Feedback is a post-resolution rating left by the complaint owner.
type Feedback struct {
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// Complaint is a reported hostel issue. Upvotes and Downvotes are derived
// counters maintained by the store's vote ledger and are never set by
// callers directly.
type Complaint struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Status      Status       `json:"status"`
	Room        string       `json:"room"`
	Block       string       `json:"block"`
	Student     string       `json:"student"`
	AssignedTo  *StaffMember `json:"assignedTo,omitempty"`
	Date        time.Time    `json:"date"`
	Upvotes     int          `json:"upvotes"`
	Downvotes   int          `json:"downvotes"`
	Feedback    *Feedback    `json:"feedback,omitempty"`
}

// ComplaintSubmission is the request body for filing a new complaint.
type ComplaintSubmission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Room        string   `json:"room"`
	Block       string   `json:"block"`
}

// StatusUpdate is the request body for a status change.
type StatusUpdate struct {
	Status Status `json:"status"`
}

// AssignmentRequest is the request body for assigning staff.
type AssignmentRequest struct {
	StaffID int `json:"staffId"`
}

// VoteRequest is the request body for casting or retracting a vote.
type VoteRequest struct {
	Value VoteValue `json:"value"`
}

// FeedbackRequest is the request body for rating a resolved complaint.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Identity is the caller-supplied identity attached to each request.
// The server does not verify it against a user store; role and email are
// trusted exactly as provided.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ActivityEntry records one action taken on a complaint, for the
// per-complaint history view and the admin activity feed.
type ActivityEntry struct {
	ID           uuid.UUID `json:"id"`
	ComplaintID  int       `json:"complaint_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Actor        string    `json:"actor"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryCount is one bucket of the category distribution chart.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// StatusCount is one bucket of the status breakdown chart.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

// HealthStatus represents the server health check response.
type HealthStatus struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	Complaints int    `json:"complaints,omitempty"`
}

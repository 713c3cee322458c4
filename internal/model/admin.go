package model

import "time"

// Back-office projections. These are flat rows tailored to the admin tables,
// not the rider-facing entities.

// AdminUserStatus values.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// Admin-assignable platform roles.
const (
	PlatformRoleRider     = "rider"
	PlatformRoleModerator = "moderator"
	PlatformRoleAdmin     = "admin"
)

// Listing moderation states.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationFlagged  = "flagged"
	ModerationRemoved  = "removed"
)

// AdminUser is a user row in the admin back office.
type AdminUser struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	Verified bool      `json:"verified"`
	JoinedAt time.Time `json:"joined_at"`
}

// AdminClub is a club row in the admin back office.
type AdminClub struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	FounderName string    `json:"founder_name"`
	MemberCount int       `json:"member_count"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminRide is a ride row in the admin back office.
type AdminRide struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	OrganizerName    string     `json:"organizer_name"`
	Status           RideStatus `json:"status"`
	ParticipantCount int        `json:"participant_count"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
}

// AdminListing is a marketplace row in the admin back office.
type AdminListing struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	SellerName       string    `json:"seller_name"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	Currency         string    `json:"currency"`
	ModerationStatus string    `json:"moderation_status"`
	ReportCount      int       `json:"report_count"`
	CreatedAt        time.Time `json:"created_at"`
}

package model

import (
	"errors"
	"time"
)

// MemberRole is a club member's role. FOUNDER is assigned at club creation
// and can never be granted or revoked afterwards.
type MemberRole string

const (
	RoleFounder MemberRole = "FOUNDER"
	RoleAdmin   MemberRole = "ADMIN"
	RoleOfficer MemberRole = "OFFICER"
	RoleMember  MemberRole = "MEMBER"
)

// ValidMemberRole reports whether r is a role the API accepts for role changes.
// FOUNDER is deliberately excluded.
func ValidMemberRole(r MemberRole) bool {
	switch r {
	case RoleAdmin, RoleOfficer, RoleMember:
		return true
	}
	return false
}

// Club is the lightweight club record used in lists.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	MemberCount int       `json:"member_count"`
	IsPrivate   bool      `json:"is_private"`
	Tags        []string  `json:"tags"`
	FounderID   string    `json:"founder_id"`
	BadgeURL    *string   `json:"badge_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClubDetails is the full club record for the detail view.
type ClubDetails struct {
	Club
	Members      []ClubMember  `json:"members"`
	JoinRequests []JoinRequest `json:"join_requests,omitempty"`
	Settings     ClubSettings  `json:"settings"`

	// Viewer-relative flags.
	IsMember  bool `json:"is_member"`
	IsPending bool `json:"is_pending"`
}

// ClubSettings holds club-level management toggles.
type ClubSettings struct {
	RequiresApproval bool `json:"requires_approval"`
	MembersCanPost   bool `json:"members_can_post"`
	RidesArePublic   bool `json:"rides_are_public"`
}

// ClubMember is a user's membership record within one club.
type ClubMember struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	AvatarURL *string    `json:"avatar_url"`
	Role      MemberRole `json:"role"`
	Status    string     `json:"status"` // "active" or "pending"
	JoinedAt  time.Time  `json:"joined_at"`
}

// JoinRequest is a pending membership request awaiting moderation.
type JoinRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	AvatarURL   *string   `json:"avatar_url"`
	RequestedAt time.Time `json:"requested_at"`
}

// ClubPage is one page of a club list.
type ClubPage struct {
	Clubs   []Club `json:"clubs"`
	HasMore bool   `json:"has_more"`
}

// CreateClubRequest is the payload for creating a club.
type CreateClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateClubRequest carries editable club fields. Nil fields are unchanged.
type UpdateClubRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	IsPrivate   *bool    `json:"is_private,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Club errors
var (
	ErrClubNotFound     = errors.New("club not found")
	ErrMemberNotFound   = errors.New("club member not found")
	ErrFounderImmutable = errors.New("founder role cannot be changed")
	ErrInvalidRole      = errors.New("invalid member role")
)

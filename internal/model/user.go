package model

import (
	"errors"
	"time"
)

// Profile represents the signed-in rider's profile.
type Profile struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Name      string       `json:"name"`
	Bio       *string      `json:"bio"`
	Location  *string      `json:"location"`
	AvatarURL *string      `json:"avatar_url"`
	Stats     ProfileStats `json:"stats"`
	Bikes     []Bike       `json:"bikes"`
	Clubs     []ClubBadge  `json:"clubs"`
	Badges    []Badge      `json:"badges"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PublicProfile is another rider's profile as seen by the current user.
type PublicProfile struct {
	Profile
	IsFollowing bool `json:"is_following"`
}

// ProfileStats holds the aggregate counters shown on a profile header.
type ProfileStats struct {
	Rides      int     `json:"rides"`
	DistanceKM float64 `json:"distance_km"`
	Followers  int     `json:"followers"`
	Following  int     `json:"following"`
	Clubs      int     `json:"clubs"`
	Reviews    int     `json:"reviews"`
}

// Bike is a motorcycle owned by exactly one rider.
type Bike struct {
	ID        string  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Nickname  *string `json:"nickname"`
	ImageURL  *string `json:"image_url"`
	IsPrimary bool    `json:"is_primary"`
}

// ClubBadge is the lightweight club reference shown on a profile.
type ClubBadge struct {
	ClubID   string     `json:"club_id"`
	Name     string     `json:"name"`
	BadgeURL *string    `json:"badge_url"`
	Role     MemberRole `json:"role"`
}

// Badge is an earned achievement badge.
type Badge struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	IconURL  *string   `json:"icon_url"`
	EarnedAt time.Time `json:"earned_at"`
}

// UpdateProfileRequest carries the editable profile fields. Nil fields are
// left unchanged by the backend.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
}

// BikeRequest is the create/update payload for a bike.
type BikeRequest struct {
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Nickname  *string `json:"nickname,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	IsPrimary bool    `json:"is_primary"`
}

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrBikeNotFound = errors.New("bike not found")
)

package model

import (
	"errors"
	"time"
)

// RideStatus is the single ride lifecycle enum. The backend contract is
// pinned to these four values; anything else is rejected at the client
// boundary rather than guessed at.
type RideStatus string

const (
	RidePlanned   RideStatus = "planned"
	RideActive    RideStatus = "active"
	RideCompleted RideStatus = "completed"
	RideCancelled RideStatus = "cancelled"
)

// ParticipantStatus is a participant's RSVP state.
type ParticipantStatus string

const (
	ParticipantConfirmed ParticipantStatus = "confirmed"
	ParticipantPending   ParticipantStatus = "pending"
	ParticipantDeclined  ParticipantStatus = "declined"
)

// LiveStatus is a participant's safety state while a ride is active.
type LiveStatus string

const (
	LiveOK        LiveStatus = "ok"
	LiveNeedHelp  LiveStatus = "need_help"
	LiveEmergency LiveStatus = "emergency"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Ride is the lightweight ride record used in lists.
type Ride struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Status           RideStatus `json:"status"`
	StartLocation    string     `json:"start_location"`
	EndLocation      string     `json:"end_location"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	DistanceKM       float64    `json:"distance_km"`
	DurationMin      int        `json:"duration_min"`
	OrganizerID      string     `json:"organizer_id"`
	OrganizerName    string     `json:"organizer_name"`
	ClubID           *string    `json:"club_id"`
	ParticipantCount int        `json:"participant_count"`
}

// RideDetails is the full ride record for the detail view.
type RideDetails struct {
	Ride
	Participants    []RideParticipant `json:"participants"`
	ChatEnabled     bool              `json:"chat_enabled"`
	TrackingEnabled bool              `json:"tracking_enabled"`

	// Viewer-relative flag.
	IsParticipant bool `json:"is_participant"`
}

// RideParticipant is one rider's participation record.
// LiveStatus and LastLocation are only meaningful while the ride is active.
type RideParticipant struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Name         string            `json:"name"`
	AvatarURL    *string           `json:"avatar_url"`
	Status       ParticipantStatus `json:"status"`
	LiveStatus   LiveStatus        `json:"live_status"`
	LastLocation *GeoPoint         `json:"last_location"`
}

// RidePage is one page of a ride list.
type RidePage struct {
	Rides   []Ride `json:"rides"`
	HasMore bool   `json:"has_more"`
}

// CreateRideRequest is the payload for creating a ride.
type CreateRideRequest struct {
	Title         string    `json:"title"`
	StartLocation string    `json:"start_location"`
	EndLocation   string    `json:"end_location"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DistanceKM    float64   `json:"distance_km"`
	DurationMin   int       `json:"duration_min"`
	ClubID        *string   `json:"club_id,omitempty"`
}

// UpdateRideRequest carries editable ride fields. Nil fields are unchanged.
type UpdateRideRequest struct {
	Title         *string    `json:"title,omitempty"`
	StartLocation *string    `json:"start_location,omitempty"`
	EndLocation   *string    `json:"end_location,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	DistanceKM    *float64   `json:"distance_km,omitempty"`
	DurationMin   *int       `json:"duration_min,omitempty"`
}

// Ride errors
var (
	ErrRideNotFound       = errors.New("ride not found")
	ErrNotRideParticipant = errors.New("not a participant of this ride")
)

// Package admin models the back-office screens: server-backed tables,
// in-memory filters and single-purpose moderation actions that refetch the
// table instead of patching it.
package admin

import (
	"strings"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// FilterAll disables an enum constraint.
const FilterAll = "all"

// matchQuery is a case-insensitive substring match over any of the fields.
// An empty query matches everything.
func matchQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchEnum is an equality match; empty or "all" disables the constraint.
func matchEnum(want, have string) bool {
	return want == "" || want == FilterAll || want == have
}

// UserFilter narrows the users table.
type UserFilter struct {
	Query    string // matches username, name, email
	Role     string
	Status   string
	Verified string // "all", "yes", "no"
}

func (f UserFilter) Match(u model.AdminUser) bool {
	if !matchQuery(f.Query, u.Username, u.Name, u.Email) {
		return false
	}
	if !matchEnum(f.Role, u.Role) || !matchEnum(f.Status, u.Status) {
		return false
	}
	return matchEnum(f.Verified, boolEnum(u.Verified))
}

// ClubFilter narrows the clubs table.
type ClubFilter struct {
	Query    string // matches name, location, founder
	Verified string // "all", "yes", "no"
}

func (f ClubFilter) Match(c model.AdminClub) bool {
	return matchQuery(f.Query, c.Name, c.Location, c.FounderName) &&
		matchEnum(f.Verified, boolEnum(c.Verified))
}

// RideFilter narrows the rides table.
type RideFilter struct {
	Query  string // matches title, organizer
	Status string
}

func (f RideFilter) Match(r model.AdminRide) bool {
	return matchQuery(f.Query, r.Title, r.OrganizerName) &&
		matchEnum(f.Status, string(r.Status))
}

// ListingFilter narrows the marketplace table.
type ListingFilter struct {
	Query      string // matches title, seller
	Category   string
	Moderation string
}

func (f ListingFilter) Match(l model.AdminListing) bool {
	return matchQuery(f.Query, l.Title, l.SellerName) &&
		matchEnum(f.Category, l.Category) &&
		matchEnum(f.Moderation, l.ModerationStatus)
}

func boolEnum(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Apply filters rows without reordering them. Pure: the same filter over
// the same rows always yields the same output.
func Apply[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

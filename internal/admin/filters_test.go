package admin

import (
	"testing"
	"time"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func adminUsers() []model.AdminUser {
	return []model.AdminUser{
		{ID: "u1", Username: "dustrider", Name: "Sam Okafor", Email: "sam@x.test", Role: model.PlatformRoleAdmin, Status: model.UserStatusActive, Verified: true},
		{ID: "u2", Username: "maramoto", Name: "Mara Jensen", Email: "mara@x.test", Role: model.PlatformRoleModerator, Status: model.UserStatusActive, Verified: true},
		{ID: "u3", Username: "kaicorner", Name: "Kai Moreno", Email: "kai@x.test", Role: model.PlatformRoleRider, Status: model.UserStatusSuspended},
	}
}

func TestUserFilter_QueryMatchesAnyField(t *testing.T) {
	rows := adminUsers()

	got := Apply(rows, UserFilter{Query: "MARA"}.Match)
	if len(got) != 1 || got[0].ID != "u2" {
		t.Errorf("query by username = %v, want [u2]", got)
	}

	got = Apply(rows, UserFilter{Query: "okafor"}.Match)
	if len(got) != 1 || got[0].ID != "u1" {
		t.Errorf("query by name = %v, want [u1]", got)
	}

	got = Apply(rows, UserFilter{Query: "kai@x.test"}.Match)
	if len(got) != 1 || got[0].ID != "u3" {
		t.Errorf("query by email = %v, want [u3]", got)
	}
}

func TestUserFilter_EnumAndAllSentinel(t *testing.T) {
	rows := adminUsers()

	if got := Apply(rows, UserFilter{Status: model.UserStatusSuspended}.Match); len(got) != 1 || got[0].ID != "u3" {
		t.Errorf("status filter = %v, want [u3]", got)
	}

	// "all" and "" disable the constraint identically.
	all := Apply(rows, UserFilter{Status: FilterAll}.Match)
	empty := Apply(rows, UserFilter{}.Match)
	if len(all) != 3 || len(empty) != 3 {
		t.Errorf("all/empty = %d/%d rows, want 3/3", len(all), len(empty))
	}

	if got := Apply(rows, UserFilter{Verified: "no"}.Match); len(got) != 1 || got[0].ID != "u3" {
		t.Errorf("verified=no = %v, want [u3]", got)
	}
}

func TestApply_IsPureAndOrderPreserving(t *testing.T) {
	rows := adminUsers()
	filter := UserFilter{Status: model.UserStatusActive}

	first := Apply(rows, filter.Match)
	second := Apply(rows, filter.Match)

	if len(first) != len(second) {
		t.Fatalf("filter is not deterministic: %d vs %d rows", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("row %d differs between runs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID != "u1" || first[1].ID != "u2" {
		t.Errorf("rows = %v, want source order preserved", first)
	}
	if len(rows) != 3 {
		t.Error("filtering must not mutate the source rows")
	}
}

func TestRideFilter_Status(t *testing.T) {
	rows := []model.AdminRide{
		{ID: "r1", Title: "Lime Creek Loop", OrganizerName: "Sam", Status: model.RidePlanned, ScheduledAt: time.Now()},
		{ID: "r2", Title: "Coast Dawn Run", OrganizerName: "Theo", Status: model.RideCompleted},
	}

	if got := Apply(rows, RideFilter{Status: string(model.RideCompleted)}.Match); len(got) != 1 || got[0].ID != "r2" {
		t.Errorf("status filter = %v, want [r2]", got)
	}
	if got := Apply(rows, RideFilter{Query: "lime"}.Match); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("query filter = %v, want [r1]", got)
	}
}

func TestListingFilter_CategoryAndModeration(t *testing.T) {
	rows := []model.AdminListing{
		{ID: "l1", Title: "Helmet", SellerName: "Mara", Category: model.CategoryGear, ModerationStatus: model.ModerationApproved},
		{ID: "l2", Title: "SV650", SellerName: "Theo", Category: model.CategoryBikes, ModerationStatus: model.ModerationFlagged},
	}

	got := Apply(rows, ListingFilter{Category: model.CategoryBikes, Moderation: model.ModerationFlagged}.Match)
	if len(got) != 1 || got[0].ID != "l2" {
		t.Errorf("combined filter = %v, want [l2]", got)
	}
}

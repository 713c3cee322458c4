package store

import (
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func club(id, name string) model.Club {
	return model.Club{ID: id, Name: name, MemberCount: 1}
}

func TestClubStore_DiscoverFirstPageReplaces(t *testing.T) {
	s := NewClubStore(nil)

	gen := s.BeginDiscover()
	s.ApplyDiscover(gen, &model.ClubPage{Clubs: []model.Club{club("a", "Alpha"), club("b", "Beta")}, HasMore: true}, 1)

	gen = s.BeginDiscover()
	s.ApplyDiscover(gen, &model.ClubPage{Clubs: []model.Club{club("c", "Gamma")}, HasMore: false}, 1)

	got := s.Discovered()
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("discovered = %v, want only the refetched first page", got)
	}
	if s.CanDiscoverMore() {
		t.Error("expected no more pages")
	}
}

func TestClubStore_DiscoverLaterPageAppends(t *testing.T) {
	s := NewClubStore(nil)

	gen := s.BeginDiscover()
	s.ApplyDiscover(gen, &model.ClubPage{Clubs: []model.Club{club("a", "Alpha")}, HasMore: true}, 1)
	gen = s.BeginDiscover()
	s.ApplyDiscover(gen, &model.ClubPage{Clubs: []model.Club{club("b", "Beta")}, HasMore: false}, 2)

	got := s.Discovered()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("discovered = %v, want [a b] in fetch order", got)
	}
	if p := s.DiscoverPagination(); p.Page != 2 || p.HasMore {
		t.Errorf("pagination = %+v, want page 2, exhausted", p)
	}
}

func TestClubStore_StaleDiscoverResponseDropped(t *testing.T) {
	s := NewClubStore(nil)

	slow := s.BeginDiscover()
	fast := s.BeginDiscover()

	// The fast (newer) fetch settles first; the slow one arrives late.
	s.ApplyDiscover(fast, &model.ClubPage{Clubs: []model.Club{club("new", "Newer")}}, 1)
	s.ApplyDiscover(slow, &model.ClubPage{Clubs: []model.Club{club("old", "Older")}}, 1)

	got := s.Discovered()
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("discovered = %v, want the newer response to win", got)
	}
}

func TestClubStore_DeleteRemovesEverywhere(t *testing.T) {
	s := NewClubStore(nil)
	s.SetMine(s.BeginMine(), []model.Club{club("a", "Alpha"), club("b", "Beta")})
	s.ApplyDiscover(s.BeginDiscover(), &model.ClubPage{Clubs: []model.Club{club("a", "Alpha")}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.ClubDetails{Club: club("a", "Alpha")})

	s.ApplyDeleted("a")

	if mine := s.MyClubs(); len(mine) != 1 || mine[0].ID != "b" {
		t.Errorf("my clubs = %v, want [b]", mine)
	}
	if disc := s.Discovered(); len(disc) != 0 {
		t.Errorf("discovered = %v, want empty", disc)
	}
	if s.Current() != nil {
		t.Error("current must be cleared when the current club is deleted")
	}
}

func TestClubStore_UpdateMergesIntoCurrentAndLists(t *testing.T) {
	s := NewClubStore(nil)
	s.SetMine(s.BeginMine(), []model.Club{club("a", "Alpha")})
	s.ApplyDiscover(s.BeginDiscover(), &model.ClubPage{Clubs: []model.Club{club("a", "Alpha")}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.ClubDetails{Club: club("a", "Alpha")})

	updated := club("a", "Alpha Riders")
	s.ApplyUpdated(&model.ClubDetails{Club: updated})

	if cur := s.Current(); cur == nil || cur.Name != "Alpha Riders" {
		t.Errorf("current = %v, want the updated name", cur)
	}
	if mine := s.MyClubs(); mine[0].Name != "Alpha Riders" {
		t.Errorf("my clubs entry = %q, want updated name", mine[0].Name)
	}
	if disc := s.Discovered(); disc[0].Name != "Alpha Riders" {
		t.Errorf("discover entry = %q, want updated name", disc[0].Name)
	}
}

func TestClubStore_JoinRequestedMarksPendingOnly(t *testing.T) {
	s := NewClubStore(nil)
	s.SetCurrent(s.BeginCurrent(), &model.ClubDetails{Club: club("a", "Alpha")})

	s.ApplyJoinRequested("a")

	cur := s.Current()
	if !cur.IsPending {
		t.Error("expected the club to be pending")
	}
	if cur.IsMember {
		t.Error("a join request must not grant membership")
	}
	if len(s.MyClubs()) != 0 {
		t.Error("a pending club must not appear in my clubs")
	}
}

func TestClubStore_MemberRoleChangeTouchesOnlyThatMember(t *testing.T) {
	s := NewClubStore(nil)
	s.SetCurrent(s.BeginCurrent(), &model.ClubDetails{
		Club: club("a", "Alpha"),
		Members: []model.ClubMember{
			{ID: "m1", Name: "Founder", Role: model.RoleFounder},
			{ID: "m2", Name: "Rider", Role: model.RoleMember},
			{ID: "m3", Name: "Other", Role: model.RoleMember},
		},
	})

	s.ApplyMemberRole(model.ClubMember{ID: "m2", Name: "Rider", Role: model.RoleOfficer})

	cur := s.Current()
	if cur.Members[1].Role != model.RoleOfficer {
		t.Errorf("m2 role = %s, want OFFICER", cur.Members[1].Role)
	}
	if cur.Members[0].Role != model.RoleFounder || cur.Members[2].Role != model.RoleMember {
		t.Error("other members must be untouched by a role change")
	}
	if len(cur.Members) != 3 {
		t.Errorf("members = %d, want 3", len(cur.Members))
	}
}

func TestClubStore_JoinApprovedPromotesRequest(t *testing.T) {
	s := NewClubStore(nil)
	s.SetCurrent(s.BeginCurrent(), &model.ClubDetails{
		Club:         model.Club{ID: "a", MemberCount: 1},
		Members:      []model.ClubMember{{ID: "m1", Role: model.RoleFounder}},
		JoinRequests: []model.JoinRequest{{ID: "r1", UserID: "u2", Name: "Kai"}},
	})

	s.ApplyJoinApproved("r1", model.ClubMember{ID: "m2", UserID: "u2", Name: "Kai", Role: model.RoleMember})

	cur := s.Current()
	if len(cur.JoinRequests) != 0 {
		t.Error("approved request must be removed")
	}
	if len(cur.Members) != 2 || cur.MemberCount != 2 {
		t.Errorf("members = %d count = %d, want 2/2", len(cur.Members), cur.MemberCount)
	}
}

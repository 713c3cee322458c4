package store

import (
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func profile() *model.Profile {
	return &model.Profile{
		ID:       "u1",
		Username: "dustrider",
		Name:     "Sam",
		Bikes: []model.Bike{
			{ID: "b1", Make: "Triumph", IsPrimary: true},
			{ID: "b2", Make: "Honda"},
		},
		Clubs:  []model.ClubBadge{{ClubID: "c1", Name: "Twisties"}},
		Badges: []model.Badge{{ID: "bd1", Name: "Iron Butt"}},
		Stats:  model.ProfileStats{Following: 5},
	}
}

func TestUserStore_PrimaryBikeIsExclusive(t *testing.T) {
	s := NewUserStore(nil)
	s.SetProfile(s.BeginProfile(), profile())

	s.ApplyBikeUpdated(model.Bike{ID: "b2", Make: "Honda", IsPrimary: true})

	bikes := s.Bikes()
	if bikes[0].IsPrimary {
		t.Error("previous primary must be demoted")
	}
	if !bikes[1].IsPrimary {
		t.Error("updated bike must be primary")
	}
	if b, ok := s.PrimaryBike(); !ok || b.ID != "b2" {
		t.Errorf("primary = %+v, want b2", b)
	}
}

func TestUserStore_AddPrimaryBikeDemotesOld(t *testing.T) {
	s := NewUserStore(nil)
	s.SetProfile(s.BeginProfile(), profile())

	s.ApplyBikeAdded(model.Bike{ID: "b3", Make: "KTM", IsPrimary: true})

	primaries := 0
	for _, b := range s.Bikes() {
		if b.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Errorf("primary bikes = %d, want exactly 1", primaries)
	}
}

func TestUserStore_DeleteBike(t *testing.T) {
	s := NewUserStore(nil)
	s.SetProfile(s.BeginProfile(), profile())

	s.ApplyBikeDeleted("b1")

	bikes := s.Bikes()
	if len(bikes) != 1 || bikes[0].ID != "b2" {
		t.Errorf("bikes = %v, want [b2]", bikes)
	}
}

func TestUserStore_ProfileUpdatePreservesSubCollections(t *testing.T) {
	s := NewUserStore(nil)
	s.SetProfile(s.BeginProfile(), profile())

	// A PATCH response typically carries only the scalar fields.
	s.ApplyProfileUpdated(&model.Profile{ID: "u1", Username: "dustrider", Name: "Sam O."})

	p := s.Profile()
	if p.Name != "Sam O." {
		t.Errorf("name = %q, want updated", p.Name)
	}
	if len(p.Bikes) != 2 || len(p.Clubs) != 1 || len(p.Badges) != 1 {
		t.Error("bikes, clubs and badges must survive a partial profile update")
	}
}

func TestUserStore_FollowUpdatesBothSides(t *testing.T) {
	s := NewUserStore(nil)
	s.SetProfile(s.BeginProfile(), profile())
	s.SetPublic(s.BeginPublic(), &model.PublicProfile{
		Profile: model.Profile{ID: "u2", Stats: model.ProfileStats{Followers: 10}},
	})

	s.ApplyFollowed("u2")

	pub := s.Public()
	if !pub.IsFollowing || pub.Stats.Followers != 11 {
		t.Errorf("public = following=%v followers=%d, want true/11", pub.IsFollowing, pub.Stats.Followers)
	}
	if got := s.Profile().Stats.Following; got != 6 {
		t.Errorf("viewer following = %d, want 6", got)
	}

	// Following twice must not double-count the target.
	s.ApplyFollowed("u2")
	if got := s.Public().Stats.Followers; got != 11 {
		t.Errorf("followers after repeat = %d, want 11", got)
	}

	s.ApplyUnfollowed("u2")
	pub = s.Public()
	if pub.IsFollowing || pub.Stats.Followers != 10 {
		t.Errorf("public after unfollow = following=%v followers=%d, want false/10", pub.IsFollowing, pub.Stats.Followers)
	}
}

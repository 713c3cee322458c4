package store

import (
	"slices"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// Generation slots for profile fetches.
const (
	slotProfile       = "profile"
	slotPublicProfile = "public_profile"
)

// UserStore holds the user slice: the signed-in profile with its bike and
// club-badge sub-collections, plus the public profile being viewed.
type UserStore struct {
	base
	profile *model.Profile
	public  *model.PublicProfile
}

func NewUserStore(bus *dispatch.Bus) *UserStore {
	return &UserStore{base: base{bus: bus, domain: "user"}}
}

// --- operation lifecycle -------------------------------------------------

func (s *UserStore) BeginProfile() uint64 { return s.begin("fetch_profile", slotProfile) }
func (s *UserStore) BeginPublic() uint64  { return s.begin("fetch_public", slotPublicProfile) }

func (s *UserStore) RejectProfile(gen uint64, msg string) {
	s.reject("fetch_profile", slotProfile, gen, msg)
}
func (s *UserStore) RejectPublic(gen uint64, msg string) {
	s.reject("fetch_public", slotPublicProfile, gen, msg)
}

// --- fulfilled reducers --------------------------------------------------

func (s *UserStore) SetProfile(gen uint64, p *model.Profile) {
	s.fulfill("fetch_profile", slotProfile, gen, func() {
		s.profile = p
	})
}

func (s *UserStore) SetPublic(gen uint64, p *model.PublicProfile) {
	s.fulfill("fetch_public", slotPublicProfile, gen, func() {
		s.public = p
	})
}

// ApplyProfileUpdated replaces the profile but keeps the sub-collections
// when the response omits them.
func (s *UserStore) ApplyProfileUpdated(p *model.Profile) {
	s.mutate("update_profile", func() {
		if s.profile != nil {
			if p.Bikes == nil {
				p.Bikes = s.profile.Bikes
			}
			if p.Clubs == nil {
				p.Clubs = s.profile.Clubs
			}
			if p.Badges == nil {
				p.Badges = s.profile.Badges
			}
		}
		s.profile = p
	})
}

// ApplyBikeAdded appends the bike to the profile's garage.
func (s *UserStore) ApplyBikeAdded(bike model.Bike) {
	s.mutate("add_bike", func() {
		if s.profile == nil {
			return
		}
		if bike.IsPrimary {
			s.clearPrimaryBike()
		}
		s.profile.Bikes = append(s.profile.Bikes, bike)
	})
}

// ApplyBikeUpdated swaps the bike record in place. A bike promoted to
// primary demotes the previous one.
func (s *UserStore) ApplyBikeUpdated(bike model.Bike) {
	s.mutate("update_bike", func() {
		if s.profile == nil {
			return
		}
		if bike.IsPrimary {
			s.clearPrimaryBike()
		}
		replaceByID(s.profile.Bikes, bike, func(b model.Bike) string { return b.ID })
	})
}

// ApplyBikeDeleted splices the bike out of the garage.
func (s *UserStore) ApplyBikeDeleted(bikeID string) {
	s.mutate("delete_bike", func() {
		if s.profile == nil {
			return
		}
		s.profile.Bikes = removeByID(s.profile.Bikes, bikeID, func(b model.Bike) string { return b.ID })
	})
}

// clearPrimaryBike must be called with the write lock held.
func (s *UserStore) clearPrimaryBike() {
	for i := range s.profile.Bikes {
		s.profile.Bikes[i].IsPrimary = false
	}
}

// ApplyFollowed updates both sides of a follow the viewer initiated.
func (s *UserStore) ApplyFollowed(userID string) {
	s.mutate("follow", func() {
		if s.public != nil && s.public.ID == userID && !s.public.IsFollowing {
			s.public.IsFollowing = true
			s.public.Stats.Followers++
		}
		if s.profile != nil {
			s.profile.Stats.Following++
		}
	})
}

// ApplyUnfollowed mirrors ApplyFollowed.
func (s *UserStore) ApplyUnfollowed(userID string) {
	s.mutate("unfollow", func() {
		if s.public != nil && s.public.ID == userID && s.public.IsFollowing {
			s.public.IsFollowing = false
			s.public.Stats.Followers--
		}
		if s.profile != nil {
			s.profile.Stats.Following--
		}
	})
}

// --- selectors -----------------------------------------------------------

func (s *UserStore) Profile() *model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	cp := *s.profile
	cp.Bikes = slices.Clone(s.profile.Bikes)
	cp.Clubs = slices.Clone(s.profile.Clubs)
	cp.Badges = slices.Clone(s.profile.Badges)
	return &cp
}

func (s *UserStore) Public() *model.PublicProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.public == nil {
		return nil
	}
	cp := *s.public
	cp.Bikes = slices.Clone(s.public.Bikes)
	cp.Clubs = slices.Clone(s.public.Clubs)
	cp.Badges = slices.Clone(s.public.Badges)
	return &cp
}

// Bikes returns the signed-in rider's garage.
func (s *UserStore) Bikes() []model.Bike {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	return slices.Clone(s.profile.Bikes)
}

// PrimaryBike returns the bike flagged primary, if any.
func (s *UserStore) PrimaryBike() (model.Bike, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.Bike{}, false
	}
	for _, b := range s.profile.Bikes {
		if b.IsPrimary {
			return b, true
		}
	}
	return model.Bike{}, false
}

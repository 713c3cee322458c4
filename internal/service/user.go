package service

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// UserService bundles the profile operations with the user store's selectors.
type UserService struct {
	api   api.UserAPI
	store *store.UserStore
}

func NewUserService(a api.UserAPI, st *store.UserStore) *UserService {
	return &UserService{api: a, store: st}
}

// FetchProfile loads the signed-in rider's profile.
func (s *UserService) FetchProfile(ctx context.Context) error {
	gen := s.store.BeginProfile()
	profile, err := s.api.Profile(ctx)
	if err != nil {
		s.store.RejectProfile(gen, coerce(err, "Failed to load profile"))
		return err
	}
	s.store.SetProfile(gen, profile)
	return nil
}

// FetchPublicProfile loads another rider's profile by username.
func (s *UserService) FetchPublicProfile(ctx context.Context, username string) error {
	gen := s.store.BeginPublic()
	profile, err := s.api.PublicProfile(ctx, username)
	if err != nil {
		s.store.RejectPublic(gen, coerce(err, "Failed to load profile"))
		return err
	}
	s.store.SetPublic(gen, profile)
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) error {
	s.store.BeginMutation("update_profile")
	profile, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		s.store.Fail("update_profile", coerce(err, "Failed to update profile"))
		return err
	}
	s.store.ApplyProfileUpdated(profile)
	return nil
}

func (s *UserService) AddBike(ctx context.Context, req *model.BikeRequest) error {
	s.store.BeginMutation("add_bike")
	bike, err := s.api.AddBike(ctx, req)
	if err != nil {
		s.store.Fail("add_bike", coerce(err, "Failed to add bike"))
		return err
	}
	s.store.ApplyBikeAdded(*bike)
	return nil
}

func (s *UserService) UpdateBike(ctx context.Context, bikeID string, req *model.BikeRequest) error {
	s.store.BeginMutation("update_bike")
	bike, err := s.api.UpdateBike(ctx, bikeID, req)
	if err != nil {
		s.store.Fail("update_bike", coerce(err, "Failed to update bike"))
		return err
	}
	s.store.ApplyBikeUpdated(*bike)
	return nil
}

func (s *UserService) DeleteBike(ctx context.Context, bikeID string) error {
	s.store.BeginMutation("delete_bike")
	if err := s.api.DeleteBike(ctx, bikeID); err != nil {
		s.store.Fail("delete_bike", coerce(err, "Failed to delete bike"))
		return err
	}
	s.store.ApplyBikeDeleted(bikeID)
	return nil
}

// SetPrimaryBike promotes one bike to primary through a regular update.
func (s *UserService) SetPrimaryBike(ctx context.Context, bikeID string) error {
	var target *model.Bike
	for _, b := range s.store.Bikes() {
		if b.ID == bikeID {
			target = &b
			break
		}
	}
	if target == nil {
		return model.ErrBikeNotFound
	}
	req := &model.BikeRequest{
		Make:      target.Make,
		Model:     target.Model,
		Year:      target.Year,
		Nickname:  target.Nickname,
		ImageURL:  target.ImageURL,
		IsPrimary: true,
	}
	return s.UpdateBike(ctx, bikeID, req)
}

func (s *UserService) Follow(ctx context.Context, userID string) error {
	s.store.BeginMutation("follow")
	if err := s.api.Follow(ctx, userID); err != nil {
		s.store.Fail("follow", coerce(err, "Failed to follow rider"))
		return err
	}
	s.store.ApplyFollowed(userID)
	return nil
}

func (s *UserService) Unfollow(ctx context.Context, userID string) error {
	s.store.BeginMutation("unfollow")
	if err := s.api.Unfollow(ctx, userID); err != nil {
		s.store.Fail("unfollow", coerce(err, "Failed to unfollow rider"))
		return err
	}
	s.store.ApplyUnfollowed(userID)
	return nil
}

// --- selectors (facade over the store) -----------------------------------

func (s *UserService) Profile() *model.Profile        { return s.store.Profile() }
func (s *UserService) Public() *model.PublicProfile   { return s.store.Public() }
func (s *UserService) Bikes() []model.Bike            { return s.store.Bikes() }
func (s *UserService) PrimaryBike() (model.Bike, bool) { return s.store.PrimaryBike() }
func (s *UserService) Status() store.Status           { return s.store.Status() }

package admin

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/page"
)

// Service drives the four admin tables. Mutations deliberately do no
// optimistic update: each one refetches its table from the server.
type Service struct {
	api api.AdminAPI

	users    page.Loader[[]model.AdminUser]
	clubs    page.Loader[[]model.AdminClub]
	rides    page.Loader[[]model.AdminRide]
	listings page.Loader[[]model.AdminListing]
}

func NewService(a api.AdminAPI) *Service {
	return &Service{api: a}
}

// --- table refreshes -----------------------------------------------------

func (s *Service) RefreshUsers(ctx context.Context) error {
	return s.users.Load(ctx, "users", s.api.ListUsers)
}

func (s *Service) RefreshClubs(ctx context.Context) error {
	return s.clubs.Load(ctx, "clubs", s.api.ListClubs)
}

func (s *Service) RefreshRides(ctx context.Context) error {
	return s.rides.Load(ctx, "rides", s.api.ListRides)
}

func (s *Service) RefreshListings(ctx context.Context) error {
	return s.listings.Load(ctx, "listings", s.api.ListListings)
}

// --- filtered table reads ------------------------------------------------

func (s *Service) Users(f UserFilter) []model.AdminUser {
	return Apply(s.users.Data(), f.Match)
}

func (s *Service) Clubs(f ClubFilter) []model.AdminClub {
	return Apply(s.clubs.Data(), f.Match)
}

func (s *Service) Rides(f RideFilter) []model.AdminRide {
	return Apply(s.rides.Data(), f.Match)
}

func (s *Service) Listings(f ListingFilter) []model.AdminListing {
	return Apply(s.listings.Data(), f.Match)
}

func (s *Service) UsersState() (page.State, string)    { return s.users.State(), s.users.Err() }
func (s *Service) ClubsState() (page.State, string)    { return s.clubs.State(), s.clubs.Err() }
func (s *Service) RidesState() (page.State, string)    { return s.rides.State(), s.rides.Err() }
func (s *Service) ListingsState() (page.State, string) { return s.listings.State(), s.listings.Err() }

// --- moderation actions --------------------------------------------------

func (s *Service) VerifyClub(ctx context.Context, clubID string) error {
	if err := s.api.VerifyClub(ctx, clubID); err != nil {
		return err
	}
	return s.RefreshClubs(ctx)
}

func (s *Service) ChangeUserRole(ctx context.Context, userID, role string) error {
	if err := s.api.ChangeUserRole(ctx, userID, role); err != nil {
		return err
	}
	return s.RefreshUsers(ctx)
}

func (s *Service) SuspendUser(ctx context.Context, userID string) error {
	if err := s.api.SuspendUser(ctx, userID); err != nil {
		return err
	}
	return s.RefreshUsers(ctx)
}

func (s *Service) ActivateUser(ctx context.Context, userID string) error {
	if err := s.api.ActivateUser(ctx, userID); err != nil {
		return err
	}
	return s.RefreshUsers(ctx)
}

func (s *Service) ApproveListing(ctx context.Context, listingID string) error {
	if err := s.api.ApproveListing(ctx, listingID); err != nil {
		return err
	}
	return s.RefreshListings(ctx)
}

func (s *Service) FlagListing(ctx context.Context, listingID string) error {
	if err := s.api.FlagListing(ctx, listingID); err != nil {
		return err
	}
	return s.RefreshListings(ctx)
}

func (s *Service) RemoveListing(ctx context.Context, listingID string) error {
	if err := s.api.RemoveListing(ctx, listingID); err != nil {
		return err
	}
	return s.RefreshListings(ctx)
}

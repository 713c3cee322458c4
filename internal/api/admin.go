package api

import (
	"context"
	"net/http"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// AdminClient implements AdminAPI over the shared HTTP transport.
// Every mutation is single-purpose; the caller refetches the list afterwards.
type AdminClient struct {
	c *Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

func (ac *AdminClient) ListUsers(ctx context.Context) ([]model.AdminUser, error) {
	var out struct {
		Users []model.AdminUser `json:"users"`
	}
	if err := ac.c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (ac *AdminClient) ListClubs(ctx context.Context) ([]model.AdminClub, error) {
	var out struct {
		Clubs []model.AdminClub `json:"clubs"`
	}
	if err := ac.c.do(ctx, http.MethodGet, "/admin/clubs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Clubs, nil
}

func (ac *AdminClient) ListRides(ctx context.Context) ([]model.AdminRide, error) {
	var out struct {
		Rides []model.AdminRide `json:"rides"`
	}
	if err := ac.c.do(ctx, http.MethodGet, "/admin/rides", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Rides, nil
}

func (ac *AdminClient) ListListings(ctx context.Context) ([]model.AdminListing, error) {
	var out struct {
		Listings []model.AdminListing `json:"listings"`
	}
	if err := ac.c.do(ctx, http.MethodGet, "/admin/listings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

func (ac *AdminClient) VerifyClub(ctx context.Context, clubID string) error {
	return ac.c.do(ctx, http.MethodPost, "/admin/clubs/"+clubID+"/verify", nil, nil, nil)
}

func (ac *AdminClient) ChangeUserRole(ctx context.Context, userID, role string) error {
	body := map[string]string{"role": role}
	return ac.c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/role", nil, body, nil)
}

func (ac *AdminClient) SuspendUser(ctx context.Context, userID string) error {
	return ac.c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/suspend", nil, nil, nil)
}

func (ac *AdminClient) ActivateUser(ctx context.Context, userID string) error {
	return ac.c.do(ctx, http.MethodPost, "/admin/users/"+userID+"/activate", nil, nil, nil)
}

func (ac *AdminClient) ApproveListing(ctx context.Context, listingID string) error {
	return ac.c.do(ctx, http.MethodPost, "/admin/listings/"+listingID+"/approve", nil, nil, nil)
}

func (ac *AdminClient) FlagListing(ctx context.Context, listingID string) error {
	return ac.c.do(ctx, http.MethodPost, "/admin/listings/"+listingID+"/flag", nil, nil, nil)
}

func (ac *AdminClient) RemoveListing(ctx context.Context, listingID string) error {
	return ac.c.do(ctx, http.MethodDelete, "/admin/listings/"+listingID, nil, nil, nil)
}

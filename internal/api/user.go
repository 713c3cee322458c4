package api

import (
	"context"
	"net/http"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// UserClient implements UserAPI over the shared HTTP transport.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (uc *UserClient) Profile(ctx context.Context) (*model.Profile, error) {
	var out struct {
		User model.Profile `json:"user"`
	}
	if err := uc.c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (uc *UserClient) PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error) {
	var out struct {
		User model.PublicProfile `json:"user"`
	}
	if err := uc.c.do(ctx, http.MethodGet, "/users/"+username, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (uc *UserClient) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.Profile, error) {
	var out struct {
		User model.Profile `json:"user"`
	}
	if err := uc.c.do(ctx, http.MethodPatch, "/users/me", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (uc *UserClient) AddBike(ctx context.Context, req *model.BikeRequest) (*model.Bike, error) {
	var out struct {
		Bike model.Bike `json:"bike"`
	}
	if err := uc.c.do(ctx, http.MethodPost, "/users/me/bikes", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Bike, nil
}

func (uc *UserClient) UpdateBike(ctx context.Context, bikeID string, req *model.BikeRequest) (*model.Bike, error) {
	var out struct {
		Bike model.Bike `json:"bike"`
	}
	if err := uc.c.do(ctx, http.MethodPatch, "/users/me/bikes/"+bikeID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Bike, nil
}

func (uc *UserClient) DeleteBike(ctx context.Context, bikeID string) error {
	return uc.c.do(ctx, http.MethodDelete, "/users/me/bikes/"+bikeID, nil, nil, nil)
}

func (uc *UserClient) Follow(ctx context.Context, userID string) error {
	return uc.c.do(ctx, http.MethodPost, "/users/"+userID+"/follow", nil, nil, nil)
}

func (uc *UserClient) Unfollow(ctx context.Context, userID string) error {
	return uc.c.do(ctx, http.MethodDelete, "/users/"+userID+"/follow", nil, nil, nil)
}

package api

import (
	"context"
	"net/http"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// RidesClient implements RidesAPI over the shared HTTP transport.
type RidesClient struct {
	c *Client
}

func NewRidesClient(c *Client) *RidesClient {
	return &RidesClient{c: c}
}

func (rc *RidesClient) list(ctx context.Context, path string, page, limit int) (*model.RidePage, error) {
	var out model.RidePage
	if err := rc.c.do(ctx, http.MethodGet, path, pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (rc *RidesClient) Upcoming(ctx context.Context, page, limit int) (*model.RidePage, error) {
	return rc.list(ctx, "/rides/upcoming", page, limit)
}

func (rc *RidesClient) Mine(ctx context.Context, page, limit int) (*model.RidePage, error) {
	return rc.list(ctx, "/rides/mine", page, limit)
}

func (rc *RidesClient) Past(ctx context.Context, page, limit int) (*model.RidePage, error) {
	return rc.list(ctx, "/rides/past", page, limit)
}

func (rc *RidesClient) Get(ctx context.Context, rideID string) (*model.RideDetails, error) {
	var out struct {
		Ride model.RideDetails `json:"ride"`
	}
	if err := rc.c.do(ctx, http.MethodGet, "/rides/"+rideID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Ride, nil
}

func (rc *RidesClient) Create(ctx context.Context, req *model.CreateRideRequest) (*model.RideDetails, error) {
	var out struct {
		Ride model.RideDetails `json:"ride"`
	}
	if err := rc.c.do(ctx, http.MethodPost, "/rides", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Ride, nil
}

func (rc *RidesClient) Update(ctx context.Context, rideID string, req *model.UpdateRideRequest) (*model.RideDetails, error) {
	var out struct {
		Ride model.RideDetails `json:"ride"`
	}
	if err := rc.c.do(ctx, http.MethodPatch, "/rides/"+rideID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Ride, nil
}

func (rc *RidesClient) Delete(ctx context.Context, rideID string) error {
	return rc.c.do(ctx, http.MethodDelete, "/rides/"+rideID, nil, nil, nil)
}

func (rc *RidesClient) Join(ctx context.Context, rideID string) (*model.RideParticipant, error) {
	var out struct {
		Participant model.RideParticipant `json:"participant"`
	}
	if err := rc.c.do(ctx, http.MethodPost, "/rides/"+rideID+"/join", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Participant, nil
}

func (rc *RidesClient) Leave(ctx context.Context, rideID string) error {
	return rc.c.do(ctx, http.MethodPost, "/rides/"+rideID+"/leave", nil, nil, nil)
}

func (rc *RidesClient) Start(ctx context.Context, rideID string) (*model.RideDetails, error) {
	var out struct {
		Ride model.RideDetails `json:"ride"`
	}
	if err := rc.c.do(ctx, http.MethodPost, "/rides/"+rideID+"/start", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Ride, nil
}

func (rc *RidesClient) End(ctx context.Context, rideID string) (*model.RideDetails, error) {
	var out struct {
		Ride model.RideDetails `json:"ride"`
	}
	if err := rc.c.do(ctx, http.MethodPost, "/rides/"+rideID+"/end", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Ride, nil
}

func (rc *RidesClient) UpdateLiveStatus(ctx context.Context, rideID string, status model.LiveStatus, loc *model.GeoPoint) error {
	body := struct {
		Status   model.LiveStatus `json:"status"`
		Location *model.GeoPoint  `json:"location,omitempty"`
	}{Status: status, Location: loc}
	return rc.c.do(ctx, http.MethodPost, "/rides/"+rideID+"/live", nil, body, nil)
}

package service

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// RideService bundles the ride operations with the ride store's selectors.
type RideService struct {
	api      api.RidesAPI
	store    *store.RideStore
	pageSize int

	// userID identifies the viewer in participant lists.
	userID string
}

func NewRideService(a api.RidesAPI, st *store.RideStore, pageSize int, userID string) *RideService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &RideService{api: a, store: st, pageSize: pageSize, userID: userID}
}

func (s *RideService) fetcher(list store.RideList) func(context.Context, int, int) (*model.RidePage, error) {
	switch list {
	case store.RidesMine:
		return s.api.Mine
	case store.RidesPast:
		return s.api.Past
	default:
		return s.api.Upcoming
	}
}

// FetchList fetches the first page of one of the ride lists, replacing it.
func (s *RideService) FetchList(ctx context.Context, list store.RideList) error {
	gen := s.store.BeginList(list)
	page, err := s.fetcher(list)(ctx, 1, s.pageSize)
	if err != nil {
		s.store.RejectList(list, gen, coerce(err, "Failed to load rides"))
		return err
	}
	s.store.ApplyList(list, gen, page, 1)
	return nil
}

// FetchMore appends the next page of one of the ride lists; exhausted lists
// make this a no-op.
func (s *RideService) FetchMore(ctx context.Context, list store.RideList) error {
	if !s.store.CanFetchMore(list) {
		return nil
	}
	next := s.store.ListPagination(list).Page + 1
	gen := s.store.BeginList(list)
	page, err := s.fetcher(list)(ctx, next, s.pageSize)
	if err != nil {
		s.store.RejectList(list, gen, coerce(err, "Failed to load rides"))
		return err
	}
	s.store.ApplyList(list, gen, page, next)
	return nil
}

// FetchRide loads the ride detail record.
func (s *RideService) FetchRide(ctx context.Context, rideID string) error {
	gen := s.store.BeginCurrent()
	details, err := s.api.Get(ctx, rideID)
	if err != nil {
		s.store.RejectCurrent(gen, coerce(err, "Failed to load ride"))
		return err
	}
	s.store.SetCurrent(gen, details)
	return nil
}

func (s *RideService) CreateRide(ctx context.Context, req *model.CreateRideRequest) (*model.RideDetails, error) {
	s.store.BeginMutation("create")
	details, err := s.api.Create(ctx, req)
	if err != nil {
		s.store.Fail("create", coerce(err, "Failed to create ride"))
		return nil, err
	}
	s.store.ApplyCreated(details)
	return details, nil
}

func (s *RideService) UpdateRide(ctx context.Context, rideID string, req *model.UpdateRideRequest) error {
	s.store.BeginMutation("update")
	details, err := s.api.Update(ctx, rideID, req)
	if err != nil {
		s.store.Fail("update", coerce(err, "Failed to update ride"))
		return err
	}
	s.store.ApplyUpdated(details)
	return nil
}

func (s *RideService) DeleteRide(ctx context.Context, rideID string) error {
	s.store.BeginMutation("delete")
	if err := s.api.Delete(ctx, rideID); err != nil {
		s.store.Fail("delete", coerce(err, "Failed to delete ride"))
		return err
	}
	s.store.ApplyDeleted(rideID)
	return nil
}

func (s *RideService) JoinRide(ctx context.Context, rideID string) error {
	s.store.BeginMutation("join")
	participant, err := s.api.Join(ctx, rideID)
	if err != nil {
		s.store.Fail("join", coerce(err, "Failed to join ride"))
		return err
	}
	s.store.ApplyJoined(rideID, *participant)
	return nil
}

func (s *RideService) LeaveRide(ctx context.Context, rideID string) error {
	s.store.BeginMutation("leave")
	if err := s.api.Leave(ctx, rideID); err != nil {
		s.store.Fail("leave", coerce(err, "Failed to leave ride"))
		return err
	}
	s.store.ApplyLeft(rideID, s.userID)
	return nil
}

// StartRide moves a planned ride to active.
func (s *RideService) StartRide(ctx context.Context, rideID string) error {
	s.store.BeginMutation("start")
	details, err := s.api.Start(ctx, rideID)
	if err != nil {
		s.store.Fail("start", coerce(err, "Failed to start ride"))
		return err
	}
	s.store.ApplyLifecycle("start", details)
	return nil
}

// EndRide moves an active ride to completed.
func (s *RideService) EndRide(ctx context.Context, rideID string) error {
	s.store.BeginMutation("end")
	details, err := s.api.End(ctx, rideID)
	if err != nil {
		s.store.Fail("end", coerce(err, "Failed to end ride"))
		return err
	}
	s.store.ApplyLifecycle("end", details)
	return nil
}

// ReportLiveStatus pushes the viewer's safety state during an active ride.
func (s *RideService) ReportLiveStatus(ctx context.Context, rideID string, status model.LiveStatus, loc *model.GeoPoint) error {
	s.store.BeginMutation("live_status")
	if err := s.api.UpdateLiveStatus(ctx, rideID, status, loc); err != nil {
		s.store.Fail("live_status", coerce(err, "Failed to update status"))
		return err
	}
	s.store.ApplyLiveStatus(rideID, s.userID, status, loc)
	return nil
}

// --- selectors (facade over the store) -----------------------------------

func (s *RideService) List(list store.RideList) []model.Ride         { return s.store.List(list) }
func (s *RideService) Upcoming() []model.Ride                        { return s.store.List(store.RidesUpcoming) }
func (s *RideService) Mine() []model.Ride                            { return s.store.List(store.RidesMine) }
func (s *RideService) Past() []model.Ride                            { return s.store.List(store.RidesPast) }
func (s *RideService) Current() *model.RideDetails                   { return s.store.Current() }
func (s *RideService) IsParticipant(rideID string) bool              { return s.store.IsParticipant(rideID) }
func (s *RideService) CanFetchMore(list store.RideList) bool         { return s.store.CanFetchMore(list) }
func (s *RideService) Pagination(list store.RideList) store.Pagination {
	return s.store.ListPagination(list)
}
func (s *RideService) Status() store.Status { return s.store.Status() }

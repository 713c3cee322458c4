package store

import (
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func ride(id string, status model.RideStatus) model.Ride {
	return model.Ride{ID: id, Title: "Ride " + id, Status: status, ParticipantCount: 3}
}

func TestRideStore_JoinBumpsCountInEveryList(t *testing.T) {
	s := NewRideStore(nil)
	s.ApplyList(RidesUpcoming, s.BeginList(RidesUpcoming), &model.RidePage{Rides: []model.Ride{ride("r1", model.RidePlanned)}}, 1)
	s.ApplyList(RidesMine, s.BeginList(RidesMine), &model.RidePage{Rides: []model.Ride{ride("r1", model.RidePlanned)}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.RideDetails{Ride: ride("r1", model.RidePlanned)})

	s.ApplyJoined("r1", model.RideParticipant{ID: "rp1", UserID: "u1"})

	if got := s.List(RidesUpcoming)[0].ParticipantCount; got != 4 {
		t.Errorf("upcoming count = %d, want 4", got)
	}
	if got := s.List(RidesMine)[0].ParticipantCount; got != 4 {
		t.Errorf("mine count = %d, want 4", got)
	}
	cur := s.Current()
	if !cur.IsParticipant || cur.ParticipantCount != 4 || len(cur.Participants) != 1 {
		t.Errorf("current = %+v, want joined with count 4", cur.Ride)
	}
	if !s.IsParticipant("r1") {
		t.Error("IsParticipant must reflect the join")
	}
}

func TestRideStore_LeaveReversesJoin(t *testing.T) {
	s := NewRideStore(nil)
	s.ApplyList(RidesUpcoming, s.BeginList(RidesUpcoming), &model.RidePage{Rides: []model.Ride{ride("r1", model.RidePlanned)}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.RideDetails{
		Ride:          ride("r1", model.RidePlanned),
		Participants:  []model.RideParticipant{{ID: "rp1", UserID: "u1"}},
		IsParticipant: true,
	})

	s.ApplyLeft("r1", "u1")

	if got := s.List(RidesUpcoming)[0].ParticipantCount; got != 2 {
		t.Errorf("upcoming count = %d, want 2", got)
	}
	cur := s.Current()
	if cur.IsParticipant || len(cur.Participants) != 0 {
		t.Errorf("current = %+v, want left", cur)
	}
}

func TestRideStore_LifecycleInstallsNewStatus(t *testing.T) {
	s := NewRideStore(nil)
	s.ApplyList(RidesUpcoming, s.BeginList(RidesUpcoming), &model.RidePage{Rides: []model.Ride{ride("r1", model.RidePlanned)}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.RideDetails{Ride: ride("r1", model.RidePlanned)})

	started := ride("r1", model.RideActive)
	s.ApplyLifecycle("start", &model.RideDetails{Ride: started, TrackingEnabled: true})

	if cur := s.Current(); cur.Status != model.RideActive || !cur.TrackingEnabled {
		t.Errorf("current = %+v, want active with tracking", cur.Ride)
	}
	if got := s.List(RidesUpcoming)[0].Status; got != model.RideActive {
		t.Errorf("upcoming status = %s, want active", got)
	}
}

func TestRideStore_LiveStatusUpdatesParticipant(t *testing.T) {
	s := NewRideStore(nil)
	s.SetCurrent(s.BeginCurrent(), &model.RideDetails{
		Ride: ride("r1", model.RideActive),
		Participants: []model.RideParticipant{
			{ID: "rp1", UserID: "u1", LiveStatus: model.LiveOK},
			{ID: "rp2", UserID: "u2", LiveStatus: model.LiveOK},
		},
	})

	loc := &model.GeoPoint{Lat: 30.27, Lng: -97.74}
	s.ApplyLiveStatus("r1", "u2", model.LiveNeedHelp, loc)

	cur := s.Current()
	if cur.Participants[1].LiveStatus != model.LiveNeedHelp || cur.Participants[1].LastLocation == nil {
		t.Errorf("participant = %+v, want need_help with location", cur.Participants[1])
	}
	if cur.Participants[0].LiveStatus != model.LiveOK {
		t.Error("other participants must be untouched")
	}
}

func TestRideStore_DeleteClearsCurrentAndLists(t *testing.T) {
	s := NewRideStore(nil)
	s.ApplyList(RidesMine, s.BeginList(RidesMine), &model.RidePage{Rides: []model.Ride{ride("r1", model.RidePlanned), ride("r2", model.RidePlanned)}}, 1)
	s.SetCurrent(s.BeginCurrent(), &model.RideDetails{Ride: ride("r1", model.RidePlanned)})

	s.ApplyDeleted("r1")

	if mine := s.List(RidesMine); len(mine) != 1 || mine[0].ID != "r2" {
		t.Errorf("mine = %v, want [r2]", mine)
	}
	if s.Current() != nil {
		t.Error("current must be cleared when the current ride is deleted")
	}
}

func TestRideStore_CreatePrependsToMineAndUpcoming(t *testing.T) {
	s := NewRideStore(nil)
	s.ApplyList(RidesMine, s.BeginList(RidesMine), &model.RidePage{Rides: []model.Ride{ride("old", model.RidePlanned)}}, 1)

	s.ApplyCreated(&model.RideDetails{Ride: ride("new", model.RidePlanned), IsParticipant: true})

	if mine := s.List(RidesMine); mine[0].ID != "new" {
		t.Errorf("mine[0] = %s, want the new ride first", mine[0].ID)
	}
	if up := s.List(RidesUpcoming); len(up) != 1 || up[0].ID != "new" {
		t.Errorf("upcoming = %v, want [new]", up)
	}
	if cur := s.Current(); cur == nil || cur.ID != "new" {
		t.Error("created ride must become current")
	}
}

package store

import (
	"log"
	"slices"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// RideList names one of the three authoritative ride lists.
type RideList string

const (
	RidesUpcoming RideList = "upcoming"
	RidesMine     RideList = "mine"
	RidesPast     RideList = "past"
)

const slotRideCurrent = "current"

// RideStore holds the rides slice: upcoming/mine/past lists plus the
// current detail record.
type RideStore struct {
	base
	lists   map[RideList]*Collection[model.Ride]
	current *model.RideDetails
}

func NewRideStore(bus *dispatch.Bus) *RideStore {
	return &RideStore{
		base: base{bus: bus, domain: "rides"},
		lists: map[RideList]*Collection[model.Ride]{
			RidesUpcoming: {},
			RidesMine:     {},
			RidesPast:     {},
		},
	}
}

// --- operation lifecycle -------------------------------------------------

func (s *RideStore) BeginList(list RideList) uint64 {
	return s.begin("fetch_"+string(list), string(list))
}

func (s *RideStore) RejectList(list RideList, gen uint64, msg string) {
	s.reject("fetch_"+string(list), string(list), gen, msg)
}

func (s *RideStore) BeginCurrent() uint64 { return s.begin("fetch_ride", slotRideCurrent) }

func (s *RideStore) RejectCurrent(gen uint64, msg string) {
	s.reject("fetch_ride", slotRideCurrent, gen, msg)
}

// --- fulfilled reducers --------------------------------------------------

// ApplyList installs a page of one of the ride lists. Page 1 replaces,
// later pages append.
func (s *RideStore) ApplyList(list RideList, gen uint64, page *model.RidePage, pageNum int) {
	ok := s.fulfill("fetch_"+string(list), string(list), gen, func() {
		c := s.lists[list]
		if pageNum <= 1 {
			c.Reset(page.Rides, page.HasMore)
		} else {
			c.Extend(page.Rides, pageNum, page.HasMore)
		}
	})
	if !ok {
		log.Printf("[RideStore] dropped stale %s response gen=%d page=%d", list, gen, pageNum)
	}
}

func (s *RideStore) SetCurrent(gen uint64, details *model.RideDetails) {
	if !s.fulfill("fetch_ride", slotRideCurrent, gen, func() {
		s.current = details
	}) {
		log.Printf("[RideStore] dropped stale ride detail response gen=%d", gen)
	}
}

// ApplyCreated prepends the new ride to mine and upcoming and makes it current.
func (s *RideStore) ApplyCreated(details *model.RideDetails) {
	s.mutate("create", func() {
		mine := s.lists[RidesMine]
		mine.Items = append([]model.Ride{details.Ride}, mine.Items...)
		upcoming := s.lists[RidesUpcoming]
		upcoming.Items = append([]model.Ride{details.Ride}, upcoming.Items...)
		s.current = details
	})
}

// ApplyUpdated merges the updated ride into the current detail and every
// list entry that carries it.
func (s *RideStore) ApplyUpdated(details *model.RideDetails) {
	s.mutate("update", func() {
		s.applyToAll(details)
	})
}

// applyToAll must be called with the write lock held.
func (s *RideStore) applyToAll(details *model.RideDetails) {
	if s.current != nil && s.current.ID == details.ID {
		s.current = details
	}
	for _, c := range s.lists {
		replaceByID(c.Items, details.Ride, rideID)
	}
}

// ApplyDeleted drops the ride from every list and nulls current if it matched.
func (s *RideStore) ApplyDeleted(id string) {
	s.mutate("delete", func() {
		for _, c := range s.lists {
			c.Items = removeByID(c.Items, id, rideID)
		}
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
}

// ApplyJoined records the viewer's new participation.
func (s *RideStore) ApplyJoined(id string, participant model.RideParticipant) {
	s.mutate("join", func() {
		if s.current != nil && s.current.ID == id {
			s.current.Participants = append(s.current.Participants, participant)
			s.current.IsParticipant = true
			s.current.ParticipantCount++
		}
		s.bumpParticipantCount(id, 1)
	})
}

// ApplyLeft removes the viewer's participation.
func (s *RideStore) ApplyLeft(id, userID string) {
	s.mutate("leave", func() {
		if s.current != nil && s.current.ID == id {
			s.current.Participants = removeByID(s.current.Participants, userID,
				func(p model.RideParticipant) string { return p.UserID })
			s.current.IsParticipant = false
			s.current.ParticipantCount--
		}
		s.bumpParticipantCount(id, -1)
	})
}

// ApplyLifecycle installs the ride returned by a start/end call.
func (s *RideStore) ApplyLifecycle(op string, details *model.RideDetails) {
	s.mutate(op, func() {
		s.applyToAll(details)
	})
}

// ApplyLiveStatus updates one participant's safety state on the current ride.
func (s *RideStore) ApplyLiveStatus(id, userID string, status model.LiveStatus, loc *model.GeoPoint) {
	s.mutate("live_status", func() {
		if s.current == nil || s.current.ID != id {
			return
		}
		for i := range s.current.Participants {
			if s.current.Participants[i].UserID == userID {
				s.current.Participants[i].LiveStatus = status
				if loc != nil {
					s.current.Participants[i].LastLocation = loc
				}
				return
			}
		}
	})
}

// bumpParticipantCount must be called with the write lock held.
func (s *RideStore) bumpParticipantCount(id string, delta int) {
	for _, c := range s.lists {
		for i := range c.Items {
			if c.Items[i].ID == id {
				c.Items[i].ParticipantCount += delta
			}
		}
	}
}

// --- selectors -----------------------------------------------------------

func (s *RideStore) List(list RideList) []model.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists[list].Items)
}

func (s *RideStore) ListPagination(list RideList) Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists[list].Pagination
}

func (s *RideStore) CanFetchMore(list RideList) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists[list].CanFetchMore()
}

func (s *RideStore) Current() *model.RideDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.Participants = slices.Clone(s.current.Participants)
	return &cp
}

// IsParticipant reports whether the viewer participates in the ride. Only
// the current detail record knows; list entries carry counts, not rosters.
func (s *RideStore) IsParticipant(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.ID == id && s.current.IsParticipant
}

func rideID(r model.Ride) string { return r.ID }

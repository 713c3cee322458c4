package store

import (
	"log"
	"slices"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// Generation slots for club fetches.
const (
	slotClubsMine     = "mine"
	slotClubsDiscover = "discover"
	slotClubCurrent   = "current"
	slotClubMembers   = "members"
)

// ClubStore holds the clubs slice: the authoritative "my clubs" and
// "discover" lists plus the current detail record.
type ClubStore struct {
	base
	my       []model.Club
	discover Collection[model.Club]
	current  *model.ClubDetails
}

func NewClubStore(bus *dispatch.Bus) *ClubStore {
	return &ClubStore{base: base{bus: bus, domain: "clubs"}}
}

// --- operation lifecycle -------------------------------------------------

func (s *ClubStore) BeginMine() uint64     { return s.begin("fetch_mine", slotClubsMine) }
func (s *ClubStore) BeginDiscover() uint64 { return s.begin("discover", slotClubsDiscover) }
func (s *ClubStore) BeginCurrent() uint64  { return s.begin("fetch_club", slotClubCurrent) }
func (s *ClubStore) BeginMembers() uint64  { return s.begin("fetch_members", slotClubMembers) }

func (s *ClubStore) RejectMine(gen uint64, msg string) {
	s.reject("fetch_mine", slotClubsMine, gen, msg)
}
func (s *ClubStore) RejectDiscover(gen uint64, msg string) {
	s.reject("discover", slotClubsDiscover, gen, msg)
}
func (s *ClubStore) RejectCurrent(gen uint64, msg string) {
	s.reject("fetch_club", slotClubCurrent, gen, msg)
}
func (s *ClubStore) RejectMembers(gen uint64, msg string) {
	s.reject("fetch_members", slotClubMembers, gen, msg)
}

// --- fulfilled reducers --------------------------------------------------

func (s *ClubStore) SetMine(gen uint64, clubs []model.Club) {
	if !s.fulfill("fetch_mine", slotClubsMine, gen, func() {
		s.my = clubs
	}) {
		log.Printf("[ClubStore] dropped stale my-clubs response gen=%d", gen)
	}
}

// ApplyDiscover installs a discover page. Page 1 replaces, later pages append.
func (s *ClubStore) ApplyDiscover(gen uint64, page *model.ClubPage, pageNum int) {
	ok := s.fulfill("discover", slotClubsDiscover, gen, func() {
		if pageNum <= 1 {
			s.discover.Reset(page.Clubs, page.HasMore)
		} else {
			s.discover.Extend(page.Clubs, pageNum, page.HasMore)
		}
	})
	if !ok {
		log.Printf("[ClubStore] dropped stale discover response gen=%d page=%d", gen, pageNum)
	}
}

func (s *ClubStore) SetCurrent(gen uint64, details *model.ClubDetails) {
	if !s.fulfill("fetch_club", slotClubCurrent, gen, func() {
		s.current = details
	}) {
		log.Printf("[ClubStore] dropped stale club detail response gen=%d", gen)
	}
}

func (s *ClubStore) SetMembers(gen uint64, members []model.ClubMember) {
	s.fulfill("fetch_members", slotClubMembers, gen, func() {
		if s.current != nil {
			s.current.Members = members
		}
	})
}

// ApplyCreated prepends the new club to my clubs and makes it current.
func (s *ClubStore) ApplyCreated(details *model.ClubDetails) {
	s.mutate("create", func() {
		s.my = append([]model.Club{details.Club}, s.my...)
		s.current = details
	})
}

// ApplyUpdated merges the updated record into the current detail and every
// list entry that carries it, keeping detail and lists consistent.
func (s *ClubStore) ApplyUpdated(details *model.ClubDetails) {
	s.mutate("update", func() {
		if s.current != nil && s.current.ID == details.ID {
			s.current = details
		}
		replaceByID(s.my, details.Club, clubID)
		replaceByID(s.discover.Items, details.Club, clubID)
	})
}

// ApplyDeleted drops the club from every list and nulls current if it matched.
func (s *ClubStore) ApplyDeleted(clubID string) {
	s.mutate("delete", func() {
		s.my = removeByID(s.my, clubID, func(c model.Club) string { return c.ID })
		s.discover.Items = removeByID(s.discover.Items, clubID, func(c model.Club) string { return c.ID })
		if s.current != nil && s.current.ID == clubID {
			s.current = nil
		}
	})
}

// ApplyJoinRequested flags the current club as pending. The club is NOT
// added to my clubs until the request is approved.
func (s *ClubStore) ApplyJoinRequested(clubID string) {
	s.mutate("request_join", func() {
		if s.current != nil && s.current.ID == clubID {
			s.current.IsPending = true
		}
	})
}

// ApplyLeft removes the club from my clubs and clears membership flags.
func (s *ClubStore) ApplyLeft(clubID string) {
	s.mutate("leave", func() {
		s.my = removeByID(s.my, clubID, func(c model.Club) string { return c.ID })
		if s.current != nil && s.current.ID == clubID {
			s.current.IsMember = false
			s.current.MemberCount--
		}
	})
}

// ApplyMemberRole swaps the updated member record in, leaving the rest of
// the member list untouched.
func (s *ClubStore) ApplyMemberRole(member model.ClubMember) {
	s.mutate("update_role", func() {
		if s.current == nil {
			return
		}
		replaceByID(s.current.Members, member, func(m model.ClubMember) string { return m.ID })
	})
}

// ApplyMemberRemoved drops the member and decrements the count.
func (s *ClubStore) ApplyMemberRemoved(memberID string) {
	s.mutate("remove_member", func() {
		if s.current == nil {
			return
		}
		before := len(s.current.Members)
		s.current.Members = removeByID(s.current.Members, memberID, func(m model.ClubMember) string { return m.ID })
		if len(s.current.Members) < before {
			s.current.MemberCount--
		}
	})
}

// ApplyJoinApproved converts a join request into a member.
func (s *ClubStore) ApplyJoinApproved(requestID string, member model.ClubMember) {
	s.mutate("approve_join", func() {
		if s.current == nil {
			return
		}
		s.current.JoinRequests = removeByID(s.current.JoinRequests, requestID, func(r model.JoinRequest) string { return r.ID })
		s.current.Members = append(s.current.Members, member)
		s.current.MemberCount++
	})
}

// ApplyJoinRejected drops the join request.
func (s *ClubStore) ApplyJoinRejected(requestID string) {
	s.mutate("reject_join", func() {
		if s.current == nil {
			return
		}
		s.current.JoinRequests = removeByID(s.current.JoinRequests, requestID, func(r model.JoinRequest) string { return r.ID })
	})
}

// --- selectors -----------------------------------------------------------

func (s *ClubStore) MyClubs() []model.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.my)
}

func (s *ClubStore) Discovered() []model.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.discover.Items)
}

func (s *ClubStore) DiscoverPagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discover.Pagination
}

// CanDiscoverMore reports whether a fetch-more should be issued at all.
func (s *ClubStore) CanDiscoverMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discover.CanFetchMore()
}

func (s *ClubStore) Current() *model.ClubDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.Members = slices.Clone(s.current.Members)
	cp.JoinRequests = slices.Clone(s.current.JoinRequests)
	return &cp
}

// IsMember reports whether the club is in my clubs.
func (s *ClubStore) IsMember(clubID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.my, func(c model.Club) bool { return c.ID == clubID })
}

func clubID(c model.Club) string { return c.ID }

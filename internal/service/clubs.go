package service

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// ClubService bundles the club operations with the club store's selectors.
type ClubService struct {
	api      api.ClubsAPI
	store    *store.ClubStore
	pageSize int
}

func NewClubService(a api.ClubsAPI, st *store.ClubStore, pageSize int) *ClubService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &ClubService{api: a, store: st, pageSize: pageSize}
}

// FetchMyClubs replaces the authoritative "my clubs" list.
func (s *ClubService) FetchMyClubs(ctx context.Context) error {
	gen := s.store.BeginMine()
	clubs, err := s.api.MyClubs(ctx)
	if err != nil {
		s.store.RejectMine(gen, coerce(err, "Failed to load your clubs"))
		return err
	}
	s.store.SetMine(gen, clubs)
	return nil
}

// DiscoverClubs fetches the first discover page, replacing the list.
func (s *ClubService) DiscoverClubs(ctx context.Context) error {
	gen := s.store.BeginDiscover()
	page, err := s.api.Discover(ctx, 1, s.pageSize)
	if err != nil {
		s.store.RejectDiscover(gen, coerce(err, "Failed to load clubs"))
		return err
	}
	s.store.ApplyDiscover(gen, page, 1)
	return nil
}

// DiscoverMore appends the next discover page. An exhausted list makes this
// a no-op: no request goes out.
func (s *ClubService) DiscoverMore(ctx context.Context) error {
	if !s.store.CanDiscoverMore() {
		return nil
	}
	next := s.store.DiscoverPagination().Page + 1
	gen := s.store.BeginDiscover()
	page, err := s.api.Discover(ctx, next, s.pageSize)
	if err != nil {
		s.store.RejectDiscover(gen, coerce(err, "Failed to load clubs"))
		return err
	}
	s.store.ApplyDiscover(gen, page, next)
	return nil
}

// FetchClub loads the club detail record.
func (s *ClubService) FetchClub(ctx context.Context, clubID string) error {
	gen := s.store.BeginCurrent()
	details, err := s.api.Get(ctx, clubID)
	if err != nil {
		s.store.RejectCurrent(gen, coerce(err, "Failed to load club"))
		return err
	}
	s.store.SetCurrent(gen, details)
	return nil
}

func (s *ClubService) CreateClub(ctx context.Context, req *model.CreateClubRequest) (*model.ClubDetails, error) {
	s.store.BeginMutation("create")
	details, err := s.api.Create(ctx, req)
	if err != nil {
		s.store.Fail("create", coerce(err, "Failed to create club"))
		return nil, err
	}
	s.store.ApplyCreated(details)
	return details, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, clubID string, req *model.UpdateClubRequest) error {
	s.store.BeginMutation("update")
	details, err := s.api.Update(ctx, clubID, req)
	if err != nil {
		s.store.Fail("update", coerce(err, "Failed to update club"))
		return err
	}
	s.store.ApplyUpdated(details)
	return nil
}

func (s *ClubService) DeleteClub(ctx context.Context, clubID string) error {
	s.store.BeginMutation("delete")
	if err := s.api.Delete(ctx, clubID); err != nil {
		s.store.Fail("delete", coerce(err, "Failed to delete club"))
		return err
	}
	s.store.ApplyDeleted(clubID)
	return nil
}

// RequestJoin asks to join. The club becomes pending for the viewer and is
// not added to my clubs until approved.
func (s *ClubService) RequestJoin(ctx context.Context, clubID string) error {
	s.store.BeginMutation("request_join")
	if err := s.api.RequestJoin(ctx, clubID); err != nil {
		s.store.Fail("request_join", coerce(err, "Failed to request membership"))
		return err
	}
	s.store.ApplyJoinRequested(clubID)
	return nil
}

func (s *ClubService) LeaveClub(ctx context.Context, clubID string) error {
	s.store.BeginMutation("leave")
	if err := s.api.Leave(ctx, clubID); err != nil {
		s.store.Fail("leave", coerce(err, "Failed to leave club"))
		return err
	}
	s.store.ApplyLeft(clubID)
	return nil
}

func (s *ClubService) FetchMembers(ctx context.Context, clubID string) error {
	gen := s.store.BeginMembers()
	members, err := s.api.Members(ctx, clubID)
	if err != nil {
		s.store.RejectMembers(gen, coerce(err, "Failed to load members"))
		return err
	}
	s.store.SetMembers(gen, members)
	return nil
}

func (s *ClubService) ApproveJoinRequest(ctx context.Context, clubID, requestID string) error {
	s.store.BeginMutation("approve_join")
	member, err := s.api.ApproveJoin(ctx, clubID, requestID)
	if err != nil {
		s.store.Fail("approve_join", coerce(err, "Failed to approve request"))
		return err
	}
	s.store.ApplyJoinApproved(requestID, *member)
	return nil
}

func (s *ClubService) RejectJoinRequest(ctx context.Context, clubID, requestID string) error {
	s.store.BeginMutation("reject_join")
	if err := s.api.RejectJoin(ctx, clubID, requestID); err != nil {
		s.store.Fail("reject_join", coerce(err, "Failed to reject request"))
		return err
	}
	s.store.ApplyJoinRejected(requestID)
	return nil
}

// UpdateMemberRole changes a member's role. The founder's role is immutable
// and the change is refused before any request goes out.
func (s *ClubService) UpdateMemberRole(ctx context.Context, clubID, memberID string, role model.MemberRole) error {
	if !model.ValidMemberRole(role) {
		return model.ErrInvalidRole
	}
	if current := s.store.Current(); current != nil && current.ID == clubID {
		for _, m := range current.Members {
			if m.ID == memberID && m.Role == model.RoleFounder {
				return model.ErrFounderImmutable
			}
		}
	}
	s.store.BeginMutation("update_role")
	member, err := s.api.UpdateMemberRole(ctx, clubID, memberID, role)
	if err != nil {
		s.store.Fail("update_role", coerce(err, "Failed to update role"))
		return err
	}
	s.store.ApplyMemberRole(*member)
	return nil
}

func (s *ClubService) RemoveMember(ctx context.Context, clubID, memberID string) error {
	s.store.BeginMutation("remove_member")
	if err := s.api.RemoveMember(ctx, clubID, memberID); err != nil {
		s.store.Fail("remove_member", coerce(err, "Failed to remove member"))
		return err
	}
	s.store.ApplyMemberRemoved(memberID)
	return nil
}

// --- selectors (facade over the store) -----------------------------------

func (s *ClubService) MyClubs() []model.Club            { return s.store.MyClubs() }
func (s *ClubService) Discovered() []model.Club         { return s.store.Discovered() }
func (s *ClubService) Current() *model.ClubDetails      { return s.store.Current() }
func (s *ClubService) IsMember(clubID string) bool      { return s.store.IsMember(clubID) }
func (s *ClubService) CanDiscoverMore() bool            { return s.store.CanDiscoverMore() }
func (s *ClubService) Status() store.Status             { return s.store.Status() }
func (s *ClubService) Pagination() store.Pagination     { return s.store.DiscoverPagination() }

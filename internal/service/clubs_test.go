package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// mockClubsAPI implements api.ClubsAPI with per-test function fields, so each
// test controls exactly what the backend returns.
type mockClubsAPI struct {
	myClubsFn  func(ctx context.Context) ([]model.Club, error)
	discoverFn func(ctx context.Context, page, limit int) (*model.ClubPage, error)
	getFn      func(ctx context.Context, clubID string) (*model.ClubDetails, error)

	discoverCalls   int
	updateRoleCalls int
}

func (m *mockClubsAPI) MyClubs(ctx context.Context) ([]model.Club, error) {
	if m.myClubsFn != nil {
		return m.myClubsFn(ctx)
	}
	return nil, nil
}

func (m *mockClubsAPI) Discover(ctx context.Context, page, limit int) (*model.ClubPage, error) {
	m.discoverCalls++
	if m.discoverFn != nil {
		return m.discoverFn(ctx, page, limit)
	}
	return &model.ClubPage{}, nil
}

func (m *mockClubsAPI) Get(ctx context.Context, clubID string) (*model.ClubDetails, error) {
	if m.getFn != nil {
		return m.getFn(ctx, clubID)
	}
	return nil, model.ErrClubNotFound
}

func (m *mockClubsAPI) Create(ctx context.Context, req *model.CreateClubRequest) (*model.ClubDetails, error) {
	return &model.ClubDetails{Club: model.Club{ID: "new", Name: req.Name}}, nil
}

func (m *mockClubsAPI) Update(ctx context.Context, clubID string, req *model.UpdateClubRequest) (*model.ClubDetails, error) {
	return &model.ClubDetails{Club: model.Club{ID: clubID}}, nil
}

func (m *mockClubsAPI) Delete(ctx context.Context, clubID string) error      { return nil }
func (m *mockClubsAPI) RequestJoin(ctx context.Context, clubID string) error { return nil }
func (m *mockClubsAPI) Leave(ctx context.Context, clubID string) error       { return nil }

func (m *mockClubsAPI) Members(ctx context.Context, clubID string) ([]model.ClubMember, error) {
	return nil, nil
}

func (m *mockClubsAPI) ApproveJoin(ctx context.Context, clubID, requestID string) (*model.ClubMember, error) {
	return &model.ClubMember{}, nil
}

func (m *mockClubsAPI) RejectJoin(ctx context.Context, clubID, requestID string) error { return nil }

func (m *mockClubsAPI) UpdateMemberRole(ctx context.Context, clubID, memberID string, role model.MemberRole) (*model.ClubMember, error) {
	m.updateRoleCalls++
	return &model.ClubMember{ID: memberID, Role: role}, nil
}

func (m *mockClubsAPI) RemoveMember(ctx context.Context, clubID, memberID string) error { return nil }

func newClubService(m *mockClubsAPI) *ClubService {
	return NewClubService(m, store.NewClubStore(nil), 20)
}

func TestClubService_DiscoverMore_NoRequestWhenExhausted(t *testing.T) {
	mock := &mockClubsAPI{
		discoverFn: func(ctx context.Context, page, limit int) (*model.ClubPage, error) {
			return &model.ClubPage{Clubs: []model.Club{{ID: "a"}}, HasMore: false}, nil
		},
	}
	svc := newClubService(mock)

	if err := svc.DiscoverClubs(context.Background()); err != nil {
		t.Fatalf("discover: %v", err)
	}
	if err := svc.DiscoverMore(context.Background()); err != nil {
		t.Fatalf("discover more: %v", err)
	}

	if mock.discoverCalls != 1 {
		t.Errorf("discover calls = %d, want 1 (exhausted list must not refetch)", mock.discoverCalls)
	}
}

func TestClubService_DiscoverMore_RequestsNextPage(t *testing.T) {
	var gotPage int
	mock := &mockClubsAPI{
		discoverFn: func(ctx context.Context, page, limit int) (*model.ClubPage, error) {
			gotPage = page
			return &model.ClubPage{Clubs: []model.Club{{ID: "x"}}, HasMore: true}, nil
		},
	}
	svc := newClubService(mock)

	svc.DiscoverClubs(context.Background())
	svc.DiscoverMore(context.Background())

	if gotPage != 2 {
		t.Errorf("requested page = %d, want 2", gotPage)
	}
	if got := svc.Discovered(); len(got) != 2 {
		t.Errorf("discovered = %d items, want 2", len(got))
	}
}

func TestClubService_StaleDiscoverLosesToNewerFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	call := 0
	mock := &mockClubsAPI{
		discoverFn: func(ctx context.Context, page, limit int) (*model.ClubPage, error) {
			call++
			if call == 1 {
				close(started)
				<-release
				return &model.ClubPage{Clubs: []model.Club{{ID: "old"}}}, nil
			}
			return &model.ClubPage{Clubs: []model.Club{{ID: "new"}}}, nil
		},
	}
	svc := newClubService(mock)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.DiscoverClubs(context.Background())
	}()
	<-started

	// A second fetch starts and settles while the first is still in flight.
	svc.DiscoverClubs(context.Background())
	close(release)
	<-done

	got := svc.Discovered()
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("discovered = %v, want the newer fetch to win", got)
	}
}

func TestClubService_UpdateMemberRole_FounderRefusedBeforeNetwork(t *testing.T) {
	mock := &mockClubsAPI{
		getFn: func(ctx context.Context, clubID string) (*model.ClubDetails, error) {
			return &model.ClubDetails{
				Club:    model.Club{ID: clubID},
				Members: []model.ClubMember{{ID: "m1", Role: model.RoleFounder}},
			}, nil
		},
	}
	svc := newClubService(mock)
	svc.FetchClub(context.Background(), "c1")

	err := svc.UpdateMemberRole(context.Background(), "c1", "m1", model.RoleAdmin)

	if !errors.Is(err, model.ErrFounderImmutable) {
		t.Errorf("err = %v, want ErrFounderImmutable", err)
	}
	if mock.updateRoleCalls != 0 {
		t.Error("a founder role change must be refused without a request")
	}
}

func TestClubService_UpdateMemberRole_RejectsInvalidRole(t *testing.T) {
	mock := &mockClubsAPI{}
	svc := newClubService(mock)

	for _, role := range []model.MemberRole{model.RoleFounder, "OWNER", ""} {
		if err := svc.UpdateMemberRole(context.Background(), "c1", "m2", role); !errors.Is(err, model.ErrInvalidRole) {
			t.Errorf("role %q: err = %v, want ErrInvalidRole", role, err)
		}
	}
	if mock.updateRoleCalls != 0 {
		t.Error("invalid roles must be refused without a request")
	}
}

func TestClubService_ErrorMessages(t *testing.T) {
	t.Run("api error message surfaces", func(t *testing.T) {
		mock := &mockClubsAPI{
			discoverFn: func(ctx context.Context, page, limit int) (*model.ClubPage, error) {
				return nil, &api.APIError{Code: "FORBIDDEN", Message: "private club directory", Status: 403}
			},
		}
		svc := newClubService(mock)
		svc.DiscoverClubs(context.Background())

		if got := svc.Status().Err; got != "private club directory" {
			t.Errorf("err = %q, want the backend's message", got)
		}
	})

	t.Run("transport noise becomes generic message", func(t *testing.T) {
		mock := &mockClubsAPI{
			discoverFn: func(ctx context.Context, page, limit int) (*model.ClubPage, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		svc := newClubService(mock)
		svc.DiscoverClubs(context.Background())

		if got := svc.Status().Err; got != "Failed to load clubs" {
			t.Errorf("err = %q, want the generic fallback", got)
		}
	})
}

func TestClubService_CreatePrependsAndSelectsClub(t *testing.T) {
	svc := newClubService(&mockClubsAPI{})

	details, err := svc.CreateClub(context.Background(), &model.CreateClubRequest{Name: "Night Owls"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if details.Name != "Night Owls" {
		t.Errorf("name = %q, want Night Owls", details.Name)
	}
	if mine := svc.MyClubs(); len(mine) != 1 || mine[0].ID != "new" {
		t.Errorf("my clubs = %v, want the created club", mine)
	}
	if cur := svc.Current(); cur == nil || cur.ID != "new" {
		t.Error("created club must become current")
	}
}

package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/page"
)

type mockAdminAPI struct {
	listUsersFn   func(ctx context.Context) ([]model.AdminUser, error)
	suspendUserFn func(ctx context.Context, userID string) error

	listUsersCalls int
}

func (m *mockAdminAPI) ListUsers(ctx context.Context) ([]model.AdminUser, error) {
	m.listUsersCalls++
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockAdminAPI) ListClubs(ctx context.Context) ([]model.AdminClub, error)       { return nil, nil }
func (m *mockAdminAPI) ListRides(ctx context.Context) ([]model.AdminRide, error)       { return nil, nil }
func (m *mockAdminAPI) ListListings(ctx context.Context) ([]model.AdminListing, error) { return nil, nil }
func (m *mockAdminAPI) VerifyClub(ctx context.Context, clubID string) error            { return nil }
func (m *mockAdminAPI) ChangeUserRole(ctx context.Context, userID, role string) error  { return nil }

func (m *mockAdminAPI) SuspendUser(ctx context.Context, userID string) error {
	if m.suspendUserFn != nil {
		return m.suspendUserFn(ctx, userID)
	}
	return nil
}

func (m *mockAdminAPI) ActivateUser(ctx context.Context, userID string) error    { return nil }
func (m *mockAdminAPI) ApproveListing(ctx context.Context, listingID string) error { return nil }
func (m *mockAdminAPI) FlagListing(ctx context.Context, listingID string) error    { return nil }
func (m *mockAdminAPI) RemoveListing(ctx context.Context, listingID string) error  { return nil }

func TestService_SuspendUserRefetchesTable(t *testing.T) {
	status := model.UserStatusActive
	mock := &mockAdminAPI{
		listUsersFn: func(ctx context.Context) ([]model.AdminUser, error) {
			return []model.AdminUser{{ID: "u1", Username: "kaicorner", Status: status}}, nil
		},
		suspendUserFn: func(ctx context.Context, userID string) error {
			status = model.UserStatusSuspended
			return nil
		},
	}
	svc := NewService(mock)

	if err := svc.RefreshUsers(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := svc.SuspendUser(context.Background(), "u1"); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	// The mutation does not patch the row locally; it refetches.
	if mock.listUsersCalls != 2 {
		t.Errorf("list calls = %d, want 2 (initial + refetch)", mock.listUsersCalls)
	}
	users := svc.Users(UserFilter{})
	if len(users) != 1 || users[0].Status != model.UserStatusSuspended {
		t.Errorf("users = %v, want the refetched suspended row", users)
	}
}

func TestService_SuspendFailureSkipsRefetch(t *testing.T) {
	mock := &mockAdminAPI{
		suspendUserFn: func(ctx context.Context, userID string) error {
			return errors.New("forbidden")
		},
	}
	svc := NewService(mock)

	if err := svc.SuspendUser(context.Background(), "u1"); err == nil {
		t.Fatal("expected the suspend to fail")
	}
	if mock.listUsersCalls != 0 {
		t.Error("a failed mutation must not trigger a refetch")
	}
}

func TestService_FilteredReadsDontRefetch(t *testing.T) {
	mock := &mockAdminAPI{
		listUsersFn: func(ctx context.Context) ([]model.AdminUser, error) {
			return []model.AdminUser{
				{ID: "u1", Username: "dustrider", Status: model.UserStatusActive},
				{ID: "u2", Username: "kaicorner", Status: model.UserStatusSuspended},
			}, nil
		},
	}
	svc := NewService(mock)
	svc.RefreshUsers(context.Background())

	// Changing the filter is a pure in-memory read.
	for i := 0; i < 5; i++ {
		svc.Users(UserFilter{Status: model.UserStatusSuspended})
	}
	if mock.listUsersCalls != 1 {
		t.Errorf("list calls = %d, want 1 (filters never refetch)", mock.listUsersCalls)
	}

	got := svc.Users(UserFilter{Status: model.UserStatusSuspended})
	if len(got) != 1 || got[0].ID != "u2" {
		t.Errorf("filtered = %v, want [u2]", got)
	}
	if st, _ := svc.UsersState(); st != page.StateReady {
		t.Errorf("state = %v, want ready", st)
	}
}

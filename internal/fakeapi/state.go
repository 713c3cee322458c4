package fakeapi

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func ptr[T any](v T) *T { return &v }

// State is the mutable dataset behind the fake backend. All access goes
// through the handler methods, which hold mu.
type State struct {
	mu sync.Mutex

	viewer  model.Profile
	publics []model.PublicProfile

	clubs    []*model.ClubDetails
	rides    []*model.RideDetails
	listings []*model.ListingDetails

	posts    []model.Post
	comments map[string][]model.Comment

	adminUsers []model.AdminUser
	verified   map[string]bool   // club id -> verified
	moderation map[string]string // listing id -> moderation status
}

// NewState returns a State seeded with a small but representative dataset:
// one signed-in rider, a handful of clubs, rides, listings and feed posts.
func NewState() *State {
	now := time.Now().UTC()
	s := &State{
		comments:   make(map[string][]model.Comment),
		verified:   make(map[string]bool),
		moderation: make(map[string]string),
	}

	s.viewer = model.Profile{
		ID:       "usr-viewer",
		Username: "dustrider",
		Name:     "Sam Okafor",
		Bio:      ptr("Twisty roads over highways, every time."),
		Location: ptr("Austin, TX"),
		Stats:    model.ProfileStats{Rides: 42, DistanceKM: 6180, Followers: 87, Following: 134, Clubs: 2},
		Bikes: []model.Bike{
			{ID: "bike-1", Make: "Triumph", Model: "Street Triple", Year: 2022, Nickname: ptr("Trip"), IsPrimary: true},
			{ID: "bike-2", Make: "Honda", Model: "CB500X", Year: 2019},
		},
		CreatedAt: now.AddDate(-2, 0, 0),
		UpdatedAt: now,
	}

	s.publics = []model.PublicProfile{
		{Profile: model.Profile{
			ID: "usr-mara", Username: "maramoto", Name: "Mara Jensen",
			Location: ptr("Denver, CO"),
			Stats:    model.ProfileStats{Rides: 120, DistanceKM: 18400, Followers: 412, Following: 96, Clubs: 3},
			Bikes:    []model.Bike{{ID: "bike-m1", Make: "KTM", Model: "890 Adventure", Year: 2023, IsPrimary: true}},
		}},
		{Profile: model.Profile{
			ID: "usr-theo", Username: "theothrottle", Name: "Theo Braun",
			Stats: model.ProfileStats{Rides: 33, DistanceKM: 4100, Followers: 51, Following: 72, Clubs: 1},
		}, IsFollowing: true},
	}

	s.clubs = []*model.ClubDetails{
		{
			Club: model.Club{
				ID: "club-hill", Name: "Hill Country Twisties", Location: "Austin, TX",
				Description: "Weekend rides through the Texas hill country.",
				MemberCount: 3, Tags: []string{"touring", "weekend"},
				FounderID: "usr-viewer", CreatedAt: now.AddDate(-1, -2, 0),
			},
			Members: []model.ClubMember{
				{ID: "mem-1", UserID: "usr-viewer", Name: "Sam Okafor", Role: model.RoleFounder, Status: "active", JoinedAt: now.AddDate(-1, -2, 0)},
				{ID: "mem-2", UserID: "usr-mara", Name: "Mara Jensen", Role: model.RoleAdmin, Status: "active", JoinedAt: now.AddDate(-1, 0, 0)},
				{ID: "mem-3", UserID: "usr-theo", Name: "Theo Braun", Role: model.RoleMember, Status: "active", JoinedAt: now.AddDate(0, -6, 0)},
			},
			JoinRequests: []model.JoinRequest{
				{ID: "req-1", UserID: "usr-kai", Name: "Kai Moreno", RequestedAt: now.AddDate(0, 0, -3)},
			},
			Settings: model.ClubSettings{RequiresApproval: true, MembersCanPost: true, RidesArePublic: true},
			IsMember: true,
		},
		{
			Club: model.Club{
				ID: "club-canyon", Name: "Canyon Carvers", Location: "Boulder, CO",
				Description: "Sport riding, track days, canyon runs.",
				MemberCount: 28, IsPrivate: true, Tags: []string{"sport", "track"},
				FounderID: "usr-mara", CreatedAt: now.AddDate(0, -8, 0),
			},
			Members:  []model.ClubMember{{ID: "mem-c1", UserID: "usr-mara", Name: "Mara Jensen", Role: model.RoleFounder, Status: "active", JoinedAt: now.AddDate(0, -8, 0)}},
			Settings: model.ClubSettings{RequiresApproval: true},
		},
		{
			Club: model.Club{
				ID: "club-dawn", Name: "Dawn Patrol", Location: "Portland, OR",
				Description: "Sunrise coffee rides, all bikes welcome.",
				MemberCount: 54, Tags: []string{"casual", "coffee"},
				FounderID: "usr-theo", CreatedAt: now.AddDate(0, -4, 0),
			},
			Members:  []model.ClubMember{{ID: "mem-d1", UserID: "usr-theo", Name: "Theo Braun", Role: model.RoleFounder, Status: "active", JoinedAt: now.AddDate(0, -4, 0)}},
			Settings: model.ClubSettings{MembersCanPost: true, RidesArePublic: true},
		},
	}
	s.verified["club-hill"] = true

	s.rides = []*model.RideDetails{
		{
			Ride: model.Ride{
				ID: "ride-loop", Title: "Lime Creek Loop", Status: model.RidePlanned,
				StartLocation: "Austin, TX", EndLocation: "Austin, TX",
				ScheduledAt: now.AddDate(0, 0, 5), DistanceKM: 95, DurationMin: 120,
				OrganizerID: "usr-viewer", OrganizerName: "Sam Okafor",
				ClubID: ptr("club-hill"), ParticipantCount: 2,
			},
			Participants: []model.RideParticipant{
				{ID: "rp-1", UserID: "usr-viewer", Name: "Sam Okafor", Status: model.ParticipantConfirmed, LiveStatus: model.LiveOK},
				{ID: "rp-2", UserID: "usr-mara", Name: "Mara Jensen", Status: model.ParticipantConfirmed, LiveStatus: model.LiveOK},
			},
			ChatEnabled: true, TrackingEnabled: true, IsParticipant: true,
		},
		{
			Ride: model.Ride{
				ID: "ride-pass", Title: "Independence Pass Run", Status: model.RidePlanned,
				StartLocation: "Aspen, CO", EndLocation: "Twin Lakes, CO",
				ScheduledAt: now.AddDate(0, 0, 12), DistanceKM: 60, DurationMin: 90,
				OrganizerID: "usr-mara", OrganizerName: "Mara Jensen", ParticipantCount: 8,
			},
			Participants: []model.RideParticipant{
				{ID: "rp-p1", UserID: "usr-mara", Name: "Mara Jensen", Status: model.ParticipantConfirmed, LiveStatus: model.LiveOK},
			},
			ChatEnabled: true,
		},
		{
			Ride: model.Ride{
				ID: "ride-coast", Title: "Coast Highway Dawn Run", Status: model.RideCompleted,
				StartLocation: "Portland, OR", EndLocation: "Cannon Beach, OR",
				ScheduledAt: now.AddDate(0, -1, 0), DistanceKM: 130, DurationMin: 150,
				OrganizerID: "usr-theo", OrganizerName: "Theo Braun", ParticipantCount: 12,
			},
		},
	}

	s.listings = []*model.ListingDetails{
		{
			Listing: model.Listing{
				ID: "lst-helmet", Title: "Shoei RF-1400, size M", Price: 320, Currency: "USD",
				Category: model.CategoryGear, Condition: "like_new",
				SellerID: "usr-mara", SellerName: "Mara Jensen", ViewsCount: 44,
				CreatedAt: now.AddDate(0, 0, -9),
			},
			Description: "Worn one season, no drops. Matte black.",
			SellerPhone: ptr("+1-555-0142"),
		},
		{
			Listing: model.Listing{
				ID: "lst-sv650", Title: "2018 Suzuki SV650, 14k miles", Price: 4900, Currency: "USD",
				Category: model.CategoryBikes, Condition: "used",
				SellerID: "usr-theo", SellerName: "Theo Braun", ViewsCount: 203,
				CreatedAt: now.AddDate(0, 0, -20),
			},
			Description: "Clean title, fresh chain and sprockets, two owners.",
		},
		{
			Listing: model.Listing{
				ID: "lst-levers", Title: "CRG shorty levers, GSX-R fitment", Price: 65, Currency: "USD",
				Category: model.CategoryParts, Condition: "new",
				SellerID: "usr-viewer", SellerName: "Sam Okafor", ViewsCount: 12,
				CreatedAt: now.AddDate(0, 0, -2),
			},
			Description: "Bought the wrong fitment, never installed.",
		},
	}
	s.moderation["lst-helmet"] = model.ModerationApproved
	s.moderation["lst-sv650"] = model.ModerationApproved
	s.moderation["lst-levers"] = model.ModerationPending

	s.posts = []model.Post{
		{
			ID: "post-ride", Type: model.PostTypeRide,
			AuthorID: "usr-viewer", AuthorName: "Sam Okafor",
			Content: ptr("Lime Creek loop this Saturday, who's in?"),
			LikesCount: 5, CommentsCount: 2, IsLiked: false,
			CreatedAt: now.Add(-3 * time.Hour),
			Ride:      &s.rides[0].Ride,
		},
		{
			ID: "post-photo", Type: model.PostTypeContent,
			AuthorID: "usr-mara", AuthorName: "Mara Jensen",
			Content:    ptr("Golden hour above the pass."),
			ImageURLs:  []string{"https://cdn.zoomies.example/p/pass-golden.jpg"},
			LikesCount: 31, CommentsCount: 4, IsLiked: true,
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID: "post-listing", Type: model.PostTypeListing,
			AuthorID: "usr-theo", AuthorName: "Theo Braun",
			Content: ptr("SV650 up for sale, priced to move."),
			LikesCount: 2, CommentsCount: 1,
			CreatedAt: now.Add(-50 * time.Hour),
			Listing:   &s.listings[1].Listing,
		},
		{
			ID: "post-club", Type: model.PostTypeClubActivity,
			AuthorID: "usr-theo", AuthorName: "Theo Braun",
			Content: ptr("Dawn Patrol passed 50 members this week."),
			LikesCount: 14, CommentsCount: 0,
			CreatedAt: now.Add(-70 * time.Hour),
			Club:      &s.clubs[2].Club,
		},
	}

	s.comments["post-ride"] = []model.Comment{
		{ID: "cmt-1", PostID: "post-ride", AuthorID: "usr-mara", AuthorName: "Mara Jensen", Content: "Count me in.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "cmt-2", PostID: "post-ride", AuthorID: "usr-theo", AuthorName: "Theo Braun", Content: "Wrenching that day, next one for sure.", CreatedAt: now.Add(-1 * time.Hour)},
	}

	s.adminUsers = []model.AdminUser{
		{ID: "usr-viewer", Username: "dustrider", Name: "Sam Okafor", Email: "sam@zoomies.example", Role: model.PlatformRoleAdmin, Status: model.UserStatusActive, Verified: true, JoinedAt: now.AddDate(-2, 0, 0)},
		{ID: "usr-mara", Username: "maramoto", Name: "Mara Jensen", Email: "mara@zoomies.example", Role: model.PlatformRoleModerator, Status: model.UserStatusActive, Verified: true, JoinedAt: now.AddDate(-1, -6, 0)},
		{ID: "usr-theo", Username: "theothrottle", Name: "Theo Braun", Email: "theo@zoomies.example", Role: model.PlatformRoleRider, Status: model.UserStatusActive, JoinedAt: now.AddDate(0, -10, 0)},
		{ID: "usr-kai", Username: "kaicorner", Name: "Kai Moreno", Email: "kai@zoomies.example", Role: model.PlatformRoleRider, Status: model.UserStatusSuspended, JoinedAt: now.AddDate(0, -2, 0)},
	}

	return s
}

func (s *State) findClub(id string) *model.ClubDetails {
	for _, c := range s.clubs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *State) findRide(id string) *model.RideDetails {
	for _, r := range s.rides {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *State) findListing(id string) *model.ListingDetails {
	for _, l := range s.listings {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *State) findPost(id string) *model.Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// paginate slices items into the requested 1-based page and reports whether
// more pages follow.
func paginate[T any](items []T, page, limit int) ([]T, bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, false
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items)
}

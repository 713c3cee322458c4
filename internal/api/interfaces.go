package api

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// One interface per backend domain. Services depend on these, never on the
// concrete HTTP client, so tests can swap in function-field mocks.

type ClubsAPI interface {
	MyClubs(ctx context.Context) ([]model.Club, error)
	Discover(ctx context.Context, page, limit int) (*model.ClubPage, error)
	Get(ctx context.Context, clubID string) (*model.ClubDetails, error)
	Create(ctx context.Context, req *model.CreateClubRequest) (*model.ClubDetails, error)
	Update(ctx context.Context, clubID string, req *model.UpdateClubRequest) (*model.ClubDetails, error)
	Delete(ctx context.Context, clubID string) error
	RequestJoin(ctx context.Context, clubID string) error
	Leave(ctx context.Context, clubID string) error
	Members(ctx context.Context, clubID string) ([]model.ClubMember, error)
	ApproveJoin(ctx context.Context, clubID, requestID string) (*model.ClubMember, error)
	RejectJoin(ctx context.Context, clubID, requestID string) error
	UpdateMemberRole(ctx context.Context, clubID, memberID string, role model.MemberRole) (*model.ClubMember, error)
	RemoveMember(ctx context.Context, clubID, memberID string) error
}

type RidesAPI interface {
	Upcoming(ctx context.Context, page, limit int) (*model.RidePage, error)
	Mine(ctx context.Context, page, limit int) (*model.RidePage, error)
	Past(ctx context.Context, page, limit int) (*model.RidePage, error)
	Get(ctx context.Context, rideID string) (*model.RideDetails, error)
	Create(ctx context.Context, req *model.CreateRideRequest) (*model.RideDetails, error)
	Update(ctx context.Context, rideID string, req *model.UpdateRideRequest) (*model.RideDetails, error)
	Delete(ctx context.Context, rideID string) error
	Join(ctx context.Context, rideID string) (*model.RideParticipant, error)
	Leave(ctx context.Context, rideID string) error
	Start(ctx context.Context, rideID string) (*model.RideDetails, error)
	End(ctx context.Context, rideID string) (*model.RideDetails, error)
	UpdateLiveStatus(ctx context.Context, rideID string, status model.LiveStatus, loc *model.GeoPoint) error
}

type MarketAPI interface {
	List(ctx context.Context, filter model.ListingFilter, page, limit int) (*model.ListingPage, error)
	Mine(ctx context.Context) ([]model.Listing, error)
	Saved(ctx context.Context) ([]model.Listing, error)
	Get(ctx context.Context, listingID string) (*model.ListingDetails, error)
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.ListingDetails, error)
	Update(ctx context.Context, listingID string, req *model.UpdateListingRequest) (*model.ListingDetails, error)
	Delete(ctx context.Context, listingID string) error
	Save(ctx context.Context, listingID string) error
	Unsave(ctx context.Context, listingID string) error
	MarkSold(ctx context.Context, listingID string) (*model.ListingDetails, error)
}

type FeedAPI interface {
	Feed(ctx context.Context, page, limit int) (*model.FeedPage, error)
	CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, postID string) error
	Like(ctx context.Context, postID string) error
	Unlike(ctx context.Context, postID string) error
	SavePost(ctx context.Context, postID string) error
	UnsavePost(ctx context.Context, postID string) error
	Comments(ctx context.Context, postID string, page, limit int) (*model.CommentPage, error)
	AddComment(ctx context.Context, postID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}

type UserAPI interface {
	Profile(ctx context.Context) (*model.Profile, error)
	PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error)
	UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.Profile, error)
	AddBike(ctx context.Context, req *model.BikeRequest) (*model.Bike, error)
	UpdateBike(ctx context.Context, bikeID string, req *model.BikeRequest) (*model.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
}

type AdminAPI interface {
	ListUsers(ctx context.Context) ([]model.AdminUser, error)
	ListClubs(ctx context.Context) ([]model.AdminClub, error)
	ListRides(ctx context.Context) ([]model.AdminRide, error)
	ListListings(ctx context.Context) ([]model.AdminListing, error)
	VerifyClub(ctx context.Context, clubID string) error
	ChangeUserRole(ctx context.Context, userID, role string) error
	SuspendUser(ctx context.Context, userID string) error
	ActivateUser(ctx context.Context, userID string) error
	ApproveListing(ctx context.Context, listingID string) error
	FlagListing(ctx context.Context, listingID string) error
	RemoveListing(ctx context.Context, listingID string) error
}

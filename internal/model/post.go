package model

import (
	"errors"
	"time"
)

// PostType discriminates the feed post union. Exactly one of the Ride,
// Listing or Club payloads is populated, matching the type.
type PostType string

const (
	PostTypeRide         PostType = "ride"
	PostTypeContent      PostType = "content"
	PostTypeListing      PostType = "listing"
	PostTypeClubActivity PostType = "club_activity"
)

// Post is one feed entry.
type Post struct {
	ID              string    `json:"id"`
	Type            PostType  `json:"type"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL *string   `json:"author_avatar_url"`
	Content         *string   `json:"content"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
	LikesCount      int       `json:"likes_count"`
	CommentsCount   int       `json:"comments_count"`
	IsLiked         bool      `json:"is_liked"`
	IsSaved         bool      `json:"is_saved"`
	CreatedAt       time.Time `json:"created_at"`

	// Tagged-union payloads, one per Type.
	Ride    *Ride    `json:"ride,omitempty"`
	Listing *Listing `json:"listing,omitempty"`
	Club    *Club    `json:"club,omitempty"`
}

// Comment is one comment on a post.
type Comment struct {
	ID              string    `json:"id"`
	PostID          string    `json:"post_id"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL *string   `json:"author_avatar_url"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

// FeedPage is one page of the feed.
type FeedPage struct {
	Posts   []Post `json:"posts"`
	HasMore bool   `json:"has_more"`
}

// CommentPage is one page of a post's comments.
type CommentPage struct {
	Comments []Comment `json:"comments"`
	HasMore  bool      `json:"has_more"`
}

// CreatePostRequest is the payload for creating a feed post.
// The referenced entity id must match the post type.
type CreatePostRequest struct {
	Type      PostType `json:"type"`
	Content   *string  `json:"content,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty"`
	RideID    *string  `json:"ride_id,omitempty"`
	ListingID *string  `json:"listing_id,omitempty"`
	ClubID    *string  `json:"club_id,omitempty"`
}

// Post content constants
const (
	MaxPostContentLength = 2200
	MaxPostImageCount    = 10
	MaxCommentLength     = 500
)

// Validate checks the payload shape before it goes over the wire.
func (r *CreatePostRequest) Validate() error {
	switch r.Type {
	case PostTypeContent:
		if r.Content == nil || *r.Content == "" {
			return ErrEmptyPost
		}
	case PostTypeRide:
		if r.RideID == nil {
			return ErrMissingPostRef
		}
	case PostTypeListing:
		if r.ListingID == nil {
			return ErrMissingPostRef
		}
	case PostTypeClubActivity:
		if r.ClubID == nil {
			return ErrMissingPostRef
		}
	default:
		return ErrInvalidPostType
	}
	if r.Content != nil && len(*r.Content) > MaxPostContentLength {
		return ErrContentTooLong
	}
	if len(r.ImageURLs) > MaxPostImageCount {
		return ErrTooManyImages
	}
	return nil
}

// Post errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidComment  = errors.New("comment must be 1-500 characters")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrEmptyPost       = errors.New("post content is required")
	ErrMissingPostRef  = errors.New("post reference id is required")
	ErrContentTooLong  = errors.New("post content too long")
	ErrTooManyImages   = errors.New("too many images")
)

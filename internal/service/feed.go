package service

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// FeedService bundles the feed operations with the feed store's selectors.
type FeedService struct {
	api      api.FeedAPI
	store    *store.FeedStore
	pageSize int
}

func NewFeedService(a api.FeedAPI, st *store.FeedStore, pageSize int) *FeedService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &FeedService{api: a, store: st, pageSize: pageSize}
}

// FetchFeed fetches the first feed page, replacing the list.
func (s *FeedService) FetchFeed(ctx context.Context) error {
	gen := s.store.BeginFeed()
	page, err := s.api.Feed(ctx, 1, s.pageSize)
	if err != nil {
		s.store.RejectFeed(gen, coerce(err, "Failed to load feed"))
		return err
	}
	s.store.ApplyFeed(gen, page, 1)
	return nil
}

// FetchMoreFeed appends the next feed page; an exhausted feed makes this a
// no-op.
func (s *FeedService) FetchMoreFeed(ctx context.Context) error {
	if !s.store.CanFetchMoreFeed() {
		return nil
	}
	next := s.store.FeedPagination().Page + 1
	gen := s.store.BeginFeed()
	page, err := s.api.Feed(ctx, next, s.pageSize)
	if err != nil {
		s.store.RejectFeed(gen, coerce(err, "Failed to load feed"))
		return err
	}
	s.store.ApplyFeed(gen, page, next)
	return nil
}

func (s *FeedService) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.store.BeginMutation("create_post")
	post, err := s.api.CreatePost(ctx, req)
	if err != nil {
		s.store.Fail("create_post", coerce(err, "Failed to create post"))
		return nil, err
	}
	s.store.ApplyPostCreated(*post)
	return post, nil
}

func (s *FeedService) DeletePost(ctx context.Context, postID string) error {
	s.store.BeginMutation("delete_post")
	if err := s.api.DeletePost(ctx, postID); err != nil {
		s.store.Fail("delete_post", coerce(err, "Failed to delete post"))
		return err
	}
	s.store.ApplyPostDeleted(postID)
	return nil
}

// ToggleLike applies the like optimistically, then confirms it with the
// backend. On failure the optimistic change is rolled back. The counter is
// touched exactly once per settle, never twice.
func (s *FeedService) ToggleLike(ctx context.Context, postID string) error {
	nowLiked, ok := s.store.ToggleLike(postID)
	if !ok {
		return model.ErrPostNotFound
	}
	var err error
	if nowLiked {
		err = s.api.Like(ctx, postID)
	} else {
		err = s.api.Unlike(ctx, postID)
	}
	if err != nil {
		s.store.ToggleLike(postID) // roll back
		s.store.Fail("toggle_like", coerce(err, "Failed to update like"))
		return err
	}
	return nil
}

// ToggleSave mirrors ToggleLike for the saved flag.
func (s *FeedService) ToggleSave(ctx context.Context, postID string) error {
	nowSaved, ok := s.store.ToggleSave(postID)
	if !ok {
		return model.ErrPostNotFound
	}
	var err error
	if nowSaved {
		err = s.api.SavePost(ctx, postID)
	} else {
		err = s.api.UnsavePost(ctx, postID)
	}
	if err != nil {
		s.store.ToggleSave(postID) // roll back
		s.store.Fail("toggle_save", coerce(err, "Failed to update save"))
		return err
	}
	return nil
}

// FetchComments fetches the first comment page for a post, replacing any
// open thread.
func (s *FeedService) FetchComments(ctx context.Context, postID string) error {
	gen := s.store.BeginComments()
	page, err := s.api.Comments(ctx, postID, 1, s.pageSize)
	if err != nil {
		s.store.RejectComments(gen, coerce(err, "Failed to load comments"))
		return err
	}
	s.store.ApplyComments(gen, postID, page, 1)
	return nil
}

// FetchMoreComments appends the next comment page of the open thread.
func (s *FeedService) FetchMoreComments(ctx context.Context) error {
	postID, _ := s.store.Comments()
	if postID == "" {
		return nil
	}
	p := s.store.CommentsPagination()
	if p.Page > 0 && !p.HasMore {
		return nil
	}
	next := p.Page + 1
	gen := s.store.BeginComments()
	page, err := s.api.Comments(ctx, postID, next, s.pageSize)
	if err != nil {
		s.store.RejectComments(gen, coerce(err, "Failed to load comments"))
		return err
	}
	s.store.ApplyComments(gen, postID, page, next)
	return nil
}

func (s *FeedService) AddComment(ctx context.Context, postID, content string) error {
	if content == "" || len(content) > model.MaxCommentLength {
		return model.ErrInvalidComment
	}
	s.store.BeginMutation("add_comment")
	comment, err := s.api.AddComment(ctx, postID, content)
	if err != nil {
		s.store.Fail("add_comment", coerce(err, "Failed to add comment"))
		return err
	}
	s.store.ApplyCommentAdded(*comment)
	return nil
}

func (s *FeedService) DeleteComment(ctx context.Context, postID, commentID string) error {
	s.store.BeginMutation("delete_comment")
	if err := s.api.DeleteComment(ctx, postID, commentID); err != nil {
		s.store.Fail("delete_comment", coerce(err, "Failed to delete comment"))
		return err
	}
	s.store.ApplyCommentDeleted(postID, commentID)
	return nil
}

// --- selectors (facade over the store) -----------------------------------

func (s *FeedService) Posts() []model.Post                  { return s.store.Posts() }
func (s *FeedService) Post(id string) (model.Post, bool)    { return s.store.Post(id) }
func (s *FeedService) Comments() (string, []model.Comment)  { return s.store.Comments() }
func (s *FeedService) CanFetchMore() bool                   { return s.store.CanFetchMoreFeed() }
func (s *FeedService) Status() store.Status                 { return s.store.Status() }
func (s *FeedService) Pagination() store.Pagination         { return s.store.FeedPagination() }

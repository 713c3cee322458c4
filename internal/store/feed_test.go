package store

import (
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func post(id string, likes int, liked bool) model.Post {
	return model.Post{ID: id, Type: model.PostTypeContent, LikesCount: likes, IsLiked: liked}
}

func TestFeedStore_ToggleLikeFlipsExactlyOnce(t *testing.T) {
	s := NewFeedStore(nil)
	s.ApplyFeed(s.BeginFeed(), &model.FeedPage{Posts: []model.Post{post("p1", 10, false)}}, 1)

	nowLiked, ok := s.ToggleLike("p1")
	if !ok || !nowLiked {
		t.Fatalf("toggle = (%v, %v), want liked", nowLiked, ok)
	}
	if p, _ := s.Post("p1"); p.LikesCount != 11 {
		t.Errorf("likes = %d, want 11 (one increment per toggle)", p.LikesCount)
	}

	// Rollback path: toggling again restores the original state.
	s.ToggleLike("p1")
	if p, _ := s.Post("p1"); p.LikesCount != 10 || p.IsLiked {
		t.Errorf("after rollback: likes = %d liked = %v, want 10/false", p.LikesCount, p.IsLiked)
	}
}

func TestFeedStore_ToggleLikeUnknownPost(t *testing.T) {
	s := NewFeedStore(nil)
	if _, ok := s.ToggleLike("missing"); ok {
		t.Error("toggling an unknown post must report failure")
	}
}

func TestFeedStore_FeedPagesAppendInOrder(t *testing.T) {
	s := NewFeedStore(nil)
	s.ApplyFeed(s.BeginFeed(), &model.FeedPage{Posts: []model.Post{post("p1", 0, false), post("p2", 0, false)}, HasMore: true}, 1)
	s.ApplyFeed(s.BeginFeed(), &model.FeedPage{Posts: []model.Post{post("p3", 0, false)}, HasMore: false}, 2)

	posts := s.Posts()
	if len(posts) != 3 || posts[0].ID != "p1" || posts[2].ID != "p3" {
		t.Errorf("posts = %v, want p1..p3 in order", posts)
	}
	if s.CanFetchMoreFeed() {
		t.Error("exhausted feed must refuse fetch-more")
	}
}

func TestFeedStore_StaleFeedResponseDropped(t *testing.T) {
	s := NewFeedStore(nil)
	slow := s.BeginFeed()
	fast := s.BeginFeed()

	s.ApplyFeed(fast, &model.FeedPage{Posts: []model.Post{post("new", 0, false)}}, 1)
	s.ApplyFeed(slow, &model.FeedPage{Posts: []model.Post{post("old", 0, false)}}, 1)

	posts := s.Posts()
	if len(posts) != 1 || posts[0].ID != "new" {
		t.Errorf("posts = %v, want the newer response to win", posts)
	}
}

func TestFeedStore_CommentLifecycle(t *testing.T) {
	s := NewFeedStore(nil)
	p := post("p1", 0, false)
	p.CommentsCount = 1
	s.ApplyFeed(s.BeginFeed(), &model.FeedPage{Posts: []model.Post{p}}, 1)
	s.ApplyComments(s.BeginComments(), "p1", &model.CommentPage{
		Comments: []model.Comment{{ID: "c1", PostID: "p1", Content: "nice"}},
	}, 1)

	s.ApplyCommentAdded(model.Comment{ID: "c2", PostID: "p1", Content: "count me in"})

	if _, comments := s.Comments(); len(comments) != 2 {
		t.Errorf("comments = %d, want 2", len(comments))
	}
	if got, _ := s.Post("p1"); got.CommentsCount != 2 {
		t.Errorf("comments_count = %d, want 2", got.CommentsCount)
	}

	s.ApplyCommentDeleted("p1", "c1")

	if _, comments := s.Comments(); len(comments) != 1 || comments[0].ID != "c2" {
		t.Errorf("comments after delete = %v, want [c2]", comments)
	}
	if got, _ := s.Post("p1"); got.CommentsCount != 1 {
		t.Errorf("comments_count after delete = %d, want 1", got.CommentsCount)
	}
}

func TestFeedStore_SwitchingPostsReplacesThread(t *testing.T) {
	s := NewFeedStore(nil)
	s.ApplyComments(s.BeginComments(), "p1", &model.CommentPage{
		Comments: []model.Comment{{ID: "c1", PostID: "p1"}},
	}, 1)

	// Page 2 of a different post must not extend p1's thread.
	s.ApplyComments(s.BeginComments(), "p2", &model.CommentPage{
		Comments: []model.Comment{{ID: "c9", PostID: "p2"}},
	}, 2)

	postID, comments := s.Comments()
	if postID != "p2" || len(comments) != 1 || comments[0].ID != "c9" {
		t.Errorf("thread = %s %v, want p2's thread only", postID, comments)
	}
}

func TestFeedStore_PostDeletedClosesThread(t *testing.T) {
	s := NewFeedStore(nil)
	s.ApplyFeed(s.BeginFeed(), &model.FeedPage{Posts: []model.Post{post("p1", 0, false)}}, 1)
	s.ApplyComments(s.BeginComments(), "p1", &model.CommentPage{
		Comments: []model.Comment{{ID: "c1", PostID: "p1"}},
	}, 1)

	s.ApplyPostDeleted("p1")

	if posts := s.Posts(); len(posts) != 0 {
		t.Errorf("posts = %v, want empty", posts)
	}
	if postID, comments := s.Comments(); postID != "" || len(comments) != 0 {
		t.Errorf("thread = %q %v, want closed", postID, comments)
	}
}

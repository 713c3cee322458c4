package store

import (
	"log"
	"slices"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// Generation slots for feed fetches.
const (
	slotFeed     = "feed"
	slotComments = "comments"
)

// FeedStore holds the feed slice: the post list plus one comment thread for
// the post currently being viewed.
type FeedStore struct {
	base
	posts       Collection[model.Post]
	comments    Collection[model.Comment]
	commentsFor string
}

func NewFeedStore(bus *dispatch.Bus) *FeedStore {
	return &FeedStore{base: base{bus: bus, domain: "feed"}}
}

// --- operation lifecycle -------------------------------------------------

func (s *FeedStore) BeginFeed() uint64     { return s.begin("fetch_feed", slotFeed) }
func (s *FeedStore) BeginComments() uint64 { return s.begin("fetch_comments", slotComments) }

func (s *FeedStore) RejectFeed(gen uint64, msg string) {
	s.reject("fetch_feed", slotFeed, gen, msg)
}
func (s *FeedStore) RejectComments(gen uint64, msg string) {
	s.reject("fetch_comments", slotComments, gen, msg)
}

// --- fulfilled reducers --------------------------------------------------

// ApplyFeed installs a feed page. Page 1 replaces, later pages append.
func (s *FeedStore) ApplyFeed(gen uint64, page *model.FeedPage, pageNum int) {
	ok := s.fulfill("fetch_feed", slotFeed, gen, func() {
		if pageNum <= 1 {
			s.posts.Reset(page.Posts, page.HasMore)
		} else {
			s.posts.Extend(page.Posts, pageNum, page.HasMore)
		}
	})
	if !ok {
		log.Printf("[FeedStore] dropped stale feed response gen=%d page=%d", gen, pageNum)
	}
}

// ApplyComments installs a comment page for one post. Switching posts
// replaces the thread regardless of page number.
func (s *FeedStore) ApplyComments(gen uint64, postID string, page *model.CommentPage, pageNum int) {
	s.fulfill("fetch_comments", slotComments, gen, func() {
		if pageNum <= 1 || s.commentsFor != postID {
			s.comments.Reset(page.Comments, page.HasMore)
			s.commentsFor = postID
		} else {
			s.comments.Extend(page.Comments, pageNum, page.HasMore)
		}
	})
}

// ApplyPostCreated prepends the new post to the feed.
func (s *FeedStore) ApplyPostCreated(post model.Post) {
	s.mutate("create_post", func() {
		s.posts.Items = append([]model.Post{post}, s.posts.Items...)
	})
}

// ApplyPostDeleted drops the post and its comment thread if it was open.
func (s *FeedStore) ApplyPostDeleted(postID string) {
	s.mutate("delete_post", func() {
		s.posts.Items = removeByID(s.posts.Items, postID, postKey)
		if s.commentsFor == postID {
			s.comments = Collection[model.Comment]{}
			s.commentsFor = ""
		}
	})
}

// ToggleLike is the single source of truth for the like counter: it is
// applied optimistically before the network call, and applied again to roll
// back if the call fails. The fulfilled settle deliberately does nothing.
func (s *FeedStore) ToggleLike(postID string) (nowLiked, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts.Items {
		if s.posts.Items[i].ID == postID {
			p := &s.posts.Items[i]
			if p.IsLiked {
				p.IsLiked = false
				p.LikesCount--
			} else {
				p.IsLiked = true
				p.LikesCount++
			}
			return p.IsLiked, true
		}
	}
	return false, false
}

// ToggleSave mirrors ToggleLike for the saved flag.
func (s *FeedStore) ToggleSave(postID string) (nowSaved, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts.Items {
		if s.posts.Items[i].ID == postID {
			p := &s.posts.Items[i]
			p.IsSaved = !p.IsSaved
			return p.IsSaved, true
		}
	}
	return false, false
}

// ApplyCommentAdded appends the comment to the open thread and bumps the
// post's counter.
func (s *FeedStore) ApplyCommentAdded(comment model.Comment) {
	s.mutate("add_comment", func() {
		if s.commentsFor == comment.PostID {
			s.comments.Items = append(s.comments.Items, comment)
		}
		s.bumpCommentCount(comment.PostID, 1)
	})
}

// ApplyCommentDeleted drops the comment and decrements the post's counter.
func (s *FeedStore) ApplyCommentDeleted(postID, commentID string) {
	s.mutate("delete_comment", func() {
		if s.commentsFor == postID {
			s.comments.Items = removeByID(s.comments.Items, commentID,
				func(c model.Comment) string { return c.ID })
		}
		s.bumpCommentCount(postID, -1)
	})
}

// bumpCommentCount must be called with the write lock held.
func (s *FeedStore) bumpCommentCount(postID string, delta int) {
	for i := range s.posts.Items {
		if s.posts.Items[i].ID == postID {
			s.posts.Items[i].CommentsCount += delta
			return
		}
	}
}

// --- selectors -----------------------------------------------------------

func (s *FeedStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts.Items)
}

func (s *FeedStore) FeedPagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.Pagination
}

func (s *FeedStore) CanFetchMoreFeed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.CanFetchMore()
}

// Post returns one post by id.
func (s *FeedStore) Post(postID string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts.Items {
		if p.ID == postID {
			return p, true
		}
	}
	return model.Post{}, false
}

// Comments returns the open thread and the post it belongs to.
func (s *FeedStore) Comments() (string, []model.Comment) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentsFor, slices.Clone(s.comments.Items)
}

func (s *FeedStore) CommentsPagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comments.Pagination
}

func postKey(p model.Post) string { return p.ID }

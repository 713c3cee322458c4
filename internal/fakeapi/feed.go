package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	page, limit := pageParams(r)
	posts, hasMore := paginate(s.state.posts, page, limit)
	WriteJSON(w, http.StatusOK, model.FeedPage{Posts: posts, HasMore: hasMore})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post := model.Post{
		ID:              newID("post"),
		Type:            req.Type,
		AuthorID:        s.state.viewer.ID,
		AuthorName:      s.state.viewer.Name,
		AuthorAvatarURL: s.state.viewer.AvatarURL,
		Content:         req.Content,
		ImageURLs:       req.ImageURLs,
		CreatedAt:       time.Now().UTC(),
	}
	switch req.Type {
	case model.PostTypeRide:
		ride := s.state.findRide(*req.RideID)
		if ride == nil {
			WriteNotFound(w, "ride not found")
			return
		}
		post.Ride = &ride.Ride
	case model.PostTypeListing:
		listing := s.state.findListing(*req.ListingID)
		if listing == nil {
			WriteNotFound(w, "listing not found")
			return
		}
		post.Listing = &listing.Listing
	case model.PostTypeClubActivity:
		club := s.state.findClub(*req.ClubID)
		if club == nil {
			WriteNotFound(w, "club not found")
			return
		}
		post.Club = &club.Club
	}

	// Newest first, like the real feed.
	s.state.posts = append([]model.Post{post}, s.state.posts...)
	WriteJSON(w, http.StatusCreated, map[string]any{"post": post})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i, p := range s.state.posts {
		if p.ID == id {
			if p.AuthorID != s.state.viewer.ID {
				WriteForbidden(w, "only the author can delete a post")
				return
			}
			s.state.posts = append(s.state.posts[:i], s.state.posts[i+1:]...)
			delete(s.state.comments, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "post not found")
}

func (s *Server) setPostLiked(w http.ResponseWriter, r *http.Request, liked bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post := s.state.findPost(chi.URLParam(r, "id"))
	if post == nil {
		WriteNotFound(w, "post not found")
		return
	}
	if post.IsLiked == liked {
		WriteConflict(w, "like state unchanged")
		return
	}
	post.IsLiked = liked
	if liked {
		post.LikesCount++
	} else {
		post.LikesCount--
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	s.setPostLiked(w, r, true)
}

func (s *Server) handleUnlikePost(w http.ResponseWriter, r *http.Request) {
	s.setPostLiked(w, r, false)
}

func (s *Server) setPostSaved(w http.ResponseWriter, r *http.Request, saved bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post := s.state.findPost(chi.URLParam(r, "id"))
	if post == nil {
		WriteNotFound(w, "post not found")
		return
	}
	post.IsSaved = saved
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	s.setPostSaved(w, r, true)
}

func (s *Server) handleUnsavePost(w http.ResponseWriter, r *http.Request) {
	s.setPostSaved(w, r, false)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	if s.state.findPost(id) == nil {
		WriteNotFound(w, "post not found")
		return
	}
	page, limit := pageParams(r)
	comments, hasMore := paginate(s.state.comments[id], page, limit)
	WriteJSON(w, http.StatusOK, model.CommentPage{Comments: comments, HasMore: hasMore})
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > model.MaxCommentLength {
		WriteBadRequest(w, "comment must be 1-500 characters")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	post := s.state.findPost(id)
	if post == nil {
		WriteNotFound(w, "post not found")
		return
	}
	comment := model.Comment{
		ID:              newID("cmt"),
		PostID:          id,
		AuthorID:        s.state.viewer.ID,
		AuthorName:      s.state.viewer.Name,
		AuthorAvatarURL: s.state.viewer.AvatarURL,
		Content:         content,
		CreatedAt:       time.Now().UTC(),
	}
	s.state.comments[id] = append(s.state.comments[id], comment)
	post.CommentsCount++
	WriteJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	post := s.state.findPost(id)
	if post == nil {
		WriteNotFound(w, "post not found")
		return
	}
	commentID := chi.URLParam(r, "commentID")
	comments := s.state.comments[id]
	for i, c := range comments {
		if c.ID == commentID {
			s.state.comments[id] = append(comments[:i], comments[i+1:]...)
			post.CommentsCount--
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "comment not found")
}

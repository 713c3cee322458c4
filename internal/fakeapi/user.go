package fakeapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	WriteJSON(w, http.StatusOK, map[string]any{"user": s.state.viewer})
}

func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	key := chi.URLParam(r, "id")
	for _, p := range s.state.publics {
		if p.Username == key || p.ID == key {
			WriteJSON(w, http.StatusOK, map[string]any{"user": p})
			return
		}
	}
	WriteNotFound(w, "user not found")
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if req.Name != nil {
		s.state.viewer.Name = *req.Name
	}
	if req.Bio != nil {
		s.state.viewer.Bio = req.Bio
	}
	if req.Location != nil {
		s.state.viewer.Location = req.Location
	}
	s.state.viewer.UpdatedAt = time.Now().UTC()
	WriteJSON(w, http.StatusOK, map[string]any{"user": s.state.viewer})
}

func (s *Server) handleAddBike(w http.ResponseWriter, r *http.Request) {
	var req model.BikeRequest
	if err := decode(r, &req); err != nil || req.Make == "" || req.Model == "" {
		WriteBadRequest(w, "bike make and model are required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	bike := model.Bike{
		ID:        newID("bike"),
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Nickname:  req.Nickname,
		ImageURL:  req.ImageURL,
		IsPrimary: req.IsPrimary,
	}
	if bike.IsPrimary {
		s.clearPrimaryBike()
	}
	s.state.viewer.Bikes = append(s.state.viewer.Bikes, bike)
	WriteJSON(w, http.StatusCreated, map[string]any{"bike": bike})
}

func (s *Server) handleUpdateBike(w http.ResponseWriter, r *http.Request) {
	var req model.BikeRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i := range s.state.viewer.Bikes {
		if s.state.viewer.Bikes[i].ID == id {
			if req.IsPrimary {
				s.clearPrimaryBike()
			}
			b := &s.state.viewer.Bikes[i]
			b.Make = req.Make
			b.Model = req.Model
			b.Year = req.Year
			b.Nickname = req.Nickname
			b.ImageURL = req.ImageURL
			b.IsPrimary = req.IsPrimary
			WriteJSON(w, http.StatusOK, map[string]any{"bike": *b})
			return
		}
	}
	WriteNotFound(w, "bike not found")
}

func (s *Server) clearPrimaryBike() {
	for i := range s.state.viewer.Bikes {
		s.state.viewer.Bikes[i].IsPrimary = false
	}
}

func (s *Server) handleDeleteBike(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	bikes := s.state.viewer.Bikes
	for i, b := range bikes {
		if b.ID == id {
			s.state.viewer.Bikes = append(bikes[:i], bikes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "bike not found")
}

func (s *Server) setFollowing(w http.ResponseWriter, r *http.Request, following bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i := range s.state.publics {
		p := &s.state.publics[i]
		if p.ID == id || p.Username == id {
			if p.IsFollowing == following {
				WriteConflict(w, "follow state unchanged")
				return
			}
			p.IsFollowing = following
			if following {
				p.Stats.Followers++
				s.state.viewer.Stats.Following++
			} else {
				p.Stats.Followers--
				s.state.viewer.Stats.Following--
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "user not found")
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	s.setFollowing(w, r, true)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	s.setFollowing(w, r, false)
}

package fakeapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) handleMyClubs(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	mine := []model.Club{}
	for _, c := range s.state.clubs {
		if c.IsMember {
			mine = append(mine, c.Club)
		}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"clubs": mine})
}

func (s *Server) handleDiscoverClubs(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	all := make([]model.Club, 0, len(s.state.clubs))
	for _, c := range s.state.clubs {
		all = append(all, c.Club)
	}
	page, limit := pageParams(r)
	clubs, hasMore := paginate(all, page, limit)
	WriteJSON(w, http.StatusOK, model.ClubPage{Clubs: clubs, HasMore: hasMore})
}

func (s *Server) handleGetClub(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"club": club})
}

func (s *Server) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClubRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		WriteBadRequest(w, "club name is required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	now := time.Now().UTC()
	club := &model.ClubDetails{
		Club: model.Club{
			ID:          newID("club"),
			Name:        req.Name,
			Description: req.Description,
			Location:    req.Location,
			IsPrivate:   req.IsPrivate,
			Tags:        req.Tags,
			MemberCount: 1,
			FounderID:   s.state.viewer.ID,
			CreatedAt:   now,
		},
		Members: []model.ClubMember{{
			ID:       newID("mem"),
			UserID:   s.state.viewer.ID,
			Name:     s.state.viewer.Name,
			Role:     model.RoleFounder,
			Status:   "active",
			JoinedAt: now,
		}},
		Settings: model.ClubSettings{RequiresApproval: true, MembersCanPost: true},
		IsMember: true,
	}
	s.state.clubs = append(s.state.clubs, club)
	WriteJSON(w, http.StatusCreated, map[string]any{"club": club})
}

func (s *Server) handleUpdateClub(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateClubRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Description != nil {
		club.Description = *req.Description
	}
	if req.Location != nil {
		club.Location = *req.Location
	}
	if req.IsPrivate != nil {
		club.IsPrivate = *req.IsPrivate
	}
	if req.Tags != nil {
		club.Tags = req.Tags
	}
	WriteJSON(w, http.StatusOK, map[string]any{"club": club})
}

func (s *Server) handleDeleteClub(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i, c := range s.state.clubs {
		if c.ID == id {
			s.state.clubs = append(s.state.clubs[:i], s.state.clubs[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "club not found")
}

func (s *Server) handleJoinClub(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	if club.IsMember {
		WriteConflict(w, "already a member of this club")
		return
	}
	club.IsPending = true
	club.JoinRequests = append(club.JoinRequests, model.JoinRequest{
		ID:          newID("req"),
		UserID:      s.state.viewer.ID,
		Name:        s.state.viewer.Name,
		RequestedAt: time.Now().UTC(),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaveClub(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	if club.FounderID == s.state.viewer.ID {
		WriteForbidden(w, "founder cannot leave their own club")
		return
	}
	club.IsMember = false
	for i, m := range club.Members {
		if m.UserID == s.state.viewer.ID {
			club.Members = append(club.Members[:i], club.Members[i+1:]...)
			club.MemberCount--
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClubMembers(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"members": club.Members})
}

func (s *Server) handleUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role model.MemberRole `json:"role"`
	}
	if err := decode(r, &req); err != nil || !model.ValidMemberRole(req.Role) {
		WriteBadRequest(w, "invalid member role")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	memberID := chi.URLParam(r, "memberID")
	for i := range club.Members {
		if club.Members[i].ID == memberID {
			if club.Members[i].Role == model.RoleFounder {
				WriteForbidden(w, "founder role cannot be changed")
				return
			}
			club.Members[i].Role = req.Role
			WriteJSON(w, http.StatusOK, map[string]any{"member": club.Members[i]})
			return
		}
	}
	WriteNotFound(w, "club member not found")
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	memberID := chi.URLParam(r, "memberID")
	for i, m := range club.Members {
		if m.ID == memberID {
			if m.Role == model.RoleFounder {
				WriteForbidden(w, "founder cannot be removed")
				return
			}
			club.Members = append(club.Members[:i], club.Members[i+1:]...)
			club.MemberCount--
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "club member not found")
}

func (s *Server) handleApproveJoin(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	requestID := chi.URLParam(r, "requestID")
	for i, jr := range club.JoinRequests {
		if jr.ID == requestID {
			member := model.ClubMember{
				ID:        newID("mem"),
				UserID:    jr.UserID,
				Name:      jr.Name,
				AvatarURL: jr.AvatarURL,
				Role:      model.RoleMember,
				Status:    "active",
				JoinedAt:  time.Now().UTC(),
			}
			club.JoinRequests = append(club.JoinRequests[:i], club.JoinRequests[i+1:]...)
			club.Members = append(club.Members, member)
			club.MemberCount++
			WriteJSON(w, http.StatusOK, map[string]any{"member": member})
			return
		}
	}
	WriteNotFound(w, "join request not found")
}

func (s *Server) handleRejectJoin(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	club := s.state.findClub(chi.URLParam(r, "id"))
	if club == nil {
		WriteNotFound(w, "club not found")
		return
	}
	requestID := chi.URLParam(r, "requestID")
	for i, jr := range club.JoinRequests {
		if jr.ID == requestID {
			club.JoinRequests = append(club.JoinRequests[:i], club.JoinRequests[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "join request not found")
}

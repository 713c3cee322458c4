package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	WriteJSON(w, http.StatusOK, map[string]any{"users": s.state.adminUsers})
}

func (s *Server) handleAdminClubs(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rows := make([]model.AdminClub, 0, len(s.state.clubs))
	for _, c := range s.state.clubs {
		founder := ""
		for _, m := range c.Members {
			if m.Role == model.RoleFounder {
				founder = m.Name
				break
			}
		}
		rows = append(rows, model.AdminClub{
			ID:          c.ID,
			Name:        c.Name,
			Location:    c.Location,
			FounderName: founder,
			MemberCount: c.MemberCount,
			Verified:    s.state.verified[c.ID],
			CreatedAt:   c.CreatedAt,
		})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"clubs": rows})
}

func (s *Server) handleAdminRides(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rows := make([]model.AdminRide, 0, len(s.state.rides))
	for _, rd := range s.state.rides {
		rows = append(rows, model.AdminRide{
			ID:               rd.ID,
			Title:            rd.Title,
			OrganizerName:    rd.OrganizerName,
			Status:           rd.Status,
			ParticipantCount: rd.ParticipantCount,
			ScheduledAt:      rd.ScheduledAt,
		})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"rides": rows})
}

func (s *Server) handleAdminListings(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rows := make([]model.AdminListing, 0, len(s.state.listings))
	for _, l := range s.state.listings {
		rows = append(rows, model.AdminListing{
			ID:               l.ID,
			Title:            l.Title,
			SellerName:       l.SellerName,
			Category:         l.Category,
			Price:            l.Price,
			Currency:         l.Currency,
			ModerationStatus: s.state.moderation[l.ID],
			CreatedAt:        l.CreatedAt,
		})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"listings": rows})
}

func (s *Server) handleVerifyClub(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	if s.state.findClub(id) == nil {
		WriteNotFound(w, "club not found")
		return
	}
	s.state.verified[id] = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChangeUserRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}
	switch req.Role {
	case model.PlatformRoleRider, model.PlatformRoleModerator, model.PlatformRoleAdmin:
	default:
		WriteBadRequest(w, "invalid platform role")
		return
	}
	s.setUserField(w, r, func(u *model.AdminUser) { u.Role = req.Role })
}

func (s *Server) handleSuspendUser(w http.ResponseWriter, r *http.Request) {
	s.setUserField(w, r, func(u *model.AdminUser) { u.Status = model.UserStatusSuspended })
}

func (s *Server) handleActivateUser(w http.ResponseWriter, r *http.Request) {
	s.setUserField(w, r, func(u *model.AdminUser) { u.Status = model.UserStatusActive })
}

func (s *Server) setUserField(w http.ResponseWriter, r *http.Request, apply func(*model.AdminUser)) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i := range s.state.adminUsers {
		if s.state.adminUsers[i].ID == id {
			apply(&s.state.adminUsers[i])
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "user not found")
}

func (s *Server) setModeration(w http.ResponseWriter, r *http.Request, status string) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	if s.state.findListing(id) == nil {
		WriteNotFound(w, "listing not found")
		return
	}
	s.state.moderation[id] = status
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApproveListing(w http.ResponseWriter, r *http.Request) {
	s.setModeration(w, r, model.ModerationApproved)
}

func (s *Server) handleFlagListing(w http.ResponseWriter, r *http.Request) {
	s.setModeration(w, r, model.ModerationFlagged)
}

func (s *Server) handleRemoveListing(w http.ResponseWriter, r *http.Request) {
	s.setModeration(w, r, model.ModerationRemoved)
}

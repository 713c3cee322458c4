package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) ridePage(w http.ResponseWriter, r *http.Request, match func(*model.RideDetails) bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rides := []model.Ride{}
	for _, rd := range s.state.rides {
		if match(rd) {
			rides = append(rides, rd.Ride)
		}
	}
	page, limit := pageParams(r)
	out, hasMore := paginate(rides, page, limit)
	WriteJSON(w, http.StatusOK, model.RidePage{Rides: out, HasMore: hasMore})
}

func (s *Server) handleUpcomingRides(w http.ResponseWriter, r *http.Request) {
	s.ridePage(w, r, func(rd *model.RideDetails) bool {
		return rd.Status == model.RidePlanned || rd.Status == model.RideActive
	})
}

func (s *Server) handleMyRides(w http.ResponseWriter, r *http.Request) {
	viewerID := s.state.viewer.ID
	s.ridePage(w, r, func(rd *model.RideDetails) bool {
		return rd.OrganizerID == viewerID || rd.IsParticipant
	})
}

func (s *Server) handlePastRides(w http.ResponseWriter, r *http.Request) {
	s.ridePage(w, r, func(rd *model.RideDetails) bool {
		return rd.Status == model.RideCompleted || rd.Status == model.RideCancelled
	})
}

func (s *Server) handleGetRide(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ride": ride})
}

func (s *Server) handleCreateRide(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRideRequest
	if err := decode(r, &req); err != nil || req.Title == "" {
		WriteBadRequest(w, "ride title is required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := &model.RideDetails{
		Ride: model.Ride{
			ID:               newID("ride"),
			Title:            req.Title,
			Status:           model.RidePlanned,
			StartLocation:    req.StartLocation,
			EndLocation:      req.EndLocation,
			ScheduledAt:      req.ScheduledAt,
			DistanceKM:       req.DistanceKM,
			DurationMin:      req.DurationMin,
			OrganizerID:      s.state.viewer.ID,
			OrganizerName:    s.state.viewer.Name,
			ClubID:           req.ClubID,
			ParticipantCount: 1,
		},
		Participants: []model.RideParticipant{{
			ID:         newID("rp"),
			UserID:     s.state.viewer.ID,
			Name:       s.state.viewer.Name,
			Status:     model.ParticipantConfirmed,
			LiveStatus: model.LiveOK,
		}},
		ChatEnabled:   true,
		IsParticipant: true,
	}
	s.state.rides = append(s.state.rides, ride)
	WriteJSON(w, http.StatusCreated, map[string]any{"ride": ride})
}

func (s *Server) handleUpdateRide(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRideRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	if req.Title != nil {
		ride.Title = *req.Title
	}
	if req.StartLocation != nil {
		ride.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		ride.EndLocation = *req.EndLocation
	}
	if req.ScheduledAt != nil {
		ride.ScheduledAt = *req.ScheduledAt
	}
	if req.DistanceKM != nil {
		ride.DistanceKM = *req.DistanceKM
	}
	if req.DurationMin != nil {
		ride.DurationMin = *req.DurationMin
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ride": ride})
}

func (s *Server) handleDeleteRide(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i, rd := range s.state.rides {
		if rd.ID == id {
			s.state.rides = append(s.state.rides[:i], s.state.rides[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "ride not found")
}

func (s *Server) handleJoinRide(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	if ride.IsParticipant {
		WriteConflict(w, "already joined this ride")
		return
	}
	p := model.RideParticipant{
		ID:         newID("rp"),
		UserID:     s.state.viewer.ID,
		Name:       s.state.viewer.Name,
		Status:     model.ParticipantConfirmed,
		LiveStatus: model.LiveOK,
	}
	ride.Participants = append(ride.Participants, p)
	ride.ParticipantCount++
	ride.IsParticipant = true
	WriteJSON(w, http.StatusOK, map[string]any{"participant": p})
}

func (s *Server) handleLeaveRide(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	if !ride.IsParticipant {
		WriteConflict(w, "not a participant of this ride")
		return
	}
	for i, p := range ride.Participants {
		if p.UserID == s.state.viewer.ID {
			ride.Participants = append(ride.Participants[:i], ride.Participants[i+1:]...)
			break
		}
	}
	ride.ParticipantCount--
	ride.IsParticipant = false
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) transitionRide(w http.ResponseWriter, r *http.Request, from, to model.RideStatus) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	if ride.OrganizerID != s.state.viewer.ID {
		WriteForbidden(w, "only the organizer can change the ride status")
		return
	}
	if ride.Status != from {
		WriteConflict(w, "ride is not "+string(from))
		return
	}
	ride.Status = to
	ride.TrackingEnabled = to == model.RideActive
	WriteJSON(w, http.StatusOK, map[string]any{"ride": ride})
}

func (s *Server) handleStartRide(w http.ResponseWriter, r *http.Request) {
	s.transitionRide(w, r, model.RidePlanned, model.RideActive)
}

func (s *Server) handleEndRide(w http.ResponseWriter, r *http.Request) {
	s.transitionRide(w, r, model.RideActive, model.RideCompleted)
}

func (s *Server) handleLiveStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status   model.LiveStatus `json:"status"`
		Location *model.GeoPoint  `json:"location"`
	}
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}
	switch req.Status {
	case model.LiveOK, model.LiveNeedHelp, model.LiveEmergency:
	default:
		WriteBadRequest(w, "invalid live status")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ride := s.state.findRide(chi.URLParam(r, "id"))
	if ride == nil {
		WriteNotFound(w, "ride not found")
		return
	}
	if ride.Status != model.RideActive {
		WriteConflict(w, "ride is not active")
		return
	}
	for i := range ride.Participants {
		if ride.Participants[i].UserID == s.state.viewer.ID {
			ride.Participants[i].LiveStatus = req.Status
			if req.Location != nil {
				loc := *req.Location
				ride.Participants[i].LastLocation = &loc
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteForbidden(w, "not a participant of this ride")
}

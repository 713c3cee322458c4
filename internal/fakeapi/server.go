package fakeapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Server serves the fake backend over the production wire contract.
type Server struct {
	state *State
}

func NewServer(state *State) *Server {
	return &Server{state: state}
}

// Router creates and configures a Chi router with all route groups.
// Pass a nil registry to skip metrics (tests do).
func (s *Server) Router(reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	if reg != nil {
		r.Use(Metrics(reg))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/clubs", func(r chi.Router) {
		r.Get("/mine", s.handleMyClubs)
		r.Get("/discover", s.handleDiscoverClubs)
		r.Post("/", s.handleCreateClub)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetClub)
			r.Patch("/", s.handleUpdateClub)
			r.Delete("/", s.handleDeleteClub)
			r.Post("/join", s.handleJoinClub)
			r.Post("/leave", s.handleLeaveClub)
			r.Get("/members", s.handleClubMembers)
			r.Patch("/members/{memberID}/role", s.handleUpdateMemberRole)
			r.Delete("/members/{memberID}", s.handleRemoveMember)
			r.Post("/requests/{requestID}/approve", s.handleApproveJoin)
			r.Post("/requests/{requestID}/reject", s.handleRejectJoin)
		})
	})

	r.Route("/rides", func(r chi.Router) {
		r.Get("/upcoming", s.handleUpcomingRides)
		r.Get("/mine", s.handleMyRides)
		r.Get("/past", s.handlePastRides)
		r.Post("/", s.handleCreateRide)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRide)
			r.Patch("/", s.handleUpdateRide)
			r.Delete("/", s.handleDeleteRide)
			r.Post("/join", s.handleJoinRide)
			r.Post("/leave", s.handleLeaveRide)
			r.Post("/start", s.handleStartRide)
			r.Post("/end", s.handleEndRide)
			r.Post("/live", s.handleLiveStatus)
		})
	})

	r.Route("/market/listings", func(r chi.Router) {
		r.Get("/", s.handleBrowseListings)
		r.Get("/mine", s.handleMyListings)
		r.Get("/saved", s.handleSavedListings)
		r.Post("/", s.handleCreateListing)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetListing)
			r.Patch("/", s.handleUpdateListing)
			r.Delete("/", s.handleDeleteListing)
			r.Post("/save", s.handleSaveListing)
			r.Delete("/save", s.handleUnsaveListing)
			r.Post("/sold", s.handleMarkSold)
		})
	})

	r.Route("/feed", func(r chi.Router) {
		r.Get("/", s.handleFeed)
		r.Post("/posts", s.handleCreatePost)
		r.Route("/posts/{id}", func(r chi.Router) {
			r.Delete("/", s.handleDeletePost)
			r.Post("/like", s.handleLikePost)
			r.Delete("/like", s.handleUnlikePost)
			r.Post("/save", s.handleSavePost)
			r.Delete("/save", s.handleUnsavePost)
			r.Get("/comments", s.handleComments)
			r.Post("/comments", s.handleAddComment)
			r.Delete("/comments/{commentID}", s.handleDeleteComment)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/me", s.handleProfile)
		r.Patch("/me", s.handleUpdateProfile)
		r.Post("/me/bikes", s.handleAddBike)
		r.Patch("/me/bikes/{id}", s.handleUpdateBike)
		r.Delete("/me/bikes/{id}", s.handleDeleteBike)
		r.Get("/{id}", s.handlePublicProfile)
		r.Post("/{id}/follow", s.handleFollow)
		r.Delete("/{id}/follow", s.handleUnfollow)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", s.handleAdminUsers)
		r.Get("/clubs", s.handleAdminClubs)
		r.Get("/rides", s.handleAdminRides)
		r.Get("/listings", s.handleAdminListings)
		r.Post("/clubs/{id}/verify", s.handleVerifyClub)
		r.Patch("/users/{id}/role", s.handleChangeUserRole)
		r.Post("/users/{id}/suspend", s.handleSuspendUser)
		r.Post("/users/{id}/activate", s.handleActivateUser)
		r.Post("/listings/{id}/approve", s.handleApproveListing)
		r.Post("/listings/{id}/flag", s.handleFlagListing)
		r.Delete("/listings/{id}", s.handleRemoveListing)
	})

	return r
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

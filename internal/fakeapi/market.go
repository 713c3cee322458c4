package fakeapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func (s *Server) handleBrowseListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.ToLower(q.Get("q"))
	category := q.Get("category")
	condition := q.Get("condition")
	minPrice, _ := strconv.ParseFloat(q.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	matched := []model.Listing{}
	for _, l := range s.state.listings {
		if query != "" && !strings.Contains(strings.ToLower(l.Title), query) {
			continue
		}
		if category != "" && l.Category != category {
			continue
		}
		if condition != "" && l.Condition != condition {
			continue
		}
		if minPrice > 0 && l.Price < minPrice {
			continue
		}
		if maxPrice > 0 && l.Price > maxPrice {
			continue
		}
		matched = append(matched, l.Listing)
	}
	page, limit := pageParams(r)
	out, hasMore := paginate(matched, page, limit)
	WriteJSON(w, http.StatusOK, model.ListingPage{Listings: out, HasMore: hasMore})
}

func (s *Server) handleMyListings(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	mine := []model.Listing{}
	for _, l := range s.state.listings {
		if l.SellerID == s.state.viewer.ID {
			mine = append(mine, l.Listing)
		}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"listings": mine})
}

func (s *Server) handleSavedListings(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	saved := []model.Listing{}
	for _, l := range s.state.listings {
		if l.IsSaved {
			saved = append(saved, l.Listing)
		}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"listings": saved})
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	listing := s.state.findListing(chi.URLParam(r, "id"))
	if listing == nil {
		WriteNotFound(w, "listing not found")
		return
	}
	listing.ViewsCount++

	// Related listings share a category.
	related := []model.Listing{}
	for _, l := range s.state.listings {
		if l.ID != listing.ID && l.Category == listing.Category && !l.IsSold {
			related = append(related, l.Listing)
		}
	}
	out := *listing
	out.RelatedListings = related
	WriteJSON(w, http.StatusOK, map[string]any{"listing": out})
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req model.CreateListingRequest
	if err := decode(r, &req); err != nil || req.Title == "" || req.Price <= 0 {
		WriteBadRequest(w, "listing title and a positive price are required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	listing := &model.ListingDetails{
		Listing: model.Listing{
			ID:         newID("lst"),
			Title:      req.Title,
			Price:      req.Price,
			Currency:   req.Currency,
			Category:   req.Category,
			Condition:  req.Condition,
			ImageURLs:  req.ImageURLs,
			SellerID:   s.state.viewer.ID,
			SellerName: s.state.viewer.Name,
			CreatedAt:  time.Now().UTC(),
		},
		Description: req.Description,
	}
	s.state.listings = append(s.state.listings, listing)
	s.state.moderation[listing.ID] = model.ModerationPending
	WriteJSON(w, http.StatusCreated, map[string]any{"listing": listing})
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateListingRequest
	if err := decode(r, &req); err != nil {
		WriteBadRequest(w, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	listing := s.state.findListing(chi.URLParam(r, "id"))
	if listing == nil {
		WriteNotFound(w, "listing not found")
		return
	}
	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Condition != nil {
		listing.Condition = *req.Condition
	}
	WriteJSON(w, http.StatusOK, map[string]any{"listing": listing})
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i, l := range s.state.listings {
		if l.ID == id {
			s.state.listings = append(s.state.listings[:i], s.state.listings[i+1:]...)
			delete(s.state.moderation, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	WriteNotFound(w, "listing not found")
}

func (s *Server) handleSaveListing(w http.ResponseWriter, r *http.Request) {
	s.setListingSaved(w, r, true)
}

func (s *Server) handleUnsaveListing(w http.ResponseWriter, r *http.Request) {
	s.setListingSaved(w, r, false)
}

func (s *Server) setListingSaved(w http.ResponseWriter, r *http.Request, saved bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	listing := s.state.findListing(chi.URLParam(r, "id"))
	if listing == nil {
		WriteNotFound(w, "listing not found")
		return
	}
	listing.IsSaved = saved
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkSold(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	listing := s.state.findListing(chi.URLParam(r, "id"))
	if listing == nil {
		WriteNotFound(w, "listing not found")
		return
	}
	if listing.SellerID != s.state.viewer.ID {
		WriteForbidden(w, "only the seller can mark a listing sold")
		return
	}
	if listing.IsSold {
		WriteConflict(w, "listing already sold")
		return
	}
	listing.IsSold = true
	WriteJSON(w, http.StatusOK, map[string]any{"listing": listing})
}

package service

import (
	"context"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

// MarketService bundles the marketplace operations with the market store's
// selectors.
type MarketService struct {
	api      api.MarketAPI
	store    *store.MarketStore
	pageSize int
}

func NewMarketService(a api.MarketAPI, st *store.MarketStore, pageSize int) *MarketService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &MarketService{api: a, store: st, pageSize: pageSize}
}

// Browse fetches the first page for a filter, replacing the browse list.
func (s *MarketService) Browse(ctx context.Context, filter model.ListingFilter) error {
	gen := s.store.BeginBrowse()
	page, err := s.api.List(ctx, filter, 1, s.pageSize)
	if err != nil {
		s.store.RejectBrowse(gen, coerce(err, "Failed to load listings"))
		return err
	}
	s.store.ApplyBrowse(gen, filter, page, 1)
	return nil
}

// BrowseMore appends the next page under the pinned filter; exhausted lists
// make this a no-op.
func (s *MarketService) BrowseMore(ctx context.Context) error {
	if !s.store.CanBrowseMore() {
		return nil
	}
	filter := s.store.Filter()
	next := s.store.BrowsePagination().Page + 1
	gen := s.store.BeginBrowse()
	page, err := s.api.List(ctx, filter, next, s.pageSize)
	if err != nil {
		s.store.RejectBrowse(gen, coerce(err, "Failed to load listings"))
		return err
	}
	s.store.ApplyBrowse(gen, filter, page, next)
	return nil
}

func (s *MarketService) FetchMine(ctx context.Context) error {
	gen := s.store.BeginMine()
	listings, err := s.api.Mine(ctx)
	if err != nil {
		s.store.RejectMine(gen, coerce(err, "Failed to load your listings"))
		return err
	}
	s.store.SetMine(gen, listings)
	return nil
}

func (s *MarketService) FetchSaved(ctx context.Context) error {
	gen := s.store.BeginSaved()
	listings, err := s.api.Saved(ctx)
	if err != nil {
		s.store.RejectSaved(gen, coerce(err, "Failed to load saved listings"))
		return err
	}
	s.store.SetSaved(gen, listings)
	return nil
}

// FetchListing loads the listing detail record.
func (s *MarketService) FetchListing(ctx context.Context, listingID string) error {
	gen := s.store.BeginCurrent()
	details, err := s.api.Get(ctx, listingID)
	if err != nil {
		s.store.RejectCurrent(gen, coerce(err, "Failed to load listing"))
		return err
	}
	s.store.SetCurrent(gen, details)
	return nil
}

func (s *MarketService) CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.ListingDetails, error) {
	s.store.BeginMutation("create")
	details, err := s.api.Create(ctx, req)
	if err != nil {
		s.store.Fail("create", coerce(err, "Failed to create listing"))
		return nil, err
	}
	s.store.ApplyCreated(details)
	return details, nil
}

func (s *MarketService) UpdateListing(ctx context.Context, listingID string, req *model.UpdateListingRequest) error {
	s.store.BeginMutation("update")
	details, err := s.api.Update(ctx, listingID, req)
	if err != nil {
		s.store.Fail("update", coerce(err, "Failed to update listing"))
		return err
	}
	s.store.ApplyUpdated(details)
	return nil
}

func (s *MarketService) DeleteListing(ctx context.Context, listingID string) error {
	s.store.BeginMutation("delete")
	if err := s.api.Delete(ctx, listingID); err != nil {
		s.store.Fail("delete", coerce(err, "Failed to delete listing"))
		return err
	}
	s.store.ApplyDeleted(listingID)
	return nil
}

func (s *MarketService) SaveListing(ctx context.Context, listingID string) error {
	s.store.BeginMutation("save")
	if err := s.api.Save(ctx, listingID); err != nil {
		s.store.Fail("save", coerce(err, "Failed to save listing"))
		return err
	}
	s.store.ApplySaved(listingID)
	return nil
}

func (s *MarketService) UnsaveListing(ctx context.Context, listingID string) error {
	s.store.BeginMutation("unsave")
	if err := s.api.Unsave(ctx, listingID); err != nil {
		s.store.Fail("unsave", coerce(err, "Failed to unsave listing"))
		return err
	}
	s.store.ApplyUnsaved(listingID)
	return nil
}

// MarkSold marks the listing sold everywhere it appears.
func (s *MarketService) MarkSold(ctx context.Context, listingID string) error {
	s.store.BeginMutation("mark_sold")
	details, err := s.api.MarkSold(ctx, listingID)
	if err != nil {
		s.store.Fail("mark_sold", coerce(err, "Failed to mark listing as sold"))
		return err
	}
	s.store.ApplySold(details)
	return nil
}

// --- selectors (facade over the store) -----------------------------------

func (s *MarketService) Listings() []model.Listing        { return s.store.Browse() }
func (s *MarketService) MyListings() []model.Listing      { return s.store.MyListings() }
func (s *MarketService) SavedListings() []model.Listing   { return s.store.SavedListings() }
func (s *MarketService) Current() *model.ListingDetails   { return s.store.Current() }
func (s *MarketService) Filter() model.ListingFilter      { return s.store.Filter() }
func (s *MarketService) CanBrowseMore() bool              { return s.store.CanBrowseMore() }
func (s *MarketService) Status() store.Status             { return s.store.Status() }
func (s *MarketService) Pagination() store.Pagination     { return s.store.BrowsePagination() }

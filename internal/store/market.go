package store

import (
	"log"
	"slices"

	"github.com/xride-labs/zoomies-web-sub000/internal/dispatch"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// Generation slots for marketplace fetches.
const (
	slotMarketBrowse  = "browse"
	slotMarketMine    = "mine"
	slotMarketSaved   = "saved"
	slotMarketCurrent = "current"
)

// MarketStore holds the marketplace slice: the filtered browse list, my
// listings, saved listings and the current detail record.
type MarketStore struct {
	base
	browse  Collection[model.Listing]
	filter  model.ListingFilter
	mine    []model.Listing
	saved   []model.Listing
	current *model.ListingDetails
}

func NewMarketStore(bus *dispatch.Bus) *MarketStore {
	return &MarketStore{base: base{bus: bus, domain: "market"}}
}

// --- operation lifecycle -------------------------------------------------

func (s *MarketStore) BeginBrowse() uint64  { return s.begin("browse", slotMarketBrowse) }
func (s *MarketStore) BeginMine() uint64    { return s.begin("fetch_mine", slotMarketMine) }
func (s *MarketStore) BeginSaved() uint64   { return s.begin("fetch_saved", slotMarketSaved) }
func (s *MarketStore) BeginCurrent() uint64 { return s.begin("fetch_listing", slotMarketCurrent) }

func (s *MarketStore) RejectBrowse(gen uint64, msg string) {
	s.reject("browse", slotMarketBrowse, gen, msg)
}
func (s *MarketStore) RejectMine(gen uint64, msg string) {
	s.reject("fetch_mine", slotMarketMine, gen, msg)
}
func (s *MarketStore) RejectSaved(gen uint64, msg string) {
	s.reject("fetch_saved", slotMarketSaved, gen, msg)
}
func (s *MarketStore) RejectCurrent(gen uint64, msg string) {
	s.reject("fetch_listing", slotMarketCurrent, gen, msg)
}

// --- fulfilled reducers --------------------------------------------------

// ApplyBrowse installs a browse page for the given filter. Page 1 replaces
// the list and pins the filter; later pages append.
func (s *MarketStore) ApplyBrowse(gen uint64, filter model.ListingFilter, page *model.ListingPage, pageNum int) {
	ok := s.fulfill("browse", slotMarketBrowse, gen, func() {
		if pageNum <= 1 {
			s.browse.Reset(page.Listings, page.HasMore)
			s.filter = filter
		} else {
			s.browse.Extend(page.Listings, pageNum, page.HasMore)
		}
	})
	if !ok {
		log.Printf("[MarketStore] dropped stale browse response gen=%d page=%d", gen, pageNum)
	}
}

func (s *MarketStore) SetMine(gen uint64, listings []model.Listing) {
	s.fulfill("fetch_mine", slotMarketMine, gen, func() {
		s.mine = listings
	})
}

func (s *MarketStore) SetSaved(gen uint64, listings []model.Listing) {
	s.fulfill("fetch_saved", slotMarketSaved, gen, func() {
		s.saved = listings
	})
}

func (s *MarketStore) SetCurrent(gen uint64, details *model.ListingDetails) {
	if !s.fulfill("fetch_listing", slotMarketCurrent, gen, func() {
		s.current = details
	}) {
		log.Printf("[MarketStore] dropped stale listing detail response gen=%d", gen)
	}
}

// ApplyCreated prepends the new listing to my listings and makes it current.
func (s *MarketStore) ApplyCreated(details *model.ListingDetails) {
	s.mutate("create", func() {
		s.mine = append([]model.Listing{details.Listing}, s.mine...)
		s.current = details
	})
}

// ApplyUpdated merges the updated listing into current and every list entry.
func (s *MarketStore) ApplyUpdated(details *model.ListingDetails) {
	s.mutate("update", func() {
		s.applyToAll(details)
	})
}

// applyToAll must be called with the write lock held.
func (s *MarketStore) applyToAll(details *model.ListingDetails) {
	if s.current != nil && s.current.ID == details.ID {
		related := s.current.RelatedListings
		s.current = details
		if details.RelatedListings == nil {
			s.current.RelatedListings = related
		}
	}
	replaceByID(s.mine, details.Listing, listingID)
	replaceByID(s.saved, details.Listing, listingID)
	replaceByID(s.browse.Items, details.Listing, listingID)
}

// ApplyDeleted drops the listing from every list and nulls current if it
// matched.
func (s *MarketStore) ApplyDeleted(id string) {
	s.mutate("delete", func() {
		s.mine = removeByID(s.mine, id, listingID)
		s.saved = removeByID(s.saved, id, listingID)
		s.browse.Items = removeByID(s.browse.Items, id, listingID)
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
}

// ApplySaved flags the listing saved wherever it appears and adds it to the
// saved list when a copy is at hand.
func (s *MarketStore) ApplySaved(id string) {
	s.mutate("save", func() {
		var copyOf *model.Listing
		mark := func(items []model.Listing) {
			for i := range items {
				if items[i].ID == id {
					items[i].IsSaved = true
					copyOf = &items[i]
				}
			}
		}
		mark(s.browse.Items)
		mark(s.mine)
		if s.current != nil && s.current.ID == id {
			s.current.IsSaved = true
			copyOf = &s.current.Listing
		}
		if copyOf != nil && !slices.ContainsFunc(s.saved, func(l model.Listing) bool { return l.ID == id }) {
			s.saved = append([]model.Listing{*copyOf}, s.saved...)
		}
	})
}

// ApplyUnsaved clears the saved flag everywhere and drops the listing from
// the saved list.
func (s *MarketStore) ApplyUnsaved(id string) {
	s.mutate("unsave", func() {
		clear := func(items []model.Listing) {
			for i := range items {
				if items[i].ID == id {
					items[i].IsSaved = false
				}
			}
		}
		clear(s.browse.Items)
		clear(s.mine)
		s.saved = removeByID(s.saved, id, listingID)
		if s.current != nil && s.current.ID == id {
			s.current.IsSaved = false
		}
	})
}

// ApplySold marks the listing sold in my listings, the browse list and the
// current detail record, all in the same settle.
func (s *MarketStore) ApplySold(details *model.ListingDetails) {
	s.mutate("mark_sold", func() {
		s.applyToAll(details)
	})
}

// --- selectors -----------------------------------------------------------

func (s *MarketStore) Browse() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.browse.Items)
}

func (s *MarketStore) BrowsePagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.browse.Pagination
}

func (s *MarketStore) CanBrowseMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.browse.CanFetchMore()
}

// Filter returns the filter the browse list was fetched with.
func (s *MarketStore) Filter() model.ListingFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *MarketStore) MyListings() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.mine)
}

func (s *MarketStore) SavedListings() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.saved)
}

func (s *MarketStore) Current() *model.ListingDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.RelatedListings = slices.Clone(s.current.RelatedListings)
	return &cp
}

func listingID(l model.Listing) string { return l.ID }

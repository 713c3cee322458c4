package store

import (
	"testing"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

func listing(id string) model.Listing {
	return model.Listing{ID: id, Title: "Listing " + id, Price: 100}
}

func TestMarketStore_BrowsePinsFilterOnFirstPage(t *testing.T) {
	s := NewMarketStore(nil)

	gearOnly := model.ListingFilter{Category: model.CategoryGear}
	s.ApplyBrowse(s.BeginBrowse(), gearOnly, &model.ListingPage{Listings: []model.Listing{listing("a")}, HasMore: true}, 1)

	if got := s.Filter(); got != gearOnly {
		t.Errorf("filter = %+v, want the one the page was fetched with", got)
	}

	// Page 2 extends under the same filter.
	s.ApplyBrowse(s.BeginBrowse(), gearOnly, &model.ListingPage{Listings: []model.Listing{listing("b")}}, 2)
	if got := s.Browse(); len(got) != 2 {
		t.Errorf("browse = %d items, want 2", len(got))
	}
	if got := s.Filter(); got != gearOnly {
		t.Errorf("filter after page 2 = %+v, want unchanged", got)
	}
}

func TestMarketStore_SoldMarksEveryCopy(t *testing.T) {
	s := NewMarketStore(nil)
	s.ApplyBrowse(s.BeginBrowse(), model.ListingFilter{}, &model.ListingPage{Listings: []model.Listing{listing("a"), listing("b")}}, 1)
	s.SetMine(s.BeginMine(), []model.Listing{listing("a")})
	s.SetCurrent(s.BeginCurrent(), &model.ListingDetails{Listing: listing("a")})

	sold := listing("a")
	sold.IsSold = true
	s.ApplySold(&model.ListingDetails{Listing: sold})

	if cur := s.Current(); !cur.IsSold {
		t.Error("current must be marked sold")
	}
	if mine := s.MyListings(); !mine[0].IsSold {
		t.Error("my listings copy must be marked sold")
	}
	browse := s.Browse()
	if !browse[0].IsSold {
		t.Error("browse copy must be marked sold")
	}
	if browse[1].IsSold {
		t.Error("other listings must be untouched")
	}
}

func TestMarketStore_UpdatePreservesRelatedWhenOmitted(t *testing.T) {
	s := NewMarketStore(nil)
	s.SetCurrent(s.BeginCurrent(), &model.ListingDetails{
		Listing:         listing("a"),
		RelatedListings: []model.Listing{listing("rel")},
	})

	updated := listing("a")
	updated.Price = 80
	s.ApplyUpdated(&model.ListingDetails{Listing: updated})

	cur := s.Current()
	if cur.Price != 80 {
		t.Errorf("price = %v, want 80", cur.Price)
	}
	if len(cur.RelatedListings) != 1 {
		t.Error("related listings must survive an update that omits them")
	}
}

func TestMarketStore_SaveAndUnsave(t *testing.T) {
	s := NewMarketStore(nil)
	s.ApplyBrowse(s.BeginBrowse(), model.ListingFilter{}, &model.ListingPage{Listings: []model.Listing{listing("a")}}, 1)

	s.ApplySaved("a")

	if browse := s.Browse(); !browse[0].IsSaved {
		t.Error("browse copy must be flagged saved")
	}
	if saved := s.SavedListings(); len(saved) != 1 || saved[0].ID != "a" {
		t.Errorf("saved = %v, want [a]", saved)
	}

	// Saving again must not duplicate the entry.
	s.ApplySaved("a")
	if saved := s.SavedListings(); len(saved) != 1 {
		t.Errorf("saved after second save = %d entries, want 1", len(saved))
	}

	s.ApplyUnsaved("a")
	if saved := s.SavedListings(); len(saved) != 0 {
		t.Errorf("saved after unsave = %v, want empty", saved)
	}
	if browse := s.Browse(); browse[0].IsSaved {
		t.Error("browse copy must be unflagged after unsave")
	}
}

func TestMarketStore_DeleteRemovesEverywhere(t *testing.T) {
	s := NewMarketStore(nil)
	s.ApplyBrowse(s.BeginBrowse(), model.ListingFilter{}, &model.ListingPage{Listings: []model.Listing{listing("a")}}, 1)
	s.SetMine(s.BeginMine(), []model.Listing{listing("a")})
	s.SetSaved(s.BeginSaved(), []model.Listing{listing("a")})
	s.SetCurrent(s.BeginCurrent(), &model.ListingDetails{Listing: listing("a")})

	s.ApplyDeleted("a")

	if len(s.Browse()) != 0 || len(s.MyListings()) != 0 || len(s.SavedListings()) != 0 {
		t.Error("deleted listing must vanish from every list")
	}
	if s.Current() != nil {
		t.Error("current must be cleared when the current listing is deleted")
	}
}

package model

import (
	"errors"
	"time"
)

// Listing categories accepted by the marketplace.
const (
	CategoryBikes       = "bikes"
	CategoryGear        = "gear"
	CategoryParts       = "parts"
	CategoryAccessories = "accessories"
)

// Listing is a marketplace listing as shown in lists.
type Listing struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	Category   string    `json:"category"`
	Condition  string    `json:"condition"` // "new", "like_new", "used"
	ImageURLs  []string  `json:"image_urls"`
	SellerID   string    `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	IsSold     bool      `json:"is_sold"`
	IsSaved    bool      `json:"is_saved"`
	ViewsCount int       `json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListingDetails is the full listing record for the detail view.
type ListingDetails struct {
	Listing
	Description     string    `json:"description"`
	SellerPhone     *string   `json:"seller_phone"`
	RelatedListings []Listing `json:"related_listings"`
}

// ListingFilter narrows a marketplace browse query. Zero values mean
// "no constraint"; it is serialized into query parameters by the API layer.
type ListingFilter struct {
	Query     string
	Category  string
	Condition string
	MinPrice  float64
	MaxPrice  float64
}

// ListingPage is one page of a listing list.
type ListingPage struct {
	Listings []Listing `json:"listings"`
	HasMore  bool      `json:"has_more"`
}

// CreateListingRequest is the payload for creating a listing.
type CreateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// UpdateListingRequest carries editable listing fields. Nil fields are unchanged.
type UpdateListingRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Condition   *string  `json:"condition,omitempty"`
}

// Listing errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingSold     = errors.New("listing already sold")
)

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// MarketClient implements MarketAPI over the shared HTTP transport.
type MarketClient struct {
	c *Client
}

func NewMarketClient(c *Client) *MarketClient {
	return &MarketClient{c: c}
}

func (mc *MarketClient) List(ctx context.Context, filter model.ListingFilter, page, limit int) (*model.ListingPage, error) {
	q := pageQuery(page, limit)
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Condition != "" {
		q.Set("condition", filter.Condition)
	}
	if filter.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', 2, 64))
	}
	if filter.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', 2, 64))
	}

	var out model.ListingPage
	if err := mc.c.do(ctx, http.MethodGet, "/market/listings", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MarketClient) Mine(ctx context.Context) ([]model.Listing, error) {
	var out struct {
		Listings []model.Listing `json:"listings"`
	}
	if err := mc.c.do(ctx, http.MethodGet, "/market/listings/mine", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

func (mc *MarketClient) Saved(ctx context.Context) ([]model.Listing, error) {
	var out struct {
		Listings []model.Listing `json:"listings"`
	}
	if err := mc.c.do(ctx, http.MethodGet, "/market/listings/saved", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

func (mc *MarketClient) Get(ctx context.Context, listingID string) (*model.ListingDetails, error) {
	var out struct {
		Listing model.ListingDetails `json:"listing"`
	}
	if err := mc.c.do(ctx, http.MethodGet, "/market/listings/"+listingID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Listing, nil
}

func (mc *MarketClient) Create(ctx context.Context, req *model.CreateListingRequest) (*model.ListingDetails, error) {
	var out struct {
		Listing model.ListingDetails `json:"listing"`
	}
	if err := mc.c.do(ctx, http.MethodPost, "/market/listings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Listing, nil
}

func (mc *MarketClient) Update(ctx context.Context, listingID string, req *model.UpdateListingRequest) (*model.ListingDetails, error) {
	var out struct {
		Listing model.ListingDetails `json:"listing"`
	}
	if err := mc.c.do(ctx, http.MethodPatch, "/market/listings/"+listingID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Listing, nil
}

func (mc *MarketClient) Delete(ctx context.Context, listingID string) error {
	return mc.c.do(ctx, http.MethodDelete, "/market/listings/"+listingID, nil, nil, nil)
}

func (mc *MarketClient) Save(ctx context.Context, listingID string) error {
	return mc.c.do(ctx, http.MethodPost, "/market/listings/"+listingID+"/save", nil, nil, nil)
}

func (mc *MarketClient) Unsave(ctx context.Context, listingID string) error {
	return mc.c.do(ctx, http.MethodDelete, "/market/listings/"+listingID+"/save", nil, nil, nil)
}

func (mc *MarketClient) MarkSold(ctx context.Context, listingID string) (*model.ListingDetails, error) {
	var out struct {
		Listing model.ListingDetails `json:"listing"`
	}
	if err := mc.c.do(ctx, http.MethodPost, "/market/listings/"+listingID+"/sold", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Listing, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// ClubsClient implements ClubsAPI over the shared HTTP transport.
type ClubsClient struct {
	c *Client
}

func NewClubsClient(c *Client) *ClubsClient {
	return &ClubsClient{c: c}
}

func (cc *ClubsClient) MyClubs(ctx context.Context) ([]model.Club, error) {
	var out struct {
		Clubs []model.Club `json:"clubs"`
	}
	if err := cc.c.do(ctx, http.MethodGet, "/clubs/mine", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Clubs, nil
}

func (cc *ClubsClient) Discover(ctx context.Context, page, limit int) (*model.ClubPage, error) {
	var out model.ClubPage
	if err := cc.c.do(ctx, http.MethodGet, "/clubs/discover", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *ClubsClient) Get(ctx context.Context, clubID string) (*model.ClubDetails, error) {
	var out struct {
		Club model.ClubDetails `json:"club"`
	}
	if err := cc.c.do(ctx, http.MethodGet, "/clubs/"+clubID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Club, nil
}

func (cc *ClubsClient) Create(ctx context.Context, req *model.CreateClubRequest) (*model.ClubDetails, error) {
	var out struct {
		Club model.ClubDetails `json:"club"`
	}
	if err := cc.c.do(ctx, http.MethodPost, "/clubs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Club, nil
}

func (cc *ClubsClient) Update(ctx context.Context, clubID string, req *model.UpdateClubRequest) (*model.ClubDetails, error) {
	var out struct {
		Club model.ClubDetails `json:"club"`
	}
	if err := cc.c.do(ctx, http.MethodPatch, "/clubs/"+clubID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Club, nil
}

func (cc *ClubsClient) Delete(ctx context.Context, clubID string) error {
	return cc.c.do(ctx, http.MethodDelete, "/clubs/"+clubID, nil, nil, nil)
}

func (cc *ClubsClient) RequestJoin(ctx context.Context, clubID string) error {
	return cc.c.do(ctx, http.MethodPost, "/clubs/"+clubID+"/join", nil, nil, nil)
}

func (cc *ClubsClient) Leave(ctx context.Context, clubID string) error {
	return cc.c.do(ctx, http.MethodPost, "/clubs/"+clubID+"/leave", nil, nil, nil)
}

func (cc *ClubsClient) Members(ctx context.Context, clubID string) ([]model.ClubMember, error) {
	var out struct {
		Members []model.ClubMember `json:"members"`
	}
	if err := cc.c.do(ctx, http.MethodGet, "/clubs/"+clubID+"/members", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

func (cc *ClubsClient) ApproveJoin(ctx context.Context, clubID, requestID string) (*model.ClubMember, error) {
	var out struct {
		Member model.ClubMember `json:"member"`
	}
	path := fmt.Sprintf("/clubs/%s/requests/%s/approve", clubID, requestID)
	if err := cc.c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

func (cc *ClubsClient) RejectJoin(ctx context.Context, clubID, requestID string) error {
	path := fmt.Sprintf("/clubs/%s/requests/%s/reject", clubID, requestID)
	return cc.c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

func (cc *ClubsClient) UpdateMemberRole(ctx context.Context, clubID, memberID string, role model.MemberRole) (*model.ClubMember, error) {
	var out struct {
		Member model.ClubMember `json:"member"`
	}
	body := map[string]model.MemberRole{"role": role}
	path := fmt.Sprintf("/clubs/%s/members/%s/role", clubID, memberID)
	if err := cc.c.do(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

func (cc *ClubsClient) RemoveMember(ctx context.Context, clubID, memberID string) error {
	path := fmt.Sprintf("/clubs/%s/members/%s", clubID, memberID)
	return cc.c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

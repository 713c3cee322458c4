package api

import (
	"context"
	"net/http"

	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// FeedClient implements FeedAPI over the shared HTTP transport.
type FeedClient struct {
	c *Client
}

func NewFeedClient(c *Client) *FeedClient {
	return &FeedClient{c: c}
}

func (fc *FeedClient) Feed(ctx context.Context, page, limit int) (*model.FeedPage, error) {
	var out model.FeedPage
	if err := fc.c.do(ctx, http.MethodGet, "/feed", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (fc *FeedClient) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	var out struct {
		Post model.Post `json:"post"`
	}
	if err := fc.c.do(ctx, http.MethodPost, "/feed/posts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (fc *FeedClient) DeletePost(ctx context.Context, postID string) error {
	return fc.c.do(ctx, http.MethodDelete, "/feed/posts/"+postID, nil, nil, nil)
}

func (fc *FeedClient) Like(ctx context.Context, postID string) error {
	return fc.c.do(ctx, http.MethodPost, "/feed/posts/"+postID+"/like", nil, nil, nil)
}

func (fc *FeedClient) Unlike(ctx context.Context, postID string) error {
	return fc.c.do(ctx, http.MethodDelete, "/feed/posts/"+postID+"/like", nil, nil, nil)
}

func (fc *FeedClient) SavePost(ctx context.Context, postID string) error {
	return fc.c.do(ctx, http.MethodPost, "/feed/posts/"+postID+"/save", nil, nil, nil)
}

func (fc *FeedClient) UnsavePost(ctx context.Context, postID string) error {
	return fc.c.do(ctx, http.MethodDelete, "/feed/posts/"+postID+"/save", nil, nil, nil)
}

func (fc *FeedClient) Comments(ctx context.Context, postID string, page, limit int) (*model.CommentPage, error) {
	var out model.CommentPage
	if err := fc.c.do(ctx, http.MethodGet, "/feed/posts/"+postID+"/comments", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (fc *FeedClient) AddComment(ctx context.Context, postID, content string) (*model.Comment, error) {
	var out struct {
		Comment model.Comment `json:"comment"`
	}
	body := map[string]string{"content": content}
	if err := fc.c.do(ctx, http.MethodPost, "/feed/posts/"+postID+"/comments", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Comment, nil
}

func (fc *FeedClient) DeleteComment(ctx context.Context, postID, commentID string) error {
	return fc.c.do(ctx, http.MethodDelete, "/feed/posts/"+postID+"/comments/"+commentID, nil, nil, nil)
}

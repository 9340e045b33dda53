package mock

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.PostService = (*PostService)(nil)

// PostService is a mock implementation of blogcrawl.PostService.
type PostService struct {
	CreatePostFn        func(ctx context.Context, post *blogcrawl.Post) error
	FindPostByIDFn      func(ctx context.Context, id string) (*blogcrawl.Post, error)
	FindPostsFn         func(ctx context.Context, filter blogcrawl.PostFilter) ([]*blogcrawl.Post, error)
	DeletePostFn        func(ctx context.Context, id string) error
	DeletePostsBySiteFn func(ctx context.Context, siteID string) error
}

func (s *PostService) CreatePost(ctx context.Context, post *blogcrawl.Post) error {
	return s.CreatePostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogcrawl.Post, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPosts(ctx context.Context, filter blogcrawl.PostFilter) ([]*blogcrawl.Post, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.DeletePostFn(ctx, id)
}

func (s *PostService) DeletePostsBySite(ctx context.Context, siteID string) error {
	return s.DeletePostsBySiteFn(ctx, siteID)
}

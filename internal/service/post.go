package service

import (
	"context"
	"fmt"

	"github.com/msomdec/blogly/internal/domain"
)

// PostService handles post CRUD and validation.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create validates and stores a new post under the given user. A missing
// owner surfaces as ErrNotFound before anything is written; the foreign key
// constraint remains as the integrity backstop underneath.
func (s *PostService) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	post := &domain.Post{Title: title, Content: content, UserID: userID}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Get returns a post by ID.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Update rewrites title and content; created_at and user_id never change.
func (s *PostService) Update(ctx context.Context, id int64, title, content string) (*domain.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes the post and returns the owning user's ID, which callers
// need for the post-deletion redirect target.
func (s *PostService) Delete(ctx context.Context, id int64) (int64, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return 0, err
	}
	return post.UserID, nil
}

// Recent returns up to limit posts ordered newest first, skipping offset
// rows for paging.
func (s *PostService) Recent(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.posts.Recent(ctx, limit, offset)
}

// ListByUser returns the user's posts, newest first.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

// CountAll returns the total number of posts.
func (s *PostService) CountAll(ctx context.Context) (int, error) {
	return s.posts.CountAll(ctx)
}

func validatePost(title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	return nil
}

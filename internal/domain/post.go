package domain

import (
	"context"
	"time"
)

// friendlyDateLayout renders timestamps like "Jan 05 2024 03:04:05 PM".
const friendlyDateLayout = "Jan 02 2006 03:04:05 PM"

// Post is a single blog entry owned by exactly one user.
type Post struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time // stored in UTC, assigned by the repository on insert
	UserID    int64
}

// LocalCreatedAt converts the stored UTC timestamp to the server's local
// timezone. The result depends on the deployment environment, not on the
// stored data.
func (p *Post) LocalCreatedAt() time.Time {
	return p.CreatedAt.Local()
}

// FriendlyDate formats the creation time in the server's local timezone
// for display.
func (p *Post) FriendlyDate() string {
	return p.LocalCreatedAt().Format(friendlyDateLayout)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListByUser(ctx context.Context, userID int64) ([]Post, error)
	Recent(ctx context.Context, limit, offset int) ([]Post, error)
	CountAll(ctx context.Context) (int, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}

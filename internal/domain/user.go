package domain

import "context"

// DefaultImageURL is the profile image applied when a user is created
// without one. Updates never apply it; an empty value on update is stored
// as-is.
const DefaultImageURL = "https://static.vecteezy.com/system/resources/thumbnails/002/318/271/small/user-profile-icon-free-vector.jpg"

// User represents an author of posts.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	ImageURL  string
}

// FullName joins first and last name with a single space. A user with no
// last name renders as the first name alone, with no trailing space.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

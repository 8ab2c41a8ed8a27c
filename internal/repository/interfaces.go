package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/inkwell/internal/domain"
)

type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// username collides with an existing row.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// UpdateProfile mutates only the supplied fields and returns the
	// updated row, or nil when no row with that id exists.
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email *string) (*domain.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	// UpdateOwned mutates the post only if it is owned by ownerID; the
	// ownership check and the update are a single statement. Returns nil
	// when the post is absent or owned by someone else.
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, title, content *string) (*domain.Post, error)
	// DeleteOwned deletes the post only if it is owned by ownerID and
	// reports whether a row was deleted.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

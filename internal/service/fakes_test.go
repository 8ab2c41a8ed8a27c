package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/inkwell/internal/domain"
	"github.com/vedran77/inkwell/internal/errs"
	"github.com/vedran77/inkwell/internal/repository"
)

// In-memory fakes mirroring the store's atomic per-record semantics.

type fakeUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*domain.User
	fail error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*domain.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return errs.ErrAlreadyExists
		}
	}
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	for _, u := range f.byID {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	var users []domain.User
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id uuid.UUID, username, email *string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if username != nil {
		for oid, other := range f.byID {
			if oid != id && other.Username == *username {
				return nil, errs.ErrAlreadyExists
			}
		}
		u.Username = *username
	}
	if email != nil {
		u.Email = email
	}
	cpy := *u
	return &cpy, nil
}

type fakePosts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*domain.Post
	fail error
}

var _ repository.PostRepository = (*fakePosts)(nil)

func newFakePosts() *fakePosts {
	return &fakePosts{byID: map[uuid.UUID]*domain.Post{}}
}

func (f *fakePosts) Create(_ context.Context, p *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	cpy := *p
	f.byID[p.ID] = &cpy
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cpy := *p
	return &cpy, nil
}

func (f *fakePosts) List(_ context.Context) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	var posts []domain.Post
	for _, p := range f.byID {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (f *fakePosts) UpdateOwned(_ context.Context, id, ownerID uuid.UUID, title, content *string) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	p, ok := f.byID[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	cpy := *p
	return &cpy, nil
}

func (f *fakePosts) DeleteOwned(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return false, f.fail
	}
	p, ok := f.byID[id]
	if !ok || p.OwnerID != ownerID {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinicdesk/internal/domain"
)

var errUserNotFound = errors.New("user not found")
var errSessionNotFound = errors.New("session not found")

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewMemoryUserRepository() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) Create(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	return nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", errUserNotFound, id)
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: email %s", errUserNotFound, email)
}

func (r *MemoryUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Phone == phone {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: phone %s", errUserNotFound, phone)
}

func (r *MemoryUserRepo) Update(ctx context.Context, id string, dto domain.UpdateUserDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if dto.FirstName != nil {
			r.users[i].FirstName = *dto.FirstName
		}
		if dto.LastName != nil {
			r.users[i].LastName = *dto.LastName
		}
		if dto.Email != nil {
			r.users[i].Email = *dto.Email
		}
		if dto.Phone != nil {
			r.users[i].Phone = *dto.Phone
		}
		if dto.IsActive != nil {
			r.users[i].IsActive = *dto.IsActive
		}
		r.users[i].UpdatedAt = time.Now()
		return nil
	}
	return fmt.Errorf("%w: id %s", errUserNotFound, id)
}

func (r *MemoryUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].PasswordHash = passwordHash
			r.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", errUserNotFound, id)
}

func (r *MemoryUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", errUserNotFound, id)
}

func (r *MemoryUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.users) {
		return []domain.User{}, nil
	}

	end := len(r.users)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]domain.User, end-offset)
	copy(out, r.users[offset:end])
	return out, nil
}

type MemoryAuthRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemoryAuthRepository() *MemoryAuthRepo {
	return &MemoryAuthRepo{sessions: make(map[string]domain.Session)}
}

func (r *MemoryAuthRepo) CreateSession(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	return nil
}

func (r *MemoryAuthRepo) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.RefreshToken == refreshToken {
			session := s
			return &session, nil
		}
	}
	return nil, errSessionNotFound
}

func (r *MemoryAuthRepo) DeleteSession(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *MemoryAuthRepo) DeleteSessionsByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"webepex/models"
)

// MemoryStore keeps users in process memory. It is volatile: every record
// is lost when the process exits. It exists as the zero-setup default and
// as the implementation handler tests run against.
type MemoryStore struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]string // normalized email -> id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new user. The duplicate check and the insert happen under
// one lock, so concurrent signups for the same address serialize and exactly
// one wins. Password hashing is the caller's job; nothing CPU-bound runs here.
func (s *MemoryStore) Create(ctx context.Context, email, fullName, passwordHash string) (*models.User, error) {
	normalized := NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[normalized]; exists {
		return nil, ErrDuplicateEmail
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        normalized,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsPremium:    false,
		IsVip:        false,
		CreatedAt:    time.Now().UTC(),
	}

	s.byID[user.ID] = user
	s.byEmail[normalized] = user.ID

	u := *user
	return &u, nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	u := *s.byID[id]
	return &u, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	u := *user
	return &u, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if update.IsVip != nil {
		user.IsVip = *update.IsVip
	}
	if update.IsPremium != nil {
		user.IsPremium = *update.IsPremium
	}

	u := *user
	return &u, nil
}

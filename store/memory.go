package store

import (
	"context"
	"sync"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

// MemoryStore is an in-process CredentialStore used by tests and local
// development without MySQL. A single mutex stands in for the database's
// unique indexes and conditional updates, which keeps the same conflict
// and single-use semantics under concurrent calls.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*models.User               // keyed by email
	tokens map[string]*models.PasswordResetToken // keyed by token hash
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.PasswordResetToken),
	}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	if u.CPF != nil {
		cpf := *u.CPF
		cp.CPF = &cpf
	}
	return &cp
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryStore) FindUserByCPF(_ context.Context, cpf string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.CPF != nil && *user.CPF == cpf {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrConflict
	}
	if user.CPF != nil {
		for _, existing := range s.users {
			if existing.CPF != nil && *existing.CPF == *user.CPF {
				return ErrConflict
			}
		}
	}

	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.Email] = copyUser(user)
	return nil
}

func (s *MemoryStore) UpdateUserPassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) CreateResetToken(_ context.Context, token *models.PasswordResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tokens[token.TokenHash]; exists {
		return ErrConflict
	}
	token.ID = s.nextID
	s.nextID++
	cp := *token
	s.tokens[token.TokenHash] = &cp
	return nil
}

func (s *MemoryStore) FindResetToken(_ context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenHash]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *token
	return &cp, nil
}

func (s *MemoryStore) ConsumeResetToken(_ context.Context, tokenHash string, now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenHash]
	if !ok {
		return ErrNotFound
	}
	if token.Used {
		return models.ErrPasswordResetTokenUsed
	}
	if token.IsExpired(now) {
		return models.ErrPasswordResetTokenExpired
	}

	usedAt := now
	token.Used = true
	token.UsedAt = &usedAt
	return nil
}

// WithTx runs fn against the same store. The mutex-per-operation model has
// no rollback, which is close enough for the flows exercised in tests: the
// consume step runs first, so a later failure still leaves the token burned.
func (s *MemoryStore) WithTx(_ context.Context, fn func(CredentialStore) error) error {
	return fn(s)
}

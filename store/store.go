package store

import (
	"context"
	"errors"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: already exists")
)

// CredentialStore is the persistence contract the auth service depends on.
// Uniqueness on email and CPF is enforced by the backing store's unique
// indexes; a duplicate-insert race surfaces as ErrConflict, never as a
// silent overwrite. The service holds no locks of its own, so single-use
// of reset tokens rides on ConsumeResetToken's conditional update.
type CredentialStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByCPF(ctx context.Context, cpf string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserPassword(ctx context.Context, email, passwordHash string) error

	CreateResetToken(ctx context.Context, token *models.PasswordResetToken) error
	FindResetToken(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)

	// ConsumeResetToken flips the used flag with a conditional update that
	// only matches an unused, unexpired token. When nothing matched it
	// re-reads the row and reports ErrNotFound,
	// models.ErrPasswordResetTokenUsed or models.ErrPasswordResetTokenExpired.
	ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) error

	// WithTx runs fn against a transaction-scoped store. Rolls back when fn
	// returns an error, commits otherwise.
	WithTx(ctx context.Context, fn func(CredentialStore) error) error
}

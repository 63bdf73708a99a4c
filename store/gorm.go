package store

import (
	"context"
	"errors"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"

	"gorm.io/gorm"
)

// GormStore is the MySQL-backed CredentialStore. The gorm connection must
// be opened with TranslateError so duplicate-key violations arrive as
// gorm.ErrDuplicatedKey and can be re-mapped here instead of leaking
// vendor error numbers into the service layer.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByCPF(ctx context.Context, cpf string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("cpf = ?", cpf).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) UpdateUserPassword(ctx context.Context, email, passwordHash string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateResetToken(ctx context.Context, token *models.PasswordResetToken) error {
	return translate(s.db.WithContext(ctx).Create(token).Error)
}

func (s *GormStore) FindResetToken(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := s.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (s *GormStore) ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}

	usedAt := now
	res := s.db.WithContext(ctx).Model(&models.PasswordResetToken{}).
		Where("token_hash = ? AND used = ? AND expires_at >= ?", tokenHash, false, now).
		Updates(map[string]any{
			"used":    true,
			"used_at": &usedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: report why. A concurrent consumer winning the race
	// shows up here as an already-used token.
	latest, err := s.FindResetToken(ctx, tokenHash)
	if err != nil {
		return err
	}
	if latest.Used {
		return models.ErrPasswordResetTokenUsed
	}
	if latest.IsExpired(now) {
		return models.ErrPasswordResetTokenExpired
	}
	return models.ErrPasswordResetTokenUsed
}

func (s *GormStore) WithTx(ctx context.Context, fn func(CredentialStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/store"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []string // reset links, in dispatch order
	fail bool
}

func (m *fakeMailer) SendPasswordResetEmail(_, resetLink string) error {
	m.sent = append(m.sent, resetLink)
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func newTestService(t *testing.T) (*AuthService, *store.MemoryStore, *fakeMailer) {
	t.Helper()

	issuer := utils.NewTokenIssuer(config.JWTConfig{
		SecretKey:     []byte("test-secret"),
		Issuer:        "moneynow",
		SessionTTL:    7 * 24 * time.Hour,
		RememberMeTTL: 30 * 24 * time.Hour,
	})
	st := store.NewMemoryStore()
	mailer := &fakeMailer{}
	svc := NewAuthService(st, issuer, mailer, nil, "https://app.moneynow.test/auth/reset-password")
	return svc, st, mailer
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	idx := strings.Index(link, "token=")
	require.GreaterOrEqual(t, idx, 0, "reset link must embed the token")
	return link[idx+len("token="):]
}

func registerAna(t *testing.T, svc *AuthService) *AuthResult {
	t.Helper()
	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "Abcdef12",
	})
	require.NoError(t, err)
	return result
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "Abcdef12"}, "name is required"},
		{"missing email", RegisterInput{Name: "Ana", Password: "Abcdef12"}, "email is required"},
		{"bad email format", RegisterInput{Name: "Ana", Email: "not-an-email", Password: "Abcdef12"}, "invalid email format"},
		{"missing password", RegisterInput{Name: "Ana", Email: "a@x.com"}, "password is required"},
		{"short password", RegisterInput{Name: "Ana", Email: "a@x.com", Password: "Ab1"}, "password must be at least 8 characters"},
		{"weak password", RegisterInput{Name: "Ana", Email: "a@x.com", Password: "abcdefg1"}, "password must contain at least one uppercase letter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.message, ve.Message)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	_, err := svc.Register(ctx, RegisterInput{Name: "Other", Email: "ana@x.com", Password: "Abcdef12"})
	require.ErrorIs(t, err, ErrEmailTaken)

	// Still exactly one row behind the unique index.
	user, err := st.FindUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, "Ana", user.Name)
}

func TestRegisterDuplicateCPF(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "Abcdef12", CPF: "123.456.789-00"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Bia", Email: "bia@x.com", Password: "Abcdef12", CPF: "123.456.789-00"})
	require.ErrorIs(t, err, ErrCPFTaken)
}

func TestRegisterStripsPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	result := registerAna(t, svc)
	require.NotEmpty(t, result.Token)
	require.Empty(t, result.User.PasswordHash)
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	result, err := svc.Login(ctx, "ana@x.com", "Abcdef12", false)
	require.NoError(t, err)
	require.Empty(t, result.User.PasswordHash)

	claims, err := svc.issuer.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, "ana@x.com", claims.Email)
	require.Equal(t, result.User.ID, claims.UserID)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	wrongPassword := func() error {
		_, err := svc.Login(ctx, "ana@x.com", "WrongPass1", false)
		return err
	}()
	unknownEmail := func() error {
		_, err := svc.Login(ctx, "nobody@x.com", "Abcdef12", false)
		return err
	}()

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginRememberMeExtendsExpiry(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	short, err := svc.Login(ctx, "ana@x.com", "Abcdef12", false)
	require.NoError(t, err)
	long, err := svc.Login(ctx, "ana@x.com", "Abcdef12", true)
	require.NoError(t, err)

	shortClaims, err := svc.issuer.Verify(short.Token)
	require.NoError(t, err)
	longClaims, err := svc.issuer.Verify(long.Token)
	require.NoError(t, err)
	require.True(t, longClaims.ExpiresAt.After(shortClaims.ExpiresAt.Time))
}

func TestMe(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result := registerAna(t, svc)

	user, err := svc.Me(ctx, result.User.ID)
	require.NoError(t, err)
	require.Equal(t, "ana@x.com", user.Email)
	require.Empty(t, user.PasswordHash)

	_, err = svc.Me(ctx, result.User.ID+999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, mailer := newTestService(t)

	err := svc.ForgotPassword(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.Empty(t, mailer.sent, "no email must be dispatched for unknown addresses")
}

func TestForgotPasswordIssuesSingleUseToken(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	require.NoError(t, svc.ForgotPassword(ctx, "ana@x.com"))
	require.Len(t, mailer.sent, 1)

	raw := tokenFromLink(t, mailer.sent[0])
	require.NoError(t, svc.ValidateResetToken(ctx, raw))

	require.NoError(t, svc.ResetPassword(ctx, raw, "NewPass99"))

	// Old password no longer works, new one does.
	_, err := svc.Login(ctx, "ana@x.com", "Abcdef12", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ana@x.com", "NewPass99", false)
	require.NoError(t, err)

	// Second reset with the same token must fail and change nothing.
	require.ErrorIs(t, svc.ResetPassword(ctx, raw, "OtherPass1"), ErrResetTokenUsed)
	_, err = svc.Login(ctx, "ana@x.com", "NewPass99", false)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "ana@x.com", "OtherPass1", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.ErrorIs(t, svc.ValidateResetToken(ctx, raw), ErrResetTokenUsed)
}

func TestForgotPasswordSurvivesMailFailure(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)
	mailer.fail = true

	// Delivery failure is logged, not returned, and the token stays valid.
	require.NoError(t, svc.ForgotPassword(ctx, "ana@x.com"))
	require.Len(t, mailer.sent, 1)

	raw := tokenFromLink(t, mailer.sent[0])
	require.NoError(t, svc.ValidateResetToken(ctx, raw))
}

func TestResetTokenExpiresAfterOneHour(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	require.NoError(t, svc.ForgotPassword(ctx, "ana@x.com"))
	raw := tokenFromLink(t, mailer.sent[0])

	svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	require.NoError(t, svc.ValidateResetToken(ctx, raw))

	svc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	require.ErrorIs(t, svc.ValidateResetToken(ctx, raw), ErrResetTokenExpired)
	require.ErrorIs(t, svc.ResetPassword(ctx, raw, "NewPass99"), ErrResetTokenExpired)

	// The password is untouched.
	_, err := svc.Login(ctx, "ana@x.com", "Abcdef12", false)
	require.NoError(t, err)
}

func TestResetPasswordRejectsWeakPassword(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	registerAna(t, svc)
	require.NoError(t, svc.ForgotPassword(ctx, "ana@x.com"))
	raw := tokenFromLink(t, mailer.sent[0])

	var ve *ValidationError
	require.ErrorAs(t, svc.ResetPassword(ctx, raw, "short"), &ve)
	require.ErrorAs(t, svc.ResetPassword(ctx, raw, "alllowercase1"), &ve)

	// Failed attempts must not burn the token.
	require.NoError(t, svc.ResetPassword(ctx, raw, "NewPass99"))
}

func TestValidateResetTokenUnknown(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.ErrorIs(t, svc.ValidateResetToken(context.Background(), "never-issued"), ErrResetTokenInvalid)
}

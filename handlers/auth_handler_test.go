package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/handlers"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/routes"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/services"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/store"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	links []string
}

func (m *stubMailer) SendPasswordResetEmail(_, resetLink string) error {
	m.links = append(m.links, resetLink)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *stubMailer) {
	t.Helper()

	issuer := utils.NewTokenIssuer(config.JWTConfig{
		SecretKey:     []byte("test-secret"),
		Issuer:        "moneynow",
		SessionTTL:    7 * 24 * time.Hour,
		RememberMeTTL: 30 * 24 * time.Hour,
	})
	mailer := &stubMailer{}
	svc := services.NewAuthService(store.NewMemoryStore(), issuer, mailer, nil, "/auth/reset-password")

	app := fiber.New()
	routes.Register(app, routes.Deps{
		Auth:   handlers.NewAuthHandler(svc, nil),
		Issuer: issuer,
	})
	return app, mailer
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerAna(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp := postForm(t, app, "/api/auth/register", url.Values{
		"name":     {"Ana"},
		"email":    {"ana@x.com"},
		"password": {"Abcdef12"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

func TestRegisterLoginMeScenario(t *testing.T) {
	app, _ := newTestApp(t)

	registered := registerAna(t, app)
	require.NotEmpty(t, registered["token"])

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "ana@x.com",
		"password": "Abcdef12",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	login := decodeBody(t, resp)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, meResp.StatusCode)

	me := decodeBody(t, meResp)
	user, ok := me["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ana@x.com", user["email"])
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "password_hash")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app, _ := newTestApp(t)

	registerAna(t, app)

	resp := postForm(t, app, "/api/auth/register", url.Values{
		"name":     {"Other"},
		"email":    {"ana@x.com"},
		"password": {"Abcdef12"},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, "email already registered", body["message"])
}

func TestRegisterWeakPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postForm(t, app, "/api/auth/register", url.Values{
		"name":     {"Ana"},
		"email":    {"ana@x.com"},
		"password": {"abcdefgh"},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginAntiEnumeration(t *testing.T) {
	app, _ := newTestApp(t)

	registerAna(t, app)

	wrongPassword := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "ana@x.com",
		"password": "WrongPass1",
	})
	unknownEmail := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "nobody@x.com",
		"password": "Abcdef12",
	})

	require.Equal(t, fiber.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, fiber.StatusUnauthorized, unknownEmail.StatusCode)

	firstBody, err := io.ReadAll(wrongPassword.Body)
	require.NoError(t, err)
	secondBody, err := io.ReadAll(unknownEmail.Body)
	require.NoError(t, err)
	require.Equal(t, firstBody, secondBody)
}

func TestForgotPasswordResponsesAreIndistinguishable(t *testing.T) {
	app, mailer := newTestApp(t)

	registerAna(t, app)

	known := postJSON(t, app, "/api/auth/forgot-password", fiber.Map{"email": "ana@x.com"})
	unknown := postJSON(t, app, "/api/auth/forgot-password", fiber.Map{"email": "nobody@x.com"})

	require.Equal(t, fiber.StatusOK, known.StatusCode)
	require.Equal(t, fiber.StatusOK, unknown.StatusCode)

	knownBody, err := io.ReadAll(known.Body)
	require.NoError(t, err)
	unknownBody, err := io.ReadAll(unknown.Body)
	require.NoError(t, err)
	require.Equal(t, knownBody, unknownBody)

	// Only the registered address actually got a link.
	require.Len(t, mailer.links, 1)
}

func TestResetPasswordFlowOverHTTP(t *testing.T) {
	app, mailer := newTestApp(t)

	registerAna(t, app)

	resp := postJSON(t, app, "/api/auth/forgot-password", fiber.Map{"email": "ana@x.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, mailer.links, 1)

	link := mailer.links[0]
	token := link[strings.Index(link, "token=")+len("token="):]

	validate := postJSON(t, app, "/api/auth/validate-reset-token", fiber.Map{"token": token})
	require.Equal(t, fiber.StatusOK, validate.StatusCode)

	reset := postJSON(t, app, "/api/auth/reset-password", fiber.Map{"token": token, "password": "NewPass99"})
	require.Equal(t, fiber.StatusOK, reset.StatusCode)

	again := postJSON(t, app, "/api/auth/reset-password", fiber.Map{"token": token, "password": "OtherPass1"})
	require.Equal(t, fiber.StatusBadRequest, again.StatusCode)
	require.Equal(t, "reset token already used", decodeBody(t, again)["message"])

	login := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "ana@x.com", "password": "NewPass99"})
	require.Equal(t, fiber.StatusOK, login.StatusCode)
}

func TestMeWithoutTokenIsUnauthorized(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	"authgate/internal/delivery/http/validator"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler *AuthHandler
	uc      *mockUsecase.MockAuthUsecase
	cfg     *config.Config
	echo    *echo.Echo
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.DSN = "postgres://localhost/authgate"
	require.NoError(t, cfg.ApplyDefaults())

	uc := mockUsecase.NewMockAuthUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixture{
		handler: NewAuthHandler(AuthHandlerParams{
			AuthUC: uc,
			Config: cfg,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		uc:   uc,
		cfg:  cfg,
		echo: e,
	}
}

func (f *handlerFixture) context(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register(t *testing.T) {
	f := newHandlerFixture(t)

	account := &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	f.uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"}).
		Return(&usecase.RegisterOutput{Account: account, PendingToken: "pending"}, nil)

	c, rec := f.context(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)

	require.NoError(t, f.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, map[string]any{"username": "alice", "email": "alice@example.com"}, body.Data)
	assert.NotContains(t, rec.Body.String(), "pending")
	assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func TestAuthHandler_RegisterRejectsInvalidInputBeforeUsecase(t *testing.T) {
	f := newHandlerFixture(t)

	c, _ := f.context(http.MethodPost, "/api/auth/register",
		`{"username":"al","email":"not-an-email","password":"12345"}`)

	err := f.handler.Register(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_RegisterRejectsMalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.context(http.MethodPost, "/api/auth/register", `{"username":`)

	require.NoError(t, f.handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec).Error.Code)
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			Token:     "session-token",
			ExpiresIn: 7 * 24 * time.Hour,
			Profile:   entity.Profile{Username: "alice", Email: "alice@example.com"},
		}, nil)

	c, rec := f.context(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret1"}`)

	require.NoError(t, f.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.Equal(t, "session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, map[string]any{"user": map[string]any{"username": "alice", "email": "alice@example.com"}}, body.Data)
	assert.NotContains(t, rec.Body.String(), "session-token")
}

func TestAuthHandler_LoginPropagatesUsecaseError(t *testing.T) {
	f := newHandlerFixture(t)

	f.uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := f.context(http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"x"}`)

	err := f.handler.Login(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_VerifyAndResend(t *testing.T) {
	f := newHandlerFixture(t)

	f.uc.EXPECT().
		VerifyOTP(mock.Anything, &usecase.VerifyOTPInput{Email: "alice@example.com", OTP: "123456"}).
		Return(nil)
	f.uc.EXPECT().
		ResendOTP(mock.Anything, &usecase.ResendOTPInput{Email: "alice@example.com"}).
		Return(nil)

	c, rec := f.context(http.MethodPost, "/api/auth/verify-otp", `{"email":"alice@example.com","otp":"123456"}`)
	require.NoError(t, f.handler.VerifyOTP(c))
	assert.Equal(t, "Otp verified successfully", decodeBody(t, rec).Message)

	c, rec = f.context(http.MethodPost, "/api/auth/resend-otp", `{"email":"alice@example.com"}`)
	require.NoError(t, f.handler.ResendOTP(c))
	assert.Equal(t, "Otp sent successfully", decodeBody(t, rec).Message)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	f := newHandlerFixture(t)

	c, rec := f.context(http.MethodPost, "/api/auth/logout", "")

	require.NoError(t, f.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged out Successfully", decodeBody(t, rec).Message)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAuthHandler_ProfileAndDashboard(t *testing.T) {
	f := newHandlerFixture(t)
	account := &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com", IsVerified: true}

	c, rec := f.context(http.MethodGet, "/api/auth/profile", "")
	deliverycontext.SetAccount(c, account)
	require.NoError(t, f.handler.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice","email":"alice@example.com"}`, rec.Body.String())

	c, rec = f.context(http.MethodGet, "/api/auth/dashboard", "")
	deliverycontext.SetAccount(c, account)
	require.NoError(t, f.handler.Dashboard(c))
	assert.Equal(t, "Welcome to dashboard, alice", decodeBody(t, rec).Message)

	c, _ = f.context(http.MethodGet, "/api/auth/profile", "")
	err := f.handler.Profile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

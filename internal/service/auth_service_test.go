package service

import (
	"net/http"
	"testing"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestAuthService_LoginIssuesSessionToken(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("POST /auth/login", http.StatusOK, model.AuthToken{
		Token: "api-token-1",
		User:  model.Usuario{ID: 42, Username: "agente", Email: "agente@exploraneiva.com"},
	})

	resp, err := NewAuthService(api.gateway(), testSecret, 8).Login(ctx, dto.LoginRequest{
		Email: " agente@exploraneiva.com ", Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, int64(42), resp.User.ID)
	assert.Equal(t, "agente@exploraneiva.com", api.lastCall().Body["email"])

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "api-token-1", claims["api_token"])
}

func TestAuthService_LoginRejected(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("POST /auth/login", http.StatusUnauthorized, map[string]string{"message": "Credenciales inválidas"})

	resp, err := NewAuthService(api.gateway(), testSecret, 8).Login(ctx, dto.LoginRequest{Email: "x@y.com", Password: "secreto1"})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", err.Error())
}

func TestAuthService_LoginWithoutSecret(t *testing.T) {
	api := newFakeAPI(t)

	_, err := NewAuthService(api.gateway(), "", 8).Login(ctx, dto.LoginRequest{Email: "x@y.com", Password: "secreto1"})

	assert.Error(t, err)
	api.mu.Lock()
	assert.Empty(t, api.calls)
	api.mu.Unlock()
}

func TestAuthService_RegisterOmitsConfirmation(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("POST /auth/register", http.StatusCreated, nil)

	err := NewAuthService(api.gateway(), testSecret, 8).Register(ctx, dto.SignupRequest{
		DocumentType: "CC", DocumentNumber: "123456", FullName: "Ana Rojas", BirthDate: "1990-01-01",
		Email: "ana@example.com", Phone: "3001234567", Password: "Secreto1!", ConfirmPassword: "Secreto1!",
	})

	require.NoError(t, err)
	body := api.lastCall().Body
	assert.Equal(t, "Secreto1!", body["password"])
	assert.NotContains(t, body, "confirmPassword")
}

func TestAuthService_VerifyAndForgot(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("POST /auth/verify-email", http.StatusOK, nil)
	api.reply("POST /auth/forgot-password", http.StatusOK, nil)
	svc := NewAuthService(api.gateway(), testSecret, 8)

	require.NoError(t, svc.VerifyEmail(ctx, dto.VerifyEmailRequest{Email: "ana@example.com", Code: " 123456 "}))
	assert.Equal(t, "123456", api.lastCall().Body["code"])

	require.NoError(t, svc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "ana@example.com"}))
	assert.Equal(t, "/auth/forgot-password", api.lastCall().Path)
}

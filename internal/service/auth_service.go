package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// AuthService forwards the account screens to /auth/* and issues the
// back-office session token after a successful login.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.SignupRequest) error
	VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
}

type authService struct {
	api        API
	jwtSecret  []byte
	expiration time.Duration
	now        func() time.Time
}

func NewAuthService(api API, jwtSecret string, expirationHours int) AuthService {
	return &authService{
		api:        api,
		jwtSecret:  []byte(jwtSecret),
		expiration: time.Duration(expirationHours) * time.Hour,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if len(s.jwtSecret) == 0 {
		return nil, errors.New("JWT_SECRET no configurado")
	}

	body := map[string]string{"email": strings.TrimSpace(req.Email), "password": req.Password}
	var auth model.AuthToken
	if err := s.api.Post(ctx, "/auth/login", body, &auth); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("auth: login rejected")
		return nil, err
	}
	if auth.User.ID == 0 {
		return nil, errors.New("respuesta de autenticación incompleta")
	}
	if auth.User.Email == "" {
		auth.User.Email = body["email"]
	}

	token, err := s.generateToken(auth)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.expiration.Seconds()),
		User: dto.UsuarioResponse{
			ID:       auth.User.ID,
			Username: auth.User.Username,
			Email:    auth.User.Email,
			FullName: auth.User.FullName,
		},
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.SignupRequest) error {
	reg := model.Registration{
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		FullName:       req.FullName,
		BirthDate:      req.BirthDate,
		Email:          strings.TrimSpace(req.Email),
		Phone:          req.Phone,
		Password:       req.Password,
	}
	if err := s.api.Post(ctx, "/auth/register", reg, nil); err != nil {
		log.Error().Err(err).Str("email", reg.Email).Msg("auth: register failed")
		return err
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error {
	body := map[string]string{"email": strings.TrimSpace(req.Email), "code": strings.TrimSpace(req.Code)}
	if err := s.api.Post(ctx, "/auth/verify-email", body, nil); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("auth: verify-email failed")
		return err
	}
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	body := map[string]string{"email": strings.TrimSpace(req.Email)}
	if err := s.api.Post(ctx, "/auth/forgot-password", body, nil); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("auth: forgot-password failed")
		return err
	}
	return nil
}

// generateToken signs the back-office session. The API token travels inside
// so later calls can be forwarded on the user's behalf.
func (s *authService) generateToken(auth model.AuthToken) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":   auth.User.ID,
		"username":  auth.User.Username,
		"email":     auth.User.Email,
		"api_token": auth.Token,
		"iat":       now.Unix(),
		"exp":       now.Add(s.expiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

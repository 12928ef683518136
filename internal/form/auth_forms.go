package form

import (
	"context"
	"strings"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/service"

	"github.com/rs/zerolog/log"
)

// EmailMemory persists the "remember me" e-mail between logins.
type EmailMemory interface {
	RememberedEmail(ctx context.Context) (string, error)
	SetRememberedEmail(ctx context.Context, email string) error
	ClearRememberedEmail(ctx context.Context) error
}

// LoginForm signs the user in. Load pre-fills the remembered e-mail.
type LoginForm struct {
	controller[dto.LoginRequest]

	auth      service.AuthService
	memory    EmailMemory
	validator *Validator
	result    *dto.LoginResponse
}

func NewLoginForm(auth service.AuthService, memory EmailMemory, v *Validator) *LoginForm {
	return &LoginForm{auth: auth, memory: memory, validator: v}
}

// Load never fails: an unreadable store just means nothing is remembered.
func (f *LoginForm) Load(ctx context.Context) error {
	return f.load(ctx, func(ctx context.Context) (dto.LoginRequest, error) {
		email, err := f.memory.RememberedEmail(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("login: remembered email unavailable")
			return dto.LoginRequest{}, nil
		}
		return dto.LoginRequest{Email: email, Remember: email != ""}, nil
	})
}

// Submit authenticates and, on success, remembers or forgets the e-mail
// according to the Remember flag.
func (f *LoginForm) Submit(ctx context.Context, values dto.LoginRequest) (*dto.LoginResponse, error) {
	values.Email = strings.TrimSpace(values.Email)
	err := f.submit(ctx, values,
		func(v dto.LoginRequest) error { return f.validator.Validate(v, loginMessages) },
		func(ctx context.Context, v dto.LoginRequest) error {
			resp, err := f.auth.Login(ctx, v)
			if err != nil {
				return err
			}
			f.result = resp
			f.rememberEmail(ctx, v)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return f.result, nil
}

func (f *LoginForm) rememberEmail(ctx context.Context, v dto.LoginRequest) {
	var err error
	if v.Remember {
		err = f.memory.SetRememberedEmail(ctx, v.Email)
	} else {
		err = f.memory.ClearRememberedEmail(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Msg("login: could not update remembered email")
	}
}

// SignupForm registers a new account. The API then mails a verification code.
type SignupForm struct {
	controller[dto.SignupRequest]

	auth      service.AuthService
	validator *Validator
}

func NewSignupForm(auth service.AuthService, v *Validator) *SignupForm {
	return &SignupForm{auth: auth, validator: v}
}

func (f *SignupForm) Load(ctx context.Context) error {
	return f.load(ctx, func(context.Context) (dto.SignupRequest, error) { return dto.SignupRequest{}, nil })
}

func (f *SignupForm) Submit(ctx context.Context, values dto.SignupRequest) error {
	return f.submit(ctx, values,
		func(v dto.SignupRequest) error { return f.validator.Validate(v, signupMessages) },
		f.auth.Register)
}

// ForgotPasswordForm asks the API to send a password reset e-mail.
type ForgotPasswordForm struct {
	controller[dto.ForgotPasswordRequest]

	auth      service.AuthService
	validator *Validator
}

func NewForgotPasswordForm(auth service.AuthService, v *Validator) *ForgotPasswordForm {
	return &ForgotPasswordForm{auth: auth, validator: v}
}

func (f *ForgotPasswordForm) Load(ctx context.Context) error {
	return f.load(ctx, func(context.Context) (dto.ForgotPasswordRequest, error) {
		return dto.ForgotPasswordRequest{}, nil
	})
}

func (f *ForgotPasswordForm) Submit(ctx context.Context, values dto.ForgotPasswordRequest) error {
	return f.submit(ctx, values,
		func(v dto.ForgotPasswordRequest) error { return f.validator.Validate(v, forgotPasswordMessages) },
		f.auth.ForgotPassword)
}

// VerifyEmailForm confirms a new account with the code sent after signup.
type VerifyEmailForm struct {
	controller[dto.VerifyEmailRequest]

	auth      service.AuthService
	validator *Validator
}

// NewVerifyEmailForm starts the form for the e-mail just registered.
func NewVerifyEmailForm(auth service.AuthService, v *Validator) *VerifyEmailForm {
	return &VerifyEmailForm{auth: auth, validator: v}
}

func (f *VerifyEmailForm) Load(ctx context.Context) error {
	return f.load(ctx, func(context.Context) (dto.VerifyEmailRequest, error) {
		return dto.VerifyEmailRequest{}, nil
	})
}

func (f *VerifyEmailForm) Submit(ctx context.Context, values dto.VerifyEmailRequest) error {
	return f.submit(ctx, values,
		func(v dto.VerifyEmailRequest) error { return f.validator.Validate(v, verifyEmailMessages) },
		f.auth.VerifyEmail)
}

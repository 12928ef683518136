package handler

import (
	"net/http"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/form"
	"exploraneiva/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc       service.AuthService
	memory    form.EmailMemory
	validator *form.Validator
}

func NewAuthHandler(svc service.AuthService, memory form.EmailMemory, v *form.Validator) *AuthHandler {
	return &AuthHandler{svc: svc, memory: memory, validator: v}
}

// Login godoc
// @Summary Login de usuario
// @Description Autentica contra la API remota y emite el token de sesión. Con remember=true se recuerda el correo.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewLoginForm(h.svc, h.memory, h.validator)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	resp, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remembered returns the e-mail saved by the last "remember me" login.
func (h *AuthHandler) Remembered(c *gin.Context) {
	f := form.NewLoginForm(h.svc, h.memory, h.validator)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RememberedEmailResponse{Email: f.Values().Email})
}

// Signup godoc
// @Summary Registro de cuenta
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignupRequest true "Datos de registro"
// @Success 201 {object} dto.MessageResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewSignupForm(h.svc, h.validator)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	if err := f.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Registro exitoso. Revise su correo para obtener el código de verificación."})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewVerifyEmailForm(h.svc, h.validator)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	if err := f.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "¡Correo verificado exitosamente!"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewForgotPasswordForm(h.svc, h.validator)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	if err := f.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Si el correo está registrado, recibirá instrucciones para restablecer su contraseña."})
}

package middleware

import (
	"net/http"
	"strings"

	"exploraneiva/internal/apierror"
	"exploraneiva/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every back-office token.
// APIToken is the remote API's own token, forwarded on the user's behalf.
type JWTClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	APIToken string `json:"api_token"`
	jwt.RegisteredClaims
}

// Session converts the claims into the session carried by forms and the
// gateway.
func (c *JWTClaims) Session() session.Session {
	return session.Session{UserID: c.UserID, Username: c.Username, Email: c.Email, APIToken: c.APIToken}
}

// JWTAuth validates the Bearer token on every protected route and attaches
// the resulting session to the request context.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), claims.Session()))
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// GetSession returns the session of the authenticated request, or the zero
// session on public routes.
func GetSession(c *gin.Context) session.Session {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*JWTClaims); ok {
			return claims.Session()
		}
	}
	return session.Session{}
}

package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

const tokenIssuer = "sleeklegal"

// adminClaims are the JWT claims of an admin session
type adminClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authConfig holds the single admin account and the token signing key
type authConfig struct {
	username     string
	password     string
	passwordHash []byte
	displayName  string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func authConfigFromEnv(c map[string]string) authConfig {
	return authConfig{
		username:     config.GetString(c, "ADMIN_USERNAME", "admin"),
		password:     config.GetString(c, "ADMIN_PASSWORD", ""),
		passwordHash: []byte(config.GetString(c, "ADMIN_PASSWORD_HASH", "")),
		displayName:  config.GetString(c, "ADMIN_DISPLAY_NAME", "Admin User"),
		secret:       []byte(config.GetString(c, "JWT_SECRET", "")),
		ttl:          config.GetDuration(c, "SESSION_TTL_MINUTES", 12*time.Hour),
		now:          time.Now,
	}
}

// enabled reports whether logins can succeed at all
func (a authConfig) enabled() bool {
	return len(a.secret) > 0 && (a.password != "" || len(a.passwordHash) > 0)
}

func (a authConfig) checkPassword(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) != 1 {
		return false
	}
	// a configured hash wins over the plain password
	if len(a.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
}

func (a authConfig) issue(admin Admin) (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.ttl)
	claims := adminClaims{
		Name: admin.Name,
		Role: admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   admin.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	return signed, expires, err
}

func (a authConfig) parse(token string) (Admin, error) {
	var claims adminClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Admin{}, errs.NewTokenExpiredError()
		}
		return Admin{}, errs.NewInvalidTokenError(err)
	}
	return Admin{Username: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

type authMiddleware struct {
	responder Responder
	auth      authConfig
}

func newAuthMiddleware(auth authConfig) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		auth:      auth,
	}
}

func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.auth.secret) == 0 {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		admin, err := m.auth.parse(token)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithAdmin(r.Context(), admin)))
	})
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      authConfig
}

func newAuthHandler(auth authConfig) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

// LoginRequest is the admin login form
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     Admin     `json:"admin"`
}

// login exchanges admin credentials for a session token
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 503 {object} ErrorResponse "Admin login is not configured"
// @Router /admin/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.auth.enabled() {
			h.responder.WriteError(w, errs.NewConfigMissingError("admin login"))
			return
		}

		var req LoginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !h.auth.checkPassword(req.Username, req.Password) {
			h.logger.Warn().Str("username", req.Username).Msg("rejected admin login")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		admin := Admin{Username: h.auth.username, Name: h.auth.displayName, Role: "administrator"}
		token, expires, err := h.auth.issue(admin)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.logger.Info().Str("username", admin.Username).Msg("admin logged in")
		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expires, Admin: admin})
	}
}

// me returns the admin behind the current token
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, ok := ctxGetAdmin(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}
		h.responder.WriteJSON(w, admin)
	}
}

package controllers

import (
	"context"
	"errors"
	"folio/internal/providers"
	"folio/internal/services"
	"net/http"
	"strings"
	"time"
)

const (
	SessionCookie = "folio_session"
	loginPath     = "/admin/login"
)

var errUnauthorized = errors.New("sign in required")

type userKey struct{}

type AuthController struct {
	logger providers.Logger
	auth   services.AuthServiceInterface
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthController(logger providers.Logger, auth services.AuthServiceInterface) *AuthController {
	return &AuthController{logger: logger, auth: auth}
}

// sessionToken reads the bearer token, falling back to the session cookie.
func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// UserFrom returns the signed-in user attached by RequireSession.
func UserFrom(ctx context.Context) (*services.User, bool) {
	u, ok := ctx.Value(userKey{}).(*services.User)
	return u, ok
}

// RequireSession rejects requests without a live session.
func (ac *AuthController) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := ac.auth.CurrentUser(sessionToken(r))
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errUnauthorized.Error(), Login: loginPath})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session, err := ac.auth.SignIn(req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
		return
	case errors.Is(err, services.ErrAuthNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		ac.logger.Errorf(providers.TypeAdmin, "Sign-in failed: %s", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/admin",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, session)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.auth.SignOut(sessionToken(r)); err != nil {
		ac.logger.Debugf(providers.TypeAdmin, "Sign-out without session: %s", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errUnauthorized.Error(), Login: loginPath})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

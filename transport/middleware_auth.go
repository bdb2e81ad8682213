package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mduval/wedding-rsvp/application/auth"
	"github.com/mduval/wedding-rsvp/cmd/config"
	"github.com/mduval/wedding-rsvp/constant"
	"github.com/mduval/wedding-rsvp/utils/errors"
)

// AuthMiddleware is the admin gate. It only inspects requests under the
// admin prefixes, always lets the login/logout endpoints through, and
// checks the credential dictated by the configured strategy. A denied page
// request is redirected to the login page with the original path preserved;
// a denied API request gets an opaque 401 with no hint of why.
func AuthMiddleware(authApp auth.AuthApp, cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if !isAdminPath(path) || isAuthExempt(path) {
				next.ServeHTTP(w, r)
				return
			}

			if !strategyConfigured(cfg) {
				writeError(w, errors.SetCustomError(constant.ErrServerConfig))
				return
			}

			username, allowed := checkCredential(authApp, cfg, r)
			if !allowed {
				deny(w, r, path)
				return
			}

			ctx := context.WithValue(r.Context(), constant.UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/api/admin")
}

// isAuthExempt lists the endpoints the gate never challenges, otherwise
// nobody could ever log in.
func isAuthExempt(path string) bool {
	if path == "/admin/login" {
		return true
	}
	return strings.HasPrefix(path, "/api/admin/login") || strings.HasPrefix(path, "/api/admin/logout")
}

// strategyConfigured checks the secret material the active strategy needs
// is present; its absence is a server fault, not an auth failure.
func strategyConfigured(cfg *config.Config) bool {
	switch cfg.Auth.Strategy {
	case constant.AuthStrategyCookie:
		return cfg.Auth.Secret != ""
	case constant.AuthStrategyBasic:
		return cfg.Auth.AdminUser != "" && (cfg.Auth.AdminPassword != "" || cfg.Auth.AdminPasswordHash != "")
	case constant.AuthStrategyBearer:
		return cfg.Auth.APIToken != ""
	}
	return false
}

func checkCredential(authApp auth.AuthApp, cfg *config.Config, r *http.Request) (string, bool) {
	switch cfg.Auth.Strategy {
	case constant.AuthStrategyCookie:
		ck, err := r.Cookie(constant.SessionCookie)
		if err != nil || ck.Value == "" {
			return "", false
		}
		return authApp.VerifyCookieToken(ck.Value)

	case constant.AuthStrategyBasic:
		username, password, ok := r.BasicAuth()
		if !ok || !authApp.VerifyBasic(username, password) {
			return "", false
		}
		return username, true

	case constant.AuthStrategyBearer:
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			return "", false
		}
		if !authApp.VerifyBearer(strings.TrimPrefix(authz, "Bearer ")) {
			return "", false
		}
		return cfg.Auth.AdminUser, true
	}
	return "", false
}

func deny(w http.ResponseWriter, r *http.Request, path string) {
	if strings.HasPrefix(path, "/api/") {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	http.Redirect(w, r, "/admin/login?next="+url.QueryEscape(path), http.StatusFound)
}

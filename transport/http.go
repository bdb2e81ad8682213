package transport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
	authapp "github.com/mduval/wedding-rsvp/application/auth"
	rsvpapp "github.com/mduval/wedding-rsvp/application/rsvp"
	"github.com/mduval/wedding-rsvp/cmd/config"
	"github.com/mduval/wedding-rsvp/constant"
	"github.com/mduval/wedding-rsvp/model"
	contextx "github.com/mduval/wedding-rsvp/utils/context"
	"github.com/mduval/wedding-rsvp/utils/errors"
	"github.com/mduval/wedding-rsvp/utils/logger"
	validatorx "github.com/mduval/wedding-rsvp/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	Config  *config.Config
	AuthApp authapp.AuthApp
	RsvpApp rsvpapp.RsvpApp
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, rsvpApp rsvpapp.RsvpApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:  cfg,
		AuthApp: authApp,
		RsvpApp: rsvpApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	mux.HandleFunc("/api/rsvp", rh.Submit).Methods(http.MethodPost)
	mux.HandleFunc("/i/{code}", rh.InviteLanding).Methods(http.MethodGet)

	// Admin auth endpoints (exempt from the gate)
	mux.HandleFunc("/api/admin/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/admin/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/admin/login", rh.LoginPage).Methods(http.MethodGet)

	// Gated admin routes
	mux.HandleFunc("/api/admin/rsvps", rh.ListRsvps).Methods(http.MethodGet)
	mux.PathPrefix("/admin").HandlerFunc(rh.AdminPage).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp, cfg))

	return mux
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "healthy"})
}

// Submit handler
// @Summary Submit an RSVP
// @Description Validate and persist a guest response, upserting by normalized email or phone
// @Tags RSVP
// @Accept json
// @Produce json
// @Param request body model.SubmitRequest true "RSVP Submission"
// @Success 200 {object} model.SubmitResponse
// @Failure 400 {object} errors.CustomError
// @Failure 401 {object} errors.CustomError
// @Router /api/rsvp [post]
func (s *RestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RsvpApp.Submit(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListRsvps handler
// @Summary List RSVP responses
// @Description Full or attending-filtered record set, admin only
// @Tags Admin
// @Produce json
// @Param attending query string false "Filter by attendance" Enums(yes, no)
// @Success 200 {object} model.ListResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/admin/rsvps [get]
func (s *RestHandler) ListRsvps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	attending := r.URL.Query().Get("attending")
	if admin, ok := contextx.GetUsername(ctx); ok {
		logger.Info("[ListRsvps] listing records", zap.String("admin", admin))
	}

	res, err := s.RsvpApp.List(ctx, attending)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Admin login
// @Description Check admin credentials and set the signed session cookie
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/admin/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	token, expiresAt, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, &model.LoginResponse{OK: true})
}

// Logout handler
// @Summary Admin logout
// @Description Clear the session cookie
// @Tags Admin
// @Produce json
// @Success 200 {object} model.LoginResponse
// @Router /api/admin/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, &model.LoginResponse{OK: true})
}

// InviteLanding redirects a known invite code to the home page with the
// code carried as a query parameter. Unknown codes land on the bare home
// page, indistinguishable from having no code at all.
func (s *RestHandler) InviteLanding(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])

	if code == "" || !s.Config.HasInviteCode(code) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/?code="+url.QueryEscape(code), http.StatusFound)
}

// Placeholder pages. The real UI is a separate client; these routes exist
// so the gate's page-redirect semantics have somewhere to land.
func (s *RestHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!doctype html><title>Admin</title><h1>RSVP admin</h1>"))
}

func (s *RestHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!doctype html><title>Login</title><h1>Admin login</h1>"))
}

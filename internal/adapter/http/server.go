// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"weighin/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO wiring.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Config wires the application services into the HTTP adapter.
type Config struct {
	Weights      *app.WeightService
	Achievements *app.AchievementService
	Preferences  *app.PreferencesService
	Summary      *app.WeeklySummaryService
	OCR          *app.OCRService
	Auth         *app.AuthService
	Admin        *app.AdminService
	OIDC         *OIDCConfig
	WebDir       string
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weights      *app.WeightService
	achievements *app.AchievementService
	prefs        *app.PreferencesService
	summary      *app.WeeklySummaryService
	ocr          *app.OCRService
	authSvc      *app.AuthService
	admin        *app.AdminService
	oidcConfig   *OIDCConfig
	webDir       string
	disableAuth  bool
}

// New creates a Server wired to the given application services.
func New(cfg Config) *Server {
	oidcCfg := cfg.OIDC
	if oidcCfg == nil {
		oidcCfg = &OIDCConfig{}
	}
	return &Server{
		weights:      cfg.Weights,
		achievements: cfg.Achievements,
		prefs:        cfg.Preferences,
		summary:      cfg.Summary,
		ocr:          cfg.OCR,
		authSvc:      cfg.Auth,
		admin:        cfg.Admin,
		oidcConfig:   oidcCfg,
		webDir:       cfg.WebDir,
	}
}

// WithoutAuth disables authentication so handler tests can hit protected
// routes directly. Requests run as a fixed admin test user.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := func(h http.HandlerFunc) http.Handler { return s.authMiddleware(h) }
	api.Handle("/weights", protected(s.handleWeights))
	api.Handle("/weights/", protected(s.handleWeightByID))
	api.Handle("/achievements", protected(s.handleAchievements))
	api.Handle("/preferences", protected(s.handlePreferences))
	api.Handle("/user", protected(s.handleUser))
	api.Handle("/summary/weekly", protected(s.handleWeeklySummary))
	api.Handle("/stats", protected(s.handleStats))
	api.Handle("/activity", protected(s.handleActivity))
	api.Handle("/ocr", protected(s.handleOCR))

	admin := http.NewServeMux()
	admin.HandleFunc("/users", s.handleAdminUsers)
	admin.HandleFunc("/users/", s.handleAdminUserByID)
	admin.HandleFunc("/activity", s.handleAdminActivity)
	api.Handle("/admin/", http.StripPrefix("/admin", s.authMiddleware(s.adminOnly(admin))))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", s.loggingMiddleware(api)))
	root.Handle("/", spaFromDisk(s.webDir))

	return withNoCache(root)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "weighin/internal/adapter/http"
	"weighin/internal/adapter/postgres"
	"weighin/internal/adapter/vision"
	"weighin/internal/app"
	"weighin/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

func main() {
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)

	achievementSvc := app.NewAchievementService(db, db)
	weightSvc := app.NewWeightService(db, db, db, achievementSvc, app.NewCelebrationSelector())
	prefsSvc := app.NewPreferencesService(db)
	summarySvc := app.NewWeeklySummaryService(db, db, db, app.NewWeeklySummaryCalculator())
	authSvc := app.NewAuthService(db, sessionRepo)
	adminSvc := app.NewAdminService(db, db)

	var reader domain.ScaleReader
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		reader = vision.New(apiKey)
	}
	ocrSvc := app.NewOCRService(reader)

	oidcCfg, err := loadOIDC(context.Background())
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(adapthttp.Config{
		Weights:      weightSvc,
		Achievements: achievementSvc,
		Preferences:  prefsSvc,
		Summary:      summarySvc,
		OCR:          ocrSvc,
		Auth:         authSvc,
		Admin:        adminSvc,
		OIDC:         oidcCfg,
		WebDir:       webDir,
	}).Handler()

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadOIDC builds the SSO configuration when OIDC_ISSUER is set; otherwise
// SSO stays disabled and password login is the only method.
func loadOIDC(ctx context.Context) (*adapthttp.OIDCConfig, error) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return &adapthttp.OIDCConfig{}, nil
	}

	clientID := os.Getenv("OIDC_CLIENT_ID")
	clientSecret := os.Getenv("OIDC_CLIENT_SECRET")
	redirectURL := os.Getenv("OIDC_REDIRECT_URL")
	if clientID == "" || redirectURL == "" {
		return nil, errors.New("OIDC_CLIENT_ID and OIDC_REDIRECT_URL are required when OIDC_ISSUER is set")
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return &adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/rushnrelax/storefront-api/internal/reviews"
)

// JWTConfig defines an issuer/secret pair for admin auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the binaries.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	ReviewCacheCollection string
	ContactCollection     string
	PingCollection        string
	Timeout               time.Duration
	AllowedOrigins        []string

	// Review sync settings. PlacesAPIKey may be empty; the sync job then
	// skips the whole run. An empty PlaceIDs falls back to the catalog
	// allow-list.
	PlacesAPIKey       string
	PlacesEndpoint     string
	PlacesFetchTimeout time.Duration
	PlaceIDs           []string

	// Age gate cookie settings.
	AgeCookieName   string
	AgeCookieMaxAge time.Duration
	AgeCookieSecure bool

	// Admin surface auth. When no secret is configured the admin routes
	// are not mounted.
	JWTConfigs  []JWTConfig
	JWTAudience string

	// Operator notification webhook for contact submissions.
	NotifyWebhookURL string
	NotifyTimeout    time.Duration

	ServerLog *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	fetchTimeout := reviews.DefaultFetchTimeout
	if raw := strings.TrimSpace(os.Getenv("PLACES_FETCH_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			fetchTimeout = parsed
		}
	}

	cookieMaxAge := 365 * 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AGE_COOKIE_MAX_AGE")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cookieMaxAge = parsed
		}
	}

	notifyTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("NOTIFY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			notifyTimeout = parsed
		}
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("ADMIN_JWT_ISSUER", "rushnrelax-auth"),
			Secret: []byte(secret),
		})
	}

	return Config{
		Addr:                  envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:              envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:         envOrDefault("MONGO_DB", "rushnrelax"),
		ReviewCacheCollection: envOrDefault("REVIEW_CACHE_COLLECTION", "location-reviews"),
		ContactCollection:     envOrDefault("CONTACT_COLLECTION", "contact-submissions"),
		PingCollection:        envOrDefault("PING_COLLECTION", "pings"),
		Timeout:               timeout,
		AllowedOrigins:        parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		PlacesAPIKey:          strings.TrimSpace(os.Getenv("PLACES_API_KEY")),
		PlacesEndpoint:        envOrDefault("PLACES_API_BASE_URL", reviews.DefaultPlacesEndpoint),
		PlacesFetchTimeout:    fetchTimeout,
		PlaceIDs:              parseList("PLACE_IDS", nil),
		AgeCookieName:         envOrDefault("AGE_COOKIE_NAME", "ageVerified"),
		AgeCookieMaxAge:       cookieMaxAge,
		AgeCookieSecure:       strings.EqualFold(strings.TrimSpace(os.Getenv("AGE_COOKIE_SECURE")), "true"),
		JWTConfigs:            jwtConfigs,
		JWTAudience:           strings.TrimSpace(os.Getenv("ADMIN_JWT_AUDIENCE")),
		NotifyWebhookURL:      strings.TrimSpace(os.Getenv("NOTIFY_WEBHOOK_URL")),
		NotifyTimeout:         notifyTimeout,
		ServerLog:             log.New(os.Stdout, "[rushnrelax-api] ", log.LstdFlags|log.Lshortfile),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}

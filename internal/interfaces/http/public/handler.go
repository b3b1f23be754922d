// Package public wires the storefront-facing HTTP endpoints: the age gate,
// the catalog, cached location reviews and the contact form.
package public

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rushnrelax/storefront-api/internal/contact"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

// ReviewReader is the read side of the review cache.
type ReviewReader interface {
	FindByPlaceID(ctx context.Context, placeID string) (*reviews.CachedReviews, error)
}

// ContactStore persists contact form submissions.
type ContactStore interface {
	Insert(ctx context.Context, sub contact.Submission) (contact.Submission, error)
}

// Handler wires public HTTP endpoints to their dependencies.
type Handler struct {
	logger        *log.Logger
	reviewCache   ReviewReader
	contacts      ContactStore
	cookieName    string
	cookieMaxAge  time.Duration
	cookieSecure  bool
	httpClient    *http.Client
	notifyWebhook string
	now           func() time.Time
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	ReviewCache   ReviewReader
	Contacts      ContactStore
	CookieName    string
	CookieMaxAge  time.Duration
	CookieSecure  bool
	HTTPClient    *http.Client
	NotifyWebhook string
	Now           func() time.Time
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "ageVerified"
	}
	return &Handler{
		logger:        cfg.Logger,
		reviewCache:   cfg.ReviewCache,
		contacts:      cfg.Contacts,
		cookieName:    cookieName,
		cookieMaxAge:  cfg.CookieMaxAge,
		cookieSecure:  cfg.CookieSecure,
		httpClient:    cfg.HTTPClient,
		notifyWebhook: cfg.NotifyWebhook,
		now:           now,
	}
}

// Register mounts all public routes onto the router. Content routes sit
// behind the age gate; the gate endpoints and the contact form do not.
func (h *Handler) Register(r chi.Router) {
	r.Get("/age/status", h.ageStatusHandler())
	r.Post("/age/verify", h.ageVerifyHandler())
	r.Post("/contact", h.contactHandler())

	r.Group(func(r chi.Router) {
		r.Use(h.RequireVerified)
		r.Get("/locations", h.locationListHandler())
		r.Get("/locations/{slug}", h.locationDetailHandler())
		r.Get("/locations/{slug}/reviews", h.locationReviewsHandler())
		r.Get("/products", h.productListHandler())
		r.Get("/products/{slug}", h.productDetailHandler())
	})
}

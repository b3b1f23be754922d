// Package admin serves the operator-facing endpoints: stored contact
// submissions and the raw review cache. Every route requires a verified
// admin token.
package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rushnrelax/storefront-api/internal/contact"
	"github.com/rushnrelax/storefront-api/internal/interfaces/http/common"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

// ContactLister reads stored contact submissions.
type ContactLister interface {
	List(ctx context.Context, limit int) ([]contact.Submission, error)
}

// ReviewCacheReader reads the raw cached review documents.
type ReviewCacheReader interface {
	FindByPlaceID(ctx context.Context, placeID string) (*reviews.CachedReviews, error)
}

// Handler wires admin HTTP endpoints to their dependencies.
type Handler struct {
	logger      *log.Logger
	contacts    ContactLister
	reviewCache ReviewCacheReader
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *log.Logger
	Contacts    ContactLister
	ReviewCache ReviewCacheReader
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		contacts:    cfg.Contacts,
		reviewCache: cfg.ReviewCache,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contacts", h.contactListHandler())
	r.Get("/reviews/{placeID}", h.reviewCacheHandler())
}

type contactItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (h *Handler) contactListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := h.contacts.List(r.Context(), 100)
		if err != nil {
			h.logger.Printf("failed to list contact submissions: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{
				"error": "failed to list contact submissions",
			})
			return
		}

		out := make([]contactItemResponse, 0, len(subs))
		for _, sub := range subs {
			out = append(out, contactItemResponse{
				ID:          sub.ID,
				Name:        sub.Name,
				Email:       sub.Email,
				Phone:       sub.Phone,
				Message:     sub.Message,
				SubmittedAt: sub.SubmittedAt,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"contacts": out})
	}
}

type cachedReviewResponse struct {
	AuthorName              string `json:"authorName"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relativeTimeDescription"`
	PhotoURL                string `json:"photoUrl"`
	UnixTime                int64  `json:"unixTime"`
}

// reviewCacheHandler exposes the stored cache document so an operator can
// check what the last refresh wrote.
func (h *Handler) reviewCacheHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID := chi.URLParam(r, "placeID")
		cached, err := h.reviewCache.FindByPlaceID(r.Context(), placeID)
		if errors.Is(err, reviews.ErrNotFound) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{
				"error": "no cached reviews for this place",
			})
			return
		}
		if err != nil {
			h.logger.Printf("review cache read failed for place %s: %v", placeID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{
				"error": "failed to read review cache",
			})
			return
		}

		snippets := make([]cachedReviewResponse, 0, len(cached.Reviews))
		for _, rev := range cached.Reviews {
			snippets = append(snippets, cachedReviewResponse{
				AuthorName:              rev.AuthorName,
				Rating:                  rev.Rating,
				Text:                    rev.Text,
				RelativeTimeDescription: rev.RelativeTimeDescription,
				PhotoURL:                rev.PhotoURL,
				UnixTime:                rev.Time,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"placeId":      cached.PlaceID,
			"rating":       cached.Rating,
			"totalRatings": cached.TotalRatings,
			"reviews":      snippets,
			"cachedAt":     cached.CachedAt,
		})
	}
}

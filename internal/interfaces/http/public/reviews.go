package public

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rushnrelax/storefront-api/internal/catalog"
	"github.com/rushnrelax/storefront-api/internal/interfaces/http/common"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

type reviewSnippetResponse struct {
	AuthorName              string `json:"authorName"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relativeTimeDescription"`
	PhotoURL                string `json:"photoUrl"`
	UnixTime                int64  `json:"unixTime"`
}

type locationReviewsResponse struct {
	PlaceID      string                  `json:"placeId"`
	Rating       float64                 `json:"rating"`
	TotalRatings int                     `json:"totalRatings"`
	Reviews      []reviewSnippetResponse `json:"reviews"`
	CachedAt     time.Time               `json:"cachedAt"`
}

// locationReviewsHandler serves the cached review snapshot for a location.
// A missing document and a read failure both answer 204: the storefront
// simply renders nothing rather than an error state.
func (h *Handler) locationReviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		loc, ok := catalog.LocationBySlug(slug)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{
				"error": "unknown location",
			})
			return
		}
		if loc.PlaceID == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		cached, err := h.reviewCache.FindByPlaceID(r.Context(), loc.PlaceID)
		if errors.Is(err, reviews.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("review cache read failed for place %s: %v", loc.PlaceID, err)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewsResponse(*cached))
	}
}

func buildReviewsResponse(cached reviews.CachedReviews) locationReviewsResponse {
	snippets := make([]reviewSnippetResponse, 0, len(cached.Reviews))
	for _, rev := range cached.Reviews {
		snippets = append(snippets, reviewSnippetResponse{
			AuthorName:              rev.AuthorName,
			Rating:                  rev.Rating,
			Text:                    rev.Text,
			RelativeTimeDescription: rev.RelativeTimeDescription,
			PhotoURL:                rev.PhotoURL,
			UnixTime:                rev.Time,
		})
	}
	return locationReviewsResponse{
		PlaceID:      cached.PlaceID,
		Rating:       cached.Rating,
		TotalRatings: cached.TotalRatings,
		Reviews:      snippets,
		CachedAt:     cached.CachedAt,
	}
}

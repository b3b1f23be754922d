// Package reviews holds the cached third-party review data for each retail
// location and the sync pipeline that refreshes it.
package reviews

import (
	"errors"
	"time"
)

// MaxCachedReviews caps how many review snippets one cache document keeps.
const MaxCachedReviews = 5

// ErrNotFound is returned when no cache document exists for a place.
var ErrNotFound = errors.New("review cache: document not found")

// Review is one review snippet from the external lookup service.
type Review struct {
	AuthorName              string
	Rating                  int
	Text                    string
	RelativeTimeDescription string
	PhotoURL                string
	Time                    int64
}

// CachedReviews is the stored snapshot of a location's aggregate rating and
// most relevant recent reviews. It is overwritten wholesale on every
// successful refresh and never mutated by readers.
type CachedReviews struct {
	PlaceID      string
	Rating       float64
	TotalRatings int
	Reviews      []Review
	CachedAt     time.Time
}

package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultPlacesEndpoint is the production details endpoint of the lookup
// service.
const DefaultPlacesEndpoint = "https://maps.googleapis.com/maps/api/place/details/json"

// DefaultFetchTimeout bounds one outbound details call.
const DefaultFetchTimeout = 10 * time.Second

// HTTPStatusError reports a transport-level non-success response from the
// lookup service.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("places lookup returned HTTP %d", e.StatusCode)
}

// APIStatusError reports a service-level failure: a non-OK status in the
// response body, or a missing result payload.
type APIStatusError struct {
	Status  string
	Message string
}

func (e *APIStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places lookup status %s", e.Status)
	}
	return fmt.Sprintf("places lookup status %s: %s", e.Status, e.Message)
}

// PlaceDetails is the normalized rating payload for one place. Missing
// source fields arrive here as zero values.
type PlaceDetails struct {
	Rating       float64
	TotalRatings int
	Reviews      []Review
}

// PlacesClient fetches place rating details over the lookup service's JSON
// HTTP API.
type PlacesClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewPlacesClient builds a client against endpoint. An empty endpoint
// selects the production service; a nil httpClient gets the default fetch
// timeout applied.
func NewPlacesClient(endpoint string, httpClient *http.Client) *PlacesClient {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultPlacesEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &PlacesClient{httpClient: httpClient, endpoint: endpoint}
}

// Wire types for the lookup response.
type placesResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Result       *placesResult `json:"result"`
}

type placesResult struct {
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	Reviews          []placeReview `json:"reviews"`
}

type placeReview struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relative_time_description"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
	Time                    int64  `json:"time"`
}

// FetchDetails requests rating, total rating count and reviews for placeID,
// sorted by relevance. Network errors propagate unchanged; non-success HTTP
// statuses surface as *HTTPStatusError and service-level failures as
// *APIStatusError. Missing rating, count or review fields default to zero
// values.
func (c *PlacesClient) FetchDetails(ctx context.Context, placeID, apiKey string) (*PlaceDetails, error) {
	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", "rating,user_ratings_total,reviews")
	query.Set("reviews_sort", "most_relevant")
	query.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPStatusError{StatusCode: res.StatusCode}
	}

	var payload placesResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	if payload.Status != "OK" || payload.Result == nil {
		return nil, &APIStatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	details := &PlaceDetails{Reviews: make([]Review, 0, len(payload.Result.Reviews))}
	if payload.Result.Rating != nil {
		details.Rating = *payload.Result.Rating
	}
	if payload.Result.UserRatingsTotal != nil {
		details.TotalRatings = *payload.Result.UserRatingsTotal
	}
	for _, r := range payload.Result.Reviews {
		details.Reviews = append(details.Reviews, Review{
			AuthorName:              r.AuthorName,
			Rating:                  r.Rating,
			Text:                    r.Text,
			RelativeTimeDescription: r.RelativeTimeDescription,
			PhotoURL:                r.ProfilePhotoURL,
			Time:                    r.Time,
		})
	}
	return details, nil
}

package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rushnrelax/storefront-api/internal/agegate"
	"github.com/rushnrelax/storefront-api/internal/contact"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type stubReviewReader struct {
	cached map[string]*reviews.CachedReviews
	err    error
}

func (s *stubReviewReader) FindByPlaceID(_ context.Context, placeID string) (*reviews.CachedReviews, error) {
	if s.err != nil {
		return nil, s.err
	}
	cached, ok := s.cached[placeID]
	if !ok {
		return nil, reviews.ErrNotFound
	}
	return cached, nil
}

type stubContactStore struct {
	inserted []contact.Submission
	err      error
}

func (s *stubContactStore) Insert(_ context.Context, sub contact.Submission) (contact.Submission, error) {
	if s.err != nil {
		return contact.Submission{}, s.err
	}
	sub.ID = "stub-id"
	s.inserted = append(s.inserted, sub)
	return sub, nil
}

func newTestRouter(t *testing.T, cfg Config) chi.Router {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return testNow }
	}
	if cfg.CookieMaxAge == 0 {
		cfg.CookieMaxAge = 24 * time.Hour
	}
	router := chi.NewRouter()
	NewHandler(cfg).Register(router)
	return router
}

func verifiedCookie() *http.Cookie {
	return &http.Cookie{Name: "ageVerified", Value: "true"}
}

func decodeStatus(t *testing.T, body io.Reader) ageStatusResponse {
	t.Helper()
	var resp ageStatusResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAgeStatusWithoutCookie(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/age/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeStatus(t, rec.Body); resp.Verified {
		t.Error("expected unverified without a cookie")
	}
}

func TestAgeStatusIgnoresWrongCookieValue(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/age/status", nil)
	req.AddCookie(&http.Cookie{Name: "ageVerified", Value: "1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if resp := decodeStatus(t, rec.Body); resp.Verified {
		t.Error("only the literal \"true\" should count as verified")
	}
}

func TestAgeVerifySuccessSetsCookie(t *testing.T) {
	router := newTestRouter(t, Config{})

	body := strings.NewReader(`{"month":"05","day":"15","year":"1995"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/age/verify", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp := decodeStatus(t, rec.Body); !resp.Verified {
		t.Error("expected verified response")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "ageVerified" || c.Value != "true" {
		t.Errorf("cookie = %s=%s", c.Name, c.Value)
	}
	if c.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("cookie MaxAge = %d", c.MaxAge)
	}
	if c.Path != "/" {
		t.Errorf("cookie Path = %q", c.Path)
	}
}

func TestAgeVerifySanitizesInput(t *testing.T) {
	router := newTestRouter(t, Config{})

	// Non-digits are dropped and values capped, matching keystroke entry.
	body := strings.NewReader(`{"month":"0a5","day":"1-5","year":"19951"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/age/verify", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAgeVerifyValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		message string
	}{
		{
			name:    "missing day",
			payload: `{"month":"05","day":"","year":"1995"}`,
			message: agegate.MsgIncompleteBirthDate,
		},
		{
			name:    "month out of range",
			payload: `{"month":"13","day":"10","year":"1995"}`,
			message: agegate.MsgInvalidBirthDate,
		},
		{
			name:    "under minimum age",
			payload: `{"month":"03","day":"10","year":"2008"}`,
			message: agegate.MsgUnderMinimumAge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, Config{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/age/verify", strings.NewReader(tc.payload)))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			resp := decodeStatus(t, rec.Body)
			if resp.Verified {
				t.Error("expected unverified response")
			}
			if resp.Message != tc.message {
				t.Errorf("message = %q, want %q", resp.Message, tc.message)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("no cookie should be written on failure")
			}
		})
	}
}

func TestAgeVerifyAlreadyVerifiedShortCircuits(t *testing.T) {
	router := newTestRouter(t, Config{})

	// An already verified visitor passes even with an empty form.
	req := httptest.NewRequest(http.MethodPost, "/age/verify", strings.NewReader(`{}`))
	req.AddCookie(verifiedCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp := decodeStatus(t, rec.Body); !resp.Verified {
		t.Error("expected verified response")
	}
}

func TestAgeVerifyRejectsBadJSON(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/age/verify", strings.NewReader(`not json`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGateBlocksContentRoutes(t *testing.T) {
	router := newTestRouter(t, Config{})

	for _, path := range []string{"/locations", "/locations/oak-ridge", "/products", "/products/drinks"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: status = %d, want 403", path, rec.Code)
			continue
		}
		if resp := decodeStatus(t, rec.Body); resp.Message != agegate.MsgUnderMinimumAge {
			t.Errorf("%s: message = %q", path, resp.Message)
		}
	}
}

func TestGateAllowsVerifiedVisitor(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	req.AddCookie(verifiedCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Locations []locationResponse `json:"locations"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Locations) != 4 {
		t.Errorf("expected 4 locations, got %d", len(resp.Locations))
	}
}

func TestLocationReviews(t *testing.T) {
	cached := &reviews.CachedReviews{
		PlaceID:      "ChIJG2IBn08zXIgROk6xAd9qyY0",
		Rating:       4.7,
		TotalRatings: 88,
		CachedAt:     testNow,
		Reviews: []reviews.Review{
			{AuthorName: "Jordan", Rating: 5, Text: "Great store", RelativeTimeDescription: "a week ago", Time: 1750000000},
		},
	}

	t.Run("unknown location", func(t *testing.T) {
		router := newTestRouter(t, Config{ReviewCache: &stubReviewReader{}})

		req := httptest.NewRequest(http.MethodGet, "/locations/nowhere/reviews", nil)
		req.AddCookie(verifiedCookie())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("location without place ID", func(t *testing.T) {
		router := newTestRouter(t, Config{ReviewCache: &stubReviewReader{}})

		req := httptest.NewRequest(http.MethodGet, "/locations/maryville/reviews", nil)
		req.AddCookie(verifiedCookie())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("cache miss answers no content", func(t *testing.T) {
		router := newTestRouter(t, Config{ReviewCache: &stubReviewReader{}})

		req := httptest.NewRequest(http.MethodGet, "/locations/oak-ridge/reviews", nil)
		req.AddCookie(verifiedCookie())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("read failure answers no content", func(t *testing.T) {
		router := newTestRouter(t, Config{ReviewCache: &stubReviewReader{err: errors.New("mongo down")}})

		req := httptest.NewRequest(http.MethodGet, "/locations/oak-ridge/reviews", nil)
		req.AddCookie(verifiedCookie())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("cached snapshot", func(t *testing.T) {
		reader := &stubReviewReader{cached: map[string]*reviews.CachedReviews{cached.PlaceID: cached}}
		router := newTestRouter(t, Config{ReviewCache: reader})

		req := httptest.NewRequest(http.MethodGet, "/locations/oak-ridge/reviews", nil)
		req.AddCookie(verifiedCookie())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp locationReviewsResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.PlaceID != cached.PlaceID || resp.Rating != 4.7 || resp.TotalRatings != 88 {
			t.Errorf("unexpected snapshot: %+v", resp)
		}
		if len(resp.Reviews) != 1 || resp.Reviews[0].AuthorName != "Jordan" {
			t.Errorf("unexpected reviews: %+v", resp.Reviews)
		}
	})
}

func TestContactSubmission(t *testing.T) {
	t.Run("validation failure", func(t *testing.T) {
		store := &stubContactStore{}
		router := newTestRouter(t, Config{Contacts: store})

		body := strings.NewReader(`{"name":"","email":"bad","message":""}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", body))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp contactResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message != msgContactInvalid {
			t.Errorf("message = %q", resp.Message)
		}
		if resp.FieldErrors["email"] != "Invalid email address" {
			t.Errorf("fieldErrors = %v", resp.FieldErrors)
		}
		if len(store.inserted) != 0 {
			t.Error("nothing should be stored on validation failure")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		router := newTestRouter(t, Config{Contacts: &stubContactStore{err: errors.New("mongo down")}})

		body := strings.NewReader(`{"name":"Avery","email":"avery@example.com","message":"Hello"}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", body))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp contactResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message != msgContactFailed {
			t.Errorf("message = %q", resp.Message)
		}
	})

	t.Run("success notifies the webhook", func(t *testing.T) {
		received := make(chan string, 1)
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]string
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode webhook payload: %v", err)
			}
			received <- payload["text"]
			w.WriteHeader(http.StatusOK)
		}))
		defer webhook.Close()

		store := &stubContactStore{}
		router := newTestRouter(t, Config{
			Contacts:      store,
			HTTPClient:    webhook.Client(),
			NotifyWebhook: webhook.URL,
		})

		body := strings.NewReader(`{"name":"Avery","email":"avery@example.com","phone":"865-555-0134","message":"Hello"}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var resp contactResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message != msgContactSubmitted {
			t.Errorf("message = %q", resp.Message)
		}
		if len(store.inserted) != 1 {
			t.Fatalf("expected 1 stored submission, got %d", len(store.inserted))
		}
		if store.inserted[0].SubmittedAt != testNow {
			t.Errorf("SubmittedAt = %v", store.inserted[0].SubmittedAt)
		}

		select {
		case text := <-received:
			if !strings.Contains(text, "Avery") || !strings.Contains(text, "865-555-0134") {
				t.Errorf("webhook text = %q", text)
			}
		case <-time.After(time.Second):
			t.Fatal("webhook was not called")
		}
	})

	t.Run("webhook failure is not surfaced", func(t *testing.T) {
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer webhook.Close()

		router := newTestRouter(t, Config{
			Contacts:      &stubContactStore{},
			HTTPClient:    webhook.Client(),
			NotifyWebhook: webhook.URL,
		})

		body := strings.NewReader(`{"name":"Avery","email":"avery@example.com","message":"Hello"}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", body))

		if rec.Code != http.StatusCreated {
			t.Errorf("status = %d", rec.Code)
		}
	})
}

func TestProductCategoryFilter(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/products?category=drinks", nil)
	req.AddCookie(verifiedCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Products []productResponse `json:"products"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, p := range resp.Products {
		if p.Category != "drinks" {
			t.Errorf("product %s has category %s", p.Slug, p.Category)
		}
	}
	if len(resp.Products) == 0 {
		t.Error("expected at least one drink product")
	}
}

package reviews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*PlacesClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewPlacesClient(srv.URL, srv.Client()), srv
}

func TestFetchDetailsRequestShape(t *testing.T) {
	var query map[string]string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"place_id":     r.URL.Query().Get("place_id"),
			"fields":       r.URL.Query().Get("fields"),
			"reviews_sort": r.URL.Query().Get("reviews_sort"),
			"key":          r.URL.Query().Get("key"),
		}
		w.Write([]byte(`{"status":"OK","result":{"rating":4.5,"user_ratings_total":120,"reviews":[]}}`))
	})
	defer srv.Close()

	details, err := client.FetchDetails(context.Background(), "place-1", "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if query["place_id"] != "place-1" {
		t.Errorf("place_id = %q", query["place_id"])
	}
	if query["fields"] != "rating,user_ratings_total,reviews" {
		t.Errorf("fields = %q", query["fields"])
	}
	if query["reviews_sort"] != "most_relevant" {
		t.Errorf("reviews_sort = %q", query["reviews_sort"])
	}
	if query["key"] != "secret-key" {
		t.Errorf("key = %q", query["key"])
	}
	if details.Rating != 4.5 || details.TotalRatings != 120 {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestFetchDetailsHTTPStatusError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := client.FetchDetails(context.Background(), "place-1", "key")

	var httpErr *HTTPStatusError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPStatusError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", httpErr.StatusCode)
	}
}

func TestFetchDetailsAPIStatusError(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus string
	}{
		{"non-OK status", `{"status":"REQUEST_DENIED","error_message":"bad key"}`, "REQUEST_DENIED"},
		{"missing result", `{"status":"OK"}`, "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := client.FetchDetails(context.Background(), "place-1", "key")

			var apiErr *APIStatusError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIStatusError, got %v", err)
			}
			if apiErr.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", apiErr.Status, tt.wantStatus)
			}
		})
	}
}

func TestFetchDetailsNetworkErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	client := NewPlacesClient(srv.URL, srv.Client())
	srv.Close() // connection refused from here on

	_, err := client.FetchDetails(context.Background(), "place-1", "key")
	if err == nil {
		t.Fatal("expected a network error")
	}
	var httpErr *HTTPStatusError
	var apiErr *APIStatusError
	if errors.As(err, &httpErr) || errors.As(err, &apiErr) {
		t.Errorf("network error was wrapped in a lookup error type: %v", err)
	}
}

func TestFetchDetailsDefaults(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"OK","result":{}}`))
	})
	defer srv.Close()

	details, err := client.FetchDetails(context.Background(), "place-1", "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Rating != 0 {
		t.Errorf("rating default = %v, want 0", details.Rating)
	}
	if details.TotalRatings != 0 {
		t.Errorf("totalRatings default = %d, want 0", details.TotalRatings)
	}
	if len(details.Reviews) != 0 {
		t.Errorf("reviews default = %v, want empty", details.Reviews)
	}
}

func TestFetchDetailsMapsReviews(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"OK","result":{"rating":5,"user_ratings_total":2,"reviews":[
			{"author_name":"Jamie","rating":5,"text":"Great shop","relative_time_description":"a week ago","profile_photo_url":"https://example.com/p.jpg","time":1700000000}
		]}}`))
	})
	defer srv.Close()

	details, err := client.FetchDetails(context.Background(), "place-1", "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(details.Reviews))
	}
	got := details.Reviews[0]
	want := Review{
		AuthorName:              "Jamie",
		Rating:                  5,
		Text:                    "Great shop",
		RelativeTimeDescription: "a week ago",
		PhotoURL:                "https://example.com/p.jpg",
		Time:                    1700000000,
	}
	if got != want {
		t.Errorf("review = %+v, want %+v", got, want)
	}
}

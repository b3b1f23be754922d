package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rushnrelax/storefront-api/internal/catalog"
	"github.com/rushnrelax/storefront-api/internal/interfaces/http/common"
)

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationResponse struct {
	ID          int                  `json:"id"`
	Slug        string               `json:"slug"`
	Name        string               `json:"name"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	State       string               `json:"state"`
	Zip         string               `json:"zip"`
	Phone       string               `json:"phone"`
	Hours       string               `json:"hours"`
	Description string               `json:"description"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
	HasReviews  bool                 `json:"hasReviews"`
}

type productResponse struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Featured    bool   `json:"featured"`
}

func buildLocationResponse(loc catalog.Location) locationResponse {
	resp := locationResponse{
		ID:          loc.ID,
		Slug:        loc.Slug,
		Name:        loc.Name,
		Address:     loc.Address,
		City:        loc.City,
		State:       loc.State,
		Zip:         loc.Zip,
		Phone:       loc.Phone,
		Hours:       loc.Hours,
		Description: loc.Description,
		HasReviews:  loc.PlaceID != "",
	}
	if loc.Coordinates != nil {
		resp.Coordinates = &coordinatesResponse{Lat: loc.Coordinates.Lat, Lng: loc.Coordinates.Lng}
	}
	return resp
}

func buildProductResponse(p catalog.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Details:     p.Details,
		Featured:    p.Featured,
	}
}

func (h *Handler) locationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		locations := catalog.Locations()
		out := make([]locationResponse, 0, len(locations))
		for _, loc := range locations {
			out = append(out, buildLocationResponse(loc))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"locations": out})
	}
}

func (h *Handler) locationDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := catalog.LocationBySlug(chi.URLParam(r, "slug"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{
				"error": "unknown location",
			})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildLocationResponse(loc))
	}
}

func (h *Handler) productListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := catalog.Products()
		if category := r.URL.Query().Get("category"); category != "" {
			products = catalog.ProductsByCategory(category)
		}
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, buildProductResponse(p))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"products": out})
	}
}

func (h *Handler) productDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := catalog.ProductBySlug(chi.URLParam(r, "slug"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{
				"error": "unknown product",
			})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildProductResponse(p))
	}
}

package public

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rushnrelax/storefront-api/internal/agegate"
	"github.com/rushnrelax/storefront-api/internal/interfaces/http/common"
)

// verifiedFlagValue is the literal persisted when a visitor passes the
// gate. Any other cookie value means unverified.
const verifiedFlagValue = "true"

// cookieStore adapts the verification flag cookie to
// agegate.VerificationStore for the duration of one request.
type cookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	name   string
	maxAge int
	secure bool
}

func (s *cookieStore) Verified() (bool, error) {
	c, err := s.r.Cookie(s.name)
	if errors.Is(err, http.ErrNoCookie) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.Value == verifiedFlagValue, nil
}

func (s *cookieStore) SetVerified(verified bool) error {
	cookie := &http.Cookie{
		Name:     s.name,
		Path:     "/",
		HttpOnly: false,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if verified {
		cookie.Value = verifiedFlagValue
		cookie.MaxAge = s.maxAge
	} else {
		cookie.MaxAge = -1
	}
	http.SetCookie(s.w, cookie)
	return nil
}

func (h *Handler) newCookieStore(w http.ResponseWriter, r *http.Request) *cookieStore {
	return &cookieStore{
		r:      r,
		w:      w,
		name:   h.cookieName,
		maxAge: int(h.cookieMaxAge.Seconds()),
		secure: h.cookieSecure,
	}
}

type ageStatusResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}

type ageVerifyRequest struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

// ageStatusHandler reports whether the current visitor has passed the gate.
func (h *Handler) ageStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gate := agegate.New(h.newCookieStore(w, r))
		common.WriteJSON(h.logger, w, http.StatusOK, ageStatusResponse{
			Verified: gate.Status() == agegate.StatusVerified,
		})
	}
}

// ageVerifyHandler runs one submit attempt of the age gate. Submitted
// values pass through the same digit filter and length caps as keystroke
// input before validation. Success sets the persistent flag cookie; a
// validation failure returns the exact gate message.
func (h *Handler) ageVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ageVerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": "invalid JSON payload",
			})
			return
		}

		gate := agegate.New(h.newCookieStore(w, r), agegate.WithClock(h.now))
		gate.OnVerified(func() {
			if h.logger != nil {
				h.logger.Printf("age verification passed")
			}
		})

		if gate.Status() == agegate.StatusVerified {
			common.WriteJSON(h.logger, w, http.StatusOK, ageStatusResponse{Verified: true})
			return
		}

		form := gate.Form()
		form.SetValue(agegate.FieldMonth, req.Month)
		form.SetValue(agegate.FieldDay, req.Day)
		form.SetValue(agegate.FieldYear, req.Year)

		if err := gate.Submit(); err != nil {
			var verr *agegate.ValidationError
			if errors.As(err, &verr) {
				common.WriteJSON(h.logger, w, http.StatusUnprocessableEntity, ageStatusResponse{
					Verified: false,
					Message:  verr.Message,
				})
				return
			}
			// The flag cookie could not be written; the session is still
			// verified for this response.
			if h.logger != nil {
				h.logger.Printf("failed to persist verification flag: %v", err)
			}
		}

		common.WriteJSON(h.logger, w, http.StatusOK, ageStatusResponse{Verified: true})
	}
}

// RequireVerified blocks content routes until the visitor has passed the
// age gate. An unreadable flag counts as unverified.
func (h *Handler) RequireVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := &cookieStore{r: r, name: h.cookieName}
		verified, err := store.Verified()
		if err != nil || !verified {
			common.WriteJSON(h.logger, w, http.StatusForbidden, ageStatusResponse{
				Verified: false,
				Message:  agegate.MsgUnderMinimumAge,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

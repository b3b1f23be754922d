package public

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rushnrelax/storefront-api/internal/contact"
	"github.com/rushnrelax/storefront-api/internal/interfaces/http/common"
)

// Contact form status messages shown to the visitor.
const (
	msgContactInvalid   = "Please check the form for errors."
	msgContactFailed    = "Failed to submit. Please try again or contact us directly."
	msgContactSubmitted = "Thank you! Your message has been sent successfully."
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type contactResponse struct {
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// contactHandler stores a contact form submission and notifies the
// operator channel best-effort. Webhook failures are logged, never
// surfaced to the visitor.
func (h *Handler) contactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, contactResponse{
				Message: msgContactInvalid,
			})
			return
		}

		sub := contact.Submission{
			Name:        strings.TrimSpace(req.Name),
			Email:       strings.TrimSpace(req.Email),
			Phone:       strings.TrimSpace(req.Phone),
			Message:     strings.TrimSpace(req.Message),
			SubmittedAt: h.now(),
		}

		if fieldErrors := sub.Validate(); len(fieldErrors) > 0 {
			common.WriteJSON(h.logger, w, http.StatusUnprocessableEntity, contactResponse{
				Message:     msgContactInvalid,
				FieldErrors: fieldErrors,
			})
			return
		}

		stored, err := h.contacts.Insert(r.Context(), sub)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("failed to store contact submission: %v", err)
			}
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, contactResponse{
				Message: msgContactFailed,
			})
			return
		}

		h.notifyContactReceipt(r.Context(), stored)

		common.WriteJSON(h.logger, w, http.StatusCreated, contactResponse{
			Message: msgContactSubmitted,
		})
	}
}

func (h *Handler) notifyContactReceipt(ctx context.Context, sub contact.Submission) {
	if h.notifyWebhook == "" || h.httpClient == nil {
		return
	}

	var builder strings.Builder
	builder.WriteString("New contact submission\n")
	builder.WriteString(fmt.Sprintf("- Name: %s\n", sub.Name))
	builder.WriteString(fmt.Sprintf("- Email: %s\n", sub.Email))
	if sub.Phone != "" {
		builder.WriteString(fmt.Sprintf("- Phone: %s\n", sub.Phone))
	}
	builder.WriteString(fmt.Sprintf("- Message: %s\n", sub.Message))

	payload, err := json.Marshal(map[string]string{"text": builder.String()})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.notifyWebhook, bytes.NewReader(payload))
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("failed to build contact notification: %v", err)
		}
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("contact notification failed: %v", err)
		}
		return
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode >= http.StatusBadRequest && h.logger != nil {
		h.logger.Printf("contact notification returned HTTP %d", res.StatusCode)
	}
}

package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contact   *services.ContactService
}

func newContactHandler(contact *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()
	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contact:   contact,
	}
}

// submit forwards a contact form inquiry to the firm
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param inquiry body services.Inquiry true "Inquiry"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid field"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Email delivery failed"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Inbox not configured"
// @Router /contact [post]
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inquiry services.Inquiry
		if err := decodeJSON(w, r, &inquiry); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contact.Submit(r.Context(), inquiry); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("service", inquiry.Service).Msg("contact inquiry forwarded")
		h.responder.WriteJSONStatus(w, http.StatusAccepted, MessageResponse{
			Status:  "success",
			Message: "Thank you for your message. We will get back to you shortly.",
		})
	}
}

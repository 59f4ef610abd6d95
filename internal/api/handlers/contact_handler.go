package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-labs/portfolio/internal/api/types"
	"github.com/folio-labs/portfolio/internal/api/validators"
	"github.com/folio-labs/portfolio/internal/services"
	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

const (
	contactSuccess = "Message sent successfully"
	contactFailure = "Failed to send message"

	maxContactBody = 64 << 10
)

type ContactHandler struct {
	svc services.ContactService
}

func NewContactHandler(svc services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit godoc
// @Summary      Submit the contact form
// @Description  Stores the message and emails the site owner. Both steps run; either failing fails the request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactRequest  true  "Contact form"
// @Success      200   {object}  types.MessageResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req types.ContactRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid json"})
		return
	}
	if err := validators.Check(req); err != nil {
		var ae *appErr.AppError
		msg := err.Error()
		if errors.As(err, &ae) {
			msg = ae.Message
		}
		writeJSON(w, types.StatusFor(err), types.ErrorResponse{Error: msg})
		return
	}

	_, err := h.svc.Submit(r.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, contactFailure, err)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: contactSuccess})
}

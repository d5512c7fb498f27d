package controllers

import (
	"errors"
	"folio/internal/providers"
	"folio/internal/services"
	"net/http"
)

type ContactController struct {
	logger  providers.Logger
	contact services.ContactServiceInterface
}

func NewContactController(logger providers.Logger, contact services.ContactServiceInterface) *ContactController {
	return &ContactController{logger: logger, contact: contact}
}

func (cc *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var form services.ContactForm
	if err := decodeBody(w, r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := cc.contact.Submit(r.Context(), form)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNoRecipient):
		writeError(w, http.StatusServiceUnavailable, err)
	case err != nil:
		cc.logger.Errorf(providers.TypePost, "Contact submission failed: %s", err)
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

package controllers

import (
	"net/http"

	"github.com/RitikRK96/esnan-digital/api/responses"
	"github.com/RitikRK96/esnan-digital/api/validators"
	contactsvc "github.com/RitikRK96/esnan-digital/internal/contact"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
	"github.com/RitikRK96/esnan-digital/pkg/logger"
)

// ContactSubmit stores a contact-form submission. Public endpoint.
func ContactSubmit(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var body contactsvc.SubmitRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

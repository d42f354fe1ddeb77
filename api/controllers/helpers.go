package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/RitikRK96/esnan-digital/api/middleware"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
)

// currentUserID pulls the authenticated user id seeded by the Auth
// middleware. A missing or malformed id means the route was mounted without
// the middleware, which is a server bug, not a client error.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse user id")
	}
	return userID, nil
}

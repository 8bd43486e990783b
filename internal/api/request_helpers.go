package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/api/middleware"
	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// A missing or malformed value cannot name an existing entity, so it is
// reported as notFound, wrapped together with domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string, notFound error) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q: %w", notFound, paramName, pathParam, domain.ErrInvalidID)
	}
	return id, nil
}

// getPathString extracts a path parameter. chi matches against RawPath
// when the request has one, leaving the parameter percent-encoded; only
// then is it unescaped, so already-decoded values are never decoded twice.
func getPathString(r *http.Request, paramName string) string {
	value := chi.URLParam(r, paramName)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// respondDecodeError writes the response for a body DecodeJSON rejected.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, shared.ErrBodyTooLarge) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
}

// logActingUser records requests where the authenticated user operates on
// another user's cart or orders. Such requests are still served.
func logActingUser(r *http.Request, target string) {
	actor, ok := middleware.GetUsername(r)
	if !ok || actor == target {
		return
	}
	logger.FromContext(r.Context()).Info("request acts on another user's account",
		"auth_username", actor,
		"target_username", target,
		"path", r.URL.Path)
}

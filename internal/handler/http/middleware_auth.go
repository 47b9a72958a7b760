package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/MKhiriev/go-r2base/internal/response"
	"github.com/MKhiriev/go-r2base/internal/service"
	"github.com/MKhiriev/go-r2base/internal/utils"
)

// tokenQueryParam is the query parameter checked when the request carries
// no Authorization header.
const tokenQueryParam = "token"

// Auth is an HTTP middleware that requires a valid access token.
//
// The token is taken from "Authorization: Bearer <token>" or, without that
// header, from the "token" query parameter. It is verified by the
// AuthService registered under service.AuthServiceName; on success the
// payload is stored in the request context (see
// utils.GetTokenPayloadFromContext) and the request proceeds.
//
// Every rejection is rendered by the error stage as Unauthorized, except a
// missing auth service, which is an InternalServerError.
func (h *Handler) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		auth, err := registry.Get[service.AuthService](h.registry, service.AuthServiceName)
		if err != nil {
			log.Err(err).Msg("auth service is not registered")
			response.Write(w, r, fmt.Errorf("auth middleware: %w", err))
			return
		}

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("no usable access token")
			response.Write(w, r, response.Unauthorized(err.Error()).WithCause(err))
			return
		}

		payload, err := auth.VerifyAccessToken(r.Context(), token)
		if err != nil {
			response.Write(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithTokenPayload(r.Context(), payload)))
	})
}

// TokenFromRequest returns the access token the Auth middleware would use.
// Handlers that revoke the current token (logout) use it.
func TokenFromRequest(r *http.Request) (string, error) {
	return tokenFromRequest(r)
}

func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return getTokenFromAuthHeader(header)
	}

	if token := r.URL.Query().Get(tokenQueryParam); token != "" {
		return token, nil
	}

	return "", service.ErrNoToken
}

// getTokenFromAuthHeader extracts the token from an "Authorization" header
// value of the form "Bearer <token>". The scheme is case-insensitive.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

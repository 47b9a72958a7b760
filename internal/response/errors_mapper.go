package response

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-r2base/internal/registry"
	"github.com/MKhiriev/go-r2base/internal/service"
	"github.com/MKhiriev/go-r2base/internal/store"
	"github.com/MKhiriev/go-r2base/internal/validation"
)

// errorKinds maps known sentinels to kinds. The first target matched by
// errors.Is wins, so an error wrapping several sentinels always maps the
// same way.
var errorKinds = []struct {
	target error
	kind   Kind
}{
	{service.ErrNoToken, KindUnauthorized},
	{service.ErrTokenVerificationFailed, KindUnauthorized},
	{service.ErrTokenExpired, KindUnauthorized},
	{service.ErrTokenRevoked, KindUnauthorized},
	{service.ErrNoJWTConfig, KindInternalServerError},
	{service.ErrRevocationDisabled, KindInternalServerError},
	{service.ErrTokenCreationFailed, KindInternalServerError},

	{store.ErrRedisUnavailable, KindInternalServerError},

	{validation.ErrUnknownRule, KindInternalServerError},
	{validation.ErrInvalidRule, KindInternalServerError},

	{registry.ErrMissingServices, KindInternalServerError},
	{registry.ErrServiceNotFound, KindInternalServerError},

	{context.DeadlineExceeded, KindGatewayTimeout},
}

// FromError converts any error into the *Error the error stage renders.
//
// An *Error anywhere in the chain is used as is. Validation failures become
// UnprocessableEntity with the per-field messages as message. Known
// sentinel errors map to their kind; client-side kinds carry the sentinel
// text as message, server-side kinds only the default message. Everything
// else is an InternalServerError that does not reveal err.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return UnprocessableEntity(verrs.ByField()).WithType(TypeValidation).WithCause(err)
	}

	for _, m := range errorKinds {
		if errors.Is(err, m.target) {
			var msg any
			if m.kind.Code() < 500 {
				msg = m.target.Error()
			}
			return New(m.kind, msg).WithCause(err)
		}
	}

	return InternalServerError(nil).WithCause(err)
}

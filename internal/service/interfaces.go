package service

import (
	"context"

	"github.com/MKhiriev/go-r2base/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues, verifies and revokes access tokens.
type AuthService interface {
	IssueAccessToken(ctx context.Context, claims map[string]any) (models.IssuedToken, error)
	VerifyAccessToken(ctx context.Context, token string) (models.TokenPayload, error)
	RevokeAccessToken(ctx context.Context, token string) error
}

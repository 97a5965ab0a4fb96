package dto

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// CreateAPITokenRequest is the body for minting a new API token.
// ExpiresIn is a duration in nanoseconds as serialized by time.Duration;
// a nil value means the token never expires.
type CreateAPITokenRequest struct {
	Name      string         `json:"name" binding:"required,min=3,max=100"`
	ExpiresIn *time.Duration `json:"expiresIn,omitempty"`
}

// APITokenResponse describes a token without exposing its secret.
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse carries the plaintext token. It is returned
// exactly once, at creation time.
type CreateAPITokenResponse struct {
	TokenString string           `json:"token"`
	Details     APITokenResponse `json:"details"`
}

type ListAPITokensResponse []APITokenResponse

func ToAPITokenResponse(token domain.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:         token.ID,
		Name:       token.Name,
		LastUsedAt: token.LastUsedAt,
		ExpiresAt:  token.ExpiresAt,
		CreatedAt:  token.CreatedAt,
	}
}

func ToAPITokenResponseList(tokens []domain.APIToken) ListAPITokensResponse {
	out := make(ListAPITokensResponse, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, ToAPITokenResponse(token))
	}
	return out
}

func ToCreateAPITokenResponse(tokenStr string, token domain.APIToken) CreateAPITokenResponse {
	return CreateAPITokenResponse{
		TokenString: tokenStr,
		Details:     ToAPITokenResponse(token),
	}
}

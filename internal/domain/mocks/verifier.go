package mocks

import (
	"errors"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

// TokenVerifier is a mock implementation of ports.TokenVerifier.
// It accepts exactly ValidToken.
type TokenVerifier struct {
	ValidToken string
	Subject    string
}

// Verify accepts the configured token and rejects anything else.
func (m *TokenVerifier) Verify(token string) (*entities.Principal, error) {
	if token == "" || token != m.ValidToken {
		return nil, errors.New("invalid token")
	}
	return &entities.Principal{Subject: m.Subject}, nil
}

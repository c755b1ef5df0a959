package ports

import "github.com/ersonp/mdchat/internal/domain/entities"

// TokenVerifier validates bearer tokens presented to the HTTP API.
type TokenVerifier interface {
	Verify(token string) (*entities.Principal, error)
}

package entities

import "time"

// Principal identifies the caller behind a verified bearer token.
type Principal struct {
	Subject   string
	TokenID   string
	ExpiresAt time.Time
}

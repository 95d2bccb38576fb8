package auth

import "time"

// Strategy issues and verifies the signed token carried in the browser session cookie.
type Strategy interface {
	NewSessionID() string
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

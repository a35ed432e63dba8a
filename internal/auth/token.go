package auth

import (
	"context"
	"encoding/base64"
	"errors"
)

// Static errors.
var (
	ErrNoCredentials = errors.New("no credentials configured")
)

// CredentialProvider supplies the Authorization header value for outgoing
// requests. TeamCity accepts either a Bearer access token or basic auth
// against the /httpAuth URL prefix; guest access sends nothing.
type CredentialProvider interface {
	// AuthorizationHeader returns the full header value, e.g.
	// "Bearer <token>". An empty value means no header is sent.
	AuthorizationHeader(ctx context.Context) (string, error)

	// PathPrefix returns the URL prefix the scheme requires ("" for token
	// auth, "/httpAuth" for basic, "/guestAuth" for guest access).
	PathPrefix() string
}

// TokenProvider authenticates with a TeamCity access token.
type TokenProvider struct {
	token string
}

// NewTokenProvider creates a Bearer token provider.
func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{token: token}
}

// AuthorizationHeader implements CredentialProvider.
func (p *TokenProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoCredentials
	}

	return "Bearer " + p.token, nil
}

// PathPrefix implements CredentialProvider.
func (p *TokenProvider) PathPrefix() string {
	return ""
}

// BasicProvider authenticates with username/password basic auth.
type BasicProvider struct {
	username string
	password string
}

// NewBasicProvider creates a basic auth provider.
func NewBasicProvider(username, password string) *BasicProvider {
	return &BasicProvider{username: username, password: password}
}

// AuthorizationHeader implements CredentialProvider.
func (p *BasicProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	if p.username == "" {
		return "", ErrNoCredentials
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(p.username + ":" + p.password))

	return "Basic " + credentials, nil
}

// PathPrefix implements CredentialProvider.
func (p *BasicProvider) PathPrefix() string {
	return "/httpAuth"
}

// GuestProvider authenticates as the guest user.
type GuestProvider struct{}

// NewGuestProvider creates a guest access provider.
func NewGuestProvider() *GuestProvider {
	return &GuestProvider{}
}

// AuthorizationHeader implements CredentialProvider.
func (p *GuestProvider) AuthorizationHeader(ctx context.Context) (string, error) {
	return "", nil
}

// PathPrefix implements CredentialProvider.
func (p *GuestProvider) PathPrefix() string {
	return "/guestAuth"
}

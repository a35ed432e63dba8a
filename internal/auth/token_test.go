package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/internal/auth"
)

func TestTokenProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewTokenProvider("my-token")

	header, err := provider.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", header)
	assert.Empty(t, provider.PathPrefix())
}

func TestTokenProvider_EmptyToken(t *testing.T) {
	t.Parallel()

	provider := auth.NewTokenProvider("")

	_, err := provider.AuthorizationHeader(context.Background())
	require.ErrorIs(t, err, auth.ErrNoCredentials)
}

func TestBasicProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewBasicProvider("user", "pass")

	header, err := provider.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	// base64("user:pass")
	assert.Equal(t, "Basic dXNlcjpwYXNz", header)
	assert.Equal(t, "/httpAuth", provider.PathPrefix())
}

func TestBasicProvider_EmptyUsername(t *testing.T) {
	t.Parallel()

	provider := auth.NewBasicProvider("", "pass")

	_, err := provider.AuthorizationHeader(context.Background())
	require.ErrorIs(t, err, auth.ErrNoCredentials)
}

func TestGuestProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewGuestProvider()

	header, err := provider.AuthorizationHeader(context.Background())
	require.NoError(t, err)
	assert.Empty(t, header)
	assert.Equal(t, "/guestAuth", provider.PathPrefix())
}

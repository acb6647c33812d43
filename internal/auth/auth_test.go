package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticator(t *testing.T) {
	a, err := NewStaticAuthenticator("admin", "admin")
	require.NoError(t, err)
	ctx := context.Background()

	p, err := a.Authenticate(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, Principal{Username: "admin", Role: RoleAdmin}, p)

	for _, tc := range [][2]string{{"admin", "wrong"}, {"root", "admin"}, {"", ""}, {"Admin", "admin"}} {
		_, err := a.Authenticate(ctx, tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%v", tc)
	}
}

func TestStaticAuthenticatorRequiresCredentials(t *testing.T) {
	_, err := NewStaticAuthenticator("", "x")
	assert.Error(t, err)
}

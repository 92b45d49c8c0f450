package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("s3cret")
	issuer.now = func() time.Time { return time.Unix(1700000000, 0) }

	signed, err := issuer.Issue("665f1c2e8b3e4a0012345678", "ash@example.com", "Ash Ketchum")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2e8b3e4a0012345678", claims.UserID)
	assert.Equal(t, "ash@example.com", claims.Email)
	assert.Equal(t, "Ash Ketchum", claims.FullName)
	assert.Equal(t, int64(1700000000), claims.IssuedAt.Unix())
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	signed, err := NewIssuer("one").Issue("id", "a@b.c", "A")
	require.NoError(t, err)

	_, err = NewIssuer("two").Parse(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

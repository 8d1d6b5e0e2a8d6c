package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h, err := Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", h)

	assert.True(t, Verify("secret1", h))
	assert.False(t, Verify("secret2", h))
	assert.False(t, Verify("", h))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h1, err := Hash("secret1")
	require.NoError(t, err)
	h2, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("secret1", h1))
	assert.True(t, Verify("secret1", h2))
}

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("RahasiaBanget123")
	require.NoError(t, err)
	require.NotEqual(t, "RahasiaBanget123", hashed)

	assert.True(t, CheckPasswordHash("RahasiaBanget123", hashed))
	assert.False(t, CheckPasswordHash("salah", hashed))
}

func TestHashPasswordProducesDifferentSalts(t *testing.T) {
	first, err := HashPassword("RahasiaBanget123")
	require.NoError(t, err)
	second, err := HashPassword("RahasiaBanget123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

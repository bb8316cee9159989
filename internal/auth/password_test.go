package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)

	assert.NoError(t, ComparePassword(hashed, "s3cret!"))
	assert.Error(t, ComparePassword(hashed, "S3cret!"))
	assert.Error(t, ComparePassword("not-a-hash", "s3cret!"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	a, err := HashPassword("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	for _, password := range []string{"secret123", "a", "Pässphräse 123!", ""} {
		digest, err := hasher.Hash(ctx, password)
		require.NoError(t, err)
		assert.NotEqual(t, password, digest)

		ok, err := hasher.Verify(ctx, password, digest)
		require.NoError(t, err)
		assert.True(t, ok, "password %q should verify", password)
	}
}

func TestHasher_VerifyMismatch(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	digest, err := hasher.Hash(ctx, "secret123")
	require.NoError(t, err)

	ok, err := hasher.Verify(ctx, "secret124", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify(ctx, "", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_SaltedDigests(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "secret123")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_MalformedDigest(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 1)

	ok, err := hasher.Verify(context.Background(), "secret123", "not-a-bcrypt-digest")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0, 1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1, 1).cost)

	hasher := NewHasher(5, 1)
	digest, err := hasher.Hash(context.Background(), "secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHasher_CancelledWhileWaiting(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 1)
	require.NoError(t, hasher.sem.Acquire(context.Background(), 1))
	defer hasher.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "secret123")
	assert.ErrorIs(t, err, context.Canceled)

	ok, err := hasher.Verify(ctx, "secret123", "digest")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

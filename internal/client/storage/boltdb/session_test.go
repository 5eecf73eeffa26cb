package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospolov/fieldsync/internal/client/storage"
)

func TestSaveGetToken(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveToken(ctx, "token-abc"))

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestGetTokenNotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteToken(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveToken(ctx, "token-abc"))
	require.NoError(t, store.DeleteToken(ctx))

	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/muzeyka/artsearch.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStorageSaveAndList(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.jsonl")

	fs, err := NewFileStorage(filePath, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, fs.Close())
	}()

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, fs.Save(ctx, models.SearchRecord{
			UUID:      fmt.Sprintf("id-%d", i),
			Query:     fmt.Sprintf("&size=12&page=%d", i),
			Records:   i,
			CreatedAt: time.Now().UTC(),
		}))
	}

	history, err := fs.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "id-3", history[0].UUID)
}

func TestFileStorageReload(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.jsonl")
	ctx := context.Background()

	// Первый экземпляр пишет записи
	fs, err := NewFileStorage(filePath, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, fs.Save(ctx, models.SearchRecord{
		UUID:      "persisted-id",
		Query:     "&size=12&medium=1|2",
		Records:   2,
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, fs.Close())

	// Второй экземпляр загружает данные из файла
	reloaded, err := NewFileStorage(filePath, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reloaded.Close())
	}()

	history, err := reloaded.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "persisted-id", history[0].UUID)
	assert.Equal(t, "&size=12&medium=1|2", history[0].Query)
	assert.Equal(t, 2, history[0].Records)
}

func TestFileStorageDuplicate(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.jsonl")

	fs, err := NewFileStorage(filePath, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, fs.Close())
	}()

	ctx := context.Background()
	record := models.SearchRecord{UUID: "same-id", Query: "&size=12"}
	require.NoError(t, fs.Save(ctx, record))
	assert.ErrorIs(t, fs.Save(ctx, record), ErrDuplicateRecord)
}

func TestFileStorageCheckConnection(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "history.jsonl")

	fs, err := NewFileStorage(filePath, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, fs.Close())
	}()

	assert.NoError(t, fs.CheckConnection(context.Background()))
}

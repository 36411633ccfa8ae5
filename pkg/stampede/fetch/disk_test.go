package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	data, err := BytesFromDisk(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestBytesFromDisk_Missing(t *testing.T) {
	t.Parallel()

	_, err := BytesFromDisk(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Equal(t, KindFetch, stampede.KindOf(err))
}

func TestBytesFromDisk_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BytesFromDisk(ctx, "irrelevant")
	assert.ErrorIs(t, err, context.Canceled)
}

package store_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/ib-77/stampede/pkg/stampede/drive"
	"github.com/ib-77/stampede/pkg/stampede/store"
)

func TestBlobAdapters_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	write := store.BlobWriter(bucket)
	load := store.BlobLoader(bucket)
	skip := store.BlobSkip(bucket)

	ok, err := skip(ctx, "items/a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, write(ctx, []byte("payload"), "items/a"))

	ok, err = skip(ctx, "items/a")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := load(ctx, "items/a")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestBlobLoader_MissingKeyIsTagged(t *testing.T) {
	t.Parallel()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := store.BlobLoader(bucket)(context.Background(), "absent")
	require.Error(t, err)
	assert.Equal(t, store.KindStore, stampede.KindOf(err))
}

// A whole pipeline run against bucket-backed collaborators: sources in one
// bucket, destinations and skip detection in another.
func TestBlobBackedPipeline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := memblob.OpenBucket(nil)
	defer src.Close()
	dst := memblob.OpenBucket(nil)
	defer dst.Close()

	inputs := []string{"a.txt", "b.txt", "c.txt"}
	for _, key := range inputs {
		require.NoError(t, src.WriteAll(ctx, key, []byte("body of "+key), nil))
	}

	upper := func(_ context.Context, obj []byte) ([]byte, error) {
		return bytes.ToUpper(obj), nil
	}
	p := drive.New(drive.Config[[]byte]{
		Load:   store.BlobLoader(src),
		Ops:    []stampede.OpFunc[[]byte]{upper},
		Write:  store.BlobWriter(dst),
		Skip:   store.BlobSkip(dst),
		Logger: slog.New(slog.NewTextHandler(&strings.Builder{}, nil)),
	})

	pathFn := func(input string) (string, error) { return "processed/" + input, nil }

	report, err := p.Run(ctx, inputs, pathFn, 3, stampede.CatchAll())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Successes())

	data, err := dst.ReadAll(ctx, "processed/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "BODY OF A.TXT", string(data))

	second, err := p.Run(ctx, inputs, pathFn, 3, stampede.CatchAll())
	require.NoError(t, err)
	assert.Equal(t, 3, second.Skips(), "existing blobs short-circuit the re-run")
}

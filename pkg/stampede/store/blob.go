package store

import (
	"context"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

// BlobLoader adapts a bucket to a LoadFunc keyed by blob name.
func BlobLoader(bucket *blob.Bucket) stampede.LoadFunc[[]byte] {
	return func(ctx context.Context, key string) ([]byte, error) {
		data, err := bucket.ReadAll(ctx, key)
		if err != nil {
			return nil, stampede.NewFault(KindStore, errors.Wrapf(err, "read blob %s", key))
		}
		return data, nil
	}
}

// BlobWriter adapts a bucket to a WriteFunc keyed by blob name. Bucket
// writes are all-or-nothing: content becomes visible only once the write
// commits, so concurrent writers to an identical key are safe.
func BlobWriter(bucket *blob.Bucket) stampede.WriteFunc[[]byte] {
	return func(ctx context.Context, data []byte, key string) error {
		if err := bucket.WriteAll(ctx, key, data, nil); err != nil {
			return stampede.NewFault(KindStore, errors.Wrapf(err, "write blob %s", key))
		}
		return nil
	}
}

// BlobSkip adapts a bucket existence check to a SkipFunc.
func BlobSkip(bucket *blob.Bucket) stampede.SkipFunc {
	return func(ctx context.Context, key string) (bool, error) {
		ok, err := bucket.Exists(ctx, key)
		if err != nil {
			return false, stampede.NewFault(KindStore, errors.Wrapf(err, "probe blob %s", key))
		}
		return ok, nil
	}
}

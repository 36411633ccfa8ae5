package fetch

import (
	"context"
	"os"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/pkg/errors"
)

// KindFetch tags errors raised while materializing an input.
const KindFetch = stampede.Kind("fetch")

// BytesFromDisk loads the raw contents of a local file.
func BytesFromDisk(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stampede.NewFault(KindFetch, errors.Wrapf(err, "read %s", path))
	}
	return data, nil
}

package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/pkg/errors"
)

// KindStore tags errors raised while checking or persisting a destination.
const KindStore = stampede.Kind("store")

// ExistsOnDisk reports whether the destination path already exists.
func ExistsOnDisk(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, stampede.NewFault(KindStore, errors.Wrapf(err, "stat %s", path))
}

// WriteBytesToDisk persists data at path atomically: the bytes go to a
// unique temp file in the destination directory, which is then renamed
// into place. Concurrent writers to an identical path never expose partial
// content; the last rename wins.
func WriteBytesToDisk(ctx context.Context, data []byte, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stampede.NewFault(KindStore, errors.Wrapf(err, "mkdir %s", dir))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return stampede.NewFault(KindStore, errors.Wrapf(err, "temp file for %s", path))
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return stampede.NewFault(KindStore, errors.Wrapf(err, "write %s", path))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return stampede.NewFault(KindStore, errors.Wrapf(err, "close %s", path))
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return stampede.NewFault(KindStore, errors.Wrapf(err, "rename into %s", path))
	}
	return nil
}

package drive

import (
	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/ib-77/stampede/pkg/stampede/fetch"
	"github.com/ib-77/stampede/pkg/stampede/store"
)

// NewDownload returns a byte pipeline that fetches each input URL, applies
// ops in order, and writes the result atomically to its resolved path,
// skipping destinations that already exist.
func NewDownload(ops ...stampede.OpFunc[[]byte]) *Pipeline[[]byte] {
	return New(Config[[]byte]{
		Load:  fetch.BytesFromURL,
		Ops:   ops,
		Write: store.WriteBytesToDisk,
		Skip:  store.ExistsOnDisk,
	})
}

// NewCopy returns a byte pipeline that reads local files, applies ops in
// order, and writes the result atomically to its resolved path, skipping
// destinations that already exist.
func NewCopy(ops ...stampede.OpFunc[[]byte]) *Pipeline[[]byte] {
	return New(Config[[]byte]{
		Load:  fetch.BytesFromDisk,
		Ops:   ops,
		Write: store.WriteBytesToDisk,
		Skip:  store.ExistsOnDisk,
	})
}

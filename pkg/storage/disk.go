// Package storage stores uploaded files on a local directory or an
// S3-compatible bucket behind one Disk interface.
//
//	disks, _ := storage.Connect(ctx)
//	d := disks.Default()
//	_ = d.Put(ctx, "products/7/front.png", file)
//	url := d.URL("products/7/front.png")
package storage

import (
	"context"
	"io"
)

// Disk is implemented by every storage driver.
type Disk interface {
	// Put writes r to path, creating parent directories as needed.
	Put(ctx context.Context, path string, r io.Reader) error

	// Get opens the file at path. Caller must close it.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) bool

	// Delete removes a file. Missing files are not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for path.
	URL(path string) string
}

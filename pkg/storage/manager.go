package storage

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// Disks holds the configured drivers and the name of the default one.
type Disks struct {
	disks       map[string]Disk
	defaultName string
}

// Connect always boots the local disk and boots S3 when S3_BUCKET is set.
// A misconfigured S3 disk is logged and skipped; the default falls back to
// local in that case.
func Connect(ctx context.Context) (*Disks, error) {
	d := &Disks{
		disks:       map[string]Disk{"local": NewLocalDisk(config.StorageLocalRoot(), config.StorageURL())},
		defaultName: config.StorageDefault(),
	}

	if config.StorageS3Bucket() != "" {
		s3d, err := NewS3Disk(ctx)
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			d.disks["s3"] = s3d
		}
	}

	if _, ok := d.disks[d.defaultName]; !ok {
		if d.defaultName != "local" {
			logger.Warn("storage: default disk unavailable, using local", "disk", d.defaultName)
		}
		d.defaultName = "local"
	}
	return d, nil
}

// NewDisks builds a set from explicit drivers; the first name is the default.
func NewDisks(defaultName string, disks map[string]Disk) *Disks {
	return &Disks{disks: disks, defaultName: defaultName}
}

// Use returns the named disk.
func (d *Disks) Use(name string) (Disk, error) {
	disk, ok := d.disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return disk, nil
}

// Default returns the STORAGE_DISK disk.
func (d *Disks) Default() Disk {
	return d.disks[d.defaultName]
}

// Local returns the local disk when one is configured, so the HTTP kernel
// can serve its files.
func (d *Disks) Local() (*LocalDisk, bool) {
	l, ok := d.disks["local"].(*LocalDisk)
	return l, ok
}

//go:build tinygo

package pico

import (
	"fmt"
	"io"
	"machine"
	"os"

	"tinygo.org/x/tinyfs/littlefs"

	"github.com/vovakirdan/binary-breaker/internal/scorefile"
)

// FlashFS is a littlefs filesystem on the board's flash, past the program
// image.
type FlashFS struct {
	lfs *littlefs.LFS
}

var _ scorefile.FS = (*FlashFS)(nil)

// MountFlash mounts the filesystem, formatting the flash first if it holds
// none yet.
func MountFlash() (*FlashFS, error) {
	lfs := littlefs.New(machine.Flash)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 512,
		BlockCycles:   100,
	})

	if err := lfs.Mount(); err != nil {
		if err := lfs.Format(); err != nil {
			return nil, fmt.Errorf("pico: format flash: %w", err)
		}
		if err := lfs.Mount(); err != nil {
			return nil, fmt.Errorf("pico: mount flash: %w", err)
		}
	}
	return &FlashFS{lfs: lfs}, nil
}

// ReadFile implements scorefile.FS.
func (f *FlashFS) ReadFile(name string) ([]byte, error) {
	file, err := f.lfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// WriteFile implements scorefile.FS, replacing any previous content.
func (f *FlashFS) WriteFile(name string, data []byte) error {
	file, err := f.lfs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Remove implements scorefile.FS.
func (f *FlashFS) Remove(name string) error {
	return f.lfs.Remove(name)
}

package metadata

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ReadPacman reads the .PKGINFO of an Arch Linux package
func ReadPacman(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Detect compression from extension
	var r io.Reader
	switch {
	case strings.HasSuffix(path, ".pkg.tar.zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".pkg.tar.xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, err
		}
		r = xr
	case strings.HasSuffix(path, ".pkg.tar.gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(path, ".pkg.tar"):
		r = f
	default:
		return nil, fmt.Errorf("unsupported package format: %s", filepath.Base(path))
	}

	data, err := findPKGINFO(tar.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to extract .PKGINFO: %w", err)
	}

	info, err := parsePKGINFO(data)
	if err != nil {
		return nil, err
	}

	// pkgver carries the pkgrel suffix ("17.0.2.u8-1")
	if idx := strings.LastIndex(info.Version, "-"); idx > 0 {
		info.Release = info.Version[idx+1:]
	}

	return info, nil
}

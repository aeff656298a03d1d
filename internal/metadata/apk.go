package metadata

import (
	"archive/tar"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ReadApk reads the .PKGINFO of an Alpine package. APK files are
// concatenated gzip streams, which the reader consumes transparently.
func ReadApk(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	data, err := findPKGINFO(tar.NewReader(gr))
	if err != nil {
		return nil, fmt.Errorf("failed to extract PKGINFO: %w", err)
	}

	return parsePKGINFO(data)
}

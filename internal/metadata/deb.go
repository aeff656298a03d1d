package metadata

import (
	"archive/tar"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ReadDeb reads the control file of a .deb package
func ReadDeb(path string) (*Info, error) {
	control, err := extractControl(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract control: %w", err)
	}

	info, err := parseControl(control)
	if err != nil {
		return nil, fmt.Errorf("failed to parse control: %w", err)
	}
	if info.Version == "" {
		return nil, fmt.Errorf("control file has no Version field")
	}

	return info, nil
}

// extractControl extracts the control file from a .deb package
func extractControl(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// .deb files are ar archives starting with "!<arch>\n"
	magic := make([]byte, 8)
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, err
	}
	if string(magic) != "!<arch>\n" {
		return nil, fmt.Errorf("not an ar archive")
	}

	offset := int64(len(magic))
	for {
		// Read ar header (60 bytes)
		arHeader := make([]byte, 60)
		_, err := io.ReadFull(f, arHeader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ar header: %w", err)
		}

		// Name is space padded and may carry a trailing slash
		filename := strings.TrimRight(strings.TrimSpace(string(arHeader[0:16])), "/")

		size, err := strconv.ParseInt(strings.TrimSpace(string(arHeader[48:58])), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ar member size for %s: %w", filename, err)
		}
		offset += int64(len(arHeader))
		if size < 0 || size > stat.Size()-offset {
			return nil, fmt.Errorf("invalid ar member size %d for %s", size, filename)
		}

		if strings.HasPrefix(filename, "control.tar") {
			data := make([]byte, size)
			if _, err := io.ReadFull(f, data); err != nil {
				return nil, err
			}
			return extractControlFromTar(data, filename)
		}

		// Members are aligned to 2 bytes
		skip := size + size%2
		if _, err := f.Seek(skip, io.SeekCurrent); err != nil {
			return nil, err
		}
		offset += skip
	}

	return nil, fmt.Errorf("control.tar not found in package")
}

// extractControlFromTar extracts the control file from control.tar*
func extractControlFromTar(data []byte, filename string) ([]byte, error) {
	var r io.Reader = bytes.NewReader(data)

	switch {
	case strings.HasSuffix(filename, ".gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(filename, ".xz"):
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		r = xr
	case strings.HasSuffix(filename, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}

	tarReader := tar.NewReader(r)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if header.Name == "./control" || header.Name == "control" {
			return io.ReadAll(tarReader)
		}
	}

	return nil, fmt.Errorf("control file not found in %s", filename)
}

// parseControl parses the fields of a Debian control file that identify the package
func parseControl(data []byte) (*Info, error) {
	info := &Info{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()

		// Continuation lines only occur in fields we ignore
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Package":
			info.Name = value
		case "Version":
			info.Version = value
		case "Architecture":
			info.Architecture = value
		}
	}

	return info, scanner.Err()
}

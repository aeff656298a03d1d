package metadata

import (
	"archive/tar"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// findPKGINFO returns the .PKGINFO member of a package tarball
func findPKGINFO(tr *tar.Reader) ([]byte, error) {
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if header.Name == ".PKGINFO" {
			return io.ReadAll(tr)
		}
	}

	return nil, fmt.Errorf(".PKGINFO not found in package")
}

// parsePKGINFO parses the "key = value" format shared by Alpine and Arch packages
func parsePKGINFO(data []byte) (*Info, error) {
	info := &Info{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "pkgname":
			info.Name = value
		case "pkgver":
			info.Version = value
		case "arch":
			info.Architecture = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if info.Version == "" {
		return nil, fmt.Errorf(".PKGINFO has no pkgver")
	}

	return info, nil
}

package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// FileDigest holds the size and SHA-256 checksum of a package file
type FileDigest struct {
	SHA256 string
	Size   int64
}

// DigestFile streams a file through SHA-256
func DigestFile(path string) (*FileDigest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	h, err := newHash("sha256")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	return &FileDigest{
		SHA256: hex.EncodeToString(h.Sum(nil)),
		Size:   info.Size(),
	}, nil
}

// newHash returns the digest used for package ids (md5) or package files (sha256)
func newHash(hashType string) (hash.Hash, error) {
	switch hashType {
	case "md5":
		return md5.New(), nil
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash type: %s", hashType)
	}
}

// CalculateChecksum returns the hex encoded digest of data
func CalculateChecksum(data []byte, hashType string) (string, error) {
	h, err := newHash(hashType)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

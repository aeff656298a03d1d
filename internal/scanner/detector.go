package scanner

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ralt/pkgdisco/internal/models"
)

// Magic bytes for package detection
var (
	// Debian packages start with "!<arch>\ndebian"
	debMagic = []byte("!<arch>\ndebian")

	// RPM packages start with 0xED 0xAB 0xEE 0xDB
	rpmMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
	zipMagic  = []byte("PK\x03\x04")
	sevenZip  = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}

	// MSI installers are OLE compound files
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	cabMagic = []byte("MSCF")
)

// expectedMagic lists the accepted leading bytes per archive type. Types
// without an entry are accepted on their file ending alone.
var expectedMagic = map[models.ArchiveType][][]byte{
	models.ArchiveTarGz:  {gzipMagic},
	models.ArchiveTarXz:  {xzMagic},
	models.ArchiveZip:    {zipMagic},
	models.ArchiveApk:    {gzipMagic},
	models.ArchivePkgTar: {zstdMagic, xzMagic, gzipMagic},
	models.Archive7z:     {sevenZip},
	models.ArchiveMsi:    {oleMagic},
	models.ArchiveCab:    {cabMagic},
	models.ArchiveDeb:    {debMagic},
	models.ArchiveRpm:    {rpmMagic},
}

// DetectPackageType determines the format and archive type of a file based
// on its ending and magic bytes. Files whose content contradicts their ending
// are rejected with an error.
func DetectPackageType(path string) (Format, models.ArchiveType, error) {
	archiveType := models.ArchiveTypeFromFilename(filepath.Base(path))
	if archiveType == models.ArchiveUnknown {
		return FormatUnknown, archiveType, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, archiveType, err
	}
	defer f.Close()

	// Read first 512 bytes for magic byte detection
	header := make([]byte, 512)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, archiveType, err
	}
	header = header[:n]

	if magics, ok := expectedMagic[archiveType]; ok && !hasAnyPrefix(header, magics) {
		return FormatUnknown, archiveType, fmt.Errorf("content of %s does not look like %s", filepath.Base(path), archiveType)
	}

	switch archiveType {
	case models.ArchiveDeb:
		return FormatDeb, archiveType, nil
	case models.ArchiveRpm:
		return FormatRpm, archiveType, nil
	case models.ArchiveApk:
		return FormatApk, archiveType, nil
	case models.ArchivePkgTar:
		return FormatPacman, archiveType, nil
	default:
		return FormatArchive, archiveType, nil
	}
}

func hasAnyPrefix(header []byte, magics [][]byte) bool {
	for _, m := range magics {
		if bytes.HasPrefix(header, m) {
			return true
		}
	}
	return false
}

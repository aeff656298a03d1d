package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchitecture(t *testing.T) {
	tests := []struct {
		text    string
		arch    Architecture
		bitness Bitness
	}{
		{"amd64", ArchX64, Bit64},
		{"x86_64", ArchX64, Bit64},
		{"i686", ArchX86, Bit32},
		{"arm64", ArchAArch64, Bit64},
		{"armhf", ArchARM, Bit32},
		{"ppc64le", ArchPPC64LE, Bit64},
		{"mips", ArchUnknown, BitnessUnknown},
	}
	for _, tt := range tests {
		arch := ParseArchitecture(tt.text)
		assert.Equal(t, tt.arch, arch, tt.text)
		assert.Equal(t, tt.bitness, arch.Bitness(), tt.text)
	}
	assert.Equal(t, ArchAArch64, ParseArchitecture(ArchAArch64.String()))
}

func TestOperatingSystemLibC(t *testing.T) {
	assert.Equal(t, LibCGlibc, ParseOperatingSystem("linux").LibCType())
	assert.Equal(t, LibCMusl, ParseOperatingSystem("alpine").LibCType())
	assert.Equal(t, LibCCStdLib, ParseOperatingSystem("windows").LibCType())
	assert.Equal(t, LibCLibc, ParseOperatingSystem("darwin").LibCType())
	assert.Equal(t, LibCUnknown, OSUnknown.LibCType())
}

func TestArchiveTypeFromFilename(t *testing.T) {
	tests := map[string]ArchiveType{
		"zulu17.32.13-ca-jdk17.0.2-linux_x64.tar.gz":       ArchiveTarGz,
		"OpenJDK17U-jdk_x64_windows_hotspot_17.0.2_8.zip":  ArchiveZip,
		"java-17-amazon-corretto-jdk_17.0.2.8-1_amd64.deb": ArchiveDeb,
		"jdk17-openjdk-17.0.2.u8-1-x86_64.pkg.tar.zst":     ArchivePkgTar,
		"bellsoft-jdk17.0.2+9-linux-x64.TGZ":               ArchiveTarGz,
		"README.md":                                        ArchiveUnknown,
	}
	for filename, want := range tests {
		assert.Equal(t, want, ArchiveTypeFromFilename(filename), filename)
	}
	assert.Equal(t, ArchiveTarGz, ParseArchiveType("tar.gz"))
	assert.Equal(t, ArchivePkgTar, ParseArchiveType("pkg.tar"))
}

func TestParseEnums(t *testing.T) {
	assert.Equal(t, Temurin, ParseDistribution("Adoptium"))
	assert.Equal(t, SAPMachine, ParseDistribution("sap-machine"))
	assert.Equal(t, Zulu, ParseDistribution("ZULU"))
	assert.Equal(t, DistributionUnknown, ParseDistribution("nope"))
	assert.Equal(t, PackageJRE, ParsePackageType("JRE"))
	assert.Equal(t, MTS, ParseTermOfSupport("mts"))
	assert.Equal(t, TermOfSupportNone, ParseTermOfSupport(""))
	assert.Equal(t, TermOfSupportNotFound, ParseTermOfSupport("forever"))
	assert.Equal(t, LibCMusl, ParseLibCType("musl"))
	assert.Len(t, Distributions(), 14)
}

func TestCatalogError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", &CatalogError{Type: ErrFileOp, Package: "a.tar.gz", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsErrorType(err, ErrFileOp))
	assert.False(t, IsErrorType(err, ErrSigning))
	assert.Contains(t, err.Error(), "[FileOp] a.tar.gz: boom")
}

func TestLoadCatalogConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	content := `input_dir: ./dist
output_dir: ./out
gzip: true
sources:
  - dir: zulu
    distribution: zulu
    base_url: https://cdn.example.com/zulu
    version_match: 1
  - dir: mirror
    distribution: temurin
    download_site: https://example.com/temurin
    directly_downloadable: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadCatalogConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "./dist", config.InputDir)
	assert.True(t, config.Gzip)
	require.Len(t, config.Sources, 2)
	assert.Equal(t, 1, config.Sources[0].VersionMatch)
	assert.True(t, config.Sources[0].IsDirectlyDownloadable())
	assert.False(t, config.Sources[1].IsDirectlyDownloadable())

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	config, err = LoadCatalogConfig(empty)
	require.NoError(t, err)
	assert.Empty(t, config.Sources)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown_key: 1\n"), 0644))
	_, err = LoadCatalogConfig(bad)
	assert.True(t, IsErrorType(err, ErrInvalidConfig))

	_, err = LoadCatalogConfig(filepath.Join(dir, "missing.yaml"))
	assert.True(t, IsErrorType(err, ErrInvalidConfig))
}

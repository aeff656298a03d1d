package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestDetectPackageType(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		data        []byte
		format      Format
		archiveType models.ArchiveType
		wantErr     bool
	}{
		{name: "zulu17.32.13-ca-jdk17.0.2-linux_x64.tar.gz", data: append([]byte{0x1F, 0x8B, 0x08}, make([]byte, 20)...), format: FormatArchive, archiveType: models.ArchiveTarGz},
		{name: "OpenJDK17U-jdk_x64_windows_hotspot_17.0.2_8.zip", data: []byte("PK\x03\x04rest"), format: FormatArchive, archiveType: models.ArchiveZip},
		{name: "java-17-openjdk_17.0.2_amd64.deb", data: []byte("!<arch>\ndebian-binary   "), format: FormatDeb, archiveType: models.ArchiveDeb},
		{name: "java-17-openjdk-17.0.2.0.8-1.x86_64.rpm", data: []byte{0xED, 0xAB, 0xEE, 0xDB, 0x03}, format: FormatRpm, archiveType: models.ArchiveRpm},
		{name: "openjdk17-17.0.2_p8-r0.apk", data: []byte{0x1F, 0x8B, 0x08}, format: FormatApk, archiveType: models.ArchiveApk},
		{name: "jdk17-openjdk-17.0.2.u8-1-x86_64.pkg.tar.zst", data: []byte{0x28, 0xB5, 0x2F, 0xFD}, format: FormatPacman, archiveType: models.ArchivePkgTar},
		{name: "jdk-17.0.2_macos-x64_bin.dmg", data: []byte("koly"), format: FormatArchive, archiveType: models.ArchiveDmg},
		{name: "fake.tar.gz", data: []byte("not gzip"), format: FormatUnknown, archiveType: models.ArchiveTarGz, wantErr: true},
		{name: "README.md", data: []byte("# readme"), format: FormatUnknown, archiveType: models.ArchiveUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			writeFile(t, path, tt.data)

			format, archiveType, err := DetectPackageType(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.archiveType, archiveType)
		})
	}
}

func TestFileSystemScanner(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zulu", "zulu17.32.13-ca-jdk17.0.2-linux_x64.tar.gz"), []byte{0x1F, 0x8B, 0x08})
	writeFile(t, filepath.Join(dir, "temurin", "OpenJDK17U-jdk_x64_windows_hotspot_17.0.2_8.zip"), []byte("PK\x03\x04"))
	writeFile(t, filepath.Join(dir, "temurin", "OpenJDK17U-jdk_x64_windows_hotspot_17.0.2_8.zip.sha256.txt"), []byte("abc"))
	writeFile(t, filepath.Join(dir, "broken.zip"), []byte("nope"))

	packages, err := NewFileSystemScanner().Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, packages, 2)

	rel := []string{packages[0].RelPath, packages[1].RelPath}
	assert.ElementsMatch(t, []string{
		"zulu/zulu17.32.13-ca-jdk17.0.2-linux_x64.tar.gz",
		"temurin/OpenJDK17U-jdk_x64_windows_hotspot_17.0.2_8.zip",
	}, rel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileSystemScanner().Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectAttributes(t *testing.T) {
	tests := []struct {
		filename string
		want     Attributes
	}{
		{
			filename: "zulu17.32.13-ca-jdk17.0.2-linux_x64.tar.gz",
			want: Attributes{
				OperatingSystem: models.OSLinux, Architecture: models.ArchX64, PackageType: models.PackageJDK,
				ReleaseStatus: version.StatusGA, LibCType: models.LibCGlibc,
			},
		},
		{
			filename: "OpenJDK17U-jre_aarch64_linux_hotspot_17.0.2_8.tar.gz",
			want: Attributes{
				OperatingSystem: models.OSLinux, Architecture: models.ArchAArch64, PackageType: models.PackageJRE,
				ReleaseStatus: version.StatusGA, LibCType: models.LibCGlibc,
			},
		},
		{
			filename: "openjdk-17-ea+5_linux-x64-musl_bin.tar.gz",
			want: Attributes{
				OperatingSystem: models.OSLinuxMusl, Architecture: models.ArchX64, PackageType: models.PackageJDK,
				ReleaseStatus: version.StatusEA, LibCType: models.LibCMusl,
			},
		},
		{
			filename: "zulu11.54.25-ca-fx-jdk11.0.14.1-macosx_aarch64.dmg",
			want: Attributes{
				OperatingSystem: models.OSMacOS, Architecture: models.ArchAArch64, PackageType: models.PackageJDK,
				ReleaseStatus: version.StatusGA, LibCType: models.LibCLibc, JavaFXBundled: true,
			},
		},
		{
			filename: "bellsoft-jdk17.0.2+9-windows-i586-full.msi",
			want: Attributes{
				OperatingSystem: models.OSWindows, Architecture: models.ArchX86, PackageType: models.PackageJDK,
				ReleaseStatus: version.StatusGA, LibCType: models.LibCCStdLib, JavaFXBundled: true,
			},
		},
		{
			filename: "java-17-amazon-corretto-jdk_17.0.2.8-1_arm64.deb",
			want: Attributes{
				OperatingSystem: models.OSLinux, Architecture: models.ArchAArch64, PackageType: models.PackageJDK,
				ReleaseStatus: version.StatusGA, LibCType: models.LibCGlibc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectAttributes(tt.filename))
		})
	}
}

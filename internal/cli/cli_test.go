package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ralt/pkgdisco/internal/catalog"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gzipHeader = []byte{0x1F, 0x8B, 0x08, 0x00}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "11.0.2+13-LTS", "14-ea.28", "jdk")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NORMALIZED")
	assert.Contains(t, lines[1], "11.0.2.0.0.0")
	assert.Contains(t, lines[1], "lts")
	assert.Contains(t, lines[2], "14-ea.28")
	assert.Contains(t, lines[2], "ea")
	assert.True(t, strings.HasPrefix(lines[3], "jdk"))

	out, err = execute(t, "parse", "--match", "2", "--distro", "zulu", "OpenJDK15U-jdk_x64_linux_hotspot_15.0.2_7.tar.gz")
	require.NoError(t, err)
	assert.Contains(t, out, "15.0.2.0.0.0")
	assert.Contains(t, out, "mts")

	_, err = execute(t, "parse", "--distro", "nope", "17")
	assert.True(t, models.IsErrorType(err, models.ErrInvalidArgument))
	assert.ErrorContains(t, err, "temurin")

	_, err = execute(t, "parse")
	assert.Error(t, err)
}

func TestCatalogAndQueryCommands(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "OpenJDK17U-jdk_x64_linux_hotspot_17.0.2_8.tar.gz"), gzipHeader)
	writeFile(t, filepath.Join(in, "OpenJDK17U-jdk_x64_linux_hotspot_17.0.1_12.tar.gz"), gzipHeader)
	writeFile(t, filepath.Join(in, "OpenJDK11U-jdk_x64_windows_hotspot_11.0.14_9.zip"), []byte("PK\x03\x04"))

	_, err := execute(t, "catalog", "-i", in, "-o", out, "--distro", "temurin",
		"--base-url", "https://example.com/temurin", "--version-match", "2", "--gzip")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, catalog.CatalogFile))
	assert.FileExists(t, filepath.Join(out, catalog.GzipFile))
	assert.NoFileExists(t, filepath.Join(out, catalog.SignatureFile))

	c, err := catalog.Load(out)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	result, err := execute(t, "query", "--catalog", out, "--version", "17", "--latest")
	require.NoError(t, err)
	assert.Contains(t, result, "OpenJDK17U-jdk_x64_linux_hotspot_17.0.2_8.tar.gz")
	assert.NotContains(t, result, "17.0.1_12")

	result, err = execute(t, "query", "--catalog", filepath.Join(out, catalog.GzipFile), "--os", "windows")
	require.NoError(t, err)
	assert.Contains(t, result, "OpenJDK11U-jdk_x64_windows_hotspot_11.0.14_9.zip")
	assert.NotContains(t, result, "linux")

	result, err = execute(t, "query", "--catalog", out, "--majors")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "17"))
	assert.True(t, strings.HasPrefix(lines[2], "11"))

	_, err = execute(t, "query", "--catalog", out, "--arch", "vax")
	assert.True(t, models.IsErrorType(err, models.ErrInvalidArgument))

	result, err = execute(t, "query", "--catalog", out, "--tos", "lts", "--os", "windows")
	require.NoError(t, err)
	assert.Contains(t, result, "OpenJDK11U-jdk_x64_windows_hotspot_11.0.14_9.zip")

	result, err = execute(t, "query", "--catalog", out, "--tos", "sts")
	require.NoError(t, err)
	assert.NotContains(t, result, "OpenJDK")

	for _, tos := range []string{"forever", "not_found"} {
		_, err = execute(t, "query", "--catalog", out, "--tos", tos)
		assert.True(t, models.IsErrorType(err, models.ErrInvalidArgument), tos)
	}

	// a second run only adds what is new
	writeFile(t, filepath.Join(in, "OpenJDK17U-jre_x64_linux_hotspot_17.0.2_8.tar.gz"), gzipHeader)
	_, err = execute(t, "catalog", "-i", in, "-o", out, "--distro", "temurin",
		"--base-url", "https://example.com/temurin", "--version-match", "2", "--incremental")
	require.NoError(t, err)

	c, err = catalog.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}

func TestCatalogCommandWithConfigFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "zulu", "zulu-jdk-15.0.2-linux_x64.tar.gz"), gzipHeader)
	writeFile(t, filepath.Join(in, "other", "jdk-16.0.2_linux-x64_bin.tar.gz"), gzipHeader)

	config := filepath.Join(t.TempDir(), "sources.yaml")
	writeFile(t, config, []byte(`input_dir: `+in+`
output_dir: `+out+`
sources:
  - dir: zulu
    distribution: zulu
    base_url: https://cdn.example.com/zulu
    directly_downloadable: false
`))

	_, err := execute(t, "catalog", "--config", config)
	require.NoError(t, err)

	c, err := catalog.Load(out)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	p := c.Packages()[0]
	assert.Equal(t, models.Zulu, p.Distribution)
	assert.Equal(t, models.MTS, p.TermOfSupport)
	assert.False(t, p.DirectlyDownloadable)
}

func TestCatalogCommandValidation(t *testing.T) {
	_, err := execute(t, "catalog", "-i", t.TempDir(), "-o", t.TempDir())
	assert.True(t, models.IsErrorType(err, models.ErrInvalidConfig))

	_, err = execute(t, "catalog", "-i", t.TempDir(), "-o", t.TempDir(), "--distro", "nope")
	assert.True(t, models.IsErrorType(err, models.ErrInvalidConfig))
	assert.ErrorContains(t, err, "source 0: unknown distribution \"nope\", expected one of zulu, temurin")
}

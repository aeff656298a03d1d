package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/hashicorp/go-multierror"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/signer"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigner(t *testing.T) *signer.GPGSigner {
	t.Helper()

	entity, err := openpgp.NewEntity("Catalog Test", "", "catalog@example.com", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, entity.SerializePrivate(w, nil))
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "signing.asc")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))

	s, err := signer.NewGPGSigner(path, "")
	require.NoError(t, err)
	return s
}

func TestSaveAndLoad(t *testing.T) {
	packages, err := BuildPackages(context.Background(), testConfig(t))
	require.NoError(t, err)
	c := New(packages)

	out := t.TempDir()
	require.NoError(t, Save(out, c, WriteOptions{Gzip: true, Signer: testSigner(t)}))

	for _, name := range []string{CatalogFile, GzipFile, SignatureFile, PublicKeyFile} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	// the signature covers catalog.json
	data, err := os.ReadFile(filepath.Join(out, CatalogFile))
	require.NoError(t, err)
	sig, err := os.ReadFile(filepath.Join(out, SignatureFile))
	require.NoError(t, err)
	pub, err := os.ReadFile(filepath.Join(out, PublicKeyFile))
	require.NoError(t, err)
	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(pub))
	require.NoError(t, err)
	_, err = openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	require.NoError(t, err)

	loaded, err := Load(out)
	require.NoError(t, err)
	require.Equal(t, c.Len(), loaded.Len())

	for _, p := range c.Packages() {
		back, ok := loaded.Find(utils.PackageID(p))
		require.True(t, ok, p.Filename)
		assert.Zero(t, back.Version.Compare(p.Version), p.Filename)
		assert.Equal(t, p.LatestBuildAvailable, back.LatestBuildAvailable, p.Filename)
		assert.Equal(t, p.TermOfSupport, back.TermOfSupport, p.Filename)
		assert.Equal(t, p.SHA256Sum, back.SHA256Sum, p.Filename)
	}

	// the compressed copy reads back the same
	require.NoError(t, os.Remove(filepath.Join(out, CatalogFile)))
	fromGzip, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, c.Len(), fromGzip.Len())
}

func TestLoadMissingCatalog(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.True(t, models.IsErrorType(err, models.ErrCatalogRead))

	_, err = Unmarshal([]byte(`[
		{"java_version": "jdk", "filename": "a.zip"},
		{"java_version": "17.0.2", "filename": "b.zip", "distribution": "temurin"},
		{"java_version": "", "filename": "c.zip"}
	]`))
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)

	c, err := Unmarshal([]byte(`[{"java_version": "17.0.2+b8", "filename": "b.zip", "distribution": "temurin", "archive_type": "zip"}]`))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, models.Temurin, c.Packages()[0].Distribution)
}

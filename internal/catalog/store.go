package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/signer"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/sirupsen/logrus"
)

// Files written to the output directory
const (
	CatalogFile   = "catalog.json"
	GzipFile      = CatalogFile + ".gz"
	SignatureFile = CatalogFile + ".asc"
	PublicKeyFile = "catalog.pub.asc"
)

// WriteOptions controls which files Save writes next to catalog.json
type WriteOptions struct {
	Gzip   bool
	Signer signer.Signer // nil for an unsigned catalog
}

// Marshal encodes the catalog as a JSON array of entries
func (c *Catalog) Marshal() ([]byte, error) {
	entries := make([]Entry, 0, len(c.packages))
	for _, p := range c.packages {
		entries = append(entries, NewEntry(p))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, &models.CatalogError{Type: models.ErrCatalogWrite, Err: err}
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes a JSON catalog, plain or gzip compressed. Entries that
// cannot be read are all reported in the returned error.
func Unmarshal(data []byte) (*Catalog, error) {
	data, err := utils.MaybeGzipDecompress(data)
	if err != nil {
		return nil, &models.CatalogError{Type: models.ErrCatalogRead, Err: fmt.Errorf("failed to decompress: %w", err)}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &models.CatalogError{Type: models.ErrCatalogRead, Err: fmt.Errorf("failed to decode JSON: %w", err)}
	}

	var result error
	packages := make([]models.Package, 0, len(entries))
	for _, e := range entries {
		p, err := e.Package()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if id := utils.PackageID(p); e.ID != "" && id != e.ID {
			logrus.Warnf("Entry %s has id %s, recomputed as %s", e.Filename, e.ID, id)
		}
		packages = append(packages, p)
	}
	if result != nil {
		return nil, result
	}

	return New(packages), nil
}

// Load reads the catalog in dir, preferring catalog.json over catalog.json.gz.
// A directory without a catalog yields an empty one.
func Load(dir string) (*Catalog, error) {
	for _, name := range []string{CatalogFile, GzipFile} {
		path := filepath.Join(dir, name)
		data, found, err := utils.ReadFileIfExists(path)
		if err != nil {
			return nil, &models.CatalogError{Type: models.ErrCatalogRead, Err: err}
		}
		if !found {
			continue
		}

		c, err := Unmarshal(data)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded %d packages from %s", c.Len(), path)
		return c, nil
	}

	logrus.Debugf("No existing catalog in %s", dir)
	return New(nil), nil
}

// Save writes the catalog to dir as catalog.json, plus the gzip copy and the
// detached signature with its public key when requested
func Save(dir string, c *Catalog, opts WriteOptions) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := writeCatalogFile(dir, CatalogFile, data); err != nil {
		return err
	}

	if opts.Gzip {
		compressed, err := utils.GzipCompress(data)
		if err != nil {
			return &models.CatalogError{Type: models.ErrCatalogWrite, Err: fmt.Errorf("failed to compress: %w", err)}
		}
		if err := writeCatalogFile(dir, GzipFile, compressed); err != nil {
			return err
		}
	}

	if opts.Signer != nil {
		sig, err := opts.Signer.SignDetached(data)
		if err != nil {
			return err
		}
		if err := writeCatalogFile(dir, SignatureFile, sig); err != nil {
			return err
		}

		pub, err := opts.Signer.GetPublicKey()
		if err != nil {
			return &models.CatalogError{Type: models.ErrSigning, Err: fmt.Errorf("failed to export public key: %w", err)}
		}
		if err := writeCatalogFile(dir, PublicKeyFile, pub); err != nil {
			return err
		}
	}

	logrus.Infof("Wrote %d packages to %s", c.Len(), filepath.Join(dir, CatalogFile))
	return nil
}

func writeCatalogFile(dir, name string, data []byte) error {
	if err := utils.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return &models.CatalogError{
			Type: models.ErrCatalogWrite,
			Err:  fmt.Errorf("failed to write %s: %w", name, err),
		}
	}
	return nil
}

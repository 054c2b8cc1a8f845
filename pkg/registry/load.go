package registry

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/modelatlas/modelatlas/pkg/constants"
	"github.com/modelatlas/modelatlas/pkg/errors"
)

// Catalog filesystem layout:
//
//	collections.yaml                      collection descriptions
//	collections/<dir>/models/<id>.yaml    one record per file
//	cards/*.md                            markdown model cards with a
//	                                      model-index front matter block
//
// Record files carry their own collection name, so the directory a file
// sits in is organizational only.

// Load builds a registry from the given filesystem. The returned
// registry is validated but not frozen, so callers may append further
// records before freezing.
func Load(fsys fs.FS) (*Registry, error) {
	r := New()

	if err := r.loadCollectionsYAML(fsys); err != nil {
		return nil, err
	}
	if err := r.loadRecordFiles(fsys); err != nil {
		return nil, err
	}
	if err := r.loadCards(fsys); err != nil {
		return nil, err
	}

	if err := r.Validate(); err != nil {
		return nil, errors.WrapResource("load", "registry", "", err)
	}
	return r, nil
}

// LoadPath builds a registry from a directory on disk.
func LoadPath(dir string) (*Registry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.WrapIO("stat", dir, err)
	}
	return Load(os.DirFS(dir))
}

// loadCollectionsYAML loads collection descriptions from collections.yaml.
func (r *Registry) loadCollectionsYAML(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, constants.CollectionsFile)
	if err != nil {
		return nil // File doesn't exist is okay; cards may declare collections
	}

	var collections []Collection
	if err := yaml.Unmarshal(data, &collections); err != nil {
		return errors.WrapParse("yaml", constants.CollectionsFile, err)
	}

	for _, c := range collections {
		if err := r.AddCollection(c); err != nil {
			return errors.WrapResource("add", "collection", c.Name, err)
		}
	}
	return nil
}

// loadRecordFiles walks collections/ and registers every model YAML file.
func (r *Registry) loadRecordFiles(fsys fs.FS) error {
	if _, err := fs.Stat(fsys, constants.CollectionsDir); err != nil {
		return nil // No per-record files
	}

	return fs.WalkDir(fsys, constants.CollectionsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WrapIO("walk", p, err)
		}
		if d.IsDir() || !strings.HasSuffix(p, ".yaml") {
			return nil
		}
		// Only files under a models/ directory are records.
		if path.Base(path.Dir(p)) != "models" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.WrapIO("read", p, err)
		}

		var rec Record
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return errors.WrapParse("yaml", p, err)
		}
		if err := r.Register(rec); err != nil {
			return errors.WrapResource("register", "record", rec.ID, err)
		}
		return nil
	})
}

// loadCards parses every markdown model card under cards/.
func (r *Registry) loadCards(fsys fs.FS) error {
	if _, err := fs.Stat(fsys, constants.CardsDir); err != nil {
		return nil // No cards directory
	}

	entries, err := fs.ReadDir(fsys, constants.CardsDir)
	if err != nil {
		return errors.WrapIO("read", "cards", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := path.Join(constants.CardsDir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.WrapIO("read", name, err)
		}
		if err := r.RegisterCard(name, data); err != nil {
			return err
		}
	}
	return nil
}

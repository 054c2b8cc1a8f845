package registry

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/modelatlas/modelatlas/pkg/constants"
	"github.com/modelatlas/modelatlas/pkg/errors"
)

// Save writes the registry out as a catalog directory: collections.yaml
// at the root and one YAML file per record under
// collections/<slug>/models/<id>.yaml. The output round-trips through
// Load.
func (r *Registry) Save(dir string) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	collections := r.Collections()
	data, err := yaml.MarshalWithOptions(collections,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", constants.CollectionsFile, err)
	}
	collectionsPath := filepath.Join(dir, constants.CollectionsFile)
	if err := os.WriteFile(collectionsPath, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", collectionsPath, err)
	}

	for _, c := range collections {
		modelsDir := filepath.Join(dir, constants.CollectionsDir, Slugify(c.Name), "models")
		if err := os.MkdirAll(modelsDir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", modelsDir, err)
		}

		for _, id := range c.Members {
			rec, err := r.Lookup(id)
			if err != nil {
				return errors.WrapResource("save", "record", id, err)
			}

			data, err := yaml.MarshalWithOptions(rec,
				yaml.Indent(2),
				yaml.IndentSequence(false),
			)
			if err != nil {
				return errors.WrapParse("yaml", id, err)
			}

			recordPath := filepath.Join(modelsDir, id+".yaml")
			if err := os.WriteFile(recordPath, data, constants.FilePermissions); err != nil {
				return errors.WrapIO("write", recordPath, err)
			}
		}
	}

	return nil
}

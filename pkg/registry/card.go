package registry

import (
	"bytes"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/modelatlas/modelatlas/pkg/errors"
)

// Model cards are markdown documentation pages carrying a model-index
// front matter block: a YAML document with `collections` and `models`
// keys. The prose below the front matter is for human readers and is
// ignored here.

// modelIndex is the front matter document shape.
type modelIndex struct {
	Collections []cardCollection `yaml:"collections"`
	Models      []cardModel      `yaml:"models"`
}

type cardCollection struct {
	Name  string    `yaml:"name"`
	Paper cardPaper `yaml:"paper"`
}

type cardPaper struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type cardModel struct {
	Name         string       `yaml:"name"`
	InCollection string       `yaml:"in_collection"`
	Metadata     cardMetadata `yaml:"metadata"`
	Results      []Result     `yaml:"results"`
	Weights      string       `yaml:"weights"`
}

type cardMetadata struct {
	FLOPs              int64          `yaml:"flops"`
	Parameters         int64          `yaml:"parameters"`
	FileSize           int64          `yaml:"file_size"`
	Architecture       []string       `yaml:"architecture"`
	TrainingTechniques []string       `yaml:"training_techniques"`
	TrainingData       []string       `yaml:"training_data"`
	Hyperparameters    map[string]any `yaml:"hyperparameters"`
}

// RegisterCard parses a markdown model card and registers its collections
// and models. Collections already present in the registry are tolerated,
// so a card may restate a collection declared in collections.yaml.
// Duplicate model IDs are an error, as everywhere else.
func (r *Registry) RegisterCard(name string, data []byte) error {
	front, ok := frontMatter(data)
	if !ok {
		return errors.NewParseError("markdown", name, "no front matter block found", nil)
	}

	var index modelIndex
	if err := yaml.Unmarshal(front, &index); err != nil {
		return errors.WrapParse("yaml", name, err)
	}

	for _, c := range index.Collections {
		err := r.AddCollection(Collection{
			Name:       c.Name,
			PaperTitle: c.Paper.Title,
			PaperURL:   c.Paper.URL,
		})
		if err != nil && !errors.IsAlreadyExists(err) {
			return errors.WrapResource("add", "collection", c.Name, err)
		}
	}

	for _, m := range index.Models {
		rec := Record{
			ID:                 m.Name,
			Collection:         m.InCollection,
			FLOPs:              m.Metadata.FLOPs,
			Parameters:         m.Metadata.Parameters,
			FileSize:           m.Metadata.FileSize,
			ArchitectureTags:   m.Metadata.Architecture,
			TrainingTechniques: m.Metadata.TrainingTechniques,
			TrainingData:       m.Metadata.TrainingData,
			Hyperparameters:    m.Metadata.Hyperparameters,
			WeightsURI:         m.Weights,
			Results:            m.Results,
		}
		if err := r.Register(rec); err != nil {
			return errors.WrapResource("register", "card record", m.Name, err)
		}
	}
	return nil
}

// frontMatter extracts the YAML front matter from a markdown document.
// Both fence styles in circulation are accepted:
//
//	---          <!--
//	yaml...      yaml...
//	---          -->
func frontMatter(data []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(data, "\n\r\t ")

	if rest, ok := bytes.CutPrefix(trimmed, []byte("---\n")); ok {
		if body, _, found := bytes.Cut(rest, []byte("\n---")); found {
			return body, true
		}
		return nil, false
	}

	if rest, ok := bytes.CutPrefix(trimmed, []byte("<!--\n")); ok {
		if body, _, found := bytes.Cut(rest, []byte("\n-->")); found {
			return body, true
		}
		return nil, false
	}

	return nil, false
}

// Slugify converts a collection name to a directory-safe slug,
// e.g. "Inception v4" -> "inception-v4". Saved catalogs and generated
// docs both derive filenames from it, so they stay in step.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

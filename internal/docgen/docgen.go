// Package docgen generates markdown documentation for a model metadata
// registry: a top-level index listing every collection and record, plus a
// page per collection with its paper reference and member table.
package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	md "github.com/nao1215/markdown"

	"github.com/modelatlas/modelatlas/internal/cmd/table"
	"github.com/modelatlas/modelatlas/pkg/constants"
	"github.com/modelatlas/modelatlas/pkg/registry"
)

// Generator handles documentation generation.
type Generator struct {
	outputDir string
	verbose   bool
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithOutputDir sets the output directory for generated documentation.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithVerbose enables progress output.
func WithVerbose(verbose bool) Option {
	return func(g *Generator) {
		g.verbose = verbose
	}
}

// New creates a new documentation generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir: "./docs",
		verbose:   false,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate generates all documentation for the registry.
func (g *Generator) Generate(ctx context.Context, reg *registry.Registry) error {
	if g.verbose {
		fmt.Printf("Generating documentation in %s...\n", g.outputDir)
	}

	collectionsDir := filepath.Join(g.outputDir, "collections")
	if err := os.MkdirAll(collectionsDir, constants.DirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", collectionsDir, err)
	}

	if err := g.generateIndex(reg); err != nil {
		return fmt.Errorf("generating index: %w", err)
	}

	for _, coll := range reg.Collections() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generateCollectionPage(collectionsDir, reg, coll); err != nil {
			return fmt.Errorf("generating page for %s: %w", coll.Name, err)
		}
	}

	if g.verbose {
		fmt.Println("Documentation generation complete")
	}

	return nil
}

// generateIndex writes the top-level README with collection and model tables.
func (g *Generator) generateIndex(reg *registry.Registry) error {
	f, err := os.Create(filepath.Join(g.outputDir, "README.md"))
	if err != nil {
		return err
	}
	defer f.Close()

	collections := reg.Collections()
	records := reg.Records()

	collRows := make([][]string, 0, len(collections))
	for _, coll := range collections {
		paper := coll.PaperTitle
		if coll.PaperURL != "" {
			paper = md.Link(coll.PaperTitle, coll.PaperURL)
		}
		collRows = append(collRows, []string{
			md.Link(coll.Name, "collections/"+registry.Slugify(coll.Name)+".md"),
			fmt.Sprintf("%d", len(coll.Members)),
			paper,
		})
	}

	return md.NewMarkdown(f).
		H1("Model Atlas").
		LF().
		PlainTextf("Pretrained image classification model metadata: %d models across %d collections.",
			len(records), len(collections)).
		LF().
		H2("Collections").
		LF().
		Table(md.TableSet{
			Header: []string{"Collection", "Models", "Paper"},
			Rows:   collRows,
		}).
		LF().
		H2("All Models").
		LF().
		Table(md.TableSet{
			Header: []string{"ID", "Collection", "Params", "FLOPs", "Top-1"},
			Rows:   recordRows(records),
		}).
		Build()
}

// generateCollectionPage writes one collection's page with its member table.
func (g *Generator) generateCollectionPage(dir string, reg *registry.Registry, coll registry.Collection) error {
	f, err := os.Create(filepath.Join(dir, registry.Slugify(coll.Name)+".md"))
	if err != nil {
		return err
	}
	defer f.Close()

	members, err := reg.ListByCollection(coll.Name)
	if err != nil {
		return err
	}

	doc := md.NewMarkdown(f).
		H1(coll.Name).
		LF()

	if coll.PaperTitle != "" {
		paper := coll.PaperTitle
		if coll.PaperURL != "" {
			paper = md.Link(coll.PaperTitle, coll.PaperURL)
		}
		doc.PlainText("Paper: " + paper).LF()
	}

	return doc.
		H2("Models").
		LF().
		Table(md.TableSet{
			Header: []string{"ID", "Collection", "Params", "FLOPs", "Top-1"},
			Rows:   recordRows(members),
		}).
		Build()
}

// recordRows renders records into markdown table rows.
func recordRows(records []registry.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ID,
			rec.Collection,
			table.FormatCount(rec.Parameters),
			table.FormatCount(rec.FLOPs),
			table.FormatMetric(rec, "Top 1 Accuracy"),
		})
	}
	return rows
}

package globals

import "github.com/spf13/cobra"

// ResourceFlags narrows a model listing: by collection, by ID glob, or
// to a maximum count. Zero values mean no restriction.
type ResourceFlags struct {
	Collection string
	Search     string
	Limit      int
}

// AddResourceFlags registers the listing flags on cmd and returns the
// struct they bind to.
func AddResourceFlags(cmd *cobra.Command) *ResourceFlags {
	f := &ResourceFlags{}
	cmd.Flags().StringVarP(&f.Collection, "collection", "c", "", "Filter by collection")
	cmd.Flags().StringVar(&f.Search, "search", "", "Glob pattern to filter model IDs (e.g., 'vgg*')")
	cmd.Flags().IntVarP(&f.Limit, "limit", "l", 0, "Limit number of results")
	return f
}

// ParseResources re-reads the listing flags from cmd. It panics if the
// flags were never registered, which is a wiring bug, not user input.
func ParseResources(cmd *cobra.Command) *ResourceFlags {
	collection, err := cmd.Flags().GetString("collection")
	if err != nil {
		panic("resource flags not registered: " + err.Error())
	}
	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")

	return &ResourceFlags{
		Collection: collection,
		Search:     search,
		Limit:      limit,
	}
}

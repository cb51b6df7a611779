// Package search provides the web search provider used by the bioflow
// researcher stage.
//
// # Tavily Example
//
//	provider := search.NewTavily("your-api-key")
//	results, err := provider.Search(ctx, "Keir Starmer early life biography")
//
// NewTavily configures the provider the way the biography researcher
// expects: advanced search depth, ten results per query, raw page content
// included, and neither a generated answer nor images. The fields on Tavily
// can be adjusted before first use.
//
// # Custom Providers
//
// Implement the bioflow.SearchProvider interface to use any other backend:
//
//	type SearchProvider interface {
//	    Search(ctx context.Context, query string) ([]bioflow.SearchResult, error)
//	}
package search

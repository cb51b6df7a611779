// Package bioflow produces short, reviewed "Early Life" biography summaries
// of politicians by running a small team of LLM agent stages over web search
// results.
//
// # Architecture
//
// The workflow is a Research → Answer → Review loop with bounded refinement:
//
//  1. The researcher runs a set of biography-focused web searches through a
//     SearchProvider and compresses the results into research notes.
//  2. The answerer writes a 50-100 word "Early Life" summary from the notes.
//  3. The reviewer evaluates the summary and emits a verdict, which is
//     parsed at the boundary into APPROVED or NEEDS_IMPROVEMENT.
//  4. On NEEDS_IMPROVEMENT, and while the refinement budget lasts, the
//     refiner redirects the researcher with the reviewer's follow-up
//     request and the loop re-enters research. Otherwise the run is done
//     and the best available summary is returned.
//
// Stages never overlap in time: each reads only session-state fields that
// earlier stages (or the initial seed) already wrote.
//
// # Cost Tracking
//
// Every LLM call and search call can report a cost. LLMProvider.Generate
// returns an LLMResponse with text and cost; search costs are configured via
// WithSearchCost. ResearchPerson returns a Result with the total.
//
// # Basic Usage
//
//	flow := bioflow.New(
//	    bioflow.WithModel(myLLM),
//	    bioflow.WithSearchProvider(search.NewTavily(apiKey)),
//	    bioflow.WithMaxRefinements(2),
//	)
//	if err := flow.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	result := flow.ResearchPerson(ctx, "Keir Starmer")
//	if result != nil {
//	    fmt.Println(result.Summary)
//	}
//
// ResearchPerson never returns an error: failures during a run are logged
// and reported as a nil result. Review metadata from the run is available
// through ReviewStatus, ReviewFeedback, and ResearchData.
//
// # Interfaces
//
// Implement LLMProvider to connect any language model:
//
//	type LLMProvider interface {
//	    Generate(ctx context.Context, systemPrompt, userPrompt string) (LLMResponse, error)
//	}
//
// Implement SearchProvider to use any search backend:
//
//	type SearchProvider interface {
//	    Search(ctx context.Context, query string) ([]SearchResult, error)
//	}
//
// Custom pipelines can be assembled from the Stage interface and the
// Sequential combinator. See the examples/earlylife directory for a
// complete program.
package bioflow

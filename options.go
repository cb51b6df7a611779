package bioflow

import "go.uber.org/zap"

const (
	defaultAppName        = "bioflow"
	defaultUserID         = "local"
	defaultMaxRefinements = 2
)

// Option configures a Flow.
type Option func(*Flow)

// WithModel sets the model used by every role that has no override.
func WithModel(m LLMProvider) Option {
	return func(f *Flow) { f.model = m }
}

// WithResearcherModel overrides the researcher's model.
func WithResearcherModel(m LLMProvider) Option {
	return func(f *Flow) { f.researcherModel = m }
}

// WithAnswererModel overrides the answerer's model.
func WithAnswererModel(m LLMProvider) Option {
	return func(f *Flow) { f.answererModel = m }
}

// WithReviewerModel overrides the reviewer's model.
func WithReviewerModel(m LLMProvider) Option {
	return func(f *Flow) { f.reviewerModel = m }
}

// WithRefinerModel overrides the refiner's model.
func WithRefinerModel(m LLMProvider) Option {
	return func(f *Flow) { f.refinerModel = m }
}

// WithSearchProvider sets the researcher's search tool.
func WithSearchProvider(searcher SearchProvider) Option {
	return func(f *Flow) { f.searcher = searcher }
}

// WithSearchCost sets the cost (in dollars) attributed to each search call.
func WithSearchCost(cost float64) Option {
	return func(f *Flow) { f.searchCost = cost }
}

// WithMaxRefinements bounds the refinement loop: the number of extra
// research/answer passes allowed after the first review. Zero means a
// single pass; negative values are ignored.
func WithMaxRefinements(n int) Option {
	return func(f *Flow) {
		if n >= 0 {
			f.maxRefinements = n
		}
	}
}

// WithAppName sets the application name used in session identity.
func WithAppName(name string) Option {
	return func(f *Flow) {
		if name != "" {
			f.appName = name
		}
	}
}

// WithUserID sets the user id used in session identity.
func WithUserID(id string) Option {
	return func(f *Flow) {
		if id != "" {
			f.userID = id
		}
	}
}

// WithResearcherInstructions overrides the researcher's instruction template.
func WithResearcherInstructions(s string) Option {
	return func(f *Flow) {
		if s != "" {
			f.researcherInstr = s
		}
	}
}

// WithAnswererInstructions overrides the answerer's instruction template.
func WithAnswererInstructions(s string) Option {
	return func(f *Flow) {
		if s != "" {
			f.answererInstr = s
		}
	}
}

// WithReviewerInstructions overrides the reviewer's instruction template.
func WithReviewerInstructions(s string) Option {
	return func(f *Flow) {
		if s != "" {
			f.reviewerInstr = s
		}
	}
}

// WithRefinerInstructions overrides the refiner's instruction template.
func WithRefinerInstructions(s string) Option {
	return func(f *Flow) {
		if s != "" {
			f.refinerInstr = s
		}
	}
}

// WithSessionService supplies a shared session store instead of the private
// per-flow default.
func WithSessionService(service *InMemorySessionService) Option {
	return func(f *Flow) {
		if service != nil {
			f.service = service
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) {
		if logger != nil {
			f.logger = logger
		}
	}
}

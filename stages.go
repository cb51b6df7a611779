package bioflow

import (
	"context"
	"errors"
	"fmt"
)

// llmStage runs one instruction template through a model and writes the
// response to its output key. The model is invoked exactly once per run;
// there is no per-stage retry.
type llmStage struct {
	name        string
	outputKey   string
	model       LLMProvider
	instruction string
}

func (s *llmStage) Name() string      { return s.name }
func (s *llmStage) OutputKey() string { return s.outputKey }

func (s *llmStage) Run(ctx context.Context, sess *Session) (float64, error) {
	if s.model == nil {
		return 0, fmt.Errorf("%s: model is not configured", s.name)
	}
	sys := resolveInstruction(s.instruction, sess.State)
	resp, err := s.model.Generate(ctx, sys, lastUserMessage(sess))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.name, err)
	}
	text := responseText(resp)
	if text == "" {
		return resp.Cost, fmt.Errorf("%s: model returned no content", s.name)
	}
	sess.State.Set(s.outputKey, text)
	return resp.Cost, nil
}

// researchStage is the only tool-using stage: it runs the biography search
// set through the search provider, then makes its single model call to
// compress the results into the research_data field.
type researchStage struct {
	llmStage
	searcher   SearchProvider
	searchCost float64
}

func (s *researchStage) Run(ctx context.Context, sess *Session) (float64, error) {
	if s.model == nil {
		return 0, errors.New("researcher: model is not configured")
	}
	if s.searcher == nil {
		return 0, errors.New("researcher: no search provider configured")
	}

	var cost float64
	var searches []querySearch
	for _, q := range researchQueries(sess.State) {
		results, err := s.searcher.Search(ctx, q)
		if err != nil {
			return cost, fmt.Errorf("search: %w", err)
		}
		cost += s.searchCost
		searches = append(searches, querySearch{Query: q, Results: results})
	}

	sys := resolveInstruction(s.instruction, sess.State)
	resp, err := s.model.Generate(ctx, sys, buildResearchUserPrompt(sess, searches))
	cost += resp.Cost
	if err != nil {
		return cost, fmt.Errorf("researcher: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return cost, errors.New("researcher: model returned no content")
	}
	sess.State.Set(StateResearchData, text)
	return cost, nil
}

func newResearchStage(model LLMProvider, instruction string, searcher SearchProvider, searchCost float64) Stage {
	return &researchStage{
		llmStage:   llmStage{name: "researcher", outputKey: StateResearchData, model: model, instruction: instruction},
		searcher:   searcher,
		searchCost: searchCost,
	}
}

func newAnswerStage(model LLMProvider, instruction string) Stage {
	return &llmStage{name: "answerer", outputKey: StateAnswerSummary, model: model, instruction: instruction}
}

func newReviewStage(model LLMProvider, instruction string) Stage {
	return &llmStage{name: "reviewer", outputKey: StateReviewResult, model: model, instruction: instruction}
}

func newRefineStage(model LLMProvider, instruction string) Stage {
	return &llmStage{name: "refiner", outputKey: StateRefinementAction, model: model, instruction: instruction}
}

package bioflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLLM records the prompts it was handed and replays one response.
type captureLLM struct {
	system   string
	user     string
	response string
}

func (c *captureLLM) Generate(_ context.Context, systemPrompt, userPrompt string) (LLMResponse, error) {
	c.system = systemPrompt
	c.user = userPrompt
	return LLMResponse{Text: c.response}, nil
}

func TestLLMStageResolvesPlaceholders(t *testing.T) {
	llm := &captureLLM{response: "APPROVED: fine"}
	stage := newReviewStage(llm, reviewerInstructions)

	sess := newTestSession()
	sess.State.Set(StateResearchData, "notes about Starmer")
	sess.State.Set(StateAnswerSummary, "a short draft")

	_, err := stage.Run(context.Background(), sess)
	require.NoError(t, err)

	assert.Contains(t, llm.system, "notes about Starmer")
	assert.Contains(t, llm.system, "a short draft")
	assert.Equal(t, "APPROVED: fine", sess.State.Get(StateReviewResult))
}

func TestLLMStageEmptyResponseIsError(t *testing.T) {
	stage := newAnswerStage(&captureLLM{response: ""}, answererInstructions)

	_, err := stage.Run(context.Background(), newTestSession())
	assert.Error(t, err)
}

func TestLLMStageStripsThinkBlocks(t *testing.T) {
	llm := &captureLLM{response: "<think>deliberating</think>the summary"}
	stage := newAnswerStage(llm, answererInstructions)

	sess := newTestSession()
	_, err := stage.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "the summary", sess.State.Get(StateAnswerSummary))
}

func TestResearchStageSearchesAndCompresses(t *testing.T) {
	searcher := &fakeSearch{results: []SearchResult{{
		Title:      "Bio",
		URL:        "https://example.com",
		Snippet:    "born in Southwark",
		RawContent: "Keir Starmer was born on 2 September 1962.",
	}}}
	llm := &captureLLM{response: "compressed research notes"}
	stage := newResearchStage(llm, researcherInstructions, searcher, 0.005)

	sess := newTestSession()
	sess.State.Set(StatePersonName, "Keir Starmer")
	sess.AppendMessage("user", "Research and create an early life biography section summary for Keir Starmer")

	cost, err := stage.Run(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Keir Starmer biography",
		"Keir Starmer early life family background",
		"Keir Starmer education school university",
		"Keir Starmer early political career",
	}, searcher.queries)
	assert.InDelta(t, 0.02, cost, 1e-9)
	assert.Equal(t, "compressed research notes", sess.State.Get(StateResearchData))

	assert.Contains(t, llm.system, "Keir Starmer")
	assert.Contains(t, llm.user, "born in Southwark")
	assert.Contains(t, llm.user, "Keir Starmer was born on 2 September 1962.")
	assert.Contains(t, llm.user, "Research and create an early life biography section summary for Keir Starmer")
}

func TestResearchStageHonorsFollowUpRequest(t *testing.T) {
	searcher := &fakeSearch{results: nil}
	stage := newResearchStage(&captureLLM{response: "notes"}, researcherInstructions, searcher, 0)

	sess := newTestSession()
	sess.State.Set(StatePersonName, "Keir Starmer")
	sess.State.Set(StateAdditionalResearch, "graduation dates")

	_, err := stage.Run(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, searcher.queries, 5)
	assert.Equal(t, "Keir Starmer graduation dates", searcher.queries[0])
}

func TestResearchStageRequiresSearcher(t *testing.T) {
	stage := newResearchStage(&captureLLM{response: "notes"}, researcherInstructions, nil, 0)
	_, err := stage.Run(context.Background(), newTestSession())
	assert.Error(t, err)
}

func TestResearchStageTruncatesRawContent(t *testing.T) {
	long := make([]byte, maxRawContentBytes+100)
	for i := range long {
		long[i] = 'x'
	}
	searcher := &fakeSearch{results: []SearchResult{{Title: "t", URL: "u", Snippet: "s", RawContent: string(long)}}}
	llm := &captureLLM{response: "notes"}
	stage := newResearchStage(llm, researcherInstructions, searcher, 0)

	sess := newTestSession()
	sess.State.Set(StatePersonName, "X")

	_, err := stage.Run(context.Background(), sess)
	require.NoError(t, err)
	assert.Contains(t, llm.user, "[TRUNCATED]")
	assert.NotContains(t, llm.user, string(long))
}

package bioflow

import (
	"fmt"
	"regexp"
	"strings"
)

// Default instruction templates for the four workflow roles. Placeholders in
// {braces} are resolved against session state when the stage runs.

const researcherInstructions = `You are a professional research specialist gathering biographical
information about {person_name}. Web search results are provided below your task.

Focus on the person's early life:
- date and place of birth
- family background, including the parents' careers, ethnicity, and education
- education (schools, universities, academic achievements)
- early political activities or formative experiences, if documented

Specific follow-up research requests, when present, take priority: {additional_research_needed}

Always:
- keep only factual, verifiable information
- include sources and dates when available
- clearly distinguish confirmed facts from reported information
- note when information is limited or contradictory

Write a comprehensive early-life research summary covering all relevant
personal, educational, and political details with attribution to sources.`

const answererInstructions = `You are a biographer writing the "Early Life" section for a politician.
Using only the research data below, write a clear, concise summary that:
- includes date and place of birth
- includes family background and the parents' careers and education
- includes education (schools, universities, academic achievements)
- includes early political activities or formative experiences, if documented
- maintains a professional and respectful tone
- is approximately 50-100 words and flows naturally

If the research data is conflicting or limited, work with the most reliable
sources and note any uncertainty. If a previous draft exists, improve upon it
while keeping the overall quality and flow.

Research data:
{research_data}

Previous draft (may be empty):
{answer_summary}`

const reviewerInstructions = `You are a content reviewer evaluating an "Early Life" summary of a
politician against these criteria:
1. Completeness: place of birth, family background, education, early political activity.
2. Depth: specific schools, dates, and concrete early-life facts that shaped the political career.
3. Quality: professional tone, engaging structure, roughly 50-100 words.

Output exactly one line in one of two forms:
- "APPROVED: <positive assessment>" when the summary meets all criteria.
- "NEEDS_IMPROVEMENT: <what is missing>|RESEARCH_NEEDED: <specific areas to research>" otherwise.

The research data available is: {research_data}
The summary to review is: {answer_summary}`

const refinerInstructions = `You are a workflow coordinator for refinement. Analyze the review
result and signal whether refinement should continue.

The review result is: {review_result}

If it starts with "APPROVED", output:
"REFINEMENT_COMPLETE: Summary approved and ready for delivery"

If it starts with "NEEDS_IMPROVEMENT", identify the specific research needs
and output:
"CONTINUE_REFINEMENT: <explanation of the additional work needed>"`

// researchQueries builds the fixed biography search set for the person in
// session state. A pending follow-up research request is searched first.
func researchQueries(st State) []string {
	name := st.Get(StatePersonName)
	queries := []string{
		name + " biography",
		name + " early life family background",
		name + " education school university",
		name + " early political career",
	}
	if extra := strings.TrimSpace(st.Get(StateAdditionalResearch)); extra != "" {
		queries = append([]string{name + " " + extra}, queries...)
	}
	return queries
}

// querySearch pairs a search query with the results it returned.
type querySearch struct {
	Query   string
	Results []SearchResult
}

// Raw page content can be tens of kilobytes per result; cap what reaches
// the model.
const maxRawContentBytes = 2048

func buildResearchUserPrompt(sess *Session, searches []querySearch) string {
	var b strings.Builder
	b.WriteString("Task:\n")
	b.WriteString(lastUserMessage(sess))
	b.WriteString("\n\nWeb Search Results (title | url | snippet):\n")
	for _, qs := range searches {
		b.WriteString(fmt.Sprintf("\nQuery: %s\n", qs.Query))
		if len(qs.Results) == 0 {
			b.WriteString("(no results returned)\n")
			continue
		}
		for i, r := range qs.Results {
			b.WriteString(fmt.Sprintf("%d. %s | %s | %s\n", i+1,
				strings.TrimSpace(r.Title), strings.TrimSpace(r.URL), strings.TrimSpace(r.Snippet)))
			if raw := strings.TrimSpace(r.RawContent); raw != "" {
				if len(raw) > maxRawContentBytes {
					raw = raw[:maxRawContentBytes] + " [TRUNCATED]"
				}
				b.WriteString("   Page content: ")
				b.WriteString(raw)
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\nCompress these findings into the research summary described in your instructions. Keep only facts that appear in the results.")
	return b.String()
}

// lastUserMessage returns the most recent user-authored message, or a
// neutral nudge when the history has none.
func lastUserMessage(sess *Session) string {
	for i := len(sess.History) - 1; i >= 0; i-- {
		if sess.History[i].Role == "user" {
			return sess.History[i].Text
		}
	}
	return "Proceed with your task."
}

var thinkRegex = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripThinkBlocks removes <think>...</think> blocks from LLM responses.
// Some models (like qwen3) output reasoning in these blocks.
func StripThinkBlocks(s string) string {
	return strings.TrimSpace(thinkRegex.ReplaceAllString(s, ""))
}

// responseText extracts usable text from an LLM response. It strips <think>
// blocks from Text first; if nothing remains (thinking models that put
// everything in reasoning tokens), it falls back to the Reasoning field.
func responseText(resp LLMResponse) string {
	if text := StripThinkBlocks(resp.Text); text != "" {
		return text
	}
	return StripThinkBlocks(resp.Reasoning)
}
